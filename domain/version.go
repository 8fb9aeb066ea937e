package domain

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Severity labels for a version jump.
const (
	SeverityMajor = "major"
	SeverityMinor = "minor"
	SeverityPatch = "patch"
)

// UpdateSeverity classifies the jump from current to latest as "major",
// "minor", or "patch". It returns the empty string when either version is
// not valid semver or latest is not actually newer.
func UpdateSeverity(current, latest string) string {
	c := canonicalVersion(current)
	l := canonicalVersion(latest)
	if c == "" || l == "" || semver.Compare(c, l) >= 0 {
		return ""
	}

	switch {
	case semver.Major(c) != semver.Major(l):
		return SeverityMajor
	case semver.MajorMinor(c) != semver.MajorMinor(l):
		return SeverityMinor
	default:
		return SeverityPatch
	}
}

// canonicalVersion normalizes a package-manager version string ("1.2.3")
// into the "v"-prefixed form the semver package expects.
func canonicalVersion(version string) string {
	v := strings.TrimSpace(version)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
