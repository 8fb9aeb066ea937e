package domain

import "time"

// DependencyStatus represents one package as reported by the package
// manager's outdated listing.
type DependencyStatus struct {
	Name       string // Package name
	CurrentVer string // Currently installed version
	LatestVer  string // Latest available version
}

// UpToDate reports whether the installed version already matches the latest.
func (d DependencyStatus) UpToDate() bool {
	return d.CurrentVer == d.LatestVer
}

// PackageStatus is the JSON shape of a single package inside a report.
type PackageStatus struct {
	Name        string `json:"name"`
	Current     string `json:"current"`
	Latest      string `json:"latest"`
	NeedsUpdate bool   `json:"needs_update"`
}

// Report is the JSON document written once per run. It is write-only:
// nothing in this tool ever reads a previous report back.
type Report struct {
	Timestamp string          `json:"timestamp"`
	Packages  []PackageStatus `json:"packages"`
}

// NewReport builds a report from the queried statuses, preserving their order.
func NewReport(now time.Time, deps []DependencyStatus) Report {
	packages := make([]PackageStatus, 0, len(deps))
	for _, d := range deps {
		packages = append(packages, PackageStatus{
			Name:        d.Name,
			Current:     d.CurrentVer,
			Latest:      d.LatestVer,
			NeedsUpdate: !d.UpToDate(),
		})
	}

	return Report{
		Timestamp: now.Format(time.RFC3339),
		Packages:  packages,
	}
}
