package domain

import "context"

// PackageQuerier abstracts the package manager used to inspect the project.
// Implementations shell out to the real tool; tests substitute canned output.
type PackageQuerier interface {
	// QueryOutdated returns the packages with a newer version available,
	// in exactly the order the tool emitted them. Malformed or missing
	// tool output yields an ErrExternalTool-wrapped error.
	QueryOutdated(ctx context.Context) ([]DependencyStatus, error)

	// InstalledPackages returns name -> version for every installed package.
	InstalledPackages(ctx context.Context) (map[string]string, error)

	// CheckCompatibility reports whether pkg at the given version resolves
	// cleanly against the current project (dry run, no state is mutated).
	CheckCompatibility(ctx context.Context, pkg, version string) (bool, error)
}
