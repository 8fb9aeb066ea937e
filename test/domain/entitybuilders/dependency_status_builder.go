package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depstatus/domain"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyStatusBuilder helps create test statuses with a fluent interface.
type DependencyStatusBuilder struct {
	*testkit.BaseBuilder
	name       string
	currentVer string
	latestVer  string
}

// NewDependencyStatusBuilder creates a new builder with sensible defaults.
func NewDependencyStatusBuilder() *DependencyStatusBuilder {
	return &DependencyStatusBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "requests",
		currentVer:  "2.31.0",
		latestVer:   "2.32.0",
	}
}

// WithName sets the package name.
func (b *DependencyStatusBuilder) WithName(name string) *DependencyStatusBuilder {
	b.name = name
	return b
}

// WithCurrentVer sets the current version.
func (b *DependencyStatusBuilder) WithCurrentVer(version string) *DependencyStatusBuilder {
	b.currentVer = version
	return b
}

// WithLatestVer sets the latest version.
func (b *DependencyStatusBuilder) WithLatestVer(version string) *DependencyStatusBuilder {
	b.latestVer = version
	return b
}

// UpToDate pins the latest version to the current one.
func (b *DependencyStatusBuilder) UpToDate() *DependencyStatusBuilder {
	b.latestVer = b.currentVer
	return b
}

// Build creates the status (satisfies testkit.Builder interface).
func (b *DependencyStatusBuilder) Build() interface{} {
	return b.BuildStatus()
}

// BuildStatus creates the status with a concrete return type.
func (b *DependencyStatusBuilder) BuildStatus() domain.DependencyStatus {
	return domain.DependencyStatus{
		Name:       b.name,
		CurrentVer: b.currentVer,
		LatestVer:  b.latestVer,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyStatusBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "requests"
	b.currentVer = "2.31.0"
	b.latestVer = "2.32.0"
	return b
}

// Clone creates a deep copy of the DependencyStatusBuilder.
func (b *DependencyStatusBuilder) Clone() testkit.Builder {
	return &DependencyStatusBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		currentVer:  b.currentVer,
		latestVer:   b.latestVer,
	}
}
