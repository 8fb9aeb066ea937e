package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depstatus/domain"
	"github.com/rios0rios0/depstatus/test/domain/entitybuilders"
)

func TestDependencyStatus_UpToDate(t *testing.T) {
	t.Parallel()

	t.Run("should be up to date when versions match", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyStatusBuilder().
			WithCurrentVer("2.32.0").
			UpToDate().
			BuildStatus()

		// when
		upToDate := dep.UpToDate()

		// then
		assert.True(t, upToDate)
	})

	t.Run("should need an update when versions differ", func(t *testing.T) {
		t.Parallel()

		// given
		dep := entitybuilders.NewDependencyStatusBuilder().
			WithCurrentVer("2.31.0").
			WithLatestVer("2.32.0").
			BuildStatus()

		// when
		upToDate := dep.UpToDate()

		// then
		assert.False(t, upToDate)
	})
}

func TestNewReport(t *testing.T) {
	t.Parallel()

	t.Run("should preserve the length and order of the input", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []domain.DependencyStatus{
			{Name: "zlib", CurrentVer: "1.0", LatestVer: "1.1"},
			{Name: "alpha", CurrentVer: "2.0", LatestVer: "2.0"},
			{Name: "middle", CurrentVer: "0.9", LatestVer: "1.0"},
		}
		now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

		// when
		rep := domain.NewReport(now, deps)

		// then
		require.Len(t, rep.Packages, 3)
		assert.Equal(t, "zlib", rep.Packages[0].Name)
		assert.Equal(t, "alpha", rep.Packages[1].Name)
		assert.Equal(t, "middle", rep.Packages[2].Name)
	})

	t.Run("should flag needs_update exactly when versions differ", func(t *testing.T) {
		t.Parallel()

		// given
		deps := []domain.DependencyStatus{
			{Name: "outdated", CurrentVer: "1.0", LatestVer: "2.0"},
			{Name: "current", CurrentVer: "3.0", LatestVer: "3.0"},
		}

		// when
		rep := domain.NewReport(time.Now(), deps)

		// then
		assert.True(t, rep.Packages[0].NeedsUpdate)
		assert.False(t, rep.Packages[1].NeedsUpdate)
	})

	t.Run("should stamp the report with an ISO-8601 timestamp", func(t *testing.T) {
		t.Parallel()

		// given
		now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

		// when
		rep := domain.NewReport(now, nil)

		// then
		assert.Equal(t, "2024-01-02T15:04:05Z", rep.Timestamp)
	})

	t.Run("should produce an empty packages array for no input", func(t *testing.T) {
		t.Parallel()

		// when
		rep := domain.NewReport(time.Now(), nil)

		// then
		assert.NotNil(t, rep.Packages)
		assert.Empty(t, rep.Packages)
	})
}
