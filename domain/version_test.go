package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depstatus/domain"
)

func TestUpdateSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		latest   string
		expected string
	}{
		{"major jump", "1.2.3", "2.0.0", domain.SeverityMajor},
		{"minor jump", "1.2.3", "1.3.0", domain.SeverityMinor},
		{"patch jump", "1.2.3", "1.2.4", domain.SeverityPatch},
		{"already v-prefixed", "v1.0.0", "v1.1.0", domain.SeverityMinor},
		{"equal versions", "1.2.3", "1.2.3", ""},
		{"latest is older", "2.0.0", "1.0.0", ""},
		{"current not semver", "1.2.3.post1", "2.0.0", ""},
		{"latest not semver", "1.2.3", "latest", ""},
		{"empty versions", "", "", ""},
	}

	for _, tt := range tests {
		t.Run("should classify "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			severity := domain.UpdateSeverity(tt.current, tt.latest)

			// then
			assert.Equal(t, tt.expected, severity)
		})
	}
}
