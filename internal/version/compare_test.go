package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

func TestCheckConfigCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		binaryVersion string
		configVersion string
		expectError   bool
		errorContains string
	}{
		{name: "exact match", binaryVersion: "1.2.0", configVersion: "1.2.0"},
		{name: "config patch higher", binaryVersion: "1.2.0", configVersion: "1.2.5"},
		{name: "v prefix on both", binaryVersion: "v1.0.0", configVersion: "v1.0.3"},
		{name: "unversioned config", binaryVersion: "1.0.0", configVersion: ""},
		{name: "binary is main", binaryVersion: "main", configVersion: "3.0.0"},
		{name: "config is main", binaryVersion: "1.0.0", configVersion: "main"},
		{name: "prerelease binary", binaryVersion: "1.2.0-rc.1", configVersion: "1.2.0"},
		{
			name:          "minor differs",
			binaryVersion: "1.3.0",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "minor version mismatch",
		},
		{
			name:          "major differs",
			binaryVersion: "2.0.0",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "major version mismatch",
		},
		{
			name:          "invalid config version",
			binaryVersion: "1.0.0",
			configVersion: "latest",
			expectError:   true,
			errorContains: "invalid config version",
		},
		{
			name:          "invalid binary version",
			binaryVersion: "dev-build",
			configVersion: "1.0.0",
			expectError:   true,
			errorContains: "invalid binary version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConfigCompatibility(tt.binaryVersion, tt.configVersion)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidVersion))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, Version, GetVersion())
}
