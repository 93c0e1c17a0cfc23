package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// CheckConfigCompatibility checks that a config file written for configVersion
// can be loaded by a binary at binaryVersion.
//
// Rules:
//   - an empty config version means the config predates versioning and is accepted
//   - "main" on either side (development build) skips the check
//   - major and minor versions must match, patch may differ
//
// Examples:
//   - binary 1.2.0, config 1.2.7 -> OK
//   - binary 1.3.0, config 1.2.0 -> ERROR (minor differs)
//   - binary 2.0.0, config 1.2.0 -> ERROR (major differs)
func CheckConfigCompatibility(binaryVersion, configVersion string) error {
	if configVersion == "" {
		return nil
	}

	binaryVersion = strings.TrimPrefix(binaryVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if binaryVersion == "main" || configVersion == "main" {
		return nil
	}

	binary, err := semver.NewVersion(binaryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid binary version '%s'", binaryVersion)
	}

	config, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if binary.Major() != config.Major() {
		return errors.Newf(errors.ErrCodeInvalidVersion,
			"major version mismatch: binary is %d.x.x but config requires %d.x.x",
			binary.Major(), config.Major())
	}

	if binary.Minor() != config.Minor() {
		return errors.Newf(errors.ErrCodeInvalidVersion,
			"minor version mismatch: binary is %d.%d.x but config requires %d.%d.x",
			binary.Major(), binary.Minor(), config.Major(), config.Minor())
	}

	return nil
}
