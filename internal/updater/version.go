package updater

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsUpdateAvailable reports whether the published release is newer than the
// running build. GitHub tags and build versions may carry a leading "v".
// Non-semver build strings like "dev" report an error, which suppresses the
// banner rather than comparing garbage.
func IsUpdateAvailable(current, latest string) (bool, error) {
	cv, err := semver.NewVersion(strings.TrimPrefix(current, "v"))
	if err != nil {
		return false, fmt.Errorf("running version %q is not semver: %w", current, err)
	}
	lv, err := semver.NewVersion(strings.TrimPrefix(latest, "v"))
	if err != nil {
		return false, fmt.Errorf("release tag %q is not semver: %w", latest, err)
	}
	return cv.LessThan(lv), nil
}
