package config

import (
	"fmt"

	gv "github.com/hashicorp/go-version"
)

// Version is the termline release.
const Version = "0.1.0"

// CheckRequiredVersion returns an error when constraint is malformed or not
// satisfied by Version.
func CheckRequiredVersion(constraint string) error {
	cs, err := gv.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("required_version %q: %w", constraint, err)
	}
	cur := gv.Must(gv.NewVersion(Version))
	if !cs.Check(cur) {
		return fmt.Errorf("termline %s does not satisfy required_version %q", cur, constraint)
	}
	return nil
}
