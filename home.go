// home.go - home directory expansion for root paths
//
// (c) 2024- Sudhi Herle <sudhi@herle.net>
//
// Licensing Terms: GPLv2
//
// If you need a commercial license for this work, please contact
// the author.
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim  is made to its
// suitability for any purpose.

package scandir

import (
	"os"
	"strings"
)

// expandHome expands a leading "~" or "~/..." in p relative to the
// current user's home directory. It is a pure function of its input and
// the current $HOME/os.UserHomeDir() - it reads the environment exactly
// once and never mutates ambient state.
func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", &Error{"expand-home", p, err}
	}

	if p == "~" {
		return home, nil
	}
	return home + p[1:], nil
}
