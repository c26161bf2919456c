package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

// ErrEmpty reports that there was nothing to copy.
var ErrEmpty = errors.New("nothing to copy")

// Copy places text on the system clipboard. An unsupported platform or a
// missing helper binary surfaces as an error the caller downgrades to a
// warning; the run itself never fails over the clipboard.
func Copy(text string) error {
	if text == "" {
		return ErrEmpty
	}
	return atotto.WriteAll(text)
}
