package core

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTab = errors.New("invalid tab")

// InvalidTabError reports an identifier outside a shell's enumerated set.
type InvalidTabError struct {
	ID    string
	Known []string
}

func (e *InvalidTabError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("invalid tab %q", e.ID)
	}
	return fmt.Sprintf("invalid tab %q (known: %s)", e.ID, strings.Join(e.Known, ", "))
}

func (e *InvalidTabError) Is(target error) bool {
	return target == ErrInvalidTab
}
