package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imgkeeper/internal/common"
)

// usageError carries the usage line of a command called with bad arguments.
type usageError struct {
	usage string
}

func (e *usageError) Error() string {
	return "usage: " + e.usage
}

func usage(u string) error {
	return &usageError{usage: u}
}

// describeError turns a command error into the line shown to the user.
func describeError(err error) string {
	var ue *usageError
	var mc *common.MissingCredentialError
	switch {
	case errors.As(err, &ue):
		return "Usage: " + ue.usage
	case errors.As(err, &mc):
		return fmt.Sprintf("Error: %s (use 'setid' first)", mc.Error())
	case errors.Is(err, common.ErrNoImages):
		return "No image files found."
	default:
		return "Error: " + err.Error()
	}
}
