package gamesetup

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a configuration key that is not part of the
// declared schema.
type ConfigurationError struct {
	Key    string
	Source string // file or component that carried the key; may be empty
}

func (e *ConfigurationError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("unknown configuration key %q", e.Key)
	}
	return fmt.Sprintf("%s: unknown configuration key %q", e.Source, e.Key)
}

// FocusError reports an attempt to focus something that is not a widget
// registered with the game.
type FocusError struct {
	ID WidgetID
}

func (e *FocusError) Error() string {
	return fmt.Sprintf("cannot focus widget %d: not registered", e.ID)
}

// ErrNoSteps is returned when an input script has no steps.
var ErrNoSteps = errors.New("no steps")
