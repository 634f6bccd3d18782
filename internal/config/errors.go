package config

import "fmt"

// MissingEnvError indicates a required environment variable was absent at
// startup. Fatal to the calling operation; never retried automatically.
type MissingEnvError struct {
	Variable string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Variable)
}
