package pipeline

import "fmt"

// ConfigError is a setup-time failure that makes an entity's movement unusable.
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrMissingCollaborator   ConfigError = "missing collaborator"
	ErrMissingGroundResolver ConfigError = "missing ground resolver"
	ErrMissingBackend        ConfigError = "missing physics backend"
	ErrInvalidConfig         ConfigError = "invalid configuration"
)

// CollaboratorError names the component and the collaborator it was set up without.
type CollaboratorError struct {
	Component    string
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%v: %s requires %s", ErrMissingCollaborator, e.Component, e.Collaborator)
}

// Unwrap exposes both ErrMissingCollaborator and the specific sentinel, if any.
func (e *CollaboratorError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMissingCollaborator}
	}
	return []error{ErrMissingCollaborator, e.Err}
}

// NewMissingCollaboratorError reports a nil collaborator at setup time.
func NewMissingCollaboratorError(component, collaborator string) error {
	return &CollaboratorError{
		Component:    component,
		Collaborator: collaborator,
	}
}
