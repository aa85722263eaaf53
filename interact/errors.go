package interact

import "errors"

var (
	// ErrMissingCollaborator is reported when a side effect is skipped for lack of a target
	ErrMissingCollaborator = errors.New("missing collaborator")

	// ErrInvalidConfiguration is reported for zone configs that cannot be registered
	ErrInvalidConfiguration = errors.New("invalid zone configuration")

	// ErrRedundantTransition is returned when activating an already activated zone
	ErrRedundantTransition = errors.New("redundant transition")

	// ErrUnknownZone is returned for lookups of unregistered zone IDs
	ErrUnknownZone = errors.New("unknown zone")

	// ErrNotPrompting is returned when activation is requested outside the prompt range
	ErrNotPrompting = errors.New("zone is not prompting")

	// ErrRequirementUnmet is returned when the zone's activation requirement fails
	ErrRequirementUnmet = errors.New("activation requirement not met")
)
