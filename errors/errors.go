package errors

import "fmt"

var (
	ErrInvalidInput             = fmt.Errorf("invalid allocation input")
	ErrNothingToCommit          = fmt.Errorf("nothing to commit")
	ErrParticipantAlreadyExists = fmt.Errorf("participant already exists")
	ErrParticipantNotFound      = fmt.Errorf("participant not found")
	ErrInvalidGroupSize         = fmt.Errorf("group size must be 2 or more")
	ErrInvalidParticipant       = fmt.Errorf("invalid participant")
	ErrUnsupportedImport        = fmt.Errorf("unsupported import file")
)
