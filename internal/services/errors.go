package services

import "errors"

var (
	// ErrNotFound signals a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized signals a policy denial for an existing entity.
	ErrUnauthorized = errors.New("not authorized")
	// ErrValidation signals a missing or malformed field.
	ErrValidation = errors.New("invalid input")
	// ErrDuplicateEmail signals a registration against a taken email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials signals a failed login. Unknown email and wrong
	// password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAlreadyMember signals a duplicate team membership.
	ErrAlreadyMember = errors.New("user is already a team member")
	// ErrNotMember signals a membership operation on a non-member.
	ErrNotMember = errors.New("user is not a team member")
	// ErrCannotRemoveLeader signals an attempt to remove a team's leader.
	ErrCannotRemoveLeader = errors.New("cannot remove team leader")
)
