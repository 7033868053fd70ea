package lib

import "errors"

// Sentinel errors the API layer translates into status codes. Anything else
// surfaces as a generic server error.
var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrNotFound           = errors.New("not found")
	ErrAlreadySubscribed  = errors.New("already subscribed to reminders for this anime")
	ErrAlreadyVoted       = errors.New("already voted on this poll")
	ErrTooFewOptions      = errors.New("a poll must have at least two options")
	ErrTooManyOptions     = errors.New("a poll can have at most five options")
	ErrInvalidRating      = errors.New("rating must be between 1 and 10")
	ErrInvalidCategory    = errors.New("unknown watchlist category")
)
