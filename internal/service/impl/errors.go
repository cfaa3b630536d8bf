package impl

import "errors"

var (
	ErrEmptyPassword   = errors.New("empty password")
	ErrInvalidVoteType = errors.New("vote type must be like or dislike")
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidCategory = errors.New("unknown category")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrEmptyBody       = errors.New("empty comment body")
	ErrEmptyImageURL   = errors.New("empty image url")
	ErrEmptyContentKey = errors.New("empty content key")
)
