package events

import "time"

type RegistrationSubmitted struct {
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

type AccountVerified struct {
	AccountID string    `json:"accountId"`
	Email     string    `json:"email"`
	At        time.Time `json:"at"`
}
