package domain

import "time"

// Agent is a console operator.
type Agent struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
