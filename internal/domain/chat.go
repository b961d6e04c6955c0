package domain

import "time"

// ChatMessage is one row of a customer's chat history.
type ChatMessage struct {
	ID         int64
	CustomerID int64
	Message    string
	CreatedAt  time.Time
}
