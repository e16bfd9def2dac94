package models

import "time"

const (
	JobStatusPending   = "pending"
	JobStatusCompleted = "completed"
)

// ComparisonJob pairs a user question with a slot for an alternate
// provider's answer, filled later by an out-of-band worker.
type ComparisonJob struct {
	ID        string    `json:"id" db:"id"`
	MessageID string    `json:"message_id" db:"message_id"`
	Question  string    `json:"question" db:"question"`
	Response  *string   `json:"response" db:"response"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
