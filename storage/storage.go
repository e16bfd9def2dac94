package storage

import "github.com/zarkopopovski/registrar-chat/models"

// Storage is the home for chat messages and comparison jobs. Mutations
// referencing a missing id degrade to no-ops rather than errors: callers in
// the reply pipeline fire updates without checking, and a record deleted by
// a concurrent clear must not crash them.
type Storage interface {
	// CreateMessage stores the message, assigning id, session id and
	// timestamp when absent, and returns the stored record.
	CreateMessage(msg *models.Message) (*models.Message, error)

	// Messages returns every message ascending by creation time.
	Messages() ([]*models.Message, error)

	// MessagesBySession returns the session's messages ascending by
	// creation time, falling back to insertion order for equal timestamps.
	MessagesBySession(sessionID string) ([]*models.Message, error)

	// SetComparisonResponse fills the comparison slot on a bot message.
	SetComparisonResponse(messageID, response string) error

	ClearMessages() error
	ClearSessionMessages(sessionID string) error

	CreateJob(messageID, question string) (*models.ComparisonJob, error)
	PendingJobs() ([]*models.ComparisonJob, error)

	// GetJob returns (nil, nil) when the job does not exist.
	GetJob(id string) (*models.ComparisonJob, error)

	// CompleteJob sets the result and flips the job to completed.
	CompleteJob(id, response string) error
}
