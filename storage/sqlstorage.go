package storage

import (
	"database/sql"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/twinj/uuid"

	"github.com/zarkopopovski/registrar-chat/models"
)

// SQLStorage is the sqlite-backed Storage implementation. The seq rowid
// column preserves insertion order so the `created_at, seq` sort keeps
// conversation order deterministic for equal timestamps.
type SQLStorage struct {
	DB *sqlx.DB
}

func NewSQLStorage(databasePath, migrationsURL string) (*SQLStorage, error) {
	dbx, err := sqlx.Open("sqlite3", databasePath)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}

	driver, err := sqlite3.WithInstance(dbx.DB, &sqlite3.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "init migration driver")
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsURL, "sqlite3", driver)
	if err != nil {
		return nil, errors.Wrap(err, "init migrations")
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return nil, errors.Wrap(err, "run migrations")
	}

	return &SQLStorage{DB: dbx}, nil
}

const messageColumns = "id, session_id, content, is_user, comparison_response, created_at"
const jobColumns = "id, message_id, question, response, status, created_at"

func (s *SQLStorage) CreateMessage(msg *models.Message) (*models.Message, error) {
	stored := &models.Message{
		ID:        msg.ID,
		SessionID: msg.SessionID,
		Content:   msg.Content,
		IsUser:    msg.IsUser,
		CreatedAt: msg.CreatedAt,
	}
	if stored.ID == "" {
		stored.ID = uuid.NewV4().String()
	}
	if stored.SessionID == "" {
		stored.SessionID = uuid.NewV4().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	queryStr := "INSERT INTO chat_messages(id, session_id, content, is_user, created_at) VALUES($1, $2, $3, $4, $5)"

	_, err := s.DB.Exec(queryStr, stored.ID, stored.SessionID, stored.Content, stored.IsUser, stored.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "insert message")
	}

	return stored, nil
}

func (s *SQLStorage) Messages() ([]*models.Message, error) {
	queryStr := "SELECT " + messageColumns + " FROM chat_messages ORDER BY created_at ASC, seq ASC"

	messages := make([]*models.Message, 0)
	if err := s.DB.Select(&messages, queryStr); err != nil {
		return nil, errors.Wrap(err, "select messages")
	}

	return messages, nil
}

func (s *SQLStorage) MessagesBySession(sessionID string) ([]*models.Message, error) {
	queryStr := "SELECT " + messageColumns + " FROM chat_messages WHERE session_id=$1 ORDER BY created_at ASC, seq ASC"

	messages := make([]*models.Message, 0)
	if err := s.DB.Select(&messages, queryStr, sessionID); err != nil {
		return nil, errors.Wrap(err, "select session messages")
	}

	return messages, nil
}

func (s *SQLStorage) SetComparisonResponse(messageID, response string) error {
	queryStr := "UPDATE chat_messages SET comparison_response=$1 WHERE id=$2"

	if _, err := s.DB.Exec(queryStr, response, messageID); err != nil {
		return errors.Wrap(err, "update comparison response")
	}
	return nil
}

func (s *SQLStorage) ClearMessages() error {
	if _, err := s.DB.Exec("DELETE FROM chat_messages"); err != nil {
		return errors.Wrap(err, "clear messages")
	}
	return nil
}

func (s *SQLStorage) ClearSessionMessages(sessionID string) error {
	if _, err := s.DB.Exec("DELETE FROM chat_messages WHERE session_id=$1", sessionID); err != nil {
		return errors.Wrap(err, "clear session messages")
	}
	return nil
}

func (s *SQLStorage) CreateJob(messageID, question string) (*models.ComparisonJob, error) {
	job := &models.ComparisonJob{
		ID:        uuid.NewV4().String(),
		MessageID: messageID,
		Question:  question,
		Status:    models.JobStatusPending,
		CreatedAt: time.Now(),
	}

	queryStr := "INSERT INTO comparison_jobs(id, message_id, question, status, created_at) VALUES($1, $2, $3, $4, $5)"

	_, err := s.DB.Exec(queryStr, job.ID, job.MessageID, job.Question, job.Status, job.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "insert job")
	}

	return job, nil
}

func (s *SQLStorage) PendingJobs() ([]*models.ComparisonJob, error) {
	queryStr := "SELECT " + jobColumns + " FROM comparison_jobs WHERE status=$1 ORDER BY created_at ASC, seq ASC"

	jobs := make([]*models.ComparisonJob, 0)
	if err := s.DB.Select(&jobs, queryStr, models.JobStatusPending); err != nil {
		return nil, errors.Wrap(err, "select pending jobs")
	}

	return jobs, nil
}

func (s *SQLStorage) GetJob(id string) (*models.ComparisonJob, error) {
	queryStr := "SELECT " + jobColumns + " FROM comparison_jobs WHERE id=$1"

	job := models.ComparisonJob{}
	err := s.DB.Get(&job, queryStr, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select job")
	}

	return &job, nil
}

func (s *SQLStorage) CompleteJob(id, response string) error {
	queryStr := "UPDATE comparison_jobs SET response=$1, status=$2 WHERE id=$3"

	if _, err := s.DB.Exec(queryStr, response, models.JobStatusCompleted, id); err != nil {
		return errors.Wrap(err, "complete job")
	}
	return nil
}

func (s *SQLStorage) Close() error {
	return s.DB.Close()
}
