package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/twinj/uuid"

	"github.com/zarkopopovski/registrar-chat/models"
)

// MemStorage keeps everything in process memory. Messages and jobs are held
// in insertion order so that sorting by creation time stays stable for equal
// timestamps. Every method returns copies of the stored records; callers
// never hold pointers the store later mutates.
type MemStorage struct {
	mu         sync.RWMutex
	messages   []*models.Message
	messageIdx map[string]*models.Message
	jobs       []*models.ComparisonJob
	jobIdx     map[string]*models.ComparisonJob
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		messageIdx: make(map[string]*models.Message),
		jobIdx:     make(map[string]*models.ComparisonJob),
	}
}

func (s *MemStorage) CreateMessage(msg *models.Message) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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

	s.messages = append(s.messages, stored)
	s.messageIdx[stored.ID] = stored

	return cloneMessage(stored), nil
}

func (s *MemStorage) Messages() ([]*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return sortedMessages(s.messages), nil
}

func (s *MemStorage) MessagesBySession(sessionID string) ([]*models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]*models.Message, 0)
	for _, msg := range s.messages {
		if msg.SessionID == sessionID {
			filtered = append(filtered, msg)
		}
	}

	return sortedMessages(filtered), nil
}

func (s *MemStorage) SetComparisonResponse(messageID, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg, ok := s.messageIdx[messageID]; ok {
		msg.ComparisonResponse = &response
	}
	return nil
}

func (s *MemStorage) ClearMessages() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	s.messageIdx = make(map[string]*models.Message)
	return nil
}

func (s *MemStorage) ClearSessionMessages(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.messages[:0]
	for _, msg := range s.messages {
		if msg.SessionID == sessionID {
			delete(s.messageIdx, msg.ID)
			continue
		}
		kept = append(kept, msg)
	}
	s.messages = kept
	return nil
}

func (s *MemStorage) CreateJob(messageID, question string) (*models.ComparisonJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := &models.ComparisonJob{
		ID:        uuid.NewV4().String(),
		MessageID: messageID,
		Question:  question,
		Status:    models.JobStatusPending,
		CreatedAt: time.Now(),
	}

	s.jobs = append(s.jobs, job)
	s.jobIdx[job.ID] = job

	return cloneJob(job), nil
}

func (s *MemStorage) PendingJobs() ([]*models.ComparisonJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]*models.ComparisonJob, 0)
	for _, job := range s.jobs {
		if job.Status == models.JobStatusPending {
			pending = append(pending, cloneJob(job))
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	return pending, nil
}

func (s *MemStorage) GetJob(id string) (*models.ComparisonJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobIdx[id]
	if !ok {
		return nil, nil
	}
	return cloneJob(job), nil
}

func (s *MemStorage) CompleteJob(id, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job, ok := s.jobIdx[id]; ok {
		job.Response = &response
		job.Status = models.JobStatusCompleted
	}
	return nil
}

func sortedMessages(msgs []*models.Message) []*models.Message {
	out := make([]*models.Message, len(msgs))
	for i, msg := range msgs {
		out[i] = cloneMessage(msg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func cloneMessage(msg *models.Message) *models.Message {
	out := *msg
	if msg.ComparisonResponse != nil {
		response := *msg.ComparisonResponse
		out.ComparisonResponse = &response
	}
	return &out
}

func cloneJob(job *models.ComparisonJob) *models.ComparisonJob {
	out := *job
	if job.Response != nil {
		response := *job.Response
		out.Response = &response
	}
	return &out
}
