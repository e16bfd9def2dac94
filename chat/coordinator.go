package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/zarkopopovski/registrar-chat/models"
	"github.com/zarkopopovski/registrar-chat/providers"
	"github.com/zarkopopovski/registrar-chat/storage"
)

// ErrEmptyMessage is returned by Submit when the message text is blank
// after trimming. This is the single validation point in the flow.
var ErrEmptyMessage = errors.New("message content is empty")

const defaultReplyTimeout = 90 * time.Second

// Coordinator ties a submitted user message to at most one asynchronously
// produced bot reply. Each session carries an epoch counter bumped on
// clear; an in-flight reply snapshots the epoch at submit time and is
// discarded if the snapshot no longer matches at commit time. ClearAll
// bumps a global epoch that fences every session at once.
//
// The mutex covers (append user message, snapshot epoch), (clear store,
// bump epoch) and (check epoch, commit reply), so a reply can never observe
// a half-applied clear and a clear landing mid-submit fences the turn.
type Coordinator struct {
	store    storage.Storage
	provider providers.AnswerProvider

	mu            sync.Mutex
	globalEpoch   uint64
	sessionEpochs map[string]uint64

	replyTimeout time.Duration
}

type epochSnapshot struct {
	global  uint64
	session uint64
}

func NewCoordinator(store storage.Storage, provider providers.AnswerProvider) *Coordinator {
	return &Coordinator{
		store:         store,
		provider:      provider,
		sessionEpochs: make(map[string]uint64),
		replyTimeout:  defaultReplyTimeout,
	}
}

// Submit persists the user message and returns it immediately; the provider
// round trip happens in the background and commits the reply later, epoch
// permitting.
func (c *Coordinator) Submit(ctx context.Context, sessionID, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock()
	userMsg, err := c.store.CreateMessage(&models.Message{
		SessionID: sessionID,
		Content:   text,
		IsUser:    true,
	})
	if err != nil {
		c.mu.Unlock()
		return nil, errors.Wrap(err, "append user message")
	}
	e0 := epochSnapshot{global: c.globalEpoch, session: c.sessionEpochs[userMsg.SessionID]}
	c.mu.Unlock()

	history, err := c.history(userMsg)
	if err != nil {
		log.Error().Err(err).Str("session_id", userMsg.SessionID).Msg("failed to load conversation history")
		history = nil
	}

	go c.resolveReply(userMsg, history, e0)

	return userMsg, nil
}

func (c *Coordinator) resolveReply(userMsg *models.Message, history []providers.ChatMessage, e0 epochSnapshot) {
	c.mu.Lock()
	timeout := c.replyTimeout
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reply, err := c.provider.GenerateReply(ctx, userMsg.Content, history)
	if err != nil {
		log.Warn().Err(err).Str("session_id", userMsg.SessionID).Msg("answer provider failed, substituting fallback reply")
		reply = providers.FallbackReply(userMsg.Content)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e0.global != c.globalEpoch || e0.session != c.sessionEpochs[userMsg.SessionID] {
		log.Debug().Str("session_id", userMsg.SessionID).Msg("session cleared mid-flight, discarding reply")
		return
	}

	botMsg, err := c.store.CreateMessage(&models.Message{
		SessionID: userMsg.SessionID,
		Content:   reply,
		IsUser:    false,
	})
	if err != nil {
		log.Error().Err(err).Str("session_id", userMsg.SessionID).Msg("failed to append bot reply")
		return
	}

	if _, err := c.store.CreateJob(botMsg.ID, userMsg.Content); err != nil {
		log.Error().Err(err).Str("message_id", botMsg.ID).Msg("failed to create comparison job")
	}
}

// Clear removes the session's messages and bumps its epoch in one step, so
// no in-flight reply can commit across the clear.
func (c *Coordinator) Clear(sessionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearSessionMessages(sessionID); err != nil {
		return errors.Wrap(err, "clear session messages")
	}
	c.sessionEpochs[sessionID]++

	return nil
}

// ClearAll removes every message and bumps the global epoch, fencing every
// session's in-flight replies at once.
func (c *Coordinator) ClearAll() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ClearMessages(); err != nil {
		return errors.Wrap(err, "clear messages")
	}
	c.globalEpoch++

	return nil
}

// Conversation returns the session's messages, or every message when
// sessionID is empty.
func (c *Coordinator) Conversation(sessionID string) ([]*models.Message, error) {
	if sessionID == "" {
		return c.store.Messages()
	}
	return c.store.MessagesBySession(sessionID)
}

// Epochs reports the current global and per-session epoch values.
func (c *Coordinator) Epochs(sessionID string) (uint64, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.globalEpoch, c.sessionEpochs[sessionID]
}

// SetReplyTimeout bounds the provider round trip for subsequent submissions.
func (c *Coordinator) SetReplyTimeout(d time.Duration) {
	if d > 0 {
		c.mu.Lock()
		c.replyTimeout = d
		c.mu.Unlock()
	}
}

// history rebuilds the provider context: the session's messages in
// chronological order, excluding the just-appended user message.
func (c *Coordinator) history(userMsg *models.Message) ([]providers.ChatMessage, error) {
	msgs, err := c.store.MessagesBySession(userMsg.SessionID)
	if err != nil {
		return nil, err
	}

	history := make([]providers.ChatMessage, 0, len(msgs))
	for _, msg := range msgs {
		if msg.ID == userMsg.ID {
			continue
		}
		role := providers.RoleAssistant
		if msg.IsUser {
			role = providers.RoleUser
		}
		history = append(history, providers.ChatMessage{Role: role, Content: msg.Content})
	}

	return history, nil
}
