package tui

import (
	"time"

	"github.com/google/uuid"
)

// ─── Message log ────────────────────────────────────────────────────────────

type role int

const (
	roleUser role = iota
	roleAssistant
	roleSystem
	roleError
)

// chatMessage is one entry of the conversation transcript. Content is the
// fully rendered text; the log itself never formats anything.
type chatMessage struct {
	id      string
	role    role
	content string
	loading bool
	at      time.Time
}

// messageLog is the ordered conversation transcript. It maintains two
// invariants: at most one loading placeholder exists at any time, and the
// welcome message disappears when the first real message arrives.
type messageLog struct {
	messages  []chatMessage
	welcomeID string
}

func newMessageLog() *messageLog {
	return &messageLog{}
}

// addWelcome seeds the one-time welcome message. It is replaced, not
// appended to, when the conversation starts.
func (l *messageLog) addWelcome(content string) string {
	id := uuid.New().String()
	l.welcomeID = id
	l.messages = append(l.messages, chatMessage{
		id:      id,
		role:    roleSystem,
		content: content,
		at:      time.Now(),
	})
	return id
}

// add appends a message and returns its ID. The welcome message, if still
// present, is removed first.
func (l *messageLog) add(r role, content string) string {
	l.clearWelcome()
	id := uuid.New().String()
	l.messages = append(l.messages, chatMessage{
		id:      id,
		role:    r,
		content: content,
		at:      time.Now(),
	})
	return id
}

// addLoading appends the in-flight placeholder. Any existing placeholder is
// removed first so there is never more than one.
func (l *messageLog) addLoading(content string) string {
	l.removeLoading()
	l.clearWelcome()
	id := uuid.New().String()
	l.messages = append(l.messages, chatMessage{
		id:      id,
		role:    roleSystem,
		content: content,
		loading: true,
		at:      time.Now(),
	})
	return id
}

// removeLoading drops the loading placeholder. Safe to call when none
// exists.
func (l *messageLog) removeLoading() {
	for i, msg := range l.messages {
		if msg.loading {
			l.messages = append(l.messages[:i], l.messages[i+1:]...)
			return
		}
	}
}

func (l *messageLog) hasLoading() bool {
	for _, msg := range l.messages {
		if msg.loading {
			return true
		}
	}
	return false
}

func (l *messageLog) clearWelcome() {
	if l.welcomeID == "" {
		return
	}
	for i, msg := range l.messages {
		if msg.id == l.welcomeID {
			l.messages = append(l.messages[:i], l.messages[i+1:]...)
			break
		}
	}
	l.welcomeID = ""
}

func (l *messageLog) all() []chatMessage {
	return l.messages
}

func (l *messageLog) len() int {
	return len(l.messages)
}
