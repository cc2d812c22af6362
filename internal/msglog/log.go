// Package msglog is the append-only, de-duplicating message history.
package msglog

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Message is one log entry. Count is how many consecutive times the same
// text was added; Time is when it was first added.
type Message struct {
	Text  string
	Color tcell.Color
	Count int
	Time  time.Time
}

// FullText is the text with a repeat suffix when stacked.
func (m *Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// Log keeps messages in the order they were added.
type Log struct {
	messages []*Message
	now      func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// New creates an empty log.
func New(opts ...Option) *Log {
	l := &Log{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add appends a message, or bumps the newest one's count when the text is
// identical to it. Only consecutive duplicates stack.
func (l *Log) Add(text string, color tcell.Color) {
	if n := len(l.messages); n > 0 && l.messages[n-1].Text == text {
		l.messages[n-1].Count++
		return
	}
	l.messages = append(l.messages, &Message{
		Text:  text,
		Color: color,
		Count: 1,
		Time:  l.now(),
	})
}

// Messages returns the entries, oldest first. The slice must not be modified.
func (l *Log) Messages() []*Message {
	return l.messages
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.messages)
}

// Last returns the newest entry, or nil when empty.
func (l *Log) Last() *Message {
	if len(l.messages) == 0 {
		return nil
	}
	return l.messages[len(l.messages)-1]
}
