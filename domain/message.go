// Package domain contains core concepts of the chat system.
// This file defines Message records and related rules.
// Messages are immutable once written.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChannelMessage is a message posted in a named channel.
type ChannelMessage struct {
	ID        uuid.UUID // collision breaker, not a logical identity
	Channel   string
	Sender    string
	Content   string
	CreatedAt time.Time
}

// DirectMessage belongs to the unordered pair {Sender, Receiver}.
type DirectMessage struct {
	ID        uuid.UUID
	Sender    string
	Receiver  string
	Content   string
	CreatedAt time.Time
}

// Other returns the participant of the message that is not username.
// The comparison is case-insensitive, like every username comparison.
func (d DirectMessage) Other(username string) string {
	if equalFold(d.Sender, username) {
		return d.Receiver
	}
	return d.Sender
}
