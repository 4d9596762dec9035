// Package projection shapes stored messages into display-ready sequences.
// Handles ordering and deduplication; it never touches storage.
package projection

import (
	"slices"
	"strings"
	"time"

	"chappy/domain"
)

// Chronological returns a copy of items sorted by ascending creation time.
// The sort is stable: records of the same instant keep their input order,
// so calling it twice on the same input yields the same sequence.
func Chronological[T any](items []T, createdAt func(T) time.Time) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return createdAt(a).Compare(createdAt(b))
	})
	return sorted
}

// ChannelTimeline orders the history of one channel.
func ChannelTimeline(messages []domain.ChannelMessage) []domain.ChannelMessage {
	return Chronological(messages, func(m domain.ChannelMessage) time.Time { return m.CreatedAt })
}

// Conversation orders the history of one DM conversation.
func Conversation(messages []domain.DirectMessage) []domain.DirectMessage {
	return Chronological(messages, func(m domain.DirectMessage) time.Time { return m.CreatedAt })
}

// Partner summarises one DM conversation from the point of view of its owner.
type Partner struct {
	Username      string
	LastMessageAt time.Time
}

// RecentPartners collapses the direct messages of self into one entry per
// partner, keeping the most recent exchange, most recent partner first.
// Partners are matched case-insensitively; the name kept is the one used in
// the most recent message. Equal timestamps are ranked by name.
func RecentPartners(self string, messages []domain.DirectMessage) []Partner {
	latest := make(map[string]Partner)
	for _, message := range Conversation(messages) {
		other := message.Other(self)
		latest[strings.ToLower(other)] = Partner{Username: other, LastMessageAt: message.CreatedAt}
	}

	partners := make([]Partner, 0, len(latest))
	for _, partner := range latest {
		partners = append(partners, partner)
	}
	slices.SortFunc(partners, func(a, b Partner) int {
		if c := b.LastMessageAt.Compare(a.LastMessageAt); c != 0 {
			return c
		}
		return strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username))
	})
	return partners
}
