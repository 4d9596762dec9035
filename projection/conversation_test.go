package projection

import (
	"testing"
	"time"

	"chappy/domain"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func at(n int64) time.Time {
	return time.Unix(n, 0).UTC()
}

func contents(messages []domain.DirectMessage) []string {
	return lo.Map(messages, func(m domain.DirectMessage, _ int) string { return m.Content })
}

func TestConversation_SortsByTimestampNotArrival(t *testing.T) {
	req := require.New(t)
	raw := []domain.DirectMessage{
		{Sender: "Bob", Receiver: "alice", Content: "hi", CreatedAt: at(100)},
		{Sender: "alice", Receiver: "Bob", Content: "hey", CreatedAt: at(200)},
		{Sender: "Bob", Receiver: "alice", Content: "sup", CreatedAt: at(150)},
	}

	req.Equal([]string{"hi", "sup", "hey"}, contents(Conversation(raw)))
	// The input is left untouched
	req.Equal([]string{"hi", "hey", "sup"}, contents(raw))
}

func TestConversation_TiesKeepInputOrder(t *testing.T) {
	req := require.New(t)
	raw := []domain.DirectMessage{
		{Content: "b", CreatedAt: at(5)},
		{Content: "first", CreatedAt: at(1)},
		{Content: "c", CreatedAt: at(5)},
		{Content: "d", CreatedAt: at(5)},
	}

	once := Conversation(raw)
	twice := Conversation(once)
	req.Equal([]string{"first", "b", "c", "d"}, contents(once))
	req.Equal(once, twice)
}

func TestChannelTimeline(t *testing.T) {
	req := require.New(t)
	raw := []domain.ChannelMessage{
		{Content: "T2", CreatedAt: at(2)},
		{Content: "T1", CreatedAt: at(1)},
		{Content: "T3", CreatedAt: at(3)},
	}

	sorted := ChannelTimeline(raw)
	req.Equal([]string{"T1", "T2", "T3"}, lo.Map(sorted, func(m domain.ChannelMessage, _ int) string { return m.Content }))
}

func TestRecentPartners(t *testing.T) {
	req := require.New(t)
	raw := []domain.DirectMessage{
		{Sender: "alice", Receiver: "bob", CreatedAt: at(10)},
		{Sender: "carol", Receiver: "alice", CreatedAt: at(30)},
		{Sender: "Bob", Receiver: "Alice", CreatedAt: at(40)},
		{Sender: "alice", Receiver: "dave", CreatedAt: at(20)},
		{Sender: "alice", Receiver: "carol", CreatedAt: at(25)},
	}

	partners := RecentPartners("alice", raw)
	req.Equal([]Partner{
		{Username: "Bob", LastMessageAt: at(40)},
		{Username: "carol", LastMessageAt: at(30)},
		{Username: "dave", LastMessageAt: at(20)},
	}, partners)
}

func TestRecentPartners_Empty(t *testing.T) {
	require.Empty(t, RecentPartners("alice", nil))
}
