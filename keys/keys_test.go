package keys

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestDMConversationKey_IsSymmetric(t *testing.T) {
	req := require.New(t)
	pairs := [][2]string{
		{"alice", "bob"},
		{"Bob", "alice"},
		{"zoe", "Zack"},
		{"a", "aa"},
		{"élodie", "Émile"},
		{"#weird", "name with spaces"},
	}
	for _, p := range pairs {
		req.Equal(DMConversationKey(p[0], p[1]), DMConversationKey(p[1], p[0]), "pair %v", p)
	}
}

func TestDMConversationKey_IsCaseInsensitive(t *testing.T) {
	req := require.New(t)
	req.Equal(DMConversationKey("Bob", "alice"), DMConversationKey("bob", "Alice"))
	req.Equal(PartitionKey("DM#alice\x1fbob"), DMConversationKey("Bob", "alice"))
}

func TestDMConversationKey_DoesNotCollideOnSeparatorLikeNames(t *testing.T) {
	req := require.New(t)
	req.NotEqual(DMConversationKey("a#b", "c"), DMConversationKey("a", "b#c"))
}

func TestParseDMConversationKey(t *testing.T) {
	req := require.New(t)

	a, b, ok := ParseDMConversationKey(DMConversationKey("Zed", "Amy"))
	req.True(ok)
	req.Equal("amy", a)
	req.Equal("zed", b)

	_, _, ok = ParseDMConversationKey(ChannelKey("general"))
	req.False(ok)

	_, _, ok = ParseDMConversationKey("DM#lonely")
	req.False(ok)
}

func TestMessageSortKey_FollowsTimestamps(t *testing.T) {
	req := require.New(t)
	at := time.Unix(0, 100)
	earlier := MessageSortKey(at, uuid.New())
	later := MessageSortKey(at.Add(time.Nanosecond*900), uuid.New())
	muchLater := MessageSortKey(at.Add(time.Hour), uuid.New())

	req.Less(string(earlier), string(later))
	req.Less(string(later), string(muchLater))
	req.True(strings.HasPrefix(string(earlier), string(MessagePrefix())))
}

func TestMessageSortKey_SameInstantDoesNotCollide(t *testing.T) {
	req := require.New(t)
	at := time.Now()
	req.NotEqual(MessageSortKey(at, uuid.New()), MessageSortKey(at, uuid.New()))
}

func TestUserKeys_AreCaseInsensitive(t *testing.T) {
	req := require.New(t)
	req.Equal(UserKey("Alice"), UserKey("alice"))
	req.Equal(UserProfileKey("ALICE"), UserProfileKey("alice"))
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain", "alice", true},
		{"channel with hash and space", "#Coders group", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"unit separator", "a\x1fb", false},
		{"nul", "a\x00b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidName(tt.input))
		})
	}
}

func TestSameUser(t *testing.T) {
	req := require.New(t)
	req.True(SameUser("alice", "ALICE"))
	req.False(SameUser("alice", "bob"))
}
