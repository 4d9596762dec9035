// Package keys derives the storage keys of every record kept by chappy.
//
// Records live in partitions (one per channel, one per DM conversation, one
// per user) and are ordered inside a partition by their sort key. Derivation
// is pure: no I/O and no failure path.
//
// Layout:
//
//	CHANNEL#{name}                  META#                            channel metadata
//	CHANNEL#{name}                  MESSAGE#{unix_nano:019}#{uuid}   channel message
//	DM#{lower(a)}\x1f{lower(b)}     MESSAGE#{unix_nano:019}#{uuid}   direct message, a < b
//	USER#{lower(name)}              PROFILE#{lower(name)}            user profile
package keys

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// PartitionKey groups records that are read together.
type PartitionKey string

// SortKey orders records inside a partition.
type SortKey string

const (
	channelPrefix = "CHANNEL#"
	dmPrefix      = "DM#"
	userPrefix    = "USER#"
	metaPrefix    = "META#"
	messagePrefix = "MESSAGE#"
	profilePrefix = "PROFILE#"

	// pairSeparator joins the two participants of a DM partition.
	// Names containing control characters are rejected, so it cannot collide.
	pairSeparator = "\x1f"
)

func ChannelKey(channelName string) PartitionKey {
	return PartitionKey(channelPrefix + channelName)
}

func ChannelMetaKey() SortKey {
	return metaPrefix
}

// ChannelPartitionPrefix matches every channel partition.
func ChannelPartitionPrefix() PartitionKey {
	return channelPrefix
}

// DMConversationKey returns the partition shared by two users.
// Names are compared case-insensitively and the smaller one goes first, so
// DMConversationKey(a, b) == DMConversationKey(b, a).
// Callers must reject SameUser(a, b) beforehand.
func DMConversationKey(userA, userB string) PartitionKey {
	a, b := canonical(userA), canonical(userB)
	if b < a {
		a, b = b, a
	}
	return PartitionKey(dmPrefix + a + pairSeparator + b)
}

// ParseDMConversationKey is the inverse of DMConversationKey.
// The returned names are lower-cased.
func ParseDMConversationKey(pk PartitionKey) (string, string, bool) {
	rest, ok := strings.CutPrefix(string(pk), dmPrefix)
	if !ok {
		return "", "", false
	}
	a, b, ok := strings.Cut(rest, pairSeparator)
	if !ok || a == "" || b == "" {
		return "", "", false
	}
	return a, b, true
}

// DMPartitionPrefix matches every DM conversation partition.
func DMPartitionPrefix() PartitionKey {
	return dmPrefix
}

func UserKey(username string) PartitionKey {
	return PartitionKey(userPrefix + canonical(username))
}

func UserProfileKey(username string) SortKey {
	return SortKey(profilePrefix + canonical(username))
}

// UserPartitionPrefix matches every user partition.
func UserPartitionPrefix() PartitionKey {
	return userPrefix
}

func ProfilePrefix() SortKey {
	return profilePrefix
}

// MessageSortKey orders messages by creation time.
// The 19-digit zero padding keeps lexicographic order equal to numeric order,
// the id keeps two messages of the same nanosecond from overwriting each other.
func MessageSortKey(createdAt time.Time, id uuid.UUID) SortKey {
	return SortKey(fmt.Sprintf("%s%019d#%s", messagePrefix, createdAt.UnixNano(), id))
}

func MessagePrefix() SortKey {
	return messagePrefix
}

// SameUser reports whether two usernames designate the same account.
func SameUser(a, b string) bool {
	return canonical(a) == canonical(b)
}

// ValidName reports whether name can be embedded in a key.
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsControl) < 0
}

func canonical(username string) string {
	return strings.ToLower(username)
}
