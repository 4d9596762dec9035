//go:generate go run go.uber.org/mock/mockgen -source=direct_message.go -destination=../mocks/mock_direct_message_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"strings"

	"chappy/domain"
	"chappy/keys"
	"chappy/storage"
)

type IDirectMessageRepository interface {
	StoreDirectMessage(message domain.DirectMessage) error
	GetConversation(userA, userB string) ([]domain.DirectMessage, error)
	GetDirectMessagesFor(username string) ([]domain.DirectMessage, error)
}

type DirectMessageRepository struct {
	store storage.KeyedStore
	log   *slog.Logger
}

func NewDirectMessageRepository(store storage.KeyedStore, log *slog.Logger) DirectMessageRepository {
	return DirectMessageRepository{store: store, log: log}
}

// StoreDirectMessage writes exactly one record, under the conversation key
// shared by both participants.
func (d DirectMessageRepository) StoreDirectMessage(message domain.DirectMessage) error {
	return d.store.Put(
		keys.DMConversationKey(message.Sender, message.Receiver),
		keys.MessageSortKey(message.CreatedAt, message.ID),
		encodeDirectMessage(message),
	)
}

// GetConversation returns every message exchanged by two users, whoever sent it.
// userA and userB must not designate the same user.
func (d DirectMessageRepository) GetConversation(userA, userB string) ([]domain.DirectMessage, error) {
	items, err := d.store.Query(keys.DMConversationKey(userA, userB), keys.MessagePrefix())
	if err != nil {
		return nil, err
	}
	return decodeDirectMessages(items)
}

// GetDirectMessagesFor returns every direct message sent or received by username.
// Conversations are found by parsing partition keys, so only the matching
// partitions have their values read.
func (d DirectMessageRepository) GetDirectMessagesFor(username string) ([]domain.DirectMessage, error) {
	self := strings.ToLower(username)
	items, err := d.store.Scan(func(pk keys.PartitionKey, sk keys.SortKey) bool {
		a, b, ok := keys.ParseDMConversationKey(pk)
		if !ok || !strings.HasPrefix(string(sk), string(keys.MessagePrefix())) {
			return false
		}
		return a == self || b == self
	})
	if err != nil {
		return nil, err
	}
	d.log.Debug("Direct messages scanned", "username", username, "count", len(items))
	return decodeDirectMessages(items)
}

func decodeDirectMessages(items []storage.Item) ([]domain.DirectMessage, error) {
	messages := make([]domain.DirectMessage, 0, len(items))
	for _, item := range items {
		message, err := decodeDirectMessage(item.Value)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}
