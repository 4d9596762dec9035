//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"log/slog"

	"chappy/domain"
	"chappy/keys"
	"chappy/storage"
)

type IMessageRepository interface {
	StoreChannelMessage(message domain.ChannelMessage) error
	GetChannelMessages(channel string) ([]domain.ChannelMessage, error)
}

type MessageRepository struct {
	store storage.KeyedStore
	log   *slog.Logger
}

func NewMessageRepository(store storage.KeyedStore, log *slog.Logger) MessageRepository {
	return MessageRepository{store: store, log: log}
}

// StoreChannelMessage writes the message in its channel partition.
// The sort key is "MESSAGE#{timestamp_padded}#{uuid}" so a range query returns
// the channel in chronological order and two messages of the same nanosecond
// do not overwrite each other.
func (m MessageRepository) StoreChannelMessage(message domain.ChannelMessage) error {
	return m.store.Put(
		keys.ChannelKey(message.Channel),
		keys.MessageSortKey(message.CreatedAt, message.ID),
		encodeChannelMessage(message),
	)
}

// GetChannelMessages returns the whole history of a channel in store order.
func (m MessageRepository) GetChannelMessages(channel string) ([]domain.ChannelMessage, error) {
	items, err := m.store.Query(keys.ChannelKey(channel), keys.MessagePrefix())
	if err != nil {
		return nil, err
	}
	messages := make([]domain.ChannelMessage, 0, len(items))
	for _, item := range items {
		message, err := decodeChannelMessage(item.Value)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	m.log.Debug("Channel history loaded", "channel", channel, "count", len(messages))
	return messages, nil
}
