//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../mocks/mock_channel_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"slices"
	"strings"

	"chappy/domain"
	"chappy/keys"
	"chappy/storage"
)

type IChannelRepository interface {
	ListChannels() ([]domain.Channel, error)
	GetChannel(name string) (domain.Channel, bool, error)
	SaveChannel(channel domain.Channel) error
}

type ChannelRepository struct {
	store storage.KeyedStore
	log   *slog.Logger
}

func NewChannelRepository(store storage.KeyedStore, log *slog.Logger) ChannelRepository {
	return ChannelRepository{store: store, log: log}
}

// ListChannels scans every channel metadata record, sorted by name.
func (c ChannelRepository) ListChannels() ([]domain.Channel, error) {
	items, err := c.store.Scan(storage.HasPartitionPrefix(keys.ChannelPartitionPrefix(), keys.ChannelMetaKey()))
	if err != nil {
		return nil, err
	}
	channels := make([]domain.Channel, 0, len(items))
	for _, item := range items {
		channel, err := decodeChannel(item.Value)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}
	slices.SortFunc(channels, func(a, b domain.Channel) int {
		return strings.Compare(a.Name, b.Name)
	})
	return channels, nil
}

// GetChannel reads the metadata record of one channel.
// The boolean is false when the channel has never been created.
func (c ChannelRepository) GetChannel(name string) (domain.Channel, bool, error) {
	items, err := c.store.Query(keys.ChannelKey(name), keys.ChannelMetaKey())
	if err != nil {
		return domain.Channel{}, false, err
	}
	if len(items) == 0 {
		return domain.Channel{}, false, nil
	}
	channel, err := decodeChannel(items[0].Value)
	if err != nil {
		return domain.Channel{}, false, err
	}
	return channel, true, nil
}

func (c ChannelRepository) SaveChannel(channel domain.Channel) error {
	return c.store.Put(keys.ChannelKey(channel.Name), keys.ChannelMetaKey(), encodeChannel(channel))
}
