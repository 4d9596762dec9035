package services

import (
	"log/slog"

	"chappy/domain"
	"chappy/repositories"
)

// SeedChannels creates the metadata of the given channels when missing.
// An existing channel keeps its visibility.
func SeedChannels(log *slog.Logger, channelRepository repositories.IChannelRepository, channels []domain.Channel) error {
	for _, channel := range channels {
		_, found, err := channelRepository.GetChannel(channel.Name)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		if err := channelRepository.SaveChannel(channel); err != nil {
			return err
		}
		log.Info("channel seeded", "channel", channel.Name, "private", channel.IsPrivate)
	}
	return nil
}
