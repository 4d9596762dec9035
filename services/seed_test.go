package services

import (
	"log/slog"
	"testing"

	"chappy/domain"
	"chappy/errors"
	"chappy/mocks"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSeedChannels_KeepsExistingVisibility(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIChannelRepository(ctrl)

	repo.EXPECT().GetChannel("general").Return(domain.Channel{Name: "general", IsPrivate: true}, true, nil)
	repo.EXPECT().GetChannel("random").Return(domain.Channel{}, false, nil)
	repo.EXPECT().SaveChannel(domain.Channel{Name: "random"}).Return(nil)

	err := SeedChannels(slog.Default(), repo, []domain.Channel{{Name: "general"}, {Name: "random"}})

	req.NoError(err)
}

func TestSeedChannels_StopsOnStorageFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIChannelRepository(ctrl)

	repo.EXPECT().GetChannel("general").Return(domain.Channel{}, false, errors.StorageUnavailable(badger.ErrDBClosed))

	err := SeedChannels(slog.Default(), repo, []domain.Channel{{Name: "general"}, {Name: "random"}})

	req.ErrorIs(err, errors.ErrStorageUnavailable)
}
