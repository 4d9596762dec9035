package internal

import (
	"testing"

	"chappy/domain"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9090")
	t.Setenv("BADGER_FILEPATH", "/tmp/chappy")
	t.Setenv("JWT_SECRET", "s3cr3t")

	var config Config
	_, err := env.UnmarshalFromEnviron(&config)
	req.NoError(err)
	req.Equal(9090, config.Port)
	req.Equal("INFO", config.LogLevel)
	req.Equal(2000, config.MaxContentLength)
	req.False(config.AutoCreateChannels)
	req.Equal([]domain.Channel{{Name: "general"}, {Name: "random"}}, Channels(config.DefaultChannels))
}

func TestChannels(t *testing.T) {
	req := require.New(t)
	req.Equal([]domain.Channel{
		{Name: "general"},
		{Name: "staff", IsPrivate: true},
	}, Channels(" general ; !staff ;; ! "))
	req.Empty(Channels(""))
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)
	r, err := CharacterRune("#")
	req.NoError(err)
	req.Equal('#', r)

	_, err = CharacterRune("##")
	req.Error(err)
}
