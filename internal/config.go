package internal

import (
	"fmt"
	"strings"
	"time"

	"chappy/domain"
)

type Config struct {
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	Host               string        `env:"HOST,default=0.0.0.0"`
	Port               int           `env:"PORT,required=true"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH,required=true"`
	JWTSecret          string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration  time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	MaxContentLength   int           `env:"MAX_CONTENT_LENGTH,default=2000"`
	CharReplacement    string        `env:"CHARACTER_REPLACEMENT,default=*"`
	AutoCreateChannels bool          `env:"AUTO_CREATE_CHANNELS,default=false"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
	// DebugPort > 0 serves the store inspector on localhost
	DebugPort int `env:"DEBUG_PORT,default=0"`
	// ';' separated lists
	CensoredWords   string `env:"CENSORED_WORDS"`
	DefaultChannels string `env:"DEFAULT_CHANNELS,default=general;random"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// Words splits a ';' separated list, dropping blanks.
func Words(list string) []string {
	var words []string
	for _, word := range strings.Split(list, ";") {
		if word = strings.TrimSpace(word); word != "" {
			words = append(words, word)
		}
	}
	return words
}

// Channels parses DEFAULT_CHANNELS. A leading '!' marks a private channel:
// "general;!staff" seeds a public general and a private staff.
func Channels(list string) []domain.Channel {
	var channels []domain.Channel
	for _, name := range Words(list) {
		private := strings.HasPrefix(name, "!")
		name = strings.TrimSpace(strings.TrimPrefix(name, "!"))
		if name == "" {
			continue
		}
		channels = append(channels, domain.Channel{Name: name, IsPrivate: private})
	}
	return channels
}
