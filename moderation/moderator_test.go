package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

func TestModerator_Censor(t *testing.T) {
	mod, err := NewModerator([]string{"badger", "snake"}, replacementChar)
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple word", "The badger is here", "The ****** is here"},
		{"repeated", "badger badger", "****** ******"},
		{"leet and punctuation", "Look at B.4.d.g.€r !", "Look at ********** !"},
		{"uppercase and dashes", "S-N-A-K-E", "*********"},
		{"accents untouched", "Un été avec un badger", "Un été avec un ******"},
		{"clean text", "hello there", "hello there"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, mod.Censor(tt.input))
		})
	}
}

func TestModerator_WithoutWordsIsNoop(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator(nil, replacementChar)
	req.NoError(err)
	req.Equal("badger", mod.Censor("badger"))

	mod, err = NewModerator([]string{"", "  "}, replacementChar)
	req.NoError(err)
	req.Equal("badger", mod.Censor("badger"))
}
