// Package moderation masks configured words in message content before it is stored.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks every occurrence of its dictionary, ignoring case,
// punctuation, spacing and common leet substitutions ("b.4.d" matches "bad").
// A Moderator without words returns content unchanged.
type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
}

// leet maps look-alike characters back to the letter they stand for.
var leet = map[rune]rune{
	'4': 'a', '@': 'a',
	'3': 'e', '€': 'e',
	'1': 'i', '!': 'i', '|': 'i',
	'0': 'o',
	'5': 's', '$': 's',
}

func NewModerator(words []string, replacement rune) (Moderator, error) {
	patterns := make([][]rune, 0, len(words))
	for _, word := range words {
		if folded, _ := fold(word); len(folded) > 0 {
			patterns = append(patterns, folded)
		}
	}
	if len(patterns) == 0 {
		return Moderator{replacement: replacement}, nil
	}

	matcher := new(goahocorasick.Machine)
	if err := matcher.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: matcher, replacement: replacement}, nil
}

// Censor replaces the original characters of each match, noise included,
// and leaves everything around them untouched.
func (m Moderator) Censor(content string) string {
	if m.matcher == nil {
		return content
	}
	folded, positions := fold(content)
	if len(folded) == 0 {
		return content
	}
	terms := m.matcher.MultiPatternSearch(folded, false)
	if len(terms) == 0 {
		return content
	}

	runes := []rune(content)
	for _, term := range terms {
		first, last := term.Pos, term.Pos+len(term.Word)-1
		if first < 0 || last >= len(positions) {
			continue
		}
		for i := positions[first]; i <= positions[last]; i++ {
			runes[i] = m.replacement
		}
	}
	return string(runes)
}

// fold lower-cases s, undoes leet substitutions and drops noise characters.
// positions[i] is the index in []rune(s) of the i-th folded rune.
func fold(s string) ([]rune, []int) {
	runes := []rune(s)
	folded := make([]rune, 0, len(runes))
	positions := make([]int, 0, len(runes))
	for i, r := range runes {
		if plain, ok := leet[r]; ok {
			r = plain
		}
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		folded = append(folded, unicode.ToLower(r))
		positions = append(positions, i)
	}
	return folded, positions
}
