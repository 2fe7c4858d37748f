package namegen

import (
	"fmt"
	"strings"
)

// Mode selects the symbol type of a chain.
type Mode string

const (
	// ModeCharacter chains individual characters.
	ModeCharacter Mode = "character"
	// ModeCluster chains vowel and consonant clusters.
	ModeCluster Mode = "cluster"
)

func (m Mode) String() string { return string(m) }

// ParseMode accepts "character"/"char"/"characters" and "cluster"/"clusters",
// case-insensitively. An empty string means ModeCharacter.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "character", "characters", "char":
		return ModeCharacter, nil
	case "cluster", "clusters":
		return ModeCluster, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
