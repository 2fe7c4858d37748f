package namegen

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	// CharacterSentinel marks the start and end of a character sequence.
	CharacterSentinel = '#'
	// ClusterSentinel marks the start and end of a cluster sequence.
	ClusterSentinel = "#"
)

// Normalize prepares a raw training string: NFC composition, lowercasing and
// removal of the sentinel character, so that a sentinel can only ever appear
// at the ends of a sequence.
func Normalize(s string) string {
	// Casers keep state and must not be shared between goroutines.
	s = cases.Lower(language.Und).String(norm.NFC.String(s))
	return strings.ReplaceAll(s, ClusterSentinel, "")
}

// CharacterSequences turns raw strings into sentinel-bracketed rune sequences.
// An empty string yields just the two sentinels.
func CharacterSequences(words iter.Seq[string]) iter.Seq[[]rune] {
	return func(yield func([]rune) bool) {
		for w := range words {
			n := Normalize(w)
			seq := make([]rune, 0, len(n)+2)
			seq = append(seq, CharacterSentinel)
			seq = append(seq, []rune(n)...)
			seq = append(seq, CharacterSentinel)
			if !yield(seq) {
				return
			}
		}
	}
}

// ClusterSequences turns raw strings into sentinel-bracketed cluster
// sequences. An empty string yields just the two sentinels.
func ClusterSequences(words iter.Seq[string], isVowel VowelClassifier) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for w := range words {
			seq := []string{ClusterSentinel}
			if n := Normalize(w); n != "" {
				clusters, _ := Clusterize(n, isVowel)
				seq = append(seq, clusters...)
			}
			seq = append(seq, ClusterSentinel)
			if !yield(seq) {
				return
			}
		}
	}
}
