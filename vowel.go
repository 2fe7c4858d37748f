package namegen

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// VowelClassifier reports whether a character counts as a vowel when words are
// split into clusters.
type VowelClassifier func(r rune) bool

const romanceVowels = "aeiouAEIOU"

// IsRomanceVowel reports whether r is a, e, i, o or u, with or without
// diacritics. Ligatures that decompose to a vowel (ĳ) count as vowels.
// 'y', 'w', 'æ', 'œ' and 'ø' are consonants.
func IsRomanceVowel(r rune) bool {
	if r <= unicode.MaxASCII {
		return strings.ContainsRune(romanceVowels, r)
	}
	return strings.ContainsRune(romanceVowels, baseLetter(r))
}

// VowelsIncluding returns a classifier that accepts the romance vowels plus
// every character of extra. Characters whose base letter is in extra also
// count, so VowelsIncluding("æ") accepts 'ǣ'.
func VowelsIncluding(extra string) VowelClassifier {
	return func(r rune) bool {
		if IsRomanceVowel(r) || strings.ContainsRune(extra, r) {
			return true
		}
		return strings.ContainsRune(extra, baseLetter(r))
	}
}

// baseLetter strips diacritics by compatibility decomposition and returns the
// first resulting rune.
func baseLetter(r rune) rune {
	for _, b := range norm.NFKD.String(string(r)) {
		return b
	}
	return r
}
