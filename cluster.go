package namegen

// Clusterize splits word into maximal runs of characters that agree on
// isVowel. Adjacent clusters alternate between vowels and consonants and
// concatenating them yields word again. A nil classifier means IsRomanceVowel.
//
//	Clusterize("foobar", nil) // ["f" "oo" "b" "a" "r"]
func Clusterize(word string, isVowel VowelClassifier) ([]string, error) {
	if word == "" {
		return nil, ErrEmptyWord
	}
	if isVowel == nil {
		isVowel = IsRomanceVowel
	}

	var (
		clusters []string
		start    int
		vowel    bool
	)
	for i, r := range word {
		if i == 0 {
			vowel = isVowel(r)
			continue
		}
		if isVowel(r) != vowel {
			clusters = append(clusters, word[start:i])
			start = i
			vowel = !vowel
		}
	}
	return append(clusters, word[start:]), nil
}
