// Package corpus reads training data for name generators: one entry per line,
// from any io.Reader or from files.
//
// Lines are cleaned before they are yielded: a UTF-8 byte order mark and
// control characters are dropped, runs of whitespace collapse to one space and
// the line is trimmed. Blank lines and lines starting with "//" are skipped,
// so corpus files can carry comments.
//
//	f, err := os.Open("romans.txt")
//	if err != nil {
//		return err
//	}
//	defer f.Close()
//
//	names, err := corpus.Collect(corpus.Lines(f))
//	if err != nil {
//		return err
//	}
//	gen, err := namegen.NewGenerator(namegen.ModeCharacter, slices.Values(names))
//
// Casing is left alone; namegen lowercases during preprocessing.
package corpus
