package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode"
)

const commentPrefix = "//"

// Clean drops control characters and the byte order mark, collapses
// whitespace runs to a single space and trims the result.
func Clean(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\uFEFF' || (unicode.IsControl(r) && !unicode.IsSpace(r)) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Lines yields the cleaned, non-blank, non-comment lines of r. A read error
// is yielded once, as the last element.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := Clean(sc.Text())
			if line == "" || strings.HasPrefix(line, commentPrefix) {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", errors.Join(ErrReadCorpus, err))
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var out []string
	for line, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, nil
}

// ReadFiles reads and concatenates the entries of every file, in order.
func ReadFiles(paths ...string) ([]string, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	var out []string
	for _, p := range paths {
		lines, err := readFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}

func readFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrReadCorpus, err)
	}
	defer f.Close()

	lines, err := Collect(Lines(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
