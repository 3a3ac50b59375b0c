package differ

import (
	"bufio"
	"fmt"
	"strings"

	"confdiff/core/ini"

	"github.com/spf13/afero"
)

// IgnoreSet suppresses differences whose key matches one of its tokens.
//
// A key is ignored iff its property name or its section name equals a
// token exactly — no prefix, glob, or case-insensitive matching. The zero
// value ignores nothing.
type IgnoreSet struct {
	tokens map[string]struct{}
}

// NewIgnoreSet builds an IgnoreSet from a list of tokens.
func NewIgnoreSet(tokens []string) IgnoreSet {
	if len(tokens) == 0 {
		return IgnoreSet{}
	}

	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return IgnoreSet{tokens: set}
}

// LoadIgnoreSet reads an ignore list from a file, one token per line.
// Surrounding whitespace is trimmed off each token and blank lines are
// skipped; the tokens themselves match verbatim.
func LoadIgnoreSet(fsys afero.Fs, path string) (IgnoreSet, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return IgnoreSet{}, fmt.Errorf("failed to open ignore list: %w", err)
	}
	defer f.Close()

	var tokens []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	if err := scanner.Err(); err != nil {
		return IgnoreSet{}, fmt.Errorf("failed to read ignore list: %w", err)
	}

	return NewIgnoreSet(tokens), nil
}

// Ignored reports whether the key matches the set by property or section
// name. An empty set answers false without any lookups.
func (s IgnoreSet) Ignored(key ini.Key) bool {
	if len(s.tokens) == 0 {
		return false
	}

	if _, ok := s.tokens[key.Property]; ok {
		return true
	}
	_, ok := s.tokens[key.Section]
	return ok
}

// Len returns the number of tokens in the set.
func (s IgnoreSet) Len() int {
	return len(s.tokens)
}

// Filter returns the differences that survive the ignore set.
func (s IgnoreSet) Filter(diffs []Difference) []Difference {
	if len(s.tokens) == 0 {
		return diffs
	}

	kept := diffs[:0:0]
	for _, d := range diffs {
		if !s.Ignored(d.Key) {
			kept = append(kept, d)
		}
	}
	return kept
}
