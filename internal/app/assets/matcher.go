package assets

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher checks whether a file name is an art asset
type Matcher interface {
	Match(name string) bool
	Ref(path string) (string, bool)
}

// matcher implements the Matcher interface
type matcher struct {
	patterns []glob.Glob
}

// NewMatcher creates a new Matcher from base-name glob patterns
func NewMatcher(patterns []string) (Matcher, error) {
	m := &matcher{
		patterns: make([]glob.Glob, 0, len(patterns)),
	}

	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, err
		}

		m.patterns = append(m.patterns, g)
	}

	return m, nil
}

// Match reports whether the base name of the given file matches any pattern
func (m *matcher) Match(name string) bool {
	base := filepath.Base(name)

	for _, g := range m.patterns {
		if g.Match(base) {
			return true
		}
	}

	return false
}

// Ref returns the image ref a matching file provides: its base name without extension
func (m *matcher) Ref(path string) (string, bool) {
	if !m.Match(path) {
		return "", false
	}

	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base)), true
}
