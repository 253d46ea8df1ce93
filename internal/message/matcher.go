// Package message filters commits by their message text.
package message

import (
	"regexp"
	"strings"
)

// Matcher matches commit messages against a set of regex patterns.
type Matcher struct {
	patterns []*regexp.Regexp
}

// NewMatcher creates a Matcher from a list of regex pattern strings.
// Patterns are compiled as case-insensitive and blank patterns are skipped.
// Returns an error if any pattern fails to compile.
func NewMatcher(patterns []string) (*Matcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "(?i)") {
			p = "(?i)" + p
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Matcher{patterns: compiled}, nil
}

// Matches reports whether message matches any pattern.
// A matcher without patterns matches everything.
func (m *Matcher) Matches(message string) bool {
	if m == nil || len(m.patterns) == 0 {
		return true
	}
	for _, re := range m.patterns {
		if re.MatchString(message) {
			return true
		}
	}
	return false
}
