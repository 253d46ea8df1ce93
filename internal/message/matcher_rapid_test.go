package message

import (
	"regexp"
	"testing"

	"pgregory.net/rapid"
)

func TestMatcher_LiteralPatternAlwaysMatchesItself(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[a-zA-Z0-9]{1,12}`).Draw(t, "word")
		prefix := rapid.StringMatching(`[ a-z]{0,10}`).Draw(t, "prefix")
		suffix := rapid.StringMatching(`[ a-z]{0,10}`).Draw(t, "suffix")

		m, err := NewMatcher([]string{regexp.QuoteMeta(word)})
		if err != nil {
			t.Fatalf("NewMatcher: %v", err)
		}
		if !m.Matches(prefix + word + suffix) {
			t.Fatalf("pattern %q did not match %q", word, prefix+word+suffix)
		}
	})
}

func TestMatcher_BlankPatternsAreIgnored(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blanks := rapid.SliceOf(rapid.StringMatching(`[ \t]{0,4}`)).Draw(t, "blanks")
		msg := rapid.String().Draw(t, "msg")

		m, err := NewMatcher(blanks)
		if err != nil {
			t.Fatalf("NewMatcher: %v", err)
		}
		if !m.Matches(msg) {
			t.Fatalf("blank patterns %q rejected %q", blanks, msg)
		}
	})
}
