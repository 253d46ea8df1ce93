package message

import "testing"

func TestNewMatcher_ValidPatterns(t *testing.T) {
	m, err := NewMatcher([]string{`\bfix(ed|es)?\b`, `\bbug\b`, `\bhotfix\b`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.patterns) != 3 {
		t.Errorf("expected 3 compiled patterns, got %d", len(m.patterns))
	}
}

func TestNewMatcher_InvalidPattern(t *testing.T) {
	if _, err := NewMatcher([]string{`[invalid`}); err == nil {
		t.Fatal("expected error for invalid pattern, got nil")
	}
}

func TestNewMatcher_SkipsBlankPatterns(t *testing.T) {
	m, err := NewMatcher([]string{"fix", "", "  ", "bug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.patterns) != 2 {
		t.Errorf("expected 2 compiled patterns, got %d", len(m.patterns))
	}
}

func TestMatches(t *testing.T) {
	m, err := NewMatcher([]string{`\bfix(ed|es)?\b`, `\bbug\b`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"matches fix", "fix: resolve null pointer", true},
		{"matches fixes", "fixes #123", true},
		{"matches bug", "bug in auth module", true},
		{"case insensitive", "FIX: resolve issue", true},
		{"multi-line body", "chore: bump deps\n\nalso fixes a bug", true},
		{"no match", "add new feature", false},
		{"partial word no match", "prefix fixation suffix", false},
		{"empty message", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.message); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestMatches_NoPatternsMatchesEverything(t *testing.T) {
	m, _ := NewMatcher(nil)
	if !m.Matches("anything at all") {
		t.Error("expected true when no patterns configured")
	}

	var nilMatcher *Matcher
	if !nilMatcher.Matches("") {
		t.Error("expected nil matcher to match")
	}
}
