package dto

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerptShortContentUnchanged(t *testing.T) {
	if got := Excerpt("short note"); got != "short note" {
		t.Errorf("expected unchanged content, got %q", got)
	}
}

func TestExcerptExactlyHundredRunes(t *testing.T) {
	content := strings.Repeat("a", 100)
	if got := Excerpt(content); got != content {
		t.Errorf("content at the boundary must not be truncated")
	}
}

func TestExcerptTruncatesWithEllipsis(t *testing.T) {
	content := strings.Repeat("a", 150)
	got := Excerpt(content)

	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected ellipsis suffix, got %q", got)
	}
	if utf8.RuneCountInString(got) != 101 {
		t.Errorf("expected 100 runes plus ellipsis, got %d runes", utf8.RuneCountInString(got))
	}
}

func TestExcerptCountsRunesNotBytes(t *testing.T) {
	// 120 multi-byte runes; byte-based truncation would split one.
	content := strings.Repeat("æ", 120)
	got := Excerpt(content)

	if !utf8.ValidString(got) {
		t.Fatal("excerpt split a multi-byte rune")
	}
	if utf8.RuneCountInString(got) != 101 {
		t.Errorf("expected 100 runes plus ellipsis, got %d", utf8.RuneCountInString(got))
	}
}
