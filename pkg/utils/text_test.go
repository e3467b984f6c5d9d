package utils

import (
	"strings"
	"testing"
)

func TestNormalizeDisplayText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain short text unchanged",
			input: "Night market beside the harbor",
			want:  "Night market beside the harbor",
		},
		{
			name:  "markup stripped",
			input: "<p>Open late, <b>cash only</b></p>",
			want:  "Open late, cash only",
		},
		{
			name:  "nbsp escape replaced",
			input: "Pier&nbsp;2 Art Center",
			want:  "Pier 2 Art Center",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  <div> seaside walk </div>  ",
			want:  "seaside walk",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDisplayText(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeDisplayTextTruncates(t *testing.T) {
	long := strings.Repeat("a", 100)
	got := NormalizeDisplayText(long)
	want := strings.Repeat("a", AddressFallbackLimit) + "..."
	if got != want {
		t.Errorf("got %d chars %q, want %q", len(got), got, want)
	}

	exact := strings.Repeat("b", AddressFallbackLimit)
	if got := NormalizeDisplayText(exact); got != exact {
		t.Errorf("text at the limit must not gain an ellipsis, got %q", got)
	}

	// Rune-based truncation must not split multibyte characters.
	cjk := strings.Repeat("高", 90)
	got = NormalizeDisplayText(cjk)
	if !strings.HasSuffix(got, "...") || len([]rune(got)) != AddressFallbackLimit+3 {
		t.Errorf("multibyte truncation wrong, got %d runes", len([]rune(got)))
	}
}
