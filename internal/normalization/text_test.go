package normalization

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "smart_quotes",
			in:   "“Revenue grew” said the CEO, ‘strongly’",
			want: `"Revenue grew" said the CEO, 'strongly'`,
		},
		{
			name: "dashes_and_nbsp",
			in:   "Q1–2024 results—record revenue",
			want: "Q1-2024 results-record revenue",
		},
		{
			name: "control_characters",
			in:   "EPS\x00 of\x08 $1.25\x1f\x7f",
			want: "EPS of $1.25",
		},
		{
			name: "whitespace_collapse",
			in:   "  net \t income \n\n rose   12%  ",
			want: "net income rose 12%",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeText(tc.in))
		})
	}
}

func TestSanitizeTextIdempotent(t *testing.T) {
	inputs := []string{
		"“plain” text – with \x01 noise\n and   gaps",
		"already clean text",
		"",
		"\x00\x01\x02",
	}
	for _, in := range inputs {
		once := SanitizeText(in)
		assert.Equal(t, once, SanitizeText(once))
	}
}

func TestSanitizeTextNeverEmitsControlOrTypographic(t *testing.T) {
	in := "a“b”c‘d’e–f—g\x00h\x1fi\x7fj k"
	out := SanitizeText(in)
	for _, r := range out {
		assert.False(t, r < 0x20 || r == 0x7f, "control char %q in output", r)
	}
	assert.NotContains(t, out, "“")
	assert.NotContains(t, out, "”")
	assert.NotContains(t, out, "‘")
	assert.NotContains(t, out, "’")
	assert.NotContains(t, out, " ")
}

func TestSplitWords(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		maxWords int
		want     []string
	}{
		{
			name:     "exact_multiple",
			in:       "a b c d e f",
			maxWords: 2,
			want:     []string{"a b", "c d", "e f"},
		},
		{
			name:     "remainder",
			in:       "a b c d e",
			maxWords: 2,
			want:     []string{"a b", "c d", "e"},
		},
		{
			name:     "single_chunk",
			in:       "a b c",
			maxWords: 10,
			want:     []string{"a b c"},
		},
		{
			name:     "empty",
			in:       "",
			maxWords: 5,
			want:     nil,
		},
		{
			name:     "whitespace_only",
			in:       "   \n\t ",
			maxWords: 5,
			want:     nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitWords(tc.in, tc.maxWords))
		})
	}
}

func TestSplitWordsProperties(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 100)
	wordCount := len(strings.Fields(text))

	for _, maxWords := range []int{1, 7, 100, 499, 5000} {
		chunks := SplitWords(text, maxWords)

		wantChunks := (wordCount + maxWords - 1) / maxWords
		require.Len(t, chunks, wantChunks, "maxWords=%d", maxWords)

		var rejoined []string
		for _, c := range chunks {
			words := strings.Fields(c)
			assert.LessOrEqual(t, len(words), maxWords)
			rejoined = append(rejoined, words...)
		}
		assert.Equal(t, strings.Fields(text), rejoined)
	}
}
