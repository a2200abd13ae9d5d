package normalization

import (
	"strings"
)

// typographic characters replaced with their ASCII equivalents before text
// is handed to the summarization stage.
var asciiReplacer = strings.NewReplacer(
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"–", "-", // en dash
	"—", "-", // em dash
	" ", " ", // non-breaking space
)

// SanitizeText cleans extracted filing text: typographic quotes and dashes
// become ASCII, ASCII control characters (except newline and tab) are
// stripped, whitespace runs collapse to a single space and the result is
// trimmed. Total and idempotent.
func SanitizeText(text string) string {
	text = asciiReplacer.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if (r < 0x20 && r != '\n' && r != '\t') || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// SplitWords splits text on word boundaries into consecutive chunks of at
// most maxWords words each; the last chunk may be shorter. Words are never
// dropped or reordered. Empty input yields no chunks.
func SplitWords(text string, maxWords int) []string {
	if maxWords < 1 {
		maxWords = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
