package document

import "strings"

// Tokenize splits text on whitespace and normalizes every chunk: only ASCII
// letters and digits are kept, letters are lowercased, and chunks left empty
// are dropped.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if word := Normalize(field); word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// Normalize applies the token rules to a single chunk.
func Normalize(chunk string) string {
	var b strings.Builder
	b.Grow(len(chunk))
	for i := 0; i < len(chunk); i++ {
		c := chunk[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		}
	}
	return b.String()
}
