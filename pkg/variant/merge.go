package variant

import "strings"

// Merge concatenates token lists into a fresh flat list, preserving call
// order. It never deduplicates or groups tokens: conflict resolution is the
// renderer's job, which applies the last occurrence of a visual property.
// Callers therefore place override lists after computed ones to guarantee the
// overrides win. Merging the same override list again yields the same
// effective visual state, so repeated application is harmless.
func Merge(lists ...[]string) []string {
	size := 0
	for _, list := range lists {
		size += len(list)
	}

	out := make([]string, 0, size)
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

// Split breaks a class string into its tokens. Tokens are separated by any
// run of whitespace; an empty or blank string yields no tokens.
func Split(class string) []string {
	return strings.Fields(class)
}

// Join renders a token list as a single space-separated class string.
func Join(tokens []string) string {
	return strings.Join(tokens, " ")
}
