// Package suggest provides keyword autocomplete for the editor.
package suggest

import "strings"

// Keywords completed by the editor, in suggestion order.
var keywords = []string{
	"print", "input", "len", "type", "range", "for", "in", "not", "and", "or",
	"else", "elif", "while", "break", "continue", "return", "yield", "pass",
	"raise", "try", "except", "finally", "with", "as", "def",
}

// Suggest returns the keywords starting with query.
func Suggest(query string) []string {
	matches := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.HasPrefix(kw, query) {
			matches = append(matches, kw)
		}
	}
	return matches
}
