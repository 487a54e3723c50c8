package chatbot

import (
	"strings"
	"unicode"
)

// Tokenize lowercases the message, strips punctuation and splits it into
// search tokens. Tokens of length <= 2 are dropped so filler words like
// "is", "a" and "to" never reach the scorer. Duplicates are kept on purpose:
// a repeated token scores repeatedly.
func Tokenize(message string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(message))

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) > 2 {
			tokens = append(tokens, word)
		}
	}

	return tokens
}
