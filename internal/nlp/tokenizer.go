package nlp

import "unicode"

type TokenKind string

const (
	TokenWord        TokenKind = "word"
	TokenNumber      TokenKind = "number"
	TokenPunctuation TokenKind = "punctuation"
	TokenWhitespace  TokenKind = "whitespace"
)

// Token is one typed lexical span of the input.
type Token struct {
	Value    string
	Kind     TokenKind
	Position int
}

// tokenClasses is the fixed match priority: at each position the first class
// whose predicate accepts the current rune wins and consumes the longest run.
var tokenClasses = []struct {
	kind TokenKind
	is   func(rune) bool
}{
	{TokenWord, func(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }},
	{TokenNumber, func(r rune) bool { return r >= '0' && r <= '9' }},
	{TokenPunctuation, func(r rune) bool {
		switch r {
		case '.', ',', '!', '?', ';':
			return true
		}
		return false
	}},
	{TokenWhitespace, unicode.IsSpace},
}

// Tokenize splits text into typed tokens, left to right. Characters that fit
// no class are silently skipped; every other character lands in exactly one
// token.
func Tokenize(text string) []Token {
	var tokens []Token
	runes := []rune(text)

	pos := 0
	for pos < len(runes) {
		matched := false
		for _, class := range tokenClasses {
			if !class.is(runes[pos]) {
				continue
			}
			end := pos + 1
			for end < len(runes) && class.is(runes[end]) {
				end++
			}
			tokens = append(tokens, Token{
				Value:    string(runes[pos:end]),
				Kind:     class.kind,
				Position: pos,
			})
			pos = end
			matched = true
			break
		}
		if !matched {
			pos++
		}
	}

	return tokens
}
