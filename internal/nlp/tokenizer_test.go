package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_MixedClasses(t *testing.T) {
	tokens := Tokenize("I have a headache!")

	expected := []Token{
		{Value: "I", Kind: TokenWord, Position: 0},
		{Value: " ", Kind: TokenWhitespace, Position: 1},
		{Value: "have", Kind: TokenWord, Position: 2},
		{Value: " ", Kind: TokenWhitespace, Position: 6},
		{Value: "a", Kind: TokenWord, Position: 7},
		{Value: " ", Kind: TokenWhitespace, Position: 8},
		{Value: "headache", Kind: TokenWord, Position: 9},
		{Value: "!", Kind: TokenPunctuation, Position: 17},
	}
	assert.Equal(t, expected, tokens)
}

func TestTokenize_SkipsUnclassifiedRunes(t *testing.T) {
	// The apostrophe fits no class, so "can't" splits into two word tokens.
	tokens := Tokenize("can't")

	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Value: "can", Kind: TokenWord, Position: 0}, tokens[0])
	assert.Equal(t, Token{Value: "t", Kind: TokenWord, Position: 4}, tokens[1])
}

func TestTokenize_NumberRuns(t *testing.T) {
	tokens := Tokenize("for 12 days")

	require.Len(t, tokens, 5)
	assert.Equal(t, Token{Value: "12", Kind: TokenNumber, Position: 4}, tokens[2])
	assert.Equal(t, Token{Value: "days", Kind: TokenWord, Position: 7}, tokens[4])
}

func TestTokenize_PunctuationRun(t *testing.T) {
	tokens := Tokenize("really?!")

	require.Len(t, tokens, 2)
	assert.Equal(t, Token{Value: "?!", Kind: TokenPunctuation, Position: 6}, tokens[1])
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}
