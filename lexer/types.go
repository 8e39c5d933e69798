package lexer

import (
	"unicode/utf8"
)

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid         TokenType = iota // Byte that is not valid UTF-8
	TokenOpenExpression            // Open parenthesis: "("
	TokenCloseExpression           // Close parenthesis: ")"
	TokenQuote                     // Single quote: "'"
	TokenDoubleQuote               // Double quote: '"'
	TokenNewLine                   // Newline: "\n"
	TokenWhitespace                // Space, tab, formfeed or carriage return: \s\f\t\r
	TokenSign                      // Arithmetic sign: "+" or "-"
	TokenWord                      // A letter followed by letters, digits, "_", "!" or "?"
	TokenInteger                   // Digits
	TokenSequence                  // Any other run of characters
	TokenLiteral                   // Merged tokens
	TokenEOF                       // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenExpression:  {'('},
	TokenCloseExpression: {')'},
	TokenQuote:           {'\''},
	TokenDoubleQuote:     {'"'},
	TokenNewLine:         {'\n'},
	TokenWhitespace:      []rune(" \f\t\r"),
	TokenSign:            {'+', '-'},
	TokenWord:            []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	TokenInteger:         []rune("0123456789"),
}

// wordTail lists the characters allowed after the first letter of a word.
var wordTail = []rune("_!?")

var tokenNames = map[TokenType]string{
	TokenInvalid:         "invalid",
	TokenOpenExpression:  "open_expression",
	TokenCloseExpression: "close_expression",
	TokenQuote:           "quote",
	TokenDoubleQuote:     "double_quote",
	TokenNewLine:         "newline",
	TokenWhitespace:      "separator",
	TokenSign:            "sign",
	TokenWord:            "word",
	TokenInteger:         "integer",
	TokenSequence:        "sequence",
	TokenLiteral:         "literal",
	TokenEOF:             "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isWordTail(r rune) bool {
	if isWord(r) || isInteger(r) {
		return true
	}
	for _, v := range wordTail {
		if v == r {
			return true
		}
	}
	return false
}

// isBreak reports whether r ends a sequence of otherwise unknown characters.
// utf8.RuneError breaks too, so an invalid byte always gets its own token.
func isBreak(r rune) bool {
	return isWhitespace(r) || isNewLine(r) || isDoubleQuote(r) ||
		isOpenExpression(r) || isCloseExpression(r) || r == utf8.RuneError
}
