/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import (
	"fmt"
	"strconv"
)

// TokenKind discriminates the two token shapes produced by the lexer.
type TokenKind uint8

const (
	// TokenCommand is a single path command letter (case preserved).
	TokenCommand TokenKind = iota
	// TokenNumber is a floating-point literal.
	TokenNumber
)

// Token is one lexical unit of SVG path data: either a command letter or a
// number. Which of Cmd/Num is meaningful depends on Kind.
type Token struct {
	Kind TokenKind
	Cmd  byte
	Num  float64
}

func (t Token) String() string {
	if t.Kind == TokenCommand {
		return fmt.Sprintf("command %q", string(t.Cmd))
	}
	return fmt.Sprintf("number %v", t.Num)
}

// LexErrorKind classifies lexical errors.
type LexErrorKind uint8

const (
	// LexUnexpectedCharacter reports a byte that can start neither a command
	// nor a number (e.g. '#').
	LexUnexpectedCharacter LexErrorKind = iota
	// LexInvalidCommand reports a letter outside the path command alphabet.
	LexInvalidCommand
	// LexInvalidNumber reports a numeric literal that does not parse.
	LexInvalidNumber
)

// LexError describes a single bad token. The lexer keeps scanning after
// returning one, so the caller decides whether the stream is salvageable.
type LexError struct {
	Kind LexErrorKind
	Char byte   // offending byte for UnexpectedCharacter and InvalidCommand
	Text string // offending literal for InvalidNumber
}

func (e *LexError) Error() string {
	switch e.Kind {
	case LexInvalidCommand:
		return fmt.Sprintf("invalid path command %q", string(e.Char))
	case LexInvalidNumber:
		return fmt.Sprintf("invalid number %q", e.Text)
	default:
		return fmt.Sprintf("unexpected character %q", string(e.Char))
	}
}

// lexer scans SVG path data one token at a time. Whitespace and commas are
// insignificant separators. Each call to next yields one token or one error;
// errors do not stop the scan.
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func isPathWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == ','
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isCommandLetter(c byte) bool {
	switch c | 0x20 {
	case 'm', 'l', 'h', 'v', 'c', 's', 'q', 't', 'a', 'z':
		return true
	}
	return false
}

func (l *lexer) skipSeparators() {
	for l.pos < len(l.input) && isPathWhitespace(l.input[l.pos]) {
		l.pos++
	}
}

// next returns the next token. ok is false once the input is exhausted. A
// non-nil error covers the current token only; the position has advanced past
// it and scanning may continue.
func (l *lexer) next() (tok Token, ok bool, err error) {
	l.skipSeparators()
	if l.pos >= len(l.input) {
		return Token{}, false, nil
	}

	c := l.input[l.pos]
	if isLetter(c) {
		l.pos++
		if isCommandLetter(c) {
			return Token{Kind: TokenCommand, Cmd: c}, true, nil
		}
		return Token{}, true, &LexError{Kind: LexInvalidCommand, Char: c}
	}

	if isDigit(c) || c == '-' || c == '+' || c == '.' {
		return l.readNumber()
	}

	l.pos++
	return Token{}, true, &LexError{Kind: LexUnexpectedCharacter, Char: c}
}

// readNumber consumes one numeric literal. A sign belongs to the current
// number only as its first character or directly after the exponent marker;
// anywhere else it terminates this number and starts the next one. That is
// what lets unseparated runs like "M10-5" split into two numbers.
func (l *lexer) readNumber() (Token, bool, error) {
	start := l.pos
	hasDecimal := false
	hasExponent := false

scan:
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '-' || c == '+':
			if l.pos == start || l.input[l.pos-1] == 'e' || l.input[l.pos-1] == 'E' {
				l.pos++
			} else {
				break scan
			}
		case isDigit(c):
			l.pos++
		case c == '.' && !hasDecimal && !hasExponent:
			hasDecimal = true
			l.pos++
		case (c == 'e' || c == 'E') && !hasExponent:
			hasExponent = true
			l.pos++
		default:
			break scan
		}
	}

	lit := l.input[start:l.pos]
	n, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Token{}, true, &LexError{Kind: LexInvalidNumber, Text: lit}
	}
	return Token{Kind: TokenNumber, Num: n}, true, nil
}
