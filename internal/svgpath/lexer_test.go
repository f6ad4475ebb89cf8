/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import (
	"errors"
	"testing"
)

// collectTokens drains the lexer, failing on the first lexical error.
func collectTokens(t *testing.T, input string) []Token {
	t.Helper()
	lx := newLexer(input)
	var toks []Token
	for {
		tok, ok, err := lx.next()
		if err != nil {
			t.Fatalf("lex %q: %v", input, err)
		}
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func cmdTok(c byte) Token    { return Token{Kind: TokenCommand, Cmd: c} }
func numTok(n float64) Token { return Token{Kind: TokenNumber, Num: n} }

func TestLexerTokenize(t *testing.T) {
	cases := []struct {
		input string
		want  []Token
	}{
		{"", nil},
		{"  \n \t", nil},
		{"M 10 -5", []Token{cmdTok('M'), numTok(10), numTok(-5)}},
		{"M10-5", []Token{cmdTok('M'), numTok(10), numTok(-5)}},
		{"M-10-7", []Token{cmdTok('M'), numTok(-10), numTok(-7)}},
		{"M 0,0 L 10,8 h 1e-4 v 1.5e3 z", []Token{
			cmdTok('M'), numTok(0), numTok(0),
			cmdTok('L'), numTok(10), numTok(8),
			cmdTok('h'), numTok(0.0001),
			cmdTok('v'), numTok(1500),
			cmdTok('z'),
		}},
	}

	for _, tc := range cases {
		got := collectTokens(t, tc.input)
		if len(got) != len(tc.want) {
			t.Fatalf("%q: got %d tokens, want %d (%v)", tc.input, len(got), len(tc.want), got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: token %d = %v, want %v", tc.input, i, got[i], tc.want[i])
			}
		}
	}
}

func TestLexerErrors(t *testing.T) {
	cases := []struct {
		input string
		kind  LexErrorKind
	}{
		{"M 8 7 X 7 8", LexInvalidCommand},
		{"M 10 # 20", LexUnexpectedCharacter},
		{"M -.e10", LexInvalidNumber},
	}

	for _, tc := range cases {
		lx := newLexer(tc.input)
		var lexErr *LexError
		for {
			_, ok, err := lx.next()
			if err != nil {
				if !errors.As(err, &lexErr) {
					t.Fatalf("%q: error %v is not a LexError", tc.input, err)
				}
				break
			}
			if !ok {
				t.Fatalf("%q: expected a lexical error, saw none", tc.input)
			}
		}
		if lexErr.Kind != tc.kind {
			t.Fatalf("%q: error kind = %v, want %v", tc.input, lexErr.Kind, tc.kind)
		}
	}
}

// A lexical error poisons only its own token; scanning continues afterwards.
func TestLexerContinuesAfterError(t *testing.T) {
	lx := newLexer("X 5")
	_, ok, err := lx.next()
	if !ok || err == nil {
		t.Fatalf("expected an invalid command error first")
	}
	tok, ok, err := lx.next()
	if err != nil || !ok {
		t.Fatalf("expected the number after the error, got ok=%v err=%v", ok, err)
	}
	if tok.Kind != TokenNumber || tok.Num != 5 {
		t.Fatalf("unexpected token after error: %v", tok)
	}
}
