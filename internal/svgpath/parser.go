/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package svgpath

import "fmt"

// ParseErrorKind classifies parse failures.
type ParseErrorKind uint8

const (
	// ParseLexError wraps a lexical error from the token stream.
	ParseLexError ParseErrorKind = iota
	// ParseUnexpectedToken reports a token that is illegal in its position,
	// e.g. a number at top level or a letter inside an argument list.
	ParseUnexpectedToken
	// ParseMissingArgument is reserved for callers that want to report
	// exhausted argument lists with command context; argument underruns
	// surface as EndOfStream or UnexpectedToken from the argument pull.
	ParseMissingArgument
	// ParseNoStartingCommand reports a number before any command letter.
	ParseNoStartingCommand
	// ParseEndOfStream reports an empty input or one that ends mid-command.
	ParseEndOfStream
)

// ParseError is the terminal result of a failed parse. Parsing has no
// partial-success mode: any error anywhere aborts with no commands.
type ParseError struct {
	Kind  ParseErrorKind
	Token Token     // offending token for UnexpectedToken
	Cmd   byte      // command letter being parsed, when known
	Lex   *LexError // underlying lexical error for ParseLexError
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseLexError:
		return "parse: " + e.Lex.Error()
	case ParseUnexpectedToken:
		return fmt.Sprintf("parse: unexpected %s", e.Token)
	case ParseMissingArgument:
		return fmt.Sprintf("parse: missing argument for command %q", string(e.Cmd))
	case ParseNoStartingCommand:
		return "parse: path data does not start with a command"
	default:
		return "parse: unexpected end of path data"
	}
}

func (e *ParseError) Unwrap() error {
	if e.Lex != nil {
		return e.Lex
	}
	return nil
}

// parser consumes the token stream and produces absolute-coordinate
// commands. It owns private cursor state for one parse and must not be
// shared across inputs.
type parser struct {
	lex        *lexer
	peeked     bool
	peekTok    Token
	peekOK     bool
	peekErr    error
	cursor     Point
	start      Point // subpath start, the Close reset target
	control    Point // last control point, for smooth reflection
	hasControl bool
}

func newParser(input string) *parser {
	return &parser{lex: newLexer(input)}
}

func (p *parser) peek() (Token, bool, error) {
	if !p.peeked {
		p.peekTok, p.peekOK, p.peekErr = p.lex.next()
		p.peeked = true
	}
	return p.peekTok, p.peekOK, p.peekErr
}

// pending reports whether any token or token error remains.
func (p *parser) pending() bool {
	_, ok, err := p.peek()
	return ok || err != nil
}

// nextToken consumes the next token, converting lexical errors and stream
// exhaustion into parse errors.
func (p *parser) nextToken() (Token, error) {
	tok, ok, err := p.peek()
	p.peeked = false
	if err != nil {
		if le, isLex := err.(*LexError); isLex {
			return Token{}, &ParseError{Kind: ParseLexError, Lex: le}
		}
		return Token{}, &ParseError{Kind: ParseEndOfStream}
	}
	if !ok {
		return Token{}, &ParseError{Kind: ParseEndOfStream}
	}
	return tok, nil
}

// parse runs the command state machine over the whole stream.
func (p *parser) parse() ([]Command, error) {
	if !p.pending() {
		return nil, &ParseError{Kind: ParseEndOfStream}
	}

	var commands []Command
	var lastCmd byte // 0 until the first command letter is seen

	for p.pending() {
		// A bare number is only legal after a command letter.
		if lastCmd == 0 {
			if tok, ok, err := p.peek(); ok && err == nil && tok.Kind == TokenNumber {
				return nil, &ParseError{Kind: ParseNoStartingCommand}
			}
		}

		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenNumber {
			return nil, &ParseError{Kind: ParseUnexpectedToken, Token: tok}
		}

		current := tok.Cmd
		cmd, err := p.processCommand(current)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)

		// Implicit repetition: bare numbers after a command reapply it. A
		// repeated Move turns into a Line of the same case.
		for {
			next, ok, peekErr := p.peek()
			if !ok || peekErr != nil || next.Kind != TokenNumber {
				break
			}
			switch current {
			case 'M':
				current = 'L'
			case 'm':
				current = 'l'
			}
			cmd, err = p.processCommand(current)
			if err != nil {
				return nil, err
			}
			commands = append(commands, cmd)
		}
		lastCmd = current
	}
	return commands, nil
}

// processCommand consumes the argument list for one command letter and
// resolves it to absolute coordinates, updating the cursor state.
func (p *parser) processCommand(c byte) (Command, error) {
	isRel := c >= 'a' && c <= 'z'

	switch c &^ 0x20 { // upper-case the letter
	case 'M':
		pt, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		p.cursor = pt
		p.start = pt
		p.hasControl = false
		return Command{Op: OpMove, X: pt.X, Y: pt.Y}, nil

	case 'L':
		pt, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		p.cursor = pt
		p.hasControl = false
		return Command{Op: OpLine, X: pt.X, Y: pt.Y}, nil

	case 'H':
		x, err := p.nextNum()
		if err != nil {
			return Command{}, err
		}
		if isRel {
			x += p.cursor.X
		}
		p.cursor.X = x
		p.hasControl = false
		return Command{Op: OpHorizontal, X: x}, nil

	case 'V':
		y, err := p.nextNum()
		if err != nil {
			return Command{}, err
		}
		if isRel {
			y += p.cursor.Y
		}
		p.cursor.Y = y
		p.hasControl = false
		return Command{Op: OpVertical, Y: y}, nil

	case 'C':
		p1, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		p2, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		end, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		p.control = p2 // the next S reflects against cp2
		p.hasControl = true
		p.cursor = end
		return Command{Op: OpCubic, X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y, X: end.X, Y: end.Y}, nil

	case 'S':
		p2, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		end, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		p.control = p2
		p.hasControl = true
		p.cursor = end
		return Command{Op: OpSmoothCubic, X2: p2.X, Y2: p2.Y, X: end.X, Y: end.Y}, nil

	case 'Q':
		p1, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		end, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		p.control = p1 // the next T reflects against cp1
		p.hasControl = true
		p.cursor = end
		return Command{Op: OpQuadratic, X1: p1.X, Y1: p1.Y, X: end.X, Y: end.Y}, nil

	case 'T':
		cp := p.reflectControl()
		end, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		// The reflected point is the defining control point of this segment.
		p.control = cp
		p.hasControl = true
		p.cursor = end
		return Command{Op: OpSmoothQuadratic, X: end.X, Y: end.Y}, nil

	case 'A':
		rx, err := p.nextNum()
		if err != nil {
			return Command{}, err
		}
		ry, err := p.nextNum()
		if err != nil {
			return Command{}, err
		}
		rot, err := p.nextNum()
		if err != nil {
			return Command{}, err
		}
		// Flags are numbers; any nonzero value counts as set. Real-world path
		// data is sloppy here, so this stays permissive.
		large, err := p.nextNum()
		if err != nil {
			return Command{}, err
		}
		sweep, err := p.nextNum()
		if err != nil {
			return Command{}, err
		}
		end, err := p.absPoint(isRel)
		if err != nil {
			return Command{}, err
		}
		p.cursor = end
		p.hasControl = false
		return Command{
			Op: OpArc, Rx: rx, Ry: ry, Rotation: rot,
			LargeArc: large != 0, Sweep: sweep != 0,
			X: end.X, Y: end.Y,
		}, nil

	case 'Z':
		p.cursor = p.start
		p.hasControl = false
		// Close takes no arguments; a trailing number is illegal.
		if tok, ok, err := p.peek(); ok && err == nil && tok.Kind == TokenNumber {
			return Command{}, &ParseError{Kind: ParseUnexpectedToken, Token: tok}
		}
		return Command{Op: OpClose}, nil
	}

	return Command{}, &ParseError{Kind: ParseLexError, Lex: &LexError{Kind: LexInvalidCommand, Char: c}}
}

// absPoint pulls two numbers and resolves them against the cursor when the
// command letter was lower-case.
func (p *parser) absPoint(isRel bool) (Point, error) {
	x, err := p.nextNum()
	if err != nil {
		return Point{}, err
	}
	y, err := p.nextNum()
	if err != nil {
		return Point{}, err
	}
	if isRel {
		x += p.cursor.X
		y += p.cursor.Y
	}
	return Point{x, y}, nil
}

// reflectControl mirrors the previous curve's control point through the
// cursor. Without a preceding curve the reflection degenerates to the cursor
// itself.
func (p *parser) reflectControl() Point {
	if !p.hasControl {
		return p.cursor
	}
	return Point{
		X: 2*p.cursor.X - p.control.X,
		Y: 2*p.cursor.Y - p.control.Y,
	}
}

// nextNum pulls one numeric argument.
func (p *parser) nextNum() (float64, error) {
	tok, err := p.nextToken()
	if err != nil {
		return 0, err
	}
	if tok.Kind != TokenNumber {
		return 0, &ParseError{Kind: ParseUnexpectedToken, Token: tok}
	}
	return tok.Num, nil
}
