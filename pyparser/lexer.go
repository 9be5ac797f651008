package pyparser

import (
	"strings"
	"unicode"
)

// Lexer tokenizes source text into a flat token stream.
//
// The lexer never fails: unrecognized characters become Unknown tokens
// and unterminated strings truncate silently. Structural validation is
// the parser's job.
type Lexer struct {
	src  []rune
	pos  int
	line int // 1-based
	col  int // 0-based, resets after each newline
}

// NewLexer creates a Lexer for the given source text.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1}
}

// Tokenize lexes the entire source and returns the token sequence,
// terminated by exactly one EOF token.
func Tokenize(src string) []Token {
	return NewLexer(src).Tokenize()
}

// escapes is the fixed escape map for string literals. Any other escaped
// character passes through literally with the backslash dropped.
var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\'': '\'',
	'"':  '"',
	'\\': '\\',
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// peek returns the rune n positions ahead, or 0 past end of input.
func (l *Lexer) peek(n int) rune {
	i := l.pos + n
	if i < len(l.src) {
		return l.src[i]
	}
	return 0
}

func (l *Lexer) advance(n int) {
	for ; n > 0 && l.pos < len(l.src); n-- {
		c := l.src[l.pos]
		l.pos++
		if c == '\n' {
			l.line++
			l.col = 0
		} else {
			l.col++
		}
	}
}

// skipWhitespaceAndComments consumes spaces, tabs, carriage returns and
// # comments. It stops at a newline without consuming it: newlines are
// emitted as tokens, the only statement delimiter in this grammar.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch c := l.peek(0); {
		case c == ' ' || c == '\t' || c == '\r':
			l.advance(1)
		case c == '\n':
			return
		case c == '#':
			for !l.atEnd() && l.peek(0) != '\n' {
				l.advance(1)
			}
		default:
			return
		}
	}
}

// Tokenize scans the full input.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for !l.atEnd() {
		l.skipWhitespaceAndComments()
		if l.atEnd() {
			break
		}
		c := l.peek(0)

		switch {
		case c == '\n':
			tokens = append(tokens, Token{Kind: TokenNewline, Text: `\n`, Line: l.line, Col: l.col})
			l.advance(1)

		case unicode.IsLetter(c) || c == '_':
			tokens = append(tokens, l.scanIdentifierOrKeyword())

		case unicode.IsDigit(c):
			tokens = append(tokens, l.scanNumber())

		case c == '\'' || c == '"':
			tokens = append(tokens, l.scanString())

		default:
			if _, ok := delimiters[c]; ok {
				tokens = append(tokens, Token{Kind: TokenDelim, Text: string(c), Line: l.line, Col: l.col})
				l.advance(1)
				break
			}
			if tok, ok := l.scanOperator(); ok {
				tokens = append(tokens, tok)
				break
			}
			// Graceful degradation: anything else is an Unknown token.
			tokens = append(tokens, Token{Kind: TokenUnknown, Text: string(c), Line: l.line, Col: l.col})
			l.advance(1)
		}
	}
	tokens = append(tokens, Token{Kind: TokenEOF, Line: l.line, Col: l.col})
	return tokens
}

func (l *Lexer) scanIdentifierOrKeyword() Token {
	line, col := l.line, l.col
	start := l.pos
	for !l.atEnd() {
		c := l.peek(0)
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		l.advance(1)
	}
	text := string(l.src[start:l.pos])

	kind := TokenIdent
	if _, ok := keywords[text]; ok {
		kind = TokenKeyword
	} else if _, ok := operators[text]; ok {
		// Word operators: and, or, not.
		kind = TokenOp
	}
	return Token{Kind: kind, Text: text, Line: line, Col: col}
}

// scanNumber consumes digits with at most one decimal point. No point
// means an integer literal, one point a float. No exponents, no sign.
func (l *Lexer) scanNumber() Token {
	line, col := l.line, l.col
	start := l.pos
	hasDot := false
	for !l.atEnd() {
		c := l.peek(0)
		if c == '.' && !hasDot {
			hasDot = true
			l.advance(1)
			continue
		}
		if unicode.IsDigit(c) {
			l.advance(1)
			continue
		}
		break
	}
	text := string(l.src[start:l.pos])
	return Token{Kind: TokenNumber, Text: text, Num: parseNumber(text, hasDot), Line: line, Col: col}
}

// scanString consumes a quoted literal to the matching quote or end of
// input. An unterminated string truncates silently: the token carries
// whatever content was read.
func (l *Lexer) scanString() Token {
	line, col := l.line, l.col
	quote := l.peek(0)
	l.advance(1)

	var sb strings.Builder
	for !l.atEnd() {
		c := l.peek(0)
		if c == '\\' {
			l.advance(1)
			if l.atEnd() {
				break
			}
			next := l.peek(0)
			if dec, ok := escapes[next]; ok {
				sb.WriteRune(dec)
			} else {
				sb.WriteRune(next)
			}
			l.advance(1)
			continue
		}
		if c == quote {
			l.advance(1)
			break
		}
		sb.WriteRune(c)
		l.advance(1)
	}
	return Token{Kind: TokenString, Text: sb.String(), Line: line, Col: col}
}

// scanOperator does a greedy longest match against the operator set,
// trying 3-, then 2-, then 1-rune windows so multi-character operators
// like "==" are never split.
func (l *Lexer) scanOperator() (Token, bool) {
	for _, width := range []int{3, 2} {
		end := l.pos + width
		if end > len(l.src) {
			end = len(l.src)
		}
		s := string(l.src[l.pos:end])
		if _, ok := operators[s]; ok {
			tok := Token{Kind: TokenOp, Text: s, Line: l.line, Col: l.col}
			l.advance(len([]rune(s)))
			return tok, true
		}
	}
	c := string(l.peek(0))
	if _, ok := operators[c]; ok {
		tok := Token{Kind: TokenOp, Text: c, Line: l.line, Col: l.col}
		l.advance(1)
		return tok, true
	}
	return Token{}, false
}
