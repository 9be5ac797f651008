package pyparser

// Parse parses a token sequence (as produced by Tokenize) and returns
// the Program root. The only failure mode is a *SyntaxError from an
// explicit expectation check; there is no partial-AST recovery.
func Parse(tokens []Token) (*Program, error) {
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

// ParseSource tokenizes and parses source text in one call.
func ParseSource(src string) (*Program, error) {
	return Parse(Tokenize(src))
}

// blockKeywords is the fixed set of statement-head keywords that
// terminate a block. This keyword heuristic stands in for indentation
// tracking: downstream segmentation depends on exactly these boundaries.
var blockKeywords = map[string]struct{}{
	"def": {}, "if": {}, "for": {}, "while": {},
}

type parser struct {
	tokens []Token
	pos    int
}

// peekAt returns the token n positions ahead. Past the end it keeps
// returning the terminating EOF token.
func (p *parser) peekAt(n int) Token {
	i := p.pos + n
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	if len(p.tokens) > 0 {
		return p.tokens[len(p.tokens)-1]
	}
	return Token{Kind: TokenEOF}
}

func (p *parser) peek() Token {
	return p.peekAt(0)
}

func (p *parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) match(kind TokenKind) bool {
	if p.peek().Kind == kind {
		p.advance()
		return true
	}
	return false
}

// expect consumes the next token if it has the given kind, and otherwise
// fails with a SyntaxError. Expectation checks are the parser's only
// failure points; note they check the token type, not its text.
func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return Token{}, newSyntaxError(kind, tok)
	}
	return p.advance(), nil
}

func (p *parser) skipNewlines() {
	for p.match(TokenNewline) {
	}
}

func (p *parser) parseProgram() (*Program, error) {
	body := []Stmt{}
	for p.peek().Kind != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return &Program{Body: body}, nil
}

// parseStatement dispatches on the current token's keyword value; the
// first keyword decides. Anything else falls through to the
// assignment-or-expression production.
func (p *parser) parseStatement() (Stmt, error) {
	if tok := p.peek(); tok.Kind == TokenKeyword {
		switch tok.Text {
		case "def":
			return p.parseFunction()
		case "return":
			return p.parseReturn()
		case "if":
			return p.parseIf()
		case "for":
			return p.parseFor()
		case "while":
			return p.parseWhile()
		}
	}
	return p.parseAssignmentOrExpr()
}

// parseFunction parses: def name ( params ) : NEWLINE* block
func (p *parser) parseFunction() (Stmt, error) {
	if _, err := p.expect(TokenKeyword); err != nil { // def
		return nil, err
	}
	nameTok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDelim); err != nil { // (
		return nil, err
	}

	// Bare comma-separated parameter names: no defaults, no annotations.
	// A missing trailing comma or an empty list degrades silently.
	params := []string{}
	for {
		tok := p.peek()
		if tok.Text == ")" {
			break
		}
		if tok.Kind == TokenIdent {
			params = append(params, p.advance().Text)
			tok = p.peek()
		}
		if tok.Text != "," {
			break
		}
		p.advance()
	}

	if _, err := p.expect(TokenDelim); err != nil { // )
		return nil, err
	}
	if _, err := p.expect(TokenDelim); err != nil { // :
		return nil, err
	}
	p.skipNewlines()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &FunctionDef{Name: nameTok.Text, Params: params, Body: body}, nil
}

func (p *parser) parseReturn() (Stmt, error) {
	if _, err := p.expect(TokenKeyword); err != nil { // return
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Return{Value: value}, nil
}

func (p *parser) parseIf() (Stmt, error) {
	if _, err := p.expect(TokenKeyword); err != nil { // if
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDelim); err != nil { // :
		return nil, err
	}
	p.skipNewlines()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	orelse := []Stmt{}
	if tok := p.peek(); tok.Kind == TokenKeyword && tok.Text == "else" {
		p.advance()
		if _, err := p.expect(TokenDelim); err != nil { // :
			return nil, err
		}
		p.skipNewlines()
		if orelse, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return &If{Condition: condition, Body: body, Orelse: orelse}, nil
}

func (p *parser) parseFor() (Stmt, error) {
	if _, err := p.expect(TokenKeyword); err != nil { // for
		return nil, err
	}
	varTok, err := p.expect(TokenIdent)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenKeyword); err != nil { // in
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDelim); err != nil { // :
		return nil, err
	}
	p.skipNewlines()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &For{Var: varTok.Text, Iterable: iterable, Body: body}, nil
}

func (p *parser) parseWhile() (Stmt, error) {
	if _, err := p.expect(TokenKeyword); err != nil { // while
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenDelim); err != nil { // :
		return nil, err
	}
	p.skipNewlines()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &While{Condition: condition, Body: body}, nil
}

// parseBlock collects statements until the stream ends or the current
// token is a def/if/for/while keyword, which is left unconsumed. A
// return or else at the same level does not end a block by itself, and a
// nested control construct ends the enclosing block instead of nesting.
func (p *parser) parseBlock() ([]Stmt, error) {
	body := []Stmt{}
	for {
		tok := p.peek()
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenNewline {
			p.advance()
			continue
		}
		if tok.Kind == TokenKeyword {
			if _, ok := blockKeywords[tok.Text]; ok {
				break
			}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

// parseAssignmentOrExpr disambiguates with one token of forward peek: an
// identifier immediately followed by a literal "=" is an assignment,
// anything else is a bare expression statement.
func (p *parser) parseAssignmentOrExpr() (Stmt, error) {
	if tok := p.peek(); tok.Kind == TokenIdent && p.peekAt(1).Text == "=" {
		target := p.advance().Text
		p.advance() // =
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &Assign{Target: target, Value: value}, nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Expression{Value: value}, nil
}

// parseExpression parses a primary: a number or string literal, an
// identifier optionally followed by an argument list, or a parenthesized
// sub-expression. There are no infix or unary operators: a binary
// operator after a primary is left unconsumed for the caller.
func (p *parser) parseExpression() (Expr, error) {
	tok := p.peek()

	switch {
	case tok.Kind == TokenNumber:
		t := p.advance()
		return &NumberLit{Num: t.Num, Raw: t.Text}, nil

	case tok.Kind == TokenString:
		return &StringLit{Value: p.advance().Text}, nil

	case tok.Kind == TokenIdent:
		ident := p.advance().Text
		if p.peek().Text != "(" {
			return &Name{Value: ident}, nil
		}
		p.advance() // (
		args := []Expr{}
		for {
			if p.peek().Text == ")" {
				break
			}
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().Text != "," {
				break
			}
			p.advance()
		}
		if _, err := p.expect(TokenDelim); err != nil { // )
			return nil, err
		}
		return &Call{Func: ident, Args: args}, nil

	case tok.Kind == TokenDelim && tok.Text == "(":
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenDelim); err != nil { // )
			return nil, err
		}
		return expr, nil

	default:
		// Fallback: any other token degrades to its literal text.
		return &StringLit{Value: p.advance().Text}, nil
	}
}
