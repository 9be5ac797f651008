package pyparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF     TokenKind = iota
	TokenKeyword           // reserved word (def, return, if, ...)
	TokenIdent             // [A-Za-z_][A-Za-z0-9_]*
	TokenNumber            // integer or float literal
	TokenString            // '...' or "..." with escape processing
	TokenOp                // operator (symbolic or word: and, or, not)
	TokenDelim             // single-character delimiter
	TokenNewline           // one token per newline; the only statement delimiter
	TokenUnknown           // any character no other rule claims
)

var tokenNames = map[TokenKind]string{
	TokenEOF:     "EOF",
	TokenKeyword: "KEYWORD",
	TokenIdent:   "IDENT",
	TokenNumber:  "NUMBER",
	TokenString:  "STRING",
	TokenOp:      "OP",
	TokenDelim:   "DELIM",
	TokenNewline: "NEWLINE",
	TokenUnknown: "UNKNOWN",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
// Line is 1-based; Col is 0-based and resets after each newline.
type Token struct {
	Kind TokenKind
	Text string // literal payload (decoded for strings, raw for others, "" for EOF)
	Num  Number // populated when Kind == TokenNumber
	Line int
	Col  int
}

// The classification sets below are read-only, process-wide configuration.

// keywords is the reserved-word set. It includes "in" so that the
// for-loop's membership keyword lexes as a KEYWORD token.
var keywords = map[string]struct{}{
	"def": {}, "return": {}, "if": {}, "elif": {}, "else": {},
	"for": {}, "while": {}, "in": {},
	"import": {}, "from": {}, "as": {}, "class": {}, "with": {},
	"try": {}, "except": {}, "finally": {}, "raise": {}, "yield": {},
	"lambda": {}, "pass": {}, "break": {}, "continue": {},
	"async": {}, "await": {}, "global": {}, "nonlocal": {},
}

// operators holds symbolic operators plus the word operators caught by
// the identifier scan.
var operators = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "/": {}, "%": {}, "//": {}, "**": {},
	"=": {}, "==": {}, "!=": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {},
	"and": {}, "or": {}, "not": {},
	"|": {}, "&": {}, "^": {}, "~": {}, "<<": {}, ">>": {},
}

var delimiters = map[rune]struct{}{
	'(': {}, ')': {}, '[': {}, ']': {}, '{': {}, '}': {},
	',': {}, ':': {}, '.': {}, ';': {},
}
