// Package pyparser implements the front end for the self-partitioning
// transpiler: a lexer and a recursive-descent parser for a small
// Python-like scripting language.
//
// The front end has three layers:
//
//   - Lexer: converts source text into a positioned token stream. The
//     lexer is total: every input character ends up in exactly one token
//     or a skipped whitespace/comment run, and malformed input degrades
//     to Unknown tokens or truncated strings instead of failing.
//   - Parser: consumes the token stream and builds an AST. The parser
//     fails only at explicit expectation points, returning a
//     *SyntaxError with the expected token type, the actual token, and
//     its position.
//   - AST types: the output data structures (Program, FunctionDef,
//     Assign, Return, Expression, Call, If, For, While).
//
// Usage:
//
//	tokens := pyparser.Tokenize(src)
//	program, err := pyparser.Parse(tokens)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The grammar is deliberately small: newline-delimited statements, no
// indentation tracking (blocks end at the next def/if/for/while keyword),
// and primary-only expressions (literals, names, calls, parenthesized
// groups — no infix operators). Downstream segmentation depends on these
// exact boundaries, so the shortcuts are contractual, not provisional.
package pyparser
