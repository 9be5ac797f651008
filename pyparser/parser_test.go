package pyparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseProgram(t *testing.T, src string) *Program {
	t.Helper()
	program, err := ParseSource(src)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

func TestParseEmptyInput(t *testing.T) {
	program := parseProgram(t, "")
	assert.NotNil(t, program.Body)
	assert.Empty(t, program.Body)
}

func TestParseFunctionDef(t *testing.T) {
	program := parseProgram(t, "def add(a, b):\n    return a\n")
	require.Len(t, program.Body, 1)

	fn, ok := program.Body[0].(*FunctionDef)
	require.True(t, ok, "expected *FunctionDef, got %T", program.Body[0])
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)

	require.Len(t, fn.Body, 1)
	ret, ok := fn.Body[0].(*Return)
	require.True(t, ok, "expected *Return, got %T", fn.Body[0])
	name, ok := ret.Value.(*Name)
	require.True(t, ok, "expected *Name, got %T", ret.Value)
	assert.Equal(t, "a", name.Value)
}

func TestParseFunctionNoParams(t *testing.T) {
	program := parseProgram(t, "def f():\n    return 1\n")
	fn := program.Body[0].(*FunctionDef)
	assert.NotNil(t, fn.Params)
	assert.Empty(t, fn.Params)
}

func TestParseFunctionEmptyBody(t *testing.T) {
	program := parseProgram(t, "def f():\n")
	fn := program.Body[0].(*FunctionDef)
	assert.NotNil(t, fn.Body)
	assert.Empty(t, fn.Body)
}

func TestParseFunctionTrailingComma(t *testing.T) {
	program := parseProgram(t, "def f(a,):\n    return a\n")
	fn := program.Body[0].(*FunctionDef)
	assert.Equal(t, []string{"a"}, fn.Params)
}

func TestParseAssignment(t *testing.T) {
	program := parseProgram(t, "x = 5")
	require.Len(t, program.Body, 1)

	assign, ok := program.Body[0].(*Assign)
	require.True(t, ok, "expected *Assign, got %T", program.Body[0])
	assert.Equal(t, "x", assign.Target)
	num, ok := assign.Value.(*NumberLit)
	require.True(t, ok)
	assert.False(t, num.Num.IsFloat)
	assert.Equal(t, int64(5), num.Num.Int)
}

func TestParseBareCallIsExpression(t *testing.T) {
	program := parseProgram(t, "foo(5)")
	require.Len(t, program.Body, 1)

	exprStmt, ok := program.Body[0].(*Expression)
	require.True(t, ok, "expected *Expression, got %T", program.Body[0])
	call, ok := exprStmt.Value.(*Call)
	require.True(t, ok)
	assert.Equal(t, "foo", call.Func)
	require.Len(t, call.Args, 1)
	assert.Equal(t, int64(5), call.Args[0].(*NumberLit).Num.Int)
}

func TestParseCallNestedArgs(t *testing.T) {
	program := parseProgram(t, "outer(inner(1), 2, 'x')")
	call := program.Body[0].(*Expression).Value.(*Call)
	require.Len(t, call.Args, 3)

	inner := call.Args[0].(*Call)
	assert.Equal(t, "inner", inner.Func)
	require.Len(t, inner.Args, 1)
	assert.Equal(t, int64(1), inner.Args[0].(*NumberLit).Num.Int)
	assert.Equal(t, int64(2), call.Args[1].(*NumberLit).Num.Int)
	assert.Equal(t, "x", call.Args[2].(*StringLit).Value)
}

func TestParseCallNoArgs(t *testing.T) {
	call := parseProgram(t, "f()").Body[0].(*Expression).Value.(*Call)
	assert.NotNil(t, call.Args)
	assert.Empty(t, call.Args)
}

func TestParseParenthesizedExpression(t *testing.T) {
	program := parseProgram(t, "(x)")
	name := program.Body[0].(*Expression).Value.(*Name)
	assert.Equal(t, "x", name.Value)
}

func TestParseWhile(t *testing.T) {
	program := parseProgram(t, "while flag:\n    step()\n")
	require.Len(t, program.Body, 1)

	loop := program.Body[0].(*While)
	assert.Equal(t, "flag", loop.Condition.(*Name).Value)
	require.Len(t, loop.Body, 1)
	assert.Equal(t, "step", loop.Body[0].(*Expression).Value.(*Call).Func)
}

func TestParseFor(t *testing.T) {
	program := parseProgram(t, "for item in items:\n    handle(item)\n")
	require.Len(t, program.Body, 1)

	loop := program.Body[0].(*For)
	assert.Equal(t, "item", loop.Var)
	assert.Equal(t, "items", loop.Iterable.(*Name).Value)
	require.Len(t, loop.Body, 1)
}

func TestParseIfBody(t *testing.T) {
	program := parseProgram(t, "if ready:\n    x = 1\n")
	cond := program.Body[0].(*If)
	assert.Equal(t, "ready", cond.Condition.(*Name).Value)
	require.Len(t, cond.Body, 1)
	assert.NotNil(t, cond.Orelse)
	assert.Empty(t, cond.Orelse)
}

// A nested control construct at the same level ends the enclosing block:
// the while-loop becomes a sibling of the conditional, not its child.
func TestParseBlockEndsAtControlKeyword(t *testing.T) {
	program := parseProgram(t, "if ready:\n    x = 1\nwhile busy:\n    wait()\n")
	require.Len(t, program.Body, 2)

	cond, ok := program.Body[0].(*If)
	require.True(t, ok)
	require.Len(t, cond.Body, 1)
	_, ok = cond.Body[0].(*Assign)
	assert.True(t, ok)

	loop, ok := program.Body[1].(*While)
	require.True(t, ok, "while must be a sibling of the if, got %T", program.Body[1])
	assert.Equal(t, "busy", loop.Condition.(*Name).Value)
}

// An else at the same level does not end a block: it is swallowed by the
// degrading expression production inside the true branch.
func TestParseElseDoesNotEndBlock(t *testing.T) {
	program := parseProgram(t, "if a:\n    x = 1\nelse:\n    y = 2\n")
	require.Len(t, program.Body, 1)

	cond := program.Body[0].(*If)
	assert.Empty(t, cond.Orelse)
	require.Len(t, cond.Body, 4) // x=1, "else", ":", y=2
	_, ok := cond.Body[0].(*Assign)
	assert.True(t, ok)
	assert.Equal(t, "else", cond.Body[1].(*Expression).Value.(*StringLit).Value)
	assert.Equal(t, ":", cond.Body[2].(*Expression).Value.(*StringLit).Value)
	_, ok = cond.Body[3].(*Assign)
	assert.True(t, ok)
}

// Return does not end a block either; it stays inside the current body.
func TestParseReturnStaysInBlock(t *testing.T) {
	program := parseProgram(t, "def f(a):\n    x = a\n    return x\n")
	fn := program.Body[0].(*FunctionDef)
	require.Len(t, fn.Body, 2)
	_, ok := fn.Body[1].(*Return)
	assert.True(t, ok)
}

func TestParseNestedFunctionEndsEnclosingBlock(t *testing.T) {
	program := parseProgram(t, "def f():\n    x = 1\ndef g():\n    y = 2\n")
	require.Len(t, program.Body, 2)
	assert.Equal(t, "f", program.Body[0].(*FunctionDef).Name)
	assert.Equal(t, "g", program.Body[1].(*FunctionDef).Name)
}

// The expression grammar has no infix operators: the operator and the
// right-hand operand are left for the statement loop, which degrades
// them to expression statements.
func TestParseBinaryOperatorLeftUnconsumed(t *testing.T) {
	program := parseProgram(t, "x = 1 + 2")
	require.Len(t, program.Body, 3)

	assign := program.Body[0].(*Assign)
	assert.Equal(t, int64(1), assign.Value.(*NumberLit).Num.Int)
	assert.Equal(t, "+", program.Body[1].(*Expression).Value.(*StringLit).Value)
	assert.Equal(t, int64(2), program.Body[2].(*Expression).Value.(*NumberLit).Num.Int)
}

func TestParseTopLevelNewlinesBecomeExpressions(t *testing.T) {
	program := parseProgram(t, "x = 1\ny = 2")
	require.Len(t, program.Body, 3)
	_, ok := program.Body[0].(*Assign)
	assert.True(t, ok)
	assert.Equal(t, `\n`, program.Body[1].(*Expression).Value.(*StringLit).Value)
	_, ok = program.Body[2].(*Assign)
	assert.True(t, ok)
}

func TestParseAssignRequiresImmediateEquals(t *testing.T) {
	// "==" is a single OP token, so this is not an assignment.
	program := parseProgram(t, "x == 5")
	require.Len(t, program.Body, 3)
	assert.Equal(t, "x", program.Body[0].(*Expression).Value.(*Name).Value)
	assert.Equal(t, "==", program.Body[1].(*Expression).Value.(*StringLit).Value)
}

func TestParseStringAssignment(t *testing.T) {
	program := parseProgram(t, `msg = "hello\n"`)
	assign := program.Body[0].(*Assign)
	assert.Equal(t, "hello\n", assign.Value.(*StringLit).Value)
}

func TestParseSyntaxErrorMissingName(t *testing.T) {
	_, err := ParseSource("def (a):\n    return a\n")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, TokenIdent, synErr.Expected)
	assert.Equal(t, TokenDelim, synErr.Got.Kind)
	assert.Equal(t, "(", synErr.Got.Text)
	assert.Equal(t, 1, synErr.Got.Line)
	assert.Equal(t, 4, synErr.Got.Col)
}

func TestParseSyntaxErrorMissingColon(t *testing.T) {
	_, err := ParseSource("def f(a)\n    return a\n")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, TokenDelim, synErr.Expected)
	assert.Equal(t, TokenNewline, synErr.Got.Kind)
}

func TestParseSyntaxErrorForWithoutIn(t *testing.T) {
	_, err := ParseSource("for x of items:\n    pass\n")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, TokenKeyword, synErr.Expected)
	assert.Equal(t, "of", synErr.Got.Text)
}

func TestParseFailureYieldsNoProgram(t *testing.T) {
	program, err := ParseSource("for 5 in xs:\n    pass\n")
	require.Error(t, err)
	assert.Nil(t, program)
}

func TestParseDeterministic(t *testing.T) {
	src := "def f(a, b):\n    c = add(a, b)\n    return c\nf(1, 2)\n"
	first := parseProgram(t, src)
	second := parseProgram(t, src)
	assert.Equal(t, first, second)
}
