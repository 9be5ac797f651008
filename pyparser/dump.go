package pyparser

import (
	"fmt"
	"strings"
)

// Dump renders an AST as an indented tree, one node per line. It is
// meant for humans inspecting parser output, not for round-tripping.
func Dump(node Node) string {
	var sb strings.Builder
	dumpNode(&sb, node, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, node Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(sb, "%sProgram\n", indent)
		for _, stmt := range n.Body {
			dumpNode(sb, stmt, depth+1)
		}
	case *FunctionDef:
		fmt.Fprintf(sb, "%sFunctionDef %s(%s)\n", indent, n.Name, strings.Join(n.Params, ", "))
		for _, stmt := range n.Body {
			dumpNode(sb, stmt, depth+1)
		}
	case *Assign:
		fmt.Fprintf(sb, "%sAssign %s =\n", indent, n.Target)
		dumpNode(sb, n.Value, depth+1)
	case *Return:
		fmt.Fprintf(sb, "%sReturn\n", indent)
		dumpNode(sb, n.Value, depth+1)
	case *Expression:
		fmt.Fprintf(sb, "%sExpression\n", indent)
		dumpNode(sb, n.Value, depth+1)
	case *If:
		fmt.Fprintf(sb, "%sIf\n", indent)
		dumpNode(sb, n.Condition, depth+1)
		fmt.Fprintf(sb, "%sBody:\n", indent)
		for _, stmt := range n.Body {
			dumpNode(sb, stmt, depth+1)
		}
		if len(n.Orelse) > 0 {
			fmt.Fprintf(sb, "%sOrelse:\n", indent)
			for _, stmt := range n.Orelse {
				dumpNode(sb, stmt, depth+1)
			}
		}
	case *For:
		fmt.Fprintf(sb, "%sFor %s in\n", indent, n.Var)
		dumpNode(sb, n.Iterable, depth+1)
		for _, stmt := range n.Body {
			dumpNode(sb, stmt, depth+1)
		}
	case *While:
		fmt.Fprintf(sb, "%sWhile\n", indent)
		dumpNode(sb, n.Condition, depth+1)
		for _, stmt := range n.Body {
			dumpNode(sb, stmt, depth+1)
		}
	case *Call:
		fmt.Fprintf(sb, "%sCall %s\n", indent, n.Func)
		for _, arg := range n.Args {
			dumpNode(sb, arg, depth+1)
		}
	case *NumberLit:
		fmt.Fprintf(sb, "%sNumber %s\n", indent, n.Num)
	case *StringLit:
		fmt.Fprintf(sb, "%sString %q\n", indent, n.Value)
	case *Name:
		fmt.Fprintf(sb, "%sName %s\n", indent, n.Value)
	}
}
