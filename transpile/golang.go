package transpile

import (
	"fmt"
	"strings"
)

// GoTranspiler emits a self-contained Go main package for a segment.
type GoTranspiler struct{}

func (*GoTranspiler) Language() string      { return "go" }
func (*GoTranspiler) FileExtension() string { return ".go" }

func (*GoTranspiler) Transpile(segment string) string {
	sc := scanSegment(segment)

	var funcs []string
	for _, fn := range sc.Funcs {
		args := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			args[i] = p + " int"
		}
		funcs = append(funcs, fmt.Sprintf("func %s(%s) int {", fn.Name, strings.Join(args, ", ")))
		for _, st := range fn.Body {
			switch st.Kind {
			case stmtReturn:
				funcs = append(funcs, "    return "+st.Expr)
			case stmtAssign:
				funcs = append(funcs, fmt.Sprintf("    var %s int = %s", st.Name, st.Expr))
			case stmtPrint:
				funcs = append(funcs, fmt.Sprintf("    fmt.Println(%s)", st.Expr))
			default:
				funcs = append(funcs, "    // [UNTRANSLATED] "+st.Expr)
			}
		}
		funcs = append(funcs, "}")
	}

	var mainLines []string
	for _, st := range sc.Main {
		switch st.Kind {
		case stmtPrint:
			mainLines = append(mainLines, fmt.Sprintf("fmt.Println(%s)", st.Expr))
		case stmtAssign:
			mainLines = append(mainLines, fmt.Sprintf("var %s int = %s", st.Name, st.Expr))
		case stmtCall:
			mainLines = append(mainLines, fmt.Sprintf("%s(%s)", st.Name, st.Expr))
		default:
			mainLines = append(mainLines, fmt.Sprintf("fmt.Println(\"UNSUPPORTED: %s\")", escapeString(st.Expr)))
		}
	}

	out := []string{"package main", "", `import "fmt"`, ""}
	if len(funcs) > 0 {
		out = append(out, funcs...)
		out = append(out, "")
	}
	out = append(out, "func main() {")
	if len(mainLines) > 0 {
		for _, ml := range mainLines {
			out = append(out, "    "+ml)
		}
	} else {
		out = append(out, `    fmt.Println("Go segment executed")`)
	}
	out = append(out, "}")
	return strings.Join(out, "\n")
}
