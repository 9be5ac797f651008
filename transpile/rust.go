package transpile

import (
	"fmt"
	"strings"
)

// RustTranspiler emits a self-contained Rust program for a segment. It
// uses the same in-process line-pattern strategy as the other targets,
// so output depends only on the segment text.
type RustTranspiler struct{}

func (*RustTranspiler) Language() string      { return "rust" }
func (*RustTranspiler) FileExtension() string { return ".rs" }

func (*RustTranspiler) Transpile(segment string) string {
	sc := scanSegment(segment)

	var funcs []string
	for _, fn := range sc.Funcs {
		args := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			args[i] = p + ": i64"
		}
		funcs = append(funcs, fmt.Sprintf("fn %s(%s) -> i64 {", fn.Name, strings.Join(args, ", ")))
		for _, st := range fn.Body {
			switch st.Kind {
			case stmtReturn:
				funcs = append(funcs, fmt.Sprintf("    return %s;", st.Expr))
			case stmtAssign:
				funcs = append(funcs, fmt.Sprintf("    let %s: i64 = %s;", st.Name, st.Expr))
			case stmtPrint:
				funcs = append(funcs, fmt.Sprintf("    println!(\"{}\", %s);", st.Expr))
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
			mainLines = append(mainLines, fmt.Sprintf("println!(\"{}\", %s);", st.Expr))
		case stmtAssign:
			mainLines = append(mainLines, fmt.Sprintf("let %s: i64 = %s;", st.Name, st.Expr))
		case stmtCall:
			mainLines = append(mainLines, fmt.Sprintf("%s(%s);", st.Name, st.Expr))
		default:
			mainLines = append(mainLines, fmt.Sprintf("println!(\"UNSUPPORTED: %s\");", escapeString(st.Expr)))
		}
	}

	var out []string
	if len(funcs) > 0 {
		out = append(out, funcs...)
		out = append(out, "")
	}
	out = append(out, "fn main() {")
	if len(mainLines) > 0 {
		for _, ml := range mainLines {
			out = append(out, "    "+ml)
		}
	} else {
		out = append(out, `    println!("Rust segment executed");`)
	}
	out = append(out, "}")
	return strings.Join(out, "\n")
}
