package transpile

import (
	"fmt"
	"strings"
)

// CppTranspiler emits a self-contained C++ translation unit for a
// segment.
type CppTranspiler struct{}

func (*CppTranspiler) Language() string      { return "cpp" }
func (*CppTranspiler) FileExtension() string { return ".cpp" }

func (*CppTranspiler) Transpile(segment string) string {
	sc := scanSegment(segment)

	var funcs []string
	for _, fn := range sc.Funcs {
		args := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			args[i] = "int " + p
		}
		funcs = append(funcs, fmt.Sprintf("int %s(%s) {", fn.Name, strings.Join(args, ", ")))
		for _, st := range fn.Body {
			switch st.Kind {
			case stmtReturn:
				funcs = append(funcs, fmt.Sprintf("    return %s;", st.Expr))
			case stmtAssign:
				funcs = append(funcs, fmt.Sprintf("    int %s = %s;", st.Name, st.Expr))
			case stmtPrint:
				funcs = append(funcs, fmt.Sprintf("    std::cout << %s << std::endl;", st.Expr))
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
			mainLines = append(mainLines, fmt.Sprintf("std::cout << %s << std::endl;", st.Expr))
		case stmtAssign:
			mainLines = append(mainLines, fmt.Sprintf("int %s = %s;", st.Name, st.Expr))
		case stmtCall:
			mainLines = append(mainLines, fmt.Sprintf("%s(%s);", st.Name, st.Expr))
		default:
			mainLines = append(mainLines, "// UNSUPPORTED: "+escapeString(st.Expr))
		}
	}

	out := []string{"#include <iostream>", "using namespace std;", ""}
	if len(funcs) > 0 {
		out = append(out, funcs...)
		out = append(out, "")
	}
	out = append(out, "int main() {")
	if len(mainLines) > 0 {
		for _, ml := range mainLines {
			out = append(out, "    "+ml)
		}
	} else {
		out = append(out, `    std::cout << "[C++] Segment executed" << std::endl;`)
	}
	out = append(out, "    return 0;", "}")
	return strings.Join(out, "\n")
}
