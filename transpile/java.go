package transpile

import (
	"fmt"
	"strings"
)

// JavaClassName is the class (and file) name for generated Java
// segments. javac requires the file name to match the public class.
const JavaClassName = "Generated"

// JavaTranspiler emits a self-contained Java class for a segment.
type JavaTranspiler struct{}

func (*JavaTranspiler) Language() string      { return "java" }
func (*JavaTranspiler) FileExtension() string { return ".java" }

func (*JavaTranspiler) Transpile(segment string) string {
	sc := scanSegment(segment)

	var methods []string
	for _, fn := range sc.Funcs {
		args := make([]string, len(fn.Params))
		for i, p := range fn.Params {
			args[i] = "int " + p
		}
		methods = append(methods, fmt.Sprintf("public static int %s(%s) {", fn.Name, strings.Join(args, ", ")))
		for _, st := range fn.Body {
			switch st.Kind {
			case stmtReturn:
				methods = append(methods, fmt.Sprintf("    return %s;", st.Expr))
			case stmtAssign:
				methods = append(methods, fmt.Sprintf("    int %s = %s;", st.Name, st.Expr))
			case stmtPrint:
				methods = append(methods, fmt.Sprintf("    System.out.println(%s);", st.Expr))
			default:
				methods = append(methods, "    // [UNTRANSLATED] "+st.Expr)
			}
		}
		methods = append(methods, "}")
	}

	var mainLines []string
	for _, st := range sc.Main {
		switch st.Kind {
		case stmtPrint:
			mainLines = append(mainLines, fmt.Sprintf("System.out.println(%s);", st.Expr))
		case stmtAssign:
			mainLines = append(mainLines, fmt.Sprintf("int %s = %s;", st.Name, st.Expr))
		case stmtCall:
			mainLines = append(mainLines, fmt.Sprintf("%s(%s);", st.Name, st.Expr))
		default:
			mainLines = append(mainLines, fmt.Sprintf("System.out.println(\"UNSUPPORTED: %s\");", escapeString(st.Expr)))
		}
	}

	out := []string{fmt.Sprintf("public class %s {", JavaClassName)}
	for _, m := range methods {
		out = append(out, "    "+m)
	}
	out = append(out, "    public static void main(String[] args) {")
	if len(mainLines) > 0 {
		for _, ml := range mainLines {
			out = append(out, "        "+ml)
		}
	} else {
		out = append(out, `        System.out.println("Java segment executed");`)
	}
	out = append(out, "    }", "}")
	return strings.Join(out, "\n")
}
