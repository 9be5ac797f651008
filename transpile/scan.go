package transpile

import (
	"regexp"
	"strings"
)

// The emitters share one structural scan of a segment. Only these line
// shapes are recognized; everything else is carried through as raw text
// for the emitter to mark.

type stmtKind int

const (
	stmtReturn stmtKind = iota
	stmtAssign
	stmtPrint
	stmtCall
	stmtRaw
)

type stmt struct {
	Kind stmtKind
	Name string // assignment target or callee
	Expr string // expression text, or the raw line for stmtRaw
}

type scannedFunc struct {
	Name   string
	Params []string
	Body   []stmt
}

type scanned struct {
	Funcs []scannedFunc
	Main  []stmt
}

var (
	defRe    = regexp.MustCompile(`^def\s+([A-Za-z_]\w*)\s*\((.*?)\)\s*:`)
	returnRe = regexp.MustCompile(`^return\s+(.+)`)
	assignRe = regexp.MustCompile(`^([A-Za-z_]\w*)\s*=\s*(.+)`)
	printRe  = regexp.MustCompile(`^print\((.*)\)`)
	callRe   = regexp.MustCompile(`^([A-Za-z_]\w*)\((.*)\)`)
)

// scanSegment splits a segment into function definitions and top-level
// statements. A line indented with four spaces or a tab belongs to the
// current function; a def always starts a new one, indented or not.
func scanSegment(code string) scanned {
	var sc scanned
	var cur *scannedFunc
	flush := func() {
		if cur != nil {
			sc.Funcs = append(sc.Funcs, *cur)
			cur = nil
		}
	}

	for _, raw := range strings.Split(strings.TrimSpace(code), "\n") {
		raw = strings.TrimRight(raw, " \t\r")
		line := strings.TrimSpace(raw)

		if m := defRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &scannedFunc{Name: m[1], Params: splitParams(m[2])}
			continue
		}

		if (strings.HasPrefix(raw, "    ") || strings.HasPrefix(raw, "\t")) && cur != nil {
			src := strings.TrimLeft(raw, " \t")
			switch {
			case returnRe.MatchString(src):
				cur.Body = append(cur.Body, stmt{Kind: stmtReturn, Expr: returnRe.FindStringSubmatch(src)[1]})
			case assignRe.MatchString(src):
				m := assignRe.FindStringSubmatch(src)
				cur.Body = append(cur.Body, stmt{Kind: stmtAssign, Name: m[1], Expr: m[2]})
			case printRe.MatchString(src):
				cur.Body = append(cur.Body, stmt{Kind: stmtPrint, Expr: printRe.FindStringSubmatch(src)[1]})
			default:
				cur.Body = append(cur.Body, stmt{Kind: stmtRaw, Expr: src})
			}
			continue
		}

		flush()

		switch {
		case printRe.MatchString(line):
			sc.Main = append(sc.Main, stmt{Kind: stmtPrint, Expr: printRe.FindStringSubmatch(line)[1]})
		case assignRe.MatchString(line):
			m := assignRe.FindStringSubmatch(line)
			sc.Main = append(sc.Main, stmt{Kind: stmtAssign, Name: m[1], Expr: m[2]})
		case callRe.MatchString(line):
			m := callRe.FindStringSubmatch(line)
			sc.Main = append(sc.Main, stmt{Kind: stmtCall, Name: m[1], Expr: strings.TrimSpace(m[2])})
		case line == "":
			// skip
		default:
			sc.Main = append(sc.Main, stmt{Kind: stmtRaw, Expr: line})
		}
	}
	flush()
	return sc
}

func splitParams(args string) []string {
	args = strings.TrimSpace(args)
	if args == "" {
		return nil
	}
	parts := strings.Split(args, ",")
	params := make([]string, 0, len(parts))
	for _, p := range parts {
		params = append(params, strings.TrimSpace(p))
	}
	return params
}

// escapeString prepares raw text for inclusion in a double-quoted
// string literal of any of the target languages.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
