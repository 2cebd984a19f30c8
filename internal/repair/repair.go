// Package repair detects and collapses duplicate or incomplete definitions
// that generated code commonly contains. A generic duplicate pass runs first,
// then an ordered list of independent repair rules. Every pass is best-effort:
// unmatched or ambiguous input is left untouched, and on unusual input a rule
// may under-fix rather than guess.
package repair

import (
	"strings"

	"codesieve/internal/pysrc"
)

// Rule is a single repair heuristic over the line sequence. Apply returns
// the rewritten lines and true, or the input untouched and false when the
// rule's pattern does not match.
type Rule interface {
	Name() string
	Apply(lines []string) ([]string, bool)
}

// DefaultRules returns the built-in rule chain in application order.
func DefaultRules() []Rule {
	return []Rule{nodeTreeRule{}, ctorCollapseRule{}}
}

// Fix removes duplicate class and method definitions, then runs the default
// repair rules. It never fails; the worst case is returning code unchanged.
func Fix(code string) string {
	return FixWithRules(code, DefaultRules())
}

// FixWithRules is Fix with a caller-supplied rule chain.
func FixWithRules(code string, rules []Rule) string {
	lines := dropDuplicateDefs(strings.Split(code, "\n"))
	for _, rule := range rules {
		if rewritten, ok := rule.Apply(lines); ok {
			lines = rewritten
		}
	}
	return strings.Join(lines, "\n")
}

// dropDuplicateDefs deletes the span of every repeated class definition and
// every repeated non-constructor method. Methods are keyed by the nearest
// class whose header precedes them, or unqualified at top level. Constructors
// are exempt here; the dedicated collapse rule picks between them.
func dropDuplicateDefs(lines []string) []string {
	type classDef struct {
		name string
		line int
	}
	var classes []classDef
	seenClass := make(map[string]bool)
	seenDef := make(map[string]bool)

	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		l := pysrc.ClassifyLine(lines[i])

		switch l.Kind {
		case pysrc.ClassHeader:
			if seenClass[l.Name] {
				i = pysrc.SpanEnd(lines, i)
				continue
			}
			seenClass[l.Name] = true
			classes = append(classes, classDef{name: l.Name, line: i})

		case pysrc.DefHeader:
			key := l.Name
			if l.Indent > 0 {
				for _, c := range classes {
					if c.line < i {
						key = c.name + "." + l.Name
					}
				}
			}
			if seenDef[key] && l.Name != "__init__" {
				i = pysrc.SpanEnd(lines, i)
				continue
			}
			seenDef[key] = true
		}

		out = append(out, lines[i])
		i++
	}
	return out
}
