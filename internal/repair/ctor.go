package repair

import (
	"strings"

	"codesieve/internal/pysrc"
)

// ctorCollapseRule keeps exactly one constructor per class when a class
// defines several. The survivor is the constructor with the most parameters,
// ties broken by the most lines — a proxy for "the more complete definition",
// kept as a documented heuristic rather than a verified choice.
type ctorCollapseRule struct{}

func (ctorCollapseRule) Name() string { return "ctor_collapse" }

type ctorSpan struct {
	start, end int
	params     int
}

func (ctorCollapseRule) Apply(lines []string) ([]string, bool) {
	ctors := make(map[string][]ctorSpan)
	currentClass := ""

	i := 0
	for i < len(lines) {
		l := pysrc.ClassifyLine(lines[i])
		switch {
		case l.Kind == pysrc.ClassHeader:
			currentClass = l.Name
		case l.Kind == pysrc.DefHeader && l.Name == "__init__" && currentClass != "":
			end := pysrc.SpanEnd(lines, i)
			ctors[currentClass] = append(ctors[currentClass], ctorSpan{
				start:  i,
				end:    end,
				params: paramCount(lines[i]),
			})
			i = end
			continue
		}
		i++
	}

	var doomed []ctorSpan
	for _, spans := range ctors {
		if len(spans) < 2 {
			continue
		}
		best := 0
		for j := 1; j < len(spans); j++ {
			if better(spans[j], spans[best]) {
				best = j
			}
		}
		for j, s := range spans {
			if j != best {
				doomed = append(doomed, s)
			}
		}
	}
	if len(doomed) == 0 {
		return lines, false
	}

	// Delete back to front so earlier span indexes stay valid.
	for i := 0; i < len(doomed); i++ {
		for j := i + 1; j < len(doomed); j++ {
			if doomed[j].start > doomed[i].start {
				doomed[i], doomed[j] = doomed[j], doomed[i]
			}
		}
	}
	for _, s := range doomed {
		lines = splice(lines, s.start, s.end, nil)
	}
	return lines, true
}

func better(a, b ctorSpan) bool {
	if a.params != b.params {
		return a.params > b.params
	}
	return a.end-a.start > b.end-b.start
}

// paramCount counts the comma-separated parameters on a constructor header
// line, self included.
func paramCount(header string) int {
	open := strings.Index(header, "(")
	if open < 0 {
		return 0
	}
	closing := strings.LastIndex(header, ")")
	inner := ""
	if closing > open {
		inner = header[open+1 : closing]
	} else {
		inner = header[open+1:]
	}
	if strings.TrimSpace(inner) == "" {
		return 0
	}
	count := 0
	for _, p := range strings.Split(inner, ",") {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	return count
}
