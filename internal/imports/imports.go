// Package imports lifts import statements to the top of generated code,
// grouped standard library, third party, then local. Imports are moved,
// never duplicated or dropped, and each group keeps its original relative
// order.
package imports

import (
	"strings"

	"codesieve/internal/pysrc"
)

// Consolidate moves every import line to a header at the top of the code.
// Groups appear as standard library, third party, local, separated by one
// blank line, with empty groups omitted. Exactly one blank line separates the
// header from the first non-import body line. Code without imports passes
// through unchanged.
func Consolidate(code string) string {
	lines := strings.Split(code, "\n")

	var importLines, body []string
	for _, line := range lines {
		if pysrc.IsImport(strings.TrimSpace(line)) {
			importLines = append(importLines, line)
		} else {
			body = append(body, line)
		}
	}
	if len(importLines) == 0 {
		return code
	}
	// Pulling an import out of the middle of the body can leave two adjacent
	// blank lines behind; collapse those so the pass is a fixed point.
	body = collapseBlankRuns(body)

	var std, third, local []string
	for _, line := range importLines {
		switch module := pysrc.ModuleToken(line); {
		case module == ".":
			local = append(local, line)
		case pysrc.IsStdlib(module):
			std = append(std, line)
		default:
			third = append(third, line)
		}
	}

	var header []string
	for _, group := range [][]string{std, third, local} {
		if len(group) == 0 {
			continue
		}
		if len(header) > 0 {
			header = append(header, "")
		}
		header = append(header, group...)
	}

	// One blank line before the body, unless it already starts with one.
	if len(body) > 0 && strings.TrimSpace(body[0]) != "" {
		header = append(header, "")
	}

	return strings.Join(append(header, body...), "\n")
}

func collapseBlankRuns(lines []string) []string {
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" && i > 0 && strings.TrimSpace(lines[i-1]) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
