// Package reorder resequences generated code into a valid
// definition-before-use order. Model output frequently interleaves usage
// before definition; execution requires definitions first, with the guarded
// entry point last.
package reorder

import (
	"strings"

	"codesieve/internal/pysrc"
)

// blockTag classifies a logical block by its first non-blank line.
type blockTag int

const (
	tagOther blockTag = iota
	tagImport
	tagClass
	tagFunction
	tagMain
)

// Reorder groups lines into logical blocks and emits them as imports,
// classes, functions, other statements, then the entry-point guard. Blocks
// are separated by exactly one blank line; lines are right-trimmed and the
// output ends with a single newline. Input with no recognizable structure
// passes through as a single block.
func Reorder(code string) string {
	blocks := split(code)
	if len(blocks) == 0 {
		return code
	}

	var imports, classes, functions, others, mains [][]string
	for _, b := range blocks {
		switch classify(b) {
		case tagImport:
			imports = append(imports, b)
		case tagClass:
			classes = append(classes, b)
		case tagFunction:
			functions = append(functions, b)
		case tagMain:
			mains = append(mains, b)
		default:
			others = append(others, b)
		}
	}

	ordered := make([][]string, 0, len(blocks))
	ordered = append(ordered, imports...)
	ordered = append(ordered, classes...)
	ordered = append(ordered, functions...)
	ordered = append(ordered, others...)
	ordered = append(ordered, mains...)

	return render(ordered)
}

// split walks the lines keeping docstring state and starts a new block at
// every zero-indent function header, class header, or entry-point guard.
// Consecutive blank lines inside a block collapse to one.
func split(code string) [][]string {
	lines := strings.Split(code, "\n")

	var blocks [][]string
	var current []string
	inDocstring := false

	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		if stripped == "" {
			if len(current) > 0 && i > 0 && strings.TrimSpace(lines[i-1]) == "" {
				continue
			}
			current = append(current, "")
			continue
		}

		if pysrc.IsDocstringDelim(stripped) {
			inDocstring = !inDocstring
			current = append(current, line)
			continue
		}
		if inDocstring {
			current = append(current, line)
			continue
		}

		if pysrc.IndentOf(line) == 0 {
			switch pysrc.ClassifyLine(line).Kind {
			case pysrc.DefHeader, pysrc.ClassHeader, pysrc.Guard:
				if len(current) > 0 {
					blocks = append(blocks, current)
					current = nil
				}
			}
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func classify(block []string) blockTag {
	for _, line := range block {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		switch pysrc.ClassifyLine(line).Kind {
		case pysrc.Import:
			return tagImport
		case pysrc.ClassHeader:
			return tagClass
		case pysrc.DefHeader:
			return tagFunction
		case pysrc.Guard:
			return tagMain
		default:
			return tagOther
		}
	}
	return tagOther
}

// render joins blocks with one blank line between each pair, trims trailing
// whitespace per line, and terminates with exactly one newline. Per-block
// leading/trailing blanks are dropped so re-running the pass is a fixed point.
func render(blocks [][]string) string {
	var out []string
	for _, block := range blocks {
		trimmed := trimBlanks(block)
		if len(trimmed) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		for _, line := range trimmed {
			out = append(out, strings.TrimRight(line, " \t"))
		}
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

func trimBlanks(block []string) []string {
	start, end := 0, len(block)
	for start < end && strings.TrimSpace(block[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(block[end-1]) == "" {
		end--
	}
	return block[start:end]
}
