// Package pysrc models generated Python source as a classified line sequence.
// Every heuristic pass downstream (extraction, reordering, import grouping,
// conflict repair) works over the same tagged alphabet instead of re-deriving
// structure from raw text on its own.
package pysrc

import (
	"regexp"
	"strings"
)

// Kind tags a single source line. Tags are mutually exclusive.
type Kind int

const (
	Blank Kind = iota
	Import
	ClassHeader
	DefHeader
	Guard
	Comment
	Body
)

// Line is one classified source line. Indent is the number of leading
// whitespace characters, matching how generated Python indents bodies.
type Line struct {
	Text   string
	Kind   Kind
	Indent int
	Name   string // class or function name for header lines
}

var (
	classRe = regexp.MustCompile(`^class\s+(\w+)`)
	defRe   = regexp.MustCompile(`^def\s+(\w+)\s*\(`)
	guardRe = regexp.MustCompile(`^if\s+__name__\s*==\s*['"]__main__['"]`)
)

// Classify splits text into lines and tags each one. It never fails; lines
// that match nothing are Body.
func Classify(text string) []Line {
	raw := strings.Split(text, "\n")
	out := make([]Line, len(raw))
	for i, l := range raw {
		out[i] = ClassifyLine(l)
	}
	return out
}

// ClassifyLine tags a single line.
func ClassifyLine(text string) Line {
	stripped := strings.TrimSpace(text)
	line := Line{Text: text, Indent: IndentOf(text)}

	switch {
	case stripped == "":
		line.Kind = Blank
	case IsImport(stripped):
		line.Kind = Import
	case guardRe.MatchString(stripped):
		line.Kind = Guard
	case strings.HasPrefix(stripped, "#"):
		line.Kind = Comment
	default:
		if m := classRe.FindStringSubmatch(stripped); m != nil {
			line.Kind = ClassHeader
			line.Name = m[1]
		} else if m := defRe.FindStringSubmatch(stripped); m != nil {
			line.Kind = DefHeader
			line.Name = m[1]
		} else {
			line.Kind = Body
		}
	}
	return line
}

// IsImport reports whether a stripped line is an import statement,
// covering both "import x" and "from x import y" forms.
func IsImport(stripped string) bool {
	if strings.HasPrefix(stripped, "import ") {
		return true
	}
	return strings.HasPrefix(stripped, "from ") && strings.Contains(stripped, " import ")
}

// IsDocstringDelim reports whether a stripped line opens or closes a
// triple-quoted docstring.
func IsDocstringDelim(stripped string) bool {
	return strings.HasPrefix(stripped, `"""`) || strings.HasPrefix(stripped, "'''")
}

// IndentOf returns the number of leading whitespace characters.
func IndentOf(text string) int {
	return len(text) - len(strings.TrimLeft(text, " \t"))
}

// SpanEnd returns the index just past the definition span starting at header:
// the header line plus every following line that is blank or indented deeper
// than the header.
func SpanEnd(lines []string, header int) int {
	indent := IndentOf(lines[header])
	j := header + 1
	for j < len(lines) {
		stripped := strings.TrimSpace(lines[j])
		if stripped != "" && IndentOf(lines[j]) <= indent {
			break
		}
		j++
	}
	return j
}

// ModuleToken extracts the leading top-level module token from an import
// line: "import a.b as c" and "from a.b import c" both yield "a". A relative
// import collapses to "." so callers can spot local modules. Returns "" for
// lines that are not imports.
func ModuleToken(line string) string {
	stripped := strings.TrimSpace(line)
	var module string
	switch {
	case strings.HasPrefix(stripped, "from "):
		rest := strings.TrimPrefix(stripped, "from ")
		if idx := strings.Index(rest, " import"); idx >= 0 {
			module = strings.TrimSpace(rest[:idx])
		}
	case strings.HasPrefix(stripped, "import "):
		rest := strings.TrimPrefix(stripped, "import ")
		rest = strings.SplitN(rest, " as ", 2)[0]
		module = strings.TrimSpace(strings.SplitN(rest, ",", 2)[0])
	default:
		return ""
	}
	if module == "" {
		return ""
	}
	if strings.HasPrefix(module, ".") {
		return "."
	}
	return strings.SplitN(module, ".", 2)[0]
}

// stdlibModules is the fixed standard-library name set shared by import
// grouping and dependency reporting. Loaded once, never mutated.
var stdlibModules = map[string]struct{}{}

func init() {
	for _, m := range []string{
		"abc", "argparse", "array", "ast", "asyncio", "base64", "bisect", "calendar",
		"collections", "concurrent", "contextlib", "copy", "csv", "datetime", "decimal",
		"difflib", "enum", "errno", "fnmatch", "functools", "gc", "glob", "gzip", "hashlib",
		"heapq", "hmac", "html", "http", "importlib", "inspect", "io", "itertools", "json",
		"logging", "math", "multiprocessing", "operator", "os", "pathlib", "pickle", "platform",
		"pprint", "queue", "random", "re", "shutil", "signal", "socket", "sqlite3", "ssl",
		"statistics", "string", "struct", "subprocess", "sys", "tempfile", "threading",
		"time", "timeit", "traceback", "types", "typing", "uuid", "warnings", "weakref",
		"xml", "xmlrpc", "zipfile", "zlib", "tkinter", "tk", "ttk",
	} {
		stdlibModules[m] = struct{}{}
	}
}

// IsStdlib reports whether module is in the fixed standard-library set.
func IsStdlib(module string) bool {
	_, ok := stdlibModules[module]
	return ok
}
