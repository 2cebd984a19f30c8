// Package naming derives a filename and a project name for generated code.
// The filename prefers names found in the code itself; the project name works
// off the prompt. Both always produce something usable.
package naming

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

const sourceExt = ".py"

var (
	classNameRe = regexp.MustCompile(`class\s+(\w+)`)
	funcNameRe  = regexp.MustCompile(`def\s+(\w+)`)
	wordRunRe   = regexp.MustCompile(`\b[a-zA-Z][a-zA-Z0-9_]{2,}\b`)
	nonSnakeRe  = regexp.MustCompile(`[^a-z0-9_]`)
	nonWordRe   = regexp.MustCompile(`[^\w]`)
)

// filenameStopWords are dropped when deriving a filename from the prompt.
var filenameStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "to": true, "in": true, "for": true,
	"of": true, "and": true, "with": true, "that": true, "write": true,
	"create": true, "implement": true, "python": true, "function": true,
	"class": true, "code": true,
}

// projectStopWords are dropped when deriving a project name from the prompt.
var projectStopWords = map[string]bool{
	"the": true, "and": true, "that": true, "with": true, "for": true,
	"create": true, "implement": true, "build": true, "make": true,
	"code": true, "write": true, "script": true, "program": true,
	"python": true,
}

// Filename derives a source filename from the code, falling back to the
// prompt and finally a timestamp. The result always carries the source
// extension.
func Filename(code, prompt string) string {
	if m := classNameRe.FindStringSubmatch(code); m != nil {
		return camelToSnake(m[1]) + sourceExt
	}
	if m := funcNameRe.FindStringSubmatch(code); m != nil {
		return m[1] + sourceExt
	}

	var keep []string
	for _, w := range strings.Fields(strings.ToLower(prompt)) {
		if len(w) > 2 && !filenameStopWords[w] {
			keep = append(keep, w)
		}
		if len(keep) == 3 {
			break
		}
	}
	if len(keep) > 0 {
		name := nonSnakeRe.ReplaceAllString(strings.Join(keep, "_"), "")
		if name != "" {
			return name + sourceExt
		}
	}

	return "code_" + time.Now().Format("20060102_150405") + sourceExt
}

// ProjectName derives a directory name from the prompt: the first three
// word-like runs of length >= 3 that survive the stop-word filter, joined by
// underscores and truncated to 30 characters. With no usable keywords it
// falls back to the filename with the extension stripped.
func ProjectName(prompt, code string) string {
	var keep []string
	for _, w := range wordRunRe.FindAllString(strings.ToLower(prompt), -1) {
		if !projectStopWords[w] {
			keep = append(keep, w)
		}
		if len(keep) == 3 {
			break
		}
	}

	var name string
	if len(keep) > 0 {
		name = strings.Join(keep, "_")
	} else {
		name = strings.TrimSuffix(Filename(code, prompt), sourceExt)
	}

	name = nonWordRe.ReplaceAllString(name, "_")
	if len(name) > 30 {
		name = name[:30]
	}
	return name
}

// camelToSnake inserts an underscore before each internal uppercase letter,
// lowercases everything, and strips a leading underscore.
func camelToSnake(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimPrefix(b.String(), "_")
}
