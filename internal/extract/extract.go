// Package extract locates code regions inside free-form model output and
// strips interactive-session noise. Both operations are best-effort and never
// fail: when nothing recognizable is found the original text comes back.
package extract

import (
	"regexp"
	"sort"
	"strings"
)

var fencedRe = regexp.MustCompile("(?s)```[a-zA-Z0-9_+-]*\r?\n(.*?)```")

// constructRes match Python-looking constructs in prose: headers with an
// indented body, and literal/collection assignments. Used only in aggressive
// mode when no fenced or indented code exists.
var constructRes = []*regexp.Regexp{
	regexp.MustCompile(`def\s+\w+\s*\([^)]*\):\s*(?:\n\s+.+)+`),
	regexp.MustCompile(`class\s+\w+(?:\([^)]*\))?:\s*(?:\n\s+.+)+`),
	regexp.MustCompile(`if\s+.+:\s*(?:\n\s+.+)+`),
	regexp.MustCompile(`for\s+.+:\s*(?:\n\s+.+)+`),
	regexp.MustCompile(`\w+\s*=\s*(?:['"]\w+['"]|\d+|\[.+\]|\{.+\}|\(.+\))`),
}

var scrubRes = []*regexp.Regexp{
	regexp.MustCompile(`^(>>>|\.\.\.|In \[\d+\]:|Out\[\d+\]:)`),
	regexp.MustCompile(`^\[\d+\]:`),
	regexp.MustCompile(`^<\w+ (object|at) .+>`),
}

// Locate extracts the best candidate code text from raw model output.
// Priority: fenced blocks, then indented regions, then (aggressive mode only)
// heuristic construct search. Falls back to the input unchanged.
func Locate(raw string, aggressive bool) string {
	if blocks := FencedBlocks(raw); len(blocks) > 0 {
		return strings.Join(blocks, "\n\n")
	}

	if indented := indentedLines(raw); indented != "" {
		return indented
	}

	if aggressive {
		if code := constructSearch(raw); code != "" {
			return code
		}
	}

	return raw
}

// FencedBlocks returns the trimmed inner content of every triple-backtick
// region, in source order. The language tag on the opening fence is ignored.
func FencedBlocks(raw string) []string {
	matches := fencedRe.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, strings.TrimSpace(m[1]))
	}
	return blocks
}

// indentedLines collects lines indented by four spaces or one tab with that
// one level stripped, or "" when there are none.
func indentedLines(raw string) string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "    "):
			out = append(out, line[4:])
		case strings.HasPrefix(line, "\t"):
			out = append(out, line[1:])
		}
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n")
}

// constructSearch concatenates every construct match sorted by its first
// occurrence offset in the raw text.
func constructSearch(raw string) string {
	type fragment struct {
		start int
		text  string
	}
	var frags []fragment
	for _, re := range constructRes {
		for _, loc := range re.FindAllStringIndex(raw, -1) {
			frags = append(frags, fragment{start: loc[0], text: raw[loc[0]:loc[1]]})
		}
	}
	if len(frags) == 0 {
		return ""
	}
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].start < frags[j].start })

	parts := make([]string, 0, len(frags))
	for _, f := range frags {
		parts = append(parts, f.text)
	}
	return strings.Join(parts, "\n\n")
}

// Scrub removes interactive-session artifacts line by line: REPL prompts,
// IPython output numbering, and printed object representations. Retained
// lines keep their original order; the pass carries no cross-line state.
func Scrub(code string) string {
	lines := strings.Split(code, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if isArtifact(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isArtifact(stripped string) bool {
	for _, re := range scrubRes {
		if re.MatchString(stripped) {
			return true
		}
	}
	return false
}
