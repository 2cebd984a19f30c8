package repair

import (
	"regexp"
	"strings"

	"codesieve/internal/pysrc"
)

// nodeTreeRule repairs a recurring anti-pattern in generated binary-tree
// code: an empty Node/TreeNode class next to a BST/BinarySearchTree class
// whose constructor takes a key-like first parameter, meaning the node
// initialization ended up in the container. The fix transplants a proper
// node constructor into the node class (synthesizing one when none exists)
// and reduces the container constructor to a bare root reference.
type nodeTreeRule struct{}

var (
	nodeHeaderRe      = regexp.MustCompile(`^class\s+(TreeNode|Node)\s*:`)
	containerHeaderRe = regexp.MustCompile(`^class\s+(BinarySearchTree|BST)\s*:`)
	initHeaderRe      = regexp.MustCompile(`^def\s+__init__\s*\(\s*self\s*(?:,\s*(\w+))?`)
	selfFieldRe       = regexp.MustCompile(`self\.(key|val|value|left|right)\s*=`)
)

func (nodeTreeRule) Name() string { return "node_tree" }

func (nodeTreeRule) Apply(lines []string) ([]string, bool) {
	nodeIdx := findHeader(lines, nodeHeaderRe)
	containerIdx := findHeader(lines, containerHeaderRe)
	if nodeIdx < 0 || containerIdx < 0 {
		return lines, false
	}
	if !emptyBody(lines, nodeIdx) {
		return lines, false
	}

	containerInit := findInit(lines, containerIdx, pysrc.SpanEnd(lines, containerIdx))
	if containerInit < 0 || !keyLikeFirstParam(lines[containerInit]) {
		return lines, false
	}
	containerInitEnd := pysrc.SpanEnd(lines, containerInit)

	var nodeBody []string
	if properStart, properEnd := findProperNodeInit(lines); properStart >= 0 {
		nodeBody = reindentInit(lines[properStart:properEnd])
	} else {
		nodeBody = synthesizeInit(lines[containerInit:containerInitEnd])
	}

	reduced := []string{
		strings.Repeat(" ", pysrc.IndentOf(lines[containerInit])) + "def __init__(self):",
		strings.Repeat(" ", pysrc.IndentOf(lines[containerInit])+4) + "self.root = None",
	}

	nodeEnd := pysrc.SpanEnd(lines, nodeIdx)
	nodeSpan := append([]string{lines[nodeIdx]}, nodeBody...)

	// Rewrite the later span first so the earlier one's indexes stay valid.
	var out []string
	if containerInit > nodeIdx {
		out = splice(lines, containerInit, containerInitEnd, reduced)
		out = splice(out, nodeIdx, nodeEnd, nodeSpan)
	} else {
		out = splice(lines, nodeIdx, nodeEnd, nodeSpan)
		out = splice(out, containerInit, containerInitEnd, reduced)
	}
	return out, true
}

func findHeader(lines []string, re *regexp.Regexp) int {
	for i, line := range lines {
		if re.MatchString(strings.TrimSpace(line)) {
			return i
		}
	}
	return -1
}

// emptyBody reports whether a class span holds nothing but blank lines after
// its header.
func emptyBody(lines []string, header int) bool {
	for j := header + 1; j < pysrc.SpanEnd(lines, header); j++ {
		if strings.TrimSpace(lines[j]) != "" {
			return false
		}
	}
	return true
}

// findInit returns the index of the first __init__ header inside (start, end).
func findInit(lines []string, start, end int) int {
	for j := start + 1; j < end && j < len(lines); j++ {
		if initHeaderRe.MatchString(strings.TrimSpace(lines[j])) {
			return j
		}
	}
	return -1
}

// keyLikeFirstParam reports whether an __init__ header's first parameter
// after self looks like a node key or value field.
func keyLikeFirstParam(header string) bool {
	m := initHeaderRe.FindStringSubmatch(strings.TrimSpace(header))
	if m == nil || m[1] == "" {
		return false
	}
	return strings.HasPrefix(m[1], "key") || strings.HasPrefix(m[1], "val")
}

// findProperNodeInit locates a constructor anywhere in the text whose first
// parameter is key-like and whose body assigns it to a key/value field. That
// is the signature of node-initialization logic, wherever it was misplaced.
func findProperNodeInit(lines []string) (int, int) {
	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if !initHeaderRe.MatchString(stripped) || !keyLikeFirstParam(stripped) {
			continue
		}
		end := pysrc.SpanEnd(lines, i)
		param := initHeaderRe.FindStringSubmatch(stripped)[1]
		assignRe := regexp.MustCompile(`self\.(key|val|value)\s*=\s*` + regexp.QuoteMeta(param) + `\b`)
		for j := i + 1; j < end; j++ {
			if assignRe.MatchString(lines[j]) {
				return i, end
			}
		}
	}
	return -1, -1
}

// reindentInit normalizes a constructor span so the header sits at method
// depth inside a class, keeping each body line's offset from the header.
func reindentInit(span []string) []string {
	base := pysrc.IndentOf(span[0])
	out := make([]string, 0, len(span))
	for _, line := range span {
		if strings.TrimSpace(line) == "" {
			continue
		}
		offset := pysrc.IndentOf(line) - base
		if offset < 0 {
			offset = 0
		}
		out = append(out, strings.Repeat(" ", 4+offset)+strings.TrimSpace(line))
	}
	return out
}

// synthesizeInit builds a node constructor from whichever recognized fields
// the container's constructor assigns, defaulting to a key/left/right triple.
func synthesizeInit(containerInit []string) []string {
	param := "key"
	if m := initHeaderRe.FindStringSubmatch(strings.TrimSpace(containerInit[0])); m != nil && m[1] != "" {
		param = m[1]
	}

	assigned := make(map[string]bool)
	for _, line := range containerInit[1:] {
		for _, m := range selfFieldRe.FindAllStringSubmatch(line, -1) {
			assigned[m[1]] = true
		}
	}

	var body []string
	for _, field := range []string{"key", "val", "value", "left", "right"} {
		if !assigned[field] {
			continue
		}
		if field == "left" || field == "right" {
			body = append(body, "        self."+field+" = None")
		} else {
			body = append(body, "        self."+field+" = "+param)
		}
	}
	if len(body) == 0 {
		body = []string{
			"        self.key = " + param,
			"        self.left = None",
			"        self.right = None",
		}
	}

	return append([]string{"    def __init__(self, " + param + "):"}, body...)
}

// splice replaces lines[start:end] with repl, returning a new slice.
func splice(lines []string, start, end int, repl []string) []string {
	out := make([]string, 0, len(lines)-(end-start)+len(repl))
	out = append(out, lines[:start]...)
	out = append(out, repl...)
	out = append(out, lines[end:]...)
	return out
}
