// Package deps infers third-party package requirements from the imports of
// processed code and renders them as a requirements manifest.
package deps

import (
	"sort"
	"strings"

	"codesieve/internal/pysrc"
)

// aliasToPackage maps conventional import aliases to the published package
// name on the index. Loaded once, never mutated.
var aliasToPackage = map[string]string{
	"bs4":     "beautifulsoup4",
	"sklearn": "scikit-learn",
	"PIL":     "pillow",
	"cv2":     "opencv-python",
	"pygame":  "pygame",
	"np":      "numpy",
	"pd":      "pandas",
	"plt":     "matplotlib",
	"tf":      "tensorflow",
	"torch":   "torch",
	"db":      "sqlalchemy",
}

// Packages collects the third-party package names the code imports:
// leading module tokens minus the standard library, aliases mapped to their
// published names, deduplicated and sorted.
func Packages(code string) []string {
	seen := make(map[string]struct{})
	for _, line := range strings.Split(code, "\n") {
		stripped := strings.TrimSpace(line)
		if !pysrc.IsImport(stripped) {
			continue
		}
		for _, module := range moduleTokens(stripped) {
			if module == "" || module == "." || pysrc.IsStdlib(module) {
				continue
			}
			if mapped, ok := aliasToPackage[module]; ok {
				module = mapped
			}
			seen[module] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for pkg := range seen {
		out = append(out, pkg)
	}
	sort.Strings(out)
	return out
}

// moduleTokens expands "import a, b.c as d" into its leading module tokens.
// A "from" import has exactly one, which ModuleToken already extracts.
func moduleTokens(stripped string) []string {
	if !strings.HasPrefix(stripped, "import ") {
		return []string{pysrc.ModuleToken(stripped)}
	}
	var out []string
	for _, part := range strings.Split(strings.TrimPrefix(stripped, "import "), ",") {
		out = append(out, pysrc.ModuleToken("import "+strings.TrimSpace(part)))
	}
	return out
}

// Manifest renders the inferred packages one per line, or "" when the code
// needs nothing beyond the standard library.
func Manifest(code string) string {
	pkgs := Packages(code)
	if len(pkgs) == 0 {
		return ""
	}
	return strings.Join(pkgs, "\n")
}
