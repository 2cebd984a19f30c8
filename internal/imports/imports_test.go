package imports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsolidateGroupsAndHoists(t *testing.T) {
	in := strings.Join([]string{
		"x = 1",
		"import os",
		"from numpy import array",
		"import sys",
		"from .utils import helper",
		"",
	}, "\n")

	want := strings.Join([]string{
		"import os",
		"import sys",
		"",
		"from numpy import array",
		"",
		"from .utils import helper",
		"",
		"x = 1",
		"",
	}, "\n")

	assert.Equal(t, want, Consolidate(in))
}

func TestConsolidateOmitsEmptyGroups(t *testing.T) {
	in := "print('x')\nimport requests\n"
	want := "import requests\n\nprint('x')\n"
	assert.Equal(t, want, Consolidate(in))
}

func TestConsolidatePreservesImportCount(t *testing.T) {
	in := strings.Join([]string{
		"import os",
		"def f():",
		"    return 1",
		"import json",
		"from requests import get",
		"",
	}, "\n")

	out := Consolidate(in)
	count := 0
	for _, line := range strings.Split(out, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "import ") ||
			(strings.HasPrefix(stripped, "from ") && strings.Contains(stripped, " import ")) {
			count++
		}
	}
	assert.Equal(t, 3, count, "imports must be moved, never dropped or duplicated")
}

func TestConsolidateKeepsIntraGroupOrder(t *testing.T) {
	in := "import sys\nprint('x')\nimport os\n"
	out := Consolidate(in)
	assert.Less(t, strings.Index(out, "import sys"), strings.Index(out, "import os"))
}

func TestConsolidateNoImportsUnchanged(t *testing.T) {
	in := "x = 1\ny = 2\n"
	assert.Equal(t, in, Consolidate(in))
}

func TestConsolidateCollapsesHoistHole(t *testing.T) {
	// Hoisting an import that sat between two blank lines must not leave a
	// double blank behind.
	in := "def f():\n    return 1\n\nimport os\n\nx = f()\n"
	want := "import os\n\ndef f():\n    return 1\n\nx = f()\n"
	assert.Equal(t, want, Consolidate(in))
}

func TestConsolidateNoDoubleBlankBeforeBody(t *testing.T) {
	in := "import os\n\nx = 1\n"
	assert.Equal(t, "import os\n\nx = 1\n", Consolidate(in))
}
