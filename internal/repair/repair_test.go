package repair

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixDropsDuplicateClass(t *testing.T) {
	in := strings.Join([]string{
		"class Foo:",
		"    def bar(self):",
		"        return 1",
		"",
		"class Foo:",
		"    def bar(self):",
		"        return 2",
		"",
	}, "\n")

	got := Fix(in)
	assert.Equal(t, 1, strings.Count(got, "class Foo"))
	assert.Contains(t, got, "return 1")
	assert.NotContains(t, got, "return 2")
}

func TestFixDropsDuplicateMethod(t *testing.T) {
	in := strings.Join([]string{
		"class Foo:",
		"    def bar(self):",
		"        return 1",
		"",
		"    def bar(self):",
		"        return 2",
		"",
	}, "\n")

	got := Fix(in)
	assert.Equal(t, 1, strings.Count(got, "def bar"))
	assert.Contains(t, got, "return 1")
}

func TestFixDropsDuplicateTopLevelFunction(t *testing.T) {
	in := "def f():\n    return 1\n\ndef f():\n    return 2\n"
	got := Fix(in)
	assert.Equal(t, "def f():\n    return 1\n", got)
}

func TestFixSameMethodNameInDifferentClasses(t *testing.T) {
	in := strings.Join([]string{
		"class A:",
		"    def run(self):",
		"        return 'a'",
		"",
		"class B:",
		"    def run(self):",
		"        return 'b'",
		"",
	}, "\n")

	got := Fix(in)
	assert.Equal(t, 2, strings.Count(got, "def run"))
}

func TestCtorCollapseKeepsMostParams(t *testing.T) {
	in := strings.Join([]string{
		"class Point:",
		"    def __init__(self):",
		"        self.x = 0",
		"",
		"    def __init__(self, x, y):",
		"        self.x = x",
		"        self.y = y",
	}, "\n")

	want := strings.Join([]string{
		"class Point:",
		"    def __init__(self, x, y):",
		"        self.x = x",
		"        self.y = y",
	}, "\n")

	assert.Equal(t, want, Fix(in))
}

func TestCtorCollapseTieBreaksOnLength(t *testing.T) {
	in := strings.Join([]string{
		"class Cfg:",
		"    def __init__(self, a):",
		"        self.a = a",
		"",
		"    def __init__(self, b):",
		"        self.b = b",
		"        self.c = 0",
		"        self.d = 1",
	}, "\n")

	got := Fix(in)
	assert.Equal(t, 1, strings.Count(got, "def __init__"))
	assert.Contains(t, got, "self.b = b")
	assert.NotContains(t, got, "self.a = a")
}

func TestNodeRuleTransplantsMisplacedInit(t *testing.T) {
	in := strings.Join([]string{
		"class Node:",
		"",
		"class BinarySearchTree:",
		"    def __init__(self, key):",
		"        self.key = key",
		"        self.left = None",
		"        self.right = None",
	}, "\n")

	want := strings.Join([]string{
		"class Node:",
		"    def __init__(self, key):",
		"        self.key = key",
		"        self.left = None",
		"        self.right = None",
		"class BinarySearchTree:",
		"    def __init__(self):",
		"        self.root = None",
	}, "\n")

	require.Equal(t, want, Fix(in))
}

func TestNodeRuleSynthesizesInit(t *testing.T) {
	in := strings.Join([]string{
		"class TreeNode:",
		"",
		"class BST:",
		"    def __init__(self, val):",
		"        self.data = val",
		"        self.root = None",
	}, "\n")

	want := strings.Join([]string{
		"class TreeNode:",
		"    def __init__(self, val):",
		"        self.key = val",
		"        self.left = None",
		"        self.right = None",
		"class BST:",
		"    def __init__(self):",
		"        self.root = None",
	}, "\n")

	require.Equal(t, want, Fix(in))
}

func TestNodeRuleLeavesPopulatedNodeAlone(t *testing.T) {
	in := strings.Join([]string{
		"class Node:",
		"    def __init__(self, key):",
		"        self.key = key",
		"",
		"class BST:",
		"    def __init__(self, key):",
		"        self.root = None",
	}, "\n")

	assert.Equal(t, in, Fix(in))
}

func TestFixUnchangedOnCleanCode(t *testing.T) {
	in := "def solve(n):\n    return n * 2\n"
	assert.Equal(t, in, Fix(in))
}
