package naming

import (
	"strings"
	"testing"
)

func TestFilenameFromClass(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"class BinaryTree:\n    pass\n", "binary_tree.py"},
		{"class BST:\n    pass\n", "b_s_t.py"},
		{"class Stack:\n    pass\n", "stack.py"},
	}
	for _, tt := range tests {
		if got := Filename(tt.code, ""); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestFilenameFromFunction(t *testing.T) {
	code := "def quick_sort(arr):\n    return arr\n"
	if got := Filename(code, ""); got != "quick_sort.py" {
		t.Errorf("got %q, want quick_sort.py", got)
	}
}

func TestFilenameClassWinsOverFunction(t *testing.T) {
	code := "def helper():\n    pass\n\nclass Queue:\n    pass\n"
	if got := Filename(code, ""); got != "queue.py" {
		t.Errorf("got %q, want queue.py", got)
	}
}

func TestFilenameFromPrompt(t *testing.T) {
	got := Filename("x = 1", "Write a python function to sort lists quickly")
	if got != "sort_lists_quickly.py" {
		t.Errorf("got %q, want sort_lists_quickly.py", got)
	}
}

func TestFilenameTimestampFallback(t *testing.T) {
	got := Filename("x = 1", "a to of")
	if !strings.HasPrefix(got, "code_") || !strings.HasSuffix(got, ".py") {
		t.Errorf("fallback name %q lacks code_ prefix or .py suffix", got)
	}
}

func TestProjectNameFromPrompt(t *testing.T) {
	got := ProjectName("Create a binary search tree implementation", "")
	if got != "binary_search_tree" {
		t.Errorf("got %q, want binary_search_tree", got)
	}
}

func TestProjectNameTruncated(t *testing.T) {
	got := ProjectName("extraordinarily complicated multidimensional visualization", "")
	if len(got) > 30 {
		t.Errorf("project name %q longer than 30 chars", got)
	}
}

func TestProjectNameFallsBackToFilename(t *testing.T) {
	got := ProjectName("", "class LinkedList:\n    pass\n")
	if got != "linked_list" {
		t.Errorf("got %q, want linked_list", got)
	}
}
