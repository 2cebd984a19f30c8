// Package pipeline wires the heuristic passes into a single pure
// transformation from raw model output to runnable source text plus derived
// artifacts. Every stage degrades to a safe fallback; the pipeline never
// fails and performs no I/O.
package pipeline

import (
	"go.uber.org/zap"

	"codesieve/internal/deps"
	"codesieve/internal/extract"
	"codesieve/internal/imports"
	"codesieve/internal/naming"
	"codesieve/internal/reorder"
	"codesieve/internal/repair"
)

// Options selects which passes run.
type Options struct {
	ExtractCodeOnly     bool // locate code regions inside the raw text
	CleanForExecution   bool // scrub artifacts, reorder declarations, consolidate imports
	AttemptFix          bool // collapse duplicate/incomplete definitions
	AutoName            bool // derive a filename when none was given
	CreateProjectFolder bool // derive a project name and dependency manifest
}

// Result is the processed text plus the artifacts the collaborators consume.
type Result struct {
	Code        string
	Filename    string
	ProjectName string
	Manifest    string // newline-separated package names, "" when empty
}

// Process runs the configured passes over raw model output. Identical
// (text, options) always produce identical output, except the timestamp
// fallback inside filename derivation.
func Process(raw, prompt string, opts Options, logger *zap.Logger) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	code := raw
	if opts.ExtractCodeOnly {
		code = extract.Locate(raw, opts.CleanForExecution)
		if code != raw {
			logger.Debug("extracted code from response",
				zap.Int("raw_len", len(raw)), zap.Int("code_len", len(code)))
		}
	}
	if opts.CleanForExecution {
		code = Clean(code)
	}
	if opts.AttemptFix {
		fixed := repair.Fix(code)
		if fixed != code {
			logger.Debug("repaired generated code",
				zap.Int("before_len", len(code)), zap.Int("after_len", len(fixed)))
		}
		code = fixed
	}

	res := Result{Code: code}
	if opts.AutoName || opts.CreateProjectFolder {
		res.Filename = naming.Filename(code, prompt)
	}
	if opts.CreateProjectFolder {
		res.ProjectName = naming.ProjectName(prompt, code)
		res.Manifest = deps.Manifest(code)
	}
	return res
}

// Clean is the execution-readiness sequence: artifact scrub, declaration
// reorder, import consolidation. Applying Clean to its own output is a fixed
// point.
func Clean(code string) string {
	return imports.Consolidate(reorder.Reorder(extract.Scrub(code)))
}
