// Package project persists processed code to disk: the source file, an
// optional project directory, and a requirements manifest. All file I/O for
// the tool lives here, outside the pure pipeline.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// SaveFile writes code to path, creating parent directories as needed.
func SaveFile(path, code string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Materialize creates the project directory under root, moves the saved
// source file into it, and writes requirements.txt when the manifest is
// non-empty. Returns the project directory path. A directory that cannot be
// created degrades to root rather than failing the run.
func Materialize(root, projectName, filePath, manifest string, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	projectDir := filepath.Join(root, projectName)
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		logger.Warn("failed to create project folder, using root",
			zap.String("dir", projectDir), zap.Error(err))
		projectDir = root
	}

	if filePath != "" {
		target := filepath.Join(projectDir, filepath.Base(filePath))
		if target != filePath {
			if err := os.Rename(filePath, target); err != nil {
				return projectDir, fmt.Errorf("failed to move file into project folder: %w", err)
			}
		}
	}

	if manifest != "" {
		reqPath := filepath.Join(projectDir, "requirements.txt")
		if err := os.WriteFile(reqPath, []byte(manifest+"\n"), 0644); err != nil {
			return projectDir, fmt.Errorf("failed to write requirements.txt: %w", err)
		}
		logger.Debug("wrote requirements manifest", zap.String("path", reqPath))
	}

	return projectDir, nil
}
