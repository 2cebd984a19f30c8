package main

import (
	"os"

	"go.uber.org/zap"

	"codesieve/internal/pipeline"
	"codesieve/internal/project"
)

// persist writes the processed code to disk according to the output flags:
// an explicit --output path, an auto-derived filename, and optionally a
// project folder holding the file plus its requirements manifest.
func persist(result pipeline.Result) error {
	path := outputPath
	if path == "" && (autoSave || projectFolder) {
		path = result.Filename
	}
	if path == "" {
		return nil
	}

	if err := project.SaveFile(path, result.Code); err != nil {
		return err
	}
	printSuccess("\nCode saved to file: %s", path)

	if !projectFolder {
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	projectDir, err := project.Materialize(cwd, result.ProjectName, path, result.Manifest, logger)
	if err != nil {
		logger.Warn("project folder incomplete", zap.Error(err))
		printError("Error creating project folder: %v", err)
		return nil
	}
	logger.Debug("project materialized", zap.String("dir", projectDir))
	printSuccess("\nCreated project folder: %s", result.ProjectName)
	printSuccess("Moved file to project folder: %s", result.ProjectName)
	if result.Manifest != "" {
		printSuccess("Generated requirements.txt file with detected dependencies")
	}
	return nil
}
