package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"peilbuis/internal/config"
	apperrors "peilbuis/internal/errors"
)

// FileValidator checks input and output locations before a run
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger.With(slog.String("component", "file_validator")),
	}
}

// ValidateInputFile checks that path is a readable, non-empty survey export
func (v *FileValidator) ValidateInputFile(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSurveyExtension(ext) {
		v.logger.Error("File is not a survey export",
			slog.String("file", path),
			slog.String("extension", ext))
		return apperrors.NewValidationError(
			fmt.Sprintf("file %s is not a survey export (extension: %s)", path, ext), nil)
	}

	// Lock files left behind by an open workbook
	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Warn("Skipping temporary Excel file",
			slog.String("file", path))
		return apperrors.NewValidationError(
			fmt.Sprintf("file %s is a temporary Excel file", path), nil)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.Size() == 0 {
		v.logger.Error("Input file is empty",
			slog.String("file", path))
		return apperrors.NewValidationError(fmt.Sprintf("file %s is empty", path), nil)
	}

	return nil
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return apperrors.NewNotFoundError("file " + path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewValidationError(fmt.Sprintf("%s is a directory, not a file", path), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputPath checks the result path for the given input: its
// extension must match the output format and it must not replace the input.
func (v *FileValidator) ValidateOutputPath(outputPath, inputPath, format string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
	if ext != format {
		return apperrors.NewValidationError(
			fmt.Sprintf("output %s does not match format %s", outputPath, format), nil)
	}

	if samePath(outputPath, inputPath) {
		return apperrors.NewValidationError(
			fmt.Sprintf("output %s would overwrite the input file", outputPath), nil)
	}

	return v.ValidateOutputDirectory(filepath.Dir(outputPath))
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

func isSurveyExtension(ext string) bool {
	for _, e := range config.SurveyFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
