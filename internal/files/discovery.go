package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"peilbuis/internal/config"
	apperrors "peilbuis/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath     string
	resultSuffix string
}

// NewDiscovery creates a new file discovery instance. Files whose name ends
// in resultSuffix are treated as output and never offered as input.
func NewDiscovery(basePath, resultSuffix string) *Discovery {
	return &Discovery{basePath: basePath, resultSuffix: resultSuffix}
}

// FindSurveyFiles finds all survey exports in the specified directory,
// oldest first
func (d *Discovery) FindSurveyFiles(dir string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !d.IsSurveyFile(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].Name < files[j].Name
		}
		return files[i].ModTime.Before(files[j].ModTime)
	})

	return files, nil
}

// IsSurveyFile reports whether name looks like a survey export
func (d *Discovery) IsSurveyFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	known := false
	for _, e := range config.SurveyFileExtensions {
		if ext == e {
			known = true
			break
		}
	}
	if !known {
		return false
	}

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return d.resultSuffix == "" || !strings.HasSuffix(stem, d.resultSuffix)
}

// Resolve turns a file or directory argument into the input file to
// process. For a directory the most recently modified survey export is used.
func (d *Discovery) Resolve(input string) (string, error) {
	fullPath := d.resolve(input)

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.NewNotFoundError("input " + input)
		}
		return "", fmt.Errorf("failed to stat %s: %w", fullPath, err)
	}
	if !info.IsDir() {
		return fullPath, nil
	}

	files, err := d.FindSurveyFiles(fullPath)
	if err != nil {
		return "", err
	}
	latest, ok := GetLatestFile(files)
	if !ok {
		return "", apperrors.NewNotFoundError("survey file in " + fullPath)
	}
	return latest.Path, nil
}

func (d *Discovery) resolve(path string) string {
	if filepath.IsAbs(path) || d.basePath == "" {
		return path
	}
	return filepath.Join(d.basePath, path)
}

// GetLatestFile returns the most recently modified file from a list
func GetLatestFile(files []FileInfo) (FileInfo, bool) {
	if len(files) == 0 {
		return FileInfo{}, false
	}

	latest := files[0]
	for _, file := range files[1:] {
		if file.ModTime.After(latest.ModTime) {
			latest = file
		}
	}

	return latest, true
}
