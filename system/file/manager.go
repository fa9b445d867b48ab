package file

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
)

var AppFs = afero.NewOsFs()

func IsPathExist(path string) (bool, error) {
	return afero.Exists(AppFs, path)
}

func IsFile(path string) (bool, error) {
	exists, err := afero.Exists(AppFs, path)
	if err != nil || !exists {
		return false, err
	}
	isDir, err := afero.IsDir(AppFs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return !isDir, nil
}

func Open(path string) (afero.File, error) {
	fh, err := AppFs.Open(path)
	if err != nil {
		return nil, err
	}
	return fh, nil
}

func EnsureDir(path string, mode os.FileMode) error {
	exists, err := afero.DirExists(AppFs, path)
	if err != nil {
		return fmt.Errorf("failed to check for directory %s: %w", path, err)
	}
	if exists {
		return nil
	}

	slog.Debug("Creating directory: " + path)
	if err := AppFs.MkdirAll(path, mode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

func ReadString(path string) (string, error) {
	contents, err := afero.ReadFile(AppFs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(contents), nil
}

// ContainsString reports whether the file at path contains needle. A
// missing file is not an error, it simply does not contain anything.
func ContainsString(path, needle string) (bool, error) {
	exists, err := IsPathExist(path)
	if err != nil {
		return false, fmt.Errorf("failed to check if %s exists: %w", path, err)
	}
	if !exists {
		return false, nil
	}

	contents, err := ReadString(path)
	if err != nil {
		return false, err
	}

	return strings.Contains(contents, needle), nil
}

// AppendString appends contents to the file at path, creating it if
// necessary.
func AppendString(path, contents string) error {
	slog.Debug("Appending to file: " + path)
	fh, err := AppFs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for appending: %w", path, err)
	}
	defer fh.Close()

	if _, err := fh.WriteString(contents); err != nil {
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}

	return nil
}
