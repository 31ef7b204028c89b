package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSWindows = "windows"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0600
)

// ConfigFileExtension is appended to the app name to form the config file name
const ConfigFileExtension = ".toml"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetAppConfigDir returns the app-scoped directory under the user's config dir
// (XDG_CONFIG_HOME on Linux, Application Support on macOS, AppData on Windows)
func GetAppConfigDir(appName string) (string, error) {
	if appName == "" {
		return "", fmt.Errorf("app name is empty")
	}

	baseDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(baseDir, appName), nil
}

// GetAppConfigFile returns the full path of the app's config file
func GetAppConfigFile(appName string) (string, error) {
	dir, err := GetAppConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+ConfigFileExtension), nil
}

// WriteFileAtomic writes data to a temp file in the target directory and
// renames it over path, so readers never observe a half-written file
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Chmod(DefaultFilePermissions); err != nil && runtime.GOOS != OSWindows {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
