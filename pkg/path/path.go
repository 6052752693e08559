// Package path locates project-root files by walking up the directory
// tree. Config uses it to find .env and the test harness uses it to
// find migrations/ regardless of which package the process started in.
package path

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks from startDir toward the filesystem root and returns
// the first directory containing targetName. isDir selects whether the
// target must be a directory or a regular file.
func FindRoot(startDir, targetName string, isDir bool) (string, error) {
	for dir := startDir; ; {
		if info, err := os.Stat(filepath.Join(dir, targetName)); err == nil && info.IsDir() == isDir {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("find root: no %s above %s", targetName, startDir)
		}
		dir = parent
	}
}
