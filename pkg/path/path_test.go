package path_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DevBaweja/dating-app-backend/pkg/path"
	"gotest.tools/assert"
)

func TestFindRootDirectory(t *testing.T) {
	root := t.TempDir()
	assert.NilError(t, os.Mkdir(filepath.Join(root, "migrations"), 0o755))
	nested := filepath.Join(root, "internal", "usecase")
	assert.NilError(t, os.MkdirAll(nested, 0o755))

	found, err := path.FindRoot(nested, "migrations", true)
	assert.NilError(t, err)
	assert.Equal(t, found, root)
}

func TestFindRootFile(t *testing.T) {
	root := t.TempDir()
	assert.NilError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("APP_PORT=8080\n"), 0o600))
	nested := filepath.Join(root, "internal", "config")
	assert.NilError(t, os.MkdirAll(nested, 0o755))

	found, err := path.FindRoot(nested, ".env", false)
	assert.NilError(t, err)
	assert.Equal(t, found, root)
}

func TestFindRootKindMismatch(t *testing.T) {
	root := t.TempDir()
	assert.NilError(t, os.WriteFile(filepath.Join(root, "migrations"), nil, 0o600))

	_, err := path.FindRoot(root, "migrations", true)
	assert.ErrorContains(t, err, "migrations")
}

func TestFindRootMissing(t *testing.T) {
	_, err := path.FindRoot(t.TempDir(), "does-not-exist", true)
	assert.ErrorContains(t, err, "does-not-exist")
}
