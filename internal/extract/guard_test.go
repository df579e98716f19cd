package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
)

func writeTempFile(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func TestCheckFile_Missing(t *testing.T) {
	err := CheckFile(filepath.Join(t.TempDir(), "nope.pdf"), 1024)
	assert.ErrorIs(t, err, common.ErrFileNotFound)
}

func TestCheckFile_Directory(t *testing.T) {
	err := CheckFile(t.TempDir(), 1024)
	assert.ErrorIs(t, err, common.ErrFileNotFound)
}

func TestCheckFile_TooLarge(t *testing.T) {
	path := writeTempFile(t, "big.pdf", 2048)
	err := CheckFile(path, 1024)
	require.ErrorIs(t, err, common.ErrFileTooLarge)
	assert.Contains(t, err.Error(), "2048")
}

func TestCheckFile_WithinLimit(t *testing.T) {
	path := writeTempFile(t, "ok.pdf", 512)
	assert.NoError(t, CheckFile(path, 1024))
}
