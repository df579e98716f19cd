package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
)

// CheckFile confirms the path exists and enforces the size ceiling. It runs
// before any parsing library touches the file, so a hostile upload never
// reaches a decoder.
func CheckFile(path string, maxBytes int64) error {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return common.NewAppError(common.ErrFileNotFound, path, nil)
		}
		return common.NewAppError(common.ErrFileNotFound, "stat "+path, err)
	}
	if st.IsDir() {
		return common.NewAppError(common.ErrFileNotFound, path+" is a directory", nil)
	}
	if st.Size() > maxBytes {
		return common.NewAppError(common.ErrFileTooLarge,
			fmt.Sprintf("%s is %d bytes, limit %d", path, st.Size(), maxBytes), nil)
	}
	return nil
}
