// Package srcfile is the file I/O shell around the rewrite transform:
// whole-file reads and atomic whole-file writes. The output path is
// only ever touched by a rename of a fully written temp file, so a
// failed run never leaves a truncated or half-patched file behind.
package srcfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mhs-embed/srcpatch/debug"
)

func Read(path string) (string, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, err)
	}
	if debug.IO() {
		debug.Logf("read %s (%d bytes)\n", path, len(d))
	}
	return string(d), nil
}

// WriteAtomic writes content to path via a temp file in the same
// directory plus rename. The parent directory must exist.
func WriteAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmpf, err := os.CreateTemp(dir, ".mhs_patch_*")
	if err != nil {
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	tmp := tmpf.Name()
	defer os.Remove(tmp)

	if _, err := io.WriteString(tmpf, content); err != nil {
		_ = tmpf.Close()
		return fmt.Errorf("unable to write %s: %w", path, err)
	}
	if err := tmpf.Sync(); err != nil {
		_ = tmpf.Close()
		return fmt.Errorf("unable to sync %s: %w", path, err)
	}
	if err := tmpf.Close(); err != nil {
		return fmt.Errorf("unable to close %s: %w", path, err)
	}
	// CreateTemp makes 0600 files; the output is a source file.
	_ = os.Chmod(tmp, 0o644)
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("unable to replace %s: %w", path, err)
	}
	if debug.IO() {
		debug.Logf("wrote %s (%d bytes)\n", path, len(content))
	}
	return nil
}
