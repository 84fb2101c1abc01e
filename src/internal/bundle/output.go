// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bundle

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFile runs fn against a temporary file next to path and renames it to
// path once fn and the close succeed. On any failure the temporary file is
// removed and path is left untouched.
func WriteFile(fs afero.Fs, path string, fn func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(fs, dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("bundle: create output: %w", err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			fs.Remove(tmpName)
		}
	}()

	if err = fn(tmp); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("bundle: close output: %w", err)
	}

	// TempFile creates 0600 files; a trust bundle is meant to be world-readable.
	if err = fs.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("bundle: chmod output: %w", err)
	}

	if err = fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("bundle: write %s: %w", path, err)
	}

	return nil
}
