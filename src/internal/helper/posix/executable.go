// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// ExecutableName returns the name of the running executable without directory
// or ".exe" extension. When os.Args carries no usable program name, fallback is
// returned instead.
func ExecutableName(fallback string) string {
	if len(os.Args) == 0 {
		return fallback
	}
	return baseName(os.Args[0], fallback)
}

// baseName strips directories and the Windows executable extension from arg0.
// Both separators are honored so a Windows path is handled on Unix and vice versa.
func baseName(arg0, fallback string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\' || r == filepath.Separator
	})
	if len(parts) == 0 {
		return fallback
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" {
		return fallback
	}

	return name
}
