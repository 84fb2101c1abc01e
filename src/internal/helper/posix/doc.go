// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helpers for building CLI usage strings.
//
// The builder and the verifier are shipped as separate binaries and are often
// renamed by packagers, so their Cobra "Use" lines are derived from the running
// executable instead of being hardcoded:
//
//	rootCmd := &cobra.Command{
//	    Use: posix.ExecutableName("tls-root-bundle") + " [flags]",
//	}
//
// Cross-platform behavior:
//
//   - Linux/macOS: "/usr/bin/tls-root-bundle" → "tls-root-bundle"
//   - Windows: "C:\bin\tls-root-bundle.exe" → "tls-root-bundle"
//   - Fallback: empty os.Args → the supplied fallback name
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
