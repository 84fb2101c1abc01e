// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interfaces of the TLS root bundle tools.
// It implements two Cobra commands: the builder, which downloads PEM sources and
// writes the subset of certificates selected by include/exclude pattern files,
// and the verifier, which checks a list of URLs against the resulting bundle.
// Settings come from flags, optionally layered over a JSON or YAML config file,
// and all progress goes through the logger package.
package cli
