// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bundle assembles a filtered root bundle.
//
// [Assembler.Assemble] walks the parsed certificates in source order, extracts
// each issuer identity, asks the [filter.Policy] for a decision and streams every
// selected certificate to the output as it goes, optionally preceded by a
// "# O=<org>, CN=<cn>" line. The output therefore contains a subsequence of the
// input in its original order; duplicates are evaluated and written
// independently.
//
// A certificate without a usable issuer identity aborts assembly. [WriteFile]
// stages output in a temporary file that only replaces the destination on
// success, so an aborted run leaves no partial bundle behind.
package bundle
