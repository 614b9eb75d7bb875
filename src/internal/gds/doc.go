// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gds holds the pure text routines behind every GDS MCP answer.
//
//   - [Library] returns the Chakra UI v3 naming guide, the LoginCard snippet,
//     the generic instruction body and the design catalog, and prefixes any
//     body with the guide through [Library.WithHeader].
//   - [Generator] turns a component name and purpose into a [Payload] of two
//     files plus advisory notes.
//   - [Classify] decides whether a free-form prompt asks for a login form.
//
// Nothing here performs I/O after construction. Values are built once from an
// embedded filesystem and are safe for concurrent use.
package gds
