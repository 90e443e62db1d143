// Copyright (c) The fudiff authors. All rights reserved.
// https://github.com/di-graph/fudiff
// See the included LICENSE file for license details.

// Package fudiff implements the fuzzy unified diff format: a textual
// representation of line-level edits that locates each hunk by searching for
// its context lines instead of trusting stored line numbers, so a patch still
// applies cleanly to a target that has drifted a little since the diff was
// taken.
//
// The package is a closed loop of four pure operations over the same data
// model: Diff computes hunks, Render and Parse convert them to and from the
// textual format, and Patch (or Revert) replays them against an input text.
// The typical pipeline is
//
//	d := fudiff.Diff(old, new)
//	text := d.Render()
//	// ... transmit text ...
//	d, err := fudiff.Parse(text)
//	patched, err := d.Patch(target)
//
// Nothing here performs I/O and no value is mutated after construction, so
// all operations are safe for concurrent use.
package fudiff

import (
	"fmt"
	"strings"
)

// Hunk is one contiguous edit region. ContextBefore anchors the hunk in the
// target text, Deletions must match the target verbatim at that anchor,
// Additions replace them, and ContextAfter records the lines that followed
// the change when the hunk was produced.
type Hunk struct {
	ContextBefore []string
	Deletions     []string
	Additions     []string
	ContextAfter  []string
}

// FuDiff is an ordered sequence of hunks. Hunks are applied strictly in
// order, each anchored no earlier than the end of the previous hunk's match.
type FuDiff struct {
	Hunks []Hunk
}

// String renders the diff in the fuzzy unified diff format.
func (d FuDiff) String() string {
	return d.Render()
}

// ErrorKind discriminates the failure modes of Parse and Patch.
type ErrorKind int

const (
	// ErrParse reports malformed diff text.
	ErrParse ErrorKind = iota
	// ErrApply reports a hunk that cannot be applied to the input: missing
	// context, mismatched or out-of-range deletions, or a deleting patch
	// against empty input.
	ErrApply
	// ErrAmbiguousMatch reports a hunk whose context matches more than one
	// position in the input.
	ErrAmbiguousMatch
)

func (k ErrorKind) String() string {
	switch k {
	case ErrParse:
		return "parse"
	case ErrApply:
		return "apply"
	case ErrAmbiguousMatch:
		return "ambiguous match"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by all operations in this package. Kind
// tells the three failure modes apart programmatically; Message carries the
// offending content and position for diagnosis.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// splitLines splits text into lines. A trailing newline does not produce a
// trailing empty line, and an empty text has no lines at all.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func parseErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrParse, Message: fmt.Sprintf(format, args...)}
}

func applyErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrApply, Message: fmt.Sprintf(format, args...)}
}

func ambiguousErrorf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrAmbiguousMatch, Message: fmt.Sprintf(format, args...)}
}
