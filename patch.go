// Copyright (c) The fudiff authors. All rights reserved.
// https://github.com/di-graph/fudiff
// See the included LICENSE file for license details.

package fudiff

import "strings"

// Patch applies the diff to input and returns the transformed text.
//
// Hunks are applied in order against a cursor that only moves forward. Each
// hunk is anchored by scanning for its leading context from the cursor on;
// the match must be unique from there to the end of the input, otherwise
// Patch fails with ErrAmbiguousMatch rather than guessing. The hunk's
// deletions must then match the input verbatim at the anchor. Input lines
// the scan skipped over are copied through unchanged, which is what lets a
// patch tolerate drift in the target text.
//
// The output keeps the input's trailing-newline state, except that deleting
// the final line without replacing it with any trailing content drops the
// newline with it.
func (d FuDiff) Patch(input string) (string, error) {
	if len(d.Hunks) == 0 {
		return input, nil
	}

	lines := splitLines(input)
	if len(lines) == 0 {
		// Pure additions may create text from nothing; deletions cannot.
		for _, hunk := range d.Hunks {
			if len(hunk.Deletions) > 0 {
				return "", applyErrorf("cannot apply patch to empty input")
			}
		}
	}

	var result []string
	pos := 0

	for _, hunk := range d.Hunks {
		anchor := pos
		if len(hunk.ContextBefore) > 0 {
			anchor = -1
			for i := pos; i+len(hunk.ContextBefore) <= len(lines); i++ {
				if !matchesAt(lines, hunk.ContextBefore, i) {
					continue
				}
				if anchor != -1 {
					return "", ambiguousErrorf("multiple matches for context %q", hunk.ContextBefore)
				}
				anchor = i
			}
			if anchor == -1 {
				return "", applyErrorf("could not find context %q", hunk.ContextBefore)
			}
		}

		deletionStart := anchor + len(hunk.ContextBefore)
		if len(hunk.Deletions) > 0 {
			if deletionStart+len(hunk.Deletions) > len(lines) {
				return "", applyErrorf("deletion extends past end of input")
			}
			for i, want := range hunk.Deletions {
				if got := lines[deletionStart+i]; got != want {
					return "", applyErrorf("deletion mismatch at line %d: expected %q, found %q",
						deletionStart+i+1, want, got)
				}
			}
		}

		// Lines skipped by the context search, then the matched context
		// itself, then the replacement. Trailing context is not emitted; it
		// reappears as ordinary input lines.
		result = append(result, lines[pos:anchor]...)
		result = append(result, lines[anchor:deletionStart]...)
		result = append(result, hunk.Additions...)

		pos = deletionStart + len(hunk.Deletions)
	}

	if pos < len(lines) {
		result = append(result, lines[pos:]...)
	}

	if len(result) == 0 {
		return "", nil
	}

	output := strings.Join(result, "\n")
	last := d.Hunks[len(d.Hunks)-1]
	deletedFinalLine := pos >= len(lines) &&
		len(last.Deletions) > 0 && len(last.Additions) == 0 && len(last.ContextAfter) == 0
	if strings.HasSuffix(input, "\n") && !deletedFinalLine {
		output += "\n"
	}
	return output, nil
}

// Revert undoes the diff on an input it was previously applied to. It is
// Patch with every hunk's additions and deletions swapped; the receiver is
// not modified.
func (d FuDiff) Revert(input string) (string, error) {
	reverted := FuDiff{Hunks: make([]Hunk, len(d.Hunks))}
	for i, hunk := range d.Hunks {
		reverted.Hunks[i] = Hunk{
			ContextBefore: hunk.ContextBefore,
			Deletions:     hunk.Additions,
			Additions:     hunk.Deletions,
			ContextAfter:  hunk.ContextAfter,
		}
	}
	return reverted.Patch(input)
}

func matchesAt(lines, context []string, start int) bool {
	for i, line := range context {
		if lines[start+i] != line {
			return false
		}
	}
	return true
}
