// Copyright (c) The fudiff authors. All rights reserved.
// https://github.com/di-graph/fudiff
// See the included LICENSE file for license details.

package fudiff

import "strings"

// Parse reads a diff in the fuzzy unified diff format. It is the exact
// inverse of Render for any diff this package produces.
//
// A hunk separator is a line starting with "@@" whose remainder contains a
// second "@@"; any text between or after the markers (such as conventional
// line-range annotations) is ignored. Blank lines and file-header lines
// beginning "---" or "+++" are skipped wherever they appear. Within a hunk,
// a space-prefixed line belongs to the leading context until the first
// deletion or addition and to the trailing context afterwards, mirroring the
// order in which Render emits them.
//
// Empty or whitespace-only input parses to a diff with no hunks. Any other
// malformed input returns an *Error with Kind ErrParse.
func Parse(input string) (FuDiff, error) {
	// Empty input is a valid diff with no changes.
	if strings.TrimSpace(input) == "" {
		return FuDiff{}, nil
	}
	if !strings.Contains(input, "@@") {
		return FuDiff{}, parseErrorf("no hunks found in diff")
	}

	var hunks []Hunk
	var cur *Hunk

	for _, line := range splitLines(input) {
		if strings.HasPrefix(line, "@@") && strings.Contains(line[2:], "@@") {
			if cur != nil {
				hunks = append(hunks, *cur)
			}
			cur = &Hunk{}
			continue
		}

		if line == "" || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}

		if cur == nil {
			return FuDiff{}, parseErrorf("line found outside of hunk: %q", line)
		}

		marker, content := line[0], line[1:]
		switch marker {
		case ' ':
			if len(cur.Deletions) == 0 && len(cur.Additions) == 0 {
				cur.ContextBefore = append(cur.ContextBefore, content)
			} else {
				cur.ContextAfter = append(cur.ContextAfter, content)
			}
		case '-':
			cur.Deletions = append(cur.Deletions, content)
		case '+':
			cur.Additions = append(cur.Additions, content)
		default:
			return FuDiff{}, parseErrorf("invalid line prefix %q", string(marker))
		}
	}

	if cur != nil {
		hunks = append(hunks, *cur)
	}

	return FuDiff{Hunks: hunks}, nil
}
