// Copyright (c) The fudiff authors. All rights reserved.
// https://github.com/di-graph/fudiff
// See the included LICENSE file for license details.

package fudiff

import "strings"

// Render serializes the diff in the fuzzy unified diff format: an "@@ @@"
// separator per hunk followed by the hunk's lines prefixed with ' ', '-' or
// '+'. Every content line is newline-terminated except the last trailing
// context line of the last hunk, so a diff whose last hunk ends in additions
// or deletions ends with a newline. Render never fails; an empty diff
// renders as the empty string.
func (d FuDiff) Render() string {
	var b strings.Builder

	for i, hunk := range d.Hunks {
		b.WriteString("@@ @@\n")

		for _, line := range hunk.ContextBefore {
			b.WriteByte(' ')
			b.WriteString(line)
			b.WriteByte('\n')
		}

		for _, line := range hunk.Deletions {
			b.WriteByte('-')
			b.WriteString(line)
			b.WriteByte('\n')
		}

		for _, line := range hunk.Additions {
			b.WriteByte('+')
			b.WriteString(line)
			b.WriteByte('\n')
		}

		for j, line := range hunk.ContextAfter {
			b.WriteByte(' ')
			b.WriteString(line)
			if i < len(d.Hunks)-1 || j < len(hunk.ContextAfter)-1 {
				b.WriteByte('\n')
			}
		}
	}

	return b.String()
}
