// Copyright (c) The fudiff authors. All rights reserved.
// https://github.com/di-graph/fudiff
// See the included LICENSE file for license details.

package fudiff

// lookahead is how far the differ searches ahead on each side for the next
// synchronization point, and also caps the trailing context carried per hunk.
const lookahead = 3

// Diff computes the hunks that transform old into new. It is a greedy,
// bounded-lookahead heuristic rather than a minimal-edit-distance algorithm:
// the result is deterministic and always applies cleanly to old, but is not
// guaranteed to be the shortest possible diff. Identical inputs yield a diff
// with no hunks.
func Diff(old, new string) FuDiff {
	oldLines := splitLines(old)
	newLines := splitLines(new)

	var hunks []Hunk
	var cur Hunk

	i, j := 0, 0

	// Common prefix becomes the first hunk's leading context.
	for i < len(oldLines) && j < len(newLines) && oldLines[i] == newLines[j] {
		cur.ContextBefore = append(cur.ContextBefore, oldLines[i])
		i++
		j++
	}

	for i < len(oldLines) || j < len(newLines) {
		di, dj, ok := nextMatch(oldLines[i:], newLines[j:])
		if !ok {
			// No sync point in the window: take everything that is left.
			cur.Deletions = append(cur.Deletions, oldLines[i:]...)
			cur.Additions = append(cur.Additions, newLines[j:]...)
			break
		}

		cur.Deletions = append(cur.Deletions, oldLines[i:i+di]...)
		cur.Additions = append(cur.Additions, newLines[j:j+dj]...)
		i += di
		j += dj

		for n := 0; n < lookahead && i < len(oldLines) && j < len(newLines) && oldLines[i] == newLines[j]; n++ {
			cur.ContextAfter = append(cur.ContextAfter, oldLines[i])
			i++
			j++
		}

		if len(cur.Deletions) > 0 || len(cur.Additions) > 0 {
			hunks = append(hunks, cur)
			// The closed hunk's trailing context seeds the next hunk's
			// leading context.
			cur = Hunk{ContextBefore: append([]string(nil), cur.ContextAfter...)}
		}
	}

	if len(cur.Deletions) > 0 || len(cur.Additions) > 0 {
		hunks = append(hunks, cur)
	}

	return FuDiff{Hunks: hunks}
}

// nextMatch finds the nearest offset pair (di, dj), excluding (0, 0), at
// which oldRest[di] == newRest[dj]. Candidates are scanned in increasing
// di+dj, ties in ascending di, both offsets bounded by the lookahead. The
// scan order is a normative part of the format: it makes diff output
// deterministic, not optimal.
func nextMatch(oldRest, newRest []string) (int, int, bool) {
	for sum := 1; sum <= 2*lookahead; sum++ {
		for di := 0; di <= sum && di <= lookahead; di++ {
			dj := sum - di
			if dj > lookahead {
				continue
			}
			if di < len(oldRest) && dj < len(newRest) && oldRest[di] == newRest[dj] {
				return di, dj, true
			}
		}
	}
	return 0, 0, false
}
