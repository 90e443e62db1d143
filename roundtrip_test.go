// Copyright (c) The fudiff authors. All rights reserved.
// https://github.com/di-graph/fudiff
// See the included LICENSE file for license details.

package fudiff_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/di-graph/fudiff"
)

// Parse is the exact inverse of Render over everything this package can
// emit: rendering a parsed diff and parsing it again reproduces the hunks.
func TestParseRenderRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{name: "empty diff", input: ""},
		{name: "basic hunk", input: "@@ @@\n fn main() {\n-    old\n+    new\n }\n"},
		{name: "multiple hunks", input: "@@ @@\n a\n-b\n+c\n d\n@@ @@\n x\n-y\n+z\n w\n"},
		{name: "no context", input: "@@ @@\n-deleted\n+added\n"},
		{name: "context only", input: "@@ @@\n context1\n context2\n"},
		{name: "multiple deletions and additions", input: "@@ @@\n before\n-del1\n-del2\n+add1\n+add2\n after\n"},
	}

	for _, tc := range cases {
		// Un-alias tc for compatibility with Go <1.22.
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := fudiff.Parse(tc.input)
			require.NoError(t, err)

			rendered := parsed.Render()

			reparsed, err := fudiff.Parse(rendered)
			require.NoError(t, err)

			if diff := cmp.Diff(parsed.Hunks, reparsed.Hunks); diff != "" {
				t.Errorf("round trip through Render() changed hunks (-parsed +reparsed):\n%s", diff)
			}
		})
	}
}

// Patching the old text with a computed diff yields the new text, reverting
// the result yields the old text again, and the rendered form survives a
// trip through Parse before being applied.
func TestDiffPatchRevertRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		original string
		modified string
	}{
		{name: "empty to empty", original: "", modified: ""},
		{name: "single line", original: "hello world", modified: "new line"},
		{name: "single line change", original: "a\nb\nc", modified: "a\nx\nc"},
		{name: "full replacement", original: "first\nsecond\nthird", modified: "one\ntwo\nthree"},
		{name: "second line of two", original: "old\nfile", modified: "new\nfile"},
		{name: "leading context", original: "keep\nold\nend", modified: "keep\nnew\nend"},
		{name: "trailing context", original: "start\nold\nkeep", modified: "start\nnew\nkeep"},
		{name: "additions only", original: "start\nend", modified: "start\nnew\nend"},
		{name: "deletions only", original: "start\nremove\nend", modified: "start\nend"},
		{name: "multiple hunks", original: "a\nb\nc\nd\ne", modified: "a\nx\nc\ny\ne"},
		{name: "empty lines", original: "\n\n\n", modified: "1\n2\n3\n"},
		{name: "blank line runs", original: "\n\na\n\n", modified: "\n\nb\n\n"},
		{name: "trailing newlines", original: "a\nb\nc\n", modified: "a\nx\nc\n"},
		{name: "indentation preserved", original: "  a\n    b\n  c", modified: "  x\n    y\n  z"},
		{name: "special characters", original: "fn(x) {\n  y\n}", modified: "fn(x) {\n  z\n}"},
	}

	for _, tc := range cases {
		// Un-alias tc for compatibility with Go <1.22.
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := fudiff.Diff(tc.original, tc.modified)

			patched, err := d.Patch(tc.original)
			require.NoError(t, err, "patch failed")
			assert.Equal(t, tc.modified, patched, "patch")

			reverted, err := d.Revert(patched)
			require.NoError(t, err, "revert failed")
			assert.Equal(t, tc.original, reverted, "revert")

			repatched, err := d.Patch(reverted)
			require.NoError(t, err, "re-patch failed")
			assert.Equal(t, tc.modified, repatched, "re-patch")

			// The textual form carries the same edits.
			parsed, err := fudiff.Parse(d.Render())
			require.NoError(t, err)

			if diff := cmp.Diff(d.Hunks, parsed.Hunks); diff != "" {
				t.Errorf("Parse(Render()) changed hunks (-diffed +parsed):\n%s", diff)
			}

			fromText, err := parsed.Patch(tc.original)
			require.NoError(t, err, "patch from parsed text failed")
			assert.Equal(t, tc.modified, fromText, "patch from parsed text")
		})
	}
}

func TestNoopDiff(t *testing.T) {
	t.Parallel()

	const text = "alpha\nbeta\ngamma\n"

	d := fudiff.Diff(text, text)
	assert.Empty(t, d.Hunks)
	assert.Equal(t, "", d.Render())

	got, err := d.Patch(text)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestDiffRenderPatchScenario(t *testing.T) {
	t.Parallel()

	old := "fn main() {\n    println!(\"Hello\");\n}"
	new := "fn main() {\n    println!(\"Goodbye\");\n}"

	d := fudiff.Diff(old, new)

	want := []fudiff.Hunk{
		{
			ContextBefore: []string{"fn main() {"},
			Deletions:     []string{"    println!(\"Hello\");"},
			Additions:     []string{"    println!(\"Goodbye\");"},
			ContextAfter:  []string{"}"},
		},
	}
	if diff := cmp.Diff(want, d.Hunks); diff != "" {
		t.Fatalf("Diff() hunks mismatch (-want +got):\n%s", diff)
	}

	rendered := d.Render()
	assert.Equal(t, "@@ @@\n fn main() {\n-    println!(\"Hello\");\n+    println!(\"Goodbye\");\n }", rendered)

	parsed, err := fudiff.Parse(rendered)
	require.NoError(t, err)
	if diff := cmp.Diff(d.Hunks, parsed.Hunks); diff != "" {
		t.Fatalf("Parse(Render()) hunks mismatch (-want +got):\n%s", diff)
	}

	patched, err := parsed.Patch(old)
	require.NoError(t, err)
	assert.Equal(t, new, patched)
}
