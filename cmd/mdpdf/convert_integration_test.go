//go:build integration

package main

// Notes:
// - Runs the whole CLI: convert writes a real PDF, text reads it back with
//   the PDF text extractor.
// - Two conversions of the same input must print identical page text.

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestIntegration_ConvertThenText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "doc.md", "# Title\n\nSome text.\n\n- item one\n- item two\n\n```\nprint(1)\n```\n")
	out := filepath.Join(dir, "doc.pdf")

	env, _, stderr := testEnv(nil)
	if code := runMain([]string{"mdpdf", "convert", in, "-o", out}, env); code != ExitSuccess {
		t.Fatalf("convert exit code = %d, stderr:\n%s", code, stderr.String())
	}

	env, stdout, stderr := testEnv(nil)
	if code := runMain([]string{"mdpdf", "text", out}, env); code != ExitSuccess {
		t.Fatalf("text exit code = %d, stderr:\n%s", code, stderr.String())
	}

	text := stdout.String()
	if !strings.HasPrefix(text, "--- page 1 ---\n") {
		t.Errorf("text output does not start with page marker:\n%s", text)
	}
	last := -1
	for _, want := range []string{"Title", "Some text.", "item one", "item two", "print(1)"} {
		idx := strings.Index(text, want)
		if idx < 0 {
			t.Errorf("text missing %q:\n%s", want, text)
			continue
		}
		if idx < last {
			t.Errorf("%q out of document order:\n%s", want, text)
		}
		last = idx
	}
}

func TestIntegration_ConvertIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "doc.md", "# Same\n\n"+strings.Repeat("A paragraph that repeats.\n\n", 60))

	texts := make([]string, 2)
	for i := range texts {
		out := filepath.Join(dir, "run"+string(rune('a'+i))+".pdf")

		env, _, stderr := testEnv(nil)
		if code := runMain([]string{"mdpdf", in, "-o", out}, env); code != ExitSuccess {
			t.Fatalf("convert exit code = %d, stderr:\n%s", code, stderr.String())
		}

		env, stdout, stderr := testEnv(nil)
		if code := runMain([]string{"mdpdf", "text", out}, env); code != ExitSuccess {
			t.Fatalf("text exit code = %d, stderr:\n%s", code, stderr.String())
		}
		texts[i] = stdout.String()
	}

	if texts[0] != texts[1] {
		t.Errorf("page text differs between runs:\n--- first\n%s\n--- second\n%s", texts[0], texts[1])
	}
	if !strings.Contains(texts[0], "--- page 2 ---") {
		t.Errorf("expected at least two pages:\n%s", texts[0])
	}
}

func TestIntegration_TextSinglePage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "doc.md", strings.Repeat("Line of text.\n\n", 80))
	out := filepath.Join(dir, "doc.pdf")

	env, _, stderr := testEnv(nil)
	if code := runMain([]string{"mdpdf", in, "-o", out}, env); code != ExitSuccess {
		t.Fatalf("convert exit code = %d, stderr:\n%s", code, stderr.String())
	}

	env, stdout, _ := testEnv(nil)
	if code := runMain([]string{"mdpdf", "text", "--page", "2", out}, env); code != ExitSuccess {
		t.Fatalf("text exit code = %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "--- page 2 ---") || strings.Contains(stdout.String(), "--- page 1 ---") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}

	env, _, _ = testEnv(nil)
	if code := runMain([]string{"mdpdf", "text", "--page", "99", out}, env); code != ExitUsage {
		t.Errorf("out-of-range page exit code = %d, want %d", code, ExitUsage)
	}
}
