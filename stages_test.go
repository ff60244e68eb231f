package mdpdf

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func TestClassify_Reexport(t *testing.T) {
	t.Parallel()

	kind, ok := Classify(&html.Node{Type: html.ElementNode, DataAtom: atom.Pre, Data: "pre"})
	if !ok || kind != CodeBlock {
		t.Errorf("Classify(pre) = (%v, %v), want (CodeBlock, true)", kind, ok)
	}
	if len(Kinds) != 7 {
		t.Errorf("len(Kinds) = %d, want 7", len(Kinds))
	}
}

func TestWalkThenEmit(t *testing.T) {
	t.Parallel()

	fb := &fakeBuilder{}
	stats, err := Emit(context.Background(), Walk("<h1>T</h1><ul><li>a</li></ul>"), fb, DefaultStyle())
	if err != nil {
		t.Fatalf("Emit() error = %v", err)
	}
	if stats.Elements != 2 {
		t.Errorf("Elements = %d, want 2", stats.Elements)
	}
	if diff := cmp.Diff([]string{"T", "a"}, fb.blocks); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
	if fb.finished {
		t.Error("Emit must not finish the builder")
	}
}
