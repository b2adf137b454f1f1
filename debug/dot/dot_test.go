// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package dot

import (
	"bytes"
	"strings"
	"testing"

	"gviegas/framegraph"
)

type bufDesc struct{ size int }

type buffer struct{ id int }

func (b *buffer) Create(bufDesc, any) error { return nil }
func (b *buffer) Destroy(bufDesc, any)      {}

func TestFlushProducesValidDigraph(t *testing.T) {
	g := framegraph.New()
	framegraph.AddCallbackPass(g, "Clear",
		func(b *framegraph.Builder, data *struct{ h framegraph.Handle }) {
			data.h = framegraph.Create[buffer](b, "scratch", bufDesc{size: 64})
			b.SetSideEffect()
		},
		func(data *struct{ h framegraph.Handle }, r *framegraph.PassResources, ctx any) {},
	)
	g.Compile()

	w := NewWriter()
	var buf bytes.Buffer
	g.DebugOutput(&buf, w)

	out := buf.String()
	if !strings.HasPrefix(out, "digraph framegraph {") {
		t.Fatalf("Flush: missing digraph header, got:\n%s", out)
	}
	if !strings.Contains(out, "pass0") {
		t.Fatalf("Flush: missing pass vertex, got:\n%s", out)
	}
	if !strings.Contains(out, "res0") {
		t.Fatalf("Flush: missing resource vertex, got:\n%s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Fatalf("Flush: digraph not closed, got:\n%s", out)
	}
}

func TestCulledPassUsesCulledColor(t *testing.T) {
	g := framegraph.New()
	framegraph.AddCallbackPass(g, "Unused",
		func(b *framegraph.Builder, data *struct{}) {},
		func(data *struct{}, r *framegraph.PassResources, ctx any) { t.Fatal("culled pass executed") },
	)
	g.Compile()

	w := NewWriter()
	var buf bytes.Buffer
	g.DebugOutput(&buf, w)

	if !strings.Contains(buf.String(), w.Colors.PassCulled) {
		t.Fatalf("Flush: expected culled color %q in output:\n%s", w.Colors.PassCulled, buf.String())
	}
}
