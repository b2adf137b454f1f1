// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package jsonview renders a compiled frame graph as a JSON document
// describing every pass and resource, their liveness, and the
// creates/reads/writes relationships between them.
package jsonview

import (
	"encoding/json"
	"io"

	"gviegas/framegraph"
)

type passEntry struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Culled  bool   `json:"culled"`
	Reads   []int  `json:"reads"`
	Writes  []int  `json:"writes"`
	Creates []int  `json:"creates"`
}

type resourceEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Transient   bool   `json:"transient"`
	CreatedBy   *int   `json:"createdBy,omitempty"`
	Readers     []int  `json:"readers,omitempty"`
	Writers     []int  `json:"writers,omitempty"`
}

type document struct {
	Passes    []passEntry     `json:"passes"`
	Resources []resourceEntry `json:"resources"`
}

// Writer implements framegraph.Visitor, accumulating a document as
// DebugOutput drives it, then rendering it as indented JSON on Flush.
type Writer struct {
	doc document
	// resourceByEntry deduplicates VisitResource calls across renamed
	// handles that share one resourceEntry.ID (one JSON object per
	// entry, matching the original writer's "obj already populated"
	// idempotency check).
	resourceByEntry map[int]int
}

// NewWriter returns a ready-to-use Writer.
func NewWriter() *Writer {
	return &Writer{resourceByEntry: make(map[int]int)}
}

// VisitPass implements framegraph.Visitor.
func (w *Writer) VisitPass(p framegraph.PassView, _ []framegraph.ResourceView) {
	w.doc.Passes = append(w.doc.Passes, passEntry{
		ID:      p.ID,
		Name:    p.Name,
		Culled:  !p.Live,
		Reads:   handleInts(p.Reads),
		Writes:  handleInts(p.Writes),
		Creates: handleInts(p.Creates),
	})
}

// VisitResource implements framegraph.Visitor.
func (w *Writer) VisitResource(r framegraph.ResourceView, entry framegraph.EntryView, passes []framegraph.PassView) {
	idx, ok := w.resourceByEntry[entry.ID]
	if !ok {
		idx = len(w.doc.Resources)
		w.resourceByEntry[entry.ID] = idx
		w.doc.Resources = append(w.doc.Resources, resourceEntry{
			ID:          entry.ID,
			Name:        r.Name,
			Description: entry.Describe,
			Transient:   !entry.Imported,
		})
	}
	res := &w.doc.Resources[idx]
	for _, p := range passes {
		if containsHandle(p.Creates, r.Handle) {
			id := p.ID
			res.CreatedBy = &id
		}
		if containsHandle(p.Reads, r.Handle) {
			res.Readers = append(res.Readers, p.ID)
		}
		if containsHandle(p.Writes, r.Handle) {
			res.Writers = append(res.Writers, p.ID)
		}
	}
}

// Flush implements framegraph.Visitor, writing the accumulated document to
// sink as indented JSON.
func (w *Writer) Flush(sink io.Writer) {
	enc := json.NewEncoder(sink)
	enc.SetIndent("", "  ")
	// The original writer never surfaces a JSON encoding failure either
	// (it writes directly to an ostream); Encode only fails here on a
	// broken writer, which the caller observes through sink itself.
	_ = enc.Encode(w.doc)
}

func handleInts(hs []framegraph.Handle) []int {
	ids := make([]int, len(hs))
	for i, h := range hs {
		ids[i] = int(h)
	}
	return ids
}

func containsHandle(hs []framegraph.Handle, h framegraph.Handle) bool {
	for _, x := range hs {
		if x == h {
			return true
		}
	}
	return false
}

var _ framegraph.Visitor = (*Writer)(nil)
