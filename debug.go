// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framegraph

import "io"

// PassView is a read-only snapshot of a pass, exposed to a Visitor.
type PassView struct {
	Name          string
	ID            int
	RefCount      int
	HasSideEffect bool
	Live          bool
	Creates       []Handle
	Reads         []Handle
	Writes        []Handle
}

// ResourceView is a read-only snapshot of a resourceNode, exposed to a
// Visitor.
type ResourceView struct {
	Name     string
	Handle   Handle
	Version  uint32
	RefCount int
}

// EntryView is a read-only snapshot of the resourceEntry a ResourceView
// refers to, exposed to a Visitor alongside it.
type EntryView struct {
	ID       int
	Imported bool
	Version  uint32
	Describe string
}

// Visitor is the read-only traversal contract a debug serializer
// implements to walk a compiled Graph (spec.md §6: "Debug visitor
// contract"). DebugOutput visits every pass node once, in declaration
// order, then every resource node once, in declaration order, and
// finally calls Flush.
type Visitor interface {
	VisitPass(p PassView, allResources []ResourceView)
	VisitResource(r ResourceView, entry EntryView, allPasses []PassView)
	Flush(sink io.Writer)
}

// DebugOutput drives v over the Graph's compiled state and writes v's
// rendered output to sink. It does not mutate the Graph and may be
// called any number of times, including before Compile (until Compile has
// run, RefCount fields are zero and Live equals HasSideEffect).
func (g *Graph) DebugOutput(sink io.Writer, v Visitor) {
	passViews := make([]PassView, len(g.passNodes))
	for i, p := range g.passNodes {
		passViews[i] = PassView{
			Name:          p.name,
			ID:            p.id,
			RefCount:      p.refCount,
			HasSideEffect: p.hasSideEffect,
			Live:          p.canExecute(),
			Creates:       append([]Handle(nil), p.creates...),
			Reads:         handlesOf(p.reads),
			Writes:        handlesOf(p.writes),
		}
	}

	resourceViews := make([]ResourceView, len(g.resourceNodes))
	for i, r := range g.resourceNodes {
		resourceViews[i] = ResourceView{
			Name:     r.name,
			Handle:   Handle(i),
			Version:  r.version,
			RefCount: r.refCount,
		}
	}

	for i, p := range passViews {
		_ = i
		v.VisitPass(p, resourceViews)
	}
	for i, r := range g.resourceNodes {
		entry := &g.registry[r.resourceID]
		ev := EntryView{
			ID:       entry.id,
			Imported: entry.kind == imported,
			Version:  entry.version,
			Describe: entry.concept.describe(),
		}
		v.VisitResource(resourceViews[i], ev, passViews)
	}
	v.Flush(sink)
}

func handlesOf(accesses []access) []Handle {
	hs := make([]Handle, len(accesses))
	for i, a := range accesses {
		hs[i] = a.handle
	}
	return hs
}
