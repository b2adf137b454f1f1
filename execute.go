// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framegraph

// Execute invokes every live pass's execute closure, in declaration
// order, materializing and releasing transient resources just in time.
//
// For each live pass (see Compile): every resource it creates is
// materialized (its Create hook is invoked); every non-ignored read and
// write access declaration invokes the resource's PreRead/PreWrite hook;
// the pass's stored exec closure is invoked with a PassResources view
// scoped to that pass; finally, every resource whose lifetime ends at
// this pass (its entry's last producer/consumer is this pass) and that
// is transient has its Destroy hook invoked.
//
// ctx and allocator are opaque; Execute never inspects them, only
// forwards them to resource hooks and to the pass's exec closure.
//
// Execute assumes Compile has already run on this Graph exactly once.
// Calling Execute a second time, or calling it before Compile, is
// undefined: a Graph is a one-shot, per-frame structure (spec.md §9 open
// question: "Graph reuse after execute is not tested").
func (g *Graph) Execute(ctx, allocator any) {
	for i := range g.passNodes {
		pass := &g.passNodes[i]
		if !pass.canExecute() {
			continue
		}

		for _, h := range pass.creates {
			entry := g.entryFor(h)
			if entry.kind != transient {
				panic(newGraphErr("Execute: create declared against a non-transient resource"))
			}
			if err := entry.concept.create(allocator); err != nil {
				panic(newGraphErr("Execute: " + err.Error()))
			}
		}

		for _, a := range pass.reads {
			if a.flags != FlagsIgnored {
				g.entryFor(a.handle).concept.preRead(a.flags, ctx)
			}
		}
		for _, a := range pass.writes {
			if a.flags != FlagsIgnored {
				g.entryFor(a.handle).concept.preWrite(a.flags, ctx)
			}
		}

		resources := &PassResources{graph: g, pass: pass}
		pass.exec(resources, ctx)

		for j := range g.registry {
			entry := &g.registry[j]
			if entry.last == uint32(i) && entry.kind == transient {
				entry.concept.destroy(allocator)
			}
		}
	}
}

// PassResources is the read/write view of declared resources available
// to a pass's exec closure. It is only valid for the duration of that
// invocation.
type PassResources struct {
	graph *Graph
	pass  *passNode
}

// Get returns the resource object backing h. It panics if the owning
// pass did not declare h (through Create, Read, or Write), or if (T, D)
// does not match the type h was created or imported with.
func Get[T any, D any, PT resourcePtr[T, D]](r *PassResources, h Handle) PT {
	requireDeclared(r, h)
	model, ok := r.graph.entryFor(h).concept.(*resourceModel[T, D, PT])
	if !ok {
		panic(newGraphErr("Get: resource type mismatch"))
	}
	return model.resource
}

// GetResourceDescriptor returns the descriptor h was created or imported
// with. It panics under the same conditions as Get.
func GetResourceDescriptor[T any, D any, PT resourcePtr[T, D]](r *PassResources, h Handle) D {
	requireDeclared(r, h)
	model, ok := r.graph.entryFor(h).concept.(*resourceModel[T, D, PT])
	if !ok {
		panic(newGraphErr("GetResourceDescriptor: resource type mismatch"))
	}
	return model.desc
}

func requireDeclared(r *PassResources, h Handle) {
	if !r.pass.declares(h) {
		panic(newGraphErr("pass did not declare this handle"))
	}
}
