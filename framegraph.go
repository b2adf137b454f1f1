// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framegraph

import "fmt"

const graphPrefix = "framegraph: "

func newGraphErr(reason string) error { return fmt.Errorf("%s%s", graphPrefix, reason) }

// Graph is a frame graph. The zero value is not usable; create one with
// New.
//
// The usual sequence for a frame is: declare every pass (each call to
// AddCallbackPass runs that pass's setup callback immediately, which
// declares the pass's resource accesses through a Builder); optionally
// Import external resources; call Compile exactly once; call Execute
// exactly once. A Graph is not required to be reusable after Execute
// returns (see the doc comment on Execute).
type Graph struct {
	passNodes     []passNode
	resourceNodes []resourceNode
	registry      []resourceEntry
}

// New creates an empty Graph.
func New() *Graph { return &Graph{} }

// Reserve is a capacity hint; it does not change observable behavior.
func (g *Graph) Reserve(numPasses, numResources int) {
	if cap(g.passNodes) < numPasses {
		passNodes := make([]passNode, len(g.passNodes), numPasses)
		copy(passNodes, g.passNodes)
		g.passNodes = passNodes
	}
	if cap(g.resourceNodes) < numResources {
		resourceNodes := make([]resourceNode, len(g.resourceNodes), numResources)
		copy(resourceNodes, g.resourceNodes)
		g.resourceNodes = resourceNodes
	}
	if cap(g.registry) < numResources {
		registry := make([]resourceEntry, len(g.registry), numResources)
		copy(registry, g.registry)
		g.registry = registry
	}
}

// createPassNode appends a new passNode and returns its index.
func (g *Graph) createPassNode(name string, exec func(*PassResources, any)) int {
	id := len(g.passNodes)
	g.passNodes = append(g.passNodes, passNode{
		name:     name,
		id:       id,
		exec:     exec,
		refCount: 0,
	})
	return id
}

// createResourceNode appends a new resourceNode snapshotting the given
// version and returns the Handle that identifies it (its index).
func (g *Graph) createResourceNode(name string, resourceID int, version uint32) Handle {
	id := len(g.resourceNodes)
	g.resourceNodes = append(g.resourceNodes, resourceNode{
		name:       name,
		id:         id,
		resourceID: resourceID,
		version:    version,
		producer:   noIndex,
	})
	return Handle(id)
}

// createEntry registers a new resourceEntry of the given kind wrapping
// concept, then creates the resourceNode that exposes it, returning the
// new Handle.
func (g *Graph) createEntry(kind resourceKind, name string, concept resourceConcept) Handle {
	id := len(g.registry)
	g.registry = append(g.registry, resourceEntry{
		id:       id,
		kind:     kind,
		version:  initialVersion,
		concept:  concept,
		producer: noIndex,
		last:     noIndex,
	})
	return g.createResourceNode(name, id, initialVersion)
}

// resourceNodeAt returns the resourceNode for h, panicking if h is out of
// range (spec.md §7: "out-of-range handle" is a contract violation).
func (g *Graph) resourceNodeAt(h Handle) *resourceNode {
	if int(h) < 0 || int(h) >= len(g.resourceNodes) {
		panic(newGraphErr("handle out of range"))
	}
	return &g.resourceNodes[h]
}

// entryFor returns the resourceEntry backing h.
func (g *Graph) entryFor(h Handle) *resourceEntry {
	return g.entryAt(g.resourceNodeAt(h).resourceID)
}

func (g *Graph) entryAt(resourceID int) *resourceEntry {
	return &g.registry[resourceID]
}

// IsValid reports whether h refers to the current version of its
// underlying resource. A handle made stale by a later Write (rename)
// reports false forever after (spec.md I6, P4).
func (g *Graph) IsValid(h Handle) bool {
	node := g.resourceNodeAt(h)
	return node.version == g.entryAt(node.resourceID).version
}

// rename increments the version of the resource entry backing h and
// returns a new Handle snapshotting that version (spec.md §4.3 Write:
// "the handle is renamed"). The old handle becomes invalid.
func (g *Graph) rename(h Handle) Handle {
	node := g.resourceNodeAt(h)
	entry := g.entryAt(node.resourceID)
	entry.version++
	return g.createResourceNode(node.name, node.resourceID, entry.version)
}

// Create declares the creation of a new transient resource of value type
// T within the scope of the Builder's pass. T is default-constructed
// (allocated as new(T)) by the Graph; its Create hook runs later, during
// Execute, just before the resource's first use.
func Create[T any, D any, PT resourcePtr[T, D]](b *Builder, name string, desc D) Handle {
	concept := newResourceModel[T, D, PT](desc, new(T))
	h := b.graph.createEntry(transient, name, concept)
	pass := &b.graph.passNodes[b.pass]
	pass.creates = append(pass.creates, h)
	return h
}

// Import registers an externally owned resource with the Graph (spec.md
// §6: FrameGraph::import). Create and Destroy are never invoked on it.
func Import[T any, D any, PT resourcePtr[T, D]](g *Graph, name string, desc D, resource PT) Handle {
	concept := newResourceModel[T, D, PT](desc, resource)
	return g.createEntry(imported, name, concept)
}

// GetDescriptor returns the descriptor T was created or imported with.
// It panics if h does not back a resource of type (T, D).
func GetDescriptor[T any, D any, PT resourcePtr[T, D]](g *Graph, h Handle) D {
	entry := g.entryFor(h)
	model, ok := entry.concept.(*resourceModel[T, D, PT])
	if !ok {
		panic(newGraphErr("GetDescriptor: resource type mismatch"))
	}
	return model.desc
}

// AddCallbackPass creates a pass owning a zero-valued Data. setup is
// invoked immediately and must declare the pass's resource accesses
// through builder; exec is stored and invoked by Execute if the pass
// survives culling. AddCallbackPass returns a pointer to the pass's
// owned Data, stable across Compile and Execute, so the caller may
// inspect results the pass wrote into it after Execute returns.
func AddCallbackPass[Data any](
	g *Graph,
	name string,
	setup func(b *Builder, data *Data),
	exec func(data *Data, resources *PassResources, ctx any),
) *Data {
	data := new(Data)
	passExec := func(resources *PassResources, ctx any) { exec(data, resources, ctx) }
	id := g.createPassNode(name, passExec)
	builder := &Builder{graph: g, pass: id}
	setup(builder, data)
	return data
}
