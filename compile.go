// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framegraph

// Compile culls passes and resources that do not contribute to any
// observable output and computes the lifetime window of every transient
// resource. It must be called at most once per Graph, after every pass
// has been declared and every Import has been performed, and before
// Execute.
//
// Compile runs three phases over the current pass/resource node arrays
// (spec.md §4.4):
//
//  1. Reference counting: a pass's refCount starts at its number of
//     writes; each resource node's refCount is the number of passes that
//     read it; each written resource node records its producing pass.
//  2. Iterative culling: resource nodes with refCount == 0 seed a LIFO
//     stack. Popping a node with no producer, or whose producer has a
//     side effect, is a no-op; otherwise the producer's refCount is
//     decremented, and if it reaches zero every resource the producer
//     reads has its refCount decremented in turn, pushing any that reach
//     zero. A pass is live afterwards iff its refCount is still positive
//     or it has a side effect (spec.md P1).
//  3. Lifetime windows: for each live pass, in declaration order, every
//     resource entry it creates records that pass as its producer, and
//     every resource entry it reads or writes records that pass as the
//     last (most recent) live pass touching it.
func (g *Graph) Compile() {
	g.countReferences()
	g.cull()
	g.assignLifetimes()
}

func (g *Graph) countReferences() {
	for i := range g.passNodes {
		pass := &g.passNodes[i]
		pass.refCount = len(pass.writes)
		for _, a := range pass.reads {
			g.resourceNodes[a.handle].refCount++
		}
		for _, a := range pass.writes {
			g.resourceNodes[a.handle].producer = uint32(i)
		}
	}
}

func (g *Graph) cull() {
	var stack []int
	for i := range g.resourceNodes {
		if g.resourceNodes[i].refCount == 0 {
			stack = append(stack, i)
		}
	}
	for len(stack) > 0 {
		n := len(stack) - 1
		idx := stack[n]
		stack = stack[:n]

		node := &g.resourceNodes[idx]
		if node.producer == noIndex {
			continue
		}
		producer := &g.passNodes[node.producer]
		if producer.hasSideEffect {
			continue
		}
		if producer.refCount < 1 {
			panic(newGraphErr("cull: producer refCount underflow"))
		}
		producer.refCount--
		if producer.refCount == 0 {
			for _, a := range producer.reads {
				read := &g.resourceNodes[a.handle]
				read.refCount--
				if read.refCount == 0 {
					stack = append(stack, int(a.handle))
				}
			}
		}
	}
}

func (g *Graph) assignLifetimes() {
	for i := range g.passNodes {
		pass := &g.passNodes[i]
		if pass.refCount == 0 && !pass.hasSideEffect {
			continue
		}
		for _, h := range pass.creates {
			g.entryFor(h).producer = uint32(i)
		}
		for _, a := range pass.writes {
			g.entryFor(a.handle).last = uint32(i)
		}
		for _, a := range pass.reads {
			g.entryFor(a.handle).last = uint32(i)
		}
	}
}
