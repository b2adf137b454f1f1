// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framegraph

// Builder is the declaration-phase API scoped to a single pass. A Graph
// constructs one for the duration of a setup callback passed to
// AddCallbackPass; it must not be retained past that callback's return.
type Builder struct {
	graph *Graph
	pass  int
}

func (b *Builder) node() *passNode { return &b.graph.passNodes[b.pass] }

// Read declares that the pass reads the resource identified by h. h must
// be valid and must not already be created or written by this pass,
// otherwise Read panics (spec.md I2, §4.3).
//
// flags is passed through verbatim to the resource's PreRead hook at
// execution time, unless it is omitted, in which case FlagsIgnored is
// used and the hook is never invoked for this access (spec.md §3:
// "flags = ~0 ... suppresses pre-read/pre-write hook invocation"). At
// most one flags value may be given.
//
// Reading the same (h, flags) pair more than once is idempotent: it
// returns h unchanged without recording a second access declaration
// (spec.md P7).
func (b *Builder) Read(h Handle, flags ...uint32) Handle {
	f := resolveFlags(flags)
	if !b.graph.IsValid(h) {
		panic(newGraphErr("Read: invalid handle"))
	}
	pass := b.node()
	if pass.createsHandle(h) || pass.writesHandle(h) {
		panic(newGraphErr("Read: pass already creates or writes this resource"))
	}
	return pass.read(h, f)
}

// Write declares that the pass writes the resource identified by h. h
// must be valid, otherwise Write panics.
//
// Writing to an imported resource implicitly marks the pass as having a
// side effect, since the write is externally observable (spec.md §4.3,
// §9).
//
// If the pass already creates h (this is the pass's first write
// following its own Create), the write is recorded against h unchanged.
// Otherwise the write renames the resource: its entry's version is
// incremented, a new resourceNode is appended, the pass records a read
// of the old handle with FlagsIgnored (so no PreRead hook fires on the
// intermediate version — preserved exactly as the original source does
// it, see DESIGN.md's Open Questions), and the new handle is returned.
// The old handle becomes invalid for any further operation.
//
// flags behaves as documented on Read.
func (b *Builder) Write(h Handle, flags ...uint32) Handle {
	f := resolveFlags(flags)
	if !b.graph.IsValid(h) {
		panic(newGraphErr("Write: invalid handle"))
	}
	if b.graph.entryFor(h).kind == imported {
		b.SetSideEffect()
	}
	pass := b.node()
	if pass.createsHandle(h) {
		return pass.write(h, f)
	}
	pass.read(h, FlagsIgnored)
	renamed := b.graph.rename(h)
	return pass.write(renamed, f)
}

// SetSideEffect marks the pass so that it is never culled during
// Graph.Compile, regardless of its reference count.
func (b *Builder) SetSideEffect() {
	b.node().hasSideEffect = true
}

// resolveFlags implements the "flags = kFlagsIgnored" default parameter
// from the original C++ API, which Go cannot express directly.
func resolveFlags(flags []uint32) uint32 {
	switch len(flags) {
	case 0:
		return FlagsIgnored
	case 1:
		return flags[0]
	default:
		panic(newGraphErr("at most one flags value may be given"))
	}
}
