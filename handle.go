// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framegraph

// Handle identifies a versioned view of a virtual resource in a Graph.
// It is the index of a resourceNode in the owning Graph's node list.
//
// Two handles that refer to the same underlying resource but at
// different versions (because the resource was renamed by a Write) are
// distinct Handle values; only the most recently produced handle for a
// resource is valid (see Graph.IsValid).
type Handle int

// FlagsIgnored is the sentinel flags value that suppresses the
// PreRead/PreWrite hook for an access declaration. Any other value is
// passed through to the hook verbatim; the engine never interprets it.
const FlagsIgnored = ^uint32(0)

// noIndex marks an absent pass-index back-reference (resourceEntry.producer
// / resourceEntry.last / resourceNode.producer). It replaces the raw
// pointers used by the original implementation, per design note §9:
// back-references are indices into Graph.passNodes, not pointers, so they
// never dangle while the pass list grows.
const noIndex = ^uint32(0)

// access is a single read or write declaration: a Handle paired with
// the flags value the owning pass will pass to the resource's PreRead or
// PreWrite hook (or FlagsIgnored to suppress the hook entirely).
type access struct {
	handle Handle
	flags  uint32
}
