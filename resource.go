// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package framegraph

// Resource is the capability every virtual resource type must satisfy to
// be created or imported through a Graph. D is the resource's descriptor
// type (an immutable, value-typed description of the resource, such as a
// texture's dimensions and pixel format).
//
// Create is called exactly once for a transient resource, before its
// first use by a live pass. Destroy is called exactly once, after the
// last live pass that touches it. Neither is ever called for an imported
// resource (see Graph.Import).
type Resource[D any] interface {
	Create(desc D, allocator any) error
	Destroy(desc D, allocator any)
}

// PreReader is an optional capability. If a Resource's type also
// implements PreReader, PreRead is invoked immediately before a pass
// observes the resource through a non-ignored read access declaration.
type PreReader[D any] interface {
	PreRead(desc D, flags uint32, ctx any)
}

// PreWriter is an optional capability. If a Resource's type also
// implements PreWriter, PreWrite is invoked immediately before a pass
// observes the resource through a non-ignored write access declaration.
type PreWriter[D any] interface {
	PreWrite(desc D, flags uint32, ctx any)
}

// Describer is an optional capability used by debug views (see the
// debug/dot and debug/jsonview packages). A resource type that does not
// implement it is described by the empty string.
type Describer[D any] interface {
	Describe(desc D) string
}

// resourceConcept is the type-erased dispatch surface stored in a
// resourceEntry. One resourceModel[T, D, PT] instance implements it per
// concrete (T, D) pair created or imported into a Graph; this is the Go
// analogue of the original C++ implementation's Concept/Model pair
// (original_source/include/fg/ResourceEntry.hpp), translated to Go
// generics instead of virtual dispatch.
type resourceConcept interface {
	create(allocator any) error
	destroy(allocator any)
	preRead(flags uint32, ctx any)
	preWrite(flags uint32, ctx any)
	describe() string
}

// resourcePtr expresses "*T implements Resource[D]". A transient
// resource must be default-constructed by the Graph itself (see Create),
// and Resource's lifecycle methods are naturally declared with pointer
// receivers so Create can fill in the object in place; separating the
// stored value type T from its method-bearing pointer type PT lets
// Create allocate a real, addressable T and obtain a non-nil PT for it,
// rather than taking the zero value of an interface-constrained type
// parameter directly (which is nil whenever that parameter is itself
// instantiated as a pointer type).
type resourcePtr[T any, D any] interface {
	*T
	Resource[D]
}

// resourceModel is the single concrete type backing resourceConcept for a
// given (T, D) pair. Optional hooks are resolved at each dispatch, by
// asserting the concrete resource value against PreReader[D] /
// PreWriter[D] / Describer[D]; a type that does not implement one of
// these simply dispatches to a no-op, matching the original's
// if-constexpr(has_preRead<T>) fallback (design note §9).
type resourceModel[T any, D any, PT resourcePtr[T, D]] struct {
	desc     D
	resource PT
}

func newResourceModel[T any, D any, PT resourcePtr[T, D]](desc D, resource PT) *resourceModel[T, D, PT] {
	return &resourceModel[T, D, PT]{desc: desc, resource: resource}
}

func (m *resourceModel[T, D, PT]) create(allocator any) error {
	return m.resource.Create(m.desc, allocator)
}
func (m *resourceModel[T, D, PT]) destroy(allocator any) { m.resource.Destroy(m.desc, allocator) }

func (m *resourceModel[T, D, PT]) preRead(flags uint32, ctx any) {
	if r, ok := any(m.resource).(PreReader[D]); ok {
		r.PreRead(m.desc, flags, ctx)
	}
}

func (m *resourceModel[T, D, PT]) preWrite(flags uint32, ctx any) {
	if w, ok := any(m.resource).(PreWriter[D]); ok {
		w.PreWrite(m.desc, flags, ctx)
	}
}

func (m *resourceModel[T, D, PT]) describe() string {
	if d, ok := any(m.resource).(Describer[D]); ok {
		return d.Describe(m.desc)
	}
	return ""
}
