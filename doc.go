// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package framegraph implements a declarative dependency-resolution and
// scheduling engine for rendering pipelines.
//
// A client describes a frame as a set of passes that create, read, and
// write virtual resources. A Graph validates the declaration, culls
// passes and resources that do not contribute to any observable output,
// computes the lifetime window of every transient resource, and executes
// the surviving passes in declaration order, materializing and releasing
// resources just in time.
//
// The package never touches a concrete GPU/graphics backend. Virtual
// resources are opaque user types satisfying the Resource capability;
// any resource lifecycle (allocation, command submission, deallocation)
// is defined by the caller through that capability, not by this package.
package framegraph
