// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package blackboard implements a typed, singleton-per-type side-channel
// passes can use to exchange decorated handles and other composition
// data without threading it through every function signature.
package blackboard

import (
	"fmt"
	"reflect"
)

const bbPrefix = "blackboard: "

func newErr(reason string) error { return fmt.Errorf("%s%s", bbPrefix, reason) }

// Blackboard is a map from a static type identity to at most one owned
// instance of that type. The zero value is an empty, ready-to-use
// Blackboard.
//
// A Blackboard is not copyable through an ownership-preserving path: a
// plain Go struct assignment would copy the map header, leaving both
// values sharing the same underlying storage, which is not how the
// original's move semantics behave (a move leaves the source empty, so
// mutating the source afterwards never affects the destination). Use
// Move to transfer ownership instead of assigning a Blackboard by value.
type Blackboard struct {
	storage map[reflect.Type]any
}

// Move transfers all contents of b to the returned Blackboard and
// leaves b empty, as if newly constructed. Mutating b after Move does
// not affect the returned value, matching the original's move-only
// semantics (spec.md §3: "Moving transfers all contents").
func (b *Blackboard) Move() Blackboard {
	moved := Blackboard{storage: b.storage}
	b.storage = nil
	return moved
}

// Add inserts a new value of type T into b and returns a pointer to it.
// It panics if a value of type T is already present.
func Add[T any](b *Blackboard, value T) *T {
	if b.storage == nil {
		b.storage = make(map[reflect.Type]any)
	}
	t := reflect.TypeFor[T]()
	if _, ok := b.storage[t]; ok {
		panic(newErr("Add: value of this type already present"))
	}
	p := new(T)
	*p = value
	b.storage[t] = p
	return p
}

// Get returns a pointer to the value of type T stored in b. It panics if
// no value of type T is present; use TryGet to test without panicking.
func Get[T any](b *Blackboard) *T {
	p, ok := TryGet[T](b)
	if !ok {
		panic(newErr("Get: no value of this type present"))
	}
	return p
}

// TryGet returns a pointer to the value of type T stored in b, and true,
// or nil and false if no value of type T is present.
func TryGet[T any](b *Blackboard) (*T, bool) {
	if b.storage == nil {
		return nil, false
	}
	v, ok := b.storage[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return v.(*T), true
}

// Has reports whether a value of type T is present in b.
func Has[T any](b *Blackboard) bool {
	_, ok := TryGet[T](b)
	return ok
}
