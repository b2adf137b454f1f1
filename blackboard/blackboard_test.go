// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package blackboard

import "testing"

type gbufferData struct {
	albedo, normal, depth int
}

type lightingData struct {
	output int
}

func TestAddGet(t *testing.T) {
	var b Blackboard
	p := Add(&b, gbufferData{albedo: 1, normal: 2, depth: 3})
	if p.albedo != 1 || p.normal != 2 || p.depth != 3 {
		t.Fatalf("Add: returned pointer does not observe stored value:\nhave %+v", *p)
	}
	got := Get[gbufferData](&b)
	if *got != *p {
		t.Fatalf("Get:\nhave %+v\nwant %+v", *got, *p)
	}
}

func TestAddTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: Add called twice for the same type")
		}
	}()
	var b Blackboard
	Add(&b, gbufferData{})
	Add(&b, gbufferData{albedo: 99})
}

func TestGetAbsentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic: Get on a type never Added")
		}
	}()
	var b Blackboard
	Get[lightingData](&b)
}

func TestTryGetHas(t *testing.T) {
	var b Blackboard
	if _, ok := TryGet[gbufferData](&b); ok {
		t.Fatal("TryGet: unexpected true on empty Blackboard")
	}
	if Has[gbufferData](&b) {
		t.Fatal("Has: unexpected true on empty Blackboard")
	}
	Add(&b, gbufferData{albedo: 7})
	if !Has[gbufferData](&b) {
		t.Fatal("Has: expected true after Add")
	}
	p, ok := TryGet[gbufferData](&b)
	if !ok || p.albedo != 7 {
		t.Fatalf("TryGet: have (%+v, %v), want (albedo=7, true)", p, ok)
	}
}

// TestMutationThroughReference verifies that a pass can write results into
// the Blackboard through the pointer Add/Get return, and a later reader
// observes those writes (the usual "setup pass produces, later pass
// consumes" usage).
func TestMutationThroughReference(t *testing.T) {
	var b Blackboard
	p := Add(&b, lightingData{})
	p.output = 42

	got := Get[lightingData](&b)
	if got.output != 42 {
		t.Fatalf("mutation through Add's returned pointer not observed: have %d, want 42", got.output)
	}
}

// TestMoveIndependence verifies that a moved Blackboard is independent of
// its source: the source becomes empty, and further mutation of either
// side does not leak into the other.
func TestMoveIndependence(t *testing.T) {
	var src Blackboard
	Add(&src, gbufferData{albedo: 1})

	dst := src.Move()

	if Has[gbufferData](&src) {
		t.Fatal("Move: source still has its value after Move")
	}
	if !Has[gbufferData](&dst) {
		t.Fatal("Move: destination missing the moved value")
	}

	Add(&src, lightingData{output: 5})
	if Has[lightingData](&dst) {
		t.Fatal("Move: mutation of source leaked into destination")
	}

	Get[gbufferData](&dst).albedo = 100
	if Has[gbufferData](&src) {
		t.Fatal("Move: destination mutation resurrected a value in source")
	}
}

func TestTypesAreIndependentSlots(t *testing.T) {
	var b Blackboard
	Add(&b, gbufferData{albedo: 1})
	Add(&b, lightingData{output: 2})

	if Get[gbufferData](&b).albedo != 1 {
		t.Fatal("gbufferData slot corrupted by lightingData Add")
	}
	if Get[lightingData](&b).output != 2 {
		t.Fatal("lightingData slot corrupted by gbufferData Add")
	}
}
