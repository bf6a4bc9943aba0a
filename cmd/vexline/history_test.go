package main

import "testing"

func TestHistoryPrevNext(t *testing.T) {
	h := newHistory()
	h.push("w")
	h.push("q")

	v, ok := h.prev()
	if !ok || v != "q" {
		t.Fatalf("prev() = %q, %v; want \"q\", true", v, ok)
	}
	v, ok = h.prev()
	if !ok || v != "w" {
		t.Fatalf("prev() = %q, %v; want \"w\", true", v, ok)
	}
	if _, ok := h.prev(); ok {
		t.Fatalf("prev() should fail past the oldest entry")
	}

	v, ok = h.next()
	if !ok || v != "q" {
		t.Fatalf("next() = %q, %v; want \"q\", true", v, ok)
	}
	v, ok = h.next()
	if !ok || v != "" {
		t.Fatalf("next() past newest should return \"\", true; got %q, %v", v, ok)
	}
}
