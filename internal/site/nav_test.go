package site

import "testing"

func TestNavMarksCurrentPathActive(t *testing.T) {
	got := Nav("/products")
	active := 0
	for _, e := range got {
		if e.Active {
			active++
			if e.Path != "/products" {
				t.Fatalf("wrong entry active: %q", e.Path)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active entry, got %d", active)
	}
}

func TestNavUnknownPathMarksNone(t *testing.T) {
	for _, e := range Nav("/nowhere") {
		if e.Active {
			t.Fatalf("entry %q active for unknown path", e.Path)
		}
	}
}

func TestNavEntryOrder(t *testing.T) {
	got := Nav("/")
	want := []string{"/", "/products", "/submit-requirement"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i, path := range want {
		if got[i].Path != path {
			t.Fatalf("entry %d = %q, want %q", i, got[i].Path, path)
		}
	}
}

func TestContactFor(t *testing.T) {
	c := ContactFor("sekkot_engineering@yahoo.com")
	if c.Mailto != "mailto:sekkot_engineering@yahoo.com" {
		t.Fatalf("Mailto = %q", c.Mailto)
	}
}
