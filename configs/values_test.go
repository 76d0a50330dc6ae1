package configs

import (
	"slices"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue", "testdata/test2.cue"}, testSchema)
	if s := First[string](loader, "str"); s != "bar" {
		t.Fatalf("got %v", s)
	}
	if list := First[[]int](loader, "list"); !slices.Equal(list, []int{1, 2, 3}) {
		t.Fatalf("got %v", list)
	}
	if n := First[int](loader, "not_defined"); n != 0 {
		t.Fatalf("got %v", n)
	}
	if p := First[*string](loader, "not_defined"); p != nil {
		t.Fatalf("got %v", p)
	}
	if s := First[string](NewLoader(nil, ""), "str"); s != "" {
		t.Fatalf("got %q", s)
	}
}

func TestFirstPanicsOnBadFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, testSchema)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[string](loader, "str")
}

func TestAllBreak(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue", "testdata/test2.cue"}, testSchema)
	for s := range All[string](loader, "str") {
		if s != "bar" {
			t.Fatalf("got %v", s)
		}
		break
	}
}
