package transitions

import (
	"errors"
	"testing"

	"github.com/reusee/turing/symbols"
	"github.com/reusee/turing/tapes"
)

func TestLookup(t *testing.T) {
	table := New(2, 2)
	if err := table.Set(Transition{
		State: 0,
		Read:  1,
		Write: 1,
		Move:  tapes.Right,
		Next:  1,
	}); err != nil {
		t.Fatal(err)
	}

	tr, ok := table.Lookup(0, 1)
	if !ok {
		t.Fatal()
	}
	if tr.Next != 1 || tr.Move != tapes.Right || tr.Write != 1 {
		t.Fatalf("got %+v", tr)
	}

	if _, ok := table.Lookup(0, 0); ok {
		t.Fatal()
	}
	if _, ok := table.Lookup(1, 1); ok {
		t.Fatal()
	}
	if _, ok := table.Lookup(5, 0); ok {
		t.Fatal()
	}
	if table.Len() != 1 {
		t.Fatalf("got %v", table.Len())
	}
}

func TestLastWriteWins(t *testing.T) {
	table := New(3, 3)
	writes := []symbols.Index{0, 2, 1}
	for _, w := range writes {
		if err := table.Set(Transition{
			State: 1,
			Read:  2,
			Write: w,
			Move:  tapes.Left,
			Next:  2,
		}); err != nil {
			t.Fatal(err)
		}
	}
	tr, ok := table.Lookup(1, 2)
	if !ok {
		t.Fatal()
	}
	if tr.Write != 1 {
		t.Fatalf("got %v", tr.Write)
	}
	if table.Len() != 1 {
		t.Fatalf("got %v", table.Len())
	}
}

func TestStrict(t *testing.T) {
	table := New(2, 2, WithStrict())
	tr := Transition{
		State: 0,
		Read:  0,
		Write: 1,
		Move:  tapes.NoMove,
		Next:  0,
	}
	if err := table.Set(tr); err != nil {
		t.Fatal(err)
	}
	tr.Write = 0
	err := table.Set(tr)
	if !errors.Is(err, ErrDuplicateTransition) {
		t.Fatalf("got %v", err)
	}
	got, _ := table.Lookup(0, 0)
	if got.Write != 1 {
		t.Fatalf("got %v", got.Write)
	}
}

func TestOutOfRange(t *testing.T) {
	table := New(2, 2)
	for _, tr := range []Transition{
		{State: 2, Read: 0, Next: 0},
		{State: 0, Read: 2, Next: 0},
		{State: 0, Read: 0, Next: 2},
		{State: 0, Read: 0, Write: -1},
		{State: 0, Read: 0, Move: tapes.Direction(9)},
	} {
		if err := table.Set(tr); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("%+v: got %v", tr, err)
		}
	}
}

func TestAll(t *testing.T) {
	table := New(2, 2)
	for _, tr := range []Transition{
		{State: 1, Read: 0, Next: 0},
		{State: 0, Read: 1, Next: 1},
		{State: 0, Read: 0, Next: 1},
	} {
		if err := table.Set(tr); err != nil {
			t.Fatal(err)
		}
	}
	var keys [][2]symbols.Index
	for tr := range table.All() {
		keys = append(keys, [2]symbols.Index{tr.State, tr.Read})
	}
	want := [][2]symbols.Index{{0, 0}, {0, 1}, {1, 0}}
	if len(keys) != len(want) {
		t.Fatalf("got %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got %v", keys)
		}
	}
}
