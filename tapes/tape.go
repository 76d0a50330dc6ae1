package tapes

import (
	"iter"

	"github.com/reusee/turing/symbols"
)

// CellID is a stable handle to a cell. Cells are never relocated or freed while the tape lives.
type CellID int

const NoCell CellID = -1

type Cell struct {
	Symbol symbols.Index
	Left   CellID
	Right  CellID
}

type Tape struct {
	cells []Cell
	head  CellID
	blank symbols.Index
}

func New(blank symbols.Index) *Tape {
	return &Tape{
		cells: []Cell{
			{
				Symbol: blank,
				Left:   NoCell,
				Right:  NoCell,
			},
		},
		head:  0,
		blank: blank,
	}
}

func (t *Tape) Blank() symbols.Index {
	return t.blank
}

func (t *Tape) Head() CellID {
	return t.head
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Cell(id CellID) Cell {
	return t.cells[id]
}

func (t *Tape) Read() symbols.Index {
	return t.cells[t.head].Symbol
}

func (t *Tape) Write(sym symbols.Index) {
	t.cells[t.head].Symbol = sym
}

func (t *Tape) MoveHead(dir Direction) {
	switch dir {

	case Left:
		next := t.cells[t.head].Left
		if next == NoCell {
			next = t.grow(NoCell, t.head)
			t.cells[t.head].Left = next
		}
		t.head = next

	case Right:
		next := t.cells[t.head].Right
		if next == NoCell {
			next = t.grow(t.head, NoCell)
			t.cells[t.head].Right = next
		}
		t.head = next

	}
}

func (t *Tape) grow(left, right CellID) CellID {
	id := CellID(len(t.cells))
	t.cells = append(t.cells, Cell{
		Symbol: t.blank,
		Left:   left,
		Right:  right,
	})
	return id
}

func (t *Tape) RewindToLeftBoundary() CellID {
	t.head = t.LeftBoundary()
	return t.head
}

func (t *Tape) LeftBoundary() CellID {
	id := t.head
	for t.cells[id].Left != NoCell {
		id = t.cells[id].Left
	}
	return id
}

func (t *Tape) RightBoundary() CellID {
	id := t.head
	for t.cells[id].Right != NoCell {
		id = t.cells[id].Right
	}
	return id
}

// Cells walks from the left boundary to the right boundary.
func (t *Tape) Cells() iter.Seq2[CellID, symbols.Index] {
	return func(yield func(CellID, symbols.Index) bool) {
		for id := t.LeftBoundary(); id != NoCell; id = t.cells[id].Right {
			if !yield(id, t.cells[id].Symbol) {
				return
			}
		}
	}
}
