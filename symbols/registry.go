package symbols

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicated name")
)

// Index is the dense position of a name in its registry, assigned by first registration.
type Index int

type Registry[K comparable] struct {
	byName map[K]Index
	byID   []K
}

func NewRegistry[K comparable]() *Registry[K] {
	return &Registry[K]{
		byName: make(map[K]Index),
	}
}

func (r *Registry[K]) Register(name K) (Index, error) {
	if _, ok := r.byName[name]; ok {
		return 0, fmt.Errorf("%w: %v", ErrDuplicate, name)
	}
	idx := Index(len(r.byID))
	r.byName[name] = idx
	r.byID = append(r.byID, name)
	return idx, nil
}

// IndexOf returns ErrNotFound for names never registered. Index 0 is a valid result.
func (r *Registry[K]) IndexOf(name K) (Index, error) {
	idx, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, name)
	}
	return idx, nil
}

func (r *Registry[K]) Name(idx Index) (ret K, ok bool) {
	if idx < 0 || int(idx) >= len(r.byID) {
		return
	}
	return r.byID[idx], true
}

func (r *Registry[K]) Len() int {
	return len(r.byID)
}

func (r *Registry[K]) All() iter.Seq2[Index, K] {
	return func(yield func(Index, K) bool) {
		for i, name := range r.byID {
			if !yield(Index(i), name) {
				return
			}
		}
	}
}
