package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrStaleID is returned if an ID does not denote a live node (any more).
var ErrStaleID = errors.New("tree node ID is stale or nil")

// ErrCycle is returned if an operation would make a node its own ancestor.
var ErrCycle = errors.New("operation would introduce a cycle")

// ID references a node of an arena. The zero value is the nil ID.
type ID struct {
	index uint32
	gen   uint32
}

// Nil is the ID which never references a node.
var Nil = ID{}

// IsNil is a predicate for the nil ID.
func (id ID) IsNil() bool {
	return id.gen == 0
}

func (id ID) String() string {
	if id.IsNil() {
		return "#nil"
	}
	return fmt.Sprintf("#%d.%d", id.index, id.gen)
}

type slot[T any] struct {
	gen      uint32 // current generation; odd while occupied
	payload  T      // nodes carry a payload of arbitrary type
	parent   ID     // weak link to parent
	children []ID   // owned children, in order
}

func (s *slot[T]) live() bool {
	return s.gen%2 == 1
}

// Arena holds the nodes of one or more trees.
// The zero value is an empty arena ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Insert puts a new, unconnected node carrying payload into the arena.
func (a *Arena[T]) Insert(payload T) ID {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		index = uint32(len(a.slots) - 1)
	}
	s := &a.slots[index]
	s.gen++ // now odd: occupied
	s.payload = payload
	s.parent = Nil
	s.children = nil
	a.count++
	return ID{index: index, gen: s.gen}
}

func (a *Arena[T]) slot(id ID) *slot[T] {
	if id.IsNil() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if s.gen != id.gen || !s.live() {
		return nil
	}
	return s
}

// Contains is a predicate wether id references a live node.
func (a *Arena[T]) Contains(id ID) bool {
	return a.slot(id) != nil
}

// Get returns the payload of a node, if id is still live.
func (a *Arena[T]) Get(id ID) (T, bool) {
	s := a.slot(id)
	if s == nil {
		var zero T
		return zero, false
	}
	return s.payload, true
}

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int {
	return a.count
}

// Remove deletes a node from the arena. The node is isolated from its parent
// first. Children of the node are not removed, but lose their parent link.
// Removing a stale ID is a no-op.
func (a *Arena[T]) Remove(id ID) {
	s := a.slot(id)
	if s == nil {
		return
	}
	a.Isolate(id)
	for _, ch := range s.children {
		if c := a.slot(ch); c != nil {
			c.parent = Nil
		}
	}
	var zero T
	s.payload = zero
	s.children = nil
	s.gen++ // now even: vacant; outstanding IDs go stale
	a.free = append(a.free, id.index)
	a.count--
	tracer().Debugf("tree: removed node %s", id)
}

// Parent returns the parent of a node, if any.
func (a *Arena[T]) Parent(id ID) (ID, bool) {
	s := a.slot(id)
	if s == nil || a.slot(s.parent) == nil {
		return Nil, false
	}
	return s.parent, true
}

// AddChild appends ch to the children of parent. If ch is currently attached
// to another parent, it is isolated from it first.
func (a *Arena[T]) AddChild(parent, ch ID) error {
	return a.InsertChildAt(parent, -1, ch)
}

// InsertChildAt inserts ch at position i of the children of parent, shifting
// children at later positions. An index out of range (including -1) appends.
func (a *Arena[T]) InsertChildAt(parent ID, i int, ch ID) error {
	p, c := a.slot(parent), a.slot(ch)
	if p == nil || c == nil {
		return ErrStaleID
	}
	if a.IsAncestorOf(ch, parent) || ch == parent {
		return ErrCycle
	}
	a.Isolate(ch)
	if i < 0 || i >= len(p.children) {
		p.children = append(p.children, ch)
	} else {
		p.children = append(p.children, Nil)  // make room for one child
		copy(p.children[i+1:], p.children[i:]) // shift i+1..n
		p.children[i] = ch
	}
	c.parent = parent
	return nil
}

// Isolate removes a node from its parent. The node stays in the arena.
func (a *Arena[T]) Isolate(id ID) {
	s := a.slot(id)
	if s == nil {
		return
	}
	if p := a.slot(s.parent); p != nil {
		for i, ch := range p.children {
			if ch == id {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	s.parent = Nil
}

// ChildCount returns the number of children of a node.
func (a *Arena[T]) ChildCount(id ID) int {
	if s := a.slot(id); s != nil {
		return len(s.children)
	}
	return 0
}

// Child returns the n-th child of a node.
func (a *Arena[T]) Child(id ID, n int) (ID, bool) {
	s := a.slot(id)
	if s == nil || n < 0 || n >= len(s.children) {
		return Nil, false
	}
	return s.children[n], true
}

// Children returns a copy of the list of children of a node. Clients may
// modify the tree while iterating over the copy.
func (a *Arena[T]) Children(id ID) []ID {
	s := a.slot(id)
	if s == nil || len(s.children) == 0 {
		return nil
	}
	children := make([]ID, len(s.children))
	copy(children, s.children)
	return children
}

// IndexOfChild returns the position of ch within the children of parent,
// or -1.
func (a *Arena[T]) IndexOfChild(parent, ch ID) int {
	if s := a.slot(parent); s != nil {
		for i, c := range s.children {
			if c == ch {
				return i
			}
		}
	}
	return -1
}

// IsAncestorOf is a predicate wether anc is a (proper) ancestor of id.
func (a *Arena[T]) IsAncestorOf(anc, id ID) bool {
	for _, p := range Ancestors(a, id) {
		if p == anc {
			return true
		}
	}
	return false
}
