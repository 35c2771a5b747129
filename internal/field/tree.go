package field

import (
	"slices"

	"github.com/google/uuid"
)

type entry struct {
	field  *Field
	parent *Field // nil for root fields
}

// Tree owns the root collection and an id index over every field in it.
// It is not safe for concurrent use.
type Tree struct {
	roots   []*Field
	index   map[string]*entry
	counter int
	newID   func() string
}

func NewTree() *Tree {
	return &Tree{
		roots: []*Field{},
		index: map[string]*entry{},
		newID: uuid.NewString,
	}
}

// Add appends a new default field under parentID, or to the root when
// parentID is empty or unknown.
func (t *Tree) Add(parentID string) *Field {
	f := &Field{
		ID:       t.newID(),
		Name:     "",
		Type:     String,
		Enabled:  true,
		Order:    t.counter,
		Children: []*Field{},
	}
	t.counter++

	var parent *Field
	if e, ok := t.index[parentID]; ok && parentID != "" {
		parent = e.field
		parent.Children = append(parent.Children, f)
	} else {
		t.roots = append(t.roots, f)
	}
	t.index[f.ID] = &entry{field: f, parent: parent}

	return f
}

// Update merges patch into the field with the given id and reports whether
// anything was applied. Unknown ids and empty patches are ignored.
func (t *Tree) Update(id string, patch Patch) bool {
	e, ok := t.index[id]
	if !ok || patch.Empty() {
		return false
	}
	patch.apply(e.field)
	return true
}

// Delete removes the field and its whole subtree. Unknown ids are ignored.
func (t *Tree) Delete(id string) {
	e, ok := t.index[id]
	if !ok {
		return
	}

	isTarget := func(f *Field) bool { return f.ID == id }
	if e.parent == nil {
		t.roots = slices.DeleteFunc(t.roots, isTarget)
	} else {
		e.parent.Children = slices.DeleteFunc(e.parent.Children, isTarget)
	}

	t.unindex(e.field)
}

func (t *Tree) unindex(f *Field) {
	delete(t.index, f.ID)
	for _, child := range f.Children {
		t.unindex(child)
	}
}

// Move shifts a field by delta positions among its siblings, clamped to the
// sibling range. Order values are not touched.
func (t *Tree) Move(id string, delta int) {
	e, ok := t.index[id]
	if !ok || delta == 0 {
		return
	}

	siblings := t.roots
	if e.parent != nil {
		siblings = e.parent.Children
	}

	from := slices.IndexFunc(siblings, func(f *Field) bool { return f.ID == id })
	to := max(0, min(len(siblings)-1, from+delta))
	if from == to {
		return
	}

	moved := siblings[from]
	siblings = slices.Delete(siblings, from, from+1)
	siblings = slices.Insert(siblings, to, moved)

	if e.parent == nil {
		t.roots = siblings
	} else {
		e.parent.Children = siblings
	}
}

func (t *Tree) Get(id string) (*Field, bool) {
	e, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return e.field, true
}

// Parent returns the owning field, or false for root fields and unknown ids.
func (t *Tree) Parent(id string) (*Field, bool) {
	e, ok := t.index[id]
	if !ok || e.parent == nil {
		return nil, false
	}
	return e.parent, true
}

// Ancestors returns the chain from the root field down to the parent of id.
func (t *Tree) Ancestors(id string) []*Field {
	var chain []*Field
	for parent, ok := t.Parent(id); ok; parent, ok = t.Parent(parent.ID) {
		chain = append(chain, parent)
	}
	slices.Reverse(chain)
	return chain
}

// Roots returns the root collection in its current sequence.
func (t *Tree) Roots() []*Field {
	return slices.Clone(t.roots)
}

// Len counts every field in the tree.
func (t *Tree) Len() int {
	return len(t.index)
}

// Walk visits fields in pre-order. Returning false from fn skips the
// children of the visited field.
func (t *Tree) Walk(fn func(f *Field, depth int) bool) {
	walk(t.roots, 0, fn)
}

func walk(fields []*Field, depth int, fn func(f *Field, depth int) bool) {
	for _, f := range fields {
		if fn(f, depth) {
			walk(f.Children, depth+1, fn)
		}
	}
}
