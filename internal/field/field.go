package field

// Field is one node of the schema tree. Root and nested fields share this shape.
type Field struct {
	ID      string
	Name    string
	Type    Type
	Enabled bool
	// Order is the tree-wide insertion sequence, never reused.
	Order int
	// Children are only surfaced when Type is Nested.
	Children []*Field
}

// Included reports whether the field takes part in generation.
func (f *Field) Included() bool {
	return f.Enabled && f.Name != ""
}

// Foldable reports whether the field owns children that should be rendered.
func (f *Field) Foldable() bool {
	return f.Type.IsNested()
}

// Patch is a partial update; nil attributes are left untouched.
type Patch struct {
	Name    *string
	Type    *Type
	Enabled *bool
}

func NewPatch() Patch {
	return Patch{}
}

func (p Patch) WithName(name string) Patch {
	p.Name = &name
	return p
}

func (p Patch) WithType(t Type) Patch {
	p.Type = &t
	return p
}

func (p Patch) WithEnabled(enabled bool) Patch {
	p.Enabled = &enabled
	return p
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Type == nil && p.Enabled == nil
}

func (p Patch) apply(f *Field) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.Enabled != nil {
		f.Enabled = *p.Enabled
	}
}
