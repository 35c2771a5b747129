package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/flavono123/schemabuilder/internal/field"
	"github.com/flavono123/schemabuilder/internal/schema"
)

// FieldView is the frontend shape of a field.
type FieldView struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Enabled  bool        `json:"enabled"`
	Order    int         `json:"order"`
	// Ref is where the field lands in the output, empty when it is left out.
	Ref      string      `json:"ref"`
	Children []FieldView `json:"children"`
}

// FieldPatch carries the attributes the frontend changed.
type FieldPatch struct {
	Name    *string `json:"name,omitempty"`
	Type    *string `json:"type,omitempty"`
	Enabled *bool   `json:"enabled,omitempty"`
}

// App struct
type App struct {
	ctx context.Context

	// bound methods are called from several goroutines
	mu   sync.Mutex
	tree *field.Tree
	opts []schema.FormatOption
	logf func(format string, args ...interface{})
}

// NewApp creates a new App application struct
func NewApp(opts ...schema.FormatOption) *App {
	return &App{
		tree: field.NewTree(),
		opts: opts,
		logf: log.Printf,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.logf = func(format string, args ...interface{}) {
		runtime.LogInfof(ctx, format, args...)
	}
}

func (a *App) shutdown(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logf("shutting down with %d fields", a.tree.Len())
}

// Types lists the selectable field types.
func (a *App) Types() []string {
	result := []string{}
	for _, t := range field.Types() {
		result = append(result, t.String())
	}
	return result
}

// AddField appends a default field under parentID, or to the root when empty.
func (a *App) AddField(parentID string) FieldView {
	a.mu.Lock()
	defer a.mu.Unlock()

	f := a.tree.Add(parentID)
	a.logf("added field %s under %q", f.ID, parentID)
	return a.toView(f)
}

// UpdateField applies patch to the field with id. Unknown ids are ignored.
func (a *App) UpdateField(id string, patch FieldPatch) error {
	p := field.NewPatch()
	if patch.Name != nil {
		p = p.WithName(*patch.Name)
	}
	if patch.Type != nil {
		t, err := field.ParseType(*patch.Type)
		if err != nil {
			return err
		}
		p = p.WithType(t)
	}
	if patch.Enabled != nil {
		p = p.WithEnabled(*patch.Enabled)
	}

	if p.Empty() {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.tree.Update(id, p) {
		a.logf("updated field %s", id)
	}
	return nil
}

// DeleteField removes the field and its subtree. Unknown ids are ignored.
func (a *App) DeleteField(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.tree.Delete(id)
	a.logf("deleted field %s", id)
}

// Fields returns the whole tree in its current sequence.
func (a *App) Fields() []FieldView {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.toViews(a.tree.Roots())
}

// Preview renders the generated schema.
func (a *App) Preview() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	return schema.Render(a.tree.Roots(), a.opts...)
}

// Submit returns the generated schema as JSON and logs it.
func (a *App) Submit() (string, error) {
	a.mu.Lock()
	data, err := schema.Submit(a.tree.Roots())
	a.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("submit: %w", err)
	}

	a.logf("schema submitted:\n%s", data)
	return string(data), nil
}

func (a *App) toView(f *field.Field) FieldView {
	view := FieldView{
		ID:       f.ID,
		Name:     f.Name,
		Type:     f.Type.String(),
		Enabled:  f.Enabled,
		Order:    f.Order,
		Children: a.toViews(f.Children),
	}
	if ref, ok := schema.Ref(a.tree, f.ID); ok {
		view.Ref = ref.String()
	}
	return view
}

func (a *App) toViews(fields []*field.Field) []FieldView {
	result := []FieldView{}
	for _, f := range fields {
		result = append(result, a.toView(f))
	}
	return result
}
