package schema

import (
	"net/url"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"github.com/go-openapi/jsonreference"

	"github.com/flavono123/schemabuilder/internal/field"
)

// Pointer returns the JSON pointer (e.g. "/profile/name") at which the field
// shows up in the generated structure. It reports false when the field or
// one of its ancestors is left out of generation, including when a later
// sibling with the same lowercased name overwrites its key.
func Pointer(tree *field.Tree, id string) (jsonpointer.Pointer, bool) {
	path, ok := tokens(tree, id)
	if !ok {
		return jsonpointer.Pointer{}, false
	}

	ptr, err := jsonpointer.New("/" + strings.Join(path, "/"))
	if err != nil {
		return jsonpointer.Pointer{}, false
	}
	return ptr, true
}

// Location renders the pointer as a fragment, "#/profile/name", unencoded.
func Location(tree *field.Tree, id string) (string, bool) {
	ptr, ok := Pointer(tree, id)
	if !ok {
		return "", false
	}
	return "#" + ptr.String(), true
}

// Ref is Pointer in its URI fragment form, with every reference token
// percent-encoded (RFC 6901 section 6).
func Ref(tree *field.Tree, id string) (jsonreference.Ref, bool) {
	path, ok := tokens(tree, id)
	if !ok {
		return jsonreference.Ref{}, false
	}

	encoded := make([]string, 0, len(path))
	for _, token := range path {
		encoded = append(encoded, url.PathEscape(token))
	}
	ref, err := jsonreference.New("#/" + strings.Join(encoded, "/"))
	if err != nil {
		return jsonreference.Ref{}, false
	}
	return ref, true
}

// tokens are the escaped keys from the root field down to id.
func tokens(tree *field.Tree, id string) ([]string, bool) {
	f, ok := tree.Get(id)
	if !ok || !generated(tree, f) {
		return nil, false
	}

	result := []string{}
	for _, ancestor := range tree.Ancestors(id) {
		if !ancestor.Type.IsNested() || !generated(tree, ancestor) {
			return nil, false
		}
		result = append(result, jsonpointer.Escape(strings.ToLower(ancestor.Name)))
	}
	return append(result, jsonpointer.Escape(strings.ToLower(f.Name))), true
}

// generated reports whether f owns its key: it is included and no included
// sibling processed after it shares the lowercased name.
func generated(tree *field.Tree, f *field.Field) bool {
	if !f.Included() {
		return false
	}

	siblings := tree.Roots()
	if parent, ok := tree.Parent(f.ID); ok {
		siblings = parent.Children
	}
	key := strings.ToLower(f.Name)
	for _, s := range siblings {
		if s.ID != f.ID && s.Included() && s.Order > f.Order && strings.ToLower(s.Name) == key {
			return false
		}
	}
	return true
}
