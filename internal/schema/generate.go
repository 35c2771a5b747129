package schema

import (
	"cmp"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/flavono123/schemabuilder/internal/field"
)

// Object is the generated structure: keys in processing order, values are
// either marker strings or nested *Object.
type Object = orderedmap.OrderedMap[string, any]

func NewObject() *Object {
	return orderedmap.New[string, any]()
}

var markers = map[field.Type]string{
	field.String:   "STRING",
	field.Number:   "number",
	field.Float:    "float",
	field.Boolean:  "boolean",
	field.ObjectID: "objectId",
}

// Marker returns the placeholder emitted for a primitive type, "" for
// nested or unknown types.
func Marker(t field.Type) string {
	return markers[t]
}

func isMarker(s string) bool {
	for _, m := range markers {
		if m == s {
			return true
		}
	}
	return false
}

// Generate converts fields into an Object. Disabled or unnamed fields are
// dropped together with their subtree; the rest are processed by ascending
// Order. Keys are lowercased names and a later duplicate overwrites the
// earlier value in place.
func Generate(fields []*field.Field) *Object {
	obj := NewObject()

	included := make([]*field.Field, 0, len(fields))
	for _, f := range fields {
		if f.Included() {
			included = append(included, f)
		}
	}
	slices.SortStableFunc(included, func(a, b *field.Field) int {
		return cmp.Compare(a.Order, b.Order)
	})

	for _, f := range included {
		key := strings.ToLower(f.Name)
		if f.Type.IsNested() {
			obj.Set(key, Generate(f.Children))
		} else {
			obj.Set(key, Marker(f.Type))
		}
	}

	return obj
}
