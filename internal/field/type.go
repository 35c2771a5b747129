package field

import (
	"errors"
	"fmt"
)

type Type string

const (
	String   Type = "string"
	Number   Type = "number"
	Nested   Type = "nested"
	ObjectID Type = "objectId"
	Float    Type = "float"
	Boolean  Type = "boolean"
)

var ErrUnknownType = errors.New("unknown field type")

// display order of the type selector
var types = []Type{String, Number, Nested, ObjectID, Float, Boolean}

// Types returns every field type in selector order.
func Types() []Type {
	result := make([]Type, len(types))
	copy(result, types)
	return result
}

// ParseType maps a user supplied type name to a Type.
func ParseType(s string) (Type, error) {
	for _, t := range types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Next returns the type following t in selector order, wrapping around.
// Unknown types restart from String.
func (t Type) Next() Type {
	for i, candidate := range types {
		if candidate == t {
			return types[(i+1)%len(types)]
		}
	}
	return String
}

func (t Type) IsNested() bool {
	return t == Nested
}

func (t Type) String() string {
	return string(t)
}
