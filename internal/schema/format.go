package schema

import (
	"fmt"
	"strings"

	"github.com/flavono123/schemabuilder/internal/field"
)

const indentWidth = 2

type printer struct {
	bareMarkers bool
}

type FormatOption func(*printer)

// WithBareMarkers emits type markers as bare words instead of quoted strings.
// The result is no longer valid JSON.
func WithBareMarkers() FormatOption {
	return func(p *printer) {
		p.bareMarkers = true
	}
}

// Format renders obj as brace delimited text indented two spaces per level.
// Keys and strings are quoted without escaping.
func Format(obj *Object, level int, opts ...FormatOption) string {
	p := &printer{}
	for _, opt := range opts {
		opt(p)
	}

	var b strings.Builder
	p.object(&b, obj, level)
	return b.String()
}

// Render generates and formats fields from the top level.
func Render(fields []*field.Field, opts ...FormatOption) string {
	return Format(Generate(fields), 0, opts...)
}

func (p *printer) object(b *strings.Builder, obj *Object, level int) {
	indent := strings.Repeat(" ", level*indentWidth)
	nextIndent := strings.Repeat(" ", (level+1)*indentWidth)

	b.WriteString("{\n")
	if obj != nil {
		for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(b, "%s\"%s\": ", nextIndent, pair.Key)
			p.value(b, pair.Value, level)
			if pair.Next() != nil {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(indent + "}")
}

func (p *printer) value(b *strings.Builder, value any, level int) {
	switch v := value.(type) {
	case *Object:
		p.object(b, v, level+1)
	case string:
		if p.bareMarkers && isMarker(v) {
			b.WriteString(v)
		} else {
			b.WriteString("\"" + v + "\"")
		}
	case nil:
		b.WriteString("null")
	default:
		fmt.Fprintf(b, "%v", v)
	}
}
