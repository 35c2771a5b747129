package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flavono123/schemabuilder/internal/field"
)

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func names(m *Model) []string {
	result := []string{}
	for _, line := range m.lines {
		result = append(result, line.field.Name)
	}
	return result
}

var _ = Describe("Editor", func() {
	var (
		tree *field.Tree
		m    *Model
	)

	BeforeEach(func() {
		tree = field.NewTree()
		m = NewModel(tree)
	})

	It("should start empty", func() {
		Expect(m.CurrentField()).To(BeNil())
		Expect(m.render()).To(ContainSubstring("press n"))
	})

	It("should enter rename mode for a new field", func() {
		press(m, "n")
		Expect(m.Editing()).To(BeTrue())
		Expect(tree.Len()).To(Equal(1))

		press(m, "Age", "enter")
		Expect(m.Editing()).To(BeFalse())
		Expect(m.CurrentField().Name).To(Equal("Age"))
	})

	It("should keep names as typed on commit", func() {
		press(m, "n", "  spaced  ", "enter")
		Expect(m.CurrentField().Name).To(Equal("  spaced  "))
	})

	It("should commit the typed name when renaming an existing field", func() {
		press(m, "n", "first", "enter")
		press(m, "enter")
		Expect(m.Editing()).To(BeTrue())

		press(m, "backspace", "backspace", "backspace", "backspace", "backspace", "Age", "enter")
		Expect(m.Editing()).To(BeFalse())
		Expect(m.CurrentField().Name).To(Equal("Age"))
		Expect(tree.Roots()[0].Name).To(Equal("Age"))
	})

	It("should list children of enabled nested fields only", func() {
		outer := tree.Add("")
		tree.Update(outer.ID, field.NewPatch().WithName("outer").WithType(field.Nested))
		inner := tree.Add(outer.ID)
		tree.Update(inner.ID, field.NewPatch().WithName("inner"))
		m.Refresh()
		Expect(names(m)).To(Equal([]string{"outer", "inner"}))

		press(m, " ")
		Expect(names(m)).To(Equal([]string{"outer"}))

		press(m, " ", "t")
		Expect(outer.Type).To(Equal(field.ObjectID))
		Expect(names(m)).To(Equal([]string{"outer"}))
	})

	It("should clamp the cursor", func() {
		press(m, "n", "a", "enter", "n", "b", "enter")
		press(m, "down", "down")
		Expect(m.CurrentField().Name).To(Equal("b"))
		press(m, "up", "up", "up")
		Expect(m.CurrentField().Name).To(Equal("a"))
	})

	It("should select fields by id", func() {
		a := tree.Add("")
		b := tree.Add("")
		m.Refresh()

		Expect(m.SelectField(b.ID)).To(BeTrue())
		Expect(m.CurrentField()).To(BeIdenticalTo(b))
		Expect(m.SelectField("missing")).To(BeFalse())
		Expect(m.CurrentField()).NotTo(BeIdenticalTo(a))
	})

	It("should stop renaming on blur", func() {
		press(m, "n")
		m.Blur()
		Expect(m.Editing()).To(BeFalse())
	})

	It("should refuse children for disabled nested fields", func() {
		outer := tree.Add("")
		tree.Update(outer.ID, field.NewPatch().WithType(field.Nested).WithEnabled(false))
		m.Refresh()

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
		Expect(cmd).NotTo(BeNil())
		Expect(tree.Len()).To(Equal(1))
	})
})
