package field

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func ids(fields []*Field) []string {
	result := []string{}
	for _, f := range fields {
		result = append(result, f.ID)
	}
	return result
}

var _ = Describe("Tree", func() {
	var tree *Tree

	BeforeEach(func() {
		tree = NewTree()
	})

	Describe("Add", func() {
		It("should create a field with defaults at the root", func() {
			f := tree.Add("")

			Expect(f.ID).NotTo(BeEmpty())
			Expect(f.Name).To(BeEmpty())
			Expect(f.Type).To(Equal(String))
			Expect(f.Enabled).To(BeTrue())
			Expect(f.Children).To(BeEmpty())
			Expect(tree.Roots()).To(HaveLen(1))
		})

		It("should issue unique ids", func() {
			seen := map[string]struct{}{}
			parent := tree.Add("")
			for i := 0; i < 100; i++ {
				f := tree.Add(parent.ID)
				Expect(seen).NotTo(HaveKey(f.ID))
				seen[f.ID] = struct{}{}
			}
			Expect(tree.Len()).To(Equal(101))
		})

		It("should append under the given parent", func() {
			parent := tree.Add("")
			child := tree.Add(parent.ID)
			grandChild := tree.Add(child.ID)

			Expect(ids(parent.Children)).To(Equal([]string{child.ID}))
			Expect(ids(child.Children)).To(Equal([]string{grandChild.ID}))
			Expect(tree.Roots()).To(HaveLen(1))
			Expect(tree.Ancestors(grandChild.ID)).To(HaveLen(2))
		})

		It("should fall back to the root for an unknown parent", func() {
			f := tree.Add("missing")
			Expect(ids(tree.Roots())).To(Equal([]string{f.ID}))
		})

		It("should keep counting orders after deletes", func() {
			a := tree.Add("")
			b := tree.Add("")
			tree.Delete(b.ID)
			c := tree.Add(a.ID)
			d := tree.Add("")

			Expect(a.Order).To(Equal(0))
			Expect(b.Order).To(Equal(1))
			Expect(c.Order).To(Equal(2))
			Expect(d.Order).To(Equal(3))
		})
	})

	Describe("Update", func() {
		It("should only change patched attributes", func() {
			f := tree.Add("")
			tree.Update(f.ID, NewPatch().WithName("Age"))

			Expect(f.Name).To(Equal("Age"))
			Expect(f.Type).To(Equal(String))
			Expect(f.Enabled).To(BeTrue())

			tree.Update(f.ID, NewPatch().WithType(Number).WithEnabled(false))
			Expect(f.Name).To(Equal("Age"))
			Expect(f.Type).To(Equal(Number))
			Expect(f.Enabled).To(BeFalse())
		})

		It("should target nested fields without touching siblings", func() {
			outer := tree.Add("")
			left := tree.Add(outer.ID)
			right := tree.Add(outer.ID)
			tree.Update(left.ID, NewPatch().WithName("left"))
			tree.Update(right.ID, NewPatch().WithName("right"))

			tree.Update(left.ID, NewPatch().WithName("changed").WithType(Float))

			Expect(left.Name).To(Equal("changed"))
			Expect(left.Type).To(Equal(Float))
			Expect(right.Name).To(Equal("right"))
			Expect(right.Type).To(Equal(String))
			Expect(outer.Name).To(BeEmpty())
			Expect(ids(outer.Children)).To(Equal([]string{left.ID, right.ID}))
		})

		It("should report whether a patch was applied", func() {
			f := tree.Add("")
			Expect(tree.Update(f.ID, NewPatch())).To(BeFalse())
			Expect(tree.Update(f.ID, NewPatch().WithEnabled(true))).To(BeTrue())
			Expect(tree.Update("missing", NewPatch().WithName("x"))).To(BeFalse())
		})

		It("should ignore unknown ids", func() {
			f := tree.Add("")
			tree.Update("missing", NewPatch().WithName("x"))
			Expect(f.Name).To(BeEmpty())
			Expect(tree.Len()).To(Equal(1))
		})

		It("should keep children when leaving the nested type", func() {
			outer := tree.Add("")
			tree.Update(outer.ID, NewPatch().WithType(Nested))
			tree.Add(outer.ID)

			tree.Update(outer.ID, NewPatch().WithType(Boolean))
			Expect(outer.Foldable()).To(BeFalse())
			Expect(outer.Children).To(HaveLen(1))
		})
	})

	Describe("Delete", func() {
		It("should remove the whole subtree", func() {
			outer := tree.Add("")
			inner := tree.Add(outer.ID)
			leaf := tree.Add(inner.ID)
			sibling := tree.Add("")

			tree.Delete(outer.ID)

			Expect(ids(tree.Roots())).To(Equal([]string{sibling.ID}))
			for _, id := range []string{outer.ID, inner.ID, leaf.ID} {
				_, ok := tree.Get(id)
				Expect(ok).To(BeFalse())
			}
			Expect(tree.Len()).To(Equal(1))
		})

		It("should leave ancestors and siblings untouched", func() {
			outer := tree.Add("")
			a := tree.Add(outer.ID)
			b := tree.Add(outer.ID)
			bChild := tree.Add(b.ID)
			tree.Update(outer.ID, NewPatch().WithName("outer"))

			tree.Delete(a.ID)

			Expect(outer.Name).To(Equal("outer"))
			Expect(ids(outer.Children)).To(Equal([]string{b.ID}))
			Expect(ids(b.Children)).To(Equal([]string{bChild.ID}))
			parent, ok := tree.Parent(bChild.ID)
			Expect(ok).To(BeTrue())
			Expect(parent).To(BeIdenticalTo(b))
		})

		It("should ignore unknown ids", func() {
			tree.Add("")
			tree.Delete("missing")
			Expect(tree.Len()).To(Equal(1))
		})
	})

	Describe("Move", func() {
		It("should reorder siblings and clamp at the edges", func() {
			a := tree.Add("")
			b := tree.Add("")
			c := tree.Add("")

			tree.Move(c.ID, -1)
			Expect(ids(tree.Roots())).To(Equal([]string{a.ID, c.ID, b.ID}))

			tree.Move(a.ID, 10)
			Expect(ids(tree.Roots())).To(Equal([]string{c.ID, b.ID, a.ID}))

			Expect(a.Order).To(Equal(0))
		})

		It("should reorder within a nested parent", func() {
			outer := tree.Add("")
			a := tree.Add(outer.ID)
			b := tree.Add(outer.ID)

			tree.Move(a.ID, 1)
			Expect(ids(outer.Children)).To(Equal([]string{b.ID, a.ID}))
		})
	})

	Describe("Walk", func() {
		It("should visit in pre-order and honor skipping", func() {
			outer := tree.Add("")
			inner := tree.Add(outer.ID)
			tree.Add(inner.ID)
			last := tree.Add("")

			visited := []string{}
			depths := []int{}
			tree.Walk(func(f *Field, depth int) bool {
				visited = append(visited, f.ID)
				depths = append(depths, depth)
				return f.ID != inner.ID
			})

			Expect(visited).To(Equal([]string{outer.ID, inner.ID, last.ID}))
			Expect(depths).To(Equal([]int{0, 1, 0}))
		})
	})

	Describe("Ancestors", func() {
		It("should list parents from the root down", func() {
			outer := tree.Add("")
			inner := tree.Add(outer.ID)
			leaf := tree.Add(inner.ID)

			Expect(ids(tree.Ancestors(leaf.ID))).To(Equal([]string{outer.ID, inner.ID}))
			Expect(tree.Ancestors(outer.ID)).To(BeEmpty())
			Expect(tree.Ancestors("missing")).To(BeEmpty())
		})
	})
})
