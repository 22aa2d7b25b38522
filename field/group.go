package field

import "sort"

// Node is either a *Spec or a *Group. The set of implementations is closed.
type Node interface {
	node()
}

func (s *Spec) node() {}

// Group is a composite of Specs and nested Groups representing a structured
// sub-object, such as a device's stack or platform info. A Group exclusively
// owns its children; sharing a child between groups is not supported.
type Group struct {
	// Key is the group name, unique within its level of nesting.
	Key string

	// Children are the owned Specs and nested Groups.
	Children []Node

	// Cat is the group category; descendants inherit it for flatten
	// ordering.
	Cat Category
}

func (g *Group) node() {}

// NewGroup creates a group owning the given children.
func NewGroup(key string, children ...Node) *Group {
	owned := make([]Node, len(children))
	copy(owned, children)
	return &Group{Key: key, Children: owned, Cat: CategoryNetBox}
}

// Custom returns a copy of the group in the custom category.
func (g *Group) Custom() *Group {
	copied := *g
	copied.Cat = CategoryCustom
	return &copied
}

// Flat is one flattened (dotted path, spec) pair.
type Flat struct {
	// Path is the dotted path from the registry root, e.g. "platform.slug".
	Path string

	// Spec is the leaf definition the path resolves to.
	Spec *Spec
}

// Flatten returns all descendant Specs of the group with dotted paths,
// prefixed with the group key, sorted alphabetically within the group.
func (g *Group) Flatten(prefix string) []Flat {
	base := g.Key
	if prefix != "" {
		base = prefix + "." + g.Key
	}

	out := make([]Flat, 0, len(g.Children))
	for _, child := range g.Children {
		switch c := child.(type) {
		case *Spec:
			if g.Cat == CategoryCustom && c.Category != CategoryCustom {
				c = c.WithCategory(CategoryCustom)
			}
			out = append(out, Flat{Path: base + "." + c.Key, Spec: c})
		case *Group:
			if g.Cat == CategoryCustom && c.Cat != CategoryCustom {
				c = c.Custom()
			}
			out = append(out, c.Flatten(base)...)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
