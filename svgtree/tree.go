// Provides a navigable tree representation of SVG documents.
// Contrary to a rendering oriented parser, the tree keeps every element
// and attribute so that it can be modified and written back.
package svgtree

// Attr is an attribute of an element. Space is the namespace
// prefix as written in the source (for instance "xlink").
type Attr struct {
	Space, Name, Value string
}

// Node is one element of a document.
type Node struct {
	Space    string // namespace prefix, may be empty
	Tag      string
	Attrs    []Attr
	Text     string // character data, only kept when not blank
	Children []*Node

	parent *Node
}

// Parent returns the parent of `n`, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Lookup returns the value of the attribute with local name `name`.
func (n *Node) Lookup(name string) (string, bool) {
	for _, attr := range n.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Get returns the value of the attribute `name`, or an empty string.
func (n *Node) Get(name string) string {
	v, _ := n.Lookup(name)
	return v
}

// Set updates the value of the attribute `name`, adding it if needed.
func (n *Node) Set(name, value string) {
	for i, attr := range n.Attrs {
		if attr.Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// AppendChild adds `child` to the children of `n`, updating its parent.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// QualifiedName returns the tag with its namespace prefix, if any.
func (n *Node) QualifiedName() string { return qualified(n.Space, n.Tag) }

func qualified(space, local string) string {
	if space == "" {
		return local
	}
	return space + ":" + local
}

// clone returns a deep copy of `n`, attached to `parent`.
func (n *Node) clone(parent *Node) *Node {
	out := &Node{
		Space:  n.Space,
		Tag:    n.Tag,
		Attrs:  append([]Attr(nil), n.Attrs...),
		Text:   n.Text,
		parent: parent,
	}
	if len(n.Children) != 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.clone(out)
		}
	}
	return out
}

// Walk calls `fn` on `n` and its descendants, in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Document is a parsed SVG file.
type Document struct {
	Root   *Node
	Source string // file name or any identifier of the origin
}

// ViewBox returns the `viewBox` attribute of the root element.
func (doc *Document) ViewBox() string {
	return doc.Root.Get("viewBox")
}

// Clone returns a deep copy of the document, which
// may be modified without affecting `doc`.
func (doc *Document) Clone() *Document {
	return &Document{Root: doc.Root.clone(nil), Source: doc.Source}
}
