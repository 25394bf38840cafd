package fakedom

// Document is a detached fake document: it creates nodes and performs
// id-based lookups over whatever tree the caller has built. There is no
// requirement that created nodes ever be attached to Document.root; GetElementByID
// searches from root, which tests attach their tree under.
type Document struct {
	root *Node
}

// NewDocument returns a fresh fake document with an empty root element.
func NewDocument() *Document {
	return &Document{root: NewElement("html")}
}

func (d *Document) Root() *Node {
	return d.root
}

func (d *Document) CreateElement(tag string) *Node {
	return NewElement(tag)
}

func (d *Document) CreateText(data string) *Node {
	return NewText(data)
}

func (d *Document) CreateComment(data string) *Node {
	return NewComment(data)
}

// ParseFragment parses html and returns a detached element wrapping the
// parsed subtree (a synthetic "fragment" element whose children are the
// parsed nodes).
func (d *Document) ParseFragment(html string) *Node {
	return parseFragment(html)
}

// GetElementByID searches the whole document rooted at d.root for an
// element with a matching "id" attribute.
func (d *Document) GetElementByID(id string) (*Node, bool) {
	return findByID(d.root, id)
}

func findByID(n *Node, id string) (*Node, bool) {
	if n.Kind == KindElement {
		if v, ok := n.Attrs["id"]; ok && v == id {
			return n, true
		}
	}
	for _, c := range n.Children {
		if found, ok := findByID(c, id); ok {
			return found, true
		}
	}
	return nil, false
}

// Attach makes n the document's root, so GetElementByID can find elements
// inside it. Test-only convenience; a real document has a fixed root.
func (d *Document) Attach(n *Node) {
	d.root = n
}
