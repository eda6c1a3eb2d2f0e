package ir

type Attr struct {
	Name  string
	Value string
}

type Node struct {
	Name     string
	Text     string
	Attrs    []Attr
	Children []*Node
}

func New(name string) *Node {
	return &Node{Name: name}
}

// SetAttr sets name to value, overwriting in place when name is
// already present so that attribute order is first-insertion order.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

// Attr returns the value for name and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return n.Attrs[i].Value, true
		}
	}
	return "", false
}

// AppendChild appends child as the last child of n.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// AppendText concatenates v to the node's text, with no separator.
func (n *Node) AppendText(v string) {
	n.Text += v
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Name = n.Name
	dst.Text = n.Text
	dst.Attrs = make([]Attr, len(n.Attrs))
	copy(dst.Attrs, n.Attrs)
	dst.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		dst.Children[i] = c.Clone()
	}
	return dst
}

// Visit walks the tree in depth-first order, calling f before and
// after each node's children. Returning false from the pre-order call
// skips the node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Count returns the number of elements in the tree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
