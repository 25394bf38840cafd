package fakedom

import "strings"

// InnerHTML serializes n's children back to an HTML string.
func (n *Node) InnerHTML() string {
	var b strings.Builder
	for _, c := range n.Children {
		writeNode(&b, c)
	}
	return b.String()
}

// SetInnerHTML replaces n's children with the parsed contents of html.
func (n *Node) SetInnerHTML(html string) {
	n.Children = nil
	frag := parseFragment(html)
	for _, c := range append([]*Node(nil), frag.Children...) {
		n.AppendChild(c)
	}
}

func writeNode(b *strings.Builder, n *Node) {
	switch n.Kind {
	case KindText:
		b.WriteString(encodeText(n.Data))
	case KindComment:
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->")
	case KindElement:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for k, v := range n.Attrs {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteString(`="`)
			b.WriteString(encodeAttr(v))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if voidElements[n.Tag] {
			return
		}
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}

func encodeText(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return replacer.Replace(s)
}

func encodeAttr(s string) string {
	replacer := strings.NewReplacer("&", "&amp;", `"`, "&quot;")
	return replacer.Replace(s)
}
