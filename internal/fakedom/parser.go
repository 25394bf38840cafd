package fakedom

import "strings"

// voidElements never have a closing tag or children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// parseFragment is a small recursive-descent HTML parser covering the
// subset templates actually use: nested tags, attributes (quoted,
// single-quoted, or bare), void elements, and text runs. It is test-support
// plumbing standing in for the host's native innerHTML parser (§4.B); it is
// not a conforming HTML5 parser (no script/style raw-text handling, no
// entity decoding beyond &amp; &lt; &gt; &quot; &#39;, no malformed-markup
// recovery).
func parseFragment(html string) *Node {
	p := &parser{src: html}
	root := NewElement("fragment")
	p.parseChildren(root, "")
	return root
}

type parser struct {
	src string
	pos int
}

func (p *parser) parseChildren(parent *Node, stopTag string) {
	for p.pos < len(p.src) {
		if strings.HasPrefix(p.src[p.pos:], "</") {
			closeName, ok := p.peekCloseTag()
			if !ok {
				p.pos++
				continue
			}
			if stopTag == "" || !strings.EqualFold(closeName, stopTag) {
				return
			}
			p.consumeCloseTag()
			return
		}
		if strings.HasPrefix(p.src[p.pos:], "<!--") {
			p.skipComment()
			continue
		}
		if p.src[p.pos] == '<' {
			p.parseElement(parent)
			continue
		}
		text := p.consumeText()
		if strings.TrimSpace(text) != "" || text != "" {
			parent.AppendChild(NewText(text))
		}
	}
}

func (p *parser) peekCloseTag() (string, bool) {
	rest := p.src[p.pos+2:]
	end := strings.IndexByte(rest, '>')
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}

func (p *parser) consumeCloseTag() {
	end := strings.IndexByte(p.src[p.pos:], '>')
	if end < 0 {
		p.pos = len(p.src)
		return
	}
	p.pos += end + 1
}

func (p *parser) skipComment() {
	end := strings.Index(p.src[p.pos:], "-->")
	if end < 0 {
		p.pos = len(p.src)
		return
	}
	p.pos += end + len("-->")
}

func (p *parser) consumeText() string {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '<' {
		p.pos++
	}
	return decodeEntities(p.src[start:p.pos])
}

func (p *parser) parseElement(parent *Node) {
	p.pos++ // consume '<'
	start := p.pos
	for p.pos < len(p.src) && !isTagEnd(p.src[p.pos]) {
		p.pos++
	}
	tag := strings.ToLower(p.src[start:p.pos])
	el := NewElement(tag)

	selfClosing := false
	for p.pos < len(p.src) && p.src[p.pos] != '>' {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] == '>' {
			break
		}
		if p.src[p.pos] == '/' {
			selfClosing = true
			p.pos++
			continue
		}
		name, value := p.parseAttr()
		if name != "" {
			el.SetAttr(name, value)
		}
	}
	if p.pos < len(p.src) {
		p.pos++ // consume '>'
	}
	parent.AppendChild(el)

	if selfClosing || voidElements[tag] {
		return
	}
	p.parseChildren(el, tag)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) parseAttr() (name, value string) {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '=' && !isSpace(p.src[p.pos]) && p.src[p.pos] != '>' && p.src[p.pos] != '/' {
		p.pos++
	}
	name = p.src[start:p.pos]
	p.skipSpace()
	if p.pos >= len(p.src) || p.src[p.pos] != '=' {
		return name, ""
	}
	p.pos++ // consume '='
	p.skipSpace()
	if p.pos >= len(p.src) {
		return name, ""
	}
	quote := p.src[p.pos]
	if quote == '"' || quote == '\'' {
		p.pos++
		vstart := p.pos
		for p.pos < len(p.src) && p.src[p.pos] != quote {
			p.pos++
		}
		value = decodeEntities(p.src[vstart:p.pos])
		if p.pos < len(p.src) {
			p.pos++ // consume closing quote
		}
		return name, value
	}
	vstart := p.pos
	for p.pos < len(p.src) && !isSpace(p.src[p.pos]) && p.src[p.pos] != '>' {
		p.pos++
	}
	return name, decodeEntities(p.src[vstart:p.pos])
}

func isTagEnd(c byte) bool { return isSpace(c) || c == '>' || c == '/' }
func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func decodeEntities(s string) string {
	replacer := strings.NewReplacer(
		"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&#39;", "'",
	)
	return replacer.Replace(s)
}
