/*
Package testpage builds an HTML page listing converted math expressions, for
visual inspection of the HTML rendition in a browser.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package testpage

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultStylesheet is the stylesheet a page links to if none is given.
const DefaultStylesheet = "mathmark.css"

// Page is a test page under construction.
type Page struct {
	Title      string
	Stylesheet string
	list       *html.Node
	count      int
}

// New creates an empty test page.
func New(title string) *Page {
	p := &Page{Title: title, Stylesheet: DefaultStylesheet}
	p.list = element(atom.Ul)
	return p
}

// Add appends an HTML fragment of a converted expression as a list item.
// The fragment is parsed and must be valid HTML.
func (p *Page) Add(fragment string) error {
	span := element(atom.Span, html.Attribute{Key: "class", Val: "equation"})
	nodes, err := html.ParseFragment(strings.NewReader(fragment), span)
	if err != nil {
		return fmt.Errorf("test page: %w", err)
	}
	for _, n := range nodes {
		span.AppendChild(n)
	}
	li := element(atom.Li)
	li.AppendChild(span)
	p.list.AppendChild(li)
	p.count++
	return nil
}

// AddFailure appends a list item for an expression which could not be
// converted.
func (p *Page) AddFailure(expr string, err error) {
	span := element(atom.Span, html.Attribute{Key: "class", Val: "failure"})
	span.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprintf("%s: %v", expr, err)})
	li := element(atom.Li)
	li.AppendChild(span)
	p.list.AppendChild(li)
	p.count++
}

// Len returns the number of list items.
func (p *Page) Len() int {
	return p.count
}

// Render writes the complete page to w.
func (p *Page) Render(w io.Writer) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element(atom.Html)
	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "UTF-8"}))
	if p.Title != "" {
		title := element(atom.Title)
		title.AppendChild(&html.Node{Type: html.TextNode, Data: p.Title})
		head.AppendChild(title)
	}
	if p.Stylesheet != "" {
		head.AppendChild(element(atom.Link,
			html.Attribute{Key: "rel", Val: "stylesheet"},
			html.Attribute{Key: "href", Val: p.Stylesheet},
			html.Attribute{Key: "type", Val: "text/css"}))
	}
	body := element(atom.Body)
	body.AppendChild(p.list)
	root.AppendChild(head)
	root.AppendChild(body)
	doc.AppendChild(root)
	err := html.Render(w, doc)
	body.RemoveChild(p.list) // page may be rendered again
	return err
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
