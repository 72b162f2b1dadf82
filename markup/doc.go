/*
Package markup renders the intermediate tag markup of math expressions.

The intermediate markup is a small XML vocabulary:

	i       italic (math) text, the root of every expression
	r       upright (normal) text
	b       bold text
	sup     superscript
	sub     subscript
	ibar    italic text with a top bar
	img     symbol image, holding the symbol name as text

Two renditions are supported: HTML (see ToHTML) and a tag tree for print
production (see ToPrint). Both work on a parsed element tree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package markup

import (
	"github.com/beevik/etree"
	"github.com/npillmayer/mathmark/symbols"
	"github.com/npillmayer/mathmark/texparse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mathmark.markup'
func tracer() tracing.Trace {
	return tracing.Select("mathmark.markup")
}

// parse reads intermediate markup into an element tree.
func parse(markup string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, texparse.Failure(texparse.InternalFault, markup, err)
	}
	return doc, nil
}

// write serializes a tree. Only `&`, `<` and `>` are escaped in text.
func write(doc *etree.Document) (string, error) {
	doc.WriteSettings.CanonicalText = true
	return doc.WriteToString()
}

// within checks if one of the ancestors of e has the given tag.
func within(e *etree.Element, tag string) bool {
	for p := e.Parent(); p != nil; p = p.Parent() {
		if p.Tag == tag {
			return true
		}
	}
	return false
}

// imageName derives the file name (without extension) of a symbol image.
// Upper case runs are prefixed with 'L', and the context of the image is
// prepended: "sup.", then "sub.", then "b.", i.e., an image within a
// superscript within a bold box is named "b.sup.<name>".
func imageName(e *etree.Element) string {
	name := symbols.ImageName(e.Text())
	for _, tag := range [...]string{"sup", "sub", "b"} {
		if within(e, tag) {
			name = tag + "." + name
		}
	}
	return name
}

// imageNames maps every img element of a tree to its file name. Names have to
// be collected before any element is renamed.
func imageNames(doc *etree.Document) map[*etree.Element]string {
	imgs := doc.FindElements("//img")
	names := make(map[*etree.Element]string, len(imgs))
	for _, img := range imgs {
		names[img] = imageName(img)
	}
	return names
}

// clearChildren removes all children of e.
func clearChildren(e *etree.Element) {
	for len(e.Child) > 0 {
		e.RemoveChild(e.Child[0])
	}
}
