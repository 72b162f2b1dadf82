package markup

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/mathmark/texparse"
	"github.com/npillmayer/schuko/tracing"
)

// MaxScriptDepth is the maximum nesting of sup/sub elements print production
// is able to express.
const MaxScriptDepth = 2

// ToPrint converts intermediate markup into a tag tree for print production.
//
// Elements are renamed according to their context. Scripts are named by
// their nesting:
//
//	sup, sub          outermost script
//	sup2, sub2        script within a script of the same kind
//	subsup, supsub    sup within sub, sub within sup
//
// and get a 'b' prefix within bold text. Within a script, bold and italic
// text take the name of the innermost script, upright text takes it with an
// 'r' prefix. Bold text within a script counts as a bold script for its
// contents, e.g. italic text there is "bsup". Outside of scripts, bold within upright text is "rb", italic
// within bold text is "b", upright text within bold text is "rb".
//
// The text of a symbol image is replaced by a placement marker
//
//	◆→math:<name>.eps←◆
//
// Three or more nested scripts cannot be expressed and result in a
// conversion error of kind TooDeep.
func ToPrint(markup string) (*etree.Document, error) {
	doc, err := parse(markup)
	if err != nil {
		return nil, err
	}
	if path, ok := tooDeep(&doc.Element, nil); ok {
		return nil, texparse.Failure(texparse.TooDeep, markup,
			fmt.Errorf("scripts nested too deeply: %s", strings.Join(path, "/")))
	}
	for img, name := range imageNames(doc) {
		clearChildren(img)
		img.SetText("◆→math:" + name + ".eps←◆")
	}
	for _, e := range doc.ChildElements() {
		rename(e, scope{})
	}
	if tracer().GetTraceLevel() == tracing.LevelDebug {
		s, _ := WritePrint(doc)
		tracer().Debugf("print tree = %s", s)
	}
	return doc, nil
}

// WritePrint serializes a print production tree.
func WritePrint(doc *etree.Document) (string, error) {
	return write(doc)
}

// tooDeep searches for a path with more than MaxScriptDepth scripts.
func tooDeep(e *etree.Element, scripts []string) ([]string, bool) {
	for _, c := range e.ChildElements() {
		s := scripts
		if isScript(c.Tag) {
			s = append(s[:len(s):len(s)], c.Tag)
			if len(s) > MaxScriptDepth {
				return s, true
			}
		}
		if path, ok := tooDeep(c, s); ok {
			return path, true
		}
	}
	return nil, false
}

func isScript(tag string) bool {
	return tag == "sup" || tag == "sub"
}

// scope is the context of an element during renaming.
type scope struct {
	script string // renamed innermost script, if any
	outer  string // original tag of the outermost script, if any
	bold   bool   // an ancestor is a bold element
	bolded bool   // an ancestor has been renamed to "b"
	roman  bool   // an ancestor is an upright element
}

// rename renames e and its descendants. The new name of an element depends
// on the original tags and the new names of its ancestors only.
func rename(e *etree.Element, sc scope) {
	inner := sc
	switch e.Tag {
	case "sup", "sub":
		name := e.Tag
		if sc.outer == "" {
			inner.outer = e.Tag
		} else {
			name = nestedScript(sc.outer, e.Tag)
		}
		if sc.bold {
			name = "b" + name
		}
		inner.script = name
		e.Tag = name
	case "b":
		inner.bold = true
		switch {
		case sc.script != "":
			e.Tag = "b" + strings.TrimPrefix(sc.script, "b")
			inner.script = e.Tag
		case sc.roman:
			e.Tag = "rb"
		}
	case "i":
		switch {
		case sc.script != "":
			e.Tag = sc.script
		case sc.bolded:
			e.Tag = "b"
		}
	case "r":
		inner.roman = true
		switch {
		case sc.script != "":
			e.Tag = "r" + sc.script
		case sc.bolded:
			e.Tag = "rb"
		}
	}
	if e.Tag == "b" {
		inner.bolded = true
	}
	for _, c := range e.ChildElements() {
		rename(c, inner)
	}
}

// nestedScript names a script of kind tag within a script of kind outer.
func nestedScript(outer, tag string) string {
	if outer == tag {
		return tag + "2"
	}
	return outer + tag
}
