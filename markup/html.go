package markup

import (
	"strings"

	"github.com/beevik/etree"
)

// DefaultImagePath is the location of symbol images referenced from HTML.
const DefaultImagePath = "images/math_symbols"

var htmlSpans = map[string]string{
	"r":     "math-normal",
	"rvbar": "math-normal",
	"ibar":  "math-italic-topbar",
}

// ToHTML renders intermediate markup as an HTML fragment.
//
// Symbol images become
//
//	<img src="<imagePath>/<name>.png"/>
//
// with imagePath defaulting to DefaultImagePath. Upright text and top-bar
// accents become spans with CSS classes "math-normal" and
// "math-italic-topbar", respectively. All other elements are kept.
func ToHTML(markup string, imagePath string) (string, error) {
	doc, err := parse(markup)
	if err != nil {
		return "", err
	}
	if imagePath == "" {
		imagePath = DefaultImagePath
	}
	imagePath = strings.TrimSuffix(imagePath, "/")
	for img, name := range imageNames(doc) {
		clearChildren(img)
		img.CreateAttr("src", imagePath+"/"+name+".png")
	}
	toSpans(&doc.Element)
	return write(doc)
}

func toSpans(e *etree.Element) {
	for _, c := range e.ChildElements() {
		if class, ok := htmlSpans[c.Tag]; ok {
			c.Tag = "span"
			c.CreateAttr("class", class)
		}
		toSpans(c)
	}
}
