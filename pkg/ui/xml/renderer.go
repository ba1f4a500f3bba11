// Package xml renders results as XML documents
package xml

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/ui/display"
	"github.com/beevik/etree"
)

// Renderer writes one XML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

// RenderResult renders the known view models as XML elements and anything
// else as the text of a <value> element.
func (r *Renderer) RenderResult(result interface{}) error {
	doc := newDocument()

	switch v := result.(type) {
	case *display.Composition:
		el := resultElement(doc.CreateElement("composition"), v.Result)
		if v.Source != "" {
			el.CreateAttr("source", v.Source)
		}
	case *core.Result:
		resultElement(doc.CreateElement("composition"), v)
	case *display.PolicyTable:
		root := doc.CreateElement("policies")
		for _, p := range v.Policies {
			el := root.CreateElement("policy")
			el.CreateAttr("name", p.Name)
			el.CreateAttr("on-construction", p.OnConstruction)
			el.CreateAttr("on-render", p.OnRender)
			el.CreateAttr("default", strconv.FormatBool(p.Default))
		}
	case *display.Catalog:
		root := doc.CreateElement("catalog")
		catalogElements(root.CreateElement("shapes"), "shape", v.Shapes)
		catalogElements(root.CreateElement("decorators"), "decorator", v.Decorators)
	case *display.Message:
		root := doc.CreateElement("message")
		root.CreateElement("text").SetText(v.Text)
		for _, p := range v.Paths {
			root.CreateElement("path").SetText(p)
		}
	default:
		doc.CreateElement("value").SetText(fmt.Sprintf("%+v", result))
	}

	return r.write(doc)
}

func resultElement(el *etree.Element, res *core.Result) *etree.Element {
	if res == nil {
		return el
	}
	el.CreateAttr("shape", res.Shape)
	el.CreateAttr("shape-id", res.ShapeID)
	if res.Policy != "" {
		el.CreateAttr("policy", res.Policy)
	}
	el.CreateElement("description").SetText(res.Description)

	chain := el.CreateElement("chain")
	for _, k := range res.Chain {
		chain.CreateElement("kind").SetText(k)
	}

	steps := el.CreateElement("steps")
	for _, s := range res.Steps {
		step := steps.CreateElement("step")
		step.CreateAttr("kind", s.Kind)
		step.CreateAttr("policy", s.Policy)
		step.CreateAttr("recorded", strconv.FormatBool(s.Recorded))
		step.CreateAttr("applied", strconv.FormatBool(s.Applied))
		step.SetText(s.Effect)
	}
	return el
}

func catalogElements(parent *etree.Element, tag string, entries []display.CatalogEntry) {
	for _, e := range entries {
		el := parent.CreateElement(tag)
		el.CreateAttr("name", e.Name)
		el.CreateAttr("param", e.Param)
		el.CreateAttr("example", e.Example)
		el.SetText(e.Summary)
	}
}

// RenderError renders an error as XML
func (r *Renderer) RenderError(err error) error {
	doc := newDocument()
	doc.CreateElement("error").SetText(err.Error())
	return r.write(doc)
}

// RenderMessage renders a simple message as XML
func (r *Renderer) RenderMessage(msg string) error {
	doc := newDocument()
	doc.CreateElement("message").CreateElement("text").SetText(msg)
	return r.write(doc)
}
