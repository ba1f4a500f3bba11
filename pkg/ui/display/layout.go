package display

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/decor/pkg/core"
	"github.com/pterm/pterm"
)

// Painter applies a named style to a piece of text
type Painter func(style, text string) string

// Plain is the Painter that leaves text untouched
func Plain(_, text string) string { return text }

// Layout formats the known view models as human readable text.
// It reports false for values it does not know how to lay out.
func Layout(v interface{}, paint Painter, styled bool) (string, bool, error) {
	switch val := v.(type) {
	case *Composition:
		return layoutResult(val.Source, val.Result, paint), true, nil
	case *core.Result:
		return layoutResult("", val, paint), true, nil
	case *PolicyTable:
		s, err := layoutPolicies(val, styled)
		return s, true, err
	case *Catalog:
		s, err := layoutCatalog(val, paint, styled)
		return s, true, err
	case *Message:
		return layoutMessage(val, paint), true, nil
	default:
		return "", false, nil
	}
}

func label(paint Painter, name string) string {
	return paint("Label", fmt.Sprintf("%-8s", name))
}

func layoutResult(source string, r *core.Result, paint Painter) string {
	if r == nil {
		return ""
	}
	var b strings.Builder

	b.WriteString(paint("Description", r.Description))
	b.WriteString("\n")

	if source != "" {
		fmt.Fprintf(&b, "  %s %s\n", label(paint, "recipe"), source)
	}
	fmt.Fprintf(&b, "  %s %s %s\n", label(paint, "shape"), paint("Shape", r.Shape), paint("Muted", "("+r.ShapeID+")"))

	chain := paint("Muted", "(empty)")
	if len(r.Chain) > 0 {
		kinds := make([]string, len(r.Chain))
		for i, k := range r.Chain {
			kinds[i] = paint("Kind", k)
		}
		chain = strings.Join(kinds, " > ")
	}
	fmt.Fprintf(&b, "  %s %s\n", label(paint, "chain"), chain)

	if r.Policy != "" {
		fmt.Fprintf(&b, "  %s %s\n", label(paint, "policy"), r.Policy)
	}

	if len(r.Steps) > 0 {
		fmt.Fprintf(&b, "  %s\n", label(paint, "steps"))
	}
	for i, s := range r.Steps {
		recorded := "recorded"
		if !s.Recorded {
			recorded = "dropped"
		}
		effect := paint("Effect", strings.TrimSpace(s.Effect))
		state := "applied"
		if !s.Applied {
			state = "suppressed"
			effect = paint("Suppressed", strings.TrimSpace(s.Effect))
		}
		fmt.Fprintf(&b, "    %d. %s [%s] %s, %s: %s\n",
			i+1, paint("Kind", s.Kind), s.Policy, recorded, state, effect)
	}

	return strings.TrimRight(b.String(), "\n")
}

func table(data pterm.TableData, styled bool) (string, error) {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	if !styled {
		out = pterm.RemoveColorFromString(out)
	}
	return out, nil
}

func layoutPolicies(p *PolicyTable, styled bool) (string, error) {
	data := pterm.TableData{{"Policy", "Repeat on construction", "Repeat on render", ""}}
	for _, row := range p.Policies {
		marker := ""
		if row.Default {
			marker = "default"
		}
		data = append(data, []string{row.Name, row.OnConstruction, row.OnRender, marker})
	}
	return table(data, styled)
}

func layoutCatalog(c *Catalog, paint Painter, styled bool) (string, error) {
	var b strings.Builder
	sections := []struct {
		title   string
		entries []CatalogEntry
	}{
		{"Shapes", c.Shapes},
		{"Decorators", c.Decorators},
	}

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(paint("Title", section.title))
		b.WriteString("\n")

		data := pterm.TableData{{"Name", "Param", "Example", "Summary"}}
		for _, e := range section.entries {
			data = append(data, []string{e.Name, e.Param, e.Example, e.Summary})
		}
		t, err := table(data, styled)
		if err != nil {
			return "", err
		}
		b.WriteString(t)
	}
	return b.String(), nil
}

func layoutMessage(m *Message, paint Painter) string {
	var b strings.Builder
	b.WriteString(paint("Success", m.Text))
	for _, p := range m.Paths {
		b.WriteString("\n  ")
		b.WriteString(p)
	}
	return b.String()
}
