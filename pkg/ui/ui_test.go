package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/types"
	"github.com/arthur-debert/decor/pkg/ui"
	"github.com/arthur-debert/decor/pkg/ui/display"
	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func composition(t *testing.T) *display.Composition {
	t.Helper()
	res, err := core.Compose(core.Request{
		Shape: core.Spec{Name: "circle", Params: types.Params{"radius": 2}},
		Steps: []core.Spec{
			{Name: "colored", Params: types.Params{"color": "red"}},
			{Name: "colored", Params: types.Params{"color": "blue"}},
		},
		Policy: "absorb",
	})
	require.NoError(t, err)
	return &display.Composition{Source: "recipe.yaml", Result: res}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{"create terminal renderer", ui.FormatTerminal, false},
		{"create text renderer", ui.FormatText, false},
		{"create json renderer", ui.FormatJSON, false},
		{"create yaml renderer", ui.FormatYAML, false},
		{"create toml renderer", ui.FormatTOML, false},
		{"create xml renderer", ui.FormatXML, false},
		{"create auto renderer with buffer", ui.FormatAuto, false},
		{"invalid format", ui.Format(999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestRendererInterface(t *testing.T) {
	formats := []ui.Format{
		ui.FormatTerminal,
		ui.FormatText,
		ui.FormatJSON,
		ui.FormatYAML,
		ui.FormatTOML,
		ui.FormatXML,
	}
	values := []interface{}{
		composition(t),
		display.NewPolicyTable("absorb"),
		display.NewCatalog(),
		&display.Message{Text: "created", Paths: []string{"a", "b"}},
		map[string]string{"test": "data"},
	}

	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			assert.NoError(t, renderer.RenderMessage("test message"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			for _, v := range values {
				assert.NoError(t, renderer.RenderResult(v), "%T", v)
			}
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "hello world", result["message"])
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, assert.AnError.Error(), result["error"])
	})

	t.Run("render decor error", func(t *testing.T) {
		buf.Reset()
		err := errors.New(errors.ErrCycle, "cycle detected").WithDetail("kind", "colored")
		require.NoError(t, renderer.RenderError(err))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "CYCLE", result["code"])
		assert.Equal(t, map[string]interface{}{"kind": "colored"}, result["details"])
	})

	t.Run("render composition", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(composition(t)))

		var result display.Composition
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "recipe.yaml", result.Source)
		assert.Equal(t, "A circle of radius 2 has the color red", result.Result.Description)
		assert.Equal(t, []string{"colored", "colored"}, result.Result.Chain)
		assert.False(t, result.Result.Steps[1].Applied)
	})
}

func TestYAMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(display.NewPolicyTable("throw")))

	var table display.PolicyTable
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &table))
	require.Len(t, table.Policies, 3)
	assert.Equal(t, "throw", table.Policies[2].Name)
	assert.True(t, table.Policies[2].Default)
}

func TestTOMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTOML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(composition(t)))

	var result display.Composition
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "A circle of radius 2 has the color red", result.Result.Description)
	assert.Len(t, result.Result.Steps, 2)
}

func TestXMLRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatXML, buf)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderResult(composition(t)))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("composition")
	require.NotNil(t, root)
	assert.Equal(t, "recipe.yaml", root.SelectAttrValue("source", ""))
	assert.Equal(t, "absorb", root.SelectAttrValue("policy", ""))
	assert.Equal(t, "A circle of radius 2 has the color red", root.SelectElement("description").Text())
	assert.Len(t, root.FindElements("chain/kind"), 2)

	steps := root.FindElements("steps/step")
	require.Len(t, steps, 2)
	assert.Equal(t, "false", steps[1].SelectAttrValue("applied", ""))
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))
		assert.Equal(t, "hello world\n", buf.String())
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})

	t.Run("render composition", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(composition(t)))
		out := buf.String()
		assert.Contains(t, out, "A circle of radius 2 has the color red\n")
		assert.Contains(t, out, "colored > colored")
		assert.Contains(t, out, "1. colored [absorb] recorded, applied: has the color red")
		assert.Contains(t, out, "2. colored [absorb] recorded, suppressed: has the color blue")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("render policies", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(display.NewPolicyTable("absorb")))
		out := buf.String()
		assert.Contains(t, out, "throw")
		assert.Contains(t, out, "suppress")
		assert.Contains(t, out, "default")
		assert.NotContains(t, out, "\x1b[")
	})

	t.Run("render unknown result type", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(map[string]string{"foo": "bar"}))
		assert.Contains(t, buf.String(), "map[foo:bar]")
	})
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))
		assert.Contains(t, buf.String(), "hello world")
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Contains(t, buf.String(), "assert.AnError")
	})

	t.Run("render composition", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(composition(t)))
		assert.Contains(t, buf.String(), "A circle of radius 2 has the color red")
	})
}
