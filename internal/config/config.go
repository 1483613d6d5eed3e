// Package config loads simulation presets written in HCL.
//
// A preset mirrors the command-line options of eca:
//
//	rule       = 90
//	width      = term.width - 2
//	iterations = 32
//	wrap       = false
//	glyphs     = "block"   # or a two-character string such as "#."
//	start      = "middle"  # "random", "middle", "first" or a cell string
//
// Every attribute is optional. Expressions may refer to term.width and
// term.height, the size of the terminal the program is attached to.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Start values with a meaning beyond a literal cell string.
const (
	StartRandom = "random"
	StartMiddle = "middle"
	StartFirst  = "first"
)

// GlyphsBlock selects the solid block glyph preset.
const GlyphsBlock = "block"

// Env is the environment exposed to preset expressions.
type Env struct {
	TermWidth  int
	TermHeight int
}

// DefaultEnv is used when no terminal is attached.
func DefaultEnv() Env { return Env{TermWidth: 100, TermHeight: 24} }

// Preset holds the attributes of a preset file. Nil fields were not set.
type Preset struct {
	Rule       *int    `hcl:"rule,optional"`
	Width      *int    `hcl:"width,optional"`
	Iterations *int    `hcl:"iterations,optional"`
	Wrap       *bool   `hcl:"wrap,optional"`
	Glyphs     *string `hcl:"glyphs,optional"`
	Start      *string `hcl:"start,optional"`
}

// Load reads and decodes the preset at path.
func Load(path string, env Env) (*Preset, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(src, path, env)
}

// Parse decodes preset source. filename is only used in diagnostics.
func Parse(src []byte, filename string, env Env) (*Preset, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(parser, diags)
	}

	var p Preset
	diags = gohcl.DecodeBody(file.Body, evalContext(env), &p)
	if diags.HasErrors() {
		return nil, diagError(parser, diags)
	}
	return &p, nil
}

func evalContext(env Env) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"term": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(env.TermWidth)),
				"height": cty.NumberIntVal(int64(env.TermHeight)),
			}),
		},
	}
}

func diagError(parser *hclparse.Parser, diags hcl.Diagnostics) error {
	var buf bytes.Buffer
	wr := hcl.NewDiagnosticTextWriter(&buf, parser.Files(), 0, false)
	if err := wr.WriteDiagnostics(diags); err != nil {
		return fmt.Errorf("config: %s", diags.Error())
	}
	return fmt.Errorf("config: %s", bytes.TrimSpace(buf.Bytes()))
}
