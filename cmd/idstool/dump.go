package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/npillmayer/cjkids"
	"github.com/npillmayer/cjkids/decomp"
	"github.com/npillmayer/cjkids/ids"
	"gopkg.in/yaml.v3"
)

// DumpCmd writes all decompositions, in Unihan order.
type DumpCmd struct {
	Format    string `help:"Output format" enum:"json,yaml" default:"json"`
	Recursive bool   `help:"Dump recursive decompositions"`
	Out       string `short:"o" help:"Output file, default is stdout" type:"path"`
}

type record struct {
	Char         string      `json:"char" yaml:"char"`
	CodePoint    string      `json:"codepoint" yaml:"codepoint"`
	IDS          string      `json:"ids" yaml:"ids"`
	Questionable bool        `json:"questionable,omitempty" yaml:"questionable,omitempty"`
	Components   []component `json:"components" yaml:"components"`
}

type component struct {
	Char string     `json:"char" yaml:"char"`
	Rect [4]float64 `json:"rect" yaml:"rect,flow"`
}

func (c *DumpCmd) Run(g *Globals) error {
	ctx, err := g.load()
	if err != nil {
		return err
	}
	out := g.out
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	records := c.records(ctx)
	if g.Verbose {
		logger.Printf("dumping %d decompositions as %s", len(records), c.Format)
	}
	return writeRecords(out, c.Format, records)
}

func (c *DumpCmd) records(ctx *cjkids.Context) []record {
	lookup := ctx.Direct
	if c.Recursive {
		lookup = ctx.Recursive
	}
	chars := ctx.Store().Characters()
	records := make([]record, 0, len(chars))
	for _, r := range chars {
		if d, ok := lookup(r); ok {
			records = append(records, toRecord(d))
		}
	}
	return records
}

func toRecord(d *decomp.Decomposition) record {
	rec := record{
		Char:         string(d.Char),
		CodePoint:    fmt.Sprintf("%U", d.Char),
		IDS:          d.IDS,
		Questionable: d.Questionable,
		Components:   make([]component, len(d.Components)),
	}
	for i, c := range d.Components {
		rec.Components[i] = component{
			Char: ids.Notation(c.Rune),
			Rect: [4]float64{c.Rect.X1, c.Rect.Y1, c.Rect.X2, c.Rect.Y2},
		}
	}
	return rec
}

func writeRecords(w io.Writer, format string, records []record) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
