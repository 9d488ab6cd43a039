package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cjkids"
	"github.com/npillmayer/cjkids/decomp"
	"github.com/npillmayer/cjkids/ids"
)

// StatsCmd prints counts of decompositions and failures.
type StatsCmd struct{}

func (c *StatsCmd) Run(g *Globals) error {
	ctx, err := g.load()
	if err != nil {
		return err
	}
	store := ctx.Store()
	fmt.Fprintf(g.out, "decompositions:\t%d\n", store.Len())
	fmt.Fprintf(g.out, "recursive:\t%d\n", store.RecursiveLen())
	fmt.Fprintf(g.out, "specials:\t%d\n", ctx.Specials().Len())
	printCounts(g, "failures", ctx.Failures())
	printCounts(g, "recursive failures", ctx.RecursiveFailures())
	fmt.Fprintln(g.out, "components:")
	for _, bin := range store.Histogram() {
		fmt.Fprintf(g.out, "\t%d\t%d\t%c\n", bin.Components, bin.Characters, bin.Sample)
	}
	return nil
}

func printCounts(g *Globals, title string, ledger *decomp.Ledger) {
	fmt.Fprintf(g.out, "%s:\t%d\n", title, ledger.Len())
	for _, reason := range ledger.Reasons() {
		fmt.Fprintf(g.out, "\t%d\t%s\n", ledger.Count(reason), reason)
	}
}

// ShowCmd shows the decompositions of characters.
type ShowCmd struct {
	Chars []string `arg:"" help:"Characters to show"`
}

func (c *ShowCmd) Run(g *Globals) error {
	ctx, err := g.load()
	if err != nil {
		return err
	}
	for _, s := range c.Chars {
		for _, r := range s {
			showChar(g, ctx, r)
		}
	}
	return nil
}

func showChar(g *Globals, ctx *cjkids.Context, r rune) {
	fmt.Fprintf(g.out, "%c\t%U\n", r, r)
	if rad, ok := ctx.Radicals().RadicalOf(r); ok {
		fmt.Fprintf(g.out, "\tradical %s\n", rad)
	}
	d, ok := ctx.Direct(r)
	if !ok {
		if f, ok := ctx.Failures().Lookup(r); ok {
			fmt.Fprintf(g.out, "\tfailed: %s\t%s\n", f.Message, f.Input)
		} else {
			fmt.Fprintln(g.out, "\tno decomposition")
		}
		return
	}
	showDecomposition(g, "direct", d)
	if d, ok = ctx.Recursive(r); ok {
		showDecomposition(g, "recursive", d)
	} else if f, ok := ctx.RecursiveFailures().Lookup(r); ok {
		fmt.Fprintf(g.out, "\trecursive failed: %s\t%s\n", f.Message, f.Input)
	}
}

func showDecomposition(g *Globals, title string, d *decomp.Decomposition) {
	q := ""
	if d.Questionable {
		q = " (questionable)"
	}
	fmt.Fprintf(g.out, "\t%s %s%s\n", title, d.IDS, q)
	for _, c := range d.Components {
		fmt.Fprintf(g.out, "\t\t%s %s %s\n", ids.Notation(c.Rune), c.Rect, c.Color())
	}
}

// SpecialsCmd lists special components.
type SpecialsCmd struct{}

func (c *SpecialsCmd) Run(g *Globals) error {
	ctx, err := g.load()
	if err != nil {
		return err
	}
	for _, sp := range ctx.Specials().Entries() {
		fmt.Fprintf(g.out, "%02d\t%s\t%s\n", sp.Index, sp.Description, string(sp.Samples()))
	}
	return nil
}

// FailuresCmd lists characters which failed to parse.
type FailuresCmd struct {
	Recursive bool `help:"List failures of the recursive pass"`
}

func (c *FailuresCmd) Run(g *Globals) error {
	ctx, err := g.load()
	if err != nil {
		return err
	}
	ledger := ctx.Failures()
	if c.Recursive {
		ledger = ctx.RecursiveFailures()
	}
	for _, f := range ledger.All() {
		fmt.Fprintf(g.out, "%s\t%c\t%s\t%s\n", f.Reason, f.Char, f.Input, f.Message)
	}
	return nil
}

// RadicalsCmd lists radical glyphs by source.
type RadicalsCmd struct{}

func (c *RadicalsCmd) Run(g *Globals) error {
	ctx, err := g.load()
	if err != nil {
		return err
	}
	fmt.Fprintln(g.out, "radical\tcanonical\tCJK radicals\tAdobe")
	for _, row := range ctx.Radicals().Rows() {
		fmt.Fprintf(g.out, "%s\t%s\t%s\t%s\n", row.Radical,
			string(row.Canonical), string(row.CJK), string(row.Adobe))
	}
	return nil
}

// CheckCmd cross-checks decompositions against radicals.
type CheckCmd struct {
	List bool `help:"List missing ideographs, not just count them"`
}

func (c *CheckCmd) Run(g *Globals) error {
	ctx, err := g.load()
	if err != nil {
		return err
	}
	missing := ctx.Missing()
	fmt.Fprintf(g.out, "missing:\t%d\n", missing.Len())
	if c.List {
		var b strings.Builder
		for _, f := range missing.Failures(decomp.ReasonMissing) {
			b.WriteRune(f.Char)
		}
		fmt.Fprintf(g.out, "\t%s\n", b.String())
	}
	misses := ctx.RadicalMissing()
	fmt.Fprintf(g.out, "radical missing:\t%d\n", len(misses))
	for _, m := range misses {
		fmt.Fprintf(g.out, "\t%c\t%s\t%s\t%s\n", m.Char, m.RS, string(m.Radical), m.IDS)
	}
	return nil
}
