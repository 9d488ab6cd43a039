/*
Command idstool loads IDS and Unihan tables and reports on decompositions.

Usage

   idstool --ids IDS.TXT --unihan Unihan_IRGSources.txt,Unihan_RadicalStrokeCounts.txt <command>

Commands are

   stats       counts of decompositions and failures
   show        direct and recursive decompositions of characters
   dump        all decompositions as JSON or YAML
   specials    special components and the characters they occur in
   failures    characters which failed to parse
   radicals    radical glyphs by source
   check       ideographs without decomposition, decompositions without radical

Input files ending in ".xz" are decompressed on the fly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/npillmayer/cjkids"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var logger = log.New(os.Stderr, "idstool: ", log.LstdFlags)

// Globals are flags for all commands.
type Globals struct {
	Unihan  []string  `help:"Unihan database files, comma separated" sep:","`
	Xref    string    `help:"CJK Radicals cross-reference file (hex ; radical)" type:"existingfile"`
	IDS     string    `name:"ids" help:"IDS table" type:"existingfile" required:""`
	Verbose bool      `short:"v" help:"Verbose output"`
	Debug   bool      `help:"Trace every character"`
	out     io.Writer `kong:"-"`
}

// CLI defines the command-line interface of idstool.
type CLI struct {
	Globals

	Stats    StatsCmd    `cmd:"" help:"Print counts of decompositions and failures"`
	Show     ShowCmd     `cmd:"" help:"Show decompositions of characters"`
	Dump     DumpCmd     `cmd:"" help:"Dump decompositions as JSON or YAML"`
	Specials SpecialsCmd `cmd:"" help:"List special components"`
	Failures FailuresCmd `cmd:"" help:"List characters which failed to parse"`
	Radicals RadicalsCmd `cmd:"" help:"List radical glyphs by source"`
	Check    CheckCmd    `cmd:"" help:"Cross-check decompositions against radicals"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

// run parses the command line and runs the selected command, writing output
// to out.
func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("idstool"),
		kong.Description("Decompose CJK ideographs using Ideographic Description Sequences"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(out, os.Stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cli.Globals.out = out
	return ctx.Run(&cli.Globals)
}

// load reads all input tables.
func (g *Globals) load() (*cjkids.Context, error) {
	trace := gologadapter.GetAdapter()()
	switch {
	case g.Debug:
		trace.SetTraceLevel(tracing.LevelDebug)
	case g.Verbose:
		trace.SetTraceLevel(tracing.LevelInfo)
	default:
		trace.SetTraceLevel(tracing.LevelError)
	}
	gtrace.CoreTracer = trace
	if g.Verbose {
		logger.Printf("reading %s", g.IDS)
	}
	defer timeTrack(time.Now(), "loading tables", g.Verbose)
	return cjkids.LoadFiles(cjkids.Files{
		Unihan:         g.Unihan,
		CrossReference: g.Xref,
		IDS:            g.IDS,
	})
}

func timeTrack(start time.Time, name string, verbose bool) {
	if !verbose {
		return
	}
	elapsed := time.Since(start)
	logger.Printf("timing: %s took %s\n", name, elapsed)
}
