package cjkids

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/cjkids/decomp"
	"github.com/npillmayer/cjkids/ids"
	"github.com/npillmayer/cjkids/internal/ucdparse"
	"github.com/npillmayer/cjkids/layout"
	"github.com/npillmayer/cjkids/radical"
)

// Sources are the input tables for Load. Unihan and CrossReference are
// optional; without them no character is known as a radical.
type Sources struct {
	Unihan         io.Reader // Unihan database, at least kRSUnicode and kRSAdobe_Japan1_6
	CrossReference io.Reader // CJK Radicals cross-reference, "hex ; radical" lines
	IDS            io.Reader // IDS table
}

// Context holds all tables derived by Load. It is immutable and may be
// shared between goroutines.
type Context struct {
	radicals    *radical.Index
	registry    *ids.Registry
	store       *decomp.Store
	failures    *decomp.Ledger
	recFailures *decomp.Ledger
	parser      *ids.Parser
}

// Load reads the input tables and derives all decomposition tables. Steps
// are run in a fixed order: radical index, operator table and primitive
// sets, direct decompositions, recursive decompositions. The registry of
// special components is frozen before the recursive pass.
//
// Characters failing to parse do not make Load fail; they are listed by
// Failures and RecursiveFailures. Load returns an error for unreadable or
// corrupt tables only.
func Load(src Sources) (*Context, error) {
	if src.IDS == nil {
		return nil, errors.New("no IDS table given")
	}
	b := radical.NewBuilder()
	if src.Unihan != nil {
		if err := radical.LoadUnihan(src.Unihan, b); err != nil {
			return nil, fmt.Errorf("Unihan: %w", err)
		}
	}
	if src.CrossReference != nil {
		if err := radical.LoadCrossReference(src.CrossReference, b); err != nil {
			return nil, fmt.Errorf("CJK radicals cross-reference: %w", err)
		}
	}
	radicals, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("radical index: %w", err)
	}
	CT().Infof("radical index: %d radicals, %d keyed characters", len(radicals.Radicals()), radicals.Len())
	CT().Debugf("%d IDS operators, %d primitive ranges", len(layout.Operators()),
		len(ids.Primitives().R16)+len(ids.Primitives().R32))
	registry := ids.NewRegistry()
	loader := decomp.NewLoader(radicals, registry, radicals)
	if err := loader.Load(src.IDS); err != nil {
		return nil, err
	}
	registry.Freeze()
	if err := loader.Expand(); err != nil {
		return nil, err
	}
	return &Context{
		radicals:    radicals,
		registry:    registry,
		store:       loader.Store(),
		failures:    loader.Failures(),
		recFailures: loader.RecursiveFailures(),
		parser:      ids.NewParser(radicals, registry),
	}, nil
}

// Files names the input files for LoadFiles. Files ending in ".xz" are
// decompressed. The Unihan database is usually split into several files;
// they are read in the order given.
type Files struct {
	Unihan         []string
	CrossReference string
	IDS            string
}

// LoadFiles opens the input files and calls Load.
func LoadFiles(files Files) (*Context, error) {
	var src Sources
	if len(files.Unihan) > 0 {
		unihan, err := ucdparse.OpenAll(files.Unihan...)
		if err != nil {
			return nil, err
		}
		defer unihan.Close()
		src.Unihan = unihan
	}
	if files.CrossReference != "" {
		xref, err := ucdparse.Open(files.CrossReference)
		if err != nil {
			return nil, err
		}
		defer xref.Close()
		src.CrossReference = xref
	}
	if files.IDS != "" {
		table, err := ucdparse.Open(files.IDS)
		if err != nil {
			return nil, err
		}
		defer table.Close()
		src.IDS = table
	}
	return Load(src)
}

// Radicals returns the radical index.
func (ctx *Context) Radicals() *radical.Index {
	return ctx.radicals
}

// Specials returns the registry of special components.
func (ctx *Context) Specials() *ids.Registry {
	return ctx.registry
}

// Store returns the decomposition tables.
func (ctx *Context) Store() *decomp.Store {
	return ctx.store
}

// Direct returns the decomposition of a character as given by the IDS table.
func (ctx *Context) Direct(char rune) (*decomp.Decomposition, bool) {
	return ctx.store.Direct(char)
}

// Recursive returns the recursive decomposition of a character.
func (ctx *Context) Recursive(char rune) (*decomp.Decomposition, bool) {
	return ctx.store.Recursive(char)
}

// Failures lists the characters which failed to parse during the direct
// pass.
func (ctx *Context) Failures() *decomp.Ledger {
	return ctx.failures
}

// RecursiveFailures lists the characters which failed to parse after
// substitution.
func (ctx *Context) RecursiveFailures() *decomp.Ledger {
	return ctx.recFailures
}

// Compare compares two strings in Unihan order.
func (ctx *Context) Compare(a, b string) int {
	return ctx.radicals.Compare(a, b)
}

// Parse parses an IDS for character source against the loaded tables.
// Special components are resolved, but not recorded.
func (ctx *Context) Parse(source rune, desc string) ([]ids.Component, bool, error) {
	return ctx.parser.Parse(source, desc)
}

// Missing lists ideographs with neither a decomposition nor a radical.
func (ctx *Context) Missing() *decomp.Ledger {
	return ctx.store.Missing(ids.Ideographs(), ctx.radicals)
}

// RadicalMissing lists recursive decompositions not containing the radical
// of their character.
func (ctx *Context) RadicalMissing() []decomp.RadicalMiss {
	return ctx.store.RadicalMissing(ctx.radicals)
}
