package decomp

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cjkids/ids"
	"github.com/npillmayer/cjkids/internal/ucdparse"
)

// ErrMalformedRow is returned for a data line of an IDS table whose
// character field is not a single code-point.
var ErrMalformedRow = errors.New("malformed IDS table row")

// ErrExpanded is returned if the recursive pass is run more than once.
var ErrExpanded = errors.New("decompositions already expanded")

// Loader fills a Store from IDS tables. Loaders are single-threaded and all
// state of a load is held by the loader itself.
type Loader struct {
	radicals    ids.RadicalLookup
	registry    *ids.Registry
	parser      *ids.Parser
	store       *Store
	failures    *Ledger
	recFailures *Ledger
	skipped     int // data lines not of the form code-point, character, IDS
	expanded    bool
}

// NewLoader creates a loader. Special components are recorded in registry.
// Stores and ledgers list characters in the order of col, which may be nil.
func NewLoader(radicals ids.RadicalLookup, registry *ids.Registry, col Collator) *Loader {
	if registry == nil {
		registry = ids.NewRegistry()
	}
	return &Loader{
		radicals:    radicals,
		registry:    registry,
		parser:      ids.NewParser(radicals, registry),
		store:       newStore(col),
		failures:    NewLedger(col),
		recFailures: NewLedger(col),
	}
}

// Store returns the decomposition store.
func (l *Loader) Store() *Store {
	return l.store
}

// Registry returns the registry of special components.
func (l *Loader) Registry() *ids.Registry {
	return l.registry
}

// Failures returns the ledger of the direct pass.
func (l *Loader) Failures() *Ledger {
	return l.failures
}

// RecursiveFailures returns the ledger of the recursive pass.
func (l *Loader) RecursiveFailures() *Ledger {
	return l.recFailures
}

// Skipped returns the number of data lines which have been skipped, as
// they did not consist of code-point, character and IDS.
func (l *Loader) Skipped() int {
	return l.skipped
}

// Load runs the direct pass over an IDS table. Characters which fail to
// parse are recorded in the failure ledger. Lines with a field count other
// than three are skipped. Load returns an error only for a corrupt table:
// a malformed code-point or character, or a special component declared twice.
// Load may be called repeatedly for tables split across files, but not
// after Expand.
func (l *Loader) Load(r io.Reader) error {
	if l.expanded {
		return ErrExpanded
	}
	sc, err := ucdparse.New(r, ucdparse.Whitespace(), ucdparse.OnComment(l.declare))
	if err != nil {
		return err
	}
	var cnt int
	for sc.Next() {
		if err := l.row(sc.Token); err != nil {
			return err
		}
		cnt++
	}
	if sc.LastError != nil {
		return fmt.Errorf("IDS table: %w", sc.LastError)
	}
	T().Infof("loaded %d IDS rows, %d skipped, %d decompositions, %d failures",
		cnt, l.skipped, l.store.Len(), l.failures.Len())
	return nil
}

func (l *Loader) declare(comment string) error {
	if !ids.IsDeclaration(comment) {
		return nil
	}
	return l.registry.Declare(comment)
}

// row handles a data line: code-point, character and IDS. Lines with
// alternative descriptions or without any are skipped.
func (l *Loader) row(token *ucdparse.Token) error {
	if len(token.Fields) == 0 {
		l.skipped++
		return nil
	}
	source := token.Field(1)
	char, size := utf8.DecodeRuneInString(source)
	if char == utf8.RuneError || size != len(source) {
		return fmt.Errorf("line %d: %w: not a single character: %q",
			token.LineNo, ErrMalformedRow, source)
	}
	if len(token.Fields) != 2 {
		T().Debugf("line %d: skipping %c with %d fields", token.LineNo, char, len(token.Fields)+1)
		l.skipped++
		return nil
	}
	raw := token.Field(2)
	desc := Clean(raw)
	if desc == source {
		if !l.isRadical(char) {
			l.failures.RecordError(&ids.IdentityWithoutRadicalError{Char: char}, char, raw)
		}
		return nil
	}
	components, questionable, err := l.parser.Parse(char, desc)
	if err != nil {
		if errors.Is(err, ids.ErrMalformed) {
			l.failures.RecordError(err, char, raw)
			return nil
		}
		return fmt.Errorf("line %d: %w", token.LineNo, err)
	}
	l.store.direct.Put(char, &Decomposition{
		Char:         char,
		IDS:          desc,
		Components:   components,
		Questionable: questionable,
	})
	return nil
}

func (l *Loader) isRadical(char rune) bool {
	if l.radicals == nil {
		return false
	}
	_, ok := l.radicals.RadicalOf(char)
	return ok
}

// Clean strips the optional start and end markers '^' and '$' from an IDS.
func Clean(raw string) string {
	return strings.TrimSuffix(strings.TrimPrefix(raw, "^"), "$")
}

// Expand runs the recursive pass. It must be called once, after all IDS
// tables have been loaded. Failures are recorded in the recursive failure
// ledger, never in the ledger of the direct pass.
func (l *Loader) Expand() error {
	if l.expanded {
		return ErrExpanded
	}
	l.expanded = true
	var fail error
	l.store.Each(func(d *Decomposition) {
		if fail != nil {
			return
		}
		desc := l.substitute(d.IDS)
		components, questionable, err := l.parser.Parse(d.Char, desc)
		if err != nil {
			if !errors.Is(err, ids.ErrMalformed) {
				fail = err
				return
			}
			l.recFailures.RecordError(err, d.Char, desc)
			return
		}
		l.store.recursive.Put(d.Char, &Decomposition{
			Char:         d.Char,
			IDS:          desc,
			Components:   components,
			Questionable: questionable,
		})
	})
	if fail != nil {
		return fail
	}
	T().Infof("expanded %d decompositions, %d failures",
		l.store.RecursiveLen(), l.recFailures.Len())
	return nil
}

// substitute replaces every code-point of an IDS by its recursive
// decomposition, if already present, else by its direct decomposition.
func (l *Loader) substitute(desc string) string {
	var b strings.Builder
	for _, r := range desc {
		if d, ok := l.store.Recursive(r); ok {
			b.WriteString(d.IDS)
		} else if d, ok := l.store.Direct(r); ok {
			b.WriteString(d.IDS)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
