package ids

import (
	"context"
	"errors"
	"fmt"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/cjkids/layout"
)

// Escape characters of IDS data files.
const (
	Uncertain      rune = '？' // U+FF1F, marks an uncertain component
	EscapeOpen     rune = '{'
	EscapeClose    rune = '}'
	MirrorEscape   rune = '↔' // U+2194
	RotationEscape rune = '↷' // U+21B7
)

// Ideographs which may appear mirrored or rotated, and the placeholder
// index of their first entry.
const (
	mirrorable = "𦣞正止臣"
	mirrorBase = 0x40
	rotatable  = "或止虎"
	rotateBase = 0x50
)

// Notation returns the way a component is written in IDS data: "{dd}"
// for numbered special components, "↔X" and "↷X" for mirrored and rotated
// ideographs. Other components are returned as they are.
func Notation(r rune) string {
	if r < PlaceholderFirst || r > PlaceholderLast {
		return string(r)
	}
	index := int(r - PlaceholderFirst)
	if f, ok := formAt(rotatable, index-rotateBase); ok {
		return string(RotationEscape) + string(f)
	}
	if f, ok := formAt(mirrorable, index-mirrorBase); ok {
		return string(MirrorEscape) + string(f)
	}
	if index < 100 {
		return fmt.Sprintf("{%02d}", index)
	}
	return string(r)
}

func formAt(forms string, i int) (rune, bool) {
	if i < 0 {
		return 0, false
	}
	for _, f := range forms {
		if i == 0 {
			return f, true
		}
		i--
	}
	return 0, false
}

// RadicalLookup finds the radical a glyph stands for. *radical.Index
// implements it.
type RadicalLookup interface {
	RadicalOf(rune) (string, bool)
}

// Parser parses IDS strings into lists of placed components.
// A Parser may be used concurrently, provided the registry is not
// replaced.
type Parser struct {
	radicals RadicalLookup
	registry *Registry
}

// NewParser creates a parser. An IDS consisting of a single leaf must name
// a radical known to radicals. Special components are recorded in
// registry, which may be nil. A frozen registry is not updated.
func NewParser(radicals RadicalLookup, registry *Registry) *Parser {
	return &Parser{radicals: radicals, registry: registry}
}

// Parse parses the IDS of character source. It returns the leaf
// components in pre-order, together with a flag telling if the IDS contains
// uncertain components. All errors match ErrMalformed.
func (p *Parser) Parse(source rune, ids string) ([]Component, bool, error) {
	st := borrowState(source, ids)
	defer st.release()
	if err := p.parse(st, layout.Base); err != nil {
		T().Debugf("cannot parse %c = %s at [%s]: %v", source, ids, st, err)
		return nil, false, err
	}
	if st.pos < len(st.cps) {
		return nil, false, trailing(st.pos)
	}
	components := make([]Component, len(st.out))
	copy(components, st.out)
	return components, st.questionable, nil
}

// parse reads one operator with its operands, or a single radical, placing
// it within outer.
func (p *Parser) parse(st *parseState, outer layout.Rect) error {
	head, ok := st.next()
	if !ok {
		return tooShort(st.pos)
	}
	class := Classify(head)
	if class.Kind != StructuralOperator {
		if p.radicals != nil {
			if _, ok := p.radicals.RadicalOf(head); ok {
				st.emit(head, outer)
				return nil
			}
		}
		return &UnknownComponentError{Offset: st.pos - 1, Rune: head, Head: true}
	}
	for _, part := range class.Operator.Parts {
		rect := outer.Compose(part)
		r, ok := st.next()
		if !ok {
			return tooShort(st.pos)
		}
		for r == Uncertain {
			st.questionable = true
			if r, ok = st.next(); !ok {
				return tooShort(st.pos)
			}
		}
		kind := Classify(r).Kind
		if kind == Unknown {
			var err error
			if r, err = p.escape(st, r); err != nil {
				return err
			}
			kind = Classify(r).Kind
		}
		switch kind {
		case PrimitiveLeaf:
			st.emit(r, rect)
		case StructuralOperator:
			st.pos-- // re-read the operator as head
			if err := p.parse(st, rect); err != nil {
				return err
			}
		default:
			return &UnknownComponentError{Offset: st.pos - 1, Rune: r}
		}
	}
	return nil
}

// escape resolves an escape sequence starting with r to a placeholder.
// If r does not start an escape, it is returned unchanged.
func (p *Parser) escape(st *parseState, r rune) (rune, error) {
	switch r {
	case EscapeOpen:
		index := 0
		for i := 0; i < 2; i++ {
			d, ok := st.next()
			if !ok {
				return r, tooShort(st.pos)
			}
			if d < '0' || d > '9' {
				return r, badEscape(d, st.pos-1)
			}
			index = index*10 + int(d-'0')
		}
		if c, ok := st.next(); !ok {
			return r, tooShort(st.pos)
		} else if c != EscapeClose {
			return r, badEscape(c, st.pos-1)
		}
		return PlaceholderFirst + rune(index), p.record(index, st.source, "")
	case MirrorEscape:
		return p.transformed(st, r, mirrorable, mirrorBase, "mirrored ")
	case RotationEscape:
		return p.transformed(st, r, rotatable, rotateBase, "rotated ")
	}
	return r, nil
}

// transformed resolves a mirrored or rotated ideograph. The ideograph
// following the escape must be one of forms.
func (p *Parser) transformed(st *parseState, esc rune, forms string, base int, prefix string) (rune, error) {
	r, ok := st.next()
	if !ok {
		return esc, tooShort(st.pos)
	}
	i := 0
	for _, f := range forms {
		if f == r {
			index := base + i
			return PlaceholderFirst + rune(index), p.record(index, st.source, prefix+string(r))
		}
		i++
	}
	return r, &UnknownComponentError{Offset: st.pos - 1, Rune: r}
}

func (p *Parser) record(index int, source rune, description string) error {
	if p.registry == nil {
		return nil
	}
	err := p.registry.Describe(index, source, description)
	if errors.Is(err, ErrFrozen) {
		return nil
	}
	return err
}

// --- Parse state -----------------------------------------------------------

type parseState struct {
	source       rune
	cps          []rune
	pos          int
	out          []Component
	questionable bool
}

func (st *parseState) next() (rune, bool) {
	if st.pos >= len(st.cps) {
		return 0, false
	}
	r := st.cps[st.pos]
	st.pos++
	return r, true
}

func (st *parseState) emit(r rune, rect layout.Rect) {
	st.out = append(st.out, Component{
		Rune:     r,
		Rect:     rect,
		Fraction: float32(st.pos) / float32(len(st.cps)),
	})
}

func (st *parseState) String() string {
	var b strings.Builder
	b.WriteString(string(st.cps[:st.pos]))
	b.WriteString(" • ")
	b.WriteString(string(st.cps[st.pos:]))
	return b.String()
}

// Parse states are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type statePool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStatePool *statePool

func init() {
	globalStatePool = &statePool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &parseState{}, nil
		})
	globalStatePool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStatePool.opool = pool.NewObjectPool(globalStatePool.ctx, factory, config)
}

func borrowState(source rune, ids string) *parseState {
	var st *parseState
	if o, err := globalStatePool.opool.BorrowObject(globalStatePool.ctx); err == nil {
		st = o.(*parseState)
	} else {
		st = &parseState{}
	}
	st.source = source
	st.cps = append(st.cps[:0], []rune(ids)...)
	return st
}

// Clears the parse state and puts it back into the pool.
func (st *parseState) release() {
	st.source = 0
	st.cps = st.cps[:0]
	st.pos = 0
	st.out = st.out[:0]
	st.questionable = false
	_ = globalStatePool.opool.ReturnObject(globalStatePool.ctx, st)
}
