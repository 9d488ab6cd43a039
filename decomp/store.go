package decomp

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/cjkids/ids"
)

// Decomposition is the parsed IDS of a character.
type Decomposition struct {
	Char         rune
	IDS          string          // the IDS which has been parsed
	Components   []ids.Component // leaves in pre-order
	Questionable bool            // IDS contains uncertain components
}

// Runes returns the code-points of the components.
func (d *Decomposition) Runes() []rune {
	return ids.Runes(d.Components)
}

func (d *Decomposition) String() string {
	return fmt.Sprintf("%c = %s", d.Char, d.IDS)
}

// Store holds direct and recursive decompositions. Clients get read-only
// access; a store is filled by a Loader.
type Store struct {
	direct    *treemap.Map // rune -> *Decomposition, in code-point order
	recursive *treemap.Map // rune -> *Decomposition, in code-point order
	col       Collator
}

func newStore(col Collator) *Store {
	return &Store{
		direct:    treemap.NewWith(utils.RuneComparator),
		recursive: treemap.NewWith(utils.RuneComparator),
		col:       col,
	}
}

// Direct returns the decomposition of a character as given by the IDS table.
func (s *Store) Direct(char rune) (*Decomposition, bool) {
	return lookup(s.direct, char)
}

// Recursive returns the decomposition of a character after substitution of
// its components.
func (s *Store) Recursive(char rune) (*Decomposition, bool) {
	return lookup(s.recursive, char)
}

func lookup(m *treemap.Map, char rune) (*Decomposition, bool) {
	if v, ok := m.Get(char); ok {
		return v.(*Decomposition), true
	}
	return nil, false
}

// Len returns the number of directly decomposed characters.
func (s *Store) Len() int {
	return s.direct.Size()
}

// RecursiveLen returns the number of recursively decomposed characters.
func (s *Store) RecursiveLen() int {
	return s.recursive.Size()
}

// Characters returns the directly decomposed characters in collation order.
func (s *Store) Characters() []rune {
	chars := make([]rune, 0, s.direct.Size())
	for _, k := range s.direct.Keys() {
		chars = append(chars, k.(rune))
	}
	s.sort(chars)
	return chars
}

// Each calls f for every direct decomposition, in code-point order.
func (s *Store) Each(f func(*Decomposition)) {
	it := s.direct.Iterator()
	for it.Next() {
		f(it.Value().(*Decomposition))
	}
}

func (s *Store) sort(chars []rune) {
	if s.col == nil {
		return // keys are in code-point order already
	}
	sort.Slice(chars, func(i, j int) bool {
		return s.col.Compare(string(chars[i]), string(chars[j])) < 0
	})
}

// Bin is an entry of a component count histogram.
type Bin struct {
	Components int  // number of components
	Characters int  // number of characters with this number of components
	Sample     rune // character with the lowest code-point in this bin
}

// Histogram counts direct decompositions by number of components, in
// ascending order of component count.
func (s *Store) Histogram() []Bin {
	bins := treemap.NewWithIntComparator()
	s.Each(func(d *Decomposition) {
		n := len(d.Components)
		if v, ok := bins.Get(n); ok {
			v.(*Bin).Characters++
			return
		}
		bins.Put(n, &Bin{Components: n, Characters: 1, Sample: d.Char})
	})
	histogram := make([]Bin, 0, bins.Size())
	for _, v := range bins.Values() {
		histogram = append(histogram, *v.(*Bin))
	}
	return histogram
}
