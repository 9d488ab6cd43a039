package ids

import (
	"fmt"
	"strings"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Special is a component without a code-point of its own, such as a
// numbered component from the IDS data file or a mirrored ideograph.
// Index n stands for placeholder code-point U+E000+n.
type Special struct {
	Index       int
	Description string
	samples     *treeset.Set // characters the component occurs in
	declared    bool         // description given by a declaration or an escape
}

// Rune returns the placeholder code-point of the special component.
func (sp *Special) Rune() rune {
	return PlaceholderFirst + rune(sp.Index)
}

// Samples returns the characters the special component occurs in, in
// code-point order.
func (sp *Special) Samples() []rune {
	samples := make([]rune, 0, sp.samples.Size())
	for _, v := range sp.samples.Values() {
		samples = append(samples, v.(rune))
	}
	return samples
}

func (sp *Special) String() string {
	return fmt.Sprintf("{%02d} %s\t%s", sp.Index, sp.Description, string(sp.Samples()))
}

// Registry holds special components, ordered by index. Entries accumulate
// while loading IDS data; after Freeze the registry is read-only.
// A Registry is safe for concurrent use.
type Registry struct {
	sync.RWMutex
	entries *treemap.Map // int -> *Special
	frozen  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: treemap.NewWithIntComparator(),
	}
}

// IsDeclaration checks if a comment line (without the leading '#')
// declares a special component.
func IsDeclaration(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "{")
}

// Declare adds a special component from a declaration line of the form
//
//    {dd} description
//
// An index which has been referenced before, but not declared, receives
// the description. Declaring an index twice returns a SpecialCollisionError.
func (reg *Registry) Declare(line string) error {
	line = strings.TrimSpace(line)
	index, ok := parseIndex(line)
	if !ok || len(line) < 4 || line[3] != '}' {
		return fmt.Errorf("%s: %q", ReasonDeclaration, line)
	}
	reg.Lock()
	defer reg.Unlock()
	if reg.frozen {
		return ErrFrozen
	}
	description := strings.TrimSpace(line[4:])
	if v, exists := reg.entries.Get(index); exists {
		sp := v.(*Special)
		if sp.declared {
			return &SpecialCollisionError{Index: index}
		}
		sp.Description, sp.declared = description, true
		T().Debugf("declared special component {%02d} after use", index)
		return nil
	}
	sp := newSpecial(index, description)
	sp.declared = true
	reg.entries.Put(index, sp)
	T().Debugf("declared special component {%02d}", index)
	return nil
}

// parseIndex reads the two digits following a '{'.
func parseIndex(line string) (int, bool) {
	if len(line) < 3 || line[0] != '{' {
		return 0, false
	}
	d1, d2 := line[1], line[2]
	if d1 < '0' || d1 > '9' || d2 < '0' || d2 > '9' {
		return 0, false
	}
	return int(d1-'0')*10 + int(d2-'0'), true
}

// Reference records that special component index occurs in character
// sample. Referencing an undeclared index creates an entry with an empty
// description.
func (reg *Registry) Reference(index int, sample rune) error {
	return reg.Describe(index, sample, "")
}

// Describe records that special component index occurs in character sample.
// If the index is not yet present, an entry with the given description is
// created. Descriptions of existing entries are changed by Declare only.
func (reg *Registry) Describe(index int, sample rune, description string) error {
	reg.Lock()
	defer reg.Unlock()
	if reg.frozen {
		return ErrFrozen
	}
	var sp *Special
	if v, exists := reg.entries.Get(index); exists {
		sp = v.(*Special)
	} else {
		sp = newSpecial(index, description)
		sp.declared = description != ""
		reg.entries.Put(index, sp)
	}
	sp.samples.Add(sample)
	return nil
}

func newSpecial(index int, description string) *Special {
	return &Special{
		Index:       index,
		Description: description,
		samples:     treeset.NewWith(utils.RuneComparator),
	}
}

// Lookup finds a special component by index.
func (reg *Registry) Lookup(index int) (*Special, bool) {
	reg.RLock()
	defer reg.RUnlock()
	if v, ok := reg.entries.Get(index); ok {
		return v.(*Special), true
	}
	return nil, false
}

// Entries returns all special components, ordered by index.
func (reg *Registry) Entries() []*Special {
	reg.RLock()
	defer reg.RUnlock()
	entries := make([]*Special, 0, reg.entries.Size())
	for _, v := range reg.entries.Values() {
		entries = append(entries, v.(*Special))
	}
	return entries
}

// Len returns the number of special components.
func (reg *Registry) Len() int {
	reg.RLock()
	defer reg.RUnlock()
	return reg.entries.Size()
}

// Freeze makes the registry read-only.
func (reg *Registry) Freeze() {
	reg.Lock()
	defer reg.Unlock()
	reg.frozen = true
}

// Frozen is true after Freeze has been called.
func (reg *Registry) Frozen() bool {
	reg.RLock()
	defer reg.RUnlock()
	return reg.frozen
}
