package decomp

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// Collator defines an order on strings, such as the Unihan order of
// package radical.
type Collator interface {
	Compare(a, b string) int
}

// Failure is an entry of a failure ledger.
type Failure struct {
	Reason  string // failure category
	Char    rune   // character which failed
	Input   string // input which has been rejected
	Message string // detailed error message
}

// Ledger records failures, grouped by reason. Within a reason, characters
// are kept in collation order. A character has at most one failure:
// recording it again, for whatever reason, replaces the earlier entry.
type Ledger struct {
	reasons *treemap.Map // string -> *treemap.Map of rune -> Failure
	order   utils.Comparator
	size    int
}

// NewLedger creates an empty ledger, ordering characters by col. If col is
// nil, characters are ordered by code-point.
func NewLedger(col Collator) *Ledger {
	order := utils.RuneComparator
	if col != nil {
		order = func(a, b interface{}) int {
			return col.Compare(string(a.(rune)), string(b.(rune)))
		}
	}
	return &Ledger{
		reasons: treemap.NewWithStringComparator(),
		order:   order,
	}
}

// reasoner is implemented by errors which know their failure category.
type reasoner interface {
	Reason() string
}

// ReasonOf returns the failure category of err.
func ReasonOf(err error) string {
	if r, ok := err.(reasoner); ok {
		return r.Reason()
	}
	return err.Error()
}

// RecordError records a failure for err.
func (lg *Ledger) RecordError(err error, char rune, input string) {
	lg.Record(Failure{
		Reason:  ReasonOf(err),
		Char:    char,
		Input:   input,
		Message: err.Error(),
	})
}

// Record adds a failure to the ledger.
func (lg *Ledger) Record(f Failure) {
	if prev, ok := lg.Lookup(f.Char); ok {
		lg.remove(prev)
	}
	var chars *treemap.Map
	if v, ok := lg.reasons.Get(f.Reason); ok {
		chars = v.(*treemap.Map)
	} else {
		chars = treemap.NewWith(lg.order)
		lg.reasons.Put(f.Reason, chars)
	}
	chars.Put(f.Char, f)
	lg.size++
}

func (lg *Ledger) remove(f Failure) {
	v, _ := lg.reasons.Get(f.Reason)
	chars := v.(*treemap.Map)
	chars.Remove(f.Char)
	if chars.Empty() {
		lg.reasons.Remove(f.Reason)
	}
	lg.size--
}

// Len returns the number of failures, which is the number of characters
// recorded.
func (lg *Ledger) Len() int {
	return lg.size
}

// Reasons returns the failure categories in lexical order.
func (lg *Ledger) Reasons() []string {
	reasons := make([]string, 0, lg.reasons.Size())
	for _, k := range lg.reasons.Keys() {
		reasons = append(reasons, k.(string))
	}
	return reasons
}

// Count returns the number of failures for a reason.
func (lg *Ledger) Count(reason string) int {
	if v, ok := lg.reasons.Get(reason); ok {
		return v.(*treemap.Map).Size()
	}
	return 0
}

// Failures returns the failures for a reason, in collation order of the
// characters.
func (lg *Ledger) Failures(reason string) []Failure {
	v, ok := lg.reasons.Get(reason)
	if !ok {
		return nil
	}
	chars := v.(*treemap.Map)
	failures := make([]Failure, 0, chars.Size())
	for _, f := range chars.Values() {
		failures = append(failures, f.(Failure))
	}
	return failures
}

// All returns every failure, grouped by reason.
func (lg *Ledger) All() []Failure {
	all := make([]Failure, 0, lg.size)
	for _, reason := range lg.Reasons() {
		all = append(all, lg.Failures(reason)...)
	}
	return all
}

// Lookup finds the failure of a character, if any.
func (lg *Ledger) Lookup(char rune) (Failure, bool) {
	it := lg.reasons.Iterator()
	for it.Next() {
		if f, ok := it.Value().(*treemap.Map).Get(char); ok {
			return f.(Failure), true
		}
	}
	return Failure{}, false
}
