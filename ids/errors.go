package ids

import (
	"errors"
	"fmt"
)

// ErrMalformed is the common cause of all parse errors: every error returned
// by Parser.Parse satisfies errors.Is(err, ErrMalformed).
var ErrMalformed = errors.New("malformed IDS")

// ErrFrozen is returned when modifying a frozen registry.
var ErrFrozen = errors.New("special registry is frozen")

// Reasons for failures, suitable for grouping failures in reports.
const (
	ReasonShort       = "expected more characters"
	ReasonTrailing    = "unexpected trailing characters"
	ReasonEscape      = "malformed escape"
	ReasonUnknown     = "unknown component"
	ReasonIdentity    = "no IDS/Radical/Stroke"
	ReasonDeclaration = "malformed special declaration"
)

// MalformedIDSError is returned for an IDS which is too short for the arity
// of its operators, contains a malformed {dd} escape, or has characters
// left over after a complete parse.
type MalformedIDSError struct {
	Offset int    // code-point offset into the IDS
	Kind   string // one of ReasonShort, ReasonTrailing, ReasonEscape
	Msg    string
}

func (e *MalformedIDSError) Error() string {
	return fmt.Sprintf("Error: %s", e.Msg)
}

// Reason returns the kind of the error.
func (e *MalformedIDSError) Reason() string {
	return e.Kind
}

func (e *MalformedIDSError) Unwrap() error {
	return ErrMalformed
}

func tooShort(offset int) error {
	return &MalformedIDSError{Offset: offset, Kind: ReasonShort,
		Msg: fmt.Sprintf("expected more characters at %d", offset)}
}

func trailing(consumed int) error {
	s := "s"
	if consumed == 1 {
		s = ""
	}
	return &MalformedIDSError{Offset: consumed, Kind: ReasonTrailing,
		Msg: fmt.Sprintf("expected only %d character%s", consumed, s)}
}

func badEscape(r rune, offset int) error {
	return &MalformedIDSError{Offset: offset, Kind: ReasonEscape,
		Msg: fmt.Sprintf("unexpected character %04X in escape at %d", r, offset)}
}

// UnknownComponentError is returned if a component is neither an operator,
// nor a leaf, nor an escape.
type UnknownComponentError struct {
	Offset int  // code-point offset into the IDS
	Rune   rune // offending code-point
	Head   bool // offending code-point started the IDS
}

func (e *UnknownComponentError) Error() string {
	if e.Head {
		return fmt.Sprintf("Error: no IDS/Radical/Stroke at %d", e.Offset)
	}
	return fmt.Sprintf("Error: unexpected character %04X at %d", e.Rune, e.Offset)
}

// Reason returns ReasonUnknown.
func (e *UnknownComponentError) Reason() string {
	return ReasonUnknown
}

func (e *UnknownComponentError) Unwrap() error {
	return ErrMalformed
}

// IdentityWithoutRadicalError is reported for a character described by
// itself, if it is not known as a radical.
type IdentityWithoutRadicalError struct {
	Char rune
}

func (e *IdentityWithoutRadicalError) Error() string {
	return fmt.Sprintf("Error: no IDS/Radical/Stroke at 0 (%c describes itself)", e.Char)
}

// Reason returns ReasonIdentity.
func (e *IdentityWithoutRadicalError) Reason() string {
	return ReasonIdentity
}

// SpecialCollisionError is returned if a special component is declared
// twice. This indicates a corrupt input table.
type SpecialCollisionError struct {
	Index int
}

func (e *SpecialCollisionError) Error() string {
	return fmt.Sprintf("special collision: {%02d} declared twice", e.Index)
}
