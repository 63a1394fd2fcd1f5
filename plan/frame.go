package plan

import (
	"bytes"
	"fmt"
)

// FrameType distinguishes ROWS and RANGE frames. The zero value marks the
// absence of an explicit frame: semantically RANGE UNBOUNDED PRECEDING ..
// CURRENT ROW, but a distinct equality class from spelling those bounds out.
type FrameType int8

const (
	DefaultFrameType FrameType = iota
	RowsFrame
	RangeFrame
)

func (t FrameType) String() string {
	switch t {
	case DefaultFrameType:
		return "default"
	case RowsFrame:
		return "rows"
	case RangeFrame:
		return "range"
	}
	return fmt.Sprintf("frametype(%d)", t)
}

// BoundType enumerates frame bound kinds, in window order: every bound type
// is at or before the ones declared after it.
type BoundType int8

const (
	UnboundedPreceding BoundType = iota
	Preceding
	CurrentRow
	Following
	UnboundedFollowing
)

func (t BoundType) String() string {
	switch t {
	case UnboundedPreceding:
		return "unbounded preceding"
	case Preceding:
		return "preceding"
	case CurrentRow:
		return "current row"
	case Following:
		return "following"
	case UnboundedFollowing:
		return "unbounded following"
	}
	return fmt.Sprintf("boundtype(%d)", t)
}

// FrameBound is one endpoint of a window frame. Offset is set only for
// Preceding and Following bounds and references the symbol carrying the
// offset value.
type FrameBound struct {
	Type   BoundType
	Offset *Symbol
}

func (b FrameBound) Equals(other FrameBound) bool {
	if b.Type != other.Type {
		return false
	}
	if (b.Offset == nil) != (other.Offset == nil) {
		return false
	}
	return b.Offset == nil || *b.Offset == *other.Offset
}

func (b FrameBound) String() string {
	if b.Offset != nil {
		return fmt.Sprintf("%s %s", b.Offset, b.Type)
	}
	return b.Type.String()
}

// compareBounds orders two bounds along the frame axis. It returns ok=false
// when the bounds are incomparable, which happens for equal bound types with
// different offsets: offsets are symbols, and their runtime values cannot be
// ordered at plan time.
func compareBounds(a, b FrameBound) (cmp int, ok bool) {
	if a.Type != b.Type {
		if a.Type < b.Type {
			return -1, true
		}
		return 1, true
	}
	if a.Equals(b) {
		return 0, true
	}
	return 0, false
}

// Frame is the row/range bound description attached to a single window
// function. A nil End denotes CURRENT ROW.
type Frame struct {
	Type  FrameType
	Start FrameBound
	End   *FrameBound
}

// DefaultFrame is the absent-frame marker.
var DefaultFrame = Frame{}

func (f Frame) IsDefault() bool {
	return f.Type == DefaultFrameType
}

func (f Frame) effectiveEnd() FrameBound {
	if f.End != nil {
		return *f.End
	}
	return FrameBound{Type: CurrentRow}
}

func (f Frame) Equals(other Frame) bool {
	if f.Type != other.Type {
		return false
	}
	if f.IsDefault() {
		return true
	}
	if !f.Start.Equals(other.Start) {
		return false
	}
	return f.effectiveEnd().Equals(other.effectiveEnd())
}

// Contains reports whether other is a sub-interval of f under the bound
// ordering. Default frames and frames of different types are never
// comparable to anything but themselves.
func (f Frame) Contains(other Frame) bool {
	if f.Equals(other) {
		return true
	}
	if f.IsDefault() || other.IsDefault() || f.Type != other.Type {
		return false
	}
	startCmp, ok := compareBounds(f.Start, other.Start)
	if !ok || startCmp > 0 {
		return false
	}
	endCmp, ok := compareBounds(other.effectiveEnd(), f.effectiveEnd())
	return ok && endCmp <= 0
}

// ReferencedSymbols returns the offset symbols the frame references.
func (f Frame) ReferencedSymbols() SymbolSet {
	set := make(SymbolSet)
	if f.Start.Offset != nil {
		set[*f.Start.Offset] = struct{}{}
	}
	if f.End != nil && f.End.Offset != nil {
		set[*f.End.Offset] = struct{}{}
	}
	return set
}

func (f Frame) String() string {
	if f.IsDefault() {
		return "default"
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %s", f.Type, f.Start)
	if f.End != nil {
		fmt.Fprintf(&buf, " to %s", f.End)
	}
	return buf.String()
}

// MergeFrames returns the wider of two frames when one contains the other,
// and ok=false when the frames are incomparable. Merging never narrows: the
// result contains both inputs.
func MergeFrames(a, b Frame) (Frame, bool) {
	if a.Contains(b) {
		return a, true
	}
	if b.Contains(a) {
		return b, true
	}
	return Frame{}, false
}
