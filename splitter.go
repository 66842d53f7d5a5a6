package morph

import (
	"sort"
)

// SplitterEntry records where a command lies in its path's arc length space.
type SplitterEntry struct {
	Start  float64
	Length float64
	End    float64
}

// Splitter is an arc length index over a path. It answers position queries
// and extracts sub-paths by arc length in logarithmic time.
//
// A Splitter is immutable after construction and safe for concurrent use.
type Splitter struct {
	path    Path
	entries []SplitterEntry
	length  float64
}

// NewSplitter builds the index for p. The path must not be modified
// afterwards.
func NewSplitter(p Path) *Splitter {
	s := &Splitter{
		path:    p,
		entries: make([]SplitterEntry, len(p)),
	}
	var pos float64
	for i, cmd := range p {
		l := cmd.Length()
		s.entries[i] = SplitterEntry{Start: pos, Length: l, End: pos + l}
		pos += l
	}
	s.length = pos
	return s
}

// Length returns the total arc length of the path.
func (s *Splitter) Length() float64 { return s.length }

// Path returns the indexed path.
func (s *Splitter) Path() Path { return s.path }

// Len returns the number of commands in the indexed path.
func (s *Splitter) Len() int { return len(s.entries) }

// Entry returns the offsets of the i-th command.
func (s *Splitter) Entry(i int) SplitterEntry { return s.entries[i] }

func (s *Splitter) clamp(pos float64) float64 {
	return min(max(pos, 0), s.length)
}

// Index returns the index of the command that owns the arc length position
// pos. Commands own the half-open range [Start, End), except that the last
// command also owns the end of the path. Positions outside of the path are
// clamped. Index returns -1 for an empty path.
func (s *Splitter) Index(pos float64) int {
	if len(s.entries) == 0 {
		return -1
	}
	pos = s.clamp(pos)
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].End > pos
	})
	if i == len(s.entries) {
		// pos is the end of the path, or trailing zero-length commands made
		// End equal to it.
		i = len(s.entries) - 1
	}
	return i
}

// locate returns the command owning pos and the local parameter of pos in it.
func (s *Splitter) locate(pos float64) (int, float64) {
	i := s.Index(pos)
	e := s.entries[i]
	if pos >= e.End {
		return i, 1
	}
	return i, s.path[i].SolveForArclen(pos-e.Start, DefaultAccuracy)
}

// At returns the point at arc length pos, which is clamped to [0, Length()].
// At returns the zero point for an empty path.
func (s *Splitter) At(pos float64) Point {
	if len(s.entries) == 0 {
		return Point{}
	}
	pos = s.clamp(pos)
	i, t := s.locate(pos)
	return s.path[i].At(t)
}

// Get returns the part of the path between the arc length positions from and
// to. Both are clamped to [0, Length()]. If from >= to, the result is a single
// zero-length command at At(to). Commands that lie entirely inside the range
// are copied unmodified; the first and last command are split.
//
// Get returns nil for an empty path.
func (s *Splitter) Get(from, to float64) Path {
	if len(s.entries) == 0 {
		return nil
	}
	from = s.clamp(from)
	to = s.clamp(to)
	if from >= to {
		i, t := s.locate(to)
		return Path{s.path[i].Split(t, t)}
	}

	i0, t0 := s.locate(from)
	i1, t1 := s.locate(to)
	if t1 == 0 && i1 > i0 && connected(s.path[i1-1], s.path[i1]) {
		// to lies on the boundary between two commands. Finish at the end of
		// the earlier one instead of emitting a zero-length command.
		i1--
		t1 = 1
	}

	if i0 == i1 {
		cmd := s.path[i0].Split(t0, t1)
		return Path{cmd}
	}

	out := make(Path, 0, i1-i0+1)
	first := s.path[i0].Split(t0, 1)
	out = append(out, first)
	out = append(out, s.path[i0+1:i1]...)
	last := s.path[i1].Split(0, t1)
	last.Lift = s.path[i1].Lift
	out = append(out, last)
	return out
}

// Trim is an alias for [Splitter.Get].
func (s *Splitter) Trim(from, to float64) Path {
	return s.Get(from, to)
}
