package highlight

import (
	"sort"

	"github.com/rdleal/intervalst/interval"
)

// Index stores the most recently applied spans keyed by line so the
// renderer can look up styling per visible line. Spans are only valid
// for the buffer version they were produced against; Apply rejects
// results for any other version and Invalidate drops everything when
// the buffer changes.
type Index struct {
	version uint64
	tree    *interval.MultiValueSearchTree[Span, int]
}

func cmpLine(a, b int) int { return a - b }

// NewIndex creates an empty span index at version zero.
func NewIndex() *Index {
	return &Index{
		tree: interval.NewMultiValueSearchTreeWithOptions[Span, int](cmpLine, interval.TreeWithIntervalPoint()),
	}
}

// Version returns the buffer version the indexed spans belong to.
func (x *Index) Version() uint64 {
	return x.version
}

// Apply merges a highlight result into the index. Results for a version
// other than the current buffer version are discarded and Apply reports
// false. A result for a newer version resets the index first.
func (x *Index) Apply(res Result, bufferVersion uint64) bool {
	if res.Version != bufferVersion {
		return false
	}
	if res.Version != x.version {
		x.reset(res.Version)
	}
	byLine := make(map[int][]Span)
	for _, s := range res.Spans {
		byLine[s.Line] = append(byLine[s.Line], s)
	}
	for line, spans := range byLine {
		x.tree.Delete(line, line)
		x.tree.Insert(line, line, spans...)
	}
	return true
}

// Invalidate clears all spans. Called when the buffer mutates.
func (x *Index) Invalidate(version uint64) {
	x.reset(version)
}

// SpansForLine returns the spans covering a line sorted by start
// column, valid only while the buffer remains at the given version.
func (x *Index) SpansForLine(line int, bufferVersion uint64) []Span {
	if x.version != bufferVersion {
		return nil
	}
	spans, ok := x.tree.AnyIntersection(line, line)
	if !ok {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].StartCol < spans[j].StartCol })
	return spans
}

func (x *Index) reset(version uint64) {
	x.version = version
	x.tree = interval.NewMultiValueSearchTreeWithOptions[Span, int](cmpLine, interval.TreeWithIntervalPoint())
}
