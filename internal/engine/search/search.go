// Package search implements plain-text search over buffer lines with a
// navigable match list. Matches never span lines; columns are rune
// offsets.
package search

import (
	"strings"

	"github.com/dshills/editcore/internal/engine/buffer"
)

// Match is one occurrence of the query. StartCol is inclusive, EndCol
// exclusive, both in rune columns.
type Match struct {
	Line     int
	StartCol int
	EndCol   int
}

// Span returns the match as a buffer span.
func (m Match) Span() buffer.Span {
	return buffer.Span{
		Start: buffer.Position{Line: m.Line, Column: m.StartCol},
		End:   buffer.Position{Line: m.Line, Column: m.EndCol},
	}
}

// Lines is the read-only view of buffer content searches run over.
type Lines interface {
	LineCount() int
	LineText(line int) string
}

// Find returns all matches of query in document order. An empty query
// matches nothing. Overlapping occurrences are not reported; scanning
// resumes after each match.
func Find(lines Lines, query string, caseSensitive bool) []Match {
	if query == "" {
		return nil
	}
	needle := query
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}
	queryLen := len([]rune(query))

	var matches []Match
	for line := 0; line < lines.LineCount(); line++ {
		text := lines.LineText(line)
		haystack := text
		if !caseSensitive {
			haystack = strings.ToLower(haystack)
		}
		col := 0
		rest := haystack
		for {
			idx := strings.Index(rest, needle)
			if idx < 0 {
				break
			}
			startCol := col + len([]rune(rest[:idx]))
			matches = append(matches, Match{
				Line:     line,
				StartCol: startCol,
				EndCol:   startCol + queryLen,
			})
			col = startCol + queryLen
			rest = rest[idx+len(needle):]
		}
	}
	return matches
}

// State tracks an active search: the query, its matches, and which
// match is current. Navigation wraps around the document.
type State struct {
	query         string
	caseSensitive bool
	matches       []Match
	current       int
}

// NewState runs the query and positions the current match at the first
// match at or after the given position, wrapping to the first match if
// none follows it.
func NewState(lines Lines, query string, caseSensitive bool, from buffer.Position) *State {
	s := &State{
		query:         query,
		caseSensitive: caseSensitive,
		matches:       Find(lines, query, caseSensitive),
		current:       -1,
	}
	if len(s.matches) == 0 {
		return s
	}
	s.current = 0
	for i, m := range s.matches {
		if !m.Span().Start.Before(from) {
			s.current = i
			break
		}
	}
	return s
}

// Query returns the search query.
func (s *State) Query() string {
	return s.query
}

// CaseSensitive reports whether the search is case sensitive.
func (s *State) CaseSensitive() bool {
	return s.caseSensitive
}

// Matches returns all matches in document order.
func (s *State) Matches() []Match {
	return s.matches
}

// HasMatches reports whether the query matched anywhere.
func (s *State) HasMatches() bool {
	return len(s.matches) > 0
}

// Current returns the current match, or false if there are no matches.
func (s *State) Current() (Match, bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return Match{}, false
	}
	return s.matches[s.current], true
}

// Next advances to the next match, wrapping past the last match to the
// first.
func (s *State) Next() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	s.current = (s.current + 1) % len(s.matches)
	return s.matches[s.current], true
}

// Prev moves to the previous match, wrapping past the first match to
// the last.
func (s *State) Prev() (Match, bool) {
	if len(s.matches) == 0 {
		return Match{}, false
	}
	s.current = (s.current - 1 + len(s.matches)) % len(s.matches)
	return s.matches[s.current], true
}
