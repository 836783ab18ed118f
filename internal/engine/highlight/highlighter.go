package highlight

import (
	"sort"
	"sync"
	"unicode"
)

// Highlighter tokenizes a range of lines. Line numbers are absolute
// buffer line indices; lines[i] corresponds to line startLine+i.
// Implementations must be safe for concurrent use.
type Highlighter interface {
	// Language returns the language identifier this highlighter handles.
	Language() string

	// Highlight tokenizes the given lines and returns styled spans.
	Highlight(startLine int, lines []string) []Span
}

// Registry maps language identifiers to highlighters.
type Registry struct {
	mu           sync.RWMutex
	highlighters map[string]Highlighter
}

// NewRegistry creates an empty highlighter registry.
func NewRegistry() *Registry {
	return &Registry{highlighters: make(map[string]Highlighter)}
}

// Register adds a highlighter, replacing any previous registration for
// the same language.
func (r *Registry) Register(h Highlighter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.highlighters[h.Language()] = h
}

// Lookup returns the highlighter for a language, or nil if none is
// registered.
func (r *Registry) Lookup(language string) Highlighter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.highlighters[language]
}

// Languages returns the registered language identifiers in sorted order.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	langs := make([]string, 0, len(r.highlighters))
	for lang := range r.highlighters {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultRegistry returns a registry with the built-in highlighters.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewSimpleHighlighter("go", goKeywords))
	r.Register(NewSimpleHighlighter("plain", nil))
	return r
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// SimpleHighlighter is a line-oriented scanner that recognizes
// keywords, string and rune literals, numbers, and line comments. It
// does not track state across lines, so multi-line constructs are
// highlighted line by line.
type SimpleHighlighter struct {
	language string
	keywords map[string]bool
}

// NewSimpleHighlighter creates a highlighter for the given language
// with the given keyword set. A nil keyword set yields a highlighter
// that only recognizes literals and comments.
func NewSimpleHighlighter(language string, keywords map[string]bool) *SimpleHighlighter {
	return &SimpleHighlighter{language: language, keywords: keywords}
}

// Language returns the language identifier.
func (h *SimpleHighlighter) Language() string {
	return h.language
}

// Highlight tokenizes the given lines.
func (h *SimpleHighlighter) Highlight(startLine int, lines []string) []Span {
	var spans []Span
	for i, line := range lines {
		spans = append(spans, h.highlightLine(startLine+i, []rune(line))...)
	}
	return spans
}

func (h *SimpleHighlighter) highlightLine(lineNum int, line []rune) []Span {
	var spans []Span
	col := 0
	for col < len(line) {
		ch := line[col]
		switch {
		case ch == '/' && col+1 < len(line) && line[col+1] == '/':
			spans = append(spans, Span{Line: lineNum, StartCol: col, EndCol: len(line), Type: TokenComment})
			return spans
		case ch == '"' || ch == '\'' || ch == '`':
			end := scanString(line, col, ch)
			spans = append(spans, Span{Line: lineNum, StartCol: col, EndCol: end, Type: TokenString})
			col = end
		case unicode.IsDigit(ch):
			end := scanNumber(line, col)
			spans = append(spans, Span{Line: lineNum, StartCol: col, EndCol: end, Type: TokenNumber})
			col = end
		case isIdentStart(ch):
			end := scanIdent(line, col)
			word := string(line[col:end])
			typ := TokenIdentifier
			if h.keywords[word] {
				typ = TokenKeyword
			}
			spans = append(spans, Span{Line: lineNum, StartCol: col, EndCol: end, Type: typ})
			col = end
		default:
			col++
		}
	}
	return spans
}

// scanString scans a quoted literal starting at col, honoring backslash
// escapes for " and ' quotes. Returns the column one past the closing
// quote, or the end of line for unterminated literals.
func scanString(line []rune, col int, quote rune) int {
	i := col + 1
	for i < len(line) {
		if line[i] == '\\' && quote != '`' && i+1 < len(line) {
			i += 2
			continue
		}
		if line[i] == quote {
			return i + 1
		}
		i++
	}
	return len(line)
}

func scanNumber(line []rune, col int) int {
	i := col
	for i < len(line) && (unicode.IsDigit(line[i]) || line[i] == '.' || line[i] == '_' ||
		line[i] == 'x' || line[i] == 'X' || isHexLetter(line[i])) {
		i++
	}
	return i
}

func scanIdent(line []rune, col int) int {
	i := col
	for i < len(line) && isIdentPart(line[i]) {
		i++
	}
	return i
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isHexLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
