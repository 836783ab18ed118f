// Package highlight provides the syntax-highlighting collaborator for
// the editing engine.
//
// Highlighting runs off the critical edit path: the engine emits a
// versioned request for the visible line range, a highlighter tokenizes
// it asynchronously, and results are merged back only when their version
// still matches the buffer. Stale results are discarded; rendering falls
// back to unstyled text for lines that have not been highlighted yet.
package highlight

// TokenType is the semantic style of a token span. It doubles as the
// style id handed to the renderer.
type TokenType uint8

// Token types assigned by highlighters.
const (
	TokenNone TokenType = iota
	TokenKeyword
	TokenString
	TokenNumber
	TokenComment
	TokenIdentifier
	TokenOperator
)

// String returns a string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenKeyword:
		return "keyword"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenComment:
		return "comment"
	case TokenIdentifier:
		return "identifier"
	case TokenOperator:
		return "operator"
	default:
		return "none"
	}
}

// Span is a styled sub-range of one line. Columns are rune offsets,
// StartCol inclusive, EndCol exclusive.
type Span struct {
	Line     int
	StartCol int
	EndCol   int
	Type     TokenType
}
