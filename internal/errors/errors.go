// Package errors implements the error kinds from spec.md §7, each rendered
// with source context in the style of the teacher's CompilerError: a
// file/line/column header, the offending source line, and a caret.
package errors

import (
	"fmt"
	"strings"

	"github.com/dicescript/dicescript/internal/lexer"
)

// Kind identifies which of spec.md §7's nine error kinds an Error is.
type Kind string

const (
	KindParse     Kind = "ParseError"
	KindType      Kind = "TypeError"
	KindArity     Kind = "ArityError"
	KindDomain    Kind = "DomainError"
	KindName      Kind = "NameError"
	KindKey       Kind = "KeyError"
	KindRng       Kind = "RngError"
	KindIo        Kind = "IoError"
	KindCancelled Kind = "Cancelled"
)

// Error is the single error type the engine raises; Kind discriminates the
// spec's error taxonomy so a host can switch on it without string matching.
type Error struct {
	Kind     Kind
	Message  string
	Pos      lexer.Position
	Source   string
	Category string // parser-only: "unexpected token", "unterminated string", ...
}

// New creates an Error. Source may be empty when no source text applies
// (an error raised without a known position, e.g. an RNG restore failure).
func New(kind Kind, pos lexer.Position, source, message string) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos, Source: source}
}

// NewParse creates a ParseError carrying a human-readable category, per
// spec.md §4.1.
func NewParse(pos lexer.Position, source, category, message string) *Error {
	return &Error{Kind: KindParse, Message: message, Pos: pos, Source: source, Category: category}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the error with a source excerpt and caret. When color is
// true, ANSI codes highlight the caret and message, matching the teacher's
// CompilerError.Format(color bool).
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s at %d:%d (byte %d)\n", e.Kind, e.Pos.Line, e.Pos.Column, e.Pos.Offset))

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+max0(e.Pos.Column-1)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	if e.Category != "" {
		sb.WriteString(e.Category)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
