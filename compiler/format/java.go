// Package format canonicalizes generated Java source text.
//
// The formatter is deliberately small: generated catalogs use a fixed subset
// of the language, so layout only depends on brace nesting and comment
// boundaries. Before layout, the text is checked for balanced brackets and
// terminated comments and literals; any defect is reported as a
// *catalogen.SyntaxError carrying the 1-based position of the offending
// character.
package format

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/syssam/catalogen"
)

// Default layout settings, matching the AOSP flavour of google-java-format.
const (
	DefaultIndent   = 4
	DefaultMaxWidth = 100
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithIndent sets the number of spaces per nesting level.
func WithIndent(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.indent = n
		}
	}
}

// WithMaxWidth sets the column limit used when collapsing single-line Javadoc.
func WithMaxWidth(n int) Option {
	return func(f *Formatter) {
		if n > 0 {
			f.maxWidth = n
		}
	}
}

// Formatter re-indents Java source. It holds no mutable state and is safe
// for concurrent use.
type Formatter struct {
	indent   int
	maxWidth int
}

// NewJavaFormatter returns a Formatter with the default layout.
func NewJavaFormatter(opts ...Option) *Formatter {
	f := &Formatter{indent: DefaultIndent, maxWidth: DefaultMaxWidth}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type lexState uint8

const (
	stateCode lexState = iota
	stateLineComment
	stateBlockComment
	stateString
	stateChar
)

// line is one trimmed source line with its nesting depth.
type line struct {
	text    string
	depth   int
	comment bool // starts inside a block comment
}

type position struct {
	r         rune
	line, col int
}

var closers = map[rune]rune{'}': '{', ')': '(', ']': '['}

// Format returns the canonical layout of src:
//
//   - every line is re-indented by brace depth;
//   - block comment continuation lines are aligned under the opening "/*";
//   - runs of blank lines collapse to one, and blank lines at the start of
//     the file or before a closing brace are dropped;
//   - a three-line Javadoc holding a single sentence becomes "/** text */"
//     when it fits the column limit;
//   - the result ends with exactly one newline.
func (f *Formatter) Format(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", catalogen.NewSyntaxError(0, 0, "empty source", nil)
	}
	lines, err := scan(strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n"))
	if err != nil {
		return "", err
	}
	return f.layout(lines), nil
}

// scan checks the structure of the source and records the depth of each line.
func scan(raw []string) ([]line, error) {
	var (
		state   = stateCode
		stack   []position
		braces  int
		pending position // start of the open comment or literal
		lines   = make([]line, 0, len(raw))
	)
	for n, text := range raw {
		trimmed := strings.TrimSpace(text)
		l := line{text: trimmed, depth: braces, comment: state == stateBlockComment}
		if state == stateCode && strings.HasPrefix(trimmed, "}") && braces > 0 {
			l.depth--
		}
		lines = append(lines, l)

		runes := []rune(text)
		for i := 0; i < len(runes); i++ {
			r := runes[i]
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			switch state {
			case stateLineComment:
			case stateBlockComment:
				if r == '*' && next == '/' {
					state = stateCode
					i++
				}
			case stateString, stateChar:
				quote := '"'
				if state == stateChar {
					quote = '\''
				}
				switch r {
				case '\\':
					i++
				case quote:
					state = stateCode
				}
			case stateCode:
				pos := position{r: r, line: n + 1, col: i + 1}
				switch r {
				case '/':
					switch next {
					case '/':
						state = stateLineComment
					case '*':
						state, pending = stateBlockComment, pos
						i++
					}
				case '*':
					// "*/" outside a comment is a closer whose comment ended early.
					// "*/*" and "*//" open a comment right after a multiplication.
					if next == '/' && (i+2 >= len(runes) || (runes[i+2] != '*' && runes[i+2] != '/')) {
						return nil, syntaxError(pos, `unexpected "*/"`, trimmed)
					}
				case '"':
					state, pending = stateString, pos
				case '\'':
					state, pending = stateChar, pos
				case '{', '(', '[':
					stack = append(stack, pos)
					if r == '{' {
						braces++
					}
				case '}', ')', ']':
					if len(stack) == 0 || stack[len(stack)-1].r != closers[r] {
						return nil, syntaxError(pos, fmt.Sprintf("unexpected %q", r), trimmed)
					}
					stack = stack[:len(stack)-1]
					if r == '}' {
						braces--
					}
				}
			}
		}
		switch state {
		case stateLineComment:
			state = stateCode
		case stateString:
			return nil, syntaxError(pending, "unterminated string literal", trimmed)
		case stateChar:
			return nil, syntaxError(pending, "unterminated character literal", trimmed)
		}
	}
	if state == stateBlockComment {
		return nil, syntaxError(pending, "unterminated comment", raw[pending.line-1])
	}
	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, syntaxError(open, fmt.Sprintf("unclosed %q", open.r), raw[open.line-1])
	}
	return lines, nil
}

func syntaxError(pos position, msg, near string) error {
	return catalogen.NewSyntaxError(pos.line, pos.col, msg, errors.Newf("near %q", strings.TrimSpace(near)))
}

func (f *Formatter) layout(lines []line) string {
	var (
		b       strings.Builder
		blank   bool
		started bool
	)
	for i := 0; i < len(lines); i++ {
		l := lines[i]
		if l.text == "" {
			blank = true
			continue
		}
		text := l.text
		if collapsed, ok := f.collapse(lines, i); ok {
			text = collapsed
			i += 2
		} else if l.comment && strings.HasPrefix(text, "*") {
			text = " " + text
		}
		if blank && started && !strings.HasPrefix(text, "}") {
			b.WriteByte('\n')
		}
		blank, started = false, true
		b.WriteString(strings.Repeat(" ", l.depth*f.indent))
		b.WriteString(text)
		b.WriteByte('\n')
	}
	return b.String()
}

// collapse folds lines[i:i+3] into a one-line Javadoc if they hold a single
// sentence and the result fits the column limit.
func (f *Formatter) collapse(lines []line, i int) (string, bool) {
	if i+2 >= len(lines) || lines[i].comment || lines[i].text != "/**" {
		return "", false
	}
	body, end := lines[i+1], lines[i+2]
	if !body.comment || !end.comment || body.text == "*/" || !strings.HasPrefix(body.text, "*") || end.text != "*/" {
		return "", false
	}
	text := strings.TrimSpace(strings.TrimPrefix(body.text, "*"))
	if text == "" || strings.HasPrefix(text, "@") || strings.HasSuffix(text, "*/") {
		return "", false
	}
	collapsed := "/** " + text + " */"
	if lines[i].depth*f.indent+len(collapsed) > f.maxWidth {
		return "", false
	}
	return collapsed, true
}
