package innerdoc

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// AnnotationParser is the strict extraction strategy. It scans the unit's
// documentation prelude, the leading run of whitespace, comments and inner
// attributes before the unit's body, and collects every inner documentation
// annotation found there: `//!` line comments, `/*! ... */` block comments
// and `#![doc = "..."]` attributes.
//
// Fragment text is literal. Nothing is stripped after a `//!` marker, block
// comment interiors keep their newlines, and attribute values are the
// unescaped string literal. Blank source lines contribute nothing; the
// fragments of all three forms interleave in source order and are joined
// with newlines exactly as collected.
//
// Unlike LineScanner, malformed input fails with a *ParseError instead of
// degrading: unterminated block comments, unterminated or malformed
// attributes, doc attributes whose value is not a string literal, and
// invalid string escapes are all reported with their line number.
type AnnotationParser struct{}

// Extract implements Extractor.
func (AnnotationParser) Extract(src string) (string, error) {
	src = strings.TrimPrefix(src, "\uFEFF")
	s := &preludeScanner{src: src, line: 1}
	if rest, ok := strings.CutPrefix(src, "#!"); ok {
		// A leading #! is a shebang line unless it opens an attribute.
		if !strings.HasPrefix(strings.TrimLeft(rest, " \t"), "[") {
			s.restOfLine()
		}
	}

	var docs []string
	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		switch {
		case s.consume("//!"):
			docs = append(docs, s.restOfLine())
		case s.consume("//"):
			s.restOfLine()
		case s.consume("/*!"):
			body, err := s.blockComment()
			if err != nil {
				return "", err
			}
			docs = append(docs, body)
		case s.consume("/*"):
			if _, err := s.blockComment(); err != nil {
				return "", err
			}
		case s.consume("#!"):
			text, ok, err := s.innerAttribute()
			if err != nil {
				return "", err
			}
			if ok {
				docs = append(docs, text)
			}
		default:
			// Body of the unit: inner documentation can no longer appear.
			return strings.Join(docs, "\n"), nil
		}
	}
	return strings.Join(docs, "\n"), nil
}

// preludeScanner walks the documentation prelude of a source unit, tracking
// the current line for diagnostics.
type preludeScanner struct {
	src  string
	pos  int
	line int
}

func (s *preludeScanner) eof() bool { return s.pos >= len(s.src) }

func (s *preludeScanner) advance(n int) {
	end := s.pos + n
	if end > len(s.src) {
		end = len(s.src)
	}
	for ; s.pos < end; s.pos++ {
		if s.src[s.pos] == '\n' {
			s.line++
		}
	}
}

func (s *preludeScanner) consume(prefix string) bool {
	if !strings.HasPrefix(s.src[s.pos:], prefix) {
		return false
	}
	s.advance(len(prefix))
	return true
}

// consumeWord consumes word only when it is not followed by another
// identifier character, so "doc" does not match "docsrs".
func (s *preludeScanner) consumeWord(word string) bool {
	rest := s.src[s.pos:]
	if !strings.HasPrefix(rest, word) {
		return false
	}
	if len(rest) > len(word) && isIdentByte(rest[len(word)]) {
		return false
	}
	s.advance(len(word))
	return true
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func (s *preludeScanner) skipSpace() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.advance(1)
		default:
			return
		}
	}
}

// restOfLine consumes through the next newline and returns the consumed text
// without the line terminator.
func (s *preludeScanner) restOfLine() string {
	start := s.pos
	i := strings.IndexByte(s.src[s.pos:], '\n')
	if i < 0 {
		s.advance(len(s.src) - s.pos)
		return strings.TrimSuffix(s.src[start:], "\r")
	}
	text := strings.TrimSuffix(s.src[start:s.pos+i], "\r")
	s.advance(i + 1)
	return text
}

// blockComment consumes up to and including the close delimiter matching an
// already-consumed opener, honoring nesting, and returns the interior text.
func (s *preludeScanner) blockComment() (string, error) {
	open := s.line
	start := s.pos
	depth := 1
	for !s.eof() {
		switch {
		case s.consume("/*"):
			depth++
		case s.consume("*/"):
			depth--
			if depth == 0 {
				return s.src[start : s.pos-2], nil
			}
		default:
			s.advance(1)
		}
	}
	return "", &ParseError{Line: open, Msg: "unterminated block comment"}
}

// innerAttribute parses an already-opened `#![...]` attribute. It returns
// the documentation text and true when the attribute is a doc string, and
// skips any other inner attribute.
func (s *preludeScanner) innerAttribute() (string, bool, error) {
	open := s.line
	s.skipSpace()
	if !s.consume("[") {
		return "", false, &ParseError{Line: open, Msg: "expected '[' after '#!'"}
	}
	s.skipSpace()
	if !s.consumeWord("doc") {
		return "", false, s.skipAttribute(open)
	}
	s.skipSpace()
	if !s.consume("=") {
		// Forms like #![doc(hidden)] carry no inline text.
		return "", false, s.skipAttribute(open)
	}
	s.skipSpace()
	val, err := s.stringLit()
	if err != nil {
		return "", false, err
	}
	s.skipSpace()
	if !s.consume("]") {
		return "", false, &ParseError{Line: open, Msg: "malformed doc attribute"}
	}
	return val, true, nil
}

// skipAttribute consumes the remainder of an attribute through its closing
// bracket. String literals inside are skipped so that brackets in them do
// not count toward nesting.
func (s *preludeScanner) skipAttribute(open int) error {
	depth := 1
	for !s.eof() {
		switch s.src[s.pos] {
		case '"':
			s.advance(1)
			if err := s.skipQuoted(open); err != nil {
				return err
			}
		case '[':
			depth++
			s.advance(1)
		case ']':
			depth--
			s.advance(1)
			if depth == 0 {
				return nil
			}
		default:
			s.advance(1)
		}
	}
	return &ParseError{Line: open, Msg: "unterminated inner attribute"}
}

// skipQuoted consumes a string literal whose opening quote has already been
// consumed, without interpreting its contents.
func (s *preludeScanner) skipQuoted(open int) error {
	for !s.eof() {
		switch s.src[s.pos] {
		case '\\':
			s.advance(2)
		case '"':
			s.advance(1)
			return nil
		default:
			s.advance(1)
		}
	}
	return &ParseError{Line: open, Msg: "unterminated string literal"}
}

// stringLit parses a plain or raw string literal and returns its value with
// escape sequences resolved.
func (s *preludeScanner) stringLit() (string, error) {
	open := s.line
	if !s.eof() && s.src[s.pos] == 'r' {
		return s.rawStringLit(open)
	}
	if !s.consume(`"`) {
		return "", &ParseError{Line: open, Msg: "doc attribute value is not a string literal"}
	}
	var b strings.Builder
	for !s.eof() {
		c := s.src[s.pos]
		switch c {
		case '"':
			s.advance(1)
			return b.String(), nil
		case '\\':
			s.advance(1)
			esc, err := s.unescape(open)
			if err != nil {
				return "", err
			}
			b.WriteString(esc)
		default:
			b.WriteByte(c)
			s.advance(1)
		}
	}
	return "", &ParseError{Line: open, Msg: "unterminated string literal"}
}

// rawStringLit parses r"..." and r#"..."# literals, whose contents are
// taken verbatim.
func (s *preludeScanner) rawStringLit(open int) (string, error) {
	s.advance(1)
	hashes := 0
	for !s.eof() && s.src[s.pos] == '#' {
		hashes++
		s.advance(1)
	}
	if !s.consume(`"`) {
		return "", &ParseError{Line: open, Msg: "doc attribute value is not a string literal"}
	}
	terminator := `"` + strings.Repeat("#", hashes)
	end := strings.Index(s.src[s.pos:], terminator)
	if end < 0 {
		return "", &ParseError{Line: open, Msg: "unterminated raw string literal"}
	}
	val := s.src[s.pos : s.pos+end]
	s.advance(end + len(terminator))
	return val, nil
}

// unescape resolves one escape sequence whose backslash has already been
// consumed.
func (s *preludeScanner) unescape(open int) (string, error) {
	if s.eof() {
		return "", &ParseError{Line: open, Msg: "unterminated string literal"}
	}
	c := s.src[s.pos]
	s.advance(1)
	switch c {
	case 'n':
		return "\n", nil
	case 'r':
		return "\r", nil
	case 't':
		return "\t", nil
	case '0':
		return "\x00", nil
	case '\\', '"', '\'':
		return string(c), nil
	case '\n':
		// A backslash before a newline elides the newline and the
		// indentation that follows it.
		s.skipSpace()
		return "", nil
	case 'x':
		if s.pos+2 > len(s.src) {
			return "", &ParseError{Line: open, Msg: `invalid \x escape`}
		}
		v, err := strconv.ParseUint(s.src[s.pos:s.pos+2], 16, 8)
		if err != nil {
			return "", &ParseError{Line: open, Msg: `invalid \x escape`}
		}
		s.advance(2)
		return string(rune(v)), nil
	case 'u':
		if !s.consume("{") {
			return "", &ParseError{Line: open, Msg: `invalid \u escape`}
		}
		end := strings.IndexByte(s.src[s.pos:], '}')
		if end < 1 || end > 6 {
			return "", &ParseError{Line: open, Msg: `invalid \u escape`}
		}
		v, err := strconv.ParseUint(s.src[s.pos:s.pos+end], 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return "", &ParseError{Line: open, Msg: `invalid \u escape`}
		}
		s.advance(end + 1)
		return string(rune(v)), nil
	}
	return "", &ParseError{Line: open, Msg: fmt.Sprintf("unknown escape \\%c", c)}
}
