package markup

import "strings"

// scanner is a byte cursor over the input. Markup delimiters are ASCII, so
// byte-wise scanning never splits a UTF-8 sequence at a stop character.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

// upTo consumes and returns everything before the next byte found in stops,
// or the rest of the input when none is found.
func (s *scanner) upTo(stops string) string {
	start := s.pos
	if i := strings.IndexAny(s.input[s.pos:], stops); i >= 0 {
		s.pos += i
	} else {
		s.pos = len(s.input)
	}
	return s.input[start:s.pos]
}

func (s *scanner) peek() (byte, bool) {
	if s.atEnd() {
		return 0, false
	}
	return s.input[s.pos], true
}

func (s *scanner) advance() {
	if !s.atEnd() {
		s.pos++
	}
}

// Scan splits input into its literal text and the ordered stream of tags,
// without checking that the tags balance.
func Scan(input string) ([]Tag, string) {
	sc := &scanner{input: input}
	var out strings.Builder
	out.Grow(len(input))

	var tags []Tag
	for !sc.atEnd() {
		out.WriteString(sc.upTo("<"))
		if sc.atEnd() {
			break
		}

		source := sc.pos
		sc.advance()
		token := sc.upTo("<>")

		// An unterminated token is literal text; the next loop picks up
		// the '<' that interrupted it.
		if next, ok := sc.peek(); !ok || next == '<' {
			out.WriteByte('<')
			out.WriteString(token)
			continue
		}
		sc.advance()

		tags = append(tags, parseTag(token, out.Len(), source))
	}

	return tags, out.String()
}
