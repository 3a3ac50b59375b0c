package ini

import "strings"

// lineKind classifies a single input line.
type lineKind int

const (
	// lineBlank is an empty or whitespace-only line, or one left empty
	// after comment stripping.
	lineBlank lineKind = iota
	// lineSection is a `[name]` header.
	lineSection
	// linePair is a `key = value` assignment.
	linePair
	// lineOther is anything else; such lines are skipped, not rejected.
	lineOther
)

// line is the result of classifying one raw input line.
type line struct {
	kind lineKind

	// section name for lineSection; the text strictly between the
	// brackets, not trimmed.
	section string

	// trimmed key and value for linePair. value may be "".
	key   string
	value string
}

// parseLine classifies one raw line of input. The rules apply in order:
// whitespace-only lines are blank; everything from the first ';' on is a
// comment and discarded; a trimmed line bracketed by '[' and ']' is a
// section header, even if it contains '='; otherwise the first '=' splits
// key from value with both sides trimmed; a line with no '=' is ignored.
func parseLine(raw string) line {
	if idx := strings.IndexByte(raw, ';'); idx >= 0 {
		raw = raw[:idx]
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return line{kind: lineBlank}
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return line{kind: lineSection, section: trimmed[1 : len(trimmed)-1]}
	}

	if idx := strings.IndexByte(trimmed, '='); idx >= 0 {
		return line{
			kind:  linePair,
			key:   strings.TrimSpace(trimmed[:idx]),
			value: strings.TrimSpace(trimmed[idx+1:]),
		}
	}

	return line{kind: lineOther}
}
