package ini

import (
	"bufio"
	"io"
)

// RootSection is the implicit section for pairs that appear before any
// `[name]` header.
const RootSection = "root"

// Key identifies one configurable value: a property inside a section.
// Keys are comparable; two Keys are equal iff both their section names and
// their property names match exactly (case-sensitive).
type Key struct {
	Section  string
	Property string
}

// String renders the key as "section.property".
func (k Key) String() string {
	return k.Section + "." + k.Property
}

// Map holds the flattened contents of one parsed document.
type Map map[Key]string

// Read parses one document into a Map.
//
// Reading is best-effort: malformed lines are skipped, and a read error on
// the underlying stream ends the parse with whatever was collected so far
// rather than failing. Read never returns less than a usable map; callers
// that need open-time errors surfaced must open the stream themselves.
func Read(r io.Reader) Map {
	in := NewInterner()
	section := in.Intern(RootSection)
	m := make(Map)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		switch l := parseLine(scanner.Text()); l.kind {
		case lineSection:
			section = in.Intern(l.section)
		case linePair:
			m[Key{Section: section, Property: l.key}] = l.value
		}
	}

	return m
}
