// Package ini parses the INI subset used by .cfg files into a flat
// key/value map scoped by section.
//
// The dialect is deliberately small: `[name]` section headers, `key = value`
// pairs, `;` line comments and blank lines. There are no multi-line values,
// no quoting or escape rules, no nested sections, and duplicate keys follow
// last-write-wins. Anything the parser does not recognize is skipped, never
// an error — the files being audited are not under our control.
//
// # Key model
//
// Every value is addressed by a Key, the pair of its section name and its
// property name. Keys compare by value, so maps produced from different
// files can be matched directly:
//
//	m := ini.Read(f)
//	v, ok := m[ini.Key{Section: "server", Property: "port"}]
//
// Pairs that appear before any section header are filed under the implicit
// section "root".
package ini
