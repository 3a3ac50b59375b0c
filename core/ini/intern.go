package ini

// Interner canonicalizes section names within one parse session.
//
// A file that reopens the same section (`[a] ... [b] ... [a]`) would
// otherwise carry one string copy per header occurrence; the interner maps
// every occurrence of a name to a single shared string. Key equality does
// not depend on this — Key compares section names by value — so interning
// is purely about not fragmenting what is logically one section identity.
type Interner struct {
	names map[string]string
}

// NewInterner creates an empty interner for a single parse session.
func NewInterner() *Interner {
	return &Interner{names: make(map[string]string)}
}

// Intern returns the canonical instance of name, registering it on first use.
func (in *Interner) Intern(name string) string {
	if canonical, ok := in.names[name]; ok {
		return canonical
	}
	in.names[name] = name
	return name
}

// Len returns the number of distinct section names seen so far.
func (in *Interner) Len() int {
	return len(in.names)
}
