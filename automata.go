package arith

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// State is a state of an Automaton. States have no meaning outside of the
// automaton they belong to.
type State int

// edge is the key of the transition relation: a state and an input label.
type edge struct {
	from  State
	label rune
}

// An Automaton is a nondeterministic finite automaton (NFA) over runes.
//
// Automata are not compiled to DFAs. Instead, an Automaton holds a set of
// currently active states (the live set), which is replaced by the set of
// successor states every time a rune is applied. Multiple destinations for a
// single (state, label) pair are legal and are the source of nondeterminism.
// There are no epsilon-moves: every transition consumes exactly one rune.
//
// Clients construct an automaton with AddState and AddTransition, and then
// run it with
//
//	a.Reset()
//	for _, r := range input {
//	    if !a.HasTransitions(r) { break }
//	    a.Apply(r)
//	}
//	matched := a.Accepts()
//
// The state tables must not be changed any more once an automaton has been
// cloned (see Clone).
type Automaton struct {
	start       *treeset.Set          // start states
	accept      *treeset.Set          // accepting states
	transitions map[edge]*treeset.Set // (state, label) -> destination states
	live        *treeset.Set          // currently active states
}

// NewAutomaton creates an empty automaton. It has neither states nor
// transitions and will not accept anything.
func NewAutomaton() *Automaton {
	return &Automaton{
		start:       treeset.NewWithIntComparator(),
		accept:      treeset.NewWithIntComparator(),
		transitions: make(map[edge]*treeset.Set),
		live:        treeset.NewWithIntComparator(),
	}
}

// AddState registers state s as a start state and/or as an accepting state.
// Calling AddState more than once for the same state is harmless. States used
// only as transition targets need not be added.
func (a *Automaton) AddState(s State, isStart, isAccept bool) {
	if isStart {
		a.start.Add(int(s))
	}
	if isAccept {
		a.accept.Add(int(s))
	}
}

// AddTransition adds state to to the set of destinations for (from, label).
// Several calls for the same (from, label) with different destinations
// accumulate.
func (a *Automaton) AddTransition(from State, label rune, to State) {
	e := edge{from: from, label: label}
	dest, ok := a.transitions[e]
	if !ok {
		dest = treeset.NewWithIntComparator()
		a.transitions[e] = dest
	}
	dest.Add(int(to))
}

// Reset sets the live set to a copy of the start states. It has to be called
// before running the automaton over a new input.
func (a *Automaton) Reset() {
	a.live = treeset.NewWithIntComparator(a.start.Values()...)
}

// Apply moves the automaton by one rune. The new live set is the union of
// the destinations of every live state for label r. It may be empty, in which
// case the automaton is stuck until the next call to Reset.
func (a *Automaton) Apply(r rune) {
	next := treeset.NewWithIntComparator()
	a.live.Each(func(_ int, s interface{}) {
		if dest, ok := a.transitions[edge{from: State(s.(int)), label: r}]; ok {
			next.Add(dest.Values()...)
		}
	})
	a.live = next
}

// Accepts is true if at least one of the live states is an accepting state.
func (a *Automaton) Accepts() bool {
	return a.live.Any(func(_ int, s interface{}) bool {
		return a.accept.Contains(s)
	})
}

// HasTransitions is true if at least one live state has a transition for
// label r. The live set is not changed.
func (a *Automaton) HasTransitions(r rune) bool {
	return a.live.Any(func(_ int, s interface{}) bool {
		dest, ok := a.transitions[edge{from: State(s.(int)), label: r}]
		return ok && !dest.Empty()
	})
}

// Clone returns an automaton which shares the state and transition tables
// with a, but has a live set of its own. Clones may be run independently of
// each other, e.g. from different goroutines.
//
// Neither a nor the clone may be extended with states or transitions
// afterwards.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		start:       a.start,
		accept:      a.accept,
		transitions: a.transitions,
		live:        treeset.NewWithIntComparator(),
	}
}

// Live returns the live states in ascending order.
func (a *Automaton) Live() []State {
	states := make([]State, 0, a.live.Size())
	a.live.Each(func(_ int, s interface{}) {
		states = append(states, State(s.(int)))
	})
	return states
}

// Simple stringer for debugging purposes.
func (a *Automaton) String() string {
	if a == nil {
		return "[nil automaton]"
	}
	var sb strings.Builder
	sb.WriteString("{")
	for i, s := range a.Live() {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(fmt.Sprintf("%d", s))
	}
	sb.WriteString(fmt.Sprintf("} accept=%v", a.Accepts()))
	return sb.String()
}
