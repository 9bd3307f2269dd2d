package model

// City is a normalized city row scoped to one state.  Cities are created
// lazily the first time a venue or artist references a (name, state) pair
// that does not exist yet; the pair is unique by convention with a
// case-insensitive match on name, not by a database constraint.
type City struct {
	ID      uint64 // cities.id
	Name    string // cities.name
	StateID uint64 // cities.state_id
}
