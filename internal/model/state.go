package model

// State is immutable reference data identifying a US state.  Rows are
// pre-seeded by migrations; this service never creates or modifies them.
//
// Fields:
//  ID   – primary key identifier.
//  Name – full state name, unique.
//  Code – two-letter postal code, unique.
type State struct {
	ID   uint64 // states.id
	Name string // states.name
	Code string // states.code
}
