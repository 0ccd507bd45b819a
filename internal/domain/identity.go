package domain

import "fmt"

// Identity distinguishes records that have not been persisted yet from
// records with a store-assigned id. The zero value is the "new record"
// state.
type Identity struct {
	id int64
}

// NewIdentity returns the not-yet-persisted identity.
func NewIdentity() Identity {
	return Identity{}
}

// ExistingIdentity wraps a store-assigned id. Ids are always positive.
func ExistingIdentity(id int64) Identity {
	if id <= 0 {
		return Identity{}
	}
	return Identity{id: id}
}

// IsNew reports whether the record has not been persisted yet.
func (i Identity) IsNew() bool {
	return i.id == 0
}

// Value returns the store-assigned id. It panics for new identities;
// callers must branch on IsNew first.
func (i Identity) Value() int64 {
	if i.id == 0 {
		panic("domain: Value called on new identity")
	}
	return i.id
}

func (i Identity) String() string {
	if i.IsNew() {
		return "(new)"
	}
	return fmt.Sprintf("%d", i.id)
}
