package domain

// Scope selects which owners a scan covers: every owner in the store, or a
// single one. The zero value is the all-owners scope.
type Scope struct {
	ownerID string
}

func ScopeAll() Scope {
	return Scope{}
}

func ScopeOwner(ownerID string) Scope {
	return Scope{ownerID: ownerID}
}

func (s Scope) All() bool {
	return s.ownerID == ""
}

func (s Scope) OwnerID() string {
	return s.ownerID
}

// Key identifies the scope for in-flight guarding and logging.
func (s Scope) Key() string {
	if s.All() {
		return "all"
	}
	return "owner:" + s.ownerID
}
