package store

// Access-control policy: pure predicates over the acting user's
// permission set. Every mutating store operation checks the relevant
// predicate itself and returns ErrForbidden on denial, so the store is
// safe regardless of caller discipline.

// CanManageUsers reports whether actor may add, edit or delete users.
func CanManageUsers(actor *User) bool {
	return actor != nil && actor.Has(PermAdmin)
}

// CanEditContent reports whether actor may change the website document.
func CanEditContent(actor *User) bool {
	return actor != nil && (actor.Has(PermAdmin) || actor.Has(PermEditor))
}

// CanChangePassword reports whether actor may set the password of the
// user with targetID. Admins may change anyone's; everyone may change
// their own.
func CanChangePassword(actor *User, targetID string) bool {
	if actor == nil {
		return false
	}
	return actor.Has(PermAdmin) || actor.ID == targetID
}
