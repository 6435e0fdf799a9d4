package catalog

import "github.com/google/uuid"

// ResolveScope decides which shops a listing may touch.
//
// A requested shop the caller is authorized for narrows the scope to that
// shop alone. Anything else, including a requested shop outside the caller's
// set, falls back to the full authorized set without an error.
func ResolveScope(userShopIDs []uuid.UUID, requested *uuid.UUID) []uuid.UUID {
	if requested != nil {
		for _, id := range userShopIDs {
			if id == *requested {
				return []uuid.UUID{id}
			}
		}
	}
	scope := make([]uuid.UUID, len(userShopIDs))
	copy(scope, userShopIDs)
	return scope
}
