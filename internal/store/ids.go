package store

import "github.com/google/uuid"

// Id prefixes per entity kind.
const (
	KindUser = "user"
	KindJob  = "job"
)

// IDFunc returns a new identifier for an entity of the given kind.
type IDFunc func(kind string) string

// UUIDs generates "<kind>-<uuid>" identifiers. They do not depend on
// collection size, so they stay unique if entities are ever removed.
func UUIDs(kind string) string {
	return kind + "-" + uuid.NewString()
}
