// Package ports defines the interfaces between the application layer
// and infrastructure.
package ports

import (
	"context"

	"github.com/jn0w/Lindsey/domain/memory"
)

// MemoryRepository is the boundary to the backing document store.
//
// Implementations reject malformed identifiers with a validation error
// before any lookup is attempted, and report missing records with a
// not-found error.
type MemoryRepository interface {
	// FindAll returns every record in the store's natural return order.
	FindAll(ctx context.Context) ([]memory.Memory, error)

	// FindAllByDateDesc returns every record sorted by memory date,
	// newest first.
	FindAllByDateDesc(ctx context.Context) ([]memory.Memory, error)

	// FindByID returns a single record by its identifier.
	FindByID(ctx context.Context, id string) (*memory.Memory, error)

	// Insert stores a new record and returns it with the assigned ID.
	Insert(ctx context.Context, m *memory.Memory) (*memory.Memory, error)

	// Replace overwrites every field of an existing record except its ID.
	Replace(ctx context.Context, id string, m *memory.Memory) (*memory.Memory, error)

	// Delete removes a record permanently.
	Delete(ctx context.Context, id string) error

	// Ping verifies connectivity to the backing store.
	Ping(ctx context.Context) error
}
