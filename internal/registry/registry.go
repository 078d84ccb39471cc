package registry

import (
	"sync"

	"workorder.io/engine/internal/pkg/apperr"
)

// TypeRegistry is a process-wide mapping of type id to the
// OrderTypeContract registered for it, populated at startup.
type TypeRegistry struct {
	mu    sync.RWMutex
	types map[string]OrderTypeContract
}

// New builds an empty TypeRegistry.
func New() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]OrderTypeContract)}
}

// Register adds a contract under its own TypeID. Registering a second
// contract under the same id replaces the first — callers register at
// startup, before any traffic, so last-registered-wins is sufficient
// and keeps the call side-effect free elsewhere.
func (r *TypeRegistry) Register(contract OrderTypeContract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[contract.TypeID()] = contract
}

// Lookup returns the contract for typeID, or a type-not-found error.
func (r *TypeRegistry) Lookup(typeID string) (OrderTypeContract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contract, ok := r.types[typeID]
	if !ok {
		return nil, apperr.ErrTypeNotFound(typeID)
	}
	return contract, nil
}

// TypeIDs returns the currently registered type ids, for diagnostics.
func (r *TypeRegistry) TypeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	return ids
}
