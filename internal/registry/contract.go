// Package registry implements the TypeRegistry: a
// process-wide mapping from type id to the OrderTypeContract plugged
// in for it, the only coupling point between the engine and a domain.
//
// Import Path (ADR-0016): workorder.io/engine/internal/registry
package registry

import "context"

// ItemSpec is one item a type's Plan returns for a proposed order.
type ItemSpec struct {
	Type          string
	Input         map[string]interface{}
	MaxAttempts   int
	PartsRequired []string
}

// FieldError is a single structured validation failure.
type FieldError struct {
	Field   string
	Message string
}

// OrderTypeContract is what every plugged-in order type must provide.
// The engine calls these inside transactions it manages; a contract
// must not open its own.
type OrderTypeContract interface {
	// TypeID returns the stable registry key.
	TypeID() string

	// Schema returns the declarative payload schema the Allocator
	// validates proposals against.
	Schema() interface{}

	// Plan returns one or more item specifications for a proposed
	// order. Called inside the propose transaction.
	Plan(ctx context.Context, payload map[string]interface{}) ([]ItemSpec, error)

	// ValidateSubmission may return field errors for an item result
	// the type rejects.
	ValidateSubmission(ctx context.Context, item ItemSnapshot, result map[string]interface{}) []FieldError

	// ReadyForApproval is the cross-item readiness predicate for an
	// order's items.
	ReadyForApproval(ctx context.Context, order OrderSnapshot, items []ItemSnapshot) bool

	// Apply must be idempotent; it produces a before/after diff
	// describing the domain changes performed.
	Apply(ctx context.Context, order OrderSnapshot, items []ItemSnapshot) (diff map[string]interface{}, err error)
}

// PartialContract is the optional partial-submission extension to
// OrderTypeContract.
type PartialContract interface {
	RequiredParts(ctx context.Context, item ItemSnapshot) []string
	ValidatePart(ctx context.Context, item ItemSnapshot, partKey string, payload map[string]interface{}, seq int) []FieldError
	Assemble(ctx context.Context, item ItemSnapshot, latestParts map[string]PartSnapshot) (map[string]interface{}, error)
	ValidateAssembled(ctx context.Context, item ItemSnapshot, result map[string]interface{}) []FieldError
}

// AutoApprover is the optional auto-approve extension: a type that
// returns true has its order approved immediately after the submit
// that made it ready, under the same actor identity.
type AutoApprover interface {
	AutoApprove() bool
}

// LifecycleHooks is the optional lifecycle extension to
// OrderTypeContract.
type LifecycleHooks interface {
	BeforeApply(ctx context.Context, order OrderSnapshot) error
	AfterApply(ctx context.Context, order OrderSnapshot, diff map[string]interface{}) error
}

// OrderSnapshot is the read-only order view a contract receives —
// never the live ent entity, so a contract cannot mutate state
// outside the engine's transitions.
type OrderSnapshot struct {
	ID       string
	Type     string
	State    string
	Priority int
	Payload  map[string]interface{}
	Meta     map[string]interface{}
}

// ItemSnapshot is the read-only item view a contract receives.
type ItemSnapshot struct {
	ID            string
	OrderID       string
	Type          string
	State         string
	Input         map[string]interface{}
	Result        map[string]interface{}
	PartsRequired []string
	PartsState    map[string]interface{}
	Attempts      int
	MaxAttempts   int
}

// PartSnapshot is the read-only view of the latest ItemPart row for a
// given part_key, passed to Assemble.
type PartSnapshot struct {
	PartKey  string
	Seq      int
	Status   string
	Payload  map[string]interface{}
	Evidence map[string]interface{}
}
