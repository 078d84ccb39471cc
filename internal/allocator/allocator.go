// Package allocator implements propose: validate a
// payload against its type's schema, then materialize an Order and
// its Items in one transaction.
//
// Import Path (ADR-0016): workorder.io/engine/internal/allocator
package allocator

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"workorder.io/engine/ent"
	"workorder.io/engine/internal/pkg/apperr"
	"workorder.io/engine/internal/registry"
	"workorder.io/engine/internal/statemachine"
)

// Allocator proposes new orders against a registered OrderTypeContract.
type Allocator struct {
	client   *ent.Client
	registry *registry.TypeRegistry
	machine  *statemachine.Machine
	validate *validator.Validate
}

// New builds an Allocator.
func New(client *ent.Client, reg *registry.TypeRegistry, machine *statemachine.Machine) *Allocator {
	return &Allocator{
		client:   client,
		registry: reg,
		machine:  machine,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ProposeInput is the propose() input.
type ProposeInput struct {
	TypeID      string
	Payload     map[string]interface{}
	RequestedBy Actor
	Meta        map[string]interface{}
	Priority    int
	Provenance  ProvenanceInput
}

// ProvenanceInput carries the optional request provenance recorded in
// the same transaction as the proposed order.
// All fields are optional; AgentName falls back to the requesting
// actor's id.
type ProvenanceInput struct {
	IdempotencyKey     string
	AgentName          string
	AgentVersion       string
	RequestFingerprint string
}

// Actor aliases statemachine.Actor so callers of this package need not
// import it directly.
type Actor = statemachine.Actor

// Propose resolves TypeID, validates Payload against the type's
// schema, then inserts the Order and its planned Items in a single
// transaction.
func (a *Allocator) Propose(ctx context.Context, in ProposeInput) (*ent.Order, []*ent.Item, error) {
	contract, err := a.registry.Lookup(in.TypeID)
	if err != nil {
		return nil, nil, err
	}

	if fieldErrs := a.validatePayload(contract, in.Payload); len(fieldErrs) > 0 {
		details := make([]apperr.FieldError, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, apperr.FieldError{Field: fe.Field, Message: fe.Message})
		}
		return nil, nil, apperr.ErrValidationFailed(details)
	}

	tx, err := a.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin propose tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	create := tx.Order.Create().
		SetID(newID()).
		SetType(in.TypeID).
		SetPayload(in.Payload).
		SetPriority(in.Priority).
		SetRequestedByType(in.RequestedBy.Type).
		SetRequestedByID(in.RequestedBy.ID)
	if in.Meta != nil {
		create = create.SetMeta(in.Meta)
	}
	order, err := create.Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("insert order: %w", err)
	}

	if err := a.machine.RecordEvent(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     order.ID,
		Event:  "proposed",
		Actor:  in.RequestedBy,
	}); err != nil {
		return nil, nil, err
	}

	specs, err := contract.Plan(ctx, in.Payload)
	if err != nil {
		return nil, nil, fmt.Errorf("plan order %s: %w", order.ID, err)
	}

	items := make([]*ent.Item, 0, len(specs))
	for _, spec := range specs {
		maxAttempts := spec.MaxAttempts
		if maxAttempts <= 0 {
			maxAttempts = 3
		}
		create := tx.Item.Create().
			SetID(newID()).
			SetOrderID(order.ID).
			SetType(spec.Type).
			SetMaxAttempts(maxAttempts)
		if spec.Input != nil {
			create = create.SetInput(spec.Input)
		}
		if len(spec.PartsRequired) > 0 {
			create = create.SetPartsRequired(spec.PartsRequired)
		}
		item, err := create.Save(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("insert item for order %s: %w", order.ID, err)
		}
		items = append(items, item)
	}

	if err := a.machine.RecordEvent(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     order.ID,
		Event:  "planned",
		Actor:  in.RequestedBy,
	}); err != nil {
		return nil, nil, err
	}

	if err := recordProvenance(ctx, tx, order.ID, in); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit propose tx: %w", err)
	}
	return order, items, nil
}

type fieldErr struct {
	Field   string
	Message string
}

// validatePayload decodes payload into a fresh instance of the
// contract's schema prototype (if any) and runs struct validation
// tags over it. A contract with no schema (Schema() returns nil)
// skips validation entirely.
func (a *Allocator) validatePayload(contract registry.OrderTypeContract, payload map[string]interface{}) []fieldErr {
	proto := contract.Schema()
	if proto == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return []fieldErr{{Field: "payload", Message: "payload is not valid JSON"}}
	}

	target := reflect.New(reflect.TypeOf(proto).Elem()).Interface()
	if err := json.Unmarshal(raw, target); err != nil {
		return []fieldErr{{Field: "payload", Message: "payload does not match the type's schema"}}
	}

	if err := a.validate.Struct(target); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []fieldErr{{Field: "payload", Message: err.Error()}}
		}
		out := make([]fieldErr, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, fieldErr{
				Field:   fe.Field(),
				Message: fmt.Sprintf("failed %q validation", fe.Tag()),
			})
		}
		return out
	}
	return nil
}

// recordProvenance stores who asked for the order and under which
// client idempotency key, in the same transaction as the order itself.
func recordProvenance(ctx context.Context, tx *ent.Tx, orderID string, in ProposeInput) error {
	agentName := in.Provenance.AgentName
	if agentName == "" {
		agentName = in.RequestedBy.ID
	}
	create := tx.Provenance.Create().
		SetID(newID()).
		SetOrderID(orderID).
		SetAgentName(agentName)
	if in.Provenance.IdempotencyKey != "" {
		create = create.SetIdempotencyKey(in.Provenance.IdempotencyKey)
	}
	if in.Provenance.AgentVersion != "" {
		create = create.SetAgentVersion(in.Provenance.AgentVersion)
	}
	if in.Provenance.RequestFingerprint != "" {
		create = create.SetRequestFingerprint(in.Provenance.RequestFingerprint)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("record provenance for order %s: %w", orderID, err)
	}
	return nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
