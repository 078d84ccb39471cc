// Package executor drives an item/order through submit, finalize,
// approve/apply, reject and fail. All mutating operations that accept
// an idempotency key run under internal/idempotency's guard; callers
// without a key bypass it only where the endpoint is not in the
// enforced set.
//
// Import Path (ADR-0016): workorder.io/engine/internal/executor
package executor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/item"
	"workorder.io/engine/ent/itempart"
	"workorder.io/engine/internal/pkg/apperr"
	"workorder.io/engine/internal/registry"
	"workorder.io/engine/internal/statemachine"
)

// Executor drives items and orders from submission to terminal state.
type Executor struct {
	client   *ent.Client
	registry *registry.TypeRegistry
	machine  *statemachine.Machine
	cfg      Config
}

// Config bounds partial submissions (config partials.*). Zero values
// for the Max fields mean unbounded.
type Config struct {
	PartialsEnabled bool
	MaxPartsPerItem int
	MaxPayloadBytes int
}

// New builds an Executor.
func New(client *ent.Client, reg *registry.TypeRegistry, machine *statemachine.Machine, cfg Config) *Executor {
	return &Executor{client: client, registry: reg, machine: machine, cfg: cfg}
}

// Actor aliases statemachine.Actor.
type Actor = statemachine.Actor

// checkLease verifies item is leased by agentID and the lease has not
// expired; returns a lease-error otherwise. Authority for lease state
// lives in the Item row regardless of which lease.Backend is active.
func checkLease(it *ent.Item, agentID string) error {
	if it.LeasedBy == nil || *it.LeasedBy != agentID {
		holder := ""
		if it.LeasedBy != nil {
			holder = *it.LeasedBy
		}
		return apperr.ErrLeaseNotHolder(holder, agentID)
	}
	if it.LeaseExpiresAt == nil || it.LeaseExpiresAt.Before(time.Now().UTC()) {
		expiredAt := ""
		if it.LeaseExpiresAt != nil {
			expiredAt = it.LeaseExpiresAt.UTC().Format(time.RFC3339)
		}
		return apperr.ErrLeaseExpired(expiredAt)
	}
	return nil
}

// ensureInProgress bridges leased → in_progress so a direct submit,
// submit-part or finalize on a freshly leased item follows the item
// automaton's legal edges (there is no leased → submitted edge).
// Returns the item's effective state after bridging.
func (e *Executor) ensureInProgress(ctx context.Context, tx *ent.Tx, it *ent.Item, actor Actor) (string, error) {
	if string(it.State) != "leased" {
		return string(it.State), nil
	}
	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      it.ID,
		From:    "leased",
		To:      "in_progress",
		Event:   "in-progress",
		Actor:   actor,
		OrderID: it.OrderID,
	}); err != nil {
		return "", err
	}
	return "in_progress", nil
}

func toSnapshot(it *ent.Item) registry.ItemSnapshot {
	return registry.ItemSnapshot{
		ID:            it.ID,
		OrderID:       it.OrderID,
		Type:          it.Type,
		State:         string(it.State),
		Input:         it.Input,
		Result:        it.Result,
		PartsRequired: it.PartsRequired,
		PartsState:    it.PartsState,
		Attempts:      it.Attempts,
		MaxAttempts:   it.MaxAttempts,
	}
}

func toOrderSnapshot(o *ent.Order) registry.OrderSnapshot {
	return registry.OrderSnapshot{
		ID:       o.ID,
		Type:     o.Type,
		State:    string(o.State),
		Priority: o.Priority,
		Payload:  o.Payload,
		Meta:     o.Meta,
	}
}

// Submit validates a result against the item type, writes it,
// transition the item, then roll up order progress. evidence and
// notes are carried on the submitted Event's message/payload; neither
// is required.
func (e *Executor) Submit(ctx context.Context, itemID string, result map[string]interface{}, actor Actor, evidence map[string]interface{}, notes string) (*ent.Item, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	it, err := tx.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if err := checkLease(it, actor.ID); err != nil {
		return nil, err
	}

	contract, err := e.registry.Lookup(it.Type)
	if err != nil {
		return nil, err
	}
	if fieldErrs := contract.ValidateSubmission(ctx, toSnapshot(it), result); len(fieldErrs) > 0 {
		return nil, apperr.ErrValidationFailed(toDetailErrors(fieldErrs))
	}

	if _, err := tx.Item.UpdateOneID(itemID).SetResult(result).Save(ctx); err != nil {
		return nil, fmt.Errorf("write result for item %s: %w", itemID, err)
	}

	from, err := e.ensureInProgress(ctx, tx, it, actor)
	if err != nil {
		return nil, err
	}

	payload := result
	if evidence != nil {
		payload = map[string]interface{}{"result": result, "evidence": evidence}
	}
	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      it.ID,
		From:    from,
		To:      "submitted",
		Event:   "submitted",
		Actor:   actor,
		OrderID: it.OrderID,
		Payload: payload,
		Message: notes,
	}); err != nil {
		return nil, err
	}

	if err := recordProvenance(ctx, tx, it.OrderID, it.ID, actor, checksumOf(result)); err != nil {
		return nil, err
	}

	if err := e.rollupOrderProgress(ctx, tx, it.OrderID, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submit tx: %w", err)
	}

	final, err := e.client.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("reload item %s: %w", itemID, err)
	}
	if err := e.maybeAutoApprove(ctx, contract, it.OrderID, actor); err != nil {
		return final, err
	}
	return final, nil
}

// maybeAutoApprove invokes Approve after a submit/finalize that left
// the order submitted, for types that opt in via AutoApprove(). A
// not-ready order is left for an explicit approve later; any other
// approve failure is surfaced to the submitting caller.
func (e *Executor) maybeAutoApprove(ctx context.Context, contract registry.OrderTypeContract, orderID string, actor Actor) error {
	aa, ok := contract.(registry.AutoApprover)
	if !ok || !aa.AutoApprove() {
		return nil
	}
	o, err := e.client.Order.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order %s: %w", orderID, err)
	}
	if string(o.State) != "submitted" {
		return nil
	}
	if _, _, err := e.Approve(ctx, orderID, actor); err != nil {
		var appErr *apperr.AppError
		if errors.As(err, &appErr) && appErr.Code == apperr.CodeNotReady {
			return nil
		}
		return err
	}
	return nil
}

// SubmitPart records an incremental contribution: append-only part
// rows plus a materialized parts_state summary on the item.
func (e *Executor) SubmitPart(ctx context.Context, itemID, partKey string, seq *int, payload map[string]interface{}, actor Actor, evidence, notes map[string]interface{}) (*ent.ItemPart, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submit_part tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	it, err := tx.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if err := checkLease(it, actor.ID); err != nil {
		return nil, err
	}

	contract, err := e.registry.Lookup(it.Type)
	if err != nil {
		return nil, err
	}
	partial, ok := contract.(registry.PartialContract)
	if !ok {
		return nil, fmt.Errorf("order type %s does not support partial submissions", it.Type)
	}
	if err := e.checkPartialBounds(ctx, tx, itemID, payload); err != nil {
		return nil, err
	}

	// Part submission happens on an in_progress item; the terminal
	// submit is finalize's job.
	if _, err := e.ensureInProgress(ctx, tx, it, actor); err != nil {
		return nil, err
	}

	nextSeq, err := e.nextSeq(ctx, tx, itemID, partKey)
	if err != nil {
		return nil, err
	}
	if seq != nil {
		nextSeq = *seq
	}

	fieldErrs := partial.ValidatePart(ctx, toSnapshot(it), partKey, payload, nextSeq)
	if len(fieldErrs) > 0 {
		rejected, err := tx.ItemPart.Create().
			SetID(newID()).
			SetItemID(itemID).
			SetPartKey(partKey).
			SetSeq(nextSeq).
			SetStatus(itempart.StatusRejected).
			SetPayload(payload).
			SetErrors(fieldErrsToMap(fieldErrs)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("insert rejected part: %w", err)
		}
		if err := e.machine.RecordEvent(ctx, tx, statemachine.TransitionInput{
			Entity:  statemachine.EntityItem,
			ID:      itemID,
			Event:   "part-rejected",
			Actor:   actor,
			OrderID: it.OrderID,
			Payload: map[string]interface{}{"part_key": partKey},
		}); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit submit_part (rejected) tx: %w", err)
		}
		return rejected, apperr.ErrValidationFailed(toDetailErrors(fieldErrs))
	}

	checksum := checksumOf(payload)
	part, err := tx.ItemPart.Create().
		SetID(newID()).
		SetItemID(itemID).
		SetPartKey(partKey).
		SetSeq(nextSeq).
		SetStatus(itempart.StatusValidated).
		SetPayload(payload).
		SetEvidence(evidence).
		SetNotes(notesString(notes)).
		SetChecksum(checksum).
		SetSubmittedBy(actor.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("insert validated part: %w", err)
	}

	if err := e.updatePartsState(ctx, tx, it, partKey, nextSeq, checksum); err != nil {
		return nil, err
	}

	if err := recordProvenance(ctx, tx, it.OrderID, it.ID, actor, checksum); err != nil {
		return nil, err
	}

	for _, ev := range []string{"part-submitted", "part-validated"} {
		if err := e.machine.RecordEvent(ctx, tx, statemachine.TransitionInput{
			Entity:  statemachine.EntityItem,
			ID:      itemID,
			Event:   ev,
			Actor:   actor,
			OrderID: it.OrderID,
			Payload: map[string]interface{}{"part_key": partKey, "seq": nextSeq},
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submit_part tx: %w", err)
	}
	return part, nil
}

// FinalizeMode selects strict or best-effort finalize semantics.
type FinalizeMode string

const (
	FinalizeStrict     FinalizeMode = "strict"
	FinalizeBestEffort FinalizeMode = "best_effort"
)

// Finalize assembles the latest validated parts into the item result
// and submits it.
func (e *Executor) Finalize(ctx context.Context, itemID string, mode FinalizeMode, actor Actor) (*ent.Item, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin finalize tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	it, err := tx.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}
	if err := checkLease(it, actor.ID); err != nil {
		return nil, err
	}

	contract, err := e.registry.Lookup(it.Type)
	if err != nil {
		return nil, err
	}
	partial, ok := contract.(registry.PartialContract)
	if !ok {
		return nil, fmt.Errorf("order type %s does not support partial submissions", it.Type)
	}

	latest, err := e.latestValidatedParts(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	if mode == FinalizeStrict {
		required := partial.RequiredParts(ctx, toSnapshot(it))
		var missing []string
		for _, key := range required {
			if _, ok := latest[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return nil, apperr.ErrMissingParts(missing)
		}
	}

	result, err := partial.Assemble(ctx, toSnapshot(it), latest)
	if err != nil {
		return nil, fmt.Errorf("assemble item %s: %w", itemID, err)
	}
	if fieldErrs := partial.ValidateAssembled(ctx, toSnapshot(it), result); len(fieldErrs) > 0 {
		return nil, apperr.ErrValidationFailed(toDetailErrors(fieldErrs))
	}

	if _, err := tx.Item.UpdateOneID(itemID).
		SetAssembledResult(result).
		SetResult(result).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("write assembled result for item %s: %w", itemID, err)
	}

	if err := e.machine.RecordEvent(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      itemID,
		Event:   "finalized",
		Actor:   actor,
		OrderID: it.OrderID,
	}); err != nil {
		return nil, err
	}

	from, err := e.ensureInProgress(ctx, tx, it, actor)
	if err != nil {
		return nil, err
	}

	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      itemID,
		From:    from,
		To:      "submitted",
		Event:   "submitted",
		Actor:   actor,
		OrderID: it.OrderID,
		Payload: result,
	}); err != nil {
		return nil, err
	}

	if err := e.rollupOrderProgress(ctx, tx, it.OrderID, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit finalize tx: %w", err)
	}

	final, err := e.client.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("reload item %s: %w", itemID, err)
	}
	if err := e.maybeAutoApprove(ctx, contract, it.OrderID, actor); err != nil {
		return final, err
	}
	return final, nil
}

// rollupOrderProgress transitions the order to submitted once every
// item of the order has reached submitted or accepted step 4).
func (e *Executor) rollupOrderProgress(ctx context.Context, tx *ent.Tx, orderID string, actor Actor) error {
	items, err := tx.Item.Query().Where(item.OrderID(orderID)).All(ctx)
	if err != nil {
		return fmt.Errorf("list items for order %s: %w", orderID, err)
	}
	for _, it := range items {
		if it.State != "submitted" && it.State != "accepted" {
			return nil
		}
	}

	o, err := tx.Order.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order %s: %w", orderID, err)
	}
	if o.State == "submitted" {
		return nil
	}

	// The order automaton has no checked_out → submitted edge; bridge
	// through in_progress first.
	from := string(o.State)
	if from == "checked_out" {
		if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
			Entity: statemachine.EntityOrder,
			ID:     orderID,
			From:   from,
			To:     "in_progress",
			Event:  "in-progress",
			Actor:  actor,
		}); err != nil {
			return err
		}
		from = "in_progress"
	}

	return e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     orderID,
		From:   from,
		To:     "submitted",
		Event:  "submitted",
		Actor:  actor,
	})
}

// Approve requires order.state ==
// submitted and ready_for_approval, then inlines apply().
func (e *Executor) Approve(ctx context.Context, orderID string, actor Actor) (*ent.Order, map[string]interface{}, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin approve tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	o, err := tx.Order.Get(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	if string(o.State) != "submitted" {
		return nil, nil, apperr.ErrIllegalTransition("order", string(o.State), "approved")
	}

	contract, err := e.registry.Lookup(o.Type)
	if err != nil {
		return nil, nil, err
	}
	items, err := tx.Item.Query().Where(item.OrderID(orderID)).All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list items for order %s: %w", orderID, err)
	}
	snapshots := toSnapshots(items)
	if !contract.ReadyForApproval(ctx, toOrderSnapshot(o), snapshots) {
		return nil, nil, apperr.ErrNotReady(orderID)
	}

	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     orderID,
		From:   string(o.State),
		To:     "approved",
		Event:  "approved",
		Actor:  actor,
	}); err != nil {
		return nil, nil, err
	}

	diff, err := e.apply(ctx, tx, orderID, actor)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit approve tx: %w", err)
	}
	o, err = e.client.Order.Get(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("reload order %s: %w", orderID, err)
	}
	return o, diff, nil
}

// apply is the internal, idempotent application of an approved order.
// The caller (Approve) owns the transaction; apply never commits or
// rolls back.
func (e *Executor) apply(ctx context.Context, tx *ent.Tx, orderID string, actor Actor) (map[string]interface{}, error) {
	o, err := tx.Order.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	items, err := tx.Item.Query().Where(item.OrderID(orderID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items for order %s: %w", orderID, err)
	}
	contract, err := e.registry.Lookup(o.Type)
	if err != nil {
		return nil, err
	}

	if hooks, ok := contract.(registry.LifecycleHooks); ok {
		if err := hooks.BeforeApply(ctx, toOrderSnapshot(o)); err != nil {
			return nil, fmt.Errorf("before_apply hook for order %s: %w", orderID, err)
		}
	}

	diff, err := contract.Apply(ctx, toOrderSnapshot(o), toSnapshots(items))
	if err != nil {
		if evErr := e.machine.RecordEvent(ctx, tx, statemachine.TransitionInput{
			Entity:  statemachine.EntityOrder,
			ID:      orderID,
			Event:   "apply-failed",
			Actor:   actor,
			Message: err.Error(),
		}); evErr != nil {
			return nil, evErr
		}
		return nil, fmt.Errorf("type.apply for order %s: %w", orderID, err)
	}

	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityOrder,
		ID:      orderID,
		From:    "approved",
		To:      "applied",
		Event:   "applied",
		Actor:   actor,
		Payload: diff,
	}); err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.State != "submitted" {
			continue
		}
		if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
			Entity:  statemachine.EntityItem,
			ID:      it.ID,
			From:    "submitted",
			To:      "accepted",
			Event:   "accepted",
			Actor:   actor,
			OrderID: orderID,
		}); err != nil {
			return nil, err
		}
		if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
			Entity:  statemachine.EntityItem,
			ID:      it.ID,
			From:    "accepted",
			To:      "completed",
			Event:   "completed",
			Actor:   actor,
			OrderID: orderID,
		}); err != nil {
			return nil, err
		}
	}

	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     orderID,
		From:   "applied",
		To:     "completed",
		Event:  "completed",
		Actor:  actor,
	}); err != nil {
		return nil, err
	}

	if hooks, ok := contract.(registry.LifecycleHooks); ok {
		if err := hooks.AfterApply(ctx, toOrderSnapshot(o), diff); err != nil {
			return nil, fmt.Errorf("after_apply hook for order %s: %w", orderID, err)
		}
	}

	return diff, nil
}

// Reject turns an order back with structured errors, terminally or
// for rework.
func (e *Executor) Reject(ctx context.Context, orderID string, errs map[string]interface{}, actor Actor, allowRework bool) (*ent.Order, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reject tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	o, err := tx.Order.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	if !allowRework {
		if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
			Entity:  statemachine.EntityOrder,
			ID:      orderID,
			From:    string(o.State),
			To:      "rejected",
			Event:   "rejected",
			Actor:   actor,
			Payload: errs,
		}); err != nil {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("commit reject tx: %w", err)
		}
		return e.client.Order.Get(ctx, orderID)
	}

	// Rework re-queues the order only; item results stay intact. There
	// is no direct submitted → queued edge, so a submitted order passes
	// through rejected first.
	from := string(o.State)
	if from == "submitted" {
		if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
			Entity:  statemachine.EntityOrder,
			ID:      orderID,
			From:    from,
			To:      "rejected",
			Event:   "rejected",
			Actor:   actor,
			Payload: errs,
		}); err != nil {
			return nil, err
		}
		from = "rejected"
	}
	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityOrder,
		ID:      orderID,
		From:    from,
		To:      "queued",
		Event:   "rejected",
		Actor:   actor,
		Payload: errs,
		Message: "requeued for rework",
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reject tx: %w", err)
	}
	return e.client.Order.Get(ctx, orderID)
}

// Fail records a failed attempt: increments attempts and either
// dead-ends in failed or retries via queued.
func (e *Executor) Fail(ctx context.Context, itemID string, itemErr map[string]interface{}, actor Actor) (*ent.Item, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin fail tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	it, err := tx.Item.Get(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item %s: %w", itemID, err)
	}

	attempts := it.Attempts + 1
	to := "queued"
	if attempts >= it.MaxAttempts {
		to = "failed"
	}

	// Clear lease fields so a re-queued item is immediately
	// checkout-eligible (after backoff) instead of waiting out the
	// dead lease's TTL.
	if _, err := tx.Item.UpdateOneID(itemID).
		SetAttempts(attempts).
		SetError(itemErr).
		ClearLeasedBy().
		ClearLeaseExpiresAt().
		ClearLastHeartbeatAt().
		Save(ctx); err != nil {
		return nil, fmt.Errorf("record attempt for item %s: %w", itemID, err)
	}

	if err := e.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity:  statemachine.EntityItem,
		ID:      itemID,
		From:    string(it.State),
		To:      to,
		Event:   "failed",
		Actor:   actor,
		OrderID: it.OrderID,
		Payload: itemErr,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit fail tx: %w", err)
	}
	return e.client.Item.Get(ctx, itemID)
}

// checkPartialBounds enforces the partials.* configuration limits
// before any part row is written.
func (e *Executor) checkPartialBounds(ctx context.Context, tx *ent.Tx, itemID string, payload map[string]interface{}) error {
	if !e.cfg.PartialsEnabled {
		return apperr.ErrValidationFailed([]apperr.FieldError{
			{Field: "part_key", Message: "partial submissions are disabled"},
		})
	}
	if e.cfg.MaxPayloadBytes > 0 {
		raw, err := json.Marshal(payload)
		if err != nil {
			return apperr.ErrValidationFailed([]apperr.FieldError{
				{Field: "payload", Message: "payload is not valid JSON"},
			})
		}
		if len(raw) > e.cfg.MaxPayloadBytes {
			return apperr.ErrValidationFailed([]apperr.FieldError{
				{Field: "payload", Message: fmt.Sprintf("payload exceeds %d bytes", e.cfg.MaxPayloadBytes)},
			})
		}
	}
	if e.cfg.MaxPartsPerItem > 0 {
		n, err := tx.ItemPart.Query().Where(itempart.ItemID(itemID)).Count(ctx)
		if err != nil {
			return fmt.Errorf("count parts for item %s: %w", itemID, err)
		}
		if n >= e.cfg.MaxPartsPerItem {
			return apperr.ErrValidationFailed([]apperr.FieldError{
				{Field: "part_key", Message: fmt.Sprintf("item already has %d parts (max %d)", n, e.cfg.MaxPartsPerItem)},
			})
		}
	}
	return nil
}

func (e *Executor) nextSeq(ctx context.Context, tx *ent.Tx, itemID, partKey string) (int, error) {
	parts, err := tx.ItemPart.Query().
		Where(itempart.ItemID(itemID), itempart.PartKey(partKey)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query parts for item %s key %s: %w", itemID, partKey, err)
	}
	max := -1
	for _, p := range parts {
		if p.Seq > max {
			max = p.Seq
		}
	}
	return max + 1, nil
}

// latestValidatedParts returns, per part_key, the validated part with
// the largest created_at (ties broken by id): the latest part per
// part_key.
func (e *Executor) latestValidatedParts(ctx context.Context, tx *ent.Tx, itemID string) (map[string]registry.PartSnapshot, error) {
	parts, err := tx.ItemPart.Query().
		Where(itempart.ItemID(itemID), itempart.StatusEQ(itempart.StatusValidated)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query validated parts for item %s: %w", itemID, err)
	}
	sort.Slice(parts, func(i, j int) bool {
		if !parts[i].CreatedAt.Equal(parts[j].CreatedAt) {
			return parts[i].CreatedAt.Before(parts[j].CreatedAt)
		}
		return parts[i].ID < parts[j].ID
	})

	latest := make(map[string]registry.PartSnapshot, len(parts))
	for _, p := range parts {
		latest[p.PartKey] = registry.PartSnapshot{
			PartKey:  p.PartKey,
			Seq:      p.Seq,
			Status:   string(p.Status),
			Payload:  p.Payload,
			Evidence: p.Evidence,
		}
	}
	return latest, nil
}

func (e *Executor) updatePartsState(ctx context.Context, tx *ent.Tx, it *ent.Item, partKey string, seq int, checksum string) error {
	state := it.PartsState
	if state == nil {
		state = make(map[string]interface{})
	}
	state[partKey] = map[string]interface{}{
		"status":   string(itempart.StatusValidated),
		"seq":      seq,
		"checksum": checksum,
	}
	_, err := tx.Item.UpdateOneID(it.ID).SetPartsState(state).Save(ctx)
	if err != nil {
		return fmt.Errorf("update parts_state for item %s: %w", it.ID, err)
	}
	return nil
}

func toSnapshots(items []*ent.Item) []registry.ItemSnapshot {
	out := make([]registry.ItemSnapshot, 0, len(items))
	for _, it := range items {
		out = append(out, toSnapshot(it))
	}
	return out
}

func toDetailErrors(fieldErrs []registry.FieldError) []apperr.FieldError {
	out := make([]apperr.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, apperr.FieldError{Field: fe.Field, Message: fe.Message})
	}
	return out
}

func fieldErrsToMap(fieldErrs []registry.FieldError) map[string]interface{} {
	out := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		out[fe.Field] = fe.Message
	}
	return out
}

// recordProvenance writes a Provenance row in the same transaction as
// the submission it describes. The fingerprint is the
// content checksum of the submitted payload; the client idempotency
// key, when one was supplied, lives on the IdempotencyRecord the guard
// reserved, not here.
func recordProvenance(ctx context.Context, tx *ent.Tx, orderID, itemID string, actor Actor, fingerprint string) error {
	create := tx.Provenance.Create().
		SetID(newID()).
		SetOrderID(orderID).
		SetItemID(itemID).
		SetAgentName(actor.ID).
		SetRequestFingerprint(fingerprint)
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("record provenance for item %s: %w", itemID, err)
	}
	return nil
}

func checksumOf(payload map[string]interface{}) string {
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func notesString(notes map[string]interface{}) string {
	if notes == nil {
		return ""
	}
	raw, _ := json.Marshal(notes)
	return string(raw)
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
