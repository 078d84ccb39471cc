package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/event"
	"workorder.io/engine/ent/itempart"
	"workorder.io/engine/ent/provenance"
	"workorder.io/engine/internal/allocator"
	"workorder.io/engine/internal/executor"
	"workorder.io/engine/internal/idempotency"
	"workorder.io/engine/internal/lease"
	"workorder.io/engine/internal/leaseservice"
	"workorder.io/engine/internal/maintenance"
	"workorder.io/engine/internal/pkg/apperr"
	"workorder.io/engine/internal/pkg/logger"
	"workorder.io/engine/internal/registry"
	"workorder.io/engine/internal/statemachine"
	"workorder.io/engine/internal/testutil"
)

// echoContract is the order-type fixture the lifecycle tests plug into
// the registry: one item per order, result echoed through apply.
type echoContract struct {
	typeID      string
	itemType    string
	parts       []string
	maxAttempts int
	applyCalls  int
}

func (c *echoContract) TypeID() string      { return c.typeID }
func (c *echoContract) Schema() interface{} { return nil }

func (c *echoContract) Plan(_ context.Context, payload map[string]interface{}) ([]registry.ItemSpec, error) {
	itemType := c.itemType
	if itemType == "" {
		itemType = c.typeID
	}
	maxAttempts := c.maxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return []registry.ItemSpec{{
		Type:          itemType,
		Input:         payload,
		MaxAttempts:   maxAttempts,
		PartsRequired: c.parts,
	}}, nil
}

func (c *echoContract) ValidateSubmission(context.Context, registry.ItemSnapshot, map[string]interface{}) []registry.FieldError {
	return nil
}

func (c *echoContract) ReadyForApproval(_ context.Context, _ registry.OrderSnapshot, items []registry.ItemSnapshot) bool {
	for _, it := range items {
		if it.State != "submitted" && it.State != "accepted" {
			return false
		}
	}
	return true
}

func (c *echoContract) Apply(context.Context, registry.OrderSnapshot, []registry.ItemSnapshot) (map[string]interface{}, error) {
	c.applyCalls++
	return map[string]interface{}{"summary": "done"}, nil
}

func (c *echoContract) RequiredParts(context.Context, registry.ItemSnapshot) []string {
	return c.parts
}

func (c *echoContract) ValidatePart(context.Context, registry.ItemSnapshot, string, map[string]interface{}, int) []registry.FieldError {
	return nil
}

func (c *echoContract) Assemble(_ context.Context, _ registry.ItemSnapshot, latest map[string]registry.PartSnapshot) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(latest))
	for key, part := range latest {
		out[key] = part.Payload
	}
	return out, nil
}

func (c *echoContract) ValidateAssembled(context.Context, registry.ItemSnapshot, map[string]interface{}) []registry.FieldError {
	return nil
}

// engineFixture wires the full propose → checkout → submit → approve
// pipeline over a real PostgreSQL schema.
type engineFixture struct {
	client   *ent.Client
	machine  *statemachine.Machine
	registry *registry.TypeRegistry
	alloc    *allocator.Allocator
	exec     *executor.Executor
	leases   *leaseservice.Service
}

func newEngineFixture(t *testing.T, leaseTTL time.Duration) *engineFixture {
	t.Helper()
	require.NoError(t, logger.Init("error", "console"))
	client := testutil.OpenEntPostgres(t, "executor_lifecycle")
	machine := statemachine.New(client, nil, nil)
	reg := registry.New()
	return &engineFixture{
		client:   client,
		machine:  machine,
		registry: reg,
		alloc:    allocator.New(client, reg, machine),
		exec:     executor.New(client, reg, machine, executor.Config{PartialsEnabled: true}),
		leases: leaseservice.New(client, lease.NewDurableBackend(client), machine, leaseservice.Config{
			TTL: leaseTTL,
		}),
	}
}

func (f *engineFixture) propose(t *testing.T, typeID string, payload map[string]interface{}, priority int) (*ent.Order, *ent.Item) {
	t.Helper()
	ord, items, err := f.alloc.Propose(context.Background(), allocator.ProposeInput{
		TypeID:      typeID,
		Payload:     payload,
		RequestedBy: statemachine.Actor{Type: "user", ID: "tester"},
		Priority:    priority,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	return ord, items[0]
}

func (f *engineFixture) eventNames(t *testing.T, orderID string) []string {
	t.Helper()
	events, err := f.client.Event.Query().
		Where(event.OrderIDEQ(orderID)).
		Order(event.ByCreatedAt(), event.ByID()).
		All(context.Background())
	require.NoError(t, err)
	names := make([]string, 0, len(events))
	for _, ev := range events {
		names = append(names, ev.Event)
	}
	return names
}

func TestLifecycle_HappyPathSingleItem(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	contract := &echoContract{typeID: "echo"}
	f.registry.Register(contract)
	ctx := context.Background()

	ord, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	require.Equal(t, "queued", string(ord.State))
	require.Equal(t, map[string]interface{}{"msg": "hi"}, it.Input)

	leased, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	require.Equal(t, it.ID, leased.ID)
	require.Equal(t, "leased", string(leased.State))
	require.NotNil(t, leased.LeaseExpiresAt)

	firstExpiry := *leased.LeaseExpiresAt
	newExpiry, err := f.leases.Heartbeat(ctx, it.ID, "agent-A")
	require.NoError(t, err)
	require.False(t, newExpiry.Before(firstExpiry))

	submitted, err := f.exec.Submit(ctx, it.ID, map[string]interface{}{"ok": true}, executor.Actor{Type: "agent", ID: "agent-A"}, nil, "")
	require.NoError(t, err)
	require.Equal(t, "submitted", string(submitted.State))
	require.Equal(t, map[string]interface{}{"ok": true}, submitted.Result)

	approved, diff, err := f.exec.Approve(ctx, ord.ID, executor.Actor{Type: "user", ID: "reviewer"})
	require.NoError(t, err)
	require.Equal(t, "completed", string(approved.State))
	require.Equal(t, map[string]interface{}{"summary": "done"}, diff)
	require.NotNil(t, approved.AppliedAt)
	require.NotNil(t, approved.CompletedAt)

	final, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "completed", string(final.State))
	require.NotNil(t, final.AcceptedAt)

	names := f.eventNames(t, ord.ID)
	for _, want := range []string{
		"proposed", "planned", "checked-out", "leased", "heartbeat",
		"submitted", "approved", "applied", "accepted", "completed",
	} {
		require.Contains(t, names, want)
	}
	// The proposed order carries a provenance row for its requester.
	n, err := f.client.Provenance.Query().Where(provenance.OrderIDEQ(ord.ID)).Count(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 1)
}

func TestLifecycle_ApplyIsIdempotentUnderGuard(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	contract := &echoContract{typeID: "echo"}
	f.registry.Register(contract)
	ctx := context.Background()
	guard := idempotency.New(f.client, []byte("0123456789abcdef"))

	ord, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	_, err = f.exec.Submit(ctx, it.ID, map[string]interface{}{"ok": true}, executor.Actor{Type: "agent", ID: "agent-A"}, nil, "")
	require.NoError(t, err)

	approveOp := func(ctx context.Context, _ *ent.Tx) (map[string]interface{}, error) {
		_, diff, err := f.exec.Approve(ctx, ord.ID, executor.Actor{Type: "user", ID: "reviewer"})
		if err != nil {
			return nil, err
		}
		return diff, nil
	}

	first, replayed, err := guard.Run(ctx, "approve:order:"+ord.ID, "K1", approveOp)
	require.NoError(t, err)
	require.False(t, replayed)
	require.Equal(t, "done", first["summary"])

	second, replayed, err := guard.Run(ctx, "approve:order:"+ord.ID, "K1", approveOp)
	require.NoError(t, err)
	require.True(t, replayed)
	require.Equal(t, first, second)
	require.Equal(t, 1, contract.applyCalls)
}

func TestLifecycle_SubmitReplayKeepsOriginalResult(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo"})
	ctx := context.Background()
	guard := idempotency.New(f.client, []byte("0123456789abcdef"))

	_, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)

	submitOp := func(body map[string]interface{}) idempotency.Operation {
		return func(ctx context.Context, _ *ent.Tx) (map[string]interface{}, error) {
			submitted, err := f.exec.Submit(ctx, it.ID, body, executor.Actor{Type: "agent", ID: "agent-A"}, nil, "")
			if err != nil {
				return nil, err
			}
			return map[string]interface{}{"state": string(submitted.State)}, nil
		}
	}

	first, replayed, err := guard.Run(ctx, "submit:item:"+it.ID, "K1", submitOp(map[string]interface{}{"attempt": "one"}))
	require.NoError(t, err)
	require.False(t, replayed)

	second, replayed, err := guard.Run(ctx, "submit:item:"+it.ID, "K1", submitOp(map[string]interface{}{"attempt": "two"}))
	require.NoError(t, err)
	require.True(t, replayed)
	require.Equal(t, first, second)

	final, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"attempt": "one"}, final.Result)

	n, err := f.client.Event.Query().
		Where(event.ItemIDEQ(it.ID), event.EventEQ("submitted")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestLifecycle_LeaseExpiryRetryThenFailure(t *testing.T) {
	f := newEngineFixture(t, 20*time.Millisecond)
	f.registry.Register(&echoContract{typeID: "echo", maxAttempts: 2})
	ctx := context.Background()

	_, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)

	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)

	reclaimed, err := f.leases.ReclaimExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, reclaimed)

	after, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "queued", string(after.State))
	require.Equal(t, 1, after.Attempts)
	require.Nil(t, after.LeasedBy)

	_, err = f.leases.Checkout(ctx, "agent-B", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)

	_, err = f.leases.ReclaimExpired(ctx)
	require.NoError(t, err)

	final, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "failed", string(final.State))
	require.Equal(t, 2, final.Attempts)

	n, err := f.client.Event.Query().
		Where(event.ItemIDEQ(it.ID), event.EventEQ("lease-expired")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// With the threshold elapsed, maintenance dead-letters the failure.
	maint := maintenance.New(f.client, f.leases, f.machine, maintenance.Config{})
	deadLettered, err := maint.DeadLetter(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, deadLettered, 1)

	buried, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "dead_lettered", string(buried.State))
}

func TestLifecycle_ReclaimSkipsSubmittedItems(t *testing.T) {
	f := newEngineFixture(t, 30*time.Millisecond)
	contract := &echoContract{typeID: "echo"}
	f.registry.Register(contract)
	ctx := context.Background()

	ord, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	_, err = f.exec.Submit(ctx, it.ID, map[string]interface{}{"ok": true}, executor.Actor{Type: "agent", ID: "agent-A"}, nil, "")
	require.NoError(t, err)

	// The stale lease fields stay on the row after submit; once the
	// TTL passes they must not drag the item back through reclamation.
	time.Sleep(60 * time.Millisecond)

	reclaimed, err := f.leases.ReclaimExpired(ctx)
	require.NoError(t, err)
	require.Zero(t, reclaimed)

	after, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "submitted", string(after.State))
	require.Equal(t, 0, after.Attempts)

	// Approval long after lease expiry still completes the order.
	approved, _, err := f.exec.Approve(ctx, ord.ID, executor.Actor{Type: "user", ID: "reviewer"})
	require.NoError(t, err)
	require.Equal(t, "completed", string(approved.State))
}

func TestLifecycle_FinalizeStrictPartials(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo", parts: []string{"a", "b"}})
	ctx := context.Background()
	agent := executor.Actor{Type: "agent", ID: "agent-A"}

	_, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)

	_, err = f.exec.SubmitPart(ctx, it.ID, "a", nil, map[string]interface{}{"v": "one"}, agent, nil, nil)
	require.NoError(t, err)

	_, err = f.exec.Finalize(ctx, it.ID, executor.FinalizeStrict, agent)
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.CodeValidationFailed, appErr.Code)
	details, ok := appErr.Details.(apperr.ValidationFailedDetails)
	require.True(t, ok)
	require.Equal(t, []string{"b"}, details.MissingKeys)

	mid, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "in_progress", string(mid.State))

	_, err = f.exec.SubmitPart(ctx, it.ID, "b", nil, map[string]interface{}{"v": "two"}, agent, nil, nil)
	require.NoError(t, err)

	finalized, err := f.exec.Finalize(ctx, it.ID, executor.FinalizeStrict, agent)
	require.NoError(t, err)
	require.Equal(t, "submitted", string(finalized.State))
	require.Equal(t, map[string]interface{}{
		"a": map[string]interface{}{"v": "one"},
		"b": map[string]interface{}{"v": "two"},
	}, finalized.AssembledResult)

	parts, err := f.client.ItemPart.Query().Where(itempart.ItemIDEQ(it.ID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 2)
}

func TestLifecycle_IllegalTransitionLeavesNoTrace(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo"})
	ctx := context.Background()

	ord, _ := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)

	tx, err := f.client.Tx(ctx)
	require.NoError(t, err)
	err = f.machine.Transition(ctx, tx, statemachine.TransitionInput{
		Entity: statemachine.EntityOrder,
		ID:     ord.ID,
		From:   "queued",
		To:     "applied",
		Actor:  statemachine.Actor{Type: "system", ID: "test"},
	})
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.CodeIllegalTransition, appErr.Code)
	require.NoError(t, tx.Rollback())

	after, err := f.client.Order.Get(ctx, ord.ID)
	require.NoError(t, err)
	require.Equal(t, "queued", string(after.State))

	n, err := f.client.Event.Query().
		Where(event.OrderIDEQ(ord.ID), event.EventEQ("applied")).
		Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestLifecycle_CheckoutPriorityAndFilters(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "tx", itemType: "X"})
	f.registry.Register(&echoContract{typeID: "ty", itemType: "Y"})
	ctx := context.Background()

	high, _ := f.propose(t, "tx", map[string]interface{}{"n": 1}, 100)
	f.propose(t, "ty", map[string]interface{}{"n": 2}, 50)
	f.propose(t, "tx", map[string]interface{}{"n": 3}, 80)

	it, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{Type: "X"})
	require.NoError(t, err)
	require.Equal(t, high.ID, it.OrderID)

	_, err = f.leases.Checkout(ctx, "agent-B", leaseservice.CheckoutFilters{Type: "X", MinPriority: 90})
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.CodeNoItemsAvailable, appErr.Code)
}

func TestLifecycle_SingletonItemSecondCheckoutFindsNothing(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo"})
	ctx := context.Background()

	f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)

	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)

	_, err = f.leases.Checkout(ctx, "agent-B", leaseservice.CheckoutFilters{})
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.CodeNoItemsAvailable, appErr.Code)
}

func TestLifecycle_HeartbeatOnExpiredLeaseFails(t *testing.T) {
	f := newEngineFixture(t, 20*time.Millisecond)
	f.registry.Register(&echoContract{typeID: "echo"})
	ctx := context.Background()

	_, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)

	_, err = f.leases.Heartbeat(ctx, it.ID, "agent-A")
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.CodeLeaseError, appErr.Code)
	details, ok := appErr.Details.(apperr.LeaseErrorDetails)
	require.True(t, ok)
	require.Equal(t, apperr.LeaseReasonExpired, details.Reason)
}

func TestLifecycle_SubmitByNonHolderRejected(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo"})
	ctx := context.Background()

	_, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)

	_, err = f.exec.Submit(ctx, it.ID, map[string]interface{}{"ok": true}, executor.Actor{Type: "agent", ID: "agent-B"}, nil, "")
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperr.CodeLeaseError, appErr.Code)

	after, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, "leased", string(after.State))
}

func TestLifecycle_RejectWithReworkRequeuesOrder(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo"})
	ctx := context.Background()

	ord, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	_, err = f.exec.Submit(ctx, it.ID, map[string]interface{}{"ok": true}, executor.Actor{Type: "agent", ID: "agent-A"}, nil, "")
	require.NoError(t, err)

	reworked, err := f.exec.Reject(ctx, ord.ID, map[string]interface{}{"reason": "redo"}, executor.Actor{Type: "user", ID: "reviewer"}, true)
	require.NoError(t, err)
	require.Equal(t, "queued", string(reworked.State))

	// Item results survive rework; only the order is re-queued.
	after, err := f.client.Item.Get(ctx, it.ID)
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"ok": true}, after.Result)
}

func TestLifecycle_ReleaseReturnsItemToQueue(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo"})
	ctx := context.Background()

	_, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)
	leased, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)
	require.Equal(t, 0, leased.Attempts)

	released, err := f.leases.Release(ctx, it.ID, "agent-A")
	require.NoError(t, err)
	require.Equal(t, "queued", string(released.State))
	require.Equal(t, 0, released.Attempts)
	require.Nil(t, released.LeasedBy)
}

func TestLifecycle_FailRetriesThenExhausts(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	f.registry.Register(&echoContract{typeID: "echo", maxAttempts: 2})
	ctx := context.Background()
	agent := executor.Actor{Type: "agent", ID: "agent-A"}

	_, it := f.propose(t, "echo", map[string]interface{}{"msg": "hi"}, 0)

	_, err := f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)

	retried, err := f.exec.Fail(ctx, it.ID, map[string]interface{}{"reason": "boom"}, agent)
	require.NoError(t, err)
	require.Equal(t, "queued", string(retried.State))
	require.Equal(t, 1, retried.Attempts)
	require.Nil(t, retried.LeasedBy)

	// The cleared lease makes the item immediately re-leasable.
	_, err = f.leases.Checkout(ctx, "agent-A", leaseservice.CheckoutFilters{})
	require.NoError(t, err)

	exhausted, err := f.exec.Fail(ctx, it.ID, map[string]interface{}{"reason": "boom again"}, agent)
	require.NoError(t, err)
	require.Equal(t, "failed", string(exhausted.State))
	require.Equal(t, 2, exhausted.Attempts)
}

func TestLifecycle_UnknownTypeRejected(t *testing.T) {
	f := newEngineFixture(t, 10*time.Minute)
	ctx := context.Background()

	_, _, err := f.alloc.Propose(ctx, allocator.ProposeInput{
		TypeID:  "nope",
		Payload: map[string]interface{}{},
	})
	var appErr *apperr.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperr.CodeTypeNotFound, appErr.Code)
}
