package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/gin-gonic/gin"

	"workorder.io/engine/ent"
	"workorder.io/engine/ent/event"
	"workorder.io/engine/ent/item"
	"workorder.io/engine/ent/order"
	"workorder.io/engine/ent/predicate"
	"workorder.io/engine/internal/allocator"
	"workorder.io/engine/internal/api/middleware"
	"workorder.io/engine/internal/pkg/apperr"
)

// proposeRequest is the POST /v1/orders body.
type proposeRequest struct {
	Type     string                 `json:"type" binding:"required"`
	Payload  map[string]interface{} `json:"payload" binding:"required"`
	Priority int                    `json:"priority"`
	Meta     map[string]interface{} `json:"meta"`
}

// ProposeOrder handles POST /v1/orders. Runs through the idempotency
// guard when the caller supplies an Idempotency-Key header; a missing
// key fails with idempotency-required when "propose" is in the
// enforce_on set.
//
// Allocator.Propose manages its own transaction internally, so the
// guarded operation ignores the reservation's tx and runs Propose on
// the request context, then stores its rendered result as the
// response snapshot. The domain mutation and the reservation snapshot
// therefore commit as two separate transactions; a crash between the
// two lets a retried request re-run the operation once more before
// the reservation records it.
func (s *Server) ProposeOrder(c *gin.Context) {
	var req proposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}
	actor := middleware.ActorFromRequest(c)
	in := allocator.ProposeInput{
		TypeID:      req.Type,
		Payload:     req.Payload,
		RequestedBy: actor,
		Meta:        req.Meta,
		Priority:    req.Priority,
		Provenance: allocator.ProvenanceInput{
			IdempotencyKey: c.GetHeader("Idempotency-Key"),
			AgentVersion:   c.GetHeader("X-Agent-Version"),
		},
	}

	resp, replayed, err := s.guarded(c, "propose", "propose", func(ctx context.Context) (map[string]interface{}, error) {
		ord, items, err := s.deps.Allocator.Propose(ctx, in)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"order": renderOrder(ord), "items": renderItems(items)}, nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// eventInclusionLimit bounds how many audit events a single order
// rendering carries.
const eventInclusionLimit = 50

// GetOrder handles GET /v1/orders/:id. The response always includes
// the order's items plus its most recent audit events (bounded).
func (s *Server) GetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	ord, err := s.deps.EntClient.Order.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperr.NotFound("ORDER_NOT_FOUND", "order not found"))
			return
		}
		_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to load order", http.StatusInternalServerError))
		return
	}
	items, err := s.deps.EntClient.Item.Query().Where(item.OrderIDEQ(ord.ID)).All(ctx)
	if err != nil {
		_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to load items", http.StatusInternalServerError))
		return
	}
	events, err := s.deps.EntClient.Event.Query().
		Where(event.OrderIDEQ(ord.ID)).
		Order(event.ByCreatedAt(sql.OrderDesc()), event.ByID(sql.OrderDesc())).
		Limit(eventInclusionLimit).
		All(ctx)
	if err != nil {
		_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to load events", http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order":  renderOrder(ord),
		"items":  renderItems(items),
		"events": renderEvents(events),
	})
}

// listOrdersParams is the closed set of query parameters ListOrders
// accepts. Anything outside it is an invalid-query error.
var listOrdersParams = map[string]bool{
	"state":               true,
	"type":                true,
	"requested_by_type":   true,
	"priority":            true,
	"priority_gte":        true,
	"priority_lte":        true,
	"created_after":       true,
	"created_before":      true,
	"has_available_items": true,
	"meta_contains":       true,
	"item_state":          true,
	"sort":                true,
	"order":               true,
	"page":                true,
	"page_size":           true,
	"include":             true,
}

// listOrdersSorts maps sortable names to the ent field they order by.
// items_count is absent: it is an aggregate sorted in listByItemsCount.
var listOrdersSorts = map[string]string{
	"priority":             order.FieldPriority,
	"created_at":           order.FieldCreatedAt,
	"last_transitioned_at": order.FieldLastTransitionedAt,
	"applied_at":           order.FieldAppliedAt,
	"completed_at":         order.FieldCompletedAt,
}

var listOrdersIncludes = map[string]bool{
	"items":       true,
	"events":      true,
	"items_count": true,
}

const maxPageSize = 100

// listOrdersQuery is the validated form of ListOrders' query string.
// Parsing never touches the database, so every invalid-query rejection
// happens before any row is read.
type listOrdersQuery struct {
	predicates        []predicate.Order
	hasAvailableItems bool
	itemState         item.State
	filterItemState   bool
	sortName          string
	direction         string
	page              int
	pageSize          int
	includes          map[string]bool
}

func parseListOrders(c *gin.Context) (*listOrdersQuery, *apperr.AppError) {
	for name := range c.Request.URL.Query() {
		if !listOrdersParams[name] {
			return nil, apperr.ErrInvalidQuery(name)
		}
	}

	out := &listOrdersQuery{
		page:     1,
		pageSize: 50,
		includes: map[string]bool{"items": true},
	}

	if st := c.Query("state"); st != "" {
		if err := order.StateValidator(order.State(st)); err != nil {
			return nil, apperr.ErrInvalidQuery("state")
		}
		out.predicates = append(out.predicates, order.StateEQ(order.State(st)))
	}
	if typ := c.Query("type"); typ != "" {
		out.predicates = append(out.predicates, order.TypeEQ(typ))
	}
	if rbt := c.Query("requested_by_type"); rbt != "" {
		out.predicates = append(out.predicates, order.RequestedByTypeEQ(rbt))
	}

	for _, f := range []struct {
		param string
		pred  func(int) predicate.Order
	}{
		{"priority", order.PriorityEQ},
		{"priority_gte", order.PriorityGTE},
		{"priority_lte", order.PriorityLTE},
	} {
		raw := c.Query(f.param)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.ErrInvalidQuery(f.param)
		}
		out.predicates = append(out.predicates, f.pred(n))
	}

	for _, f := range []struct {
		param string
		pred  func(time.Time) predicate.Order
	}{
		{"created_after", order.CreatedAtGT},
		{"created_before", order.CreatedAtLT},
	} {
		raw := c.Query(f.param)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, apperr.ErrInvalidQuery(f.param)
		}
		out.predicates = append(out.predicates, f.pred(t))
	}

	if raw := c.Query("has_available_items"); raw != "" {
		want, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, apperr.ErrInvalidQuery("has_available_items")
		}
		out.hasAvailableItems = want
	}

	if raw := c.Query("meta_contains"); raw != "" {
		var contains map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &contains); err != nil {
			return nil, apperr.ErrInvalidQuery("meta_contains")
		}
		out.predicates = append(out.predicates, predicate.Order(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(order.FieldMeta, contains))
		}))
	}

	if st := c.Query("item_state"); st != "" {
		if err := item.StateValidator(item.State(st)); err != nil {
			return nil, apperr.ErrInvalidQuery("item_state")
		}
		out.itemState = item.State(st)
		out.filterItemState = true
	}

	out.sortName = c.Query("sort")
	out.direction = c.Query("order")
	if out.direction != "" && out.direction != "asc" && out.direction != "desc" {
		return nil, apperr.ErrInvalidQuery("order")
	}
	if out.sortName != "" && out.sortName != "items_count" {
		if _, ok := listOrdersSorts[out.sortName]; !ok {
			return nil, apperr.ErrInvalidQuery("sort")
		}
	}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, apperr.ErrInvalidQuery("page")
		}
		out.page = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxPageSize {
			return nil, apperr.ErrInvalidQuery("page_size")
		}
		out.pageSize = n
	}

	if raw := c.Query("include"); raw != "" {
		out.includes = map[string]bool{}
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if !listOrdersIncludes[name] {
				return nil, apperr.ErrInvalidQuery("include")
			}
			out.includes[name] = true
		}
	}

	return out, nil
}

// ListOrders handles GET /v1/orders: the read query surface over
// orders — filters, sorts, page/page_size pagination (cap 100) and
// items/events/items_count inclusion.
func (s *Server) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()

	parsed, appErr := parseListOrders(c)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}
	sortName, direction := parsed.sortName, parsed.direction
	page, pageSize, includes := parsed.page, parsed.pageSize, parsed.includes

	q := s.deps.EntClient.Order.Query().Where(parsed.predicates...)

	if parsed.hasAvailableItems {
		ids, err := s.availableOrderIDs(ctx)
		if err != nil {
			_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to resolve available items", http.StatusInternalServerError))
			return
		}
		q = q.Where(order.IDIn(ids...))
	}
	if parsed.filterItemState {
		ids, err := s.orderIDsWithItemState(ctx, parsed.itemState)
		if err != nil {
			_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to resolve item states", http.StatusInternalServerError))
			return
		}
		q = q.Where(order.IDIn(ids...))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to count orders", http.StatusInternalServerError))
		return
	}

	var orders []*ent.Order
	if sortName == "items_count" {
		orders, err = s.listByItemsCount(ctx, q, direction, page, pageSize)
	} else {
		orders, err = listBySQLSort(ctx, q, sortName, direction, page, pageSize)
	}
	if err != nil {
		_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to list orders", http.StatusInternalServerError))
		return
	}

	views := make([]gin.H, 0, len(orders))
	orderIDs := make([]string, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	var itemsByOrder map[string][]*ent.Item
	if includes["items"] {
		itemsByOrder, err = s.itemsForOrders(ctx, orderIDs)
		if err != nil {
			_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to load items", http.StatusInternalServerError))
			return
		}
	}
	var counts map[string]int
	if includes["items_count"] {
		counts, err = s.itemCounts(ctx, orderIDs)
		if err != nil {
			_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to count items", http.StatusInternalServerError))
			return
		}
	}

	for _, o := range orders {
		view := gin.H{"order": renderOrder(o)}
		if includes["items"] {
			view["items"] = renderItems(itemsByOrder[o.ID])
		}
		if includes["items_count"] {
			view["items_count"] = counts[o.ID]
		}
		if includes["events"] {
			events, err := s.deps.EntClient.Event.Query().
				Where(event.OrderIDEQ(o.ID)).
				Order(event.ByCreatedAt(sql.OrderDesc()), event.ByID(sql.OrderDesc())).
				Limit(eventInclusionLimit).
				All(ctx)
			if err != nil {
				_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to load events", http.StatusInternalServerError))
				return
			}
			view["events"] = renderEvents(events)
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{
		"orders":    views,
		"page":      page,
		"page_size": pageSize,
		"total":     total,
	})
}

// listBySQLSort pushes field sorts down to SQL. The default ordering
// is priority DESC, created_at ASC, ties broken by id so
// the order is a strict weak order.
func listBySQLSort(ctx context.Context, q *ent.OrderQuery, sortName, direction string, page, pageSize int) ([]*ent.Order, error) {
	switch {
	case sortName == "":
		q = q.Order(
			order.ByPriority(sql.OrderDesc()),
			order.ByCreatedAt(sql.OrderAsc()),
			order.ByID(sql.OrderAsc()),
		)
	case direction == "desc":
		q = q.Order(ent.Desc(listOrdersSorts[sortName]), order.ByID(sql.OrderAsc()))
	default:
		q = q.Order(ent.Asc(listOrdersSorts[sortName]), order.ByID(sql.OrderAsc()))
	}
	return q.Limit(pageSize).Offset((page - 1) * pageSize).All(ctx)
}

// listByItemsCount sorts by the per-order item count aggregate. The
// count lives on Item rows, and Order carries no edges, so matching
// orders are loaded and sorted here before the page is sliced.
func (s *Server) listByItemsCount(ctx context.Context, q *ent.OrderQuery, direction string, page, pageSize int) ([]*ent.Order, error) {
	orders, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	counts, err := s.itemCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		ci, cj := counts[orders[i].ID], counts[orders[j].ID]
		if ci != cj {
			if direction == "desc" {
				return ci > cj
			}
			return ci < cj
		}
		return orders[i].ID < orders[j].ID
	})

	start := (page - 1) * pageSize
	if start >= len(orders) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end], nil
}

// availableOrderIDs returns ids of orders with at least one queued
// item whose lease is absent or expired.
func (s *Server) availableOrderIDs(ctx context.Context) ([]string, error) {
	now := time.Now().UTC()
	items, err := s.deps.EntClient.Item.Query().
		Where(
			item.StateEQ(item.StateQueued),
			item.Or(item.LeaseExpiresAtIsNil(), item.LeaseExpiresAtLT(now)),
		).
		Select(item.FieldOrderID).
		All(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it.OrderID] {
			seen[it.OrderID] = true
			ids = append(ids, it.OrderID)
		}
	}
	return ids, nil
}

func (s *Server) orderIDsWithItemState(ctx context.Context, st item.State) ([]string, error) {
	items, err := s.deps.EntClient.Item.Query().
		Where(item.StateEQ(st)).
		Select(item.FieldOrderID).
		All(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it.OrderID] {
			seen[it.OrderID] = true
			ids = append(ids, it.OrderID)
		}
	}
	return ids, nil
}

func (s *Server) itemsForOrders(ctx context.Context, orderIDs []string) (map[string][]*ent.Item, error) {
	if len(orderIDs) == 0 {
		return map[string][]*ent.Item{}, nil
	}
	items, err := s.deps.EntClient.Item.Query().
		Where(item.OrderIDIn(orderIDs...)).
		Order(item.ByCreatedAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]*ent.Item, len(orderIDs))
	for _, it := range items {
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, nil
}

func (s *Server) itemCounts(ctx context.Context, orderIDs []string) (map[string]int, error) {
	if len(orderIDs) == 0 {
		return map[string]int{}, nil
	}
	var rows []struct {
		OrderID string `json:"order_id"`
		Count   int    `json:"count"`
	}
	err := s.deps.EntClient.Item.Query().
		Where(item.OrderIDIn(orderIDs...)).
		GroupBy(item.FieldOrderID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.OrderID] = row.Count
	}
	return out, nil
}

// ApproveOrder handles POST /v1/orders/:id/approve. Runs through the idempotency guard; concurrent approves
// with the same key observe the same cached diff.
func (s *Server) ApproveOrder(c *gin.Context) {
	id := c.Param("id")
	actor := middleware.ActorFromRequest(c)

	resp, _, err := s.guarded(c, "approve", "approve:order:"+id, func(ctx context.Context) (map[string]interface{}, error) {
		ord, diff, err := s.deps.Executor.Approve(ctx, id, actor)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"order": renderOrder(ord), "diff": diff}, nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// rejectRequest is the POST /v1/orders/:id/reject body.
type rejectRequest struct {
	Errors      map[string]interface{} `json:"errors"`
	AllowRework bool                   `json:"allow_rework"`
}

// RejectOrder handles POST /v1/orders/:id/reject.
func (s *Server) RejectOrder(c *gin.Context) {
	id := c.Param("id")
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}
	actor := middleware.ActorFromRequest(c)

	resp, _, err := s.guarded(c, "reject", "reject:order:"+id, func(ctx context.Context) (map[string]interface{}, error) {
		ord, err := s.deps.Executor.Reject(ctx, id, req.Errors, actor, req.AllowRework)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"order": renderOrder(ord)}, nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
