package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"workorder.io/engine/ent/itempart"
	"workorder.io/engine/internal/api/middleware"
	"workorder.io/engine/internal/executor"
	"workorder.io/engine/internal/leaseservice"
	"workorder.io/engine/internal/pkg/apperr"
)

// checkoutRequest is the POST /v1/items/checkout body. All filters
// are optional and combinable.
type checkoutRequest struct {
	AgentID     string `json:"agent_id" binding:"required"`
	OrderID     string `json:"order_id"`
	Type        string `json:"type"`
	MinPriority int    `json:"min_priority"`
}

// CheckoutItem handles POST /v1/items/checkout.
func (s *Server) CheckoutItem(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}

	it, err := s.deps.Leases.Checkout(c.Request.Context(), req.AgentID, leaseservice.CheckoutFilters{
		OrderID:     req.OrderID,
		Type:        req.Type,
		MinPriority: req.MinPriority,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": renderItem(it)})
}

// agentRequest is the shared body shape for operations keyed on the
// calling agent alone (heartbeat, release).
type agentRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
}

// HeartbeatItem handles POST /v1/items/:id/heartbeat.
func (s *Server) HeartbeatItem(c *gin.Context) {
	id := c.Param("id")
	var req agentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}

	expiresAt, err := s.deps.Leases.Heartbeat(c.Request.Context(), id, req.AgentID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lease_expires_at": expiresAt.Format(timeFormat)})
}

// ReleaseItem handles POST /v1/items/:id/release.
func (s *Server) ReleaseItem(c *gin.Context) {
	id := c.Param("id")
	var req agentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}

	it, err := s.deps.Leases.Release(c.Request.Context(), id, req.AgentID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": renderItem(it)})
}

// submitRequest is the POST /v1/items/:id/submit body.
type submitRequest struct {
	AgentID  string                 `json:"agent_id" binding:"required"`
	Result   map[string]interface{} `json:"result" binding:"required"`
	Evidence map[string]interface{} `json:"evidence"`
	Notes    string                 `json:"notes"`
}

// SubmitItem handles POST /v1/items/:id/submit. The idempotency scope
// is per-item ("submit:item:<id>"), so a replayed submit with the same
// key returns the original snapshot even when its body differs.
func (s *Server) SubmitItem(c *gin.Context) {
	id := c.Param("id")
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}
	actor := middleware.ActorFromRequest(c)
	actor.ID = req.AgentID
	actor.Type = "agent"

	resp, _, err := s.guarded(c, "submit", "submit:item:"+id, func(ctx context.Context) (map[string]interface{}, error) {
		it, err := s.deps.Executor.Submit(ctx, id, req.Result, actor, req.Evidence, req.Notes)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"item": renderItem(it)}, nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// submitPartRequest is the POST /v1/items/:id/submit-part body.
type submitPartRequest struct {
	AgentID  string                 `json:"agent_id" binding:"required"`
	PartKey  string                 `json:"part_key" binding:"required"`
	Seq      *int                   `json:"seq"`
	Payload  map[string]interface{} `json:"payload" binding:"required"`
	Evidence map[string]interface{} `json:"evidence"`
	Notes    map[string]interface{} `json:"notes"`
}

// SubmitItemPart handles POST /v1/items/:id/submit-part.
func (s *Server) SubmitItemPart(c *gin.Context) {
	id := c.Param("id")
	var req submitPartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}
	actor := middleware.ActorFromRequest(c)
	actor.ID = req.AgentID
	actor.Type = "agent"

	resp, _, err := s.guarded(c, "submit-part", "submit-part:item:"+id, func(ctx context.Context) (map[string]interface{}, error) {
		part, err := s.deps.Executor.SubmitPart(ctx, id, req.PartKey, req.Seq, req.Payload, actor, req.Evidence, req.Notes)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"part": renderPart(part)}, nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// finalizeRequest is the POST /v1/items/:id/finalize body.
type finalizeRequest struct {
	AgentID string `json:"agent_id" binding:"required"`
	Mode    string `json:"mode" binding:"required,oneof=strict best_effort"`
}

// FinalizeItem handles POST /v1/items/:id/finalize.
func (s *Server) FinalizeItem(c *gin.Context) {
	id := c.Param("id")
	var req finalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.BadRequest("BAD_REQUEST", err.Error()))
		return
	}
	mode := executor.FinalizeStrict
	if req.Mode == "best_effort" {
		mode = executor.FinalizeBestEffort
	}
	actor := middleware.ActorFromRequest(c)
	actor.ID = req.AgentID
	actor.Type = "agent"

	resp, _, err := s.guarded(c, "finalize", "finalize:item:"+id, func(ctx context.Context) (map[string]interface{}, error) {
		it, err := s.deps.Executor.Finalize(ctx, id, mode, actor)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"item": renderItem(it)}, nil
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListItemParts handles GET /v1/items/:id/parts.
func (s *Server) ListItemParts(c *gin.Context) {
	id := c.Param("id")
	parts, err := s.deps.EntClient.ItemPart.Query().
		Where(itempart.ItemIDEQ(id)).
		Order(itempart.ByCreatedAt()).
		All(c.Request.Context())
	if err != nil {
		_ = c.Error(apperr.Wrap(err, "INTERNAL", "failed to list item parts", http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, gin.H{"parts": renderParts(parts)})
}
