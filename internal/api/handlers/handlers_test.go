package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"workorder.io/engine/internal/api/middleware"
	"workorder.io/engine/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

func newTestRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/v1/orders", s.ProposeOrder)
	r.POST("/v1/items/checkout", s.CheckoutItem)
	r.POST("/v1/items/:id/heartbeat", s.HeartbeatItem)
	r.POST("/v1/items/:id/release", s.ReleaseItem)
	r.POST("/v1/items/:id/submit", s.SubmitItem)
	r.POST("/v1/items/:id/submit-part", s.SubmitItemPart)
	r.POST("/v1/items/:id/finalize", s.FinalizeItem)
	r.POST("/v1/orders/:id/reject", s.RejectOrder)
	r.GET("/health/live", s.GetLiveness)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProposeOrder_RejectsMissingType(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/orders", []byte(`{"payload":{"a":1}}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProposeOrder_RejectsInvalidJSON(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/orders", []byte(`not json`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutItem_RequiresAgentID(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/items/checkout", []byte(`{}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHeartbeatItem_RequiresAgentID(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/items/item-1/heartbeat", []byte(`{}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitItem_RequiresResult(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/items/item-1/submit", []byte(`{"agent_id":"a1"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitItemPart_RequiresPartKeyAndPayload(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/items/item-1/submit-part", []byte(`{"agent_id":"a1"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFinalizeItem_RejectsUnknownMode(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/items/item-1/finalize", []byte(`{"agent_id":"a1","mode":"bogus"}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitItem_RequiresIdempotencyKeyWhenEnforced(t *testing.T) {
	s := NewServer(ServerDeps{IdemEnforceOn: []string{"submit"}})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/items/item-1/submit", []byte(`{"agent_id":"a1","result":{"ok":true}}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "IDEMPOTENCY_REQUIRED")
}

func TestProposeOrder_RequiresIdempotencyKeyWhenEnforced(t *testing.T) {
	s := NewServer(ServerDeps{IdemEnforceOn: []string{"propose"}})
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPost, "/v1/orders", []byte(`{"type":"t","payload":{"a":1}}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "IDEMPOTENCY_REQUIRED")
}

func TestListOrders_RejectsUnknownParams(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/v1/orders", s.ListOrders)

	for _, path := range []string{
		"/v1/orders?bogus=1",
		"/v1/orders?state=nope",
		"/v1/orders?item_state=nope",
		"/v1/orders?sort=nope",
		"/v1/orders?order=sideways",
		"/v1/orders?include=everything",
		"/v1/orders?page=0",
		"/v1/orders?page_size=101",
		"/v1/orders?priority_gte=abc",
		"/v1/orders?created_after=yesterday",
		"/v1/orders?meta_contains=not-json",
		"/v1/orders?has_available_items=maybe",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code, path)
		require.Contains(t, w.Body.String(), "INVALID_QUERY", path)
	}
}

func TestGetLiveness_OK(t *testing.T) {
	s := NewServer(ServerDeps{})
	r := newTestRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
