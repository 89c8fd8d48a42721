package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/naijacomply/backend/internal/infrastructure/monitor"
	"github.com/naijacomply/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(m *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     m,
	}
}

// @Summary Liveness probe
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Health(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

// @Summary Readiness probe with backing-store detail
// @Tags health
// @Router /health/ready [get]
func (h *HealthHandler) Ready(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	code := http.StatusOK
	if !h.monitor.IsOnline() {
		code = http.StatusServiceUnavailable
	}
	h.respondSuccess(ctx, code, status)
}
