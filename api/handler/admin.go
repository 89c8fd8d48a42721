package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/naijacomply/backend/api/transport"
	"github.com/naijacomply/backend/pkg/httpcontext"
	complianceUC "github.com/naijacomply/backend/usecase/compliance"
	documentUC "github.com/naijacomply/backend/usecase/document"
	notificationUC "github.com/naijacomply/backend/usecase/notification"
)

// AdminHandler serves the SuperAdmin oversight surface. The router mounts
// every method behind the SuperAdmin role gate.
type AdminHandler struct {
	baseHandler
	tasks         *complianceUC.UseCase
	documents     *documentUC.UseCase
	notifications *notificationUC.UseCase
}

func NewAdminHandler(
	tasks *complianceUC.UseCase,
	documents *documentUC.UseCase,
	notifications *notificationUC.UseCase,
	adapter *httpcontext.Adapter,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		baseHandler:   newBaseHandler(adapter, logger),
		tasks:         tasks,
		documents:     documents,
		notifications: notifications,
	}
}

// @Summary All tasks across users, filtered by effective status
// @Tags admin
// @Router /api/v1/admin/tasks [get]
func (h *AdminHandler) GetAllTasks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	statusFilter := string(ctx.QueryArgs().Peek("status"))
	if statusFilter == "" {
		statusFilter = complianceUC.StatusFilterAll
	}

	tasks, err := h.tasks.ListAllTasks(stdCtx, statusFilter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary All documents across users
// @Tags admin
// @Router /api/v1/admin/documents [get]
func (h *AdminHandler) GetAllDocuments(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	docs, err := h.documents.ListAll(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, docs)
}

// @Summary Broadcast an alert to a set of users
// @Tags admin
// @Router /api/v1/admin/broadcast [post]
func (h *AdminHandler) Broadcast(ctx *fasthttp.RequestCtx) {
	var req transport.BroadcastRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}
	if len(req.UserIDs) == 0 {
		h.respondInvalid(ctx, "user_ids is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	sent, err := h.notifications.Broadcast(stdCtx, req.UserIDs, req.Title, req.Message)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]int{"sent": sent})
}
