package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/naijacomply/backend/api/transport"
	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/pkg/httpcontext"
	complianceUC "github.com/naijacomply/backend/usecase/compliance"
)

type TaskHandler struct {
	baseHandler
	uc *complianceUC.UseCase
}

func NewTaskHandler(uc *complianceUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List compliance tasks
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) GetTasks(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.ListTasks(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	statusFilter := string(ctx.QueryArgs().Peek("status"))
	search := string(ctx.QueryArgs().Peek("search"))
	if statusFilter != "" || search != "" {
		tasks = complianceUC.FilterTasks(tasks, statusFilter, search, time.Now())
	}

	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Task statistics and compliance score
// @Tags tasks
// @Router /api/v1/tasks/stats [get]
func (h *TaskHandler) GetStats(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	stats, err := h.uc.Stats(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	score, err := h.uc.Score(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"stats": stats,
		"score": score,
	})
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	task, ok := h.parseTask(ctx, userID)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.CreateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Generate default tasks for a business type
// @Tags tasks
// @Router /api/v1/tasks/defaults [post]
func (h *TaskHandler) GenerateDefaults(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.GenerateTasksRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.GenerateDefaults(stdCtx, userID, req.BusinessProfileID, domain.BusinessType(req.BusinessType))
	if err != nil {
		var partial *complianceUC.PartialError
		if errors.As(err, &partial) {
			// Earlier creates stay persisted; tell the caller how far it got.
			h.respondJSON(ctx, http.StatusInternalServerError, transport.NewError(
				string(domain.ErrCodeInternal),
				err.Error(),
				map[string]interface{}{"created": partial.Created},
			))
			return
		}
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update task
// @Tags tasks
// @Router /api/v1/tasks/{id} [put]
func (h *TaskHandler) UpdateTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	task, ok := h.parseTask(ctx, userID)
	if !ok {
		return
	}

	if task.ID == "" {
		if id, ok := ctx.UserValue("id").(string); ok {
			task.ID = id
		}
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateTask(stdCtx, task)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Transition stored task status
// @Tags tasks
// @Router /api/v1/tasks/{id}/status [patch]
func (h *TaskHandler) SetStatus(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	var req transport.TaskStatusRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.SetTaskStatus(stdCtx, id, domain.TaskStatus(req.Status)); err != nil {
		h.respondError(ctx, err)
		return
	}

	// Reload so the response carries server-computed fields, most
	// importantly the stamped completed date.
	task, err := h.uc.GetTask(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing task id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *TaskHandler) parseTask(ctx *fasthttp.RequestCtx, userID string) (*domain.ComplianceTask, bool) {
	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return nil, false
	}

	var due time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.DueDate)
		if err != nil {
			h.respondInvalid(ctx, "due_date must be RFC3339")
			return nil, false
		}
		due = parsed
	}

	task := &domain.ComplianceTask{
		ID:            req.ID,
		UserID:        userID,
		Title:         req.Title,
		Description:   req.Description,
		Category:      domain.TaskCategory(req.Category),
		DueDate:       due,
		Priority:      domain.TaskPriority(req.Priority),
		PortalURL:     req.PortalURL,
		AuthorityName: req.AuthorityName,
	}

	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}

	return task, true
}
