package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/naijacomply/backend/api/transport"
	"github.com/naijacomply/backend/pkg/httpcontext"
	"github.com/naijacomply/backend/repository"
	documentUC "github.com/naijacomply/backend/usecase/document"
)

type DocumentHandler struct {
	baseHandler
	uc *documentUC.UseCase
}

func NewDocumentHandler(uc *documentUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List documents
// @Tags documents
// @Router /api/v1/documents [get]
func (h *DocumentHandler) GetDocuments(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	category := string(ctx.QueryArgs().Peek("category"))

	var err error
	var docs interface{}
	if category != "" {
		docs, err = h.uc.ListByCategory(stdCtx, userID, category)
	} else {
		docs, err = h.uc.List(stdCtx, userID)
	}
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, docs)
}

// @Summary Documents expiring within the standard window
// @Tags documents
// @Router /api/v1/documents/expiring [get]
func (h *DocumentHandler) GetExpiring(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	docs, err := h.uc.ListExpiring(stdCtx, userID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, docs)
}

// @Summary Upload a document
// @Tags documents
// @Router /api/v1/documents [post]
func (h *DocumentHandler) Upload(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	var req transport.DocumentUploadRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		h.respondInvalid(ctx, "data must be base64")
		return
	}

	expiry, ok := h.parseExpiry(ctx, req.ExpiryDate)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	doc, err := h.uc.Upload(stdCtx, documentUC.UploadInput{
		UserID:            userID,
		BusinessProfileID: req.BusinessProfileID,
		FileName:          req.FileName,
		FileType:          req.FileType,
		Category:          req.Category,
		ExpiryDate:        expiry,
		Data:              data,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, doc)
}

// @Summary Download the stored binary
// @Tags documents
// @Router /api/v1/documents/{id}/download [get]
func (h *DocumentHandler) Download(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing document id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	doc, data, err := h.uc.Download(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType(doc.FileType)
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(data)
}

// @Summary Update document metadata
// @Tags documents
// @Router /api/v1/documents/{id} [patch]
func (h *DocumentHandler) Update(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing document id")
		return
	}

	var req transport.DocumentUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid payload")
		return
	}

	expiry, ok := h.parseExpiry(ctx, req.ExpiryDate)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Update(stdCtx, id, repository.DocumentUpdate{
		Category:   req.Category,
		ExpiryDate: expiry,
	}); err != nil {
		h.respondError(ctx, err)
		return
	}

	doc, err := h.uc.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, doc)
}

// @Summary Delete document
// @Tags documents
// @Router /api/v1/documents/{id} [delete]
func (h *DocumentHandler) Delete(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondInvalid(ctx, "missing document id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func (h *DocumentHandler) parseExpiry(ctx *fasthttp.RequestCtx, raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		h.respondInvalid(ctx, "expiry_date must be RFC3339")
		return nil, false
	}
	return &parsed, true
}
