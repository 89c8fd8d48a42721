package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/naijacomply/backend/api/transport"
	"github.com/naijacomply/backend/domain"
	"github.com/naijacomply/backend/internal/config"
	"github.com/naijacomply/backend/pkg/httpcontext"
	authUC "github.com/naijacomply/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc         *authUC.UseCase
	jwtSecret  string
	jwtIssuer  string
	defaultTTL time.Duration
}

func NewAuthHandler(uc *authUC.UseCase, cfg *config.Config, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		jwtSecret:   cfg.JWT.Secret,
		jwtIssuer:   cfg.JWT.Issuer,
		defaultTTL:  cfg.Session.TTL,
	}
}

type sessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token,omitempty"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// @Summary Issue a session and bearer token for a known user
// @Tags auth
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.AuthLoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.UserID == "" {
		h.respondInvalid(ctx, "user_id is required")
		return
	}

	ttl := h.defaultTTL
	if req.TTL > 0 {
		ttl = time.Duration(req.TTL) * time.Second
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.CreateSession(stdCtx, req.UserID, ttl)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	token, err := h.signToken(session)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInternal, "failed to sign token", err))
		return
	}

	h.respondSuccess(ctx, http.StatusOK, sessionResponse{
		SessionID: session.ID,
		Token:     token,
		UserID:    session.UserID,
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt,
	})
}

// @Summary Extend an existing session
// @Tags auth
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(ctx *fasthttp.RequestCtx) {
	var req transport.RefreshRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.SessionID == "" {
		h.respondInvalid(ctx, "session_id is required")
		return
	}

	ttl := h.defaultTTL
	if req.TTL > 0 {
		ttl = time.Duration(req.TTL) * time.Second
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.RefreshSession(stdCtx, req.SessionID, ttl)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	token, err := h.signToken(session)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInternal, "failed to sign token", err))
		return
	}

	h.respondSuccess(ctx, http.StatusOK, sessionResponse{
		SessionID: session.ID,
		Token:     token,
		UserID:    session.UserID,
		Role:      string(session.Role),
		ExpiresAt: session.ExpiresAt,
	})
}

// @Summary Revoke a session
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	var req transport.RefreshRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.SessionID == "" {
		h.respondInvalid(ctx, "session_id is required")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RevokeSession(stdCtx, req.SessionID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, nil)
}

func (h *AuthHandler) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"iss":        h.jwtIssuer,
		"sub":        session.UserID,
		"user_id":    session.UserID,
		"role":       string(session.Role),
		"session_id": session.ID,
		"exp":        session.ExpiresAt.Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
