// Package http is the HTTP surface of the Parley API: the credential
// dispatcher, the authorization gates, and the v1 route handlers.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
	"github.com/parleyhq/parley/pkg/slogx"
	"github.com/parleyhq/parley/pkg/tokenx"
)

// AuthHandler serves the login, refresh, and identity endpoints.
type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in with email and password
//	@Description	Exchanges an email/password pair for an access and refresh token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		parleysdk.LoginRequest	true	"Login credentials"
//	@Success		200		{object}	parleysdk.TokenResponse	"access_token, refresh_token, token_type, expires_at"
//	@Failure		400		{object}	parleysdk.ErrorResponse	"code, message"
//	@Failure		401		{object}	parleysdk.ErrorResponse	"code, message"
//	@Failure		500		{object}	parleysdk.ErrorResponse	"code, message"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req parleysdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		parleysdk.ErrInvalidBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		parleysdk.ErrInvalidCredentials.WriteError(w)
		return
	}

	_, pair, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			parleysdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "error", err)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

// HandleRefresh handles POST /v1/auth/refresh
//
//	@Summary		Refresh a token pair
//	@Description	Exchanges a valid refresh token for a fresh access and refresh token.
//	@Description	The presented refresh token stays valid until its own expiry.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		parleysdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	parleysdk.TokenResponse		"access_token, refresh_token, token_type, expires_at"
//	@Failure		400		{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		401		{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		500		{object}	parleysdk.ErrorResponse		"code, message"
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req parleysdk.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		parleysdk.ErrInvalidBody.WriteError(w)
		return
	}
	if req.RefreshToken == "" {
		parleysdk.ErrInvalidToken.WriteError(w)
		return
	}

	pair, err := h.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, tokenx.ErrExpiredToken):
			parleysdk.ErrExpiredToken.WriteError(w)
		case errors.Is(err, tokenx.ErrInvalidToken):
			parleysdk.ErrInvalidToken.WriteError(w)
		default:
			slogx.FromContext(ctx).Error("token refresh failed", "error", err)
			parleysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

// HandleMe handles GET /v1/auth/me
//
//	@Summary		Describe the authenticated caller
//	@Description	Returns the identity behind the presented credential, either a
//	@Description	bearer token session or an API key.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Security		APIKeyAuth
//	@Produce		json
//	@Success		200	{object}	parleysdk.MeResponse	"user_id, email, role, auth_method"
//	@Failure		401	{object}	parleysdk.ErrorResponse	"code, message"
//	@Router			/v1/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, parleysdk.MeResponse{
		UserID:     identity.UserID,
		Email:      identity.Email,
		Role:       identity.Role,
		AuthMethod: string(identity.Method),
	})
}

func tokenResponse(pair tokenx.TokenPair) parleysdk.TokenResponse {
	return parleysdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresAt:    pair.ExpiresAt,
	}
}
