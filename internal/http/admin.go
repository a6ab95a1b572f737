package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
	"github.com/parleyhq/parley/pkg/slogx"
)

// AdminUsersHandler serves the admin-only user management endpoints. Routes
// sit behind RequireRole("admin"), which also shuts out every API key.
type AdminUsersHandler struct {
	UserService *service.UserService
}

// HandleCreate handles POST /v1/admin/users
//
//	@Summary		Create a user
//	@Description	Provisions a new user account. Admin role required.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		parleysdk.CreateUserRequest	true	"New user details"
//	@Success		201		{object}	parleysdk.User				"Created user"
//	@Failure		400		{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		401		{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		403		{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		409		{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		500		{object}	parleysdk.ErrorResponse		"code, message"
//	@Router			/v1/admin/users [post].
func (h *AdminUsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req parleysdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		parleysdk.ErrInvalidBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
			"email is required").WriteError(w)
		return
	}

	user, err := h.UserService.CreateUser(ctx, req.Email, req.Name, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			parleysdk.ErrConflict.WriteError(w)
		case errors.Is(err, service.ErrInvalidRole), errors.Is(err, service.ErrWeakPassword):
			parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
				err.Error()).WriteError(w)
		default:
			log.Error("failed to create user", "error", err)
			parleysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, userResponse(user))
}

// HandleList handles GET /v1/admin/users
//
//	@Summary		List users
//	@Description	Returns all user accounts, newest first. Admin role required.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	parleysdk.ListUsersResponse	"users"
//	@Failure		401	{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		403	{object}	parleysdk.ErrorResponse		"code, message"
//	@Failure		500	{object}	parleysdk.ErrorResponse		"code, message"
//	@Router			/v1/admin/users [get].
func (h *AdminUsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list users", "error", err)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]parleysdk.User, len(users))
	for i, u := range users {
		out[i] = userResponse(u)
	}

	httpx.WriteJSON(w, http.StatusOK, parleysdk.ListUsersResponse{Users: out})
}

func userResponse(u domain.User) parleysdk.User {
	return parleysdk.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
