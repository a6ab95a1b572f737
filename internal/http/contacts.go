package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/service"
	"github.com/parleyhq/parley/pkg/httpx"
	"github.com/parleyhq/parley/pkg/parleysdk"
	"github.com/parleyhq/parley/pkg/slogx"
)

// ContactsHandler serves the contact CRUD endpoints. All data is scoped to
// the authenticated caller's user.
type ContactsHandler struct {
	ContactService *service.ContactService
}

// HandleCreate handles POST /v1/contacts
//
//	@Summary		Create a contact
//	@Description	Adds a contact to the calling user's workspace. API keys need
//	@Description	the write_contacts permission.
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		parleysdk.CreateContactRequest	true	"Contact details"
//	@Success		201		{object}	parleysdk.Contact				"Created contact"
//	@Failure		400		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		401		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		403		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		500		{object}	parleysdk.ErrorResponse			"code, message"
//	@Router			/v1/contacts [post].
func (h *ContactsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	var req parleysdk.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		parleysdk.ErrInvalidBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
			"contact name is required").WriteError(w)
		return
	}

	contact, err := h.ContactService.CreateContact(ctx, identity.UserID, req.Name, req.Phone, req.Email)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to create contact", "error", err)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, contactResponse(contact))
}

// HandleList handles GET /v1/contacts
//
//	@Summary		List contacts
//	@Description	Returns the calling user's contacts, newest first. API keys need
//	@Description	the read_contacts permission.
//	@Tags			Contacts
//	@Security		BearerAuth
//	@Security		APIKeyAuth
//	@Produce		json
//	@Success		200	{object}	parleysdk.ListContactsResponse	"contacts"
//	@Failure		401	{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		403	{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		500	{object}	parleysdk.ErrorResponse			"code, message"
//	@Router			/v1/contacts [get].
func (h *ContactsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	contacts, err := h.ContactService.ListContacts(ctx, identity.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list contacts", "error", err)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]parleysdk.Contact, len(contacts))
	for i, c := range contacts {
		out[i] = contactResponse(c)
	}

	httpx.WriteJSON(w, http.StatusOK, parleysdk.ListContactsResponse{Contacts: out})
}

func contactResponse(c domain.Contact) parleysdk.Contact {
	return parleysdk.Contact{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
