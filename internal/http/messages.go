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

// MessagesHandler serves the message endpoints.
type MessagesHandler struct {
	MessageService *service.MessageService
}

// HandleSend handles POST /v1/messages
//
//	@Summary		Send a message
//	@Description	Records an outbound message to one of the caller's contacts.
//	@Description	API keys need the send_message permission.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		parleysdk.SendMessageRequest	true	"Target contact and message body"
//	@Success		201		{object}	parleysdk.Message				"Recorded message"
//	@Failure		400		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		401		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		403		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		404		{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		500		{object}	parleysdk.ErrorResponse			"code, message"
//	@Router			/v1/messages [post].
func (h *MessagesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	var req parleysdk.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		parleysdk.ErrInvalidBody.WriteError(w)
		return
	}
	if strings.TrimSpace(req.ContactID) == "" {
		parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
			"contact_id is required").WriteError(w)
		return
	}
	if strings.TrimSpace(req.Body) == "" {
		parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
			"message body is required").WriteError(w)
		return
	}

	msg, err := h.MessageService.SendMessage(ctx, identity.UserID, req.ContactID, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			parleysdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to record message", "error", err)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, messageResponse(msg))
}

// HandleList handles GET /v1/messages?contact_id=
//
//	@Summary		List a contact's messages
//	@Description	Returns the message history with one contact, newest first.
//	@Description	API keys need the read_messages permission.
//	@Tags			Messages
//	@Security		BearerAuth
//	@Security		APIKeyAuth
//	@Produce		json
//	@Param			contact_id	query		string							true	"Contact ID (ULID)"
//	@Success		200			{object}	parleysdk.ListMessagesResponse	"messages"
//	@Failure		400			{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		401			{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		403			{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		404			{object}	parleysdk.ErrorResponse			"code, message"
//	@Failure		500			{object}	parleysdk.ErrorResponse			"code, message"
//	@Router			/v1/messages [get].
func (h *MessagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := IdentityFromContext(ctx)
	if !ok {
		parleysdk.ErrAuthRequired.WriteError(w)
		return
	}

	contactID := r.URL.Query().Get("contact_id")
	if contactID == "" {
		parleysdk.NewAPIError(http.StatusBadRequest, parleysdk.ErrorCodeValidation,
			"contact_id query parameter is required").WriteError(w)
		return
	}

	msgs, err := h.MessageService.ListMessages(ctx, identity.UserID, contactID)
	if err != nil {
		if errors.Is(err, service.ErrContactNotFound) {
			parleysdk.ErrNotFound.WriteError(w)
			return
		}
		slogx.FromContext(ctx).Error("failed to list messages", "error", err, "contact_id", contactID)
		parleysdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]parleysdk.Message, len(msgs))
	for i, m := range msgs {
		out[i] = messageResponse(m)
	}

	httpx.WriteJSON(w, http.StatusOK, parleysdk.ListMessagesResponse{Messages: out})
}

func messageResponse(m domain.Message) parleysdk.Message {
	return parleysdk.Message{
		ID:        m.ID,
		ContactID: m.ContactID,
		Direction: m.Direction,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}
