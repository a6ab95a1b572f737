package parleysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Contact and message operations for bearer-token sessions. Sessions see
// every route; API keys need the matching permission.

// CreateContact creates a contact in the session user's workspace.
func (s *Session) CreateContact(ctx context.Context, req CreateContactRequest) (*Contact, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/contacts", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var contact Contact
	if err := decodeJSON(resp, &contact, http.StatusCreated); err != nil {
		return nil, err
	}

	return &contact, nil
}

// ListContacts lists the session user's contacts.
func (s *Session) ListContacts(ctx context.Context) ([]Contact, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/contacts", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListContactsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Contacts, nil
}

// SendMessage sends an outbound message to one of the session user's
// contacts.
func (s *Session) SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/messages", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := decodeJSON(resp, &msg, http.StatusCreated); err != nil {
		return nil, err
	}

	return &msg, nil
}

// ListMessages lists the message history for one contact, newest first.
func (s *Session) ListMessages(ctx context.Context, contactID string) ([]Message, error) {
	path := "/v1/messages?" + url.Values{"contact_id": {contactID}}.Encode()

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListMessagesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Messages, nil
}
