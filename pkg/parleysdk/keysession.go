package parleysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// KeySession authenticates requests with an X-API-Key header. Each
// operation succeeds only if the key carries the matching permission;
// key and user management are off limits to API keys entirely.
type KeySession struct {
	client *SDKClient
	apiKey string
}

// Me returns the identity the API key acts as: the key owner's user ID
// with no email or role.
func (k *KeySession) Me(ctx context.Context) (*MeResponse, error) {
	resp, err := k.doKeyRequest(ctx, http.MethodGet, "/v1/auth/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var me MeResponse
	if err := decodeJSON(resp, &me, http.StatusOK); err != nil {
		return nil, err
	}

	return &me, nil
}

// ListContacts lists the key owner's contacts. Requires the read_contacts
// permission.
func (k *KeySession) ListContacts(ctx context.Context) ([]Contact, error) {
	resp, err := k.doKeyRequest(ctx, http.MethodGet, "/v1/contacts", nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListContactsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Contacts, nil
}

// CreateContact creates a contact in the key owner's workspace. Requires
// the write_contacts permission.
func (k *KeySession) CreateContact(ctx context.Context, req CreateContactRequest) (*Contact, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := k.doKeyRequest(ctx, http.MethodPost, "/v1/contacts", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var contact Contact
	if err := decodeJSON(resp, &contact, http.StatusCreated); err != nil {
		return nil, err
	}

	return &contact, nil
}

// SendMessage sends an outbound message to one of the key owner's
// contacts. Requires the send_message permission.
func (k *KeySession) SendMessage(ctx context.Context, req SendMessageRequest) (*Message, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := k.doKeyRequest(ctx, http.MethodPost, "/v1/messages", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var msg Message
	if err := decodeJSON(resp, &msg, http.StatusCreated); err != nil {
		return nil, err
	}

	return &msg, nil
}

// ListMessages lists one contact's message history. Requires the
// read_messages permission.
func (k *KeySession) ListMessages(ctx context.Context, contactID string) ([]Message, error) {
	path := "/v1/messages?" + url.Values{"contact_id": {contactID}}.Encode()

	resp, err := k.doKeyRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var list ListMessagesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return list.Messages, nil
}
