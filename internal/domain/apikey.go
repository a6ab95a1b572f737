package domain

import (
	"encoding/json"
	"slices"
	"time"
)

// Permission vocabulary for API keys. Keys are granted a subset of these at
// creation; a key with an empty set can authenticate but do nothing.
const (
	PermReadContacts  = "read_contacts"
	PermWriteContacts = "write_contacts"
	PermReadMessages  = "read_messages"
	PermSendMessage   = "send_message"
)

// AllPermissions is the full permission vocabulary.
var AllPermissions = []string{
	PermReadContacts,
	PermWriteContacts,
	PermReadMessages,
	PermSendMessage,
}

// PermissionSet holds a key's granted permissions with O(1) membership
// checks. The zero value is a valid empty set that grants nothing.
type PermissionSet map[string]struct{}

// NewPermissionSet builds a set from the given permission strings.
func NewPermissionSet(perms ...string) PermissionSet {
	set := make(PermissionSet, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return set
}

// Has reports whether the set contains perm.
func (s PermissionSet) Has(perm string) bool {
	_, ok := s[perm]
	return ok
}

// Slice returns the permissions as a sorted slice. Never nil, so it
// serializes as [] rather than null.
func (s PermissionSet) Slice() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// MarshalJSON serializes the set as a sorted JSON array.
func (s PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

// UnmarshalJSON parses a JSON array of permission strings.
func (s *PermissionSet) UnmarshalJSON(data []byte) error {
	var perms []string
	if err := json.Unmarshal(data, &perms); err != nil {
		return err
	}
	*s = NewPermissionSet(perms...)
	return nil
}

// APIKey is a stored API key record. The raw key exists only in the moment
// of creation; what persists is its fingerprint and a display prefix.
type APIKey struct {
	ID          string
	OwnerUserID string
	Name        string
	KeyHash     string // fingerprint (base64url SHA-256) of the raw key
	KeyPrefix   string // first characters of the raw key, for display
	Permissions PermissionSet
	ExpiresAt   *time.Time // nil means the key never expires on its own
	RevokedAt   *time.Time // set once on revocation, never cleared
	LastUsedAt  *time.Time // best-effort, may lag behind actual use
	CreatedAt   time.Time
}

// Revoked reports whether the key has been revoked.
func (k *APIKey) Revoked() bool {
	return k.RevokedAt != nil
}

// Expired reports whether the key's expiry has passed at the given time.
func (k *APIKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && now.After(*k.ExpiresAt)
}
