package domain

import "time"

// Direction values for Message.Direction.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

type Message struct {
	ID          string
	OwnerUserID string
	ContactID   string
	Direction   string // "inbound" or "outbound"
	Body        string
	CreatedAt   time.Time
}
