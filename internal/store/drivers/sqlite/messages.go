package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
)

type messagesRepo struct {
	q sqlx.ExtContext
}

var _ store.Messages = (*messagesRepo)(nil)

type messageRow struct {
	ID          string    `db:"id"`
	OwnerUserID string    `db:"owner_user_id"`
	ContactID   string    `db:"contact_id"`
	Direction   string    `db:"direction"`
	Body        string    `db:"body"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r messageRow) toDomain() domain.Message {
	return domain.Message{
		ID:          r.ID,
		OwnerUserID: r.OwnerUserID,
		ContactID:   r.ContactID,
		Direction:   r.Direction,
		Body:        r.Body,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

func messageRowFrom(m domain.Message) messageRow {
	return messageRow{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		ContactID:   m.ContactID,
		Direction:   m.Direction,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

func (r *messagesRepo) CreateMessage(ctx context.Context, m domain.Message) error {
	_, err := sqlx.NamedExecContext(ctx, r.q, `
		INSERT INTO messages (id, owner_user_id, contact_id, direction, body, created_at)
		VALUES (:id, :owner_user_id, :contact_id, :direction, :body, :created_at)`,
		messageRowFrom(m))
	return mapConflict(err)
}

func (r *messagesRepo) ListMessagesByContact(ctx context.Context, ownerUserID, contactID string) ([]domain.Message, error) {
	var rows []messageRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT * FROM messages WHERE owner_user_id = ? AND contact_id = ?
		 ORDER BY created_at DESC, id DESC`,
		ownerUserID, contactID)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toDomain())
	}
	return messages, nil
}
