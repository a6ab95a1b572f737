package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/parleyhq/parley/internal/domain"
	"github.com/parleyhq/parley/internal/store"
)

type contactsRepo struct {
	q sqlx.ExtContext
}

var _ store.Contacts = (*contactsRepo)(nil)

type contactRow struct {
	ID          string    `db:"id"`
	OwnerUserID string    `db:"owner_user_id"`
	Name        string    `db:"name"`
	Phone       string    `db:"phone"`
	Email       string    `db:"email"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r contactRow) toDomain() domain.Contact {
	return domain.Contact{
		ID:          r.ID,
		OwnerUserID: r.OwnerUserID,
		Name:        r.Name,
		Phone:       r.Phone,
		Email:       r.Email,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func contactRowFrom(c domain.Contact) contactRow {
	return contactRow{
		ID:          c.ID,
		OwnerUserID: c.OwnerUserID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
}

func (r *contactsRepo) CreateContact(ctx context.Context, c domain.Contact) error {
	_, err := sqlx.NamedExecContext(ctx, r.q, `
		INSERT INTO contacts (id, owner_user_id, name, phone, email, created_at, updated_at)
		VALUES (:id, :owner_user_id, :name, :phone, :email, :created_at, :updated_at)`,
		contactRowFrom(c))
	return mapConflict(err)
}

func (r *contactsRepo) GetContactByID(ctx context.Context, id string) (domain.Contact, error) {
	var row contactRow
	err := sqlx.GetContext(ctx, r.q, &row, `SELECT * FROM contacts WHERE id = ?`, id)
	if err != nil {
		return domain.Contact{}, mapNotFound(err)
	}
	return row.toDomain(), nil
}

func (r *contactsRepo) ListContactsByOwner(ctx context.Context, ownerUserID string) ([]domain.Contact, error) {
	var rows []contactRow
	err := sqlx.SelectContext(ctx, r.q, &rows,
		`SELECT * FROM contacts WHERE owner_user_id = ? ORDER BY created_at DESC, id DESC`,
		ownerUserID)
	if err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(rows))
	for _, row := range rows {
		contacts = append(contacts, row.toDomain())
	}
	return contacts, nil
}
