package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

var ErrContactNotFound = errors.New("contact profile not found")

// Repository reads contact fields of the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new contact repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetContact returns the contact profile of a user.
func (r *Repository) GetContact(ctx context.Context, userID string) (model.ContactProfile, error) {
	query := `
		SELECT id, COALESCE(mobile_number, ''), sms_notifications, phone_verified
		FROM users
		WHERE id = $1;
    `

	var p model.ContactProfile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Phone, &p.OptIn, &p.PhoneVerified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ContactProfile{}, ErrContactNotFound
		}

		return model.ContactProfile{}, fmt.Errorf("failed to get contact profile: %w", err)
	}

	return p, nil
}
