package accountrepo

import (
	"context"

	"github.com/SKuzmin/cryptopay/internal/domain"
	"github.com/SKuzmin/cryptopay/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	err := repo.db.QueryRow(ctx,
		"SELECT id, email, username, password_hash, role, created_at FROM accounts WHERE email = $1", email).
		Scan(&account.ID, &account.Email, &account.Username, &account.PasswordHash, &account.Role, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account by email", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	err := repo.db.QueryRow(ctx,
		"SELECT id, email, username, password_hash, role, created_at FROM accounts WHERE id = $1", id).
		Scan(&account.ID, &account.Email, &account.Username, &account.PasswordHash, &account.Role, &account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find account by id", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

// Create inserts the account keyed by its unique email. The insert and the
// duplicate check are one statement, so two concurrent registrations with the
// same email cannot both succeed. Returns false when the email already exists.
func (repo *Repository) Create(ctx context.Context, account *domain.Account) (bool, error) {
	query := `
		INSERT INTO accounts (id, email, username, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query,
		account.ID, account.Email, account.Username, account.PasswordHash, account.Role).
		Scan(&account.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		zap.L().Error("can't save account", zap.Error(err))
		return false, err
	}
	return true, nil
}
