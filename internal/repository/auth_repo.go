package repository

import (
	"context"

	"todo_api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	db *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) List(ctx context.Context) ([]*domain.Auth, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, email, password1, password2 FROM auths`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Auth
	for rows.Next() {
		var a domain.Auth
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Password1, &a.Password2); err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	return res, rows.Err()
}

func (r *AuthRepository) GetByID(ctx context.Context, id int32) (*domain.Auth, error) {
	var a domain.Auth
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password1, password2 FROM auths WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Name, &a.Email, &a.Password1, &a.Password2)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*domain.Auth, error) {
	var a domain.Auth
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password1, password2 FROM auths WHERE email = $1`,
		email,
	).Scan(&a.ID, &a.Name, &a.Email, &a.Password1, &a.Password2)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts the account and fills in the store-assigned id.
func (r *AuthRepository) Create(ctx context.Context, a *domain.Auth) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO auths (name, email, password1, password2)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, email, password1, password2`,
		a.Name, a.Email, a.Password1, a.Password2,
	).Scan(&a.ID, &a.Name, &a.Email, &a.Password1, &a.Password2)
}

// Update rewrites all mutable columns of the account. A missing row
// surfaces as pgx.ErrNoRows, same as any other store failure.
func (r *AuthRepository) Update(ctx context.Context, id int32, a *domain.Auth) (*domain.AuthSummary, error) {
	var s domain.AuthSummary
	err := r.db.QueryRow(ctx,
		`UPDATE auths SET name = $1, email = $2, password1 = $3, password2 = $4
		 WHERE id = $5
		 RETURNING name, email`,
		a.Name, a.Email, a.Password1, a.Password2, id,
	).Scan(&s.Name, &s.Email)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AuthRepository) Delete(ctx context.Context, id int32) (*domain.AuthSummary, error) {
	var s domain.AuthSummary
	err := r.db.QueryRow(ctx,
		`DELETE FROM auths WHERE id = $1 RETURNING name, email`,
		id,
	).Scan(&s.Name, &s.Email)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
