package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yasmin-center/tanseeq-backend/internal/model"
)

// CoordinatorRepository handles coordinator account data access.
type CoordinatorRepository struct {
	pool *pgxpool.Pool
}

// NewCoordinatorRepository creates a new CoordinatorRepository.
func NewCoordinatorRepository(pool *pgxpool.Pool) *CoordinatorRepository {
	return &CoordinatorRepository{pool: pool}
}

// GetByID retrieves a coordinator by ID.
func (r *CoordinatorRepository) GetByID(ctx context.Context, id int) (*model.Coordinator, error) {
	co := &model.Coordinator{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM coordinators WHERE id = $1`, id,
	).Scan(&co.ID, &co.Name, &co.Email, &co.PasswordHash, &co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return co, nil
}

// GetByEmail retrieves a coordinator by email.
func (r *CoordinatorRepository) GetByEmail(ctx context.Context, email string) (*model.Coordinator, error) {
	co := &model.Coordinator{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM coordinators WHERE email = $1`, email,
	).Scan(&co.ID, &co.Name, &co.Email, &co.PasswordHash, &co.CreatedAt, &co.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return co, nil
}

// Create inserts a new coordinator.
func (r *CoordinatorRepository) Create(ctx context.Context, co *model.Coordinator) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO coordinators (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		co.Name, co.Email, co.PasswordHash,
	).Scan(&co.ID, &co.CreatedAt, &co.UpdatedAt)
}
