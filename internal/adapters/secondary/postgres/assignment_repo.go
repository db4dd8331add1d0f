package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

type assignmentRepo struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) ports.AssignmentRepository {
	return &assignmentRepo{pool: pool}
}

func (r *assignmentRepo) Upsert(ctx context.Context, assignment *domain.ModelComponentAssignment) error {
	query := `
		INSERT INTO model_component_assignments
			(id, created_at, updated_at, model_id, component_type, component_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (model_id, component_type)
		DO UPDATE SET component_id = EXCLUDED.component_id, updated_at = NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		assignment.ID, assignment.CreatedAt, assignment.UpdatedAt,
		assignment.ModelID, assignment.ComponentType, assignment.ComponentID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrComponentNotFound
		}
		return fmt.Errorf("upsert assignment: %w", err)
	}
	return nil
}

func (r *assignmentRepo) Delete(ctx context.Context, modelID uuid.UUID, componentType domain.ComponentType) error {
	query := `DELETE FROM model_component_assignments WHERE model_id = $1 AND component_type = $2`
	result, err := r.pool.Exec(ctx, query, modelID, componentType)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}

func (r *assignmentRepo) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelComponentAssignment, error) {
	query := `
		SELECT id, created_at, updated_at, model_id, component_type, component_id
		FROM model_component_assignments
		WHERE model_id = $1
		ORDER BY component_type ASC
	`
	rows, err := r.pool.Query(ctx, query, modelID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.ModelComponentAssignment
	for rows.Next() {
		a := &domain.ModelComponentAssignment{}
		if err := rows.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.ModelID,
			&a.ComponentType, &a.ComponentID); err != nil {
			return nil, fmt.Errorf("scan assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignment rows: %w", err)
	}
	return assignments, nil
}
