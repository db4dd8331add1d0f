package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

type modelRepo struct {
	pool *pgxpool.Pool
}

func NewModelRepository(pool *pgxpool.Pool) ports.ModelRepository {
	return &modelRepo{pool: pool}
}

const modelColumns = `id, created_at, updated_at, brand_id, name, category, production_start, production_end, slug`

var modelSortColumns = map[string]bool{
	"name":             true,
	"category":         true,
	"production_start": true,
	"created_at":       true,
}

func (r *modelRepo) Create(ctx context.Context, model *domain.Model) error {
	query := `
		INSERT INTO motorcycle_models
			(id, created_at, updated_at, brand_id, name, category,
			 production_start, production_end, slug)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		model.ID, model.CreatedAt, model.UpdatedAt, model.BrandID,
		model.Name, string(model.Category),
		model.ProductionStart, model.ProductionEnd, model.Slug,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrModelSlugConflict
		}
		return fmt.Errorf("create model: %w", err)
	}
	return nil
}

func (r *modelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Model, error) {
	query := fmt.Sprintf(`SELECT %s FROM motorcycle_models WHERE id = $1`, modelColumns)
	m, err := scanModel(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get model by id: %w", err)
	}
	return m, nil
}

func (r *modelRepo) GetBySlug(ctx context.Context, slug string) (*domain.Model, error) {
	query := fmt.Sprintf(`SELECT %s FROM motorcycle_models WHERE slug = $1`, modelColumns)
	m, err := scanModel(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get model by slug: %w", err)
	}
	return m, nil
}

func (r *modelRepo) Update(ctx context.Context, model *domain.Model) error {
	query := `
		UPDATE motorcycle_models
		SET name=$1, category=$2, production_start=$3, production_end=$4,
			slug=$5, updated_at=NOW()
		WHERE id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		model.Name, string(model.Category),
		model.ProductionStart, model.ProductionEnd, model.Slug, model.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrModelSlugConflict
		}
		return fmt.Errorf("update model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *modelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM motorcycle_models WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *modelRepo) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.Model, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.BrandID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("brand_id = $%d", argPos))
		args = append(args, filter.BrandID)
		argPos++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, filter.Category)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM motorcycle_models WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count models: %w", err)
	}

	orderBy := orderClause(filter.SortBy, filter.Order, modelSortColumns, "name ASC")

	query := fmt.Sprintf(`SELECT %s FROM motorcycle_models WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		modelColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()

	var models []*domain.Model
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan model row: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate model rows: %w", err)
	}
	return models, total, nil
}

func scanModel(row pgx.Row) (*domain.Model, error) {
	m := &domain.Model{}
	var category string
	err := row.Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt, &m.BrandID, &m.Name,
		&category, &m.ProductionStart, &m.ProductionEnd, &m.Slug)
	if err != nil {
		return nil, err
	}
	m.Category = domain.ModelCategory(category)
	return m, nil
}
