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

type brandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepository(pool *pgxpool.Pool) ports.BrandRepository {
	return &brandRepo{pool: pool}
}

const brandColumns = `id, created_at, updated_at, name, country, founded_year, slug`

var brandSortColumns = map[string]bool{
	"name":         true,
	"country":      true,
	"founded_year": true,
	"created_at":   true,
}

func (r *brandRepo) Create(ctx context.Context, brand *domain.Brand) error {
	query := `
		INSERT INTO brands (id, created_at, updated_at, name, country, founded_year, slug)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.pool.Exec(ctx, query,
		brand.ID, brand.CreatedAt, brand.UpdatedAt,
		brand.Name, brand.Country, brand.FoundedYear, brand.Slug,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrBrandSlugConflict
		}
		return fmt.Errorf("create brand: %w", err)
	}
	return nil
}

func (r *brandRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands WHERE id = $1`, brandColumns)
	b, err := scanBrand(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, fmt.Errorf("get brand by id: %w", err)
	}
	return b, nil
}

func (r *brandRepo) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	query := fmt.Sprintf(`SELECT %s FROM brands WHERE slug = $1`, brandColumns)
	b, err := scanBrand(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBrandNotFound
		}
		return nil, fmt.Errorf("get brand by slug: %w", err)
	}
	return b, nil
}

func (r *brandRepo) Update(ctx context.Context, brand *domain.Brand) error {
	query := `
		UPDATE brands
		SET name=$1, country=$2, founded_year=$3, slug=$4, updated_at=NOW()
		WHERE id=$5
	`
	result, err := r.pool.Exec(ctx, query,
		brand.Name, brand.Country, brand.FoundedYear, brand.Slug, brand.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrBrandSlugConflict
		}
		return fmt.Errorf("update brand: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

func (r *brandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrBrandHasModels
		}
		return fmt.Errorf("delete brand: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBrandNotFound
	}
	return nil
}

func (r *brandRepo) List(ctx context.Context, filter ports.BrandListFilter) ([]*domain.Brand, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Country != "" {
		conditions = append(conditions, fmt.Sprintf("country = $%d", argPos))
		args = append(args, filter.Country)
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

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM brands WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count brands: %w", err)
	}

	orderBy := orderClause(filter.SortBy, filter.Order, brandSortColumns, "name ASC")

	query := fmt.Sprintf(`SELECT %s FROM brands WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		brandColumns, whereClause, orderBy, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []*domain.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan brand row: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate brand rows: %w", err)
	}
	return brands, total, nil
}

func scanBrand(row pgx.Row) (*domain.Brand, error) {
	b := &domain.Brand{}
	err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.Name, &b.Country, &b.FoundedYear, &b.Slug)
	if err != nil {
		return nil, err
	}
	return b, nil
}
