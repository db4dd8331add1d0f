package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

type modelYearRepo struct {
	pool *pgxpool.Pool
}

func NewModelYearRepository(pool *pgxpool.Pool) ports.ModelYearRepository {
	return &modelYearRepo{pool: pool}
}

const modelYearColumns = `id, created_at, updated_at, motorcycle_id, year, msrp, tagline, is_available, marketing_tag`

func (r *modelYearRepo) Create(ctx context.Context, year *domain.ModelYear) error {
	query := `
		INSERT INTO model_years
			(id, created_at, updated_at, motorcycle_id, year, msrp, tagline,
			 is_available, marketing_tag)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		year.ID, year.CreatedAt, year.UpdatedAt, year.ModelID, year.Year,
		year.MSRP, year.Tagline, year.IsAvailable, year.MarketingTag,
	)
	if err != nil {
		return fmt.Errorf("create model year: %w", err)
	}
	return nil
}

func (r *modelYearRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ModelYear, error) {
	query := fmt.Sprintf(`SELECT %s FROM model_years WHERE id = $1`, modelYearColumns)
	my, err := scanModelYear(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelYearNotFound
		}
		return nil, fmt.Errorf("get model year by id: %w", err)
	}
	return my, nil
}

func (r *modelYearRepo) Update(ctx context.Context, year *domain.ModelYear) error {
	query := `
		UPDATE model_years
		SET year=$1, msrp=$2, tagline=$3, is_available=$4, marketing_tag=$5,
			updated_at=NOW()
		WHERE id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		year.Year, year.MSRP, year.Tagline, year.IsAvailable,
		year.MarketingTag, year.ID,
	)
	if err != nil {
		return fmt.Errorf("update model year: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelYearNotFound
	}
	return nil
}

func (r *modelYearRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM model_years WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete model year: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelYearNotFound
	}
	return nil
}

func (r *modelYearRepo) ListByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.ModelYear, error) {
	query := fmt.Sprintf(`SELECT %s FROM model_years WHERE motorcycle_id = $1 ORDER BY year DESC`, modelYearColumns)
	rows, err := r.pool.Query(ctx, query, modelID)
	if err != nil {
		return nil, fmt.Errorf("list model years: %w", err)
	}
	defer rows.Close()

	var years []*domain.ModelYear
	for rows.Next() {
		my, err := scanModelYear(rows)
		if err != nil {
			return nil, fmt.Errorf("scan model year row: %w", err)
		}
		years = append(years, my)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate model year rows: %w", err)
	}
	return years, nil
}

func scanModelYear(row pgx.Row) (*domain.ModelYear, error) {
	my := &domain.ModelYear{}
	err := row.Scan(&my.ID, &my.CreatedAt, &my.UpdatedAt, &my.ModelID, &my.Year,
		&my.MSRP, &my.Tagline, &my.IsAvailable, &my.MarketingTag)
	if err != nil {
		return nil, err
	}
	return my, nil
}
