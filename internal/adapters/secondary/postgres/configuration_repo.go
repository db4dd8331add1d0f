package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
	ports "github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/ports/output"
)

const configColumns = `
	id, created_at, updated_at, model_year_id, name, description, notes,
	trim_level, market_region, is_default,
	engine_id, brake_system_id, frame_id, suspension_id, wheel_id,
	seat_height_mm, weight_kg, wheelbase_mm, fuel_capacity_l,
	ground_clearance_mm, msrp, price_premium,
	special_features, optional_equipment
`

var configSlotColumns = map[domain.ComponentType]string{
	domain.ComponentEngine:      "engine_id",
	domain.ComponentBrakeSystem: "brake_system_id",
	domain.ComponentFrame:       "frame_id",
	domain.ComponentSuspension:  "suspension_id",
	domain.ComponentWheel:       "wheel_id",
}

type configurationRepo struct {
	pool *pgxpool.Pool
}

func NewConfigurationRepository(pool *pgxpool.Pool) ports.ConfigurationRepository {
	return &configurationRepo{pool: pool}
}

func (r *configurationRepo) Create(ctx context.Context, cfg *domain.Configuration) error {
	query := `
		INSERT INTO model_configurations (` + configColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
			$18,$19,$20,$21,$22,$23,$24)
	`
	_, err := r.pool.Exec(ctx, query, configArgs(cfg)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrConfigurationNameConflict
		}
		return fmt.Errorf("create configuration: %w", err)
	}
	return nil
}

func (r *configurationRepo) CreateBatch(ctx context.Context, cfgs []*domain.Configuration) ([]uuid.UUID, error) {
	query := `
		INSERT INTO model_configurations (` + configColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,
			$18,$19,$20,$21,$22,$23,$24)
		ON CONFLICT (model_year_id, name) DO NOTHING
		RETURNING id
	`
	var created []uuid.UUID
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, cfg := range cfgs {
			var id uuid.UUID
			err := tx.QueryRow(ctx, query, configArgs(cfg)...).Scan(&id)
			if errors.Is(err, pgx.ErrNoRows) {
				continue // name already taken for this year
			}
			if err != nil {
				return fmt.Errorf("insert configuration %q: %w", cfg.Name, err)
			}
			created = append(created, id)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("batch create configurations: %w", err)
	}
	return created, nil
}

func (r *configurationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Configuration, error) {
	query := `SELECT ` + configColumns + ` FROM model_configurations WHERE id = $1`
	cfg, err := scanConfiguration(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConfigurationNotFound
		}
		return nil, fmt.Errorf("get configuration by id: %w", err)
	}
	if err := r.resolveComponents(ctx, []*domain.Configuration{cfg}); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *configurationRepo) ListForYear(ctx context.Context, modelYearID uuid.UUID) ([]*domain.Configuration, error) {
	query := `
		SELECT ` + configColumns + `
		FROM model_configurations
		WHERE model_year_id = $1
		ORDER BY is_default DESC, name ASC
	`
	rows, err := r.pool.Query(ctx, query, modelYearID)
	if err != nil {
		return nil, fmt.Errorf("list configurations for year: %w", err)
	}
	defer rows.Close()

	var cfgs []*domain.Configuration
	for rows.Next() {
		cfg, err := scanConfiguration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan configuration row: %w", err)
		}
		cfgs = append(cfgs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate configuration rows: %w", err)
	}
	if err := r.resolveComponents(ctx, cfgs); err != nil {
		return nil, err
	}
	return cfgs, nil
}

func (r *configurationRepo) FindByYearAndName(ctx context.Context, modelYearID uuid.UUID, name string) (*domain.Configuration, error) {
	query := `
		SELECT ` + configColumns + `
		FROM model_configurations
		WHERE model_year_id = $1 AND name = $2
	`
	cfg, err := scanConfiguration(r.pool.QueryRow(ctx, query, modelYearID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConfigurationNotFound
		}
		return nil, fmt.Errorf("find configuration by year and name: %w", err)
	}
	return cfg, nil
}

func (r *configurationRepo) Update(ctx context.Context, cfg *domain.Configuration) error {
	query := `
		UPDATE model_configurations
		SET name=$1, description=$2, notes=$3, trim_level=$4, market_region=$5,
			engine_id=$6, brake_system_id=$7, frame_id=$8, suspension_id=$9,
			wheel_id=$10, seat_height_mm=$11, weight_kg=$12, wheelbase_mm=$13,
			fuel_capacity_l=$14, ground_clearance_mm=$15, msrp=$16,
			price_premium=$17, special_features=$18, optional_equipment=$19,
			updated_at=NOW()
		WHERE id=$20
	`
	result, err := r.pool.Exec(ctx, query,
		cfg.Name, cfg.Description, cfg.Notes, cfg.TrimLevel, cfg.MarketRegion,
		cfg.EngineID, cfg.BrakeSystemID, cfg.FrameID, cfg.SuspensionID,
		cfg.WheelID, cfg.SeatHeightMM, cfg.WeightKG, cfg.WheelbaseMM,
		cfg.FuelCapacityL, cfg.GroundClearanceMM, cfg.MSRP, cfg.PricePremium,
		cfg.SpecialFeatures, cfg.OptionalEquipment, cfg.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrConfigurationNameConflict
		}
		return fmt.Errorf("update configuration: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConfigurationNotFound
	}
	return nil
}

func (r *configurationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM model_configurations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete configuration: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConfigurationNotFound
	}
	return nil
}

func (r *configurationRepo) GetDefault(ctx context.Context, modelYearID uuid.UUID) (*domain.Configuration, error) {
	query := `
		SELECT ` + configColumns + `
		FROM model_configurations
		WHERE model_year_id = $1 AND is_default = TRUE
	`
	cfg, err := scanConfiguration(r.pool.QueryRow(ctx, query, modelYearID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get default configuration: %w", err)
	}
	return cfg, nil
}

func (r *configurationRepo) SetDefault(ctx context.Context, modelYearID uuid.UUID, configurationID uuid.UUID) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			UPDATE model_configurations
			SET is_default = FALSE, updated_at = NOW()
			WHERE model_year_id = $1 AND is_default = TRUE AND id <> $2
		`, modelYearID, configurationID)
		if err != nil {
			return fmt.Errorf("clear previous default: %w", err)
		}

		result, err := tx.Exec(ctx, `
			UPDATE model_configurations
			SET is_default = TRUE, updated_at = NOW()
			WHERE id = $1 AND model_year_id = $2
		`, configurationID, modelYearID)
		if err != nil {
			return fmt.Errorf("set default: %w", err)
		}
		if result.RowsAffected() == 0 {
			return domain.ErrConfigurationNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConfigurationNotFound) {
			return domain.ErrConfigurationNotFound
		}
		return fmt.Errorf("set default configuration: %w", err)
	}
	return nil
}

func (r *configurationRepo) SetComponent(ctx context.Context, configurationID uuid.UUID, componentType domain.ComponentType, componentID *uuid.UUID) error {
	column, ok := configSlotColumns[componentType]
	if !ok {
		return domain.ErrInvalidComponentType
	}
	query := fmt.Sprintf(`
		UPDATE model_configurations
		SET %s = $1, updated_at = NOW()
		WHERE id = $2
	`, column)
	result, err := r.pool.Exec(ctx, query, componentID, configurationID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrComponentNotFound
		}
		return fmt.Errorf("set configuration %s: %w", componentType, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrConfigurationNotFound
	}
	return nil
}

func (r *configurationRepo) CountReferencing(ctx context.Context, componentType domain.ComponentType, componentID uuid.UUID) (int, error) {
	column, ok := configSlotColumns[componentType]
	if !ok {
		return 0, domain.ErrInvalidComponentType
	}
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM model_configurations WHERE %s = $1`, column)
	if err := r.pool.QueryRow(ctx, query, componentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count configurations referencing %s: %w", componentType, err)
	}
	return count, nil
}

// resolveComponents fills the resolved component fields for a page of
// configurations with one batched query per referenced kind.
func (r *configurationRepo) resolveComponents(ctx context.Context, cfgs []*domain.Configuration) error {
	byType := map[domain.ComponentType][]uuid.UUID{}
	seen := map[uuid.UUID]bool{}
	for _, cfg := range cfgs {
		for _, t := range []domain.ComponentType{
			domain.ComponentEngine, domain.ComponentBrakeSystem,
			domain.ComponentFrame, domain.ComponentSuspension,
			domain.ComponentWheel,
		} {
			slot := *cfg.SlotFor(t)
			if slot == nil || seen[*slot] {
				continue
			}
			seen[*slot] = true
			byType[t] = append(byType[t], *slot)
		}
	}

	loaded := map[uuid.UUID]domain.Component{}
	for t, ids := range byType {
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = ANY($1)`,
			componentSelectColumns[t], t.Table())
		rows, err := r.pool.Query(ctx, query, ids)
		if err != nil {
			return fmt.Errorf("load %s rows: %w", t.Table(), err)
		}
		for rows.Next() {
			c, err := scanComponent(t, rows)
			if err != nil {
				rows.Close()
				return fmt.Errorf("scan %s row: %w", t, err)
			}
			loaded[c.ComponentID()] = c
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate %s rows: %w", t.Table(), err)
		}
	}

	for _, cfg := range cfgs {
		if cfg.EngineID != nil {
			if e, ok := loaded[*cfg.EngineID].(*domain.Engine); ok {
				cfg.Engine = e
			}
		}
		if cfg.BrakeSystemID != nil {
			if b, ok := loaded[*cfg.BrakeSystemID].(*domain.BrakeSystem); ok {
				cfg.BrakeSystem = b
			}
		}
		if cfg.FrameID != nil {
			if f, ok := loaded[*cfg.FrameID].(*domain.Frame); ok {
				cfg.Frame = f
			}
		}
		if cfg.SuspensionID != nil {
			if s, ok := loaded[*cfg.SuspensionID].(*domain.Suspension); ok {
				cfg.Suspension = s
			}
		}
		if cfg.WheelID != nil {
			if w, ok := loaded[*cfg.WheelID].(*domain.Wheel); ok {
				cfg.Wheel = w
			}
		}
	}
	return nil
}

func configArgs(cfg *domain.Configuration) []interface{} {
	return []interface{}{
		cfg.ID, cfg.CreatedAt, cfg.UpdatedAt, cfg.ModelYearID, cfg.Name,
		cfg.Description, cfg.Notes, cfg.TrimLevel, cfg.MarketRegion,
		cfg.IsDefault, cfg.EngineID, cfg.BrakeSystemID, cfg.FrameID,
		cfg.SuspensionID, cfg.WheelID, cfg.SeatHeightMM, cfg.WeightKG,
		cfg.WheelbaseMM, cfg.FuelCapacityL, cfg.GroundClearanceMM, cfg.MSRP,
		cfg.PricePremium, cfg.SpecialFeatures, cfg.OptionalEquipment,
	}
}

func scanConfiguration(row pgx.Row) (*domain.Configuration, error) {
	cfg := &domain.Configuration{}
	err := row.Scan(
		&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt, &cfg.ModelYearID, &cfg.Name,
		&cfg.Description, &cfg.Notes, &cfg.TrimLevel, &cfg.MarketRegion,
		&cfg.IsDefault, &cfg.EngineID, &cfg.BrakeSystemID, &cfg.FrameID,
		&cfg.SuspensionID, &cfg.WheelID, &cfg.SeatHeightMM, &cfg.WeightKG,
		&cfg.WheelbaseMM, &cfg.FuelCapacityL, &cfg.GroundClearanceMM,
		&cfg.MSRP, &cfg.PricePremium, &cfg.SpecialFeatures, &cfg.OptionalEquipment,
	)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
