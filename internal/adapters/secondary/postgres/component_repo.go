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

// componentRepo dispatches on domain.ComponentType to the five component
// tables. Each kind keeps its own column set and scan function.
type componentRepo struct {
	pool *pgxpool.Pool
}

func NewComponentRepository(pool *pgxpool.Pool) ports.ComponentRepository {
	return &componentRepo{pool: pool}
}

var componentSelectColumns = map[domain.ComponentType]string{
	domain.ComponentEngine:      `id, created_at, updated_at, name, displacement_cc, power_hp, torque_nm, cylinder_count, engine_type, cooling_system, fuel_system, is_draft`,
	domain.ComponentBrakeSystem: `id, created_at, updated_at, type, front_disc_size_mm, rear_disc_size_mm, brake_brand, caliper_type, has_abs, has_traction_control, is_draft`,
	domain.ComponentFrame:       `id, created_at, updated_at, type, material, rake_degrees, trail_mm, construction_method, is_draft`,
	domain.ComponentSuspension:  `id, created_at, updated_at, front_type, rear_type, brand, front_travel_mm, rear_travel_mm, adjustability, is_draft`,
	domain.ComponentWheel:       `id, created_at, updated_at, type, front_size, rear_size, front_tire_size, rear_tire_size, rim_material, is_draft`,
}

var componentOrderColumn = map[domain.ComponentType]string{
	domain.ComponentEngine:      "name",
	domain.ComponentBrakeSystem: "type",
	domain.ComponentFrame:       "type",
	domain.ComponentSuspension:  "front_type",
	domain.ComponentWheel:       "type",
}

func (r *componentRepo) List(ctx context.Context, componentType domain.ComponentType, publishedOnly bool) ([]domain.Component, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, componentSelectColumns[componentType], componentType.Table())
	if publishedOnly {
		query += ` WHERE is_draft = FALSE`
	}
	query += fmt.Sprintf(` ORDER BY %s ASC`, componentOrderColumn[componentType])

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", componentType.Table(), err)
	}
	defer rows.Close()

	var components []domain.Component
	for rows.Next() {
		c, err := scanComponent(componentType, rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", componentType, err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", componentType.Table(), err)
	}
	return components, nil
}

func (r *componentRepo) GetByID(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) (domain.Component, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, componentSelectColumns[componentType], componentType.Table())
	c, err := scanComponent(componentType, r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrComponentNotFound
		}
		return nil, fmt.Errorf("get %s by id: %w", componentType, err)
	}
	return c, nil
}

func (r *componentRepo) Create(ctx context.Context, component domain.Component) error {
	query, args := insertComponent(component)
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create %s: %w", component.Kind(), err)
	}
	return nil
}

func (r *componentRepo) Update(ctx context.Context, component domain.Component) error {
	query, args := updateComponent(component)
	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", component.Kind(), err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrComponentNotFound
	}
	return nil
}

func (r *componentRepo) Delete(ctx context.Context, componentType domain.ComponentType, id uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, componentType.Table())
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrComponentInUse
		}
		return fmt.Errorf("delete %s: %w", componentType, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrComponentNotFound
	}
	return nil
}

func scanComponent(componentType domain.ComponentType, row pgx.Row) (domain.Component, error) {
	switch componentType {
	case domain.ComponentEngine:
		e := &domain.Engine{}
		err := row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.Name,
			&e.DisplacementCC, &e.PowerHP, &e.TorqueNM, &e.CylinderCount,
			&e.EngineType, &e.CoolingSystem, &e.FuelSystem, &e.IsDraft)
		return e, err
	case domain.ComponentBrakeSystem:
		b := &domain.BrakeSystem{}
		err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.Type,
			&b.FrontDiscSizeMM, &b.RearDiscSizeMM, &b.BrakeBrand,
			&b.CaliperType, &b.HasABS, &b.HasTractionCtrl, &b.IsDraft)
		return b, err
	case domain.ComponentFrame:
		f := &domain.Frame{}
		err := row.Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt, &f.Type,
			&f.Material, &f.RakeDegrees, &f.TrailMM, &f.ConstructionMtd, &f.IsDraft)
		return f, err
	case domain.ComponentSuspension:
		s := &domain.Suspension{}
		err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.FrontType,
			&s.RearType, &s.Brand, &s.FrontTravelMM, &s.RearTravelMM,
			&s.Adjustability, &s.IsDraft)
		return s, err
	case domain.ComponentWheel:
		w := &domain.Wheel{}
		err := row.Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt, &w.Type,
			&w.FrontSize, &w.RearSize, &w.FrontTireSize, &w.RearTireSize,
			&w.RimMaterial, &w.IsDraft)
		return w, err
	}
	return nil, domain.ErrInvalidComponentType
}

func insertComponent(component domain.Component) (string, []interface{}) {
	switch c := component.(type) {
	case *domain.Engine:
		return `
			INSERT INTO engines
				(id, created_at, updated_at, name, displacement_cc, power_hp,
				 torque_nm, cylinder_count, engine_type, cooling_system,
				 fuel_system, is_draft)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		`, []interface{}{c.ID, c.CreatedAt, c.UpdatedAt, c.Name, c.DisplacementCC,
				c.PowerHP, c.TorqueNM, c.CylinderCount, c.EngineType,
				c.CoolingSystem, c.FuelSystem, c.IsDraft}
	case *domain.BrakeSystem:
		return `
			INSERT INTO brake_systems
				(id, created_at, updated_at, type, front_disc_size_mm,
				 rear_disc_size_mm, brake_brand, caliper_type, has_abs,
				 has_traction_control, is_draft)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		`, []interface{}{c.ID, c.CreatedAt, c.UpdatedAt, c.Type, c.FrontDiscSizeMM,
				c.RearDiscSizeMM, c.BrakeBrand, c.CaliperType, c.HasABS,
				c.HasTractionCtrl, c.IsDraft}
	case *domain.Frame:
		return `
			INSERT INTO frames
				(id, created_at, updated_at, type, material, rake_degrees,
				 trail_mm, construction_method, is_draft)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		`, []interface{}{c.ID, c.CreatedAt, c.UpdatedAt, c.Type, c.Material,
				c.RakeDegrees, c.TrailMM, c.ConstructionMtd, c.IsDraft}
	case *domain.Suspension:
		return `
			INSERT INTO suspensions
				(id, created_at, updated_at, front_type, rear_type, brand,
				 front_travel_mm, rear_travel_mm, adjustability, is_draft)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, []interface{}{c.ID, c.CreatedAt, c.UpdatedAt, c.FrontType, c.RearType,
				c.Brand, c.FrontTravelMM, c.RearTravelMM, c.Adjustability, c.IsDraft}
	case *domain.Wheel:
		return `
			INSERT INTO wheels
				(id, created_at, updated_at, type, front_size, rear_size,
				 front_tire_size, rear_tire_size, rim_material, is_draft)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, []interface{}{c.ID, c.CreatedAt, c.UpdatedAt, c.Type, c.FrontSize,
				c.RearSize, c.FrontTireSize, c.RearTireSize, c.RimMaterial, c.IsDraft}
	}
	return "", nil
}

func updateComponent(component domain.Component) (string, []interface{}) {
	switch c := component.(type) {
	case *domain.Engine:
		return `
			UPDATE engines
			SET name=$1, displacement_cc=$2, power_hp=$3, torque_nm=$4,
				cylinder_count=$5, engine_type=$6, cooling_system=$7,
				fuel_system=$8, is_draft=$9, updated_at=NOW()
			WHERE id=$10
		`, []interface{}{c.Name, c.DisplacementCC, c.PowerHP, c.TorqueNM,
				c.CylinderCount, c.EngineType, c.CoolingSystem, c.FuelSystem,
				c.IsDraft, c.ID}
	case *domain.BrakeSystem:
		return `
			UPDATE brake_systems
			SET type=$1, front_disc_size_mm=$2, rear_disc_size_mm=$3,
				brake_brand=$4, caliper_type=$5, has_abs=$6,
				has_traction_control=$7, is_draft=$8, updated_at=NOW()
			WHERE id=$9
		`, []interface{}{c.Type, c.FrontDiscSizeMM, c.RearDiscSizeMM, c.BrakeBrand,
				c.CaliperType, c.HasABS, c.HasTractionCtrl, c.IsDraft, c.ID}
	case *domain.Frame:
		return `
			UPDATE frames
			SET type=$1, material=$2, rake_degrees=$3, trail_mm=$4,
				construction_method=$5, is_draft=$6, updated_at=NOW()
			WHERE id=$7
		`, []interface{}{c.Type, c.Material, c.RakeDegrees, c.TrailMM,
				c.ConstructionMtd, c.IsDraft, c.ID}
	case *domain.Suspension:
		return `
			UPDATE suspensions
			SET front_type=$1, rear_type=$2, brand=$3, front_travel_mm=$4,
				rear_travel_mm=$5, adjustability=$6, is_draft=$7, updated_at=NOW()
			WHERE id=$8
		`, []interface{}{c.FrontType, c.RearType, c.Brand, c.FrontTravelMM,
				c.RearTravelMM, c.Adjustability, c.IsDraft, c.ID}
	case *domain.Wheel:
		return `
			UPDATE wheels
			SET type=$1, front_size=$2, rear_size=$3, front_tire_size=$4,
				rear_tire_size=$5, rim_material=$6, is_draft=$7, updated_at=NOW()
			WHERE id=$8
		`, []interface{}{c.Type, c.FrontSize, c.RearSize, c.FrontTireSize,
				c.RearTireSize, c.RimMaterial, c.IsDraft, c.ID}
	}
	return "", nil
}
