package domain

import (
	"time"

	"github.com/google/uuid"
)

type ComponentType string

const (
	ComponentEngine      ComponentType = "engine"
	ComponentBrakeSystem ComponentType = "brake_system"
	ComponentFrame       ComponentType = "frame"
	ComponentSuspension  ComponentType = "suspension"
	ComponentWheel       ComponentType = "wheel"
)

var componentTables = map[ComponentType]string{
	ComponentEngine:      "engines",
	ComponentBrakeSystem: "brake_systems",
	ComponentFrame:       "frames",
	ComponentSuspension:  "suspensions",
	ComponentWheel:       "wheels",
}

func (t ComponentType) Valid() bool {
	_, ok := componentTables[t]
	return ok
}

// Table returns the store table backing this component kind.
func (t ComponentType) Table() string {
	return componentTables[t]
}

func ParseComponentType(s string) (ComponentType, error) {
	t := ComponentType(s)
	if !t.Valid() {
		return "", ErrInvalidComponentType
	}
	return t, nil
}

// Component is the common surface of the five component kinds. Each kind
// carries its own validated field struct; Configurations and model-level
// assignments hold non-owning references to component rows, never copies.
type Component interface {
	ComponentID() uuid.UUID
	Kind() ComponentType
	DisplayName() string
	Draft() bool
}

// ComponentRef identifies one component row of a given kind. It is the
// value written into a Configuration slot or a model-level assignment.
type ComponentRef struct {
	Type ComponentType `json:"component_type"`
	ID   uuid.UUID     `json:"component_id"`
}

type Engine struct {
	ID             uuid.UUID `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Name           string    `json:"name" validate:"required"`
	DisplacementCC float64   `json:"displacement_cc" validate:"required,gt=0"`
	PowerHP        *float64  `json:"power_hp" validate:"omitempty,gte=0"`
	TorqueNM       *float64  `json:"torque_nm" validate:"omitempty,gte=0"`
	CylinderCount  *int      `json:"cylinder_count" validate:"omitempty,gte=1,lte=8"`
	EngineType     string    `json:"engine_type"`
	CoolingSystem  string    `json:"cooling_system"`
	FuelSystem     string    `json:"fuel_system"`
	IsDraft        bool      `json:"is_draft"`
}

func (e *Engine) ComponentID() uuid.UUID { return e.ID }
func (e *Engine) Kind() ComponentType    { return ComponentEngine }
func (e *Engine) DisplayName() string    { return e.Name }
func (e *Engine) Draft() bool            { return e.IsDraft }

type BrakeSystem struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Type            string    `json:"type" validate:"required"`
	FrontDiscSizeMM *float64  `json:"front_disc_size_mm" validate:"omitempty,gt=0"`
	RearDiscSizeMM  *float64  `json:"rear_disc_size_mm" validate:"omitempty,gt=0"`
	BrakeBrand      string    `json:"brake_brand"`
	CaliperType     string    `json:"caliper_type"`
	HasABS          bool      `json:"has_abs"`
	HasTractionCtrl bool      `json:"has_traction_control"`
	IsDraft         bool      `json:"is_draft"`
}

func (b *BrakeSystem) ComponentID() uuid.UUID { return b.ID }
func (b *BrakeSystem) Kind() ComponentType    { return ComponentBrakeSystem }
func (b *BrakeSystem) DisplayName() string    { return b.Type }
func (b *BrakeSystem) Draft() bool            { return b.IsDraft }

type Frame struct {
	ID              uuid.UUID `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Type            string    `json:"type" validate:"required"`
	Material        string    `json:"material"`
	RakeDegrees     *float64  `json:"rake_degrees" validate:"omitempty,gte=0,lte=90"`
	TrailMM         *float64  `json:"trail_mm" validate:"omitempty,gte=0"`
	ConstructionMtd string    `json:"construction_method"`
	IsDraft         bool      `json:"is_draft"`
}

func (f *Frame) ComponentID() uuid.UUID { return f.ID }
func (f *Frame) Kind() ComponentType    { return ComponentFrame }
func (f *Frame) DisplayName() string    { return f.Type }
func (f *Frame) Draft() bool            { return f.IsDraft }

type Suspension struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	FrontType     string    `json:"front_type" validate:"required"`
	RearType      string    `json:"rear_type"`
	Brand         string    `json:"brand"`
	FrontTravelMM *float64  `json:"front_travel_mm" validate:"omitempty,gte=0"`
	RearTravelMM  *float64  `json:"rear_travel_mm" validate:"omitempty,gte=0"`
	Adjustability string    `json:"adjustability"`
	IsDraft       bool      `json:"is_draft"`
}

func (s *Suspension) ComponentID() uuid.UUID { return s.ID }
func (s *Suspension) Kind() ComponentType    { return ComponentSuspension }
func (s *Suspension) DisplayName() string    { return s.FrontType }
func (s *Suspension) Draft() bool            { return s.IsDraft }

type Wheel struct {
	ID            uuid.UUID `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Type          string    `json:"type" validate:"required"`
	FrontSize     string    `json:"front_size"`
	RearSize      string    `json:"rear_size"`
	FrontTireSize string    `json:"front_tire_size"`
	RearTireSize  string    `json:"rear_tire_size"`
	RimMaterial   string    `json:"rim_material"`
	IsDraft       bool      `json:"is_draft"`
}

func (w *Wheel) ComponentID() uuid.UUID { return w.ID }
func (w *Wheel) Kind() ComponentType    { return ComponentWheel }
func (w *Wheel) DisplayName() string    { return w.Type }
func (w *Wheel) Draft() bool            { return w.IsDraft }

// ModelComponentAssignment links a default component to a Model, distinct
// from the per-Configuration slot links.
type ModelComponentAssignment struct {
	ID            uuid.UUID     `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ModelID       uuid.UUID     `json:"model_id"`
	ComponentType ComponentType `json:"component_type"`
	ComponentID   uuid.UUID     `json:"component_id"`
}
