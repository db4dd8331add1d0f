package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultConfigurationName = "Standard"

// Configuration is a named trim of a ModelYear. It owns its scalar spec
// overrides and holds non-owning references into the five component
// catalogs. At most one Configuration per model_year_id has IsDefault set.
type Configuration struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	ModelYearID  uuid.UUID `json:"model_year_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Notes        string    `json:"notes"`
	TrimLevel    string    `json:"trim_level"`
	MarketRegion string    `json:"market_region"`
	IsDefault    bool      `json:"is_default"`

	// Component slots. Nullable; many Configurations may reference the
	// same component row.
	EngineID      *uuid.UUID `json:"engine_id"`
	BrakeSystemID *uuid.UUID `json:"brake_system_id"`
	FrameID       *uuid.UUID `json:"frame_id"`
	SuspensionID  *uuid.UUID `json:"suspension_id"`
	WheelID       *uuid.UUID `json:"wheel_id"`

	// Physical spec overrides. When present they shadow the values on the
	// linked component or the parent Model.
	SeatHeightMM      *float64 `json:"seat_height_mm"`
	WeightKG          *float64 `json:"weight_kg"`
	WheelbaseMM       *float64 `json:"wheelbase_mm"`
	FuelCapacityL     *float64 `json:"fuel_capacity_l"`
	GroundClearanceMM *float64 `json:"ground_clearance_mm"`

	MSRP         *float64 `json:"msrp"`
	PricePremium *float64 `json:"price_premium"`

	SpecialFeatures   []string `json:"special_features"`
	OptionalEquipment []string `json:"optional_equipment"`

	// Resolved component rows, populated by joined reads only.
	Engine      *Engine      `json:"engine,omitempty"`
	BrakeSystem *BrakeSystem `json:"brake_system,omitempty"`
	Frame       *Frame       `json:"frame,omitempty"`
	Suspension  *Suspension  `json:"suspension,omitempty"`
	Wheel       *Wheel       `json:"wheel,omitempty"`
}

// SlotFor returns a pointer to the slot holding the given component kind.
func (c *Configuration) SlotFor(t ComponentType) **uuid.UUID {
	switch t {
	case ComponentEngine:
		return &c.EngineID
	case ComponentBrakeSystem:
		return &c.BrakeSystemID
	case ComponentFrame:
		return &c.FrameID
	case ComponentSuspension:
		return &c.SuspensionID
	case ComponentWheel:
		return &c.WheelID
	}
	return nil
}

// CopyForYear builds a copy of c targeted at another model year, dropping
// identity, timestamps and default-ness. Default-ness is not transferable
// across years.
func (c *Configuration) CopyForYear(yearID uuid.UUID) *Configuration {
	cp := *c
	cp.ID = uuid.Nil
	cp.CreatedAt = time.Time{}
	cp.UpdatedAt = time.Time{}
	cp.ModelYearID = yearID
	cp.IsDefault = false
	cp.Engine = nil
	cp.BrakeSystem = nil
	cp.Frame = nil
	cp.Suspension = nil
	cp.Wheel = nil
	cp.SpecialFeatures = append([]string(nil), c.SpecialFeatures...)
	cp.OptionalEquipment = append([]string(nil), c.OptionalEquipment...)
	return &cp
}

// ComponentSummary is the per-model completeness view refreshed by the
// assignment engine ("has engine/brakes/frame/suspension/wheel" badges).
type ComponentSummary struct {
	ModelID        uuid.UUID                   `json:"model_id"`
	Assigned       map[ComponentType]uuid.UUID `json:"assigned"`
	Complete       bool                        `json:"complete"`
	MissingTypes   []ComponentType             `json:"missing_types"`
	AssignedCount  int                         `json:"assigned_count"`
	RequiredCount  int                         `json:"required_count"`
}

func NewComponentSummary(modelID uuid.UUID, assignments []*ModelComponentAssignment) *ComponentSummary {
	all := []ComponentType{ComponentEngine, ComponentBrakeSystem, ComponentFrame, ComponentSuspension, ComponentWheel}
	s := &ComponentSummary{
		ModelID:       modelID,
		Assigned:      make(map[ComponentType]uuid.UUID, len(assignments)),
		RequiredCount: len(all),
	}
	for _, a := range assignments {
		s.Assigned[a.ComponentType] = a.ComponentID
	}
	for _, t := range all {
		if _, ok := s.Assigned[t]; !ok {
			s.MissingTypes = append(s.MissingTypes, t)
		}
	}
	s.AssignedCount = len(s.Assigned)
	s.Complete = len(s.MissingTypes) == 0
	return s
}
