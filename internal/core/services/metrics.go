package services

import (
	"math"

	"github.com/AngelinaFiera614/wrenchmark-sub008/internal/core/domain"
)

// Unit conversions used by the display metrics.
const (
	kgToLb   = 2.20462
	nmToLbFt = 0.737562
)

// Performance categories, banded on power-to-weight, first match wins.
const (
	CategoryExtreme  = "Extreme Performance"
	CategoryHigh     = "High Performance"
	CategorySportPf  = "Sport Performance"
	CategoryModerate = "Moderate Performance"
	CategoryTouring  = "Touring Performance"
	CategoryEntry    = "Entry Level"
)

// Metrics is the full derived-metric set for a fully-joined configuration.
type Metrics struct {
	PowerToWeight           float64 `json:"power_to_weight"`
	TorqueToWeight          float64 `json:"torque_to_weight"`
	PerformanceIndex        float64 `json:"performance_index"`
	DisplacementPerCylinder float64 `json:"displacement_per_cylinder"`
	HorsepowerPerLiter      float64 `json:"horsepower_per_liter"`
	FrontWeightPercent      float64 `json:"front_weight_percent"`
	RearWeightPercent       float64 `json:"rear_weight_percent"`
	PerformanceCategory     string  `json:"performance_category"`
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round1(x float64) float64 { return math.Round(x*10) / 10 }

// PowerToWeight is hp per pound, 0 when either input is missing or zero.
func PowerToWeight(powerHP, weightKG float64) float64 {
	if powerHP <= 0 || weightKG <= 0 {
		return 0
	}
	return round2(powerHP / (weightKG * kgToLb))
}

// TorqueToWeight is lb-ft per pound, 0 when either input is missing or zero.
func TorqueToWeight(torqueNM, weightKG float64) float64 {
	if torqueNM <= 0 || weightKG <= 0 {
		return 0
	}
	return round2((torqueNM * nmToLbFt) / (weightKG * kgToLb))
}

// PerformanceIndex blends power and torque ratios 70/30. Power and weight
// are required; missing torque simply contributes nothing.
func PerformanceIndex(powerHP, torqueNM, weightKG float64) float64 {
	if powerHP <= 0 || weightKG <= 0 {
		return 0
	}
	pw := PowerToWeight(powerHP, weightKG)
	tw := TorqueToWeight(torqueNM, weightKG)
	return round2(pw*0.7 + tw*0.3)
}

func DisplacementPerCylinder(displacementCC float64, cylinderCount int) float64 {
	if displacementCC <= 0 || cylinderCount <= 0 {
		return 0
	}
	return round1(displacementCC / float64(cylinderCount))
}

func HorsepowerPerLiter(powerHP, displacementCC float64) float64 {
	if powerHP <= 0 || displacementCC <= 0 {
		return 0
	}
	return round1(powerHP / (displacementCC / 1000))
}

// WeightDistribution estimates front/rear split from geometry. Without a
// wheelbase the split defaults to 50/50.
func WeightDistribution(wheelbaseMM, seatHeightMM float64) (front, rear float64) {
	if wheelbaseMM <= 0 {
		return 50, 50
	}
	front = 45 + (seatHeightMM/wheelbaseMM)*100
	if front < 40 {
		front = 40
	}
	if front > 55 {
		front = 55
	}
	front = round1(front)
	return front, round1(100 - front)
}

// PerformanceCategory classifies a power-to-weight ratio. Bands are
// inclusive-lower, evaluated top-down.
func PerformanceCategory(powerToWeight float64) string {
	switch {
	case powerToWeight >= 0.4:
		return CategoryExtreme
	case powerToWeight >= 0.3:
		return CategoryHigh
	case powerToWeight >= 0.2:
		return CategorySportPf
	case powerToWeight >= 0.15:
		return CategoryModerate
	case powerToWeight >= 0.1:
		return CategoryTouring
	default:
		return CategoryEntry
	}
}

// CalculateAllMetrics derives every metric from a configuration's own
// fields and its joined engine. Missing or zero inputs always yield zero
// values and the entry-level category, never NaN or Inf.
func CalculateAllMetrics(cfg *domain.Configuration) *Metrics {
	var powerHP, torqueNM, displacementCC float64
	var cylinders int

	if cfg.Engine != nil {
		if cfg.Engine.PowerHP != nil {
			powerHP = *cfg.Engine.PowerHP
		}
		if cfg.Engine.TorqueNM != nil {
			torqueNM = *cfg.Engine.TorqueNM
		}
		displacementCC = cfg.Engine.DisplacementCC
		if cfg.Engine.CylinderCount != nil {
			cylinders = *cfg.Engine.CylinderCount
		}
	}

	var weightKG, wheelbaseMM, seatHeightMM float64
	if cfg.WeightKG != nil {
		weightKG = *cfg.WeightKG
	}
	if cfg.WheelbaseMM != nil {
		wheelbaseMM = *cfg.WheelbaseMM
	}
	if cfg.SeatHeightMM != nil {
		seatHeightMM = *cfg.SeatHeightMM
	}

	m := &Metrics{
		PowerToWeight:           PowerToWeight(powerHP, weightKG),
		TorqueToWeight:          TorqueToWeight(torqueNM, weightKG),
		PerformanceIndex:        PerformanceIndex(powerHP, torqueNM, weightKG),
		DisplacementPerCylinder: DisplacementPerCylinder(displacementCC, cylinders),
		HorsepowerPerLiter:      HorsepowerPerLiter(powerHP, displacementCC),
	}
	m.FrontWeightPercent, m.RearWeightPercent = WeightDistribution(wheelbaseMM, seatHeightMM)
	m.PerformanceCategory = PerformanceCategory(m.PowerToWeight)
	return m
}
