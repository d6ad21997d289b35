package models

// BiologicalSex selects the Mifflin-St Jeor constant.
type BiologicalSex string

const (
	SexMale   BiologicalSex = "Male"
	SexFemale BiologicalSex = "Female"
)

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "Sedentary"
	ActivityLightlyActive    ActivityLevel = "Lightly Active"
	ActivityModeratelyActive ActivityLevel = "Moderately Active"
	ActivityVeryActive       ActivityLevel = "Very Active"
	ActivityExtremelyActive  ActivityLevel = "Extremely Active"
)

// RateOfProgress is the weekly weight-change target. One pound of body
// weight is roughly 3500 kcal, so each step maps to a fixed daily
// calorie adjustment.
type RateOfProgress string

const (
	RateLoseOne  RateOfProgress = "Lose 1 lb/week (recommended)"
	RateLoseHalf RateOfProgress = "Lose 0.5 lb/week"
	RateMaintain RateOfProgress = "Maintenance"
	RateGainHalf RateOfProgress = "Gain 0.5 lb/week"
	RateGainOne  RateOfProgress = "Gain 1 lb/week (recommended)"
)

// Goal is the user's high-level objective. It no longer drives the
// calorie target (RateOfProgress does) but is kept as context for the
// coach and food-analysis prompts.
type Goal string

const (
	GoalCutting     Goal = "Cutting"
	GoalBulking     Goal = "Bulking"
	GoalMaintenance Goal = "Maintenance"
	GoalReverseDiet Goal = "Reverse Diet"
)

// Profile holds everything the pipeline needs to know about a user.
// Weight and LeanBodyMass are in pounds, Height in inches.
type Profile struct {
	Name                string         `json:"name"`
	Weight              float64        `json:"weight"`
	Height              float64        `json:"height"`
	Age                 int            `json:"age"`
	BiologicalSex       BiologicalSex  `json:"biological_sex"`
	DietaryRestrictions []string       `json:"dietary_restrictions"`
	Goal                Goal           `json:"goal,omitempty"`
	RateOfProgress      RateOfProgress `json:"rate_of_progress"`
	ActivityLevel       ActivityLevel  `json:"activity_level"`
	ProteinTarget       float64        `json:"protein_target"`
	LeanBodyMass        float64        `json:"lean_body_mass"`
}

// Normalize fills defaults for missing optional fields and clamps
// out-of-range values so that target calculation is total over any
// well-formed input.
func (p *Profile) Normalize() {
	if p.BiologicalSex != SexFemale {
		p.BiologicalSex = SexMale
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivitySedentary
	}
	if p.RateOfProgress == "" {
		p.RateOfProgress = RateMaintain
	}
	if p.ProteinTarget == 0 {
		p.ProteinTarget = 0.8
	}
	if p.ProteinTarget < 0.6 {
		p.ProteinTarget = 0.6
	}
	if p.ProteinTarget > 1.4 {
		p.ProteinTarget = 1.4
	}
	if p.Weight < 0 {
		p.Weight = 0
	}
	if p.Height < 0 {
		p.Height = 0
	}
	if p.Age < 0 {
		p.Age = 0
	}
	if p.LeanBodyMass < 0 {
		p.LeanBodyMass = 0
	}
}

// ReferenceMass is the mass protein targets are computed against:
// lean body mass when known, otherwise total body weight.
func (p *Profile) ReferenceMass() float64 {
	if p.LeanBodyMass > 0 {
		return p.LeanBodyMass
	}
	return p.Weight
}
