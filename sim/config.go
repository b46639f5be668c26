package sim

// TuningConfig groups the drift coefficients for the metrics dynamics pass.
// The qualitative directions are fixed contract; these constants are the
// concrete tuning and may be overridden from a scenario file.
type TuningConfig struct {
	// Crime dynamics. Next crime is previous crime scaled by
	// 1 + BaseCrimeGrowth - CrimeEnforcementCoeff*enforcement
	//   - CrimeTrustCoeff*trust/100 + action crime percentage.
	BaseCrimeGrowth       float64 `yaml:"base_crime_growth"`
	CrimeEnforcementCoeff float64 `yaml:"crime_enforcement_coeff"`
	CrimeEnforcementCap   float64 `yaml:"crime_enforcement_cap"`
	CrimeTrustCoeff       float64 `yaml:"crime_trust_coeff"`

	// Arrest dynamics. Clearance = ArrestBase + ArrestEnforcementCoeff*E,
	// capped at ArrestRateCap, scaled by LowTrustArrestPenalty when trust
	// drops below LowTrustThreshold.
	ArrestBase             float64 `yaml:"arrest_base"`
	ArrestEnforcementCoeff float64 `yaml:"arrest_enforcement_coeff"`
	ArrestRateCap          float64 `yaml:"arrest_rate_cap"`
	LowTrustThreshold      float64 `yaml:"low_trust_threshold"`
	LowTrustArrestPenalty  float64 `yaml:"low_trust_arrest_penalty"`

	// False-arrest drift toward the district floor per round.
	FalseArrestDecay float64 `yaml:"false_arrest_decay"`

	// Trust dynamics.
	LowFalseArrestBonus   float64 `yaml:"low_false_arrest_bonus"`
	HighFalseArrestMalus  float64 `yaml:"high_false_arrest_malus"`
	OverPolicingThreshold int     `yaml:"over_policing_threshold"`
	OverPolicingMalus     float64 `yaml:"over_policing_malus"`

	// Population drift, applied as fractional change.
	PopulationGrowthPct  float64 `yaml:"population_growth_pct"`
	PopulationDeclinePct float64 `yaml:"population_decline_pct"`

	// Arrest-composition drift: blend weight of the enforcement-skewed
	// demographic target into the previous breakdown each round, and the
	// skew surveillance actions add per implemented surveillance action.
	CompositionBlend float64 `yaml:"composition_blend"`
	SurveillanceSkew float64 `yaml:"surveillance_skew"`

	// Budget economy. Tax rates are dollars per capita per round.
	OfficerSalary  int     `yaml:"officer_salary"`
	TaxRateHigh    float64 `yaml:"tax_rate_high"`
	TaxRateMiddle  float64 `yaml:"tax_rate_middle"`
	TaxRateLow     float64 `yaml:"tax_rate_low"`
	StartingBudget int     `yaml:"starting_budget"`

	// Bias warning threshold shared by events and feedback.
	BiasWarningLevel float64 `yaml:"bias_warning_level"`
}

// DefaultTuning returns the stock coefficients. Documented rationale lives
// in DESIGN.md; gameplay balance targets a roughly break-even treasury on
// the default allocation with actions as the discretionary spend.
func DefaultTuning() TuningConfig {
	return TuningConfig{
		BaseCrimeGrowth:       0.05,
		CrimeEnforcementCoeff: 0.018,
		CrimeEnforcementCap:   0.35,
		CrimeTrustCoeff:       0.10,

		ArrestBase:             0.25,
		ArrestEnforcementCoeff: 0.04,
		ArrestRateCap:          0.90,
		LowTrustThreshold:      30,
		LowTrustArrestPenalty:  0.80,

		FalseArrestDecay: 0.25,

		LowFalseArrestBonus:   1.5,
		HighFalseArrestMalus:  2.0,
		OverPolicingThreshold: 7,
		OverPolicingMalus:     3.0,

		PopulationGrowthPct:  0.003,
		PopulationDeclinePct: 0.004,

		CompositionBlend: 0.20,
		SurveillanceSkew: 0.15,

		OfficerSalary:  28_000,
		TaxRateHigh:    6.0,
		TaxRateMiddle:  3.0,
		TaxRateLow:     1.0,
		StartingBudget: 750_000,

		BiasWarningLevel: 30,
	}
}
