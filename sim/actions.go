package sim

// ActionID identifies a policy intervention from the fixed catalog.
type ActionID string

const (
	ActionCCTV              ActionID = "cctv"
	ActionDroneSurveillance ActionID = "drone_surveillance"
	ActionFacialRecognition ActionID = "facial_recognition"
	ActionEducationProgram  ActionID = "education_program"
	ActionReportingApp      ActionID = "reporting_app"
)

// AllActions lists action IDs in canonical order.
var AllActions = []ActionID{
	ActionCCTV,
	ActionDroneSurveillance,
	ActionFacialRecognition,
	ActionEducationProgram,
	ActionReportingApp,
}

// ActionDefinition is one catalog entry: display metadata, one-time cost,
// optional prerequisite, and the qualitative effect profile the resolver
// turns into concrete metric modifiers.
type ActionDefinition struct {
	ID          ActionID
	Title       string
	Description string
	Cost        int

	// Prerequisite names an action that must already be implemented in the
	// same district, or "" for none.
	Prerequisite ActionID

	// Effect profile. CrimePct is a fractional change to reported crime
	// (-0.10 = ten percent fewer crimes). TrustDelta and FalseArrestDelta
	// are additive points on the 0-100 scales. ArrestBoost is added to the
	// clearance rate. DiversityScaled effects are multiplied by the target
	// district's DiversityFactor; TrustLowOnly and FalseArrestTrustGated
	// restrict an effect to low-trust / adequate-trust districts.
	CrimePct         float64
	TrustDelta       float64
	FalseArrestDelta float64
	ArrestBoost      float64
	DiversityScaled  bool
	// TrustLowOnly applies TrustDelta only where trust is below
	// AdequateTrust (surveillance resentment in already-distrustful areas).
	TrustLowOnly bool
	// FalseArrestTrustGated applies FalseArrestDelta only where trust is at
	// least AdequateTrust (accurate community reporting needs cooperation).
	FalseArrestTrustGated bool
}

// AdequateTrust divides districts where surveillance is tolerated and
// community reporting works from districts where it backfires.
const AdequateTrust = 50.0

// actionCatalog is the fixed intervention list.
var actionCatalog = map[ActionID]*ActionDefinition{
	ActionCCTV: {
		ID:          ActionCCTV,
		Title:       "CCTV Network",
		Description: "Fixed cameras covering commercial corridors and transit stops.",
		Cost:        250_000,
		CrimePct:    -0.10,
		TrustDelta:  -2, TrustLowOnly: true,
		FalseArrestDelta: -1, FalseArrestTrustGated: true,
		ArrestBoost: 0.05,
	},
	ActionDroneSurveillance: {
		ID:          ActionDroneSurveillance,
		Title:       "Drone Surveillance",
		Description: "Aerial patrol drones with automated flagging of street activity.",
		Cost:        350_000,
		CrimePct:    -0.12,
		TrustDelta:  -4,
		FalseArrestDelta: 3, DiversityScaled: true,
		ArrestBoost: 0.08,
	},
	ActionFacialRecognition: {
		ID:           ActionFacialRecognition,
		Title:        "Facial Recognition",
		Description:  "Biometric matching layered on the existing camera network.",
		Cost:         400_000,
		Prerequisite: ActionCCTV,
		CrimePct:     -0.15,
		TrustDelta:   -8,
		FalseArrestDelta: 6, DiversityScaled: true,
		ArrestBoost: 0.10,
	},
	ActionEducationProgram: {
		ID:          ActionEducationProgram,
		Title:       "Community Education Program",
		Description: "Youth outreach, conflict mediation, and after-school programs.",
		Cost:        200_000,
		CrimePct:    -0.03,
		TrustDelta:  8,
	},
	ActionReportingApp: {
		ID:          ActionReportingApp,
		Title:       "Community Reporting App",
		Description: "Anonymous tip and incident reporting with case follow-up.",
		Cost:        150_000,
		CrimePct:    -0.05,
		TrustDelta:  3,
		FalseArrestDelta: -2, FalseArrestTrustGated: true,
		ArrestBoost: 0.02,
	},
}

// GetAction returns the catalog entry for id, or nil if id is unknown.
func GetAction(id ActionID) *ActionDefinition {
	return actionCatalog[id]
}

// DistrictActions maps a district to its single pending action for the
// current round. Selecting a second action for the same district replaces
// the first without consuming an extra action point.
type DistrictActions map[DistrictID]ActionID

// Clone returns an independent copy.
func (da DistrictActions) Clone() DistrictActions {
	out := make(DistrictActions, len(da))
	for id, action := range da {
		out[id] = action
	}
	return out
}

// ImplementedActions records, per district, every action implemented in a
// prior round. Append-only: entries are never removed. Gates prerequisites
// and duplicate selection.
type ImplementedActions map[DistrictID][]ActionID

// Has reports whether the district already implemented the action.
func (ia ImplementedActions) Has(district DistrictID, action ActionID) bool {
	for _, a := range ia[district] {
		if a == action {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy.
func (ia ImplementedActions) Clone() ImplementedActions {
	out := make(ImplementedActions, len(ia))
	for id, actions := range ia {
		out[id] = append([]ActionID(nil), actions...)
	}
	return out
}

// init asserts catalog invariants: prerequisites must name real actions and
// costs must be positive.
func init() {
	for _, id := range AllActions {
		def, ok := actionCatalog[id]
		if !ok {
			panic("action catalog missing " + string(id))
		}
		if def.Cost <= 0 {
			panic("action " + string(id) + " has non-positive cost")
		}
		if def.Prerequisite != "" {
			if _, ok := actionCatalog[def.Prerequisite]; !ok {
				panic("action " + string(id) + " has unknown prerequisite " + string(def.Prerequisite))
			}
		}
	}
}
