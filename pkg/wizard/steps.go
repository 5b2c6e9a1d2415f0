package wizard

// Step IDs, referenced by the enrichment hooks and the HTTP layer.
const (
	StepBasicInfo   = "basic_info"
	StepRiskProfile = "risk_profile"
	StepDefineArea  = "define_area"
	StepGroups      = "groups"
	StepInvite      = "invite_members"
	StepReview      = "review"
)

type Step struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Valid       func(d *WizardData) bool `json:"-"`
}

// Steps returns the fixed ordered step list. Index into the slice is
// currentStep-1; steps marked optional always validate.
func Steps() []Step {
	return []Step{
		{
			ID:          StepBasicInfo,
			Name:        "Basic Info",
			Description: "Community name and meeting point",
			Valid: func(d *WizardData) bool {
				return d.Name != "" && d.MeetingPointName != "" &&
					d.MeetingLat != nil && d.MeetingLng != nil
			},
		},
		{
			ID:          StepRiskProfile,
			Name:        "Risk Profile",
			Description: "Hazards relevant to your area (optional)",
			Valid:       func(d *WizardData) bool { return true },
		},
		{
			ID:          StepDefineArea,
			Name:        "Define Area",
			Description: "Draw the coverage region",
			Valid:       func(d *WizardData) bool { return len(d.Polygon) >= 3 },
		},
		{
			ID:          StepGroups,
			Name:        "Groups",
			Description: "Response groups (optional)",
			Valid:       func(d *WizardData) bool { return true },
		},
		{
			ID:          StepInvite,
			Name:        "Invite Members",
			Description: "Invite neighbours by email (optional)",
			Valid:       func(d *WizardData) bool { return true },
		},
		{
			ID:          StepReview,
			Name:        "Review",
			Description: "Review and create",
			Valid:       func(d *WizardData) bool { return true },
		},
	}
}
