package wizard

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Group struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Invitation struct {
	Email     string `json:"email"`
	GroupName string `json:"group_name"`
}

type PromoContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// WizardData is the bag of all step inputs accumulated so far.
type WizardData struct {
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	MeetingPointName string        `json:"meeting_point_name"`
	MeetingPointAddr string        `json:"meeting_point_addr"`
	MeetingLat       *float64      `json:"meeting_lat"`
	MeetingLng       *float64      `json:"meeting_lng"`
	Hazards          []string      `json:"hazards"`
	Polygon          []LatLng      `json:"polygon"`
	RegionColor      string        `json:"region_color"`
	RegionOpacity    float64       `json:"region_opacity"`
	Groups           []Group       `json:"groups"`
	Invitations      []Invitation  `json:"invitations"`
	RiskNotes        string        `json:"risk_notes"`
	Promo            *PromoContent `json:"promo,omitempty"`
}

func DefaultData() WizardData {
	return WizardData{
		RegionColor:   "#e25822",
		RegionOpacity: 0.35,
	}
}

// HasProgress reports whether the data is worth keeping as a draft.
// An empty draft is never persisted.
func HasProgress(d *WizardData) bool {
	if d == nil {
		return false
	}
	if d.Name != "" || d.MeetingPointName != "" || d.MeetingPointAddr != "" {
		return true
	}
	if len(d.Hazards) > 0 || len(d.Polygon) > 0 {
		return true
	}
	if len(d.Groups) > 0 || len(d.Invitations) > 0 {
		return true
	}
	return false
}
