package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepByID(t *testing.T, id string) Step {
	t.Helper()
	for _, s := range Steps() {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("no step %q", id)
	return Step{}
}

func TestBasicInfoValidity(t *testing.T) {
	s := stepByID(t, StepBasicInfo)

	d := DefaultData()
	assert.False(t, s.Valid(&d), "empty community name")

	lat, lng := 1.0, 2.0
	d.Name = "Test"
	d.MeetingPointName = "Hall"
	d.MeetingLat = &lat
	d.MeetingLng = &lng
	assert.True(t, s.Valid(&d))

	d.MeetingLng = nil
	assert.False(t, s.Valid(&d), "unknown coordinates")
}

func TestDefineAreaValidity(t *testing.T) {
	s := stepByID(t, StepDefineArea)

	d := DefaultData()
	d.Polygon = []LatLng{{0, 0}, {0, 1}}
	assert.False(t, s.Valid(&d), "2-point polygon")

	d.Polygon = append(d.Polygon, LatLng{1, 0})
	assert.True(t, s.Valid(&d), "3-point polygon")
}

func TestOptionalStepsAlwaysValid(t *testing.T) {
	d := DefaultData()
	for _, id := range []string{StepRiskProfile, StepGroups, StepInvite, StepReview} {
		assert.True(t, stepByID(t, id).Valid(&d), id)
	}
}

func TestHasProgress(t *testing.T) {
	d := DefaultData()
	require.False(t, HasProgress(&d))
	require.False(t, HasProgress(nil))

	cases := []func(*WizardData){
		func(d *WizardData) { d.Name = "x" },
		func(d *WizardData) { d.MeetingPointName = "x" },
		func(d *WizardData) { d.MeetingPointAddr = "x" },
		func(d *WizardData) { d.Hazards = []string{"fire"} },
		func(d *WizardData) { d.Polygon = []LatLng{{0, 0}} },
		func(d *WizardData) { d.Groups = []Group{{Name: "g"}} },
		func(d *WizardData) { d.Invitations = []Invitation{{Email: "a@b.c"}} },
	}
	for i, mutate := range cases {
		d := DefaultData()
		mutate(&d)
		assert.True(t, HasProgress(&d), "case %d", i)
	}

	// style-only edits are not progress
	d = DefaultData()
	d.RegionColor = "#123456"
	d.RegionOpacity = 0.9
	assert.False(t, HasProgress(&d))
}
