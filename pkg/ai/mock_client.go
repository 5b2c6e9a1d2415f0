// pkg/ai/mock_client.go

package ai

import (
	"fmt"
	"strings"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

var mockPriorities = map[string]string{
	"fire":  "keep a cleared firebreak around the meeting point and agree an uphill evacuation route",
	"flood": "store sandbags and move the document box above expected water level",
	"quake": "strap heavy furniture and keep the gas shut-off tool at the meeting point",
	"storm": "check roof fixings each autumn and stock a 72h power-outage kit",
}

func (m *mockClient) AnalyzeRisks(name string, hazards []string, lat, lng *float64) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "## Risk assessment for %s\n\n", name)
	if len(hazards) == 0 {
		b.WriteString("- No hazards selected; review the regional hazard map.\n")
	}
	for _, h := range hazards {
		tip, ok := mockPriorities[h]
		if !ok {
			tip = "review the regional guidance for this hazard"
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", h, tip)
	}
	return b.String(), nil
}

func (m *mockClient) CustomizeGuide(baseMD, communityName string, hazards []string) (string, error) {
	return fmt.Sprintf("> Adapted for %s (hazards: %s)\n\n%s",
		communityName, strings.Join(hazards, ", "), baseMD), nil
}

func (m *mockClient) PromoContent(name, description string, hazards []string) (string, string, error) {
	title := name + " is getting prepared"
	body := fmt.Sprintf("Neighbours in %s set up an emergency-preparedness community. %s Join us and know what to do when it matters.",
		name, description)
	return title, body, nil
}
