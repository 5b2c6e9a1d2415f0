// pkg/ai/client.go

package ai

type Client interface {
	// AnalyzeRisks writes a short Markdown risk assessment for a community
	// given its selected hazards and meeting point.
	AnalyzeRisks(name string, hazards []string, lat, lng *float64) (string, error)

	// CustomizeGuide rewrites a base preparedness guide for one community.
	CustomizeGuide(baseMD, communityName string, hazards []string) (string, error)

	// PromoContent drafts a shareable title and body promoting a freshly
	// created community.
	PromoContent(name, description string, hazards []string) (title, body string, err error)
}
