package ai

import "haven/pkg/wizard"

// WizardEnricher adapts a Client to the wizard's enrichment hooks.
type WizardEnricher struct{ c Client }

func NewWizardEnricher(c Client) *WizardEnricher { return &WizardEnricher{c} }

func (e *WizardEnricher) AnalyzeRisks(d *wizard.WizardData) (string, error) {
	return e.c.AnalyzeRisks(d.Name, d.Hazards, d.MeetingLat, d.MeetingLng)
}

func (e *WizardEnricher) PromoContent(d *wizard.WizardData) (string, string, error) {
	return e.c.PromoContent(d.Name, d.Description, d.Hazards)
}
