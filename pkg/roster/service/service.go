package service

import (
	"io"

	"haven/pkg/roster"
)

// Report summarizes one roster import run.
type Report struct {
	Invited int               `json:"invited"`
	Skipped int               `json:"skipped"`
	Errors  []roster.RowError `json:"errors"`
}

type RosterService interface {
	// Import parses an xlsx roster and sends an invitation per valid row.
	// Bad rows are reported, not fatal.
	Import(communityID uint, r io.Reader) (*Report, error)
}
