package serviceImp

import (
	"io"
	"log"

	communitySvc "haven/pkg/community/service"
	"haven/pkg/roster"
	"haven/pkg/roster/service"
)

type rosterService struct {
	communities communitySvc.CommunityService
}

func New(communities communitySvc.CommunityService) service.RosterService {
	return &rosterService{communities: communities}
}

func (s *rosterService) Import(communityID uint, r io.Reader) (*service.Report, error) {
	rows, rowErrs, err := roster.Parse(r)
	if err != nil {
		return nil, err
	}
	rep := &service.Report{Errors: rowErrs, Skipped: len(rowErrs)}
	for _, row := range rows {
		if _, err := s.communities.Invite(communityID, row.Email, row.Group); err != nil {
			log.Printf("WARN: roster invite %s (line %d): %v", row.Email, row.Line, err)
			rep.Errors = append(rep.Errors, roster.RowError{Line: row.Line, Reason: err.Error()})
			rep.Skipped++
			continue
		}
		rep.Invited++
	}
	return rep, nil
}
