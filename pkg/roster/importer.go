// Package roster imports member rosters from spreadsheet files.
package roster

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

type Row struct {
	Line  int    `json:"line"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Group string `json:"group"`
}

type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Parse reads the first sheet of an xlsx workbook. The header row is matched
// by alias, so exports from different tools keep working. Rows with a bad or
// missing email come back as RowErrors instead of aborting the whole file.
func Parse(r io.Reader) ([]Row, []RowError, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	hmap := map[string]int{}
	for i, h := range rows[0] {
		hmap[norm(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	cName := findAny("Name", "fullname", "member")
	cMail := findAny("Email", "mail", "emailaddress")
	cTel := findAny("Phone", "tel", "mobile", "phonenumber")
	cGroup := findAny("Group", "team", "groupname")

	if cMail == -1 {
		return nil, nil, fmt.Errorf("roster missing an email column, found headers: %v", rows[0])
	}

	var out []Row
	var errs []RowError
	for i, rec := range rows[1:] {
		line := i + 2 // 1-based, after the header
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		email := get(cMail)
		if email == "" {
			if get(cName) == "" && get(cTel) == "" {
				continue // fully blank row
			}
			errs = append(errs, RowError{Line: line, Reason: "email is empty"})
			continue
		}
		if !emailRx.MatchString(email) {
			errs = append(errs, RowError{Line: line, Reason: "invalid email: " + email})
			continue
		}
		out = append(out, Row{
			Line:  line,
			Name:  get(cName),
			Email: email,
			Phone: get(cTel),
			Group: get(cGroup),
		})
	}
	return out, errs, nil
}
