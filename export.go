package peepsgo

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/go-pdf/fpdf"
)

// ExportPeeps renders the account's peep roster as a PDF document.
func (s *serviceImpl) ExportPeeps(ctx context.Context, w io.Writer, accountID string) error {
	acct, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Peeps of account %s", acct.AccountID), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Account %s", acct.AccountID))
	pdf.Ln(14)

	for _, p := range acct.Peeps {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, p.ID())
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		for _, k := range attrKeys(p) {
			pdf.Cell(0, 5, fmt.Sprintf("%s: %v", k, p[k]))
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}
	if len(acct.Peeps) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "no peeps")
	}

	return pdf.Output(w)
}

func attrKeys(p Peep) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		if k == PeepIDKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
