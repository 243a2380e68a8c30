// Package export produces XLSX workbooks from the flattened contract
// summary rows.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/repository"
)

// Service is a tiny façade over the contract repository that produces
// XLSX bytes for exports.
type Service struct {
	contractsRepo repository.ContractRepository
	logger        *slog.Logger
}

func NewService(contractsRepo repository.ContractRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contractsRepo: contractsRepo, logger: logger}
}

var headers = []string{
	"Document",
	"Party A",
	"Party B",
	"Contract Date",
	"Expiration Date",
	"Total Amount",
	"Currency",
	"Clauses",
}

// ExportContractsXLSX returns an XLSX workbook for the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all contracts.
func (s *Service) ExportContractsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.contractsRepo.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query contracts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contracts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for rowIdx, values := range buildRows(rows) {
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // document id
	_ = f.SetColWidth(sheet, "B", "C", 30) // parties
	_ = f.SetColWidth(sheet, "D", "E", 14) // dates
	_ = f.SetColWidth(sheet, "F", "F", 14) // amount
	_ = f.SetColWidth(sheet, "G", "H", 10)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// buildRows renders each contract into one sheet row, in column order
// matching headers.
func buildRows(contracts []*entity.Contract) [][]any {
	out := make([][]any, 0, len(contracts))
	for _, c := range contracts {
		contractDate := ""
		if c.ContractDate != nil {
			contractDate = c.ContractDate.Format("2006-01-02")
		}
		expirationDate := ""
		if c.ExpirationDate != nil {
			expirationDate = c.ExpirationDate.Format("2006-01-02")
		}
		out = append(out, []any{
			c.DocumentID.String(),
			c.PartyA,
			c.PartyB,
			contractDate,
			expirationDate,
			fmt.Sprintf("%.2f", c.TotalAmount),
			c.CurrencyCode,
			c.ClauseCount,
		})
	}
	return out
}
