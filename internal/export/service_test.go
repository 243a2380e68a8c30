package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/repository"
)

type fakeContractsRepo struct {
	rows    []*entity.Contract
	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeContractsRepo) Upsert(ctx context.Context, req *repository.UpsertContractRequest) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractsRepo) GetByDocument(ctx context.Context, documentID uuid.UUID) (*entity.Contract, error) {
	return nil, nil
}

func (f *fakeContractsRepo) List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Contract, error) {
	f.gotFrom, f.gotTo = fromDate, toDate
	return f.rows, nil
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestBuildRows(t *testing.T) {
	docID := uuid.New()
	rows := buildRows([]*entity.Contract{
		{
			DocumentID:   docID,
			PartyA:       "株式会社テスト商事",
			PartyB:       "サンプル電気株式会社",
			ContractDate: date(2024, 1, 15),
			TotalAmount:  800000,
			CurrencyCode: "JPY",
			ClauseCount:  4,
		},
	})

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if len(row) != len(headers) {
		t.Fatalf("row has %d columns, headers have %d", len(row), len(headers))
	}
	want := []any{
		docID.String(),
		"株式会社テスト商事",
		"サンプル電気株式会社",
		"2024-01-15",
		"", // no expiration
		"800000.00",
		"JPY",
		4,
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("column %d = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestExportContractsXLSX(t *testing.T) {
	repo := &fakeContractsRepo{rows: []*entity.Contract{
		{
			DocumentID:   uuid.New(),
			PartyA:       "Acme Widgets Inc.",
			PartyB:       "Global Partners LLC",
			ContractDate: date(2024, 3, 1),
			TotalAmount:  1200.50,
			CurrencyCode: "USD",
			ClauseCount:  2,
		},
	}}
	svc := NewService(repo, nil)

	data, err := svc.ExportContractsXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportContractsXLSX: %v", err)
	}
	if repo.gotFrom != nil || repo.gotTo != nil {
		t.Fatalf("window without bounds passed %v..%v", repo.gotFrom, repo.gotTo)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook unreadable: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Contracts", "B1")
	if err != nil || got != "Party A" {
		t.Fatalf("B1 = %q, %v", got, err)
	}
	got, _ = f.GetCellValue("Contracts", "B2")
	if got != "Acme Widgets Inc." {
		t.Fatalf("B2 = %q", got)
	}
	got, _ = f.GetCellValue("Contracts", "F2")
	if got != "1200.50" {
		t.Fatalf("F2 = %q", got)
	}
}

func TestExportWindowNormalization(t *testing.T) {
	repo := &fakeContractsRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2024, 2, 10, 15, 30, 0, 0, time.Local)
	if _, err := svc.ExportContractsXLSX(context.Background(), &from, nil); err != nil {
		t.Fatalf("ExportContractsXLSX: %v", err)
	}

	if repo.gotFrom == nil || !repo.gotFrom.Equal(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from not normalized to date-only UTC: %v", repo.gotFrom)
	}
	if repo.gotTo == nil {
		t.Fatal("open-ended from window should default to today")
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !repo.gotTo.Equal(today) {
		t.Fatalf("to = %v, want %v", repo.gotTo, today)
	}
}
