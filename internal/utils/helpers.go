package utils

import (
	"fmt"
	"time"

	"github.com/hsakoda/contract-analyzer/gen/ent"
	contractspb "github.com/hsakoda/contract-analyzer/gen/proto/contracts/v1"
	"github.com/hsakoda/contract-analyzer/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func float32OrZero(p *float32) float32 {
	if p == nil {
		return 0
	}
	return *p
}

// ParseYMD parses a YYYY-MM-DD string to midnight UTC to match DATE
// column semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:         e.ID,
		SourceRef:  e.SourceRef,
		SourcePath: e.SourcePath,
		FileExt:    e.FileExt,
		Format:     e.Format,
		UploadedAt: e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:           e.ID,
		DocumentID:   e.DocumentID,
		Format:       e.Format,
		StartedAt:    e.StartedAt,
		FinishedAt:   e.FinishedAt,
		Status:       e.Status,
		ErrorMessage: e.ErrorMessage,
		Method:       e.Method,
		Pages:        e.Pages,
		Confidence:   e.Confidence,
		NeedsReview:  e.NeedsReview,
		Text:         e.Text,
		ContractJSON: e.ContractJSON,
	}
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:             e.ID,
		DocumentID:     e.DocumentID,
		PartyA:         e.PartyA,
		PartyB:         e.PartyB,
		ContractDate:   e.ContractDate,
		ExpirationDate: e.ExpirationDate,
		TotalAmount:    e.TotalAmount,
		CurrencyCode:   e.CurrencyCode,
		ClauseCount:    e.ClauseCount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToPBDocument(d *entity.Document) *contractspb.Document {
	return &contractspb.Document{
		Id:         d.ID.String(),
		SourceRef:  d.SourceRef,
		SourcePath: d.SourcePath,
		FileExt:    d.FileExt,
		Format:     d.Format,
		UploadedAt: d.UploadedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBExtractJob(j *entity.ExtractJob) *contractspb.ExtractJob {
	out := &contractspb.ExtractJob{
		Id:           j.ID.String(),
		DocumentId:   j.DocumentID.String(),
		Format:       j.Format,
		Status:       strOrEmpty(j.Status),
		Method:       strOrEmpty(j.Method),
		Pages:        int32(j.Pages),
		Confidence:   float32OrZero(j.Confidence),
		NeedsReview:  j.NeedsReview,
		ErrorMessage: strOrEmpty(j.ErrorMessage),
		StartedAt:    j.StartedAt.UTC().Format(time.RFC3339),
	}
	if j.FinishedAt != nil {
		out.FinishedAt = j.FinishedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func ToPBContract(c *entity.Contract) *contractspb.Contract {
	out := &contractspb.Contract{
		Id:           c.ID.String(),
		DocumentId:   c.DocumentID.String(),
		PartyA:       c.PartyA,
		PartyB:       c.PartyB,
		TotalAmount:  fmt.Sprintf("%.2f", c.TotalAmount),
		CurrencyCode: c.CurrencyCode,
		ClauseCount:  int32(c.ClauseCount),
		CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if c.ContractDate != nil {
		out.ContractDate = c.ContractDate.Format("2006-01-02")
	}
	if c.ExpirationDate != nil {
		out.ExpirationDate = c.ExpirationDate.Format("2006-01-02")
	}
	return out
}
