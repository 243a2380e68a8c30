package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Document represents an ingested contract document for transfer
// between layers.
type Document struct {
	ID         uuid.UUID `json:"id"`
	SourceRef  string    `json:"source_ref"`
	SourcePath string    `json:"source_path"`
	FileExt    string    `json:"file_ext"`
	Format     string    `json:"format"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ExtractJob represents one extraction run for data transfer between layers.
type ExtractJob struct {
	ID           uuid.UUID       `json:"id"`
	DocumentID   uuid.UUID       `json:"document_id"`
	Format       string          `json:"format"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   *time.Time      `json:"finished_at,omitempty"`
	Status       *string         `json:"status,omitempty"`
	ErrorMessage *string         `json:"error_message,omitempty"`
	Method       *string         `json:"method,omitempty"`
	Pages        int             `json:"pages"`
	Confidence   *float32        `json:"confidence,omitempty"`
	NeedsReview  bool            `json:"needs_review"`
	Text         *string         `json:"text,omitempty"`
	ContractJSON json.RawMessage `json:"contract_json,omitempty"`
}

// Contract is the flattened per-document summary row built from a
// ContractInfo, used for listing and export.
type Contract struct {
	ID             uuid.UUID  `json:"id"`
	DocumentID     uuid.UUID  `json:"document_id"`
	PartyA         string     `json:"party_a,omitempty"`
	PartyB         string     `json:"party_b,omitempty"`
	ContractDate   *time.Time `json:"contract_date,omitempty"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	TotalAmount    float64    `json:"total_amount"`
	CurrencyCode   string     `json:"currency_code,omitempty"`
	ClauseCount    int        `json:"clause_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
