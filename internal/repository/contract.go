package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/gen/ent"
	"github.com/hsakoda/contract-analyzer/gen/ent/contract"
	"github.com/hsakoda/contract-analyzer/internal/entity"
	"github.com/hsakoda/contract-analyzer/internal/utils"
)

// UpsertContractRequest carries the flattened summary fields for one
// document. Re-analyzing a document replaces its previous row.
type UpsertContractRequest struct {
	DocumentID     uuid.UUID
	PartyA         string
	PartyB         string
	ContractDate   *time.Time
	ExpirationDate *time.Time
	TotalAmount    float64
	CurrencyCode   string
	ClauseCount    int
}

type ContractRepository interface {
	Upsert(ctx context.Context, req *UpsertContractRequest) (*entity.Contract, error)
	GetByDocument(ctx context.Context, documentID uuid.UUID) (*entity.Contract, error)
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Contract, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{client: client, logger: logger}
}

func (r *contractRepository) Upsert(ctx context.Context, req *UpsertContractRequest) (*entity.Contract, error) {
	existing, err := r.client.Contract.Query().
		Where(contract.DocumentID(req.DocumentID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("contract lookup failed", "document_id", req.DocumentID, "error", err)
		return nil, err
	}

	if existing != nil {
		row, err := existing.Update().
			SetPartyA(req.PartyA).
			SetPartyB(req.PartyB).
			SetNillableContractDate(req.ContractDate).
			SetNillableExpirationDate(req.ExpirationDate).
			SetTotalAmount(req.TotalAmount).
			SetCurrencyCode(req.CurrencyCode).
			SetClauseCount(req.ClauseCount).
			Save(ctx)
		if err != nil {
			r.logger.Error("contract update failed", "document_id", req.DocumentID, "error", err)
			return nil, err
		}
		return utils.ToContract(row), nil
	}

	row, err := r.client.Contract.Create().
		SetDocumentID(req.DocumentID).
		SetPartyA(req.PartyA).
		SetPartyB(req.PartyB).
		SetNillableContractDate(req.ContractDate).
		SetNillableExpirationDate(req.ExpirationDate).
		SetTotalAmount(req.TotalAmount).
		SetCurrencyCode(req.CurrencyCode).
		SetClauseCount(req.ClauseCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("contract create failed", "document_id", req.DocumentID, "error", err)
		return nil, err
	}
	return utils.ToContract(row), nil
}

func (r *contractRepository) GetByDocument(ctx context.Context, documentID uuid.UUID) (*entity.Contract, error) {
	row, err := r.client.Contract.Query().
		Where(contract.DocumentID(documentID)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToContract(row), nil
}

func (r *contractRepository) List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Contract, error) {
	q := r.client.Contract.Query()
	if fromDate != nil {
		q = q.Where(contract.ContractDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(contract.ContractDateLTE(*toDate))
	}
	rows, err := q.Order(contract.ByContractDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list contracts", "error", err)
		return nil, err
	}

	result := make([]*entity.Contract, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContract(row)
	}
	return result, nil
}
