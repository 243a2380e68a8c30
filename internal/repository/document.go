package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hsakoda/contract-analyzer/gen/ent"
	"github.com/hsakoda/contract-analyzer/gen/ent/document"
)

type DocumentRepository interface {
	Create(ctx context.Context, sourceRef, sourcePath, fileExt, format string) (*ent.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	List(ctx context.Context) ([]*ent.Document, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, sourceRef, sourcePath, fileExt, format string) (*ent.Document, error) {
	doc, err := r.ent.Document.
		Create().
		SetSourceRef(sourceRef).
		SetSourcePath(sourcePath).
		SetFileExt(fileExt).
		SetFormat(format).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "source_ref", sourceRef, "err", err)
		return nil, err
	}
	r.log.Info("document registered", "document_id", doc.ID, "source_ref", sourceRef, "format", format)
	return doc, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	doc, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		r.log.Error("document lookup failed", "document_id", id, "err", err)
		return nil, err
	}
	return doc, nil
}

func (r *documentRepo) List(ctx context.Context) ([]*ent.Document, error) {
	docs, err := r.ent.Document.Query().
		Order(document.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("document list failed", "err", err)
		return nil, err
	}
	return docs, nil
}
