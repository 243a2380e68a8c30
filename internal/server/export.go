package server

import (
	"context"
	"log/slog"

	v1 "github.com/hsakoda/contract-analyzer/gen/proto/contracts/v1"
	"github.com/hsakoda/contract-analyzer/internal/common"
	"github.com/hsakoda/contract-analyzer/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportContracts(ctx context.Context, req *v1.ExportContractsRequest) (*v1.ExportContractsResponse, error) {
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportContractsXLSX(ctx, fromDate, toDate)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &v1.ExportContractsResponse{Xlsx: xlsx}, nil
}
