package service

import (
	"context"
	"fmt"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/inspection"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type InspectionService interface {
	ListInspections(ctx context.Context, processID string) ([]*inspection.Inspection, error)
	CreateInspection(ctx context.Context, processID string, req dto.CreateInspectionRequest) (*inspection.Inspection, error)
}

type inspectionService struct {
	ServiceParams
	recorder HistoryRecorder
}

func NewInspectionService(params ServiceParams, recorder HistoryRecorder) InspectionService {
	return &inspectionService{ServiceParams: params, recorder: recorder}
}

func (s *inspectionService) ListInspections(ctx context.Context, processID string) ([]*inspection.Inspection, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, processID); err != nil {
		return nil, err
	}
	return s.InspectionRepo.ListByProcess(ctx, processID)
}

func (s *inspectionService) CreateInspection(ctx context.Context, processID string, req dto.CreateInspectionRequest) (*inspection.Inspection, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	i := req.ToInspection(ctx, p.ID)
	i.TenantID = p.TenantID
	i.Stamp(s.now())
	if err := s.InspectionRepo.Create(ctx, i); err != nil {
		return nil, err
	}

	s.recorder.RecordCreation(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionInspections,
		fmt.Sprintf("Registered %s inspection on %s", i.Type, i.InspectedAt.Display()))

	return i, nil
}
