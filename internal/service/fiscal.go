package service

import (
	"context"
	"fmt"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/fiscal"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type FiscalService interface {
	ListFiscals(ctx context.Context, processID string) ([]*fiscal.Fiscal, error)
	CreateFiscal(ctx context.Context, processID string, req dto.CreateFiscalRequest) (*fiscal.Fiscal, error)
	UpdateFiscal(ctx context.Context, processID, id string, req dto.UpdateFiscalRequest) (*fiscal.Fiscal, error)
}

type fiscalService struct {
	ServiceParams
	recorder HistoryRecorder
}

func NewFiscalService(params ServiceParams, recorder HistoryRecorder) FiscalService {
	return &fiscalService{ServiceParams: params, recorder: recorder}
}

func (s *fiscalService) ListFiscals(ctx context.Context, processID string) ([]*fiscal.Fiscal, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, processID); err != nil {
		return nil, err
	}
	return s.FiscalRepo.ListByProcess(ctx, processID)
}

func (s *fiscalService) CreateFiscal(ctx context.Context, processID string, req dto.CreateFiscalRequest) (*fiscal.Fiscal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	f := req.ToFiscal(ctx, p.ID)
	f.TenantID = p.TenantID
	f.Stamp(s.now())
	if err := s.FiscalRepo.Create(ctx, f); err != nil {
		return nil, err
	}

	s.recorder.RecordCreation(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionFiscals,
		fmt.Sprintf("Appointed %s as %s fiscal", f.Name, f.Kind))

	return f, nil
}

func (s *fiscalService) UpdateFiscal(ctx context.Context, processID, id string, req dto.UpdateFiscalRequest) (*fiscal.Fiscal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	existing, err := s.FiscalRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := belongsTo("Fiscal", id, existing.ProcessID, p.ID); err != nil {
		return nil, err
	}
	previous := existing.HistoryFields()

	updated := *existing
	req.Apply(&updated)
	updated.Touch(s.now(), types.GetUserID(ctx))

	if err := s.FiscalRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recorder.RecordUpdate(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionFiscals,
		previous, updated.HistoryFields())

	return &updated, nil
}
