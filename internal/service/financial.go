package service

import (
	"context"
	"fmt"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/financial"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type FinancialService interface {
	ListMovements(ctx context.Context, processID string) ([]*financial.Movement, error)
	CreateMovement(ctx context.Context, processID string, req dto.CreateFinancialMovementRequest) (*financial.Movement, error)
	UpdateMovement(ctx context.Context, processID, id string, req dto.UpdateFinancialMovementRequest) (*financial.Movement, error)
}

type financialService struct {
	ServiceParams
	recorder HistoryRecorder
}

func NewFinancialService(params ServiceParams, recorder HistoryRecorder) FinancialService {
	return &financialService{ServiceParams: params, recorder: recorder}
}

func (s *financialService) ListMovements(ctx context.Context, processID string) ([]*financial.Movement, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, processID); err != nil {
		return nil, err
	}
	return s.FinancialRepo.ListByProcess(ctx, processID)
}

func (s *financialService) CreateMovement(ctx context.Context, processID string, req dto.CreateFinancialMovementRequest) (*financial.Movement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	m := req.ToMovement(ctx, p.ID)
	m.TenantID = p.TenantID
	m.Stamp(s.now())
	if err := s.FinancialRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.recorder.RecordCreation(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionFinancial,
		fmt.Sprintf("Registered %s movement of %s on %s", m.Type, types.FormatCurrency(m.Amount), m.Date.Display()))

	return m, nil
}

func (s *financialService) UpdateMovement(ctx context.Context, processID, id string, req dto.UpdateFinancialMovementRequest) (*financial.Movement, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	existing, err := s.FinancialRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := belongsTo("Financial movement", id, existing.ProcessID, p.ID); err != nil {
		return nil, err
	}
	previous := existing.HistoryFields()

	updated := *existing
	req.Apply(&updated)
	updated.Touch(s.now(), types.GetUserID(ctx))

	if err := s.FinancialRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recorder.RecordUpdate(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionFinancial,
		previous, updated.HistoryFields())

	return &updated, nil
}
