package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/observation"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type ObservationService interface {
	ListObservations(ctx context.Context, processID string) ([]*observation.Observation, error)
	CreateObservation(ctx context.Context, processID string, req dto.CreateObservationRequest) (*observation.Observation, error)
}

type observationService struct {
	ServiceParams
	recorder HistoryRecorder
}

func NewObservationService(params ServiceParams, recorder HistoryRecorder) ObservationService {
	return &observationService{ServiceParams: params, recorder: recorder}
}

func (s *observationService) ListObservations(ctx context.Context, processID string) ([]*observation.Observation, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, processID); err != nil {
		return nil, err
	}
	return s.ObservationRepo.ListByProcess(ctx, processID)
}

func (s *observationService) CreateObservation(ctx context.Context, processID string, req dto.CreateObservationRequest) (*observation.Observation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	ref := historyRef(ctx, s.ServiceParams, p)
	o := req.ToObservation(ctx, p.ID, ref.Actor.Name, types.GetUserEmail(ctx))
	o.TenantID = p.TenantID
	o.Stamp(s.now())
	if err := s.ObservationRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.recorder.RecordCreation(ctx, ref, types.HistorySectionGeneral, "Added an observation")
	return o, nil
}
