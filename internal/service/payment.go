package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/payment"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type PaymentService interface {
	ListPayments(ctx context.Context, processID string) ([]*payment.Payment, error)
	CreatePayment(ctx context.Context, processID string, req dto.CreatePaymentRequest) (*payment.Payment, error)
}

type paymentService struct {
	ServiceParams
	recorder HistoryRecorder
}

func NewPaymentService(params ServiceParams, recorder HistoryRecorder) PaymentService {
	return &paymentService{ServiceParams: params, recorder: recorder}
}

func (s *paymentService) ListPayments(ctx context.Context, processID string) ([]*payment.Payment, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, processID); err != nil {
		return nil, err
	}
	return s.PaymentRepo.ListByProcess(ctx, processID)
}

func (s *paymentService) CreatePayment(ctx context.Context, processID string, req dto.CreatePaymentRequest) (*payment.Payment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	ref := historyRef(ctx, s.ServiceParams, p)
	pay := req.ToPayment(ctx, p.ID, ref.Actor.Name)
	pay.TenantID = p.TenantID
	pay.Stamp(s.now())
	if err := s.PaymentRepo.Create(ctx, pay); err != nil {
		return nil, err
	}

	s.recorder.RecordCreation(ctx, ref, types.HistorySectionPayments, "Registered "+pay.Summary())
	return pay, nil
}
