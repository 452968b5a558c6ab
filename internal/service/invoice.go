package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/invoice"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/process"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type InvoiceService interface {
	ListInvoices(ctx context.Context, processID string) ([]*invoice.Invoice, error)
	CreateInvoice(ctx context.Context, processID string, req dto.CreateInvoiceRequest) (*invoice.Invoice, error)
	UpdateInvoice(ctx context.Context, processID, id string, req dto.UpdateInvoiceRequest) (*invoice.Invoice, error)
	DeleteInvoice(ctx context.Context, processID, id string) error
}

type invoiceService struct {
	ServiceParams
	recorder HistoryRecorder
}

func NewInvoiceService(params ServiceParams, recorder HistoryRecorder) InvoiceService {
	return &invoiceService{ServiceParams: params, recorder: recorder}
}

func (s *invoiceService) ListInvoices(ctx context.Context, processID string) ([]*invoice.Invoice, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, processID); err != nil {
		return nil, err
	}
	return s.InvoiceRepo.ListByProcess(ctx, processID)
}

func (s *invoiceService) CreateInvoice(ctx context.Context, processID string, req dto.CreateInvoiceRequest) (*invoice.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	inv := req.ToInvoice(ctx, p.ID)
	inv.TenantID = p.TenantID
	inv.Stamp(s.now())
	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.recorder.RecordCreation(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionInvoices,
		"Registered "+inv.Summary())

	return inv, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, processID, id string, req dto.UpdateInvoiceRequest) (*invoice.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, existing, err := s.load(ctx, processID, id)
	if err != nil {
		return nil, err
	}
	previous := existing.HistoryFields()

	updated := *existing
	req.Apply(&updated)
	updated.Touch(s.now(), types.GetUserID(ctx))

	if err := s.InvoiceRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recorder.RecordUpdate(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionInvoices,
		previous, updated.HistoryFields())

	return &updated, nil
}

// DeleteInvoice removes the invoice and only then records the deletion
func (s *invoiceService) DeleteInvoice(ctx context.Context, processID, id string) error {
	p, existing, err := s.load(ctx, processID, id)
	if err != nil {
		return err
	}

	if err := s.InvoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.RecordDeletion(ctx, historyRef(ctx, s.ServiceParams, p), types.HistorySectionInvoices,
		"Deleted "+existing.Summary(), existing.Summary())

	return nil
}

func (s *invoiceService) load(ctx context.Context, processID, id string) (*process.Process, *invoice.Invoice, error) {
	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if err := belongsTo("Invoice", id, inv.ProcessID, p.ID); err != nil {
		return nil, nil, err
	}
	return p, inv, nil
}
