package types

import (
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/samber/lo"
)

// HistorySection groups history entries by the screen area they describe
type HistorySection string

const (
	HistorySectionGeneral     HistorySection = "general"
	HistorySectionFinancial   HistorySection = "financial"
	HistorySectionInvoices    HistorySection = "invoices"
	HistorySectionPayments    HistorySection = "payments"
	HistorySectionDocuments   HistorySection = "documents"
	HistorySectionFiscals     HistorySection = "fiscals"
	HistorySectionInspections HistorySection = "inspections"
)

var historySections = []HistorySection{
	HistorySectionGeneral,
	HistorySectionFinancial,
	HistorySectionInvoices,
	HistorySectionPayments,
	HistorySectionDocuments,
	HistorySectionFiscals,
	HistorySectionInspections,
}

func (s HistorySection) Validate() error {
	if !lo.Contains(historySections, s) {
		return ierr.NewErrorf("invalid history section: %s", s).
			WithHintf("Section must be one of %v", historySections).
			Mark(ierr.ErrValidation)
	}
	return nil
}

type HistoryAction string

const (
	HistoryActionCreated HistoryAction = "created"
	HistoryActionUpdated HistoryAction = "updated"
	HistoryActionDeleted HistoryAction = "deleted"
)
