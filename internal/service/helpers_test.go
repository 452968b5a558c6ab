package service

import (
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
)

// newTestServiceParams wires the in-memory stores of the suite into ServiceParams
func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:          s.GetLogger(),
		Config:          s.GetConfig(),
		DB:              s.GetDB(),
		Cache:           s.GetCache(),
		S3:              s.GetStorage(),
		AuthProvider:    s.GetAuthProvider(),
		Now:             s.Clock,
		TenantRepo:      stores.TenantRepo,
		UserRepo:        stores.UserRepo,
		ProcessRepo:     stores.ProcessRepo,
		SequenceRepo:    stores.SequenceRepo,
		HistoryRepo:     stores.HistoryRepo,
		FinancialRepo:   stores.FinancialRepo,
		InvoiceRepo:     stores.InvoiceRepo,
		PaymentRepo:     stores.PaymentRepo,
		DocumentRepo:    stores.DocumentRepo,
		FiscalRepo:      stores.FiscalRepo,
		InspectionRepo:  stores.InspectionRepo,
		ObservationRepo: stores.ObservationRepo,
	}
}
