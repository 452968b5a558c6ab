package service

import (
	"testing"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/s3"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// SubResourceServiceSuite covers the services of the records attached to a process
type SubResourceServiceSuite struct {
	testutil.BaseServiceTestSuite
	params       ServiceParams
	processes    ProcessService
	financials   FinancialService
	payments     PaymentService
	documents    DocumentService
	fiscals      FiscalService
	inspections  InspectionService
	observations ObservationService
	processID    string
}

func TestSubResourceServices(t *testing.T) {
	suite.Run(t, new(SubResourceServiceSuite))
}

func (s *SubResourceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.params = newTestServiceParams(&s.BaseServiceTestSuite)
	recorder := NewHistoryRecorder(s.params)
	s.processes = NewProcessService(s.params, NewSequenceAllocator(s.params), recorder)
	s.financials = NewFinancialService(s.params, recorder)
	s.payments = NewPaymentService(s.params, recorder)
	s.documents = NewDocumentService(s.params, recorder)
	s.fiscals = NewFiscalService(s.params, recorder)
	s.inspections = NewInspectionService(s.params, recorder)
	s.observations = NewObservationService(s.params, recorder)

	p, err := s.processes.CreateProcess(s.GetContext(), contractRequest())
	s.Require().NoError(err)
	s.processID = p.ID
}

func (s *SubResourceServiceSuite) sectionEntries(section types.HistorySection) []*history.Entry {
	entries, err := s.processes.ListHistory(s.GetContext(), s.processID)
	s.Require().NoError(err)
	return lo.Filter(entries, func(e *history.Entry, _ int) bool { return e.Section == section })
}

func (s *SubResourceServiceSuite) TestFinancialMovements() {
	m, err := s.financials.CreateMovement(s.GetContext(), s.processID, dto.CreateFinancialMovementRequest{
		Type:   "empenho",
		Amount: decimal.RequireFromString("50000"),
		Date:   types.NewDate(2025, time.March, 10),
	})
	s.Require().NoError(err)
	s.Equal(types.DefaultTenantID, m.TenantID)

	created := s.sectionEntries(types.HistorySectionFinancial)
	s.Require().Len(created, 1)
	s.Equal("Registered empenho movement of R$ 50.000,00 on 10/03/2025", created[0].Description)

	_, err = s.financials.UpdateMovement(s.GetContext(), s.processID, m.ID, dto.UpdateFinancialMovementRequest{
		Amount:      lo.ToPtr(decimal.RequireFromString("45000")),
		Description: lo.ToPtr("Reforço"),
	})
	s.Require().NoError(err)

	updates := lo.Filter(s.sectionEntries(types.HistorySectionFinancial), func(e *history.Entry, _ int) bool {
		return e.Action == types.HistoryActionUpdated
	})
	s.ElementsMatch([]string{
		"Changed valor from R$ 50.000,00 to R$ 45.000,00",
		"Set descrição to Reforço",
	}, lo.Map(updates, func(e *history.Entry, _ int) string { return e.Description }))

	movements, err := s.financials.ListMovements(s.GetContext(), s.processID)
	s.NoError(err)
	s.Len(movements, 1)
}

func (s *SubResourceServiceSuite) TestPayments() {
	pay, err := s.payments.CreatePayment(s.GetContext(), s.processID, dto.CreatePaymentRequest{
		PaidAt: types.NewDate(2025, time.March, 12),
		Amount: decimal.RequireFromString("1500.75"),
	})
	s.Require().NoError(err)
	s.Equal("Ana Souza", lo.FromPtr(pay.UserName))

	entries := s.sectionEntries(types.HistorySectionPayments)
	s.Require().Len(entries, 1)
	s.Equal("Registered payment of R$ 1.500,75 on 12/03/2025", entries[0].Description)

	_, err = s.payments.CreatePayment(s.GetContext(), s.processID, dto.CreatePaymentRequest{})
	s.True(ierr.IsValidation(err))
}

func (s *SubResourceServiceSuite) TestFiscals() {
	f, err := s.fiscals.CreateFiscal(s.GetContext(), s.processID, dto.CreateFiscalRequest{
		Name: "Marta Ribeiro",
		Role: "Engenheira civil",
	})
	s.Require().NoError(err)
	s.Equal("titular", f.Kind)

	_, err = s.fiscals.UpdateFiscal(s.GetContext(), s.processID, f.ID, dto.UpdateFiscalRequest{
		Kind: lo.ToPtr("suplente"),
	})
	s.Require().NoError(err)

	entries := s.sectionEntries(types.HistorySectionFiscals)
	s.Require().Len(entries, 2)
	s.Equal("Changed tipo de fiscal from titular to suplente", entries[0].Description)
	s.Equal("Appointed Marta Ribeiro as titular fiscal", entries[1].Description)

	_, err = s.fiscals.CreateFiscal(s.GetContext(), s.processID, dto.CreateFiscalRequest{
		Name: "João",
		Role: "Fiscal",
		Kind: lo.ToPtr("gestor"),
	})
	s.True(ierr.IsValidation(err))
}

func (s *SubResourceServiceSuite) TestInspectionsAndObservations() {
	_, err := s.inspections.CreateInspection(s.GetContext(), s.processID, dto.CreateInspectionRequest{
		Type:        "vistoria",
		InspectedAt: types.NewDate(2025, time.March, 13),
	})
	s.Require().NoError(err)

	obs, err := s.observations.CreateObservation(s.GetContext(), s.processID, dto.CreateObservationRequest{
		Content: "  Aguardando parecer jurídico  ",
	})
	s.Require().NoError(err)
	s.Equal("Aguardando parecer jurídico", obs.Content)
	s.Equal(testutil.TestUserEmail, lo.FromPtr(obs.UserEmail))

	inspections := s.sectionEntries(types.HistorySectionInspections)
	s.Require().Len(inspections, 1)
	s.Equal("Registered vistoria inspection on 13/03/2025", inspections[0].Description)

	general := s.sectionEntries(types.HistorySectionGeneral)
	s.Equal("Added an observation", general[0].Description)

	list, err := s.observations.ListObservations(s.GetContext(), s.processID)
	s.NoError(err)
	s.Len(list, 1)
}

func (s *SubResourceServiceSuite) TestDocumentUploadFlow() {
	upload, err := s.documents.PresignUpload(s.GetContext(), s.processID, dto.DocumentUploadRequest{
		FileName: "Edital nº 1.pdf",
	})
	s.Require().NoError(err)
	s.Equal("PUT", upload.Method)
	s.Contains(upload.Key, s3.ProcessKeyPrefix("documentos", types.DefaultTenantID, s.processID))
	s.Equal("application/octet-stream", upload.Headers["Content-Type"])

	req := dto.CreateDocumentRequest{
		FileName:   "Edital nº 1.pdf",
		StorageKey: lo.ToPtr(upload.Key),
	}

	// the file was not uploaded yet
	_, err = s.documents.CreateDocument(s.GetContext(), s.processID, req)
	s.True(ierr.IsValidation(err))

	s.GetStorage().PutObject(upload.Key)
	doc, err := s.documents.CreateDocument(s.GetContext(), s.processID, req)
	s.Require().NoError(err)
	s.Require().NotNil(doc.DownloadURL)
	s.Equal(upload.Key, doc.DownloadURL.Key)
	s.Equal("Ana Souza", lo.FromPtr(doc.UserName))

	entries := s.sectionEntries(types.HistorySectionDocuments)
	s.Require().Len(entries, 1)
	s.Equal("Attached document Edital nº 1.pdf (geral)", entries[0].Description)
}

func (s *SubResourceServiceSuite) TestDocumentKeyOfAnotherProcess() {
	key := s3.ObjectKey("documentos", types.DefaultTenantID, "proc_other", "doc_1", "contrato.pdf")
	s.GetStorage().PutObject(key)

	_, err := s.documents.CreateDocument(s.GetContext(), s.processID, dto.CreateDocumentRequest{
		FileName:   "contrato.pdf",
		StorageKey: lo.ToPtr(key),
	})
	s.True(ierr.IsValidation(err))
}

func (s *SubResourceServiceSuite) TestDocumentsWithoutStorage() {
	params := s.params
	params.S3 = nil
	documents := NewDocumentService(params, NewHistoryRecorder(params))

	_, err := documents.PresignUpload(s.GetContext(), s.processID, dto.DocumentUploadRequest{FileName: "a.pdf"})
	s.True(ierr.Is(err, ierr.ErrInvalidOperation))

	doc, err := documents.CreateDocument(s.GetContext(), s.processID, dto.CreateDocumentRequest{
		FileName: "ata.pdf",
		FileURL:  lo.ToPtr("https://arquivos.prefeitura.gov.br/ata.pdf"),
	})
	s.Require().NoError(err)
	s.Nil(doc.DownloadURL)

	list, err := documents.ListDocuments(s.GetContext(), s.processID)
	s.NoError(err)
	s.Len(list, 1)
}

func (s *SubResourceServiceSuite) TestSubResourcesOfAnotherTenant() {
	other := types.SetTenantID(s.GetContext(), "tenant_other")

	_, err := s.financials.ListMovements(other, s.processID)
	s.True(ierr.IsNotFound(err))
	_, err = s.payments.ListPayments(other, s.processID)
	s.True(ierr.IsNotFound(err))
	_, err = s.documents.ListDocuments(other, s.processID)
	s.True(ierr.IsNotFound(err))
	_, err = s.fiscals.ListFiscals(other, s.processID)
	s.True(ierr.IsNotFound(err))
	_, err = s.inspections.ListInspections(other, s.processID)
	s.True(ierr.IsNotFound(err))
	_, err = s.observations.CreateObservation(other, s.processID, dto.CreateObservationRequest{Content: "x"})
	s.True(ierr.IsNotFound(err))
}
