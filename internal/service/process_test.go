package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProcessServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProcessService
}

func TestProcessService(t *testing.T) {
	suite.Run(t, new(ProcessServiceSuite))
}

func (s *ProcessServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewProcessService(params, NewSequenceAllocator(params), NewHistoryRecorder(params))
}

func bidRequest() dto.CreateProcessRequest {
	return dto.CreateProcessRequest{
		Type:           types.ProcessTypeBid,
		Object:         "Aquisição de merenda escolar",
		Department:     lo.ToPtr("Educação"),
		Modality:       lo.ToPtr(types.ModalityElectronicAuction),
		Responsible:    lo.ToPtr("Carlos Lima"),
		OpeningDate:    lo.ToPtr(types.NewDate(2025, time.March, 20)),
		EstimatedValue: lo.ToPtr(decimal.RequireFromString("150000.00")),
	}
}

func contractRequest() dto.CreateProcessRequest {
	return dto.CreateProcessRequest{
		Type:       types.ProcessTypeContract,
		Object:     "Coleta de lixo",
		Supplier:   lo.ToPtr("Limpa Tudo LTDA"),
		StartDate:  lo.ToPtr(types.NewDate(2025, time.January, 1)),
		EndDate:    lo.ToPtr(types.NewDate(2025, time.May, 31)),
		TotalValue: lo.ToPtr(decimal.RequireFromString("480000")),
	}
}

func (s *ProcessServiceSuite) history(processID string) []*history.Entry {
	entries, err := s.service.ListHistory(s.GetContext(), processID)
	s.Require().NoError(err)
	return entries
}

func (s *ProcessServiceSuite) TestCreateProcess() {
	resp, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.Require().NoError(err)
	s.Equal("LIC-2025-03-00001", resp.Number)
	s.Equal(types.ProcessStatusOpen, resp.Status)
	s.Equal(types.DefaultTenantID, resp.TenantID)
	s.Equal(types.DefaultUserID, resp.CreatedBy)
	s.Equal(testutil.TestNow, resp.CreatedAt)

	contract, err := s.service.CreateProcess(s.GetContext(), contractRequest())
	s.Require().NoError(err)
	s.Equal("CTR-2025-03-00001", contract.Number)
	s.Equal(types.ContractStatusActive, contract.Status)

	entries := s.history(resp.ID)
	s.Require().Len(entries, 1)
	s.Equal(types.HistoryActionCreated, entries[0].Action)
	s.Equal("Created process LIC-2025-03-00001", entries[0].Description)
	s.Equal("Ana Souza", entries[0].ActorName)
}

func (s *ProcessServiceSuite) TestCreateProcessValidation() {
	testCases := []struct {
		name    string
		mutate  func(r *dto.CreateProcessRequest)
		missing []string
	}{
		{
			name:    "bid_without_modality_and_opening",
			mutate:  func(r *dto.CreateProcessRequest) { r.Modality = nil; r.OpeningDate = nil },
			missing: []string{"modalidade", "data_abertura"},
		},
		{
			name:    "bid_blank_object",
			mutate:  func(r *dto.CreateProcessRequest) { r.Object = "  " },
			missing: []string{"objeto"},
		},
		{
			name:    "invalid_status_for_type",
			mutate:  func(r *dto.CreateProcessRequest) { r.Status = types.ContractStatusActive },
			missing: nil,
		},
		{
			name:    "negative_value",
			mutate:  func(r *dto.CreateProcessRequest) { r.EstimatedValue = lo.ToPtr(decimal.NewFromInt(-1)) },
			missing: nil,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := bidRequest()
			tc.mutate(&req)

			resp, err := s.service.CreateProcess(s.GetContext(), req)
			s.Error(err)
			s.Nil(resp)
			s.True(ierr.IsValidation(err))
			if tc.missing != nil {
				details := ierr.ReportableDetails(err)
				s.ElementsMatch(tc.missing, details["missing_fields"])
			}
		})
	}

	s.Empty(s.GetStores().HistoryRepo.All())
}

func (s *ProcessServiceSuite) TestCreateContractRequiresTerm() {
	req := contractRequest()
	req.EndDate = lo.ToPtr(types.NewDate(2024, time.December, 31))

	_, err := s.service.CreateProcess(s.GetContext(), req)
	s.True(ierr.IsValidation(err))
}

func (s *ProcessServiceSuite) TestCreateProcessAllocationFailure() {
	s.GetStores().SequenceRepo.FailOn("next", ierr.NewError("lock timeout").Mark(ierr.ErrDatabase))

	resp, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsAllocation(err))

	count, err := s.GetStores().ProcessRepo.Count(s.GetContext(), nil)
	s.NoError(err)
	s.Zero(count)
	s.Empty(s.GetStores().HistoryRepo.All())
}

func (s *ProcessServiceSuite) TestCreateProcessWithoutTenant() {
	ctx := context.WithValue(s.GetContext(), types.CtxTenantID, "")

	_, err := s.service.CreateProcess(ctx, bidRequest())
	s.True(ierr.IsTenantProvisioning(err))
}

func (s *ProcessServiceSuite) TestCreateProcessSurvivesHistoryFailure() {
	s.GetStores().HistoryRepo.FailOn("create", ierr.NewError("history down").Mark(ierr.ErrDatabase))

	resp, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.NoError(err)
	s.NotNil(resp)
	s.Empty(s.GetStores().HistoryRepo.All())
}

func (s *ProcessServiceSuite) TestGetProcessOtherTenant() {
	resp, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.Require().NoError(err)

	other := types.SetTenantID(s.GetContext(), "tenant_other")
	_, err = s.service.GetProcess(other, resp.ID)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.ListHistory(other, resp.ID)
	s.True(ierr.IsNotFound(err))
}

func (s *ProcessServiceSuite) TestUpdateProcessRecordsEachField() {
	created, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.Require().NoError(err)

	var req dto.UpdateProcessRequest
	s.Require().NoError(json.Unmarshal([]byte(`{
		"status": "em_julgamento",
		"valor_estimado": "175000.5",
		"secretaria": null,
		"objeto": "Aquisição de merenda escolar"
	}`), &req))

	s.SetNow(testutil.TestNow.Add(time.Hour))
	updated, err := s.service.UpdateProcess(s.GetContext(), created.ID, req)
	s.Require().NoError(err)
	s.Equal(types.ProcessStatusUnderJudgement, updated.Status)
	s.Nil(updated.Department)
	s.Equal(created.Number, updated.Number)

	entries := s.history(created.ID)
	s.Require().Len(entries, 4)
	updates := lo.Filter(entries, func(e *history.Entry, _ int) bool { return e.Action == types.HistoryActionUpdated })
	s.Len(updates, 3)

	descriptions := lo.Map(updates, func(e *history.Entry, _ int) string { return e.Description })
	s.ElementsMatch([]string{
		"Changed status from em_aberto to em_julgamento",
		"Changed valor estimado from R$ 150.000,00 to R$ 175.000,50",
		"Removed secretaria (was Educação)",
	}, descriptions)
	s.Equal(types.HistoryActionCreated, entries[len(entries)-1].Action)
}

func (s *ProcessServiceSuite) TestUpdateProcessWithoutChanges() {
	created, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.Require().NoError(err)

	_, err = s.service.UpdateProcess(s.GetContext(), created.ID, dto.UpdateProcessRequest{
		Object: lo.ToPtr("Aquisição de merenda escolar"),
	})
	s.NoError(err)
	s.Len(s.history(created.ID), 1)
}

func (s *ProcessServiceSuite) TestUpdateProcessRejectsStatusOfOtherType() {
	created, err := s.service.CreateProcess(s.GetContext(), contractRequest())
	s.Require().NoError(err)

	_, err = s.service.UpdateProcess(s.GetContext(), created.ID, dto.UpdateProcessRequest{
		Status: lo.ToPtr(types.ProcessStatusAwarded),
	})
	s.True(ierr.IsValidation(err))
	s.Len(s.history(created.ID), 1)
}

func (s *ProcessServiceSuite) TestDeleteProcessCancels() {
	created, err := s.service.CreateProcess(s.GetContext(), contractRequest())
	s.Require().NoError(err)

	s.NoError(s.service.DeleteProcess(s.GetContext(), created.ID))

	got, err := s.service.GetProcess(s.GetContext(), created.ID)
	s.Require().NoError(err)
	s.Equal(types.ContractStatusCanceled, got.Status)

	// deleting again changes nothing
	s.NoError(s.service.DeleteProcess(s.GetContext(), created.ID))

	entries := s.history(created.ID)
	s.Require().Len(entries, 2)
	deleted := lo.Filter(entries, func(e *history.Entry, _ int) bool { return e.Action == types.HistoryActionDeleted })
	s.Require().Len(deleted, 1)
	s.Equal("Deleted process CTR-2025-03-00001", deleted[0].Description)

	list, err := s.service.ListProcesses(s.GetContext(), types.NewProcessFilter())
	s.NoError(err)
	s.Empty(list.Items)
}

func (s *ProcessServiceSuite) TestDeleteMissingProcess() {
	err := s.service.DeleteProcess(s.GetContext(), "proc_missing")
	s.True(ierr.IsNotFound(err))
	s.Empty(s.GetStores().HistoryRepo.All())
}

func (s *ProcessServiceSuite) TestListProcesses() {
	for i := 0; i < 3; i++ {
		_, err := s.service.CreateProcess(s.GetContext(), bidRequest())
		s.Require().NoError(err)
	}
	_, err := s.service.CreateProcess(s.GetContext(), contractRequest())
	s.Require().NoError(err)

	testCases := []struct {
		name          string
		filter        *types.ProcessFilter
		expectedItems int
		expectedTotal int
	}{
		{
			name:          "all",
			filter:        types.NewProcessFilter(),
			expectedItems: 4,
			expectedTotal: 4,
		},
		{
			name:          "by_type",
			filter:        &types.ProcessFilter{QueryFilter: types.NewDefaultQueryFilter(), Type: types.ProcessTypeContract},
			expectedItems: 1,
			expectedTotal: 1,
		},
		{
			name:          "search_number",
			filter:        &types.ProcessFilter{QueryFilter: types.NewDefaultQueryFilter(), Search: "lic-2025-03-00002"},
			expectedItems: 1,
			expectedTotal: 1,
		},
		{
			name: "paginated",
			filter: &types.ProcessFilter{QueryFilter: &types.QueryFilter{
				Limit:  lo.ToPtr(2),
				Offset: lo.ToPtr(2),
			}},
			expectedItems: 2,
			expectedTotal: 4,
		},
		{
			name:          "value_range",
			filter:        &types.ProcessFilter{QueryFilter: types.NewDefaultQueryFilter(), MinValue: "100000", MaxValue: "200000"},
			expectedItems: 3,
			expectedTotal: 3,
		},
		{
			name:          "opening_range",
			filter:        &types.ProcessFilter{QueryFilter: types.NewDefaultQueryFilter(), OpenedFrom: "2025-03-21"},
			expectedItems: 0,
			expectedTotal: 0,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			resp, err := s.service.ListProcesses(s.GetContext(), tc.filter)
			s.NoError(err)
			s.Len(resp.Items, tc.expectedItems)
			s.Equal(tc.expectedTotal, resp.Pagination.Total)
		})
	}
}

func (s *ProcessServiceSuite) TestListProcessesInvalidFilter() {
	_, err := s.service.ListProcesses(s.GetContext(), &types.ProcessFilter{
		QueryFilter: types.NewDefaultQueryFilter(),
		MinValue:    "muito",
	})
	s.True(ierr.IsValidation(err))
}

func (s *ProcessServiceSuite) TestGetDashboard() {
	_, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.Require().NoError(err)
	expiring, err := s.service.CreateProcess(s.GetContext(), contractRequest())
	s.Require().NoError(err)

	later := contractRequest()
	later.EndDate = lo.ToPtr(types.NewDate(2026, time.December, 31))
	_, err = s.service.CreateProcess(s.GetContext(), later)
	s.Require().NoError(err)

	canceled, err := s.service.CreateProcess(s.GetContext(), bidRequest())
	s.Require().NoError(err)
	s.Require().NoError(s.service.DeleteProcess(s.GetContext(), canceled.ID))

	dashboard, err := s.service.GetDashboard(s.GetContext())
	s.Require().NoError(err)
	s.Equal(90, dashboard.WindowDays)
	s.Equal(4, dashboard.Total)
	s.Equal(1, dashboard.ByStatus[string(types.ProcessStatusOpen)])
	s.Equal(1, dashboard.ByStatus[string(types.ProcessStatusCanceled)])
	s.Equal(2, dashboard.ByStatus[string(types.ContractStatusActive)])
	s.Equal(1, dashboard.ByModality[string(types.ModalityElectronicAuction)])
	s.Equal(1, dashboard.ByDepartment["Educação"])
	s.True(decimal.RequireFromString("150000").Equal(dashboard.TotalEstimatedValue))
	s.Require().Len(dashboard.ExpiringContracts, 1)
	s.Equal(expiring.ID, dashboard.ExpiringContracts[0].ID)
}
