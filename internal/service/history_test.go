package service

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	"github.com/rafaelredel/sglc-prefeituras/internal/testutil"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HistoryRecorderSuite struct {
	testutil.BaseServiceTestSuite
	recorder HistoryRecorder
	ref      HistoryRef
}

func TestHistoryRecorder(t *testing.T) {
	suite.Run(t, new(HistoryRecorderSuite))
}

func (s *HistoryRecorderSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.recorder = NewHistoryRecorder(newTestServiceParams(&s.BaseServiceTestSuite))
	s.ref = HistoryRef{
		ProcessID: "proc_1",
		TenantID:  types.DefaultTenantID,
		Actor:     history.Actor{ID: types.DefaultUserID, Name: "Ana Souza"},
	}
}

func (s *HistoryRecorderSuite) entries() []*history.Entry {
	entries, err := s.recorder.ListHistory(s.GetContext(), s.ref.ProcessID)
	s.Require().NoError(err)
	return entries
}

func (s *HistoryRecorderSuite) TestRecordCreation() {
	out := s.recorder.RecordCreation(s.GetContext(), s.ref, types.HistorySectionGeneral, "Created process LIC-2025-03-00001")
	s.False(out.Failed())
	s.Equal(1, out.Recorded)

	entries := s.entries()
	s.Require().Len(entries, 1)
	e := entries[0]
	s.Equal(types.HistoryActionCreated, e.Action)
	s.Equal(types.HistorySectionGeneral, e.Section)
	s.Equal("Created process LIC-2025-03-00001", e.Description)
	s.Equal("Ana Souza", e.ActorName)
	s.Equal(types.DefaultUserID, e.ActorID)
	s.Equal(testutil.TestNow, e.CreatedAt)
	s.Nil(e.FieldChanged)
}

func (s *HistoryRecorderSuite) TestRecordUpdateOneEntryPerChangedField() {
	previous := history.Fields{
		"objeto":         history.Text("Aquisição de merenda"),
		"valor_estimado": history.Money(decimal.RequireFromString("1234.5")),
		"secretaria":     history.Text("Educação"),
		"responsavel":    history.Absent,
		"data_abertura":  history.Date(types.NewDate(2025, 3, 10)),
	}
	next := history.Fields{
		"objeto":         history.Text("Aquisição de merenda"),
		"valor_estimado": history.Money(decimal.RequireFromString("2000")),
		"secretaria":     history.Absent,
		"responsavel":    history.Text("Carlos Lima"),
		"data_abertura":  history.Date(types.NewDate(2025, 4, 1)),
	}

	out := s.recorder.RecordUpdate(s.GetContext(), s.ref, types.HistorySectionGeneral, previous, next)
	s.False(out.Failed())
	s.Equal(4, out.Recorded)

	byField := lo.KeyBy(s.entries(), func(e *history.Entry) string { return lo.FromPtr(e.FieldChanged) })
	s.Len(byField, 4)
	s.NotContains(byField, "objeto")

	s.Equal("Changed valor estimado from R$ 1.234,50 to R$ 2.000,00", byField["valor_estimado"].Description)
	s.Equal("1234.50", lo.FromPtr(byField["valor_estimado"].PreviousValue))
	s.Equal("2000.00", lo.FromPtr(byField["valor_estimado"].NewValue))

	s.Equal("Removed secretaria (was Educação)", byField["secretaria"].Description)
	s.Nil(byField["secretaria"].NewValue)

	s.Equal("Set responsável to Carlos Lima", byField["responsavel"].Description)
	s.Nil(byField["responsavel"].PreviousValue)

	s.Equal("Changed data de abertura from 10/03/2025 to 01/04/2025", byField["data_abertura"].Description)
	s.Equal("2025-03-10", lo.FromPtr(byField["data_abertura"].PreviousValue))

	for _, e := range byField {
		s.Equal(types.HistoryActionUpdated, e.Action)
	}
}

func (s *HistoryRecorderSuite) TestRecordUpdateWithoutChanges() {
	fields := history.Fields{
		"objeto": history.Text("Reforma da escola"),
		"valor":  history.Money(decimal.NewFromInt(10)),
	}
	out := s.recorder.RecordUpdate(s.GetContext(), s.ref, types.HistorySectionGeneral, fields, fields)
	s.False(out.Failed())
	s.Zero(out.Recorded)
	s.Empty(s.entries())
	s.Zero(s.GetDB().TxCount())
}

func (s *HistoryRecorderSuite) TestRecordUpdateRestrictedFields() {
	previous := history.Fields{"status": history.Text("em_aberto"), "objeto": history.Text("A")}
	next := history.Fields{"status": history.Text("homologada"), "objeto": history.Text("B")}

	out := s.recorder.RecordUpdate(s.GetContext(), s.ref, types.HistorySectionGeneral, previous, next, "status")
	s.Equal(1, out.Recorded)

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal("Changed status from em_aberto to homologada", entries[0].Description)
}

func (s *HistoryRecorderSuite) TestRecordDeletion() {
	out := s.recorder.RecordDeletion(s.GetContext(), s.ref, types.HistorySectionInvoices,
		"Deleted invoice nº 123", "invoice nº 123 worth R$ 500,00")
	s.False(out.Failed())

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal(types.HistoryActionDeleted, entries[0].Action)
	s.Equal(types.HistorySectionInvoices, entries[0].Section)
	s.Equal("invoice nº 123 worth R$ 500,00", lo.FromPtr(entries[0].PreviousValue))
}

func (s *HistoryRecorderSuite) TestActorNameFallback() {
	ref := s.ref
	ref.Actor.Name = ""
	s.recorder.RecordCreation(s.GetContext(), ref, types.HistorySectionGeneral, "Created")

	entries := s.entries()
	s.Require().Len(entries, 1)
	s.Equal(types.DefaultActorName, entries[0].ActorName)
}

func (s *HistoryRecorderSuite) TestWriteFailureIsReportedNotRaised() {
	s.GetStores().HistoryRepo.FailOn("create", ierr.NewError("disk full").Mark(ierr.ErrDatabase))

	out := s.recorder.RecordCreation(s.GetContext(), s.ref, types.HistorySectionGeneral, "Created")
	s.True(out.Failed())
	s.Zero(out.Recorded)
	s.True(ierr.Is(out.Err, ierr.ErrAuditWrite))
	s.Empty(s.GetStores().HistoryRepo.All())
}

func (s *HistoryRecorderSuite) TestInvalidReference() {
	testCases := []struct {
		name    string
		ref     HistoryRef
		section types.HistorySection
	}{
		{name: "missing_process", ref: HistoryRef{TenantID: types.DefaultTenantID}, section: types.HistorySectionGeneral},
		{name: "missing_tenant", ref: HistoryRef{ProcessID: "proc_1"}, section: types.HistorySectionGeneral},
		{name: "unknown_section", ref: s.ref, section: types.HistorySection("contabilidade")},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := s.recorder.RecordCreation(s.GetContext(), tc.ref, tc.section, "Created")
			s.True(out.Failed())
			s.True(ierr.Is(out.Err, ierr.ErrAuditWrite))
		})
	}
	s.Empty(s.GetStores().HistoryRepo.All())
}

func (s *HistoryRecorderSuite) TestListHistoryNewestFirst() {
	s.recorder.RecordCreation(s.GetContext(), s.ref, types.HistorySectionGeneral, "first")
	s.SetNow(testutil.TestNow.Add(time.Minute))
	s.recorder.RecordCreation(s.GetContext(), s.ref, types.HistorySectionGeneral, "second")

	other := s.ref
	other.ProcessID = "proc_2"
	s.recorder.RecordCreation(s.GetContext(), other, types.HistorySectionGeneral, "other process")

	entries := s.entries()
	s.Require().Len(entries, 2)
	s.Equal("second", entries[0].Description)
	s.Equal("first", entries[1].Description)
}

func (s *HistoryRecorderSuite) TestListHistoryMissingTable() {
	missing := postgres.WrapError(&pq.Error{Code: postgres.CodeUndefinedTable, Message: `relation "processo_historico" does not exist`}, "history")
	s.GetStores().HistoryRepo.FailOn("list", missing)

	for i := 0; i < 2; i++ {
		entries, err := s.recorder.ListHistory(s.GetContext(), s.ref.ProcessID)
		s.NoError(err)
		s.NotNil(entries)
		s.Empty(entries)
	}
}

func (s *HistoryRecorderSuite) TestListHistoryOtherErrors() {
	s.GetStores().HistoryRepo.FailOn("list", ierr.NewError("timeout").Mark(ierr.ErrDatabase))

	entries, err := s.recorder.ListHistory(s.GetContext(), s.ref.ProcessID)
	s.Error(err)
	s.Nil(entries)
	s.True(ierr.IsDatabase(err))
}
