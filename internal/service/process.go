package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/process"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ExpiringContractsWindow is how far ahead the dashboard looks for contracts ending
const ExpiringContractsWindow = 90 * 24 * time.Hour

type ProcessService interface {
	CreateProcess(ctx context.Context, req dto.CreateProcessRequest) (*dto.ProcessResponse, error)
	GetProcess(ctx context.Context, id string) (*dto.ProcessResponse, error)
	ListProcesses(ctx context.Context, filter *types.ProcessFilter) (*dto.ListProcessesResponse, error)
	UpdateProcess(ctx context.Context, id string, req dto.UpdateProcessRequest) (*dto.ProcessResponse, error)
	// DeleteProcess cancels the process, rows are never removed
	DeleteProcess(ctx context.Context, id string) error
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	// ListHistory returns the audit trail of the process, newest first
	ListHistory(ctx context.Context, id string) ([]*history.Entry, error)
}

type processService struct {
	ServiceParams
	allocator SequenceAllocator
	recorder  HistoryRecorder
}

func NewProcessService(params ServiceParams, allocator SequenceAllocator, recorder HistoryRecorder) ProcessService {
	return &processService{
		ServiceParams: params,
		allocator:     allocator,
		recorder:      recorder,
	}
}

// CreateProcess allocates the number and inserts the process in one transaction, so a
// failed insert does not consume a number. History is written once the process exists.
func (s *processService) CreateProcess(ctx context.Context, req dto.CreateProcessRequest) (*dto.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tenantID, err := postgres.RequireTenantID(ctx)
	if err != nil {
		return nil, err
	}

	var p *process.Process
	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		number, err := s.allocator.Allocate(ctx, tenantID, req.Type)
		if err != nil {
			return err
		}

		p = req.ToProcess(ctx, number)
		p.Stamp(s.now())
		return s.ProcessRepo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("created process",
		"process_id", p.ID,
		"numero_processo", p.Number,
		"tipo", p.Type,
		"tenant_id", tenantID,
	)

	s.recorder.RecordCreation(ctx, s.ref(ctx, p), types.HistorySectionGeneral,
		fmt.Sprintf("Created process %s", p.Number))

	return dto.NewProcessResponse(p), nil
}

func (s *processService) GetProcess(ctx context.Context, id string) (*dto.ProcessResponse, error) {
	if id == "" {
		return nil, ierr.NewError("process id is required").
			WithHint("Process ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.ProcessRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewProcessResponse(p), nil
}

func (s *processService) ListProcesses(ctx context.Context, filter *types.ProcessFilter) (*dto.ListProcessesResponse, error) {
	if filter == nil {
		filter = types.NewProcessFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// page and total are independent reads
	var (
		processes []*process.Process
		total     int
	)
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		processes, err = s.ProcessRepo.List(gctx, filter)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = s.ProcessRepo.Count(gctx, filter)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	items := lo.Map(processes, func(p *process.Process, _ int) *dto.ProcessResponse {
		return dto.NewProcessResponse(p)
	})
	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *processService) UpdateProcess(ctx context.Context, id string, req dto.UpdateProcessRequest) (*dto.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.ProcessRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := existing.HistoryFields()

	updated := *existing
	if err := req.Apply(&updated); err != nil {
		return nil, err
	}
	updated.Touch(s.now(), types.GetUserID(ctx))

	if err := s.ProcessRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.recorder.RecordUpdate(ctx, s.ref(ctx, &updated), types.HistorySectionGeneral,
		previous, updated.HistoryFields())

	return dto.NewProcessResponse(&updated), nil
}

// DeleteProcess moves the process to the terminal status of its type.
// Deleting an already canceled process is a no-op.
func (s *processService) DeleteProcess(ctx context.Context, id string) error {
	existing, err := s.ProcessRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.IsTerminal() {
		return nil
	}

	canceled := *existing
	canceled.Status = existing.Type.TerminalStatus()
	canceled.Touch(s.now(), types.GetUserID(ctx))

	if err := s.ProcessRepo.Update(ctx, &canceled); err != nil {
		return err
	}

	s.Logger.Infow("canceled process",
		"process_id", canceled.ID,
		"numero_processo", canceled.Number,
		"previous_status", existing.Status,
	)

	s.recorder.RecordDeletion(ctx, s.ref(ctx, &canceled), types.HistorySectionGeneral,
		fmt.Sprintf("Deleted process %s", canceled.Number),
		fmt.Sprintf("process %s (%s) with status %s", existing.Number, existing.Object, existing.Status))

	return nil
}

func (s *processService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := s.ProcessRepo.Stats(ctx, s.now(), ExpiringContractsWindow)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Stats:      stats,
		WindowDays: int(ExpiringContractsWindow / (24 * time.Hour)),
	}, nil
}

func (s *processService) ListHistory(ctx context.Context, id string) ([]*history.Entry, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, id); err != nil {
		return nil, err
	}
	return s.recorder.ListHistory(ctx, id)
}

func (s *processService) ref(ctx context.Context, p *process.Process) HistoryRef {
	return historyRef(ctx, s.ServiceParams, p)
}
