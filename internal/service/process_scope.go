package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/process"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
)

// loadProcess returns the parent process of a sub-resource. The repository only sees
// the caller's tenant so a process of another municipality is reported as not found.
func loadProcess(ctx context.Context, params ServiceParams, processID string) (*process.Process, error) {
	if processID == "" {
		return nil, ierr.NewError("process id is required").
			WithHint("Process ID is required").
			Mark(ierr.ErrValidation)
	}
	return params.ProcessRepo.Get(ctx, processID)
}

func historyRef(ctx context.Context, params ServiceParams, p *process.Process) HistoryRef {
	return HistoryRef{
		ProcessID: p.ID,
		TenantID:  p.TenantID,
		Actor:     actorFromContext(ctx, params),
	}
}

// belongsTo hides records of another process behind a not found error
func belongsTo(entity, id, recordProcessID, processID string) error {
	if recordProcessID == processID {
		return nil
	}
	return ierr.NewErrorf("%s %s does not belong to process %s", entity, id, processID).
		WithHintf("%s not found", entity).
		WithReportableDetails(map[string]any{"id": id, "process_id": processID}).
		Mark(ierr.ErrNotFound)
}
