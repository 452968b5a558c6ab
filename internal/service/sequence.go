package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/sequence"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

// SequenceAllocator hands out process numbers of the form {PREFIX}-{YYYY}-{MM}-{NNNNN}
type SequenceAllocator interface {
	// Allocate returns the next number of the tenant for the current month.
	// Any failure is an allocation error and no number is returned.
	Allocate(ctx context.Context, tenantID string, processType types.ProcessType) (string, error)
}

type sequenceAllocator struct {
	ServiceParams
}

func NewSequenceAllocator(params ServiceParams) SequenceAllocator {
	return &sequenceAllocator{ServiceParams: params}
}

func (s *sequenceAllocator) Allocate(ctx context.Context, tenantID string, processType types.ProcessType) (string, error) {
	if err := processType.Validate(); err != nil {
		return "", err
	}
	if tenantID == "" {
		return "", ierr.NewError("tenant id is required to allocate a process number").
			WithHint("No municipality is associated with this request").
			Mark(ierr.ErrTenantProvisioning)
	}

	scope := sequence.NewScope(tenantID, processType, s.now())

	var (
		next int64
		err  error
	)
	switch s.Config.Sequence.Mode {
	case types.SequenceModeCount:
		var count int64
		count, err = s.SequenceRepo.CountInScope(ctx, scope)
		next = count + 1
	default:
		next, err = s.SequenceRepo.Next(ctx, scope)
	}
	if err != nil {
		s.Logger.Errorw("failed to allocate process number",
			"tenant_id", tenantID,
			"prefix", scope.Prefix,
			"year", scope.Year,
			"month", scope.Month,
			"error", err,
		)
		if ierr.IsAllocation(err) {
			return "", err
		}
		return "", ierr.WithError(err).
			WithHint("Could not allocate a process number").
			Mark(ierr.ErrAllocation)
	}

	if next <= 0 {
		return "", ierr.NewErrorf("sequence returned %d", next).
			WithHint("Could not allocate a process number").
			Mark(ierr.ErrAllocation)
	}

	return scope.Format(next), nil
}
