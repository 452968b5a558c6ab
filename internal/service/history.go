package service

import (
	"context"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/history"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/postgres"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/samber/lo"
)

// HistoryRef identifies the process a history entry belongs to and who acted on it
type HistoryRef struct {
	ProcessID string
	TenantID  string
	Actor     history.Actor
}

// Outcome reports what a recorder call wrote. It is informational only:
// a failed history write never fails the operation that triggered it.
type Outcome struct {
	Recorded int
	Err      error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// HistoryRecorder appends entries to the audit trail of a process
type HistoryRecorder interface {
	RecordCreation(ctx context.Context, ref HistoryRef, section types.HistorySection, description string) Outcome
	// RecordUpdate writes one entry per field whose value differs between previous and next.
	// With no fields given every field of the snapshots is compared.
	RecordUpdate(ctx context.Context, ref HistoryRef, section types.HistorySection, previous, next history.Fields, fields ...string) Outcome
	// RecordDeletion must only be called once the delete succeeded
	RecordDeletion(ctx context.Context, ref HistoryRef, section types.HistorySection, description, deletedSummary string) Outcome
	// ListHistory returns entries newest first, empty when the history table does not exist
	ListHistory(ctx context.Context, processID string) ([]*history.Entry, error)
}

type historyRecorder struct {
	ServiceParams
}

func NewHistoryRecorder(params ServiceParams) HistoryRecorder {
	return &historyRecorder{ServiceParams: params}
}

func (s *historyRecorder) RecordCreation(ctx context.Context, ref HistoryRef, section types.HistorySection, description string) Outcome {
	entry := s.newEntry(ref, section, types.HistoryActionCreated, description)
	return s.write(ctx, ref, section, types.HistoryActionCreated, entry)
}

func (s *historyRecorder) RecordUpdate(
	ctx context.Context,
	ref HistoryRef,
	section types.HistorySection,
	previous, next history.Fields,
	fields ...string,
) Outcome {
	changes := history.Diff(previous, next, fields...)
	if len(changes) == 0 {
		return Outcome{}
	}

	entries := make([]*history.Entry, 0, len(changes))
	for _, change := range changes {
		entry := s.newEntry(ref, section, types.HistoryActionUpdated, change.Description())
		entry.FieldChanged = lo.ToPtr(change.Field)
		entry.PreviousValue = change.Previous.RawPtr()
		entry.NewValue = change.Next.RawPtr()
		entries = append(entries, entry)
	}

	return s.write(ctx, ref, section, types.HistoryActionUpdated, entries...)
}

func (s *historyRecorder) RecordDeletion(
	ctx context.Context,
	ref HistoryRef,
	section types.HistorySection,
	description, deletedSummary string,
) Outcome {
	entry := s.newEntry(ref, section, types.HistoryActionDeleted, description)
	entry.PreviousValue = history.Text(deletedSummary).RawPtr()
	return s.write(ctx, ref, section, types.HistoryActionDeleted, entry)
}

func (s *historyRecorder) ListHistory(ctx context.Context, processID string) ([]*history.Entry, error) {
	entries, err := s.HistoryRepo.ListByProcess(ctx, processID)
	if err != nil {
		if postgres.IsUndefinedTable(err) {
			s.Logger.Warnw("history table missing, returning empty history",
				"process_id", processID,
				"error", err,
			)
			return []*history.Entry{}, nil
		}
		return nil, err
	}

	if entries == nil {
		entries = []*history.Entry{}
	}
	return entries, nil
}

func (s *historyRecorder) newEntry(ref HistoryRef, section types.HistorySection, action types.HistoryAction, description string) *history.Entry {
	actorName := ref.Actor.Name
	if actorName == "" {
		actorName = types.DefaultActorName
	}

	return &history.Entry{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_HISTORY),
		ProcessID:   ref.ProcessID,
		TenantID:    ref.TenantID,
		ActorID:     ref.Actor.ID,
		ActorName:   actorName,
		Section:     section,
		Action:      action,
		Description: description,
		CreatedAt:   s.now().UTC(),
	}
}

// write stores the entries in one transaction, or a savepoint when the caller is already in one
func (s *historyRecorder) write(
	ctx context.Context,
	ref HistoryRef,
	section types.HistorySection,
	action types.HistoryAction,
	entries ...*history.Entry,
) Outcome {
	if err := s.validate(ref, section); err != nil {
		return s.fail(ctx, ref, section, action, err)
	}

	err := s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, entry := range entries {
			if err := s.HistoryRepo.Create(ctx, entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return s.fail(ctx, ref, section, action, err)
	}

	return Outcome{Recorded: len(entries)}
}

func (s *historyRecorder) validate(ref HistoryRef, section types.HistorySection) error {
	if ref.ProcessID == "" || ref.TenantID == "" {
		return ierr.NewError("history entry without process or tenant").
			WithReportableDetails(map[string]any{
				"process_id": ref.ProcessID,
				"tenant_id":  ref.TenantID,
			}).
			Mark(ierr.ErrValidation)
	}
	return section.Validate()
}

func (s *historyRecorder) fail(
	ctx context.Context,
	ref HistoryRef,
	section types.HistorySection,
	action types.HistoryAction,
	err error,
) Outcome {
	auditErr := ierr.WithError(err).
		WithHint("Failed to record process history").
		WithReportableDetails(map[string]any{
			"process_id": ref.ProcessID,
			"section":    section,
			"action":     action,
		}).
		Mark(ierr.ErrAuditWrite)

	s.Logger.WithContext(ctx).Errorw("failed to record process history",
		"process_id", ref.ProcessID,
		"tenant_id", ref.TenantID,
		"section", section,
		"action", action,
		"error", err,
	)
	s.Sentry.CaptureWithContext(ctx, auditErr, map[string]string{
		"component": "history",
		"section":   string(section),
		"action":    string(action),
	})

	return Outcome{Err: auditErr}
}
