package types

import (
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ProcessType distinguishes bids from contracts. Both live in the same table.
type ProcessType string

const (
	ProcessTypeBid      ProcessType = "licitacao"
	ProcessTypeContract ProcessType = "contrato"
)

// Process number prefixes
const (
	ProcessPrefixBid      = "LIC"
	ProcessPrefixContract = "CTR"
)

// Prefix returns the numbering prefix of the process type
func (t ProcessType) Prefix() string {
	if t == ProcessTypeContract {
		return ProcessPrefixContract
	}
	return ProcessPrefixBid
}

func (t ProcessType) Validate() error {
	if t != ProcessTypeBid && t != ProcessTypeContract {
		return ierr.NewErrorf("invalid process type: %s", t).
			WithHint("Type must be either 'licitacao' or 'contrato'").
			WithReportableDetails(map[string]any{"tipo": t}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ProcessStatus is the lifecycle status of a bid or contract
type ProcessStatus string

const (
	// bids
	ProcessStatusOpen              ProcessStatus = "em_aberto"
	ProcessStatusInProgress        ProcessStatus = "em_andamento"
	ProcessStatusAwaitingDocuments ProcessStatus = "aguardando_docs"
	ProcessStatusUnderJudgement    ProcessStatus = "em_julgamento"
	ProcessStatusAwarded           ProcessStatus = "homologada"
	ProcessStatusCanceled          ProcessStatus = "cancelada"
	ProcessStatusDeserted          ProcessStatus = "deserta"
	ProcessStatusFailed            ProcessStatus = "fracassada"
	ProcessStatusSuspended         ProcessStatus = "suspensa"

	// contracts
	ContractStatusActive    ProcessStatus = "vigente"
	ContractStatusClosed    ProcessStatus = "encerrado"
	ContractStatusSuspended ProcessStatus = "suspenso"
	ContractStatusCanceled  ProcessStatus = "cancelado"
)

var (
	bidStatuses = []ProcessStatus{
		ProcessStatusOpen,
		ProcessStatusInProgress,
		ProcessStatusAwaitingDocuments,
		ProcessStatusUnderJudgement,
		ProcessStatusAwarded,
		ProcessStatusCanceled,
		ProcessStatusDeserted,
		ProcessStatusFailed,
		ProcessStatusSuspended,
	}
	contractStatuses = []ProcessStatus{
		ContractStatusActive,
		ContractStatusClosed,
		ContractStatusSuspended,
		ContractStatusCanceled,
	}
)

// InitialStatus is the status a freshly created process starts in
func (t ProcessType) InitialStatus() ProcessStatus {
	if t == ProcessTypeContract {
		return ContractStatusActive
	}
	return ProcessStatusOpen
}

// TerminalStatus is the status a deleted process is moved to
func (t ProcessType) TerminalStatus() ProcessStatus {
	if t == ProcessTypeContract {
		return ContractStatusCanceled
	}
	return ProcessStatusCanceled
}

// Statuses lists the statuses valid for the process type
func (t ProcessType) Statuses() []ProcessStatus {
	if t == ProcessTypeContract {
		return contractStatuses
	}
	return bidStatuses
}

// ValidateFor checks the status belongs to the given process type
func (s ProcessStatus) ValidateFor(t ProcessType) error {
	allowed := t.Statuses()
	if !lo.Contains(allowed, s) {
		return ierr.NewErrorf("invalid status %s for %s", s, t).
			WithHintf("Status must be one of %v", allowed).
			WithReportableDetails(map[string]any{"status": s, "tipo": t}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Modality is the bidding modality under Brazilian procurement law
type Modality string

const (
	ModalityElectronicAuction Modality = "pregao_eletronico"
	ModalityInPersonAuction   Modality = "pregao_presencial"
	ModalityCompetition       Modality = "concorrencia"
	ModalityPriceQuotation    Modality = "tomada_precos"
	ModalityWaiver            Modality = "dispensa"
	ModalityUnenforceability  Modality = "inexigibilidade"
	ModalityRDC               Modality = "rdc"
	ModalityCompetitiveDialog Modality = "dialogo_competitivo"
)

var modalities = []Modality{
	ModalityElectronicAuction,
	ModalityInPersonAuction,
	ModalityCompetition,
	ModalityPriceQuotation,
	ModalityWaiver,
	ModalityUnenforceability,
	ModalityRDC,
	ModalityCompetitiveDialog,
}

func (m Modality) Validate() error {
	if !lo.Contains(modalities, m) {
		return ierr.NewErrorf("invalid modality: %s", m).
			WithHintf("Modality must be one of %v", modalities).
			WithReportableDetails(map[string]any{"modalidade": m}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ProcessFilter represents filters for process listing
type ProcessFilter struct {
	*QueryFilter

	// Search matches numero_processo, objeto and responsavel case-insensitively
	Search     string        `json:"search,omitempty" form:"search"`
	Type       ProcessType   `json:"tipo,omitempty" form:"tipo"`
	Modality   Modality      `json:"modalidade,omitempty" form:"modalidade"`
	Status     ProcessStatus `json:"status,omitempty" form:"status"`
	Department string        `json:"secretaria,omitempty" form:"secretaria"`
	// OpenedFrom and OpenedTo bound data_abertura, both inclusive
	OpenedFrom string `json:"data_inicio,omitempty" form:"data_inicio"`
	OpenedTo   string `json:"data_fim,omitempty" form:"data_fim"`
	MinValue   string `json:"valor_min,omitempty" form:"valor_min"`
	MaxValue   string `json:"valor_max,omitempty" form:"valor_max"`

	// IncludeTerminal keeps canceled processes in the result
	IncludeTerminal bool `json:"include_canceled,omitempty" form:"include_canceled"`
}

func NewProcessFilter() *ProcessFilter {
	return &ProcessFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func NewNoLimitProcessFilter() *ProcessFilter {
	return &ProcessFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f ProcessFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}

	if f.Type != "" {
		if err := f.Type.Validate(); err != nil {
			return err
		}
	}

	if f.Modality != "" {
		if err := f.Modality.Validate(); err != nil {
			return err
		}
	}

	if _, _, err := f.OpenedRange(); err != nil {
		return err
	}

	if _, _, err := f.ValueRange(); err != nil {
		return err
	}

	return nil
}

// OpenedRange parses the opening date bounds, nil when not set
func (f ProcessFilter) OpenedRange() (*Date, *Date, error) {
	var from, to *Date
	if f.OpenedFrom != "" {
		d, err := ParseDate(f.OpenedFrom)
		if err != nil {
			return nil, nil, ierr.WithError(err).
				WithHint("data_inicio must be a date in the YYYY-MM-DD format").
				Mark(ierr.ErrValidation)
		}
		from = &d
	}
	if f.OpenedTo != "" {
		d, err := ParseDate(f.OpenedTo)
		if err != nil {
			return nil, nil, ierr.WithError(err).
				WithHint("data_fim must be a date in the YYYY-MM-DD format").
				Mark(ierr.ErrValidation)
		}
		to = &d
	}
	if from != nil && to != nil && to.Before(from.Time) {
		return nil, nil, ierr.NewError("invalid date range").
			WithHint("data_fim must not be before data_inicio").
			Mark(ierr.ErrValidation)
	}
	return from, to, nil
}

// ValueRange parses the estimated value bounds, nil when not set
func (f ProcessFilter) ValueRange() (*decimal.Decimal, *decimal.Decimal, error) {
	var minValue, maxValue *decimal.Decimal
	if f.MinValue != "" {
		v, err := decimal.NewFromString(f.MinValue)
		if err != nil {
			return nil, nil, ierr.WithError(err).
				WithHint("valor_min must be a number").
				Mark(ierr.ErrValidation)
		}
		minValue = &v
	}
	if f.MaxValue != "" {
		v, err := decimal.NewFromString(f.MaxValue)
		if err != nil {
			return nil, nil, ierr.WithError(err).
				WithHint("valor_max must be a number").
				Mark(ierr.ErrValidation)
		}
		maxValue = &v
	}
	if minValue != nil && maxValue != nil && maxValue.LessThan(*minValue) {
		return nil, nil, ierr.NewError("invalid value range").
			WithHint("valor_max must not be less than valor_min").
			Mark(ierr.ErrValidation)
	}
	return minValue, maxValue, nil
}
