package dto

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/process"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
	"github.com/shopspring/decimal"
)

type CreateProcessRequest struct {
	Type           types.ProcessType   `json:"tipo" validate:"required"`
	Object         string              `json:"objeto"`
	Status         types.ProcessStatus `json:"status,omitempty"`
	Department     *string             `json:"secretaria,omitempty"`
	Modality       *types.Modality     `json:"modalidade,omitempty"`
	Responsible    *string             `json:"responsavel,omitempty"`
	EstimatedValue *decimal.Decimal    `json:"valor_estimado,omitempty"`
	TotalValue     *decimal.Decimal    `json:"valor_total,omitempty"`
	Supplier       *string             `json:"fornecedor,omitempty"`
	SupplierCNPJ   *string             `json:"cnpj_fornecedor,omitempty"`
	OpeningDate    *types.Date         `json:"data_abertura,omitempty"`
	StartDate      *types.Date         `json:"data_inicio,omitempty"`
	EndDate        *types.Date         `json:"data_fim,omitempty"`
	FundingSource  *string             `json:"fonte_recursos,omitempty"`
	Notes          *string             `json:"observacoes,omitempty"`
}

// Validate checks the fields each process type requires. Bids need modality, object,
// department, opening date and responsible; contracts need object, supplier and term.
func (r *CreateProcessRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if err := r.Type.Validate(); err != nil {
		return err
	}

	missing := make([]string, 0)
	if blank(r.Object) {
		missing = append(missing, "objeto")
	}

	switch r.Type {
	case types.ProcessTypeBid:
		if r.Modality == nil || *r.Modality == "" {
			missing = append(missing, "modalidade")
		}
		if cleanText(r.Department) == nil {
			missing = append(missing, "secretaria")
		}
		if r.OpeningDate == nil || r.OpeningDate.IsZero() {
			missing = append(missing, "data_abertura")
		}
		if cleanText(r.Responsible) == nil {
			missing = append(missing, "responsavel")
		}
	case types.ProcessTypeContract:
		if cleanText(r.Supplier) == nil {
			missing = append(missing, "fornecedor")
		}
		if r.StartDate == nil || r.StartDate.IsZero() {
			missing = append(missing, "data_inicio")
		}
		if r.EndDate == nil || r.EndDate.IsZero() {
			missing = append(missing, "data_fim")
		}
	}
	if len(missing) > 0 {
		return missingFieldsError(missing)
	}

	if r.Status != "" {
		if err := r.Status.ValidateFor(r.Type); err != nil {
			return err
		}
	}
	if r.Modality != nil && *r.Modality != "" {
		if err := r.Modality.Validate(); err != nil {
			return err
		}
	}
	return validateProcessValues(r.EstimatedValue, r.TotalValue, r.StartDate, r.EndDate)
}

// ToProcess builds the process with its allocated number
func (r *CreateProcessRequest) ToProcess(ctx context.Context, number string) *process.Process {
	status := r.Status
	if status == "" {
		status = r.Type.InitialStatus()
	}

	var modality *types.Modality
	if r.Modality != nil && *r.Modality != "" {
		modality = r.Modality
	}

	return &process.Process{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROCESS),
		Number:         number,
		Type:           r.Type,
		Object:         strings.TrimSpace(r.Object),
		Status:         status,
		Department:     cleanText(r.Department),
		Modality:       modality,
		Responsible:    cleanText(r.Responsible),
		EstimatedValue: r.EstimatedValue,
		TotalValue:     r.TotalValue,
		Supplier:       cleanText(r.Supplier),
		SupplierCNPJ:   cleanText(r.SupplierCNPJ),
		OpeningDate:    nonZeroDate(r.OpeningDate),
		StartDate:      nonZeroDate(r.StartDate),
		EndDate:        nonZeroDate(r.EndDate),
		FundingSource:  cleanText(r.FundingSource),
		Notes:          cleanText(r.Notes),
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

// UpdateProcessRequest changes only the keys present in the body.
// An explicit null removes an optional field. Type and number never change.
type UpdateProcessRequest struct {
	Object         *string              `json:"objeto,omitempty"`
	Status         *types.ProcessStatus `json:"status,omitempty"`
	Department     *string              `json:"secretaria,omitempty"`
	Modality       *types.Modality      `json:"modalidade,omitempty"`
	Responsible    *string              `json:"responsavel,omitempty"`
	EstimatedValue *decimal.Decimal     `json:"valor_estimado,omitempty"`
	TotalValue     *decimal.Decimal     `json:"valor_total,omitempty"`
	Supplier       *string              `json:"fornecedor,omitempty"`
	SupplierCNPJ   *string              `json:"cnpj_fornecedor,omitempty"`
	OpeningDate    *types.Date          `json:"data_abertura,omitempty"`
	StartDate      *types.Date          `json:"data_inicio,omitempty"`
	EndDate        *types.Date          `json:"data_fim,omitempty"`
	FundingSource  *string              `json:"fonte_recursos,omitempty"`
	Notes          *string              `json:"observacoes,omitempty"`

	present presentFields
}

func (r *UpdateProcessRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateProcessRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	present, err := decodePresent(data)
	if err != nil {
		return err
	}
	*r = UpdateProcessRequest(a)
	r.present = present
	return nil
}

// Has reports whether the body carried the field, nil or not
func (r *UpdateProcessRequest) Has(field string) bool {
	if r.present == nil {
		return r.fieldSet(field)
	}
	return r.present.has(field)
}

// fieldSet covers requests built in code rather than decoded from JSON
func (r *UpdateProcessRequest) fieldSet(field string) bool {
	switch field {
	case "objeto":
		return r.Object != nil
	case "status":
		return r.Status != nil
	case "secretaria":
		return r.Department != nil
	case "modalidade":
		return r.Modality != nil
	case "responsavel":
		return r.Responsible != nil
	case "valor_estimado":
		return r.EstimatedValue != nil
	case "valor_total":
		return r.TotalValue != nil
	case "fornecedor":
		return r.Supplier != nil
	case "cnpj_fornecedor":
		return r.SupplierCNPJ != nil
	case "data_abertura":
		return r.OpeningDate != nil
	case "data_inicio":
		return r.StartDate != nil
	case "data_fim":
		return r.EndDate != nil
	case "fonte_recursos":
		return r.FundingSource != nil
	case "observacoes":
		return r.Notes != nil
	}
	return false
}

func (r *UpdateProcessRequest) Validate() error {
	if r.Has("objeto") && (r.Object == nil || blank(*r.Object)) {
		return invalidFieldError("objeto", "Object cannot be empty")
	}
	if r.Has("status") && (r.Status == nil || *r.Status == "") {
		return invalidFieldError("status", "Status cannot be empty")
	}
	if r.Modality != nil && *r.Modality != "" {
		if err := r.Modality.Validate(); err != nil {
			return err
		}
	}
	return validateProcessValues(r.EstimatedValue, r.TotalValue, nil, nil)
}

// Apply copies the present fields onto p. The status is checked against the process type.
func (r *UpdateProcessRequest) Apply(p *process.Process) error {
	if r.Has("objeto") {
		p.Object = strings.TrimSpace(*r.Object)
	}
	if r.Has("status") {
		if err := r.Status.ValidateFor(p.Type); err != nil {
			return err
		}
		p.Status = *r.Status
	}
	if r.Has("secretaria") {
		p.Department = cleanText(r.Department)
	}
	if r.Has("modalidade") {
		p.Modality = nil
		if r.Modality != nil && *r.Modality != "" {
			p.Modality = r.Modality
		}
	}
	if r.Has("responsavel") {
		p.Responsible = cleanText(r.Responsible)
	}
	if r.Has("valor_estimado") {
		p.EstimatedValue = r.EstimatedValue
	}
	if r.Has("valor_total") {
		p.TotalValue = r.TotalValue
	}
	if r.Has("fornecedor") {
		p.Supplier = cleanText(r.Supplier)
	}
	if r.Has("cnpj_fornecedor") {
		p.SupplierCNPJ = cleanText(r.SupplierCNPJ)
	}
	if r.Has("data_abertura") {
		p.OpeningDate = nonZeroDate(r.OpeningDate)
	}
	if r.Has("data_inicio") {
		p.StartDate = nonZeroDate(r.StartDate)
	}
	if r.Has("data_fim") {
		p.EndDate = nonZeroDate(r.EndDate)
	}
	if r.Has("fonte_recursos") {
		p.FundingSource = cleanText(r.FundingSource)
	}
	if r.Has("observacoes") {
		p.Notes = cleanText(r.Notes)
	}

	return validateProcessValues(nil, nil, p.StartDate, p.EndDate)
}

func validateProcessValues(estimated, total *decimal.Decimal, start, end *types.Date) error {
	if estimated != nil && estimated.IsNegative() {
		return invalidFieldError("valor_estimado", "Estimated value cannot be negative")
	}
	if total != nil && total.IsNegative() {
		return invalidFieldError("valor_total", "Total value cannot be negative")
	}
	if start != nil && end != nil && !start.IsZero() && !end.IsZero() && end.Before(start.Time) {
		return ierr.NewError("contract ends before it starts").
			WithHint("End date must be on or after the start date").
			WithReportableDetails(map[string]any{
				"data_inicio": start.String(),
				"data_fim":    end.String(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func nonZeroDate(d *types.Date) *types.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

type ProcessResponse struct {
	*process.Process
}

func NewProcessResponse(p *process.Process) *ProcessResponse {
	return &ProcessResponse{Process: p}
}

type ListProcessesResponse = types.ListResponse[*ProcessResponse]

type DashboardResponse struct {
	*process.Stats
	WindowDays int `json:"expiring_window_days"`
}
