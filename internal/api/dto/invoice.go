package dto

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/invoice"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	Number      string          `json:"numero_nota"`
	IssueDate   types.Date      `json:"data_emissao"`
	DueDate     *types.Date     `json:"data_vencimento,omitempty"`
	Amount      decimal.Decimal `json:"valor"`
	Supplier    *string         `json:"fornecedor,omitempty"`
	Description *string         `json:"descricao,omitempty"`
	Status      *string         `json:"status,omitempty"`
	FileName    *string         `json:"nome_arquivo,omitempty"`
	FileURL     *string         `json:"url_arquivo,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	missing := make([]string, 0)
	if blank(r.Number) {
		missing = append(missing, "numero_nota")
	}
	if r.IssueDate.IsZero() {
		missing = append(missing, "data_emissao")
	}
	if r.Amount.IsZero() {
		missing = append(missing, "valor")
	}
	if len(missing) > 0 {
		return missingFieldsError(missing)
	}
	if r.Amount.IsNegative() {
		return invalidFieldError("valor", "Invoice amount must be positive")
	}
	return nil
}

func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context, processID string) *invoice.Invoice {
	status := invoice.DefaultStatus
	if s := cleanText(r.Status); s != nil {
		status = *s
	}
	return &invoice.Invoice{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		ProcessID:   processID,
		Number:      strings.TrimSpace(r.Number),
		IssueDate:   r.IssueDate,
		DueDate:     nonZeroDate(r.DueDate),
		Amount:      r.Amount,
		Supplier:    cleanText(r.Supplier),
		Description: cleanText(r.Description),
		Status:      status,
		FileName:    cleanText(r.FileName),
		FileURL:     cleanText(r.FileURL),
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateInvoiceRequest struct {
	Number      *string          `json:"numero_nota,omitempty"`
	IssueDate   *types.Date      `json:"data_emissao,omitempty"`
	DueDate     *types.Date      `json:"data_vencimento,omitempty"`
	Amount      *decimal.Decimal `json:"valor,omitempty"`
	Supplier    *string          `json:"fornecedor,omitempty"`
	Description *string          `json:"descricao,omitempty"`
	Status      *string          `json:"status,omitempty"`
	FileName    *string          `json:"nome_arquivo,omitempty"`
	FileURL     *string          `json:"url_arquivo,omitempty"`

	present presentFields
}

func (r *UpdateInvoiceRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateInvoiceRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	present, err := decodePresent(data)
	if err != nil {
		return err
	}
	*r = UpdateInvoiceRequest(a)
	r.present = present
	return nil
}

func (r *UpdateInvoiceRequest) has(field string, set bool) bool {
	if r.present == nil {
		return set
	}
	return r.present.has(field)
}

func (r *UpdateInvoiceRequest) Validate() error {
	if r.has("numero_nota", r.Number != nil) && (r.Number == nil || blank(*r.Number)) {
		return invalidFieldError("numero_nota", "Invoice number cannot be empty")
	}
	if r.has("data_emissao", r.IssueDate != nil) && (r.IssueDate == nil || r.IssueDate.IsZero()) {
		return invalidFieldError("data_emissao", "Issue date is required")
	}
	if r.has("valor", r.Amount != nil) && (r.Amount == nil || !r.Amount.IsPositive()) {
		return invalidFieldError("valor", "Invoice amount must be positive")
	}
	if r.has("status", r.Status != nil) && (r.Status == nil || blank(*r.Status)) {
		return invalidFieldError("status", "Invoice status cannot be empty")
	}
	return nil
}

func (r *UpdateInvoiceRequest) Apply(inv *invoice.Invoice) {
	if r.has("numero_nota", r.Number != nil) {
		inv.Number = strings.TrimSpace(*r.Number)
	}
	if r.has("data_emissao", r.IssueDate != nil) {
		inv.IssueDate = *r.IssueDate
	}
	if r.has("data_vencimento", r.DueDate != nil) {
		inv.DueDate = nonZeroDate(r.DueDate)
	}
	if r.has("valor", r.Amount != nil) {
		inv.Amount = *r.Amount
	}
	if r.has("fornecedor", r.Supplier != nil) {
		inv.Supplier = cleanText(r.Supplier)
	}
	if r.has("descricao", r.Description != nil) {
		inv.Description = cleanText(r.Description)
	}
	if r.has("status", r.Status != nil) {
		inv.Status = strings.TrimSpace(*r.Status)
	}
	if r.has("nome_arquivo", r.FileName != nil) {
		inv.FileName = cleanText(r.FileName)
	}
	if r.has("url_arquivo", r.FileURL != nil) {
		inv.FileURL = cleanText(r.FileURL)
	}
}
