package dto

import (
	"context"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/inspection"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type CreateInspectionRequest struct {
	Type          string     `json:"tipo"`
	InspectorName *string    `json:"responsavel_fiscal,omitempty"`
	InspectedAt   types.Date `json:"data_vistoria"`
	Status        *string    `json:"status,omitempty"`
	Note          *string    `json:"observacao,omitempty"`
	FileURL       *string    `json:"arquivo_url,omitempty"`
	FileName      *string    `json:"arquivo_nome,omitempty"`
}

func (r *CreateInspectionRequest) Validate() error {
	missing := make([]string, 0)
	if blank(r.Type) {
		missing = append(missing, "tipo")
	}
	if r.InspectedAt.IsZero() {
		missing = append(missing, "data_vistoria")
	}
	if len(missing) > 0 {
		return missingFieldsError(missing)
	}
	return nil
}

func (r *CreateInspectionRequest) ToInspection(ctx context.Context, processID string) *inspection.Inspection {
	status := inspection.DefaultStatus
	if s := cleanText(r.Status); s != nil {
		status = *s
	}
	return &inspection.Inspection{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INSPECTION),
		ProcessID:     processID,
		Type:          strings.TrimSpace(r.Type),
		InspectorName: cleanText(r.InspectorName),
		InspectedAt:   r.InspectedAt,
		Status:        status,
		Note:          cleanText(r.Note),
		FileURL:       cleanText(r.FileURL),
		FileName:      cleanText(r.FileName),
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}
