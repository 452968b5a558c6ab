package dto

import (
	"context"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/observation"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
)

type CreateObservationRequest struct {
	Content string `json:"conteudo" validate:"required,max=5000"`
}

func (r *CreateObservationRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)
	return validator.ValidateRequest(r)
}

func (r *CreateObservationRequest) ToObservation(ctx context.Context, processID, userName, userEmail string) *observation.Observation {
	return &observation.Observation{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_OBSERVATION),
		ProcessID: processID,
		Content:   r.Content,
		UserName:  cleanText(&userName),
		UserEmail: cleanText(&userEmail),
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}
