package dto

import (
	"context"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/domain/document"
	"github.com/rafaelredel/sglc-prefeituras/internal/s3"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
	"github.com/rafaelredel/sglc-prefeituras/internal/validator"
)

// CreateDocumentRequest registers a document. Either the file was uploaded through a
// presigned URL and StorageKey is set, or FileURL points to where it already lives.
type CreateDocumentRequest struct {
	Type        *string `json:"tipo_documento,omitempty"`
	FileName    string  `json:"nome_arquivo" validate:"required,max=255"`
	ContentType *string `json:"tipo_arquivo,omitempty"`
	SizeBytes   *int64  `json:"tamanho_bytes,omitempty" validate:"omitempty,gte=0"`
	FileURL     *string `json:"url_arquivo,omitempty"`
	StorageKey  *string `json:"storage_key,omitempty"`
	Note        *string `json:"observacao,omitempty"`
}

func (r *CreateDocumentRequest) Validate() error {
	r.FileName = strings.TrimSpace(r.FileName)
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if cleanText(r.FileURL) == nil && cleanText(r.StorageKey) == nil {
		return missingFieldsError([]string{"url_arquivo"})
	}
	return nil
}

func (r *CreateDocumentRequest) ToDocument(ctx context.Context, processID, userName string) *document.Document {
	kind := document.DefaultType
	if t := cleanText(r.Type); t != nil {
		kind = *t
	}
	contentType := document.DefaultContentType
	if ct := cleanText(r.ContentType); ct != nil {
		contentType = *ct
	}
	return &document.Document{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT),
		ProcessID:   processID,
		Type:        kind,
		FileName:    r.FileName,
		ContentType: contentType,
		SizeBytes:   r.SizeBytes,
		FileURL:     cleanText(r.FileURL),
		StorageKey:  cleanText(r.StorageKey),
		Note:        cleanText(r.Note),
		UserName:    cleanText(&userName),
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type DocumentUploadRequest struct {
	FileName    string `json:"nome_arquivo" validate:"required,max=255"`
	ContentType string `json:"tipo_arquivo,omitempty"`
}

func (r *DocumentUploadRequest) Validate() error {
	r.FileName = strings.TrimSpace(r.FileName)
	return validator.ValidateRequest(r)
}

type DocumentResponse struct {
	*document.Document
	DownloadURL *s3.PresignedURL `json:"download,omitempty"`
}
