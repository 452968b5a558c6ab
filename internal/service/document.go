package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/domain/document"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/s3"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type DocumentService interface {
	ListDocuments(ctx context.Context, processID string) ([]*dto.DocumentResponse, error)
	CreateDocument(ctx context.Context, processID string, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error)
	// PresignUpload returns a URL the client uploads the file to before registering it
	PresignUpload(ctx context.Context, processID string, req dto.DocumentUploadRequest) (*s3.PresignedURL, error)
}

type documentService struct {
	ServiceParams
	recorder HistoryRecorder
}

func NewDocumentService(params ServiceParams, recorder HistoryRecorder) DocumentService {
	return &documentService{ServiceParams: params, recorder: recorder}
}

func (s *documentService) ListDocuments(ctx context.Context, processID string) ([]*dto.DocumentResponse, error) {
	if _, err := loadProcess(ctx, s.ServiceParams, processID); err != nil {
		return nil, err
	}

	docs, err := s.DocumentRepo.ListByProcess(ctx, processID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, s.toResponse(ctx, d))
	}
	return items, nil
}

func (s *documentService) CreateDocument(ctx context.Context, processID string, req dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	ref := historyRef(ctx, s.ServiceParams, p)
	doc := req.ToDocument(ctx, p.ID, ref.Actor.Name)
	doc.TenantID = p.TenantID
	doc.Stamp(s.now())

	if doc.StorageKey != nil {
		if err := s.checkStoredObject(ctx, p.TenantID, p.ID, *doc.StorageKey); err != nil {
			return nil, err
		}
	}

	if err := s.DocumentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}

	s.recorder.RecordCreation(ctx, ref, types.HistorySectionDocuments,
		fmt.Sprintf("Attached document %s (%s)", doc.FileName, doc.Type))

	return s.toResponse(ctx, doc), nil
}

func (s *documentService) PresignUpload(ctx context.Context, processID string, req dto.DocumentUploadRequest) (*s3.PresignedURL, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.S3 == nil {
		return nil, storageDisabledError()
	}

	p, err := loadProcess(ctx, s.ServiceParams, processID)
	if err != nil {
		return nil, err
	}

	key := s3.ObjectKey(s.S3.KeyPrefix(), p.TenantID, p.ID,
		types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT), req.FileName)

	contentType := req.ContentType
	if contentType == "" {
		contentType = document.DefaultContentType
	}
	return s.S3.PresignUpload(ctx, key, contentType)
}

// checkStoredObject makes sure a storage key points inside the process and was uploaded
func (s *documentService) checkStoredObject(ctx context.Context, tenantID, processID, key string) error {
	if s.S3 == nil {
		return storageDisabledError()
	}

	if !strings.HasPrefix(key, s3.ProcessKeyPrefix(s.S3.KeyPrefix(), tenantID, processID)) {
		return ierr.NewError("storage key outside of the process").
			WithHint("The storage key does not belong to this process").
			WithReportableDetails(map[string]any{"storage_key": key}).
			Mark(ierr.ErrValidation)
	}

	exists, err := s.S3.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return ierr.NewError("stored document not found").
			WithHint("The file was not uploaded, request a new upload URL and try again").
			WithReportableDetails(map[string]any{"storage_key": key}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// toResponse adds a download URL for stored files. A presign failure only drops the URL.
func (s *documentService) toResponse(ctx context.Context, d *document.Document) *dto.DocumentResponse {
	resp := &dto.DocumentResponse{Document: d}
	if s.S3 == nil || d.StorageKey == nil {
		return resp
	}

	url, err := s.S3.PresignDownload(ctx, *d.StorageKey)
	if err != nil {
		s.Logger.Warnw("failed to presign document download", "document_id", d.ID, "error", err)
		return resp
	}
	resp.DownloadURL = url
	return resp
}

func storageDisabledError() error {
	return ierr.NewError("document storage is disabled").
		WithHint("Document storage is not configured, provide the file URL instead").
		Mark(ierr.ErrInvalidOperation)
}
