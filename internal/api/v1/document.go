package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
)

type DocumentHandler struct {
	service service.DocumentService
	log     *logger.Logger
}

func NewDocumentHandler(service service.DocumentService, log *logger.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, log: log}
}

// @Router /processes/{id}/documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	resp, err := h.service.ListDocuments(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Summary Register a document
// @Description Register a file already uploaded with the URL from /documents/upload-url, or an external file URL
// @Router /processes/{id}/documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.CreateDocument(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewResponse(resp))
}

// @Router /processes/{id}/documents/upload-url [post]
func (h *DocumentHandler) PresignUpload(c *gin.Context) {
	var req dto.DocumentUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.PresignUpload(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewResponse(resp))
}
