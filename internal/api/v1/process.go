package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelredel/sglc-prefeituras/internal/api/dto"
	ierr "github.com/rafaelredel/sglc-prefeituras/internal/errors"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/rafaelredel/sglc-prefeituras/internal/service"
	"github.com/rafaelredel/sglc-prefeituras/internal/types"
)

type ProcessHandler struct {
	service service.ProcessService
	log     *logger.Logger
}

func NewProcessHandler(service service.ProcessService, log *logger.Logger) *ProcessHandler {
	return &ProcessHandler{service: service, log: log}
}

// @Summary Create a process
// @Description Create a bid or a contract. The process number is allocated by the server.
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param process body dto.CreateProcessRequest true "Process"
// @Success 201 {object} dto.ProcessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 403 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /processes [post]
func (h *ProcessHandler) CreateProcess(c *gin.Context) {
	var req dto.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProcess(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewMessageResponse(resp, "Process created. Number: "+resp.Number))
}

// @Summary Get a process
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Success 200 {object} dto.ProcessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /processes/{id} [get]
func (h *ProcessHandler) GetProcess(c *gin.Context) {
	resp, err := h.service.GetProcess(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Summary List processes
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param filter query types.ProcessFilter false "Filter"
// @Success 200 {object} dto.ListProcessesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /processes [get]
func (h *ProcessHandler) ListProcesses(c *gin.Context) {
	filter := types.NewProcessFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListProcesses(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Summary Update a process
// @Description Fields sent as null are cleared. Every changed field is recorded in the history.
// @Tags Processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Param process body dto.UpdateProcessRequest true "Changes"
// @Success 200 {object} dto.ProcessResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /processes/{id} [put]
func (h *ProcessHandler) UpdateProcess(c *gin.Context) {
	var req dto.UpdateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProcess(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(resp))
}

// @Summary Cancel a process
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} ierr.ErrorResponse
// @Router /processes/{id} [delete]
func (h *ProcessHandler) DeleteProcess(c *gin.Context) {
	if err := h.service.DeleteProcess(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse(nil, "Process canceled"))
}

// @Summary Process history
// @Tags Processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Success 200 {array} history.Entry
// @Failure 404 {object} ierr.ErrorResponse
// @Router /processes/{id}/history [get]
func (h *ProcessHandler) ListHistory(c *gin.Context) {
	entries, err := h.service.ListHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(entries))
}

// @Summary Dashboard
// @Description Totals of the municipality and contracts expiring soon
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *ProcessHandler) GetDashboard(c *gin.Context) {
	resp, err := h.service.GetDashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponse(resp))
}
