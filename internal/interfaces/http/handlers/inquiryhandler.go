package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/application/inquiry/dto"
	"github.com/orris-inc/estatehub/internal/application/inquiry/usecases"
	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/id"
	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

type InquiryHandler struct {
	createUC     inquiryCreator
	respondUC    inquiryCommand
	archiveUC    inquiryCommand
	slaUC        inquirySLAReader
	complianceUC complianceReporter
	logger       logger.Interface
}

func NewInquiryHandler(
	createUC inquiryCreator,
	respondUC inquiryCommand,
	archiveUC inquiryCommand,
	slaUC inquirySLAReader,
	complianceUC complianceReporter,
	logger logger.Interface,
) *InquiryHandler {
	return &InquiryHandler{
		createUC:     createUC,
		respondUC:    respondUC,
		archiveUC:    archiveUC,
		slaUC:        slaUC,
		complianceUC: complianceUC,
		logger:       logger,
	}
}

// CreateInquiry handles POST /inquiries
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req dto.CreateInquiryRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateInquiryCommand{
		ListingSID: req.ListingSID,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Message:    req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inquiry created successfully")
}

// RecordResponse handles POST /inquiries/:sid/response. Repeating it keeps the
// first timestamp.
func (h *InquiryHandler) RecordResponse(c *gin.Context) {
	h.runCommand(c, h.respondUC, "First response recorded")
}

// ArchiveInquiry handles POST /inquiries/:sid/archive
func (h *InquiryHandler) ArchiveInquiry(c *gin.Context) {
	h.runCommand(c, h.archiveUC, "Inquiry archived")
}

func (h *InquiryHandler) runCommand(c *gin.Context, uc inquiryCommand, message string) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry, "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caller, ok := currentActor(c)
	if !ok {
		return
	}

	result, err := uc.Execute(c.Request.Context(), usecases.InquiryCommand{InquirySID: sid, Caller: caller})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// GetSLA handles GET /inquiries/:sid/sla
func (h *InquiryHandler) GetSLA(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixInquiry, "inquiry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.slaUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAgentCompliance handles GET /agents/sla-compliance. Without agent_id every
// agent with active inquiries is reported.
func (h *InquiryHandler) GetAgentCompliance(c *gin.Context) {
	var agentID uint
	if raw := c.Query("agent_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || n == 0 {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid agent_id"))
			return
		}
		agentID = uint(n)
	}

	result, err := h.complianceUC.Execute(c.Request.Context(), agentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
