package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/application/listing/dto"
	"github.com/orris-inc/estatehub/internal/application/listing/usecases"
	"github.com/orris-inc/estatehub/internal/shared/id"
	"github.com/orris-inc/estatehub/internal/shared/logger"
	"github.com/orris-inc/estatehub/internal/shared/utils"
)

type ListingHandler struct {
	createUC     listingCreator
	getUC        listingGetter
	transitionUC listingTransitioner
	bonusesUC    bonusLister
	logger       logger.Interface
}

func NewListingHandler(
	createUC listingCreator,
	getUC listingGetter,
	transitionUC listingTransitioner,
	bonusesUC bonusLister,
	logger logger.Interface,
) *ListingHandler {
	return &ListingHandler{
		createUC:     createUC,
		getUC:        getUC,
		transitionUC: transitionUC,
		bonusesUC:    bonusesUC,
		logger:       logger,
	}
}

// CreateListing handles POST /listings
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateListingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateListingCommand{
		Title:       req.Title,
		Price:       req.Price,
		ListingType: req.ListingType,
		CreatorID:   userID,
		AgentID:     req.AgentID,
		PromoterID:  req.PromoterID,
		AgentPct:    *req.AgentPct,
		PromoterPct: req.PromoterPct,
		CompanyPct:  *req.CompanyPct,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Listing created successfully")
}

// GetListing handles GET /listings/:sid
func (h *ListingHandler) GetListing(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixListing, "listing")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// TransitionStatus handles PATCH /listings/:sid/status
func (h *ListingHandler) TransitionStatus(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "sid", id.PrefixListing, "listing")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	caller, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.TransitionStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.transitionUC.Execute(c.Request.Context(), usecases.TransitionStatusCommand{
		ListingSID: sid,
		Status:     req.Status,
		Caller:     caller,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Listing status updated"
	if !result.Changed {
		message = "Listing already in requested status"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}

// ListMyBonuses handles GET /referrals/bonuses for the caller as referrer.
func (h *ListingHandler) ListMyBonuses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := h.bonusesUC.Execute(c.Request.Context(), userID, utils.ParsePagination(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
