package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cleaningco/middleware"
	"cleaningco/services/lead"
	"cleaningco/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler serves the lead form endpoints.
type LeadHandler struct {
	Service lead.LeadService
}

func NewLeadHandler(s lead.LeadService) *LeadHandler {
	return &LeadHandler{Service: s}
}

// CreateLeadHandler handles POST /api/leads.
func (h *LeadHandler) CreateLeadHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	body, err := c.GetRawData()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to read request body")
		return
	}
	l, err := lead.DecodeLead(body)
	if err != nil {
		writeLeadError(c, logger, err)
		return
	}

	id, err := h.Service.CreateLead(c.Request.Context(), l)
	if err != nil {
		writeLeadError(c, logger, err)
		return
	}
	logger.Info("Lead created", zap.String("id", id), zap.String("service_type", string(l.ServiceType)))
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": id})
}

// ListLeadsHandler handles GET /api/leads?limit=N.
func (h *LeadHandler) ListLeadsHandler(c *gin.Context) {
	logger := middleware.GetLogger(c)

	limit := int64(lead.DefaultListLimit)
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeLeadError(c, logger, &lead.ValidationError{Violations: []lead.Violation{{
				Loc:  []string{"query", "limit"},
				Msg:  "Input should be a valid integer, unable to parse string as an integer",
				Type: "int_parsing",
			}}})
			return
		}
		limit = n
	}

	items, err := h.Service.ListLeads(c.Request.Context(), limit)
	if err != nil {
		writeLeadError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// writeLeadError is the single place where lead errors become status codes.
func writeLeadError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *lead.ValidationError
	if errors.As(err, &verr) {
		logger.Debug("Lead rejected", zap.Int("violations", len(verr.Violations)))
		utils.JSONError(c, http.StatusUnprocessableEntity, verr.Violations)
		return
	}

	var serr *lead.StoreError
	if errors.As(err, &serr) {
		logger.Error("Lead store failure", zap.String("op", serr.Op), zap.Error(serr.Err))
	} else {
		logger.Error("Unexpected lead failure", zap.Error(err))
	}
	utils.JSONError(c, http.StatusInternalServerError, err.Error())
}
