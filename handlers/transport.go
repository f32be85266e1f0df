package handlers

import (
	"net/http"

	"tripplanner/models"
	"tripplanner/utils"

	"github.com/gin-gonic/gin"
)

type TransportHandler struct {
	Service TransportLookup
}

func NewTransportHandler(s TransportLookup) *TransportHandler {
	return &TransportHandler{Service: s}
}

// Options handles GET /api/transport.
func (h *TransportHandler) Options(c *gin.Context) {
	var in struct {
		Origin      string `form:"origin" binding:"required"`
		Destination string `form:"destination" binding:"required"`
		Mode        string `form:"mode" binding:"omitempty,oneof=cab auto metro train bus all"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	opts, err := h.Service.Options(c.Request.Context(), in.Origin, in.Destination, in.Mode)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to fetch transport options", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"route":            opts.Route,
		"transportOptions": opts.Offers,
		"recommendations":  opts.Recommendations,
	})
}

// Pricing handles GET /api/transport/pricing.
func (h *TransportHandler) Pricing(c *gin.Context) {
	var in struct {
		Origin      string `form:"origin" binding:"required"`
		Destination string `form:"destination" binding:"required"`
		Type        string `form:"type" binding:"required,oneof=cab auto"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	pricing, err := h.Service.Pricing(c.Request.Context(), in.Origin, in.Destination, in.Type)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to estimate fares", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"route":         pricing.Route,
		"pricing":       pricing.Estimates,
		"estimatedTime": pricing.EstimatedTime,
	})
}

// Availability handles GET /api/transport/availability.
func (h *TransportHandler) Availability(c *gin.Context) {
	var in struct {
		Lat  *float64 `form:"lat" binding:"required"`
		Lng  *float64 `form:"lng" binding:"required"`
		Type string   `form:"type" binding:"omitempty,oneof=cab auto metro bus train all"`
	}
	if err := c.ShouldBindQuery(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	avail, err := h.Service.Availability(models.Location{Latitude: *in.Lat, Longitude: *in.Lng}, in.Type)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to check availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"location":  avail.Location,
		"transport": avail.Transport,
		"timestamp": avail.CheckedAt,
	})
}
