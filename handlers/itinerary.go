package handlers

import (
	"net/http"
	"time"

	itineraryRepo "tripplanner/database/repository/itinerary"
	"tripplanner/middleware"
	"tripplanner/models"
	"tripplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateItineraryRequest is the body of POST /api/itinerary.
type GenerateItineraryRequest struct {
	Budget      float64 `json:"budget" binding:"required,gte=1000"`
	Days        int     `json:"days" binding:"required,min=1,max=30"`
	Destination string  `json:"destination" binding:"required,min=2"`
	StartDate   string  `json:"startDate" binding:"required,datetime=2006-01-02"`
	Language    string  `json:"language"`
}

// ItineraryHandler serves itinerary generation and retrieval. Repo and
// Exports may be nil; persistence backed endpoints then answer 503.
type ItineraryHandler struct {
	Planner TripPlanner
	Repo    itineraryRepo.ItineraryRepository
	Exports ExportEnqueuer
	Logger  *zap.Logger
}

func NewItineraryHandler(p TripPlanner, repo itineraryRepo.ItineraryRepository, exports ExportEnqueuer, logger *zap.Logger) *ItineraryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryHandler{Planner: p, Repo: repo, Exports: exports, Logger: logger}
}

// Generate builds a new itinerary and stores it when persistence is enabled.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var body GenerateItineraryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	start, err := time.Parse(time.DateOnly, body.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start date", err.Error())
		return
	}

	req := models.ItineraryRequest{
		Budget:      body.Budget,
		Days:        body.Days,
		Destination: body.Destination,
		StartDate:   start,
		Language:    body.Language,
		UserID:      middleware.UserID(c),
	}
	it, err := h.Planner.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to generate itinerary", err.Error())
		return
	}

	if h.Repo != nil {
		if _, err := h.Repo.Save(c.Request.Context(), it); err != nil {
			// The plan is still returned; only persistence failed.
			h.Logger.Error("Failed to save itinerary", zap.String("id", it.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "itinerary": it})
}

// List returns the caller's itineraries, newest first.
func (h *ItineraryHandler) List(c *gin.Context) {
	if h.Repo == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "itinerary storage is disabled", "")
		return
	}
	items, err := h.Repo.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to list itineraries", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "itineraries": items})
}

// Get returns one itinerary. Itineraries owned by another user are reported as missing.
func (h *ItineraryHandler) Get(c *gin.Context) {
	it, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "itinerary": it})
}

// Export queues a JSON export of an itinerary.
func (h *ItineraryHandler) Export(c *gin.Context) {
	if h.Exports == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "itinerary export is disabled", "")
		return
	}
	it, ok := h.load(c)
	if !ok {
		return
	}
	taskID, err := h.Exports.EnqueueExport(c.Request.Context(), it.ID, middleware.UserID(c))
	if err != nil {
		h.Logger.Error("Failed to enqueue export", zap.String("id", it.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to queue export", err.Error())
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "taskId": taskID})
}

func (h *ItineraryHandler) load(c *gin.Context) (models.Itinerary, bool) {
	if h.Repo == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "itinerary storage is disabled", "")
		return models.Itinerary{}, false
	}
	id := c.Param("id")
	it, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "itinerary not found", err.Error())
		return models.Itinerary{}, false
	}
	if it.UserID != "" && it.UserID != middleware.UserID(c) {
		utils.JSONError(c, http.StatusNotFound, "itinerary not found", id)
		return models.Itinerary{}, false
	}
	return it, true
}
