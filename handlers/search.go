package handlers

import (
	"net/http"

	"tripplanner/models"
	"tripplanner/services/planner"
	"tripplanner/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultHotelRadiusKm = 10
	defaultFoodRadiusKm  = 5
)

type nearbyQuery struct {
	Lat     *float64 `form:"lat" binding:"required"`
	Lng     *float64 `form:"lng" binding:"required"`
	Budget  string   `form:"budget"`
	Rating  float64  `form:"rating" binding:"omitempty,gte=0,lte=5"`
	Radius  float64  `form:"radius"`
	Cuisine string   `form:"cuisine"`
}

// SearchHandler serves nearby hotel and restaurant recommendations.
type SearchHandler struct {
	Planner TripPlanner
}

func NewSearchHandler(p TripPlanner) *SearchHandler {
	return &SearchHandler{Planner: p}
}

// Hotels handles GET /api/hotels.
func (h *SearchHandler) Hotels(c *gin.Context) {
	q, ok := bindNearby(c, defaultHotelRadiusKm, 50)
	if !ok {
		return
	}
	res, err := h.Planner.SearchHotels(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to search hotels", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"hotels":           res.Candidates,
		"totalFound":       res.TotalFound,
		"providerFailures": res.ProviderFailures,
	})
}

// Food handles GET /api/food.
func (h *SearchHandler) Food(c *gin.Context) {
	q, ok := bindNearby(c, defaultFoodRadiusKm, 20)
	if !ok {
		return
	}
	res, err := h.Planner.SearchRestaurants(c.Request.Context(), q)
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to search restaurants", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"restaurants":      res.Candidates,
		"totalFound":       res.TotalFound,
		"recommendations":  res.Recommendations,
		"providerFailures": res.ProviderFailures,
	})
}

// Hotel handles GET /api/hotels/:id.
func (h *SearchHandler) Hotel(c *gin.Context) {
	hotel, err := h.Planner.HotelDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to fetch hotel", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "hotel": hotel})
}

// Restaurant handles GET /api/food/:id.
func (h *SearchHandler) Restaurant(c *gin.Context) {
	restaurant, err := h.Planner.RestaurantDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.StatusForError(err), "failed to fetch restaurant", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}

func bindNearby(c *gin.Context, defaultRadius, maxRadius float64) (planner.SearchQuery, bool) {
	var in nearbyQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return planner.SearchQuery{}, false
	}
	radius := in.Radius
	if radius == 0 {
		radius = defaultRadius
	}
	if radius < 1 || radius > maxRadius {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "radius out of range")
		return planner.SearchQuery{}, false
	}
	budget, err := planner.ParseBudgetCategory(in.Budget)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return planner.SearchQuery{}, false
	}

	return planner.SearchQuery{
		Origin:   models.Location{Latitude: *in.Lat, Longitude: *in.Lng},
		RadiusKm: radius,
		Filters:  planner.RankFilters{Budget: budget, MinRating: in.Rating},
		Cuisine:  in.Cuisine,
	}, true
}
