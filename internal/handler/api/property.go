package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewPropertyHandler(catalogQueries queries.CatalogQueries) *PropertyHandler {
	return &PropertyHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List properties
// @Description List catalog properties with optional filters
// @Tags properties
// @Produce json
// @Param type query string false "Property type" Enums(house, land, guesthouse, hotel)
// @Param listingType query string false "Listing type" Enums(sale, rent)
// @Param location query string false "Location" Enums(Buea, Limbe, Douala)
// @Param searchTerm query string false "Case-insensitive search over name, description and address"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Success 200 {array} queries.PropertyView
// @Failure 400 {object} map[string]string
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	views, err := h.catalogQueries.ListProperties(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary List featured properties
// @Description List properties flagged for the landing page
// @Tags properties
// @Produce json
// @Success 200 {array} queries.PropertyView
// @Router /properties/featured [get]
func (h *PropertyHandler) ListFeatured(c *gin.Context) {
	views, err := h.catalogQueries.ListFeatured(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get property
// @Description Get a single property by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} queries.PropertyView
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	view, err := h.catalogQueries.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// parseFilter builds the catalog filter from query parameters. The literal
// "all" is accepted as an alias for an absent value.
func parseFilter(c *gin.Context) (property.Filter, error) {
	var filter property.Filter

	if raw := c.Query("type"); raw != "" && raw != "all" {
		t := property.Type(raw)
		if !t.IsValid() {
			return filter, errors.New("invalid property type")
		}
		filter.Type = &t
	}

	if raw := c.Query("listingType"); raw != "" && raw != "all" {
		lt := property.ListingType(raw)
		if !lt.IsValid() {
			return filter, errors.New("invalid listing type")
		}
		filter.ListingType = &lt
	}

	if raw := c.Query("location"); raw != "" && raw != "all" {
		loc := property.Location(raw)
		if !loc.IsValid() {
			return filter, errors.New("invalid location")
		}
		filter.Location = &loc
	}

	filter.SearchTerm = c.Query("searchTerm")

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid minPrice")
		}
		filter.MinPrice = &v
	}

	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, errors.New("invalid maxPrice")
		}
		filter.MaxPrice = &v
	}

	return filter, nil
}
