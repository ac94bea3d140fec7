package api

import (
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List services
// @Description List all active services in the catalog
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} httperr.Response
// @Router /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogQueries.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, httperr.Envelope(resdto.FromServiceViews(services)))
}

// @Summary List professionals
// @Description List all professionals with the active services they offer
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} httperr.Response
// @Router /professionals [get]
func (h *CatalogHandler) ListProfessionals(c *gin.Context) {
	professionals, err := h.catalogQueries.ListProfessionals(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, httperr.Envelope(resdto.FromProfessionalViews(professionals)))
}
