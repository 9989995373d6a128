package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "dropdeck/internal/handler/dto/response"
	"dropdeck/internal/handler/httperr"
	"dropdeck/internal/handler/middleware"
	"dropdeck/internal/infra/catalog"
	"dropdeck/internal/usecase/queries"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary List collections
// @Description List the shop's collections, custom and smart merged, sorted by title
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CollectionResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /collections [get]
func (h *CatalogHandler) Collections(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	cols, err := h.catalogQueries.Collections(c.Request.Context(), sess)
	if err != nil {
		h.writeGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCollections(cols))
}

// @Summary List collection products
// @Description List the active products of one collection in catalog order
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param limit query int false "Maximum products"
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /collections/{id}/products [get]
func (h *CatalogHandler) CollectionProducts(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
		return
	}

	var q struct {
		Limit int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters")
		return
	}

	prods, err := h.catalogQueries.CollectionProducts(c.Request.Context(), sess, c.Param("id"), q.Limit)
	if err != nil {
		h.writeGatewayError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromProducts(prods))
}

func (h *CatalogHandler) writeGatewayError(c *gin.Context, err error) {
	switch {
	case catalog.IsKind(err, catalog.KindUnauthorized):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Catalog rejected credentials")
	case catalog.IsKind(err, catalog.KindUpstream), catalog.IsKind(err, catalog.KindUnreachable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Catalog unavailable")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
	}
}
