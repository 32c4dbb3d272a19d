package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notekeeper/backend/internal/httputil"
	"github.com/notekeeper/backend/internal/presets"
)

// RegisterPresetRoutes registers the routes for the preset catalog with
// the RouterGroup that is passed.
func RegisterPresetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPresets)
	r.GET("", GetPresets)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Presets
// @Success		204
// @Router			/v1/presets [options]
func OptionsPresets(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		List preset categories
// @Description	Returns the fixed preset catalog. It is identical for all users.
// @Tags			Presets
// @Produce		json
// @Success		200	{array}	presets.Category
// @Router			/v1/presets [get]
func GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, presets.Catalog())
}
