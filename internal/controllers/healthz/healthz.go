package healthz

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/notekeeper/backend/internal/httputil"
	"github.com/notekeeper/backend/internal/models"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

type Response struct {
	Env Env `json:"env"` // Presence of required configuration
	DB  DB  `json:"db"`  // Result of the store round trip
}

type Env struct {
	Database    bool   `json:"database" example:"true"`     // Is the database configured?
	Auth        bool   `json:"auth" example:"true"`         // Is the session guard configured?
	PresetsFile bool   `json:"presetsFile" example:"false"` // Is a preset catalog file configured?
	GinMode     string `json:"ginMode" example:"release"`   // The gin mode the server runs in
}

type DB struct {
	Ok    bool   `json:"ok" example:"true"`          // Did the store round trip succeed?
	Error string `json:"error,omitempty" example:""` // Truncated diagnostic message on failure
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Reports configuration presence and a trivial store round trip. Always answers 200, a failing store is reported in the body.
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	_, hasHost := os.LookupEnv("DB_HOST")
	_, hasSecret := os.LookupEnv("AUTH_SECRET")
	_, hasJWKS := os.LookupEnv("AUTH_JWKS_URL")
	_, hasPresetsFile := os.LookupEnv("PRESETS_FILE")

	response := Response{
		Env: Env{
			// sqlite needs no configuration, so the database counts as
			// configured unless a postgres host is set without credentials
			Database:    !hasHost || os.Getenv("DB_USER") != "",
			Auth:        hasSecret || hasJWKS,
			PresetsFile: hasPresetsFile,
			GinMode:     gin.Mode(),
		},
		DB: DB{Ok: true},
	}

	if err := models.Ping(); err != nil {
		response.DB.Ok = false

		// Truncate the diagnostic, it is for humans reading the health
		// report, not for machine consumption
		message := err.Error()
		if len(message) > 300 {
			message = message[:300]
		}
		response.DB.Error = message
	}

	c.JSON(http.StatusOK, response)
}
