package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"travel-go/service-api/internal/utils"
)

const livenessMessage = "travel go server is running"

// Capabilities selects the optional route groups. The three historical
// variants of the API differ only in these.
type Capabilities struct {
	TokenIssue   bool
	ReviewEdit   bool
	ServiceMedia bool
}

// Dependencies of the router. Catalog and Reviews are nil when the store
// could not be reached at startup; only the liveness route is served then.
type Dependencies struct {
	Catalog      CatalogService
	Reviews      ReviewService
	Tokens       TokenService
	Media        MediaService
	JWT          *utils.JWTUtil
	Logger       zerolog.Logger
	Capabilities Capabilities
}

func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowHeaders("Authorization")

	router.Use(
		utils.RequestID(deps.Logger),
		utils.RequestLogger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			zerolog.Ctx(c.Request.Context()).Error().Interface("panic", recovered).Msg("recovered from panic")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		}),
		cors.New(corsConfig),
	)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, livenessMessage)
	})

	if deps.Catalog == nil || deps.Reviews == nil {
		deps.Logger.Warn().Msg("store unavailable, data routes not registered")
		return router
	}

	services := NewServiceHandler(deps.Catalog)
	router.GET("/allServices", services.ListServices)
	router.GET("/serviceDetails/:id", services.GetService)
	router.POST("/addService", services.AddService)

	reviews := NewReviewHandler(deps.Reviews)
	router.POST("/postReview", reviews.PostReview)
	router.GET("/serviceReview", reviews.GetReviewsByService)
	router.GET("/allReview",
		utils.AuthMiddleware(deps.JWT),
		utils.IdentityMiddleware("email"),
		reviews.GetAllReviews,
	)

	caps := deps.Capabilities
	if caps.ReviewEdit {
		router.PATCH("/allReview/:id", reviews.UpdateReview)
		router.DELETE("/allReview/:id", reviews.DeleteReview)
	}

	if caps.TokenIssue && deps.Tokens != nil {
		tokens := NewTokenHandler(deps.Tokens)
		router.POST("/jwt", tokens.IssueToken)
	}

	if caps.ServiceMedia && deps.Media != nil {
		media := NewMediaHandler(deps.Media)
		router.POST("/serviceMedia/:id", media.Upload)
		router.GET("/serviceMedia/:id", media.GetMediaByService)
	}

	return router
}
