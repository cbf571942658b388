package router

import (
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/handlers"
	"github.com/sojwal000/Learning-Disability-Detector-Classifier-System/internal/screening"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again later.")
}

func Setup(log *zap.Logger, service *screening.Service) *gin.Engine {
	// Set up a new Gin router, add recovery middleware and request logging.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
	})
	router.Use(func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			c.Abort()
			return
		}
	})

	// Handlers and routes
	screeningsHandler := handlers.NewScreeningsHandler(log, service)
	analyticsHandler := handlers.NewAnalyticsHandler(log)
	studentsHandler := handlers.NewStudentsHandler(log)

	// Submissions come from classroom devices; a burst cap per client
	// keeps a stuck retry loop from flooding the pipeline.
	rateLimitStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: 30,
	})
	limiter := ratelimit.RateLimiter(rateLimitStore, &ratelimit.Options{
		ErrorHandler: errorHandler,
		KeyFunc:      keyFunc,
	})

	api := router.Group("/api")
	{
		api.POST("/screenings", limiter, screeningsHandler.Submit)

		api.POST("/students", studentsHandler.Create)
		api.GET("/students", studentsHandler.List)
		api.GET("/students/:id", studentsHandler.Get)
		api.GET("/students/:id/summary", analyticsHandler.StudentSummary)
		api.GET("/students/:id/progress-chart", analyticsHandler.ProgressChart)

		api.GET("/overview", analyticsHandler.Overview)
	}

	return router
}
