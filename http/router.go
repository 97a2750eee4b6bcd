package http

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the JSON field name.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// NewRouter wires the calculator endpoints. limiter may be nil to disable
// rate limiting.
func NewRouter(h *InterestHandler, limiter *RateLimiter, logger *zap.Logger) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(requestLogger(logger), gin.Recovery())

	router.GET("/health", h.Health)

	api := router.Group("/interest")
	if limiter != nil {
		api.Use(RateLimitMiddleware(limiter))
	}
	api.POST("/date-range", h.CalculateDateRange)
	api.POST("/monthly", h.CalculateMonthly)
	api.POST("/one-time", h.CalculateOneTime)
	api.POST("/days", h.DeriveDays)
	api.GET("/history", h.ListHistory)
	api.DELETE("/history", h.ClearHistory)

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
		)
	}
}
