package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"interest-calculator/domain"
	"interest-calculator/format"
	"interest-calculator/service"
)

type InterestHandler struct {
	service   *service.InterestService
	formatter *format.Formatter
	logger    *zap.Logger
}

func NewInterestHandler(
	service *service.InterestService,
	formatter *format.Formatter,
	logger *zap.Logger,
) *InterestHandler {
	if formatter == nil {
		formatter = format.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InterestHandler{service: service, formatter: formatter, logger: logger}
}

func (h *InterestHandler) CalculateDateRange(c *gin.Context) {
	var req dateRangeRequest
	if !h.bind(c, &req) {
		return
	}

	input, err := service.ParseDateRange(service.DateRangeFields{
		Principal: req.Principal,
		Rate:      req.Rate,
		RateUnit:  req.RateUnit,
		Basis:     req.Basis,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	result, days, err := h.service.CalculateDateRange(c.Request.Context(), input)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResultResponse(h.formatter, domain.ModeDateRange, result, days))
}

func (h *InterestHandler) CalculateMonthly(c *gin.Context) {
	var req monthlyRequest
	if !h.bind(c, &req) {
		return
	}

	principal, err := service.ParseAmount("principal", req.Principal)
	if err != nil {
		h.fail(c, err)
		return
	}
	rate, err := service.ParseAmount("rate", req.Rate)
	if err != nil {
		h.fail(c, err)
		return
	}
	months, err := service.ParseAmount("months", req.Months)
	if err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.service.CalculateMonthly(c.Request.Context(), principal, rate, months)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResultResponse(h.formatter, domain.ModeMonthly, result, 0))
}

func (h *InterestHandler) CalculateOneTime(c *gin.Context) {
	var req oneTimeRequest
	if !h.bind(c, &req) {
		return
	}

	principal, err := service.ParseAmount("principal", req.Principal)
	if err != nil {
		h.fail(c, err)
		return
	}
	rate, err := service.ParseAmount("rate", req.Rate)
	if err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.service.CalculateOneTime(c.Request.Context(), principal, rate)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newResultResponse(h.formatter, domain.ModeOneTime, result, 0))
}

func (h *InterestHandler) DeriveDays(c *gin.Context) {
	var req daysRequest
	if !h.bind(c, &req) {
		return
	}

	from, err := service.ParseDate("from_date", req.FromDate)
	if err != nil {
		h.fail(c, err)
		return
	}
	to, err := service.ParseDate("to_date", req.ToDate)
	if err != nil {
		h.fail(c, err)
		return
	}

	days, _ := service.DeriveDayCount(from, to)
	c.JSON(http.StatusOK, daysResponse{Days: days})
}

func (h *InterestHandler) ListHistory(c *gin.Context) {
	entries, err := h.service.ListHistory(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newHistoryResponse(h.formatter, entries))
}

func (h *InterestHandler) ClearHistory(c *gin.Context) {
	if err := h.service.ClearHistory(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InterestHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bind decodes the JSON body into req and writes the error response when it
// cannot.
func (h *InterestHandler) bind(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		reason := "is required"
		if fe.Tag() != "required" {
			reason = "must be one of: " + fe.Param()
		}
		h.fail(c, &service.ValidationError{Field: fe.Field(), Reason: reason})
		return false
	}

	h.logger.Debug("invalid request body", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	return false
}

func (h *InterestHandler) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.logger.Debug("validation failed",
			zap.String("path", c.FullPath()),
			zap.String("field", verr.Field),
		)
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse{
			Error: verr.Error(),
			Field: verr.Field,
		})
		return
	}

	h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
