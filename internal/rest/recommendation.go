package rest

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"productReco/business/recommend"
	"productReco/domain"
	"productReco/pkg/logger"
	jsonres "productReco/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate   *validator.Validate
		service    RecommendationService
		timeout    time.Duration
		defaultTop int
	}

	RecommendationService interface {
		ListCatalog(ctx context.Context) ([]domain.Product, error)
		ListUserIDs(ctx context.Context) ([]domain.UserRef, error)
		Recommend(ctx context.Context, productID string, opts recommend.Options) ([]domain.AnnotatedProduct, error)
	}

	// RecommendQuery keeps top and excludeOwned as raw strings; both have
	// lenient parsing rules.
	RecommendQuery struct {
		ProductID    string `query:"productId" validate:"required"`
		UserID       string `query:"userId"`
		Top          string `query:"top"`
		ExcludeOwned string `query:"excludeOwned"`
	}
)

func NewRecommendationHandler(svc RecommendationService, timeout time.Duration, defaultTop int) *RecommendationHandler {
	return &RecommendationHandler{
		validate:   validator.New(),
		service:    svc,
		timeout:    timeout,
		defaultTop: defaultTop,
	}
}

// GET /api/v1/app/recommendations/products
func (h *RecommendationHandler) ListProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.service.ListCatalog(ctx)
	if err != nil {
		logger.Error("Failed to list products", "trace_id", recommend.TraceIDFromContext(ctx), "error", err)
		return err
	}

	return c.JSON(http.StatusOK, jsonres.Success(http.StatusOK, "Products list fetched successfully", map[string]any{
		"products": products,
	}))
}

// GET /api/v1/app/recommendations/users
func (h *RecommendationHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.service.ListUserIDs(ctx)
	if err != nil {
		logger.Error("Failed to list users", "trace_id", recommend.TraceIDFromContext(ctx), "error", err)
		return err
	}

	return c.JSON(http.StatusOK, jsonres.Success(http.StatusOK, "Users list fetched successfully", map[string]any{
		"users": users,
	}))
}

// GET /api/v1/app/recommendations/get-recommendation?productId=P1&userId=U1&top=5&excludeOwned=true
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(http.StatusBadRequest, err.Error(), nil))
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error(http.StatusBadRequest, "productId is required", map[string]any{
			"productId": q.ProductID,
		}))
	}

	opts := recommend.Options{
		TopN:         parseTop(q.Top, h.defaultTop),
		UserID:       q.UserID,
		ExcludeOwned: q.ExcludeOwned != "false",
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.Recommend(ctx, q.ProductID, opts)
	if err != nil {
		logger.Warn("Failed to compute recommendations",
			"trace_id", recommend.TraceIDFromContext(ctx),
			"product_id", q.ProductID,
			"error", err,
		)
		return err
	}

	return c.JSON(http.StatusOK, jsonres.Success(http.StatusOK, "Recommendations generated successfully", domain.RecommendationResult{
		ProductID:       q.ProductID,
		Recommendations: recs,
	}))
}

// maxTop bounds top so huge or infinite values still mean "everything"
// instead of overflowing int.
const maxTop = math.MaxInt32

// parseTop reads top as a number, truncated toward zero. Missing, zero or
// unparsable values fall back to def; negative values are passed through and
// yield an empty result. Values beyond maxTop, infinity included, are clamped.
func parseTop(raw string, def int) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	if v == 0 || math.IsNaN(v) {
		return def
	}
	return int(math.Max(-maxTop, math.Min(v, maxTop)))
}
