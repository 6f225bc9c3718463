package handlers

import (
	"errors"
	"net/http"
	request "policy_pricing/internal/adapter/http/dto/request"
	response "policy_pricing/internal/adapter/http/dto/response"
	"policy_pricing/internal/infrastructure/logging"
	"policy_pricing/internal/usecase"
	"policy_pricing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPolicyPayload = pkg.NewDomainErrorSimple("INVALID_POLICY_INPUT", "Invalid policy payload", http.StatusBadRequest)
)

// PolicyHandler handles HTTP requests for policy quotes and stored policies.

type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc}
}

// QuotePolicy godoc
// @Summary      Quote a policy
// @Description  Computes BMI and price for the given holder without storing anything.
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        policy  body      request.PolicyRequest  true  "Policy holder"
// @Success      200     {object}  response.QuoteResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /policies/quote [post]
func (h *PolicyHandler) QuotePolicy(c *gin.Context) {
	var payload request.PolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	b := h.usecase.QuotePolicy(c.Request.Context(), payload.ToPolicy())
	c.JSON(http.StatusOK, response.FromPriceBreakdown(b))
}

// CreatePolicy godoc
// @Summary      Create a policy
// @Description  Stores a policy with its derived BMI and price. A blank policy number is generated.
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        policy  body      request.PolicyRequest  true  "Policy"
// @Success      201     {object}  response.PolicyResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      409     {object}  pkg.HTTPError
// @Router       /policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var payload request.PolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreatePolicy(c.Request.Context(), payload.ToPolicy())
	if err != nil {
		abortWithPolicyError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromPolicyRecord(created))
}

// GetPolicy godoc
// @Summary      Get a policy
// @Tags         policies
// @Produce      json
// @Param        policy_number  path      string  true  "Policy number"
// @Success      200            {object}  response.PolicyResponse
// @Failure      404            {object}  pkg.HTTPError
// @Router       /policies/{policy_number} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	rec, err := h.usecase.GetByPolicyNumber(c.Request.Context(), c.Param("policy_number"))
	if err != nil {
		abortWithPolicyError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyRecord(rec))
}

// UpdatePolicy godoc
// @Summary      Update a policy
// @Description  Replaces every holder field and recomputes the price. The path number wins over the body.
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        policy_number  path      string                 true  "Policy number"
// @Param        policy         body      request.PolicyRequest  true  "Policy"
// @Success      200            {object}  response.PolicyResponse
// @Failure      400            {object}  pkg.HTTPError
// @Failure      404            {object}  pkg.HTTPError
// @Router       /policies/{policy_number} [put]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	var payload request.PolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPolicyPayload.HTTPStatus, errInvalidPolicyPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdatePolicy(c.Request.Context(), c.Param("policy_number"), payload.ToPolicy())
	if err != nil {
		abortWithPolicyError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyRecord(updated))
}

// DeletePolicy godoc
// @Summary      Delete a policy
// @Tags         policies
// @Param        policy_number  path  string  true  "Policy number"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /policies/{policy_number} [delete]
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	if err := h.usecase.DeletePolicy(c.Request.Context(), c.Param("policy_number")); err != nil {
		abortWithPolicyError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListByProvider godoc
// @Summary      List a provider's policies
// @Tags         policies
// @Produce      json
// @Param        provider_name  path      string  true  "Provider name"
// @Success      200            {array}   response.PolicyResponse
// @Failure      400            {object}  pkg.HTTPError
// @Router       /providers/{provider_name}/policies [get]
func (h *PolicyHandler) ListByProvider(c *gin.Context) {
	recs, err := h.usecase.ListByProvider(c.Request.Context(), c.Param("provider_name"))
	if err != nil {
		abortWithPolicyError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromPolicyRecords(recs))
}

func abortWithPolicyError(c *gin.Context, err error) {
	appErr := mapPolicyError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.Logger.Error("policy request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPolicyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPolicyNumber), errors.Is(err, usecase.ErrInvalidProviderName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPolicyAlreadyExists):
		return pkg.NewDomainErrorSimple("POLICY_ALREADY_EXISTS", "Policy already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrPolicyNotFound):
		return pkg.NewDomainErrorSimple("POLICY_NOT_FOUND", "Policy not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
