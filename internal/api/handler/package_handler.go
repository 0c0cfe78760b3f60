package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/autovest/investment-system/internal/core/ports"
)

// PackageHandler handles HTTP requests for the investment catalog.
type PackageHandler struct {
	service ports.PackageService
}

func NewPackageHandler(service ports.PackageService) *PackageHandler {
	return &PackageHandler{service: service}
}

// List handles GET /v1/packages, the public catalog.
//
// @Summary      List investment packages
// @Tags         packages
// @Produce      json
// @Success      200  {array}  domain.Package
// @Router       /v1/packages [get]
func (h *PackageHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.List(c.Request().Context()))
}

// Get handles GET /v1/packages/:id.
//
// @Summary      Get a package by id
// @Tags         packages
// @Produce      json
// @Param        id   path      int  true  "Package id"
// @Success      200  {object}  domain.Package
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/packages/{id} [get]
func (h *PackageHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}

	pkg, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pkg)
}

// Create handles POST /v1/packages (admin only).
//
// @Summary      Create a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPackageRequest  true  "Package details"
// @Success      201   {object}  domain.Package
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/packages [post]
func (h *PackageHandler) Create(c echo.Context) error {
	var req createPackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pkg := h.service.Create(c.Request().Context(), ports.CreatePackageInput{
		Name:          req.Name,
		Description:   req.Description,
		Tier:          req.Tier,
		WeeklyReturn:  req.WeeklyReturn,
		MinInvestment: req.MinInvestment,
		ImageURL:      req.ImageURL,
	})
	return c.JSON(http.StatusCreated, pkg)
}

// Update handles PUT /v1/packages/:id (admin only). The body is a partial
// merge; `{"is_active": false}` is the deactivation path.
//
// @Summary      Update a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Package id"
// @Param        body  body      updatePackageRequest  true  "Fields to change"
// @Success      200   {object}  domain.Package
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/packages/{id} [put]
func (h *PackageHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid package id")
	}

	var req updatePackageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	pkg, err := h.service.Update(c.Request().Context(), id, ports.PackagePatch{
		Name:          req.Name,
		Description:   req.Description,
		Tier:          req.Tier,
		WeeklyReturn:  req.WeeklyReturn,
		MinInvestment: req.MinInvestment,
		ImageURL:      req.ImageURL,
		IsActive:      req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pkg)
}
