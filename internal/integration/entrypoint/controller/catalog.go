// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/usecase/catalog"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/entrypoint/dto"
)

// CatalogController handles bread catalog endpoints.
type CatalogController struct {
	listCategoriesUseCase *catalog.ListCategoriesUseCase
	createCategoryUseCase *catalog.CreateCategoryUseCase
	createBreadUseCase    *catalog.CreateBreadUseCase
	listBreadsUseCase     *catalog.ListBreadsUseCase
	updateBreadUseCase    *catalog.UpdateBreadUseCase
	deleteBreadUseCase    *catalog.DeleteBreadUseCase
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(
	listCategoriesUseCase *catalog.ListCategoriesUseCase,
	createCategoryUseCase *catalog.CreateCategoryUseCase,
	createBreadUseCase *catalog.CreateBreadUseCase,
	listBreadsUseCase *catalog.ListBreadsUseCase,
	updateBreadUseCase *catalog.UpdateBreadUseCase,
	deleteBreadUseCase *catalog.DeleteBreadUseCase,
) *CatalogController {
	return &CatalogController{
		listCategoriesUseCase: listCategoriesUseCase,
		createCategoryUseCase: createCategoryUseCase,
		createBreadUseCase:    createBreadUseCase,
		listBreadsUseCase:     listBreadsUseCase,
		updateBreadUseCase:    updateBreadUseCase,
		deleteBreadUseCase:    deleteBreadUseCase,
	}
}

// ListCategories handles GET /categories requests.
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	categories, err := c.listCategoriesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoriesResponse(categories))
}

// CreateCategory handles POST /categories requests.
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	category, err := c.createCategoryUseCase.Execute(ctx.Request.Context(), catalog.CreateCategoryInput{
		ID:   req.ID,
		Name: req.Name,
	})
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// ListBreads handles GET /breads requests.
func (c *CatalogController) ListBreads(ctx *gin.Context) {
	breads, err := c.listBreadsUseCase.Execute(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreadsResponse(breads))
}

// CreateBread handles POST /breads requests.
func (c *CatalogController) CreateBread(ctx *gin.Context) {
	var req dto.CreateBreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	bread, err := c.createBreadUseCase.Execute(ctx.Request.Context(), catalog.CreateBreadInput{
		Name:        req.Name,
		Price:       decimal.NewFromFloat(req.Price),
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Stock:       req.Stock,
	})
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBreadResponse(bread))
}

// UpdateBread handles PUT /breads/:id requests.
func (c *CatalogController) UpdateBread(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateBreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := catalog.UpdateBreadInput{
		ID:          id,
		Name:        req.Name,
		Image:       req.Image,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Ingredients: req.Ingredients,
		Stock:       req.Stock,
		InStock:     req.InStock,
	}
	if req.Price != nil {
		price := decimal.NewFromFloat(*req.Price)
		input.Price = &price
	}

	bread, err := c.updateBreadUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreadResponse(bread))
}

// UpdateBreadStock handles PUT /breads/:id/stock requests. The in-stock flag
// follows the new count.
func (c *CatalogController) UpdateBreadStock(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateBreadStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	bread, err := c.updateBreadUseCase.Execute(ctx.Request.Context(), catalog.UpdateBreadInput{
		ID:    id,
		Stock: req.Stock,
	})
	if err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreadResponse(bread))
}

// DeleteBread handles DELETE /breads/:id requests.
func (c *CatalogController) DeleteBread(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.deleteBreadUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleCatalogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Bread deleted"})
}

// handleCatalogError maps catalog errors to HTTP responses.
func (c *CatalogController) handleCatalogError(ctx *gin.Context, err error) {
	var catalogErr *domainerror.CatalogError
	if errors.As(err, &catalogErr) {
		ctx.JSON(c.statusCodeForCatalogError(catalogErr.Code), dto.ErrorResponse{
			Error: catalogErr.Message,
			Code:  string(catalogErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForCatalogError maps catalog error codes to HTTP status codes.
func (c *CatalogController) statusCodeForCatalogError(code domainerror.CatalogErrorCode) int {
	switch code {
	case domainerror.ErrCodeBreadNotFound, domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryExists:
		return http.StatusConflict
	case domainerror.ErrCodeNegativePrice, domainerror.ErrCodeNegativeStock:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
