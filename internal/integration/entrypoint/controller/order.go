// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/bakehouse/backend/internal/application/usecase/order"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/entrypoint/dto"
)

// OrderController handles order endpoints.
type OrderController struct {
	createOrderUseCase       *order.CreateOrderUseCase
	listOrdersUseCase        *order.ListOrdersUseCase
	updateOrderUseCase       *order.UpdateOrderUseCase
	updateOrderStatusUseCase *order.UpdateOrderStatusUseCase
	deleteOrderUseCase       *order.DeleteOrderUseCase
}

// NewOrderController creates a new order controller instance.
func NewOrderController(
	createOrderUseCase *order.CreateOrderUseCase,
	listOrdersUseCase *order.ListOrdersUseCase,
	updateOrderUseCase *order.UpdateOrderUseCase,
	updateOrderStatusUseCase *order.UpdateOrderStatusUseCase,
	deleteOrderUseCase *order.DeleteOrderUseCase,
) *OrderController {
	return &OrderController{
		createOrderUseCase:       createOrderUseCase,
		listOrdersUseCase:        listOrdersUseCase,
		updateOrderUseCase:       updateOrderUseCase,
		updateOrderStatusUseCase: updateOrderStatusUseCase,
		deleteOrderUseCase:       deleteOrderUseCase,
	}
}

// Create handles POST /orders requests.
func (c *OrderController) Create(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := order.CreateOrderInput{
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		PickupTime:    req.PickupTime,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.OrderStatus(req.Status),
		Discount:      decimal.NewFromFloat(req.Discount),
		DeliveryFee:   decimal.NewFromFloat(req.DeliveryFee),
		TotalAmount:   decimal.NewFromFloat(req.TotalAmount),
		Notes:         req.Notes,
		Items:         dto.ToOrderItems(req.Items),
	}

	output, err := c.createOrderUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToOrderResponse(output.Order))
}

// List handles GET /orders requests.
func (c *OrderController) List(ctx *gin.Context) {
	var input order.ListOrdersInput
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.OrderStatus(statusStr)
		if !status.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "status must be pending, processing, completed or cancelled",
				Code:  string(domainerror.ErrCodeInvalidOrderStatus),
			})
			return
		}
		input.Status = &status
	}

	output, err := c.listOrdersUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrdersResponse(output.Orders))
}

// Update handles PUT /orders/:id requests.
func (c *OrderController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := order.UpdateOrderInput{
		ID:            id,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		PickupTime:    req.PickupTime,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		status := entity.OrderStatus(*req.Status)
		input.Status = &status
	}
	if req.Discount != nil {
		discount := decimal.NewFromFloat(*req.Discount)
		input.Discount = &discount
	}
	if req.DeliveryFee != nil {
		fee := decimal.NewFromFloat(*req.DeliveryFee)
		input.DeliveryFee = &fee
	}
	if req.TotalAmount != nil {
		total := decimal.NewFromFloat(*req.TotalAmount)
		input.TotalAmount = &total
	}
	if req.Items != nil {
		input.Items = dto.ToOrderItems(req.Items)
	}

	output, err := c.updateOrderUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOrderResponse(output.Order))
}

// UpdateStatus handles PATCH /orders/:id/status requests.
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := order.UpdateOrderStatusInput{
		ID:     id,
		Status: entity.OrderStatus(req.Status),
	}

	if err := c.updateOrderStatusUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Order status updated"})
}

// Delete handles DELETE /orders/:id requests.
func (c *OrderController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx)
	if err != nil {
		return
	}

	if err := c.deleteOrderUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleOrderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Order deleted"})
}

// handleOrderError maps order errors to HTTP responses.
func (c *OrderController) handleOrderError(ctx *gin.Context, err error) {
	var orderErr *domainerror.OrderError
	if errors.As(err, &orderErr) {
		ctx.JSON(c.statusCodeForOrderError(orderErr.Code), dto.ErrorResponse{
			Error: orderErr.Message,
			Code:  string(orderErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForOrderError maps order error codes to HTTP status codes.
func (c *OrderController) statusCodeForOrderError(code domainerror.OrderErrorCode) int {
	switch code {
	case domainerror.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidOrderStatus,
		domainerror.ErrCodeOrderHasNoItems,
		domainerror.ErrCodeNegativeOrderAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeAllocationConflict:
		return http.StatusConflict
	case domainerror.ErrCodeAllocationExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// parseIDParam reads the numeric :id path parameter, replying 400 on failure.
func parseIDParam(ctx *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id parameter",
		})
		return 0, err
	}
	return id, nil
}
