package handlers

import (
	"errors"
	"net/http"

	request "smart_laundry/internal/adapter/http/dto/request"
	response "smart_laundry/internal/adapter/http/dto/response"
	"smart_laundry/internal/usecase"
	"smart_laundry/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExpensePayload = pkg.NewDomainErrorSimple("INVALID_EXPENSE_INPUT", "Invalid expense payload", http.StatusBadRequest)

type ExpenseHandler struct {
	usecase usecase.IExpenseUseCase
}

func NewExpenseHandler(uc usecase.IExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{usecase: uc}
}

// CreateExpense godoc
// @Summary  Record expense
// @Tags     expenses
// @Accept   json
// @Produce  json
// @Param    expense  body      request.CreateExpenseRequest  true  "Expense"
// @Success  201      {object}  response.ExpenseResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var payload request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExpensePayload.HTTPStatus, errInvalidExpensePayload.ToHTTPError())
		return
	}

	expense, err := h.usecase.AddExpense(c.Request.Context(), payload.Category, payload.Amount, payload.Description)
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromExpense(expense))
}

// ListExpenses godoc
// @Summary  List expenses
// @Tags     expenses
// @Produce  json
// @Success  200  {array}  response.ExpenseResponse
// @Router   /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapExpenseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExpenses(expenses))
}

func mapExpenseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExpenseCategory), errors.Is(err, usecase.ErrInvalidExpenseAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
