package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	uc "dkcash/internal/usecase/contract"
)

var contractFilterKeys = []string{
	"id", "creditor", "account", "interest_payment", "period_type",
	"version", "active",
}

type ContractHandler struct{ uc *uc.Usecase }

func NewContractHandler(u *uc.Usecase) *ContractHandler { return &ContractHandler{uc: u} }

type createContractReq struct {
	ContractID      string  `json:"contract_id" validate:"required,intstring"`
	CreditorID      int64   `json:"creditor_id" validate:"required"`
	Date            string  `json:"date" validate:"required,dateonly"`
	Amount          float64 `json:"amount" validate:"gte=0"`
	Interest        float64 `json:"interest" validate:"gte=0"`
	InterestPayment string  `json:"interest_payment" validate:"omitempty,oneof=payout cumulative reinvest"`
	PeriodType      string  `json:"period_type" validate:"omitempty,oneof=fixed_duration fixed_period_notice initial_plus_n"`
	PeriodNotice    *string `json:"period_notice"`
	PeriodEnd       *string `json:"period_end" validate:"omitempty,dateonly"`
	Version         string  `json:"version"`
}

type updateContractReq struct {
	CreditorID       *int64   `json:"creditor_id"`
	Date             *string  `json:"date" validate:"omitempty,dateonly"`
	Amount           *float64 `json:"amount" validate:"omitempty,gte=0"`
	Interest         *float64 `json:"interest" validate:"omitempty,gte=0"`
	InterestPayment  *string  `json:"interest_payment" validate:"omitempty,oneof=payout cumulative reinvest"`
	PeriodType       *string  `json:"period_type" validate:"omitempty,oneof=fixed_duration fixed_period_notice initial_plus_n"`
	PeriodNotice     *string  `json:"period_notice"`
	PeriodEnd        *string  `json:"period_end" validate:"omitempty,dateonly"`
	Version          *string  `json:"version"`
	CancellationDate *string  `json:"cancellation_date" validate:"omitempty,dateonly"`
	Active           *bool    `json:"active"`
}

func (h *ContractHandler) Create(c echo.Context) error {
	var req createContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, _ := time.Parse(time.DateOnly, req.Date)
	in := uc.CreateInput{
		ContractID:      req.ContractID,
		CreditorID:      req.CreditorID,
		Date:            date,
		Amount:          decimal.NewFromFloat(req.Amount),
		Interest:        req.Interest,
		InterestPayment: req.InterestPayment,
		PeriodType:      req.PeriodType,
		PeriodNotice:    req.PeriodNotice,
		Version:         req.Version,
	}
	if req.PeriodEnd != nil {
		end, _ := time.Parse(time.DateOnly, *req.PeriodEnd)
		in.PeriodEnd = &end
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ContractHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) List(c echo.Context) error {
	dtos, err := h.uc.Find(c.Request().Context(), filtersFromQuery(c, contractFilterKeys))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ContractHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req updateContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := uc.UpdateInput{
		CreditorID:      req.CreditorID,
		InterestPayment: req.InterestPayment,
		PeriodType:      req.PeriodType,
		PeriodNotice:    req.PeriodNotice,
		Version:         req.Version,
		Active:          req.Active,
	}
	if req.Date != nil {
		d, _ := time.Parse(time.DateOnly, *req.Date)
		in.Date = &d
	}
	if req.Amount != nil {
		a := decimal.NewFromFloat(*req.Amount)
		in.Amount = &a
	}
	if req.Interest != nil {
		in.Interest = req.Interest
	}
	if req.PeriodEnd != nil {
		d, _ := time.Parse(time.DateOnly, *req.PeriodEnd)
		in.PeriodEnd = &d
	}
	if req.CancellationDate != nil {
		d, _ := time.Parse(time.DateOnly, *req.CancellationDate)
		in.CancellationDate = &d
	}
	dto, _, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ContractHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	creditorID, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"creditor_id": creditorID})
}
