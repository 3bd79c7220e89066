package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	uc "dkcash/internal/usecase/creditor"
)

var creditorFilterKeys = []string{
	"id", "name", "address1", "address2", "address3", "address4",
	"phone", "email", "newsletter",
}

type CreditorHandler struct{ uc *uc.Usecase }

func NewCreditorHandler(u *uc.Usecase) *CreditorHandler { return &CreditorHandler{uc: u} }

type createCreditorReq struct {
	Name       string   `json:"name" validate:"required"`
	Address    []string `json:"address" validate:"required,min=1,max=4"`
	Phone      string   `json:"phone"`
	Email      string   `json:"email"`
	Newsletter bool     `json:"newsletter"`
}

type updateCreditorReq struct {
	Name       *string  `json:"name"`
	Address    []string `json:"address" validate:"omitempty,min=1,max=4"`
	Phone      *string  `json:"phone"`
	Email      *string  `json:"email"`
	Newsletter *bool    `json:"newsletter"`
}

func (h *CreditorHandler) Create(c echo.Context) error {
	var req createCreditorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), uc.CreateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CreditorHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	dto, err := h.uc.Retrieve(c.Request().Context(), &id, nil)
	if err != nil {
		return writeError(c, err)
	}
	if dto == nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CreditorHandler) List(c echo.Context) error {
	dtos, err := h.uc.Find(c.Request().Context(), filtersFromQuery(c, creditorFilterKeys))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *CreditorHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	var req updateCreditorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, _, err := h.uc.Update(c.Request().Context(), id, uc.UpdateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CreditorHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	cascade := c.QueryParam("contracts") == "true"
	if err := h.uc.Delete(c.Request().Context(), id, cascade); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
