package main

import (
	"errors"
	"net/http"

	"github.com/tapmenu/tapmenu/internal/repo"
	"github.com/tapmenu/tapmenu/internal/service"
)

type CheckoutRequest struct {
	VendorID string             `json:"vendorId" validate:"required"`
	Items    []CheckoutLineItem `json:"items" validate:"required,min=1,dive"`
}

type CheckoutLineItem struct {
	ID       string `json:"id" validate:"required"`
	Quantity int    `json:"quantity"`
}

// checkoutHandler godoc
//
//	@Summary		Build order deep links
//	@Description	Turns a cart into a WhatsApp order link and a UPI payment link
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckoutRequest	true	"Cart contents"
//	@Success		200		{object}	service.CheckoutResult
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	lines := make([]service.CheckoutLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, service.CheckoutLine{ItemID: item.ID, Quantity: item.Quantity})
	}

	result, err := app.orderService.Checkout(r.Context(), req.VendorID, lines)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, repo.ErrVendorNotFound), errors.Is(err, repo.ErrItemNotFound):
			app.notFoundError(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, result); err != nil {
		app.internalServerError(w, r, err)
	}
}
