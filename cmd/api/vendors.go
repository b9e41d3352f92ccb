package main

import (
	"errors"
	"net/http"

	"github.com/tapmenu/tapmenu/internal/repo"
	"github.com/tapmenu/tapmenu/internal/service"
)

var (
	ErrMissingVendorKey = errors.New("subdomain or id is required")
	ErrMissingSubdomain = errors.New("subdomain is required")
	ErrMissingVendorID  = errors.New("vendor id is required")
)

type CreateVendorRequest struct {
	Name           string `json:"name" validate:"required"`
	Subdomain      string `json:"subdomain" validate:"required"`
	WhatsappNumber string `json:"whatsappNumber" validate:"required"`
	UpiID          string `json:"upiId" validate:"required"`
	Address        string `json:"address"`
}

type UpdateVendorRequest struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name"`
	WhatsappNumber string  `json:"whatsappNumber"`
	UpiID          string  `json:"upiId"`
	Address        *string `json:"address"`
}

// getVendorHandler godoc
//
//	@Summary		Get vendor
//	@Description	Get a vendor by subdomain or by id
//	@Tags			vendors
//	@Produce		json
//	@Param			subdomain	query		string	false	"Vendor subdomain"
//	@Param			id			query		string	false	"Vendor ID"
//	@Success		200			{object}	domain.Vendor
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/vendors [get]
func (app *application) getVendorHandler(w http.ResponseWriter, r *http.Request) {
	subdomain := r.URL.Query().Get("subdomain")
	id := r.URL.Query().Get("id")

	if subdomain == "" && id == "" {
		app.badRequestResponse(w, r, ErrMissingVendorKey)
		return
	}

	if subdomain != "" {
		vendor, err := app.vendorRepo.GetBySubdomain(r.Context(), subdomain)
		if err != nil {
			app.notFoundError(w, r, err)
			return
		}
		if err := app.jsonRespone(w, http.StatusOK, vendor); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	vendor, err := app.vendorRepo.GetByID(r.Context(), id)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, vendor); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createVendorHandler godoc
//
//	@Summary		Register vendor
//	@Description	Create a new vendor with a unique subdomain
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateVendorRequest	true	"Vendor data"
//	@Success		201		{object}	domain.Vendor
//	@Failure		400		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/vendors [post]
func (app *application) createVendorHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	vendor, err := app.vendorService.Register(r.Context(), repo.CreateVendorInput{
		Name:           req.Name,
		Subdomain:      req.Subdomain,
		WhatsappNumber: req.WhatsappNumber,
		UpiID:          req.UpiID,
		Address:        req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSubdomain):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, service.ErrSubdomainTaken):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, vendor); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateVendorHandler godoc
//
//	@Summary		Update vendor
//	@Description	Update vendor profile fields. Subdomain is immutable.
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateVendorRequest	true	"Fields to update"
//	@Success		200		{object}	domain.Vendor
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/vendors [patch]
func (app *application) updateVendorHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateVendorRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if req.ID == "" {
		app.badRequestResponse(w, r, ErrMissingVendorID)
		return
	}

	// empty strings mean "not provided" for everything except address,
	// which may legitimately be cleared
	input := repo.UpdateVendorInput{Address: req.Address}
	if req.Name != "" {
		input.Name = &req.Name
	}
	if req.WhatsappNumber != "" {
		input.WhatsappNumber = &req.WhatsappNumber
	}
	if req.UpiID != "" {
		input.UpiID = &req.UpiID
	}

	vendor, err := app.vendorRepo.Update(r.Context(), req.ID, input)
	if err != nil {
		if errors.Is(err, repo.ErrVendorNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, vendor); err != nil {
		app.internalServerError(w, r, err)
	}
}

// checkSubdomainHandler godoc
//
//	@Summary		Check subdomain availability
//	@Tags			vendors
//	@Produce		json
//	@Param			subdomain	query		string	true	"Subdomain to check"
//	@Success		200			{object}	map[string]bool
//	@Failure		400			{object}	map[string]string
//	@Router			/vendors/check-subdomain [get]
func (app *application) checkSubdomainHandler(w http.ResponseWriter, r *http.Request) {
	subdomain := r.URL.Query().Get("subdomain")
	if subdomain == "" {
		app.badRequestResponse(w, r, ErrMissingSubdomain)
		return
	}

	available, err := app.vendorService.SubdomainAvailable(r.Context(), subdomain)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]bool{"available": available}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
