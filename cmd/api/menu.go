package main

import (
	"errors"
	"net/http"

	"github.com/tapmenu/tapmenu/internal/repo"
)

var (
	ErrMissingItemID       = errors.New("item id is required")
	ErrMissingVendorFilter = errors.New("vendorId is required")
	ErrInvalidPrice        = errors.New("invalid price")
)

type CreateMenuItemRequest struct {
	VendorID    string   `json:"vendorId" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image"`
	IsAvailable *bool    `json:"isAvailable"`
}

type UpdateMenuItemRequest struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Image       *string  `json:"image"`
	IsAvailable *bool    `json:"isAvailable"`
}

// listMenuItemsHandler godoc
//
//	@Summary		List menu items
//	@Description	List all menu items belonging to a vendor
//	@Tags			menu
//	@Produce		json
//	@Param			vendorId	query		string	true	"Vendor ID"
//	@Success		200			{array}		domain.MenuItem
//	@Failure		400			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) listMenuItemsHandler(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendorId")
	if vendorID == "" {
		app.badRequestResponse(w, r, ErrMissingVendorFilter)
		return
	}

	items, err := app.menuRepo.List(r.Context(), vendorID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createMenuItemHandler godoc
//
//	@Summary		Create menu item
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateMenuItemRequest	true	"Menu item data"
//	@Success		201		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu [post]
func (app *application) createMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if *req.Price < 0 {
		app.badRequestResponse(w, r, ErrInvalidPrice)
		return
	}

	item, err := app.menuRepo.Create(r.Context(), repo.CreateMenuItemInput{
		VendorID:    req.VendorID,
		Name:        req.Name,
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateMenuItemHandler godoc
//
//	@Summary		Update menu item
//	@Description	Update menu item fields. VendorId is immutable.
//	@Tags			menu
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateMenuItemRequest	true	"Fields to update"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/menu [patch]
func (app *application) updateMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateMenuItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if req.ID == "" {
		app.badRequestResponse(w, r, ErrMissingItemID)
		return
	}

	input := repo.UpdateMenuItemInput{
		Price:       req.Price,
		Image:       req.Image,
		IsAvailable: req.IsAvailable,
	}
	if req.Name != "" {
		input.Name = &req.Name
	}
	if req.Category != "" {
		input.Category = &req.Category
	}

	item, err := app.menuRepo.Update(r.Context(), req.ID, input)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteMenuItemHandler godoc
//
//	@Summary		Delete menu item
//	@Tags			menu
//	@Produce		json
//	@Param			id	query		string	true	"Item ID"
//	@Success		200	{object}	map[string]bool
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Router			/menu [delete]
func (app *application) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		app.badRequestResponse(w, r, ErrMissingItemID)
		return
	}

	if err := app.menuRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	response := map[string]bool{"success": true}
	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
