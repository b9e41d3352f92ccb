package main

import (
	"net/http"

	"github.com/tapmenu/tapmenu/internal/domain"
)

type StorefrontPage struct {
	Vendor *domain.Vendor    `json:"vendor"`
	Items  []domain.MenuItem `json:"items"`
}

// landingHandler serves the main-site root: requests that reach "/" carry
// no tenant context (the rewrite middleware sends tenant hosts to /menu).
func (app *application) landingHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"name":   "tapmenu",
		"signup": "/api/vendors",
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// menuPageHandler godoc
//
//	@Summary		Public storefront data
//	@Description	Vendor profile plus the available menu items, as shown to customers
//	@Tags			pages
//	@Produce		json
//	@Param			subdomain	query		string	true	"Vendor subdomain"
//	@Success		200			{object}	StorefrontPage
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) menuPageHandler(w http.ResponseWriter, r *http.Request) {
	subdomain := r.URL.Query().Get("subdomain")
	if subdomain == "" {
		app.badRequestResponse(w, r, ErrMissingSubdomain)
		return
	}

	vendor, err := app.vendorRepo.GetBySubdomain(r.Context(), subdomain)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	items, err := app.menuRepo.List(r.Context(), vendor.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	// customers only see what they can order
	available := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable {
			available = append(available, item)
		}
	}

	page := StorefrontPage{Vendor: vendor, Items: available}
	if err := app.jsonRespone(w, http.StatusOK, page); err != nil {
		app.internalServerError(w, r, err)
	}
}

// dashboardHandler serves the vendor dashboard data for any /dashboard path:
// the full profile and every item, available or not.
func (app *application) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	subdomain := r.URL.Query().Get("subdomain")
	if subdomain == "" {
		app.badRequestResponse(w, r, ErrMissingSubdomain)
		return
	}

	vendor, err := app.vendorRepo.GetBySubdomain(r.Context(), subdomain)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	items, err := app.menuRepo.List(r.Context(), vendor.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	page := StorefrontPage{Vendor: vendor, Items: items}
	if err := app.jsonRespone(w, http.StatusOK, page); err != nil {
		app.internalServerError(w, r, err)
	}
}
