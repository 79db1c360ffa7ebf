package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/contact-app/internal/contacts"
	"github.com/joestump/contact-app/internal/metrics"
)

// contactsAPIHandler provides REST handlers for contact management.
type contactsAPIHandler struct {
	svc      *contacts.Service
	pageSize int
	log      *slog.Logger
}

// registerContactRoutes registers contact routes on r.
func registerContactRoutes(r chi.Router, deps Deps) {
	h := &contactsAPIHandler{svc: deps.Contacts, pageSize: deps.PageSize, log: deps.Logger}
	if h.pageSize < 1 {
		h.pageSize = 5
	}
	r.Get("/contacts", h.List)
	r.Post("/contacts", h.Create)
	r.Get("/contacts/count", h.Count)
	r.Get("/contacts/{contactId}", h.Get)
	r.Put("/contacts/{contactId}", h.Update)
	r.Patch("/contacts/{contactId}", h.UpdateAddress)
	r.Delete("/contacts/{contactId}", h.Delete)
}

// List returns one page of contacts, optionally restricted to names
// containing the name query parameter.
// GET /api/contacts
//
// @Summary      List contacts
// @Description  Returns a page of contacts. With name, only contacts whose name contains it (case-sensitive).
// @Tags         contact
// @Produce      json
// @Param        page  query     int     false  "Page number, default is 1"
// @Param        name  query     string  false  "Name of the contact for search"
// @Success      200   {array}   contacts.Contact
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /contacts [get]
func (h *contactsAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
		return
	}

	var list []*contacts.Contact
	if name := r.URL.Query().Get("name"); name == "" {
		list, err = h.svc.FindAll(r.Context(), page, h.pageSize)
	} else {
		list, err = h.svc.FindAllByName(r.Context(), name, page, h.pageSize)
	}
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get returns a single contact by ID.
// GET /api/contacts/{contactId}
//
// @Summary      Find contact by ID
// @Description  Returns a single contact.
// @Tags         contact
// @Produce      json
// @Param        contactId  path      int  true  "Id of the contact to be obtained"
// @Success      200        {object}  contacts.Contact
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /contacts/{contactId} [get]
func (h *contactsAPIHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Create adds a new contact.
// POST /api/contacts
//
// @Summary      Add a new contact
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contacts.Contact  true  "Contact to add"
// @Success      201   {object}  contacts.Contact
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /contacts [post]
func (h *contactsAPIHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c contacts.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	saved, err := h.svc.Save(r.Context(), &c)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+strconv.FormatInt(saved.ID, 10))
	writeJSON(w, http.StatusCreated, saved)
}

// Update replaces an existing contact. The path id wins over any id in the body.
// PUT /api/contacts/{contactId}
//
// @Summary      Update an existing contact
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contactId  path      int               true  "Id of the contact to be updated"
// @Param        body       body      contacts.Contact  true  "Contact to update"
// @Success      200        {object}  contacts.Contact
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /contacts/{contactId} [put]
func (h *contactsAPIHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}
	var c contacts.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	c.ID = id
	if err := h.svc.Update(r.Context(), &c); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateAddress replaces the address fields of an existing contact.
// PATCH /api/contacts/{contactId}
//
// @Summary      Update an existing contact's address
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contactId  path      int               true  "Id of the contact to be updated"
// @Param        body       body      contacts.Address  true  "Contact's address to update"
// @Success      200        {object}  contacts.Contact
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /contacts/{contactId} [patch]
func (h *contactsAPIHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}
	var a contacts.Address
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return
	}

	if err := h.svc.UpdateAddress(r.Context(), id, a); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	c, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete removes a contact.
// DELETE /api/contacts/{contactId}
//
// @Summary      Deletes a contact
// @Tags         contact
// @Param        contactId  path  int  true  "Id of the contact to be deleted"
// @Success      200
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /contacts/{contactId} [delete]
func (h *contactsAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteByID(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Count returns the total number of contacts.
// GET /api/contacts/count
//
// @Summary      Count contacts
// @Tags         contact
// @Produce      json
// @Success      200  {object}  CountResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /contacts/count [get]
func (h *contactsAPIHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Count(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	metrics.ContactsTotal.Set(float64(n))
	writeJSON(w, http.StatusOK, CountResponse{Count: n})
}

// contactID parses the contactId path parameter, writing a 400 when it is not an integer.
func contactID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "contactId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "contact id must be an integer", "BAD_REQUEST")
		return 0, false
	}
	return id, true
}
