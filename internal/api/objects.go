package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"homescan/internal/filter"
	"homescan/internal/model"
	"homescan/internal/store"
)

// ObjectsHandler handles detected object endpoints.
type ObjectsHandler struct {
	Store *store.ObjectStore
}

// List handles GET /api/objects. Query parameters narrow the result: query
// is a free-text match, the rest are per-field constraints.
func (h *ObjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	objects, err := h.Store.FetchAll(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}

	q := r.URL.Query()
	constraints := filter.Constraints{
		Brand:    q.Get("brand"),
		Category: q.Get("category"),
		Color:    q.Get("color"),
		Shape:    q.Get("shape"),
		Size:     q.Get("size"),
		Location: q.Get("location"),
	}

	matched := filter.Apply(objects, q.Get("query"), constraints)
	if matched == nil {
		matched = []model.DetectedObject{}
	}
	jsonResponse(w, http.StatusOK, matched)
}

// Create handles POST /api/objects. The body is the full record; the
// server fills in id and timestamp when absent. Attributes are supplied by
// the caller, not computed here.
func (h *ObjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var object model.DetectedObject
	if err := decodeJSON(r, &object); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if object.Text == "" {
		jsonError(w, http.StatusBadRequest, "text required")
		return
	}

	if object.ID == "" {
		object.ID = uuid.NewString()
	}
	if object.Timestamp == "" {
		object.Timestamp = model.NowTimestamp()
	}

	if err := h.Store.Add(r.Context(), object); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("object created", "id", object.ID, "text", object.Text, "session", sessionLabel(r))
	jsonResponse(w, http.StatusCreated, object)
}

// Get handles GET /api/objects/{id}.
func (h *ObjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	object, ok := h.Store.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "object not found")
		return
	}
	jsonResponse(w, http.StatusOK, object)
}

// Update handles PUT /api/objects/{id}. Full-record replace; the id in the
// path wins over the one in the body.
func (h *ObjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var object model.DetectedObject
	if err := decodeJSON(r, &object); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if object.Text == "" {
		jsonError(w, http.StatusBadRequest, "text required")
		return
	}
	object.ID = id

	if err := h.Store.Update(r.Context(), id, object); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, object)
}

// Delete handles DELETE /api/objects/{id}. Idempotent.
func (h *ObjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), r.PathValue("id")); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
