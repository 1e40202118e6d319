package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"homescan/internal/imaging"
	"homescan/internal/marker"
	"homescan/internal/model"
	"homescan/internal/store"
)

// RoomsHandler handles room collection endpoints.
type RoomsHandler struct {
	Store     *store.RoomStore
	ImagesDir string
}

type createRoomRequest struct {
	Name     string  `json:"name"`
	ImageURI *string `json:"imageUri"`
}

type addFurnitureRequest struct {
	Name           string  `json:"name"`
	TapX           float64 `json:"tapX"`
	TapY           float64 `json:"tapY"`
	RenderedWidth  float64 `json:"renderedWidth"`
	RenderedHeight float64 `json:"renderedHeight"`
}

// List handles GET /api/rooms.
func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Store.FetchAll(r.Context())
	if err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, rooms)
}

// Create handles POST /api/rooms. The server generates the id and the
// creation timestamp.
func (h *RoomsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	room := model.Room{
		ID:        uuid.NewString(),
		Name:      req.Name,
		ImageURI:  req.ImageURI,
		Timestamp: model.NowTimestamp(),
		Furniture: []model.FurnitureItem{},
	}

	if err := h.Store.Add(r.Context(), room); err != nil {
		storeError(w, err)
		return
	}

	slog.Info("room created", "id", room.ID, "name", room.Name, "session", sessionLabel(r))
	jsonResponse(w, http.StatusCreated, room)
}

// Get handles GET /api/rooms/{id}.
func (h *RoomsHandler) Get(w http.ResponseWriter, r *http.Request) {
	room, ok := h.Store.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "room not found")
		return
	}
	jsonResponse(w, http.StatusOK, room)
}

// Update handles PUT /api/rooms/{id}. The body is the complete desired
// record; the store replaces, never merges. The id in the path wins over
// the one in the body since ids are immutable.
func (h *RoomsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var room model.Room
	if err := decodeJSON(r, &room); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if room.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	room.ID = id

	if err := h.Store.Update(r.Context(), id, room); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, room)
}

// Delete handles DELETE /api/rooms/{id}. Idempotent: deleting an absent
// room succeeds.
func (h *RoomsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Delete(r.Context(), r.PathValue("id")); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddFurniture handles POST /api/rooms/{id}/furniture. The tap location is
// converted to a fractional position, and the room record is rebuilt with
// the appended marker and replaced whole — the store has no furniture API.
func (h *RoomsHandler) AddFurniture(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req addFurnitureRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	pos, err := marker.ToFractional(req.TapX, req.TapY, req.RenderedWidth, req.RenderedHeight)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "rendered dimensions must be positive")
		return
	}

	room, ok := h.Store.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "room not found")
		return
	}

	room.Furniture = append(room.Furniture, model.FurnitureItem{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Position: pos,
	})

	if err := h.Store.Update(r.Context(), id, room); err != nil {
		storeError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, room)
}

// UploadImage handles PUT /api/rooms/{id}/image. The layout image is
// validated, downscaled, written to the images directory, and the room's
// imageUri is updated through the normal replace-by-id path.
func (h *RoomsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	room, ok := h.Store.Get(id)
	if !ok {
		jsonError(w, http.StatusNotFound, "room not found")
		return
	}

	layout, err := imaging.Process(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := os.MkdirAll(h.ImagesDir, 0o755); err != nil {
		slog.Error("creating images directory", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	path := filepath.Join(h.ImagesDir, id+".jpg")
	if err := os.WriteFile(path, layout.Data, 0o644); err != nil {
		slog.Error("writing layout image", "path", path, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	room.ImageURI = &path
	if err := h.Store.Update(r.Context(), id, room); err != nil {
		storeError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"imageUri": path,
		"width":    layout.Width,
		"height":   layout.Height,
	})
}

// GetImage handles GET /api/rooms/{id}/image.
func (h *RoomsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	room, ok := h.Store.Get(r.PathValue("id"))
	if !ok || room.ImageURI == nil {
		jsonError(w, http.StatusNotFound, "no layout image")
		return
	}

	data, err := os.ReadFile(*room.ImageURI)
	if err != nil {
		jsonError(w, http.StatusNotFound, "no layout image")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(data)
}
