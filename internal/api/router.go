package api

import (
	"net/http"

	"homescan/internal/store"
)

// NewRouter creates the API router with all endpoints registered. Session
// transitions are public; room and object routes require a session token
// issued by one of the transitions.
func NewRouter(sessions *store.SessionStore, rooms *store.RoomStore, objects *store.ObjectStore, secret, imagesDir string) http.Handler {
	mux := http.NewServeMux()

	sessionHandler := &SessionHandler{Store: sessions, Secret: secret}
	roomsHandler := &RoomsHandler{Store: rooms, ImagesDir: imagesDir}
	objectsHandler := &ObjectsHandler{Store: objects}

	authMW := AuthMiddleware(secret)

	// Session: the four transitions plus current state for routing.
	mux.HandleFunc("POST /api/session/login", sessionHandler.Login)
	mux.HandleFunc("POST /api/session/signup", sessionHandler.Signup)
	mux.HandleFunc("POST /api/session/guest", sessionHandler.Guest)
	mux.HandleFunc("POST /api/session/logout", sessionHandler.Logout)
	mux.HandleFunc("GET /api/session", sessionHandler.Current)

	// Rooms.
	mux.Handle("GET /api/rooms", authMW(http.HandlerFunc(roomsHandler.List)))
	mux.Handle("POST /api/rooms", authMW(http.HandlerFunc(roomsHandler.Create)))
	mux.Handle("GET /api/rooms/{id}", authMW(http.HandlerFunc(roomsHandler.Get)))
	mux.Handle("PUT /api/rooms/{id}", authMW(http.HandlerFunc(roomsHandler.Update)))
	mux.Handle("DELETE /api/rooms/{id}", authMW(http.HandlerFunc(roomsHandler.Delete)))
	mux.Handle("POST /api/rooms/{id}/furniture", authMW(http.HandlerFunc(roomsHandler.AddFurniture)))
	mux.Handle("PUT /api/rooms/{id}/image", authMW(http.HandlerFunc(roomsHandler.UploadImage)))
	mux.Handle("GET /api/rooms/{id}/image", authMW(http.HandlerFunc(roomsHandler.GetImage)))

	// Objects.
	mux.Handle("GET /api/objects", authMW(http.HandlerFunc(objectsHandler.List)))
	mux.Handle("POST /api/objects", authMW(http.HandlerFunc(objectsHandler.Create)))
	mux.Handle("GET /api/objects/{id}", authMW(http.HandlerFunc(objectsHandler.Get)))
	mux.Handle("PUT /api/objects/{id}", authMW(http.HandlerFunc(objectsHandler.Update)))
	mux.Handle("DELETE /api/objects/{id}", authMW(http.HandlerFunc(objectsHandler.Delete)))

	return mux
}
