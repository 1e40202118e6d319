package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"homescan/internal/model"
)

// RoomStore owns the room collection, most-recent-first. Every mutation is
// persisted before the call returns, and the read-modify-persist sequence
// is serialized by an internal mutex.
type RoomStore struct {
	mu     sync.Mutex
	engine *Engine
	loaded bool
	rooms  []model.Room
}

// NewRoomStore creates an empty room store backed by the given engine.
func NewRoomStore(engine *Engine) *RoomStore {
	return &RoomStore{engine: engine}
}

// FetchAll loads the collection from storage on first call and returns a
// copy of it. Subsequent calls return the in-memory collection unchanged;
// there is no remote source of truth to re-fetch from.
func (s *RoomStore) FetchAll(ctx context.Context) ([]model.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		data, err := s.engine.Load(ctx, RoomStorage)
		if err != nil {
			return nil, err
		}
		if data != nil {
			var rooms []model.Room
			if err := json.Unmarshal(data, &rooms); err != nil {
				slog.Warn("discarding unreadable room collection", "error", err)
			} else {
				s.rooms = rooms
			}
		}
		s.loaded = true
	}

	return cloneRooms(s.rooms), nil
}

// Get returns the room with the given id, or false if it is unknown.
func (s *RoomStore) Get(id string) (model.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.ID == id {
			return cloneRoom(r), true
		}
	}
	return model.Room{}, false
}

// Add prepends the room and persists the collection. A duplicate id is a
// caller error and is rejected with ErrDuplicateID before anything changes.
func (s *RoomStore) Add(ctx context.Context, room model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.rooms {
		if r.ID == room.ID {
			return ErrDuplicateID
		}
	}

	room = cloneRoom(room)
	if room.Furniture == nil {
		room.Furniture = []model.FurnitureItem{}
	}
	s.rooms = append([]model.Room{room}, s.rooms...)
	return s.persist(ctx)
}

// Update replaces the whole record at id with room. This is not a merge:
// callers build the complete desired record, typically by reading the
// current one and changing a field. Unknown ids fail with ErrNotFound.
func (s *RoomStore) Update(ctx context.Context, id string, room model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms[i] = cloneRoom(room)
			return s.persist(ctx)
		}
	}
	return ErrNotFound
}

// Delete removes the record at id and persists. Deleting an absent id is
// a no-op, not an error.
func (s *RoomStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.rooms {
		if r.ID == id {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// persist writes the collection under its storage name. Callers must hold
// the mutex. An empty collection serializes as [] rather than null so the
// stored document always holds a sequence.
func (s *RoomStore) persist(ctx context.Context) error {
	rooms := s.rooms
	if rooms == nil {
		rooms = []model.Room{}
	}
	data, err := json.Marshal(rooms)
	if err != nil {
		return &PersistenceError{Collection: RoomStorage, Op: "encoding", Err: err}
	}
	return s.engine.Save(ctx, RoomStorage, data)
}

func cloneRoom(r model.Room) model.Room {
	r.Furniture = slices.Clone(r.Furniture)
	return r
}

func cloneRooms(rooms []model.Room) []model.Room {
	out := make([]model.Room, len(rooms))
	for i, r := range rooms {
		out[i] = cloneRoom(r)
	}
	return out
}
