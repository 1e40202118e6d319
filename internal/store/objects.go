package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"homescan/internal/model"
)

// ObjectStore owns the detected object collection, most-recent-first. Same
// contract as RoomStore: mutations persist before returning and are
// serialized by an internal mutex.
type ObjectStore struct {
	mu      sync.Mutex
	engine  *Engine
	loaded  bool
	objects []model.DetectedObject
}

// NewObjectStore creates an empty object store backed by the given engine.
func NewObjectStore(engine *Engine) *ObjectStore {
	return &ObjectStore{engine: engine}
}

// FetchAll loads the collection from storage on first call and returns a
// copy of it. Subsequent calls return the in-memory collection unchanged.
func (s *ObjectStore) FetchAll(ctx context.Context) ([]model.DetectedObject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		data, err := s.engine.Load(ctx, ObjectStorage)
		if err != nil {
			return nil, err
		}
		if data != nil {
			var objects []model.DetectedObject
			if err := json.Unmarshal(data, &objects); err != nil {
				slog.Warn("discarding unreadable object collection", "error", err)
			} else {
				s.objects = objects
			}
		}
		s.loaded = true
	}

	out := make([]model.DetectedObject, len(s.objects))
	copy(out, s.objects)
	return out, nil
}

// Get returns the object with the given id, or false if it is unknown.
func (s *ObjectStore) Get(id string) (model.DetectedObject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.objects {
		if o.ID == id {
			return o, true
		}
	}
	return model.DetectedObject{}, false
}

// Add prepends the object and persists the collection. Duplicate ids are
// rejected with ErrDuplicateID before anything changes.
func (s *ObjectStore) Add(ctx context.Context, object model.DetectedObject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.objects {
		if o.ID == object.ID {
			return ErrDuplicateID
		}
	}

	s.objects = append([]model.DetectedObject{object}, s.objects...)
	return s.persist(ctx)
}

// Update replaces the whole record at id with object, never merging with
// the prior record. Unknown ids fail with ErrNotFound.
func (s *ObjectStore) Update(ctx context.Context, id string, object model.DetectedObject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.objects {
		if o.ID == id {
			s.objects[i] = object
			return s.persist(ctx)
		}
	}
	return ErrNotFound
}

// Delete removes the record at id and persists. Deleting an absent id is
// a no-op, not an error.
func (s *ObjectStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.objects {
		if o.ID == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// persist writes the collection under its storage name. Callers must hold
// the mutex.
func (s *ObjectStore) persist(ctx context.Context) error {
	objects := s.objects
	if objects == nil {
		objects = []model.DetectedObject{}
	}
	data, err := json.Marshal(objects)
	if err != nil {
		return &PersistenceError{Collection: ObjectStorage, Op: "encoding", Err: err}
	}
	return s.engine.Save(ctx, ObjectStorage, data)
}
