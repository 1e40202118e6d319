package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"homescan/internal/store"
)

// StubVerifier accepts any credentials. It stands in for a real credential
// backend: login resolves a canned identity and signup mints a fresh one.
type StubVerifier struct{}

// Login always succeeds with a fixed user id and display name.
func (StubVerifier) Login(_ context.Context, email, _ string) (store.Identity, error) {
	return store.Identity{UserID: "1", Name: "John Doe", Email: email}, nil
}

// Signup always succeeds with a freshly generated user id.
func (StubVerifier) Signup(_ context.Context, name, email, _ string) (store.Identity, error) {
	return store.Identity{UserID: uuid.NewString(), Name: name, Email: email}, nil
}

// credential is one registered local account.
type credential struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// LocalVerifier keeps a bcrypt-hashed credential registry in durable
// storage, so login can genuinely reject unknown emails and wrong
// passwords. Enabled with the -local-accounts flag.
type LocalVerifier struct {
	mu     sync.Mutex
	engine *store.Engine
}

// NewLocalVerifier creates a verifier backed by the given engine.
func NewLocalVerifier(engine *store.Engine) *LocalVerifier {
	return &LocalVerifier{engine: engine}
}

// Login verifies the email and password against the registry. Unknown
// emails and password mismatches both fail with ErrAuth.
func (v *LocalVerifier) Login(ctx context.Context, email, password string) (store.Identity, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	registry, err := v.load(ctx)
	if err != nil {
		return store.Identity{}, err
	}

	cred, ok := registry[normalizeEmail(email)]
	if !ok {
		return store.Identity{}, store.ErrAuth
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return store.Identity{}, store.ErrAuth
	}

	return store.Identity{UserID: cred.UserID, Name: cred.Name, Email: cred.Email}, nil
}

// Signup registers a new account. Re-registering an existing email fails
// with ErrAuth.
func (v *LocalVerifier) Signup(ctx context.Context, name, email, password string) (store.Identity, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	registry, err := v.load(ctx)
	if err != nil {
		return store.Identity{}, err
	}

	key := normalizeEmail(email)
	if _, ok := registry[key]; ok {
		return store.Identity{}, fmt.Errorf("account already exists: %w", store.ErrAuth)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return store.Identity{}, fmt.Errorf("hashing password: %w", err)
	}

	cred := credential{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	registry[key] = cred

	if err := v.save(ctx, registry); err != nil {
		return store.Identity{}, err
	}

	return store.Identity{UserID: cred.UserID, Name: cred.Name, Email: cred.Email}, nil
}

// load reads the registry, treating absent or unreadable data as empty.
// Callers must hold the mutex.
func (v *LocalVerifier) load(ctx context.Context) (map[string]credential, error) {
	data, err := v.engine.Load(ctx, store.CredentialStorage)
	if err != nil {
		return nil, err
	}

	registry := make(map[string]credential)
	if data != nil {
		if err := json.Unmarshal(data, &registry); err != nil {
			return nil, fmt.Errorf("decoding credential registry: %w", err)
		}
	}
	return registry, nil
}

// save writes the registry. Callers must hold the mutex.
func (v *LocalVerifier) save(ctx context.Context, registry map[string]credential) error {
	data, err := json.Marshal(registry)
	if err != nil {
		return fmt.Errorf("encoding credential registry: %w", err)
	}
	return v.engine.Save(ctx, store.CredentialStorage, data)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
