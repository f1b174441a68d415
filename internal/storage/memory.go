package storage

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// MemoryRepository keeps all records in process memory.
// Id sequences are owned by the repository and only ever grow.
type MemoryRepository struct {
	mu sync.RWMutex

	userSeq    atomic.Int64
	messageSeq atomic.Int64

	users      map[int64]User
	byEmail    map[string]int64
	byUsername map[string]int64

	messages map[int64]Message

	themes []Theme
	active int64
}

// NewMemoryRepository returns an empty repository with the theme catalog seeded
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:      make(map[int64]User),
		byEmail:    make(map[string]int64),
		byUsername: make(map[string]int64),
		messages:   make(map[int64]Message),
		themes:     seedThemes(time.Now()),
		active:     defaultThemeID,
	}
}

// lookup keys are case-insensitive for both email and username
func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (r *MemoryRepository) UserByID(_ context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *MemoryRepository) UserByEmail(ctx context.Context, email string) (User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[foldKey(email)]
	r.mu.RUnlock()
	if !ok {
		return User{}, ErrUserNotFound
	}
	return r.UserByID(ctx, id)
}

func (r *MemoryRepository) UserByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	id, ok := r.byUsername[foldKey(username)]
	r.mu.RUnlock()
	if !ok {
		return User{}, ErrUserNotFound
	}
	return r.UserByID(ctx, id)
}

func (r *MemoryRepository) Users(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

// InsertUser checks uniqueness and inserts under one write lock
func (r *MemoryRepository) InsertUser(_ context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[foldKey(u.Email)]; ok {
		return User{}, ErrEmailTaken
	}
	if _, ok := r.byUsername[foldKey(u.Username)]; ok {
		return User{}, ErrUsernameTaken
	}

	u.ID = r.userSeq.Add(1)
	u.Avatar = nil
	u.LastActivity = nil

	r.users[u.ID] = u
	r.byEmail[foldKey(u.Email)] = u.ID
	r.byUsername[foldKey(u.Username)] = u.ID

	return u, nil
}

func (r *MemoryRepository) UpdateProfile(_ context.Context, id int64, patch ProfilePatch) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	patch.apply(&u)
	r.users[id] = u

	return u, nil
}

func (r *MemoryRepository) Messages(_ context.Context) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]Message, 0, len(r.messages))
	for _, m := range r.messages {
		messages = append(messages, m)
	}
	return messages, nil
}

func (r *MemoryRepository) MessageByID(_ context.Context, id int64) (Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messages[id]
	if !ok {
		return Message{}, ErrMessageNotFound
	}
	return m, nil
}

func (r *MemoryRepository) InsertMessage(_ context.Context, m Message) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[m.UserID]; !ok {
		return Message{}, ErrUserNotFound
	}

	m.ID = r.messageSeq.Add(1)
	m.UpdatedAt = nil
	r.messages[m.ID] = m

	return m, nil
}

func (r *MemoryRepository) UpdateMessageContent(_ context.Context, id, userID int64, content string, at time.Time) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[id]
	if !ok || m.UserID != userID {
		return Message{}, ErrMessageNotFound
	}

	m.Content = content
	m.UpdatedAt = &at
	r.messages[id] = m

	return m, nil
}

func (r *MemoryRepository) DeleteMessage(_ context.Context, id, userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.messages[id]
	if !ok || m.UserID != userID {
		return false, nil
	}
	delete(r.messages, id)

	return true, nil
}

func (r *MemoryRepository) Themes(_ context.Context) ([]Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	themes := make([]Theme, len(r.themes))
	for i, t := range r.themes {
		t.IsActive = t.ID == r.active
		themes[i] = t
	}
	return themes, nil
}

func (r *MemoryRepository) ActiveTheme(_ context.Context) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.themeLocked(r.active)
}

// ActivateTheme replaces the active theme; the returned theme reflects the switch
func (r *MemoryRepository) ActivateTheme(_ context.Context, id int64) (Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.themeLocked(id); err != nil {
		return Theme{}, err
	}
	r.active = id

	return r.themeLocked(id)
}

func (r *MemoryRepository) themeLocked(id int64) (Theme, error) {
	for _, t := range r.themes {
		if t.ID == id {
			t.IsActive = t.ID == r.active
			return t, nil
		}
	}
	return Theme{}, ErrThemeNotFound
}

func (r *MemoryRepository) Close() {}
