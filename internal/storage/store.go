package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound       = errors.New("user does not exist")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMessageNotFound    = errors.New("message not found or not owned by user")
	ErrThemeNotFound      = errors.New("theme not found")
	ErrInvalidAttachment  = errors.New("attachment must have url, name and one of image, file, gif types")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// Repository persists users, messages and the theme catalog.
// Implementations assign ids and enforce email/username uniqueness on insert.
type Repository interface {
	UserByID(ctx context.Context, id int64) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	Users(ctx context.Context) ([]User, error)
	InsertUser(ctx context.Context, u User) (User, error)
	UpdateProfile(ctx context.Context, id int64, patch ProfilePatch) (User, error)

	Messages(ctx context.Context) ([]Message, error)
	MessageByID(ctx context.Context, id int64) (Message, error)
	InsertMessage(ctx context.Context, m Message) (Message, error)
	// UpdateMessageContent changes content and updatedAt only if userID owns the message.
	UpdateMessageContent(ctx context.Context, id, userID int64, content string, at time.Time) (Message, error)
	// DeleteMessage reports false when the message is missing or owned by someone else.
	DeleteMessage(ctx context.Context, id, userID int64) (bool, error)

	Themes(ctx context.Context) ([]Theme, error)
	ActiveTheme(ctx context.Context) (Theme, error)
	ActivateTheme(ctx context.Context, id int64) (Theme, error)

	Close()
}

// Presence keeps the last heartbeat of each user.
type Presence interface {
	Touch(ctx context.Context, userID int64, at time.Time) error
	LastSeen(ctx context.Context) (map[int64]time.Time, error)
	Close() error
}

// Store is the single entry point to chat state: users, messages, themes and presence.
type Store struct {
	logger     *zap.SugaredLogger
	repo       Repository
	presence   Presence
	now        func() time.Time
	threshold  time.Duration
	bcryptCost int
}

// New returns a Store backed by the given repository and presence tracker
func New(logger *zap.SugaredLogger, repo Repository, presence Presence, opts ...Option) *Store {
	s := &Store{
		logger:     logger,
		repo:       repo,
		presence:   presence,
		now:        time.Now,
		threshold:  DefaultActivityThreshold,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt.apply(s)
	}
	return s
}

// Close releases both backends
func (s *Store) Close() {
	s.repo.Close()
	if err := s.presence.Close(); err != nil {
		s.logger.Errorf("closing presence: %v", err)
	}
}

func (s *Store) GetUser(ctx context.Context, id int64) (User, error) {
	u, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	return s.withActivity(ctx, u)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		return User{}, err
	}
	return s.withActivity(ctx, u)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (User, error) {
	u, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		return User{}, err
	}
	return s.withActivity(ctx, u)
}

// GetAllUsers returns every user ordered by id, without passwords
func (s *Store) GetAllUsers(ctx context.Context) ([]User, error) {
	online, err := s.GetOnlineUsers(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]User, len(online))
	for i, u := range online {
		users[i] = u.User
	}
	return users, nil
}

// CreateUser hashes the password and inserts a new user.
// Duplicate email or username yields ErrEmailTaken or ErrUsernameTaken.
// Passwords over the bcrypt limit yield ErrPasswordTooLong.
func (s *Store) CreateUser(ctx context.Context, in SignUp) (User, error) {
	s.logger.Debugf("Creating user (%s)", in.Username)

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return User{}, ErrPasswordTooLong
		}
		return User{}, fmt.Errorf("hashing password: %w", err)
	}

	u, err := s.repo.InsertUser(ctx, User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hash),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Bio:         in.Bio,
		Location:    in.Location,
		Website:     in.Website,
		DateOfBirth: in.DateOfBirth,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return User{}, err
	}

	s.logger.Debugf("Created user (%s) with id %d", u.Username, u.ID)

	return u, nil
}

// AuthenticateUser returns the user matching the credentials or ErrInvalidCredentials
func (s *Store) AuthenticateUser(ctx context.Context, c Credentials) (User, error) {
	u, err := s.repo.UserByEmail(ctx, c.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(c.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	return s.withActivity(ctx, u)
}

func (s *Store) UpdateUserProfile(ctx context.Context, id int64, patch ProfilePatch) (User, error) {
	s.logger.Debugf("Updating profile of user (id: %d)", id)

	u, err := s.repo.UpdateProfile(ctx, id, patch)
	if err != nil {
		return User{}, err
	}
	return s.withActivity(ctx, u)
}

// GetMessages returns all messages ordered by creation time (from earliest to latest)
func (s *Store) GetMessages(ctx context.Context) ([]Message, error) {
	messages, err := s.repo.Messages(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	s.logger.Debugf("Retrieved %d messages", len(messages))

	return messages, nil
}

func (s *Store) GetMessageByID(ctx context.Context, id int64) (Message, error) {
	return s.repo.MessageByID(ctx, id)
}

// CreateMessage stores a new message; a nil attachment leaves all attachment fields null
func (s *Store) CreateMessage(ctx context.Context, in NewMessage) (Message, error) {
	s.logger.Debugf("Creating message from user (id: %d)", in.UserID)

	if a := in.Attachment; a != nil {
		if a.URL == "" || a.Name == "" || !ValidAttachmentType(a.Type) {
			return Message{}, ErrInvalidAttachment
		}
	}

	url, typ, name := in.Attachment.fields()
	return s.repo.InsertMessage(ctx, Message{
		Content:        in.Content,
		Username:       in.Username,
		UserID:         in.UserID,
		AttachmentURL:  url,
		AttachmentType: typ,
		AttachmentName: name,
		CreatedAt:      s.now(),
	})
}

// UpdateMessage edits a message owned by userID.
// ErrMessageNotFound is returned both for missing messages and foreign ones.
func (s *Store) UpdateMessage(ctx context.Context, id, userID int64, patch MessagePatch) (Message, error) {
	s.logger.Debugf("Updating message (id: %d) by user (id: %d)", id, userID)
	return s.repo.UpdateMessageContent(ctx, id, userID, patch.Content, s.now())
}

func (s *Store) DeleteMessage(ctx context.Context, id, userID int64) (bool, error) {
	s.logger.Debugf("Deleting message (id: %d) by user (id: %d)", id, userID)
	return s.repo.DeleteMessage(ctx, id, userID)
}

func (s *Store) GetThemes(ctx context.Context) ([]Theme, error) {
	return s.repo.Themes(ctx)
}

func (s *Store) GetActiveTheme(ctx context.Context) (Theme, error) {
	return s.repo.ActiveTheme(ctx)
}

// SetActiveTheme switches the shared theme; unknown ids leave the active theme untouched
func (s *Store) SetActiveTheme(ctx context.Context, id int64) (Theme, error) {
	s.logger.Debugf("Activating theme (id: %d)", id)
	return s.repo.ActivateTheme(ctx, id)
}

// UpdateUserActivity records a heartbeat for an existing user
func (s *Store) UpdateUserActivity(ctx context.Context, userID int64) error {
	if _, err := s.repo.UserByID(ctx, userID); err != nil {
		return err
	}
	return s.presence.Touch(ctx, userID, s.now())
}

// GetUsersCount returns the number of users seen within the activity threshold
func (s *Store) GetUsersCount(ctx context.Context) (int, error) {
	seen, err := s.presence.LastSeen(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()
	n := 0
	for _, at := range seen {
		if s.isActive(at, now) {
			n++
		}
	}
	return n, nil
}

// GetOnlineUsers returns all users with their last activity and online flag.
// Users that never sent a heartbeat are offline.
func (s *Store) GetOnlineUsers(ctx context.Context) ([]OnlineUser, error) {
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}

	seen, err := s.presence.LastSeen(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]OnlineUser, 0, len(users))
	for _, u := range users {
		u.Password = ""
		ou := OnlineUser{User: u}
		if at, ok := seen[u.ID]; ok {
			at := at
			ou.LastActivity = &at
			ou.IsOnline = s.isActive(at, now)
		}
		out = append(out, ou)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (s *Store) isActive(lastSeen, now time.Time) bool {
	return now.Sub(lastSeen) < s.threshold
}

func (s *Store) withActivity(ctx context.Context, u User) (User, error) {
	seen, err := s.presence.LastSeen(ctx)
	if err != nil {
		return User{}, err
	}
	if at, ok := seen[u.ID]; ok {
		u.LastActivity = &at
	}
	return u, nil
}
