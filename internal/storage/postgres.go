package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"groupchat/internal/storage/zapadapter"
)

const dateLayout = "2006-01-02"

const (
	userColumns = `id, username, email, password, first_name, last_name,
		avatar, bio, location, website, date_of_birth, created_at`
	messageColumns = `id, content, username, user_id,
		attachment_url, attachment_type, attachment_name, created_at, updated_at`
	themeSelect = `select id, name, primary_color, secondary_color, background_color,
		message_background, text_color, accent_color, is_active, created_at
		from chat_themes`
)

// PostgresRepository defines fields used in db interaction processes
type PostgresRepository struct {
	logger *zap.SugaredLogger
	db     *pgxpool.Pool
}

// NewPostgresRepository sets provided zap.Logger via zapadapter to pgxpool.Pool, applies the schema
// and returns instance of PostgresRepository
func NewPostgresRepository(ctx context.Context, logger *zap.SugaredLogger, cfg Config, opts ...PoolOption) (*PostgresRepository, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}
	config.ConnConfig.Logger = zapadapter.NewLogger(logger.Desugar())

	for _, opt := range opts {
		opt.apply(config)
	}

	pool, err := pgxpool.ConnectConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	r := &PostgresRepository{
		logger: logger,
		db:     pool,
	}

	if err := r.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return r, nil
}

func (r *PostgresRepository) Close() {
	r.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row scanner) (User, error) {
	var (
		u   User
		dob pgtype.Date
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.Avatar, &u.Bio, &u.Location, &u.Website, &dob, &u.CreatedAt)
	if err != nil {
		return User{}, err
	}
	if dob.Status == pgtype.Present {
		s := dob.Time.Format(dateLayout)
		u.DateOfBirth = &s
	}
	return u, nil
}

func dateParam(s *string) (pgtype.Date, error) {
	if s == nil {
		return pgtype.Date{Status: pgtype.Null}, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return pgtype.Date{}, fmt.Errorf("parsing date of birth: %w", err)
	}
	return pgtype.Date{Time: t, Status: pgtype.Present}, nil
}

func (r *PostgresRepository) queryUser(ctx context.Context, where string, arg interface{}) (User, error) {
	sql := "select " + userColumns + " from users where " + where
	u, err := scanUser(r.db.QueryRow(ctx, sql, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) UserByID(ctx context.Context, id int64) (User, error) {
	return r.queryUser(ctx, "id = $1", id)
}

func (r *PostgresRepository) UserByEmail(ctx context.Context, email string) (User, error) {
	return r.queryUser(ctx, "lower(email) = lower($1)", email)
}

func (r *PostgresRepository) UserByUsername(ctx context.Context, username string) (User, error) {
	return r.queryUser(ctx, "lower(username) = lower($1)", username)
}

func (r *PostgresRepository) Users(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, "select "+userColumns+" from users order by id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	r.logger.Debugf("Retrieved %d users", len(users))

	return users, nil
}

// InsertUser relies on the unique indexes so concurrent sign-ups cannot both succeed
func (r *PostgresRepository) InsertUser(ctx context.Context, u User) (User, error) {
	dob, err := dateParam(u.DateOfBirth)
	if err != nil {
		return User{}, err
	}

	sql := `insert into users (username, email, password, first_name, last_name,
				bio, location, website, date_of_birth, created_at)
			values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			returning ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, sql, u.Username, u.Email, u.Password, u.FirstName, u.LastName,
		u.Bio, u.Location, u.Website, dob, u.CreatedAt))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case constraintEmail:
				return User{}, ErrEmailTaken
			case constraintUsername:
				return User{}, ErrUsernameTaken
			}
		}
		return User{}, err
	}

	return created, nil
}

// UpdateProfile locks the user row, applies the patch and writes all profile columns back
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, patch ProfilePatch) (User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return User{}, err
	}
	defer tx.Rollback(context.Background())

	u, err := scanUser(tx.QueryRow(ctx, "select "+userColumns+" from users where id = $1 for update", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	patch.apply(&u)

	dob, err := dateParam(u.DateOfBirth)
	if err != nil {
		return User{}, err
	}

	sql := `update users
			   set first_name = $1, last_name = $2, avatar = $3, bio = $4,
			       location = $5, website = $6, date_of_birth = $7
			 where id = $8
			returning ` + userColumns

	updated, err := scanUser(tx.QueryRow(ctx, sql, u.FirstName, u.LastName, u.Avatar, u.Bio,
		u.Location, u.Website, dob, id))
	if err != nil {
		return User{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return User{}, err
	}

	return updated, nil
}

func scanMessage(row scanner) (Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.Content, &m.Username, &m.UserID,
		&m.AttachmentURL, &m.AttachmentType, &m.AttachmentName, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// Messages returns all messages sorted by creation time (from earliest to latest)
func (r *PostgresRepository) Messages(ctx context.Context) ([]Message, error) {
	rows, err := r.db.Query(ctx, "select "+messageColumns+" from messages order by created_at asc, id asc")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return messages, nil
}

func (r *PostgresRepository) MessageByID(ctx context.Context, id int64) (Message, error) {
	m, err := scanMessage(r.db.QueryRow(ctx, "select "+messageColumns+" from messages where id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Message{}, ErrMessageNotFound
		}
		return Message{}, err
	}
	return m, nil
}

func (r *PostgresRepository) InsertMessage(ctx context.Context, m Message) (Message, error) {
	sql := `insert into messages (content, username, user_id,
				attachment_url, attachment_type, attachment_name, created_at)
			values ($1, $2, $3, $4, $5, $6, $7)
			returning ` + messageColumns

	created, err := scanMessage(r.db.QueryRow(ctx, sql, m.Content, m.Username, m.UserID,
		m.AttachmentURL, m.AttachmentType, m.AttachmentName, m.CreatedAt))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == pgerrcode.ForeignKeyViolation && pgErr.ConstraintName == constraintMessageFK:
				return Message{}, ErrUserNotFound
			case pgErr.Code == pgerrcode.CheckViolation && pgErr.ConstraintName == constraintAttachment:
				return Message{}, ErrInvalidAttachment
			}
		}
		return Message{}, err
	}

	return created, nil
}

// UpdateMessageContent matches on both id and owner so a foreign message is indistinguishable from a missing one
func (r *PostgresRepository) UpdateMessageContent(ctx context.Context, id, userID int64, content string, at time.Time) (Message, error) {
	sql := `update messages
			   set content = $1, updated_at = $2
			 where id = $3 and user_id = $4
			returning ` + messageColumns

	m, err := scanMessage(r.db.QueryRow(ctx, sql, content, at, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Message{}, ErrMessageNotFound
		}
		return Message{}, err
	}
	return m, nil
}

func (r *PostgresRepository) DeleteMessage(ctx context.Context, id, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, "delete from messages where id = $1 and user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func scanTheme(row scanner) (Theme, error) {
	var t Theme
	err := row.Scan(&t.ID, &t.Name, &t.PrimaryColor, &t.SecondaryColor, &t.BackgroundColor,
		&t.MessageBackground, &t.TextColor, &t.AccentColor, &t.IsActive, &t.CreatedAt)
	return t, err
}

func (r *PostgresRepository) Themes(ctx context.Context) ([]Theme, error) {
	rows, err := r.db.Query(ctx, themeSelect+" order by id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	themes := []Theme{}
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return themes, nil
}

func (r *PostgresRepository) ActiveTheme(ctx context.Context) (Theme, error) {
	t, err := scanTheme(r.db.QueryRow(ctx, themeSelect+" where is_active"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Theme{}, ErrThemeNotFound
		}
		return Theme{}, err
	}
	return t, nil
}

// ActivateTheme clears the previous active flag before setting the new one;
// the partial unique index would reject the opposite order
func (r *PostgresRepository) ActivateTheme(ctx context.Context, id int64) (Theme, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return Theme{}, err
	}
	defer tx.Rollback(context.Background())

	var i int8
	err = tx.QueryRow(ctx, "select 1 from chat_themes where id = $1", id).Scan(&i)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Theme{}, ErrThemeNotFound
		}
		return Theme{}, err
	}

	if _, err := tx.Exec(ctx, "update chat_themes set is_active = false where is_active"); err != nil {
		return Theme{}, err
	}

	t, err := scanTheme(tx.QueryRow(ctx, `update chat_themes set is_active = true where id = $1
		returning id, name, primary_color, secondary_color, background_color,
		message_background, text_color, accent_color, is_active, created_at`, id))
	if err != nil {
		return Theme{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Theme{}, err
	}

	return t, nil
}
