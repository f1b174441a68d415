package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"
)

const (
	constraintEmail      = "users_email_key"
	constraintUsername   = "users_username_key"
	constraintMessageFK  = "messages_user_id_fkey"
	constraintAttachment = "messages_attachment_check"
)

const schema = `
create table if not exists users (
	id            bigint generated always as identity primary key,
	username      text not null,
	email         text not null,
	password      text not null,
	first_name    text not null,
	last_name     text not null,
	avatar        text,
	bio           text,
	location      text,
	website       text,
	date_of_birth date,
	created_at    timestamptz not null
);

create unique index if not exists users_email_key on users (lower(email));
create unique index if not exists users_username_key on users (lower(username));

create table if not exists messages (
	id              bigint generated always as identity primary key,
	content         text not null,
	username        text not null,
	user_id         bigint not null,
	attachment_url  text,
	attachment_type text,
	attachment_name text,
	created_at      timestamptz not null,
	updated_at      timestamptz,
	constraint messages_user_id_fkey foreign key (user_id) references users (id),
	constraint messages_attachment_check check (
		(attachment_url is null) = (attachment_type is null)
		and (attachment_type is null) = (attachment_name is null)
		and (attachment_type is null or attachment_type in ('image', 'file', 'gif'))
	)
);

create index if not exists messages_created_at_idx on messages (created_at, id);

create table if not exists chat_themes (
	id                 bigint primary key,
	name               text not null,
	primary_color      text not null,
	secondary_color    text not null,
	background_color   text not null,
	message_background text not null,
	text_color         text not null,
	accent_color       text not null,
	is_active          boolean not null default false,
	created_at         timestamptz not null
);

create unique index if not exists chat_themes_single_active on chat_themes (is_active) where is_active;
`

// migrate creates missing tables and seeds the theme catalog once
func (r *PostgresRepository) migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	// error handling can be omitted for rollback according docs
	defer tx.Rollback(context.Background())

	// serializes seeding between instances starting at once
	if _, err := tx.Exec(ctx, "lock table chat_themes in exclusive mode"); err != nil {
		return err
	}

	var n int
	if err := tx.QueryRow(ctx, "select count(*) from chat_themes").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return tx.Commit(ctx)
	}

	r.logger.Debug("Seeding theme catalog")

	_, err = tx.CopyFrom(ctx, pgx.Identifier{"chat_themes"}, themeColumns, copyFromThemes(seedThemes(time.Now())))
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}
