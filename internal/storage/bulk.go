package storage

import "github.com/jackc/pgx/v4"

var themeColumns = []string{
	"id", "name", "primary_color", "secondary_color", "background_color",
	"message_background", "text_color", "accent_color", "is_active", "created_at",
}

type themeBulk struct {
	rows []Theme
	idx  int
}

func themeValues(t Theme) []interface{} {
	return []interface{}{
		t.ID, t.Name, t.PrimaryColor, t.SecondaryColor, t.BackgroundColor,
		t.MessageBackground, t.TextColor, t.AccentColor, t.IsActive, t.CreatedAt,
	}
}

func copyFromThemes(rows []Theme) pgx.CopyFromSource {
	return &themeBulk{
		rows: rows,
		idx:  -1,
	}
}

func (tb *themeBulk) Next() bool {
	tb.idx++
	return tb.idx < len(tb.rows)
}

func (tb *themeBulk) Values() ([]interface{}, error) {
	return themeValues(tb.rows[tb.idx]), nil
}

func (tb *themeBulk) Err() error {
	return nil
}
