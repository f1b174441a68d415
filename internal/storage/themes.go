package storage

import "time"

// defaultThemeID is the theme active on a freshly seeded store.
const defaultThemeID = 1

// seedThemes returns the fixed theme catalog. Ids are 1..6 in order.
func seedThemes(createdAt time.Time) []Theme {
	themes := []Theme{
		{Name: "Classic", PrimaryColor: "#3b82f6", SecondaryColor: "#1e40af", BackgroundColor: "#f8fafc", MessageBackground: "#ffffff", TextColor: "#0f172a", AccentColor: "#60a5fa"},
		{Name: "Ocean", PrimaryColor: "#0891b2", SecondaryColor: "#155e75", BackgroundColor: "#ecfeff", MessageBackground: "#cffafe", TextColor: "#083344", AccentColor: "#22d3ee"},
		{Name: "Forest", PrimaryColor: "#16a34a", SecondaryColor: "#14532d", BackgroundColor: "#f0fdf4", MessageBackground: "#dcfce7", TextColor: "#052e16", AccentColor: "#4ade80"},
		{Name: "Sunset", PrimaryColor: "#ea580c", SecondaryColor: "#9a3412", BackgroundColor: "#fff7ed", MessageBackground: "#ffedd5", TextColor: "#431407", AccentColor: "#fb923c"},
		{Name: "Midnight", PrimaryColor: "#6366f1", SecondaryColor: "#312e81", BackgroundColor: "#0f172a", MessageBackground: "#1e293b", TextColor: "#e2e8f0", AccentColor: "#818cf8"},
		{Name: "Lavender", PrimaryColor: "#9333ea", SecondaryColor: "#581c87", BackgroundColor: "#faf5ff", MessageBackground: "#f3e8ff", TextColor: "#3b0764", AccentColor: "#c084fc"},
	}
	for i := range themes {
		themes[i].ID = int64(i + 1)
		themes[i].IsActive = themes[i].ID == defaultThemeID
		themes[i].CreatedAt = createdAt
	}
	return themes
}
