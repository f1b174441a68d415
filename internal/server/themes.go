package server

import (
	"errors"
	"net/http"

	"groupchat/internal/events"
	"groupchat/internal/storage"
)

// activeTheme handles HTTP requests on "GET /api/chat/theme" endpoint
func (h *handler) activeTheme(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.GetActiveTheme(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, t)
}

// themes handles HTTP requests on "GET /api/chat/themes" endpoint
func (h *handler) themes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.store.GetThemes(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if themes == nil {
		themes = []storage.Theme{}
	}

	h.writeJSON(w, r, http.StatusOK, themes)
}

// setTheme handles HTTP requests on "POST /api/chat/theme" endpoint
func (h *handler) setTheme(w http.ResponseWriter, r *http.Request) {
	h.withBody(w, r, func(f *fields) {
		id := f.requiredID("themeId")
		if !f.valid() {
			h.validationFailed(w, r, f)
			return
		}

		t, err := h.store.SetActiveTheme(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrThemeNotFound) {
				h.writeError(w, r, http.StatusNotFound, "Theme not found")
				return
			}
			h.internalError(w, r, err)
			return
		}

		h.publish(r.Context(), events.ThemeChanged, t.ID, t)
		h.writeJSON(w, r, http.StatusOK, t)
	})
}
