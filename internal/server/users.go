package server

import (
	"errors"
	"net/http"

	"groupchat/internal/storage"
)

// heartbeat records activity for u without failing the surrounding request
// and returns u reloaded so lastActivity reflects the heartbeat
func (h *handler) heartbeat(r *http.Request, u storage.User) storage.User {
	if err := h.store.UpdateUserActivity(r.Context(), u.ID); err != nil {
		h.logger.Warnf("recording activity of user (id: %d): %v", u.ID, err)
		return u
	}

	fresh, err := h.store.GetUser(r.Context(), u.ID)
	if err != nil {
		h.logger.Warnf("reloading user (id: %d) after heartbeat: %v", u.ID, err)
		return u
	}
	return fresh
}

// signUp handles HTTP requests on "POST /api/auth/signup" endpoint
func (h *handler) signUp(w http.ResponseWriter, r *http.Request) {
	h.withBody(w, r, func(f *fields) {
		in := storage.SignUp{
			Username:    f.requiredString("username"),
			Email:       f.requiredString("email"),
			Password:    f.requiredString("password"),
			FirstName:   f.requiredString("firstName"),
			LastName:    f.requiredString("lastName"),
			Bio:         f.optionalString("bio"),
			Location:    f.optionalString("location"),
			Website:     f.optionalString("website"),
			DateOfBirth: f.optionalString("dateOfBirth"),
		}
		f.checkUsername("username", in.Username)
		f.checkEmail("email", in.Email)
		f.checkPassword("password", in.Password)
		f.checkDate("dateOfBirth", in.DateOfBirth)
		if !f.valid() {
			h.validationFailed(w, r, f)
			return
		}

		u, err := h.store.CreateUser(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEmailTaken):
				h.writeError(w, r, http.StatusBadRequest, "Email already exists",
					fieldError{Field: "email", Message: "Already registered"})
			case errors.Is(err, storage.ErrUsernameTaken):
				h.writeError(w, r, http.StatusBadRequest, "Username already exists",
					fieldError{Field: "username", Message: "Already taken"})
			case errors.Is(err, storage.ErrPasswordTooLong):
				h.writeError(w, r, http.StatusBadRequest, "Validation failed",
					fieldError{Field: "password", Message: "Must be at most 72 bytes"})
			default:
				h.internalError(w, r, err)
			}
			return
		}

		u = h.heartbeat(r, u)
		h.writeJSON(w, r, http.StatusCreated, u)
	})
}

// signIn handles HTTP requests on "POST /api/auth/signin" endpoint
func (h *handler) signIn(w http.ResponseWriter, r *http.Request) {
	h.withBody(w, r, func(f *fields) {
		c := storage.Credentials{
			Email:    f.requiredString("email"),
			Password: f.requiredString("password"),
		}
		if !f.valid() {
			h.validationFailed(w, r, f)
			return
		}

		u, err := h.store.AuthenticateUser(r.Context(), c)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidCredentials) {
				h.writeError(w, r, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			h.internalError(w, r, err)
			return
		}

		u = h.heartbeat(r, u)
		h.writeJSON(w, r, http.StatusOK, u)
	})
}

// user handles HTTP requests on "GET /api/users/{id}" endpoint
func (h *handler) user(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	u, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.writeError(w, r, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, u)
}

// users handles HTTP requests on "GET /api/users" endpoint
func (h *handler) users(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.GetAllUsers(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if users == nil {
		users = []storage.User{}
	}

	h.writeJSON(w, r, http.StatusOK, users)
}

// updateProfile handles HTTP requests on "PUT /api/users/{id}/profile" endpoint
func (h *handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	h.withBody(w, r, func(f *fields) {
		var patch storage.ProfilePatch
		if f.v.Exists("firstName") {
			s := f.requiredString("firstName")
			patch.FirstName = &s
		}
		if f.v.Exists("lastName") {
			s := f.requiredString("lastName")
			patch.LastName = &s
		}
		patch.Avatar = f.nullableString("avatar")
		patch.Bio = f.nullableString("bio")
		patch.Location = f.nullableString("location")
		patch.Website = f.nullableString("website")
		patch.DateOfBirth = f.nullableString("dateOfBirth")
		f.checkDate("dateOfBirth", patch.DateOfBirth.Value)
		if !f.valid() {
			h.validationFailed(w, r, f)
			return
		}

		u, err := h.store.UpdateUserProfile(r.Context(), id, patch)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				h.writeError(w, r, http.StatusNotFound, "User not found")
				return
			}
			h.internalError(w, r, err)
			return
		}

		h.writeJSON(w, r, http.StatusOK, u)
	})
}

// usersCount handles HTTP requests on "GET /api/users/count" endpoint
func (h *handler) usersCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.GetUsersCount(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, n)
}

// onlineUsers handles HTTP requests on "GET /api/users/online" endpoint
func (h *handler) onlineUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.GetOnlineUsers(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if users == nil {
		users = []storage.OnlineUser{}
	}

	h.writeJSON(w, r, http.StatusOK, users)
}

type activityResponse struct {
	UserID int64 `json:"userId"`
}

// userActivity handles HTTP requests on "POST /api/users/{id}/activity" endpoint
func (h *handler) userActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.UpdateUserActivity(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.writeError(w, r, http.StatusNotFound, "User not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, activityResponse{UserID: id})
}
