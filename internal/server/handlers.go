package server

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/valyala/fastjson"
	"go.uber.org/zap"

	"groupchat/internal/events"
	"groupchat/internal/storage"
	"groupchat/internal/storage/zapadapter"
)

//go:generate mockgen -destination=mock_store_test.go -package=server groupchat/internal/server Store

// Store is the subset of storage.Store used by the HTTP layer
type Store interface {
	GetUser(ctx context.Context, id int64) (storage.User, error)
	GetAllUsers(ctx context.Context) ([]storage.User, error)
	CreateUser(ctx context.Context, in storage.SignUp) (storage.User, error)
	AuthenticateUser(ctx context.Context, c storage.Credentials) (storage.User, error)
	UpdateUserProfile(ctx context.Context, id int64, patch storage.ProfilePatch) (storage.User, error)

	GetMessages(ctx context.Context) ([]storage.Message, error)
	GetMessageByID(ctx context.Context, id int64) (storage.Message, error)
	CreateMessage(ctx context.Context, in storage.NewMessage) (storage.Message, error)
	UpdateMessage(ctx context.Context, id, userID int64, patch storage.MessagePatch) (storage.Message, error)
	DeleteMessage(ctx context.Context, id, userID int64) (bool, error)

	GetThemes(ctx context.Context) ([]storage.Theme, error)
	GetActiveTheme(ctx context.Context) (storage.Theme, error)
	SetActiveTheme(ctx context.Context, id int64) (storage.Theme, error)

	GetUsersCount(ctx context.Context) (int, error)
	GetOnlineUsers(ctx context.Context) ([]storage.OnlineUser, error)
	UpdateUserActivity(ctx context.Context, userID int64) error
}

type handler struct {
	logger         *zap.SugaredLogger
	store          Store
	publisher      events.Publisher
	publishTimeout time.Duration
	parsers        fastjson.ParserPool
	now            func() time.Time
}

// errorBody is the payload of every non-2xx JSON response
type errorBody struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors,omitempty"`
}

func (h *handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	payload, err := json.Marshal(v)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		h.logger.Errorf("writing marshaled data to ResponseWriter: %v", err)
	}
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, status int, msg string, errs ...fieldError) {
	h.writeJSON(w, r, status, errorBody{Message: msg, Errors: errs})
}

// internalError logs err with the request id and answers with an opaque 500
func (h *handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	id, _ := zapadapter.RequestID(r.Context())
	h.logger.Errorw("request failed", "request_id", id, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"message":"` + http.StatusText(http.StatusInternalServerError) + `"}`))
}

// withBody parses the request body as a JSON object and hands its fields to fn.
// The body has already been checked by enforceJSON.
func (h *handler) withBody(w http.ResponseWriter, r *http.Request, fn func(f *fields)) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Can not read request body")
		return
	}

	parser := h.parsers.Get()
	defer h.parsers.Put(parser)

	v, err := parser.ParseBytes(body)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Malformed JSON")
		return
	}
	if v.Type() != fastjson.TypeObject {
		h.writeError(w, r, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	fn(&fields{v: v})
}

// pathID reads the positive integer {id} route parameter
func (h *handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		h.writeError(w, r, http.StatusBadRequest, "Validation failed",
			fieldError{Field: "id", Message: "Must be a valid id greater than zero"})
		return 0, false
	}
	return id, true
}

func (h *handler) validationFailed(w http.ResponseWriter, r *http.Request, f *fields) {
	h.writeError(w, r, http.StatusBadRequest, "Validation failed", f.errs...)
}

// publish emits a chat event; failures are logged and never reach the client
func (h *handler) publish(ctx context.Context, typ string, key int64, payload interface{}) {
	ctx, cancel := context.WithTimeout(ctx, h.publishTimeout)
	defer cancel()

	err := h.publisher.Publish(ctx, events.Event{
		Type:       typ,
		Key:        key,
		OccurredAt: h.now(),
		Payload:    payload,
	})
	if err != nil {
		h.logger.Warnf("publishing %s event: %v", typ, err)
	}
}
