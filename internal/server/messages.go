package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/valyala/fastjson"

	"groupchat/internal/events"
	"groupchat/internal/storage"
)

var attachmentFields = [...]string{"attachmentUrl", "attachmentType", "attachmentName"}

// attachment reads the attachment triple; either all three fields are set or none
func (f *fields) attachment() *storage.Attachment {
	set := 0
	for _, name := range attachmentFields {
		if f.present(name) {
			set++
		}
	}
	if set == 0 {
		return nil
	}
	if set < len(attachmentFields) {
		for _, name := range attachmentFields {
			if !f.present(name) {
				f.fail(name, "Required when another attachment field is set")
			}
		}
		return nil
	}

	a := &storage.Attachment{
		URL:  f.requiredString("attachmentUrl"),
		Type: f.requiredString("attachmentType"),
		Name: f.requiredString("attachmentName"),
	}
	if a.Type != "" && !storage.ValidAttachmentType(a.Type) {
		f.fail("attachmentType", "Must be one of image, file, gif")
	}
	return a
}

// content reads an optional string defaulting to empty
func (f *fields) content() string {
	if !f.present("content") {
		return ""
	}
	v := f.v.Get("content")
	if v.Type() != fastjson.TypeString {
		f.fail("content", "Must be a string")
		return ""
	}
	return string(v.GetStringBytes())
}

// messages handles HTTP requests on "GET /api/messages" endpoint
func (h *handler) messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.GetMessages(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if messages == nil {
		messages = []storage.Message{}
	}

	h.writeJSON(w, r, http.StatusOK, messages)
}

// message handles HTTP requests on "GET /api/messages/{id}" endpoint
func (h *handler) message(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	m, err := h.store.GetMessageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrMessageNotFound) {
			h.writeError(w, r, http.StatusNotFound, "Message not found")
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, m)
}

// createMessage handles HTTP requests on "POST /api/messages" endpoint
func (h *handler) createMessage(w http.ResponseWriter, r *http.Request) {
	h.withBody(w, r, func(f *fields) {
		in := storage.NewMessage{
			Content:    f.content(),
			Username:   f.requiredString("username"),
			UserID:     f.requiredID("userId"),
			Attachment: f.attachment(),
		}
		if in.Attachment == nil && strings.TrimSpace(in.Content) == "" && f.valid() {
			f.fail("content", "Must not be empty without an attachment")
		}
		if !f.valid() {
			h.validationFailed(w, r, f)
			return
		}

		m, err := h.store.CreateMessage(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				h.writeError(w, r, http.StatusBadRequest, "Validation failed",
					fieldError{Field: "userId", Message: "User does not exist"})
			case errors.Is(err, storage.ErrInvalidAttachment):
				h.writeError(w, r, http.StatusBadRequest, "Validation failed",
					fieldError{Field: "attachmentType", Message: err.Error()})
			default:
				h.internalError(w, r, err)
			}
			return
		}

		h.publish(r.Context(), events.MessageCreated, m.ID, m)
		h.writeJSON(w, r, http.StatusCreated, m)
	})
}

// updateMessage handles HTTP requests on "PATCH /api/messages/{id}" endpoint
func (h *handler) updateMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	h.withBody(w, r, func(f *fields) {
		userID := f.requiredID("userId")
		patch := storage.MessagePatch{Content: f.requiredString("content")}
		if !f.valid() {
			h.validationFailed(w, r, f)
			return
		}

		m, err := h.store.UpdateMessage(r.Context(), id, userID, patch)
		if err != nil {
			if errors.Is(err, storage.ErrMessageNotFound) {
				h.writeError(w, r, http.StatusNotFound, "Message not found")
				return
			}
			h.internalError(w, r, err)
			return
		}

		h.publish(r.Context(), events.MessageEdited, m.ID, m)
		h.writeJSON(w, r, http.StatusOK, m)
	})
}

type deletedMessage struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
}

// deleteMessage handles HTTP requests on "DELETE /api/messages/{id}" endpoint
func (h *handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	h.withBody(w, r, func(f *fields) {
		userID := f.requiredID("userId")
		if !f.valid() {
			h.validationFailed(w, r, f)
			return
		}

		deleted, err := h.store.DeleteMessage(r.Context(), id, userID)
		if err != nil {
			h.internalError(w, r, err)
			return
		}
		if !deleted {
			h.writeError(w, r, http.StatusNotFound, "Message not found")
			return
		}

		h.publish(r.Context(), events.MessageDeleted, id, deletedMessage{ID: id, UserID: userID})
		w.WriteHeader(http.StatusNoContent)
	})
}
