package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/sterlinglegal/backend/internal/model"
	"github.com/sterlinglegal/backend/internal/repository"
	"github.com/sterlinglegal/backend/internal/service"
	"github.com/sterlinglegal/backend/internal/validation"
)

const (
	defaultMaxBodyBytes = 64 << 10
	maxUserAgentLength  = 500
)

const (
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidBody      = "Invalid request body"
	msgDBUnavailable    = "Database connection failed. Please try again later."
	msgSaveFailed       = "Unable to save your message. Please try again or call us directly."
	msgThanks           = "Thank you for your message. We will get back to you within 24 hours."
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	clientIP       ClientIPResolver
	maxBodyBytes   int64
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService, cfg Config) *ContactHandler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	return &ContactHandler{
		contactService: contactService,
		clientIP:       NewClientIPResolver(cfg.TrustedProxyCount),
		maxBodyBytes:   maxBody,
	}
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles /api/contact.
// OPTIONS -> 200, non-POST -> 405, honeypot -> 400, invalid fields -> 400,
// storage failure -> 500, otherwise 200 whether or not the email went out.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	switch r.Method {
	case http.MethodOptions:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		w.Header().Set("Allow", "POST, OPTIONS")
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
		return
	}

	form, err := h.decodeForm(w, r)
	if err != nil {
		slog.DebugContext(ctx, "contact: unreadable body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	// スパム判定は他のチェックより先に行う
	if err := validation.CheckHoneypot(form.Honeypot); err != nil {
		slog.InfoContext(ctx, "contact: honeypot triggered", "remote_addr", r.RemoteAddr)
		writeError(w, http.StatusBadRequest, validation.MsgInvalidSubmission)
		return
	}

	form = validation.Normalize(form)
	if err := validation.Validate(form); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub := &model.Submission{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     model.OptionalString(form.Phone),
		Message:   form.Message,
		IPAddress: model.OptionalString(h.clientIP.ClientIP(r)),
		UserAgent: cleanHeaderText(r.UserAgent(), maxUserAgentLength),
	}

	result, err := h.contactService.Submit(ctx, sub)
	switch {
	case errors.Is(err, repository.ErrUnavailable):
		writeError(w, http.StatusInternalServerError, msgDBUnavailable)
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, msgSaveFailed)
		return
	}

	slog.InfoContext(ctx, "contact: submission stored",
		"submission_id", sub.ID,
		"notified", result.Delivered,
	)
	writeJSON(w, http.StatusOK, submitResponse{Success: true, Message: msgThanks})
}

// decodeForm reads the body as JSON, multipart or urlencoded depending on
// Content-Type. Missing fields decode as "".
func (h *ContactHandler) decodeForm(w http.ResponseWriter, r *http.Request) (model.ContactForm, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		var form model.ContactForm
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return model.ContactForm{}, err
		}
		return form, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(h.maxBodyBytes); err != nil {
			return model.ContactForm{}, err
		}
	default:
		if err := r.ParseForm(); err != nil {
			return model.ContactForm{}, err
		}
	}

	return model.ContactForm{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Phone:    r.PostForm.Get("phone"),
		Message:  r.PostForm.Get("message"),
		Honeypot: r.PostForm.Get(model.HoneypotField),
	}, nil
}

// cleanHeaderText replaces invalid UTF-8 with U+FFFD and caps the length.
// net/http passes header bytes through unchecked.
func cleanHeaderText(s string, limit int) string {
	return truncateRunes(strings.ToValidUTF8(s, "\uFFFD"), limit)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
