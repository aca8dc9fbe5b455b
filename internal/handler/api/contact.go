// Copyright (c) 2025-2026 Maison Aubépine
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/aubepine/site-go/internal/i18n"
	"github.com/aubepine/site-go/internal/mailer"
	"github.com/aubepine/site-go/internal/middleware"
)

// contactSanitizer strips any markup from visitor-supplied text before it is
// interpolated into email HTML.
var contactSanitizer = bluemonday.StrictPolicy()

// ContactRequest is the body for POST /api/contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse carries the provider id of the message delivered to the
// hotel inbox.
type ContactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Contact handles POST /api/contact. Two emails go out concurrently: the
// message to the hotel inbox, which must succeed, and a best-effort
// confirmation to the visitor, which is only logged on failure.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	lang := string(middleware.GetLocale(r))

	var req ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, i18n.T(lang, "contact.missing_fields"), nil)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		WriteBadRequest(w, i18n.T(lang, "contact.missing_fields"), nil)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		WriteBadRequest(w, i18n.T(lang, "contact.invalid_email"), nil)
		return
	}

	hotelEmail := h.buildHotelEmail(req)
	confirmEmail := h.buildConfirmationEmail(req, lang)

	var hotelID string
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		id, err := h.mailer.Send(ctx, hotelEmail)
		if err != nil {
			return fmt.Errorf("sending contact message to hotel: %w", err)
		}
		hotelID = id
		return nil
	})
	g.Go(func() error {
		if _, err := h.mailer.Send(ctx, confirmEmail); err != nil {
			h.logger.Warn("contact confirmation email failed",
				"category", "mail",
				"recipient", req.Email,
				"error", err,
			)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		h.logger.Error("contact message delivery failed",
			"category", "mail",
			"sender", req.Email,
			"error", err,
		)
		WriteInternalError(w, i18n.T(lang, "contact.send_failed"))
		return
	}

	WriteSuccess(w, ContactResponse{
		ID:      hotelID,
		Message: i18n.T(lang, "contact.sent"),
	}, nil)
}

// buildHotelEmail renders the visitor's message for the hotel inbox. All
// visitor-controlled text is escaped before interpolation.
func (h *Handler) buildHotelEmail(req ContactRequest) mailer.Email {
	name := contactSanitizer.Sanitize(req.Name)
	email := contactSanitizer.Sanitize(req.Email)
	subject := contactSanitizer.Sanitize(req.Subject)
	message := contactSanitizer.Sanitize(req.Message)

	body := fmt.Sprintf(`<h2>Nouveau message de contact</h2>
<p><strong>Nom :</strong> %s<br>
<strong>Email :</strong> %s</p>
<p>%s</p>`, name, email, strings.ReplaceAll(message, "\n", "<br>"))

	return mailer.Email{
		From:     h.fromEmail,
		To:       h.hotelEmail,
		ReplyTo:  req.Email,
		Subject:  "[Contact] " + subject,
		HTMLBody: body,
		TextBody: fmt.Sprintf("Nom : %s\nEmail : %s\n\n%s", req.Name, req.Email, req.Message),
	}
}

// buildConfirmationEmail renders the localized receipt sent back to the
// visitor.
func (h *Handler) buildConfirmationEmail(req ContactRequest, lang string) mailer.Email {
	name := contactSanitizer.Sanitize(req.Name)

	return mailer.Email{
		From:     h.fromEmail,
		To:       req.Email,
		Subject:  i18n.T(lang, "contact.confirmation_subject"),
		HTMLBody: fmt.Sprintf("<p>%s</p>", i18n.T(lang, "contact.confirmation_body", name)),
		TextBody: i18n.T(lang, "contact.confirmation_body", req.Name),
	}
}
