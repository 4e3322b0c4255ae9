// Package notify sends best effort email notifications about new submissions.
package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/KittyCore/portfolio/internal/db/models"
)

// Message kinds, also used as metric labels.
const (
	KindContact    = "contact"
	KindSupport    = "support"
	KindFeedback   = "feedback"
	KindAppRequest = "app_request"
)

const (
	notProvided = "Not provided"
	stampFormat = "2006-01-02 15:04:05"
)

// Message is one plain text notification.
type Message struct {
	Kind    string
	Subject string
	Body    string
}

func orNotProvided(s string) string {
	if s == "" {
		return notProvided
	}

	return s
}

func stamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}

	return t.Format(stampFormat)
}

// Stars renders a rating as repeated star emoji.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}

	return strings.Repeat("⭐", n)
}

// ContactMessage describes a new contact submission.
func ContactMessage(c *models.ContactSubmission) Message {
	return Message{
		Kind:    KindContact,
		Subject: "📬 CONTACT FORM: " + c.Name,
		Body: fmt.Sprintf("📬 NEW CONTACT FORM SUBMISSION!\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n\nTimestamp: %s\n",
			c.Name, c.Email, c.Message, stamp(c.Timestamp)),
	}
}

// SupportMessage describes a new support ticket.
func SupportMessage(t *models.SupportTicket) Message {
	page := t.Page
	if page == "" {
		page = "Unknown Page"
	}

	return Message{
		Kind:    KindSupport,
		Subject: "🆘 SUPPORT REQUEST: " + page,
		Body: fmt.Sprintf("🆘 NEW SUPPORT REQUEST!\n\nName: %s\nEmail: %s\nAffected Page: %s\n\n"+
			"Issue Description:\n%s\n\nTimestamp: %s\n",
			t.Name, orNotProvided(t.Email), t.Page, t.Issue, stamp(t.Timestamp)),
	}
}

// FeedbackMessage describes a new game review.
func FeedbackMessage(f *models.GameFeedback) Message {
	stars := Stars(f.Stars)

	return Message{
		Kind:    KindFeedback,
		Subject: fmt.Sprintf("🎮 GAME REVIEW: %s from %s", stars, f.Name),
		Body: fmt.Sprintf("🎮 NEW CATASTROPHE GAME REVIEW!\n\nName: %s\nEmail: %s\nRating: %s (%d/5)\n\n"+
			"Review:\n%s\n\nTimestamp: %s\n",
			f.Name, orNotProvided(f.Email), stars, f.Stars, f.Review, stamp(f.Timestamp)),
	}
}

// AppRequestMessage describes a new app or website request.
func AppRequestMessage(r *models.AppRequest) Message {
	return Message{
		Kind:    KindAppRequest,
		Subject: fmt.Sprintf("💡 APP REQUEST: %s from %s", orNotProvided(r.Type), r.Name),
		Body: fmt.Sprintf("💡 NEW APP/WEBSITE REQUEST!\n\nName: %s\nEmail: %s\nPhone: %s\nType: %s\n"+
			"Timeline: %s\nBudget: %s\n\nDetails:\n%s\n\nTimestamp: %s\n",
			r.Name, r.Email, orNotProvided(r.Phone), orNotProvided(r.Type),
			orNotProvided(r.ProjectTimeline), orNotProvided(r.Budget), r.ProjectDetails, stamp(r.TimeSubmitted)),
	}
}
