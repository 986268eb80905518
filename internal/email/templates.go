package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

var layout = template.Must(template.New("layout").Parse(`<!doctype html>
<html><body style="font-family:Helvetica,Arial,sans-serif;color:#111;max-width:560px;margin:0 auto;padding:24px">
<h2 style="font-weight:600">{{.Title}}</h2>
{{range .Paragraphs}}<p>{{.}}</p>
{{end}}{{if .ActionURL}}<p><a href="{{.ActionURL}}" style="background:#000;color:#fff;padding:10px 16px;border-radius:4px;text-decoration:none">{{.ActionLabel}}</a></p>
<p style="font-size:12px;color:#666">Or copy this link: {{.ActionURL}}</p>
{{end}}{{if .Code}}<p style="font-size:28px;letter-spacing:6px;font-weight:700">{{.Code}}</p>
{{end}}{{if .Note}}<div style="border-left:3px solid #ddd;padding-left:12px;color:#444">{{.Note}}</div>
{{end}}<p style="font-size:12px;color:#999">Papermark</p>
</body></html>`))

type layoutData struct {
	Title       string
	Paragraphs  []string
	ActionURL   string
	ActionLabel string
	Code        string
	Note        template.HTML
}

var notePolicy = bluemonday.UGCPolicy()

// SanitizeNote strips unsafe markup from user provided text embedded in emails
func SanitizeNote(text string) string {
	return notePolicy.Sanitize(text)
}

func render(to, subject string, data layoutData) (*Message, error) {
	var buf bytes.Buffer
	if err := layout.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render email %q: %w", subject, err)
	}
	return &Message{To: to, Subject: subject, HTML: buf.String()}, nil
}

// LoginLink renders the magic link email
func LoginLink(to, url string) (*Message, error) {
	return render(to, "Your Papermark login link", layoutData{
		Title:       "Sign in to Papermark",
		Paragraphs:  []string{"Click the button below to sign in. The link is valid for 24 hours and can be used once."},
		ActionURL:   url,
		ActionLabel: "Sign in",
	})
}

// Invitation renders the team invitation email with an optional personal note
func Invitation(to, teamName, inviter, url, note string) (*Message, error) {
	return render(to, fmt.Sprintf("You are invited to join %s on Papermark", teamName), layoutData{
		Title:       "Team invitation",
		Paragraphs:  []string{fmt.Sprintf("%s invited you to join the team %s. The invitation expires in 7 days.", inviter, teamName)},
		ActionURL:   url,
		ActionLabel: "Accept invitation",
		Note:        template.HTML(SanitizeNote(note)),
	})
}

// OneTimeCode renders the link verification code email
func OneTimeCode(to, code, target string) (*Message, error) {
	return render(to, "Your Papermark verification code", layoutData{
		Title:      "Verify your email",
		Paragraphs: []string{fmt.Sprintf("Use this code to access %s. It expires in 10 minutes.", target)},
		Code:       code,
	})
}

// DocumentViewed renders the owner notification sent when someone opens a link
func DocumentViewed(to, documentName, viewer, linkName, url string) (*Message, error) {
	if viewer == "" {
		viewer = "Someone"
	}
	return render(to, "Your document has been viewed", layoutData{
		Title:       "Your document has been viewed",
		Paragraphs:  []string{fmt.Sprintf("%s just viewed %s through the link %s.", viewer, documentName, linkName)},
		ActionURL:   url,
		ActionLabel: "See analytics",
	})
}

// RenewalReminder renders the upcoming subscription renewal email
func RenewalReminder(to, teamName, plan, renewsOn string) (*Message, error) {
	return render(to, "Your Papermark subscription renews soon", layoutData{
		Title:      "Upcoming renewal",
		Paragraphs: []string{fmt.Sprintf("The %s plan of %s renews on %s.", plan, teamName, renewsOn)},
	})
}
