package mailer

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

// Small template registry for transactional mail. Each entry renders a
// subject, a plain-text body and an HTML body from the job's Data map.

const PasswordReset = "password_reset"

type renderedEmail struct {
	Subject string
	Text    string
	HTML    string
}

var textTemplates = texttpl.Must(texttpl.New("password_reset_text").Parse(
	`Hi {{or .Username "there"}},

We received a request to reset the password on your account.

Open the link below to choose a new password. The link is valid for {{.ExpiresIn}} and can be used only once.

{{.ResetURL}}

If you did not request this, you can safely ignore this email.
`))

var htmlTemplates = htmltpl.Must(htmltpl.New("password_reset_html").Parse(
	`<p>Hi {{or .Username "there"}},</p>
<p>We received a request to reset the password on your account.</p>
<p>Open the link below to choose a new password. The link is valid for {{.ExpiresIn}} and can be used only once.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>
`))

// Render renders the named template with data.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case PasswordReset:
		var tb, hb bytes.Buffer
		if err = textTemplates.ExecuteTemplate(&tb, "password_reset_text", data); err != nil {
			return "", "", "", err
		}
		if err = htmlTemplates.ExecuteTemplate(&hb, "password_reset_html", data); err != nil {
			return "", "", "", err
		}
		return "Reset your password", tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email template %q", name)
	}
}
