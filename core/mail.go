package core

import (
	"bytes"
	"embed"
	htmltmpl "html/template"
	"net/mail"
	"strings"
	"sync"
	texttmpl "text/template"

	"github.com/pkg/errors"
)

//go:embed templates
var templatesFS embed.FS

var (
	textTemplates *texttmpl.Template
	htmlTemplates *htmltmpl.Template
	tmplInit      sync.Once
)

type (
	EmailMessage struct {
		To      []mail.Address
		Cc      []mail.Address
		Bcc     []mail.Address
		Subject string
		BodyStr string // simple text/plain, non-templated content

		// templated contents
		TemplateName string // without ext
		TemplateData interface{}
		TextContent  string
		HTMLContent  string
	}

	// ContextData wraps template data with app-level context.
	ContextData struct {
		AppName         string
		FrontendBaseURL string
		Data            interface{}
	}

	// EmailService is any service that can send emails.
	EmailService interface {
		// SendMessages sends messages concurrently.
		SendMessages(messages ...*EmailMessage)
	}
)

// ParseEmailTemplates loads the embedded email templates; called once at startup.
func ParseEmailTemplates(logger Logger) {
	tmplInit.Do(func() {
		var err error
		if textTemplates, err = texttmpl.ParseFS(templatesFS, "templates/*.txt"); err != nil {
			logger.Fatal("parsing text email templates", err)
		}
		if htmlTemplates, err = htmltmpl.ParseFS(templatesFS, "templates/*.html"); err != nil {
			// html alternatives are optional
			htmlTemplates = nil
		}
	})
}

// Render renders the message contents from its template (or plain body).
func (m *EmailMessage) Render(conf *Config) error {
	if m.BodyStr != "" {
		m.TextContent = m.BodyStr
		return nil
	}
	if m.TemplateName == "" {
		return nil
	}

	data := ContextData{
		AppName:         conf.AppName,
		FrontendBaseURL: conf.FrontendBaseURL,
		Data:            m.TemplateData,
	}

	var txt bytes.Buffer
	if err := textTemplates.ExecuteTemplate(&txt, m.TemplateName+".txt", data); err != nil {
		return errors.Wrapf(err, "executing template %q", m.TemplateName)
	}
	m.TextContent = strings.TrimSpace(txt.String())

	if htmlTemplates != nil {
		if tmpl := htmlTemplates.Lookup(m.TemplateName + ".html"); tmpl != nil {
			var html bytes.Buffer
			if err := tmpl.Execute(&html, data); err != nil {
				return errors.Wrapf(err, "executing template %q", m.TemplateName)
			}
			m.HTMLContent = html.String()
		}
	}
	return nil
}

func (m *EmailMessage) HasRecipients() bool {
	return (len(m.To) + len(m.Cc) + len(m.Bcc)) > 0
}

func (m *EmailMessage) HasContent() bool {
	return m.TextContent != "" || m.HTMLContent != ""
}
