package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates
var templates embed.FS

func NewEmailSender(host string, port int, user, password, portalURL string) *EmailSender {
	return &EmailSender{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		PortalURL: portalURL,
	}
}

// SendCredentials envia a senha temporária do consultor.
func (s *EmailSender) SendCredentials(to, name, login, tempPassword string) error {
	data := CredentialsEmailData{
		Name:         name,
		Login:        login,
		TempPassword: tempPassword,
		PortalURL:    s.PortalURL,
	}

	t, err := template.ParseFS(templates, "templates/credentials.html")
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "nao-responda@liguemedicina.com")
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s, seu acesso ao portal de gestão chegou 🔑", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
