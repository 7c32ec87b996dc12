package mail

type CredentialsEmailData struct {
	Name         string
	Login        string
	TempPassword string
	PortalURL    string
}

type EmailSender struct {
	Host      string
	Port      int
	User      string
	Password  string
	PortalURL string
}
