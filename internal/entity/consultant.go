package entity

import (
	"errors"
	"time"
)

// Papéis aceitos no app de gestão
const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleConsultant = "consultant"
	RoleRecruiter  = "recruiter"
)

var ErrConsultantNotFound = errors.New("consultor não encontrado")

// Consultant espelha a linha de profiles do portal. O ID é o mesmo
// da conta na plataforma de auth.
type Consultant struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Login               string    `json:"login,omitempty"`
	Role                string    `json:"role"`
	NeedsPasswordChange bool      `json:"needs_password_change"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleConsultant, RoleRecruiter:
		return true
	}
	return false
}

// SplitName quebra o display name em primeiro nome + resto, como o
// portal espera gravar em profiles.
func SplitName(name string) (first, last string) {
	for i, r := range name {
		if r == ' ' {
			return name[:i], name[i+1:]
		}
	}
	return name, ""
}
