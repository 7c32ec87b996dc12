package entity

import (
	"context"
	"strconv"
	"time"
)

const (
	CommissionPending   = "PENDING"
	CommissionApproved  = "APPROVED"
	CommissionPaid      = "PAID"
	CommissionCancelled = "CANCELLED"
)

// Commission é a comissão de um consultor sobre uma venda. Valores em
// centavos, como em todo o resto do sistema.
type Commission struct {
	ID           string    `json:"id"`
	ConsultantID string    `json:"consultant_id"`
	LeadID       string    `json:"lead_id,omitempty"`
	AmountCents  int       `json:"amount_cents"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CommissionSummary agrega as comissões de um consultor por status.
type CommissionSummary struct {
	Count         int    `json:"count"`
	TotalCents    int    `json:"total_cents"`
	PendingCents  int    `json:"pending_cents"`
	ApprovedCents int    `json:"approved_cents"`
	PaidCents     int    `json:"paid_cents"`
	Total         string `json:"total"`
	Pending       string `json:"pending"`
	Approved      string `json:"approved"`
	Paid          string `json:"paid"`
}

// SummarizeCommissions soma por status, ignorando canceladas no total.
func SummarizeCommissions(commissions []*Commission) CommissionSummary {
	var s CommissionSummary
	for _, c := range commissions {
		s.Count++
		switch c.Status {
		case CommissionPending:
			s.PendingCents += c.AmountCents
		case CommissionApproved:
			s.ApprovedCents += c.AmountCents
		case CommissionPaid:
			s.PaidCents += c.AmountCents
		case CommissionCancelled:
			continue
		}
		s.TotalCents += c.AmountCents
	}

	s.Total = FormatBRL(s.TotalCents)
	s.Pending = FormatBRL(s.PendingCents)
	s.Approved = FormatBRL(s.ApprovedCents)
	s.Paid = FormatBRL(s.PaidCents)
	return s
}

// FormatBRL formata centavos como moeda ("R$ 1.234,56").
func FormatBRL(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	reais := strconv.Itoa(cents / 100)

	// separador de milhar
	var out []byte
	for i, d := range []byte(reais) {
		if i > 0 && (len(reais)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	centavos := cents % 100
	return sign + "R$ " + string(out) + "," + pad2(centavos)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

type CommissionRepositoryInterface interface {
	ListByConsultant(ctx context.Context, consultantID string) ([]*Commission, error)
}
