package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"reserva-eva/models"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// formatDateLong renders "2024-07-13" as "13 de Julho de 2024"
func formatDateLong(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// formatBRL renders a price the way the site displays it: "1.234,56"
func formatBRL(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	intPart, decPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}
	return grouped.String() + "," + decPart
}

// ShareLink builds the WhatsApp deep link carrying the booking summary as a
// pre-filled message to the property's number
func ShareLink(booking models.BookingDetail) string {
	tiers := siteStore.Tiers()
	totalPrice := TotalPrice(tiers, booking.GuestBreakdown)

	var breakdown strings.Builder
	for _, tier := range tiers {
		if count := booking.GuestBreakdown[tier.ID]; count > 0 {
			breakdown.WriteString(fmt.Sprintf("\n- *%dx* %s", count, tier.Label))
		}
	}

	message := fmt.Sprintf(
		"*SOLICITAÇÃO DE RESERVA - VISTA ALEGRE*\n\n"+
			"✅ *Reserva:* #%s\n\n"+
			"👤 *Responsável:* %s\n"+
			"📅 *Data:* %s\n"+
			"👥 *Visitantes:* %d\n"+
			"%s\n\n"+
			"💰 *Valor Total:* R$ %s\n\n"+
			"_Olá! Acabei de solicitar meu Day Use pelo site. Gostaria de receber os dados do PIX para efetuar o pagamento e confirmar minha reserva!_",
		booking.ID, booking.Name, formatDateLong(booking.Date),
		booking.TotalGuests, breakdown.String(), formatBRL(totalPrice),
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s", cfg.WhatsAppNumber, url.QueryEscape(message))
}
