package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"reserva-eva/models"
)

var exportBaseHeaders = []string{
	"ID Reserva", "Status Pagamento", "Nome", "CPF", "Telefone",
	"E-mail", "Data Nasc.", "Horário Registro", "Total Pessoas",
}

func paymentLabel(paid bool) string {
	if paid {
		return "PAGO"
	}
	return "PENDENTE"
}

// exportTable builds the header row and one row per booking for a date's
// export: the base columns followed by one column per live tier
func exportTable(tiers []models.AgeTier, bookings []models.BookingDetail) ([]string, [][]string) {
	headers := append([]string(nil), exportBaseHeaders...)
	for _, tier := range tiers {
		headers = append(headers, tier.Label)
	}

	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		row := []string{
			b.ID,
			paymentLabel(b.Paid),
			b.Name,
			b.CPF,
			b.Phone,
			b.Email,
			b.BirthDate,
			b.Timestamp,
			strconv.Itoa(b.TotalGuests),
		}
		for _, tier := range tiers {
			row = append(row, strconv.Itoa(b.GuestBreakdown[tier.ID]))
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// ExportDayCSV renders a date's bookings as a semicolon-separated CSV with
// a UTF-8 byte-order marker. Fields containing the delimiter are quoted.
func ExportDayCSV(date string) ([]byte, string, error) {
	bookings := siteStore.DayBookings(date)
	if len(bookings) == 0 {
		return nil, "", fmt.Errorf("no bookings for %s", date)
	}

	headers, rows := exportTable(siteStore.Tiers(), bookings)

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(headers); err != nil {
		return nil, "", err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("reservas-vista-alegre-%s.csv", date)
	return buf.Bytes(), filename, nil
}

// ExportDayXLSX renders the same table as a spreadsheet
func ExportDayXLSX(date string) ([]byte, string, error) {
	bookings := siteStore.DayBookings(date)
	if len(bookings) == 0 {
		return nil, "", fmt.Errorf("no bookings for %s", date)
	}

	headers, rows := exportTable(siteStore.Tiers(), bookings)

	f := excelize.NewFile()
	sheet := "Reservas"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate spreadsheet: %w", err)
	}

	filename := fmt.Sprintf("reservas-vista-alegre-%s.xlsx", date)
	return buf.Bytes(), filename, nil
}
