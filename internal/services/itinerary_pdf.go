package services

import (
	"bytes"
	"fmt"
	"strings"

	"tripoptimizer/internal/domain"
	"tripoptimizer/internal/domain/models"
	"tripoptimizer/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF assembles the itinerary and renders it as a downloadable PDF.
// Rendering is read-only with respect to the data model; a rendering failure
// never rolls anything back.
func (s ItineraryService) RenderPDF(tripOptionID int64) ([]byte, string, error) {
	doc, err := s.Assemble(tripOptionID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "itinerary", "render_pdf", fmt.Sprintf("trip_option_id=%d", tripOptionID))

	pdfBytes, err := buildItineraryPDF(doc)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render itinerary", Err: err}
	}

	filename := fmt.Sprintf("TripOptimizer-Itinerary-%d.pdf", tripOptionID)
	return pdfBytes, filename, nil
}

func buildItineraryPDF(d models.ItineraryDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Itinerary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Traveler    : %s (%s)", safe(d.TravelerName, "-"), safe(d.TravelerEmail, "-")),
		fmt.Sprintf("Trip        : %s -> %s", safe(d.Origin, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Dates       : %s - %s (%d days)", safe(dateOnly(d.StartDate), "-"), safe(dateOnly(d.EndDate), "-"), d.NumberOfDays),
		fmt.Sprintf("Status      : %s", safe(d.BookingStatus, "-")),
		fmt.Sprintf("Flight      : %s %s (%s)", safe(d.Flight.Airline, "-"), safe(d.Flight.FlightNumber, ""), utils.FormatUSD(d.Flight.Price)),
		fmt.Sprintf("Hotel       : %s (%s)", safe(d.Hotel.Name, "-"), utils.FormatUSD(d.Hotel.Price)),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Activities")
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	if len(d.Activities) == 0 {
		pdf.Cell(0, 6, "No activities selected.")
		pdf.Ln(6)
	}
	for i, a := range d.Activities {
		label := fmt.Sprintf("%d) %s [%s] %s, %d min", i+1, a.Name, a.Category, utils.FormatUSD(a.Price), a.DurationMinutes)
		if a.Locked {
			label += " (pinned)"
		}
		pdf.MultiCell(0, 6, label, "", "", false)
	}

	if len(d.Confirmations.Flight)+len(d.Confirmations.Hotel)+len(d.Confirmations.Activity) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, "Confirmations")
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		for _, c := range d.Confirmations.Flight {
			pdf.Cell(0, 6, fmt.Sprintf("Flight %s %s: %s", safe(c.Airline, "-"), c.FlightNumber, safe(c.ConfirmationCode, "-")))
			pdf.Ln(6)
		}
		for _, c := range d.Confirmations.Hotel {
			pdf.Cell(0, 6, fmt.Sprintf("Hotel %s: %s", safe(c.HotelName, "-"), safe(c.ConfirmationCode, "-")))
			pdf.Ln(6)
		}
		for _, c := range d.Confirmations.Activity {
			pdf.Cell(0, 6, fmt.Sprintf("Activity %s: %s", safe(c.ActivityName, "-"), safe(c.ConfirmationCode, "-")))
			pdf.Ln(6)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatUSD(d.TotalCost))
	pdf.Ln(8)

	if d.Payment != nil {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Paid %s (ref %s)", utils.FormatAmount(d.Payment.Amount, d.Payment.Currency), safe(d.Payment.IntentID, "-")))
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please keep this itinerary with you during your trip. Confirmation codes are required at check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}
