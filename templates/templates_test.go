package templates

import (
	"strings"
	"testing"

	"voyagebj-service/internal/domain/entity"
)

func route() entity.Station {
	return entity.Station{
		Type:        entity.NodeRoute,
		Name:        "Cotonou - Parakou",
		CompanyName: "Global Trans Co.",
		Location:    "Cotonou",
		PointA:      "Cotonou",
		PointB:      "Parakou",
		Price:       5000,
		WorkDays:    []entity.DayCode{entity.Monday, entity.Friday},
	}
}

func TestDescribeRouteWithEveryTemplate(t *testing.T) {
	for i := 0; i < DescriptionCount(); i++ {
		text, err := DescribeRouteWith(route(), i)
		if err != nil {
			t.Fatalf("template %d: %v", i, err)
		}
		if !strings.Contains(text, "Parakou") {
			t.Fatalf("template %d does not name the destination: %q", i, text)
		}
		if strings.Contains(text, "<no value>") {
			t.Fatalf("template %d left a blank: %q", i, text)
		}
	}
}

func TestDescribeRouteFallbacks(t *testing.T) {
	bare := route()
	bare.CompanyName = ""
	bare.Location = ""
	bare.WorkDays = nil

	cases := []struct {
		index int
		want  string
	}{
		{0, "notre compagnie"},
		{0, "notre gare"},
		{3, "jours ouvrables"},
		{8, "jours de semaine"},
		{9, "Gare centrale"},
		{0 + DescriptionCount(), "notre compagnie"},
		{-1, "la gare"},
	}

	for _, tt := range cases {
		text, err := DescribeRouteWith(bare, tt.index)
		if err != nil {
			t.Fatalf("index %d: %v", tt.index, err)
		}
		if !strings.Contains(text, tt.want) {
			t.Fatalf("index %d: %q does not contain %q", tt.index, text, tt.want)
		}
	}
}

func TestDescribeRoutePremium(t *testing.T) {
	r := route()
	text, _ := DescribeRouteWith(r, 7)
	if !strings.Contains(text, "5000 FCFA") || strings.Contains(text, "Premium") {
		t.Fatalf("standard text=%q", text)
	}

	r.PricePremium = 8000
	text, _ = DescribeRouteWith(r, 7)
	if !strings.Contains(text, "Premium à 8000 FCFA") {
		t.Fatalf("premium text=%q", text)
	}
}

func TestDescribeRouteMissingEndpoints(t *testing.T) {
	r := route()
	r.PointB = ""
	text, err := DescribeRoute(r)
	if err != nil || text != MissingEndpointsText {
		t.Fatalf("DescribeRoute=(%q, %v)", text, err)
	}
}

func TestReservationText(t *testing.T) {
	res := entity.Reservation{
		ID:            "res-1",
		ClientName:    "Amina Client",
		RouteSummary:  "Cotonou vers Parakou",
		DepartureDate: "2024-01-01",
		DepartureTime: "07:00",
		TicketClass:   entity.ClassPremium,
		PricePaid:     7500,
	}

	booked, err := ReservationText(entity.ReservationBooked, res)
	if err != nil {
		t.Fatalf("booked: %v", err)
	}
	for _, want := range []string{"Amina Client", "res-1", "7500 FCFA", "2024-01-01 à 07:00", "PREMIUM"} {
		if !strings.Contains(booked, want) {
			t.Fatalf("booked text %q does not contain %q", booked, want)
		}
	}

	fulfilled, err := ReservationText(entity.ReservationFulfilled, res)
	if err != nil || !strings.Contains(fulfilled, "terminé") {
		t.Fatalf("fulfilled=(%q, %v)", fulfilled, err)
	}

	if s := ReservationSubject(entity.ReservationFulfilled, res); !strings.HasPrefix(s, "Voyage terminé") {
		t.Fatalf("subject=%q", s)
	}
}
