package utils

import (
	"testing"

	"voyagebj-service/internal/domain/entity"
)

func TestDayCodeOf(t *testing.T) {
	cases := map[string]entity.DayCode{
		"2024-01-01": entity.Monday,
		"2024-01-02": entity.Tuesday,
		"2024-01-03": entity.Wednesday,
		"2024-01-04": entity.Thursday,
		"2024-01-05": entity.Friday,
		"2024-01-06": entity.Saturday,
		"2024-01-07": entity.Sunday,
	}

	for date, want := range cases {
		d, err := ParseDate(date)
		if err != nil {
			t.Fatalf("ParseDate(%s): %v", date, err)
		}
		if got := DayCodeOf(d); got != want {
			t.Fatalf("DayCodeOf(%s)=%s, want %s", date, got, want)
		}
	}
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	for _, v := range []string{"", "01/01/2024", "2024-13-01", "2024-02-30"} {
		if _, err := ParseDate(v); err == nil {
			t.Fatalf("ParseDate(%q) accepted", v)
		}
	}
}

func TestIsClock(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{"07:00", true},
		{"23:59", true},
		{"7:00", false},
		{"24:00", false},
		{"07h00", false},
		{"", false},
	}

	for _, tt := range cases {
		if got := IsClock(tt.value); got != tt.want {
			t.Fatalf("IsClock(%q)=%v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(7500); got != "7500 FCFA" {
		t.Fatalf("FormatPrice=%q", got)
	}
	if !ContainsFold("Cotonou, Akpakpa", "cotonou") {
		t.Fatal("ContainsFold is case sensitive")
	}
}
