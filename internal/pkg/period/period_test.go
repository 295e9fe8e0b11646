package period

import (
	"errors"
	"testing"
	"time"
)

func TestParseRange(t *testing.T) {
	r, err := ParseRange("2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("ParseRange returned error: %v", err)
	}
	if r.StartString() != "2025-06-01" || r.EndString() != "2025-06-30" {
		t.Errorf("ParseRange = [%s, %s], want [2025-06-01, 2025-06-30]", r.StartString(), r.EndString())
	}

	invalid := [][2]string{
		{"06-01-2025", "2025-06-30"},
		{"2025-06-01", "30/06/2025"},
		{"", "2025-06-30"},
		{"2025-13-01", "2025-06-30"},
	}
	for _, c := range invalid {
		_, err := ParseRange(c[0], c[1])
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseRange(%q, %q) error = %v, want ErrInvalidDate", c[0], c[1], err)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		year, month int
		wantStart   string
		wantEnd     string
	}{
		{2025, 6, "2025-06-01", "2025-06-30"},
		{2024, 2, "2024-02-01", "2024-02-29"},
		{2025, 2, "2025-02-01", "2025-02-28"},
		{2025, 12, "2025-12-01", "2025-12-31"},
	}
	for _, c := range cases {
		r := MonthBounds(c.year, c.month)
		if r.StartString() != c.wantStart || r.EndString() != c.wantEnd {
			t.Errorf("MonthBounds(%d, %d) = [%s, %s], want [%s, %s]",
				c.year, c.month, r.StartString(), r.EndString(), c.wantStart, c.wantEnd)
		}
	}
}

func TestMonthToDate(t *testing.T) {
	today := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	r := MonthToDate(today)
	if r.StartString() != "2025-06-01" || r.EndString() != "2025-06-15" {
		t.Errorf("MonthToDate = [%s, %s], want [2025-06-01, 2025-06-15]", r.StartString(), r.EndString())
	}
}

func TestYearToDate(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	r := YearToDate(today)
	if r.StartString() != "2025-01-01" || r.EndString() != "2025-06-15" {
		t.Errorf("YearToDate = [%s, %s], want [2025-01-01, 2025-06-15]", r.StartString(), r.EndString())
	}
}

func TestContains(t *testing.T) {
	r := DateRange{
		Start: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
	cases := []struct {
		date time.Time
		want bool
	}{
		{time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC), true},
		{time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC), true},
		{time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), false},
		{time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), false},
	}
	for _, c := range cases {
		if got := r.Contains(c.date); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.date, got, c.want)
		}
	}
}

func TestIsBusinessDay(t *testing.T) {
	// 2025-06-02 is a Monday.
	for day := 2; day <= 6; day++ {
		d := time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
		if !IsBusinessDay(d) {
			t.Errorf("IsBusinessDay(%v) = false, want true", d)
		}
	}
	saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	if IsBusinessDay(saturday) || IsBusinessDay(sunday) {
		t.Error("IsBusinessDay should be false on weekends")
	}
}

func TestEachDay(t *testing.T) {
	r := MonthBounds(2025, 6)
	var days []string
	EachDay(r, func(day time.Time) {
		days = append(days, day.Format("2006-01-02"))
	})
	if len(days) != 30 {
		t.Fatalf("EachDay over June yielded %d days, want 30", len(days))
	}
	if days[0] != "2025-06-01" || days[29] != "2025-06-30" {
		t.Errorf("EachDay bounds = [%s, %s], want [2025-06-01, 2025-06-30]", days[0], days[29])
	}
}
