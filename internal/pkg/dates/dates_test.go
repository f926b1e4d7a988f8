package dates

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name    string
		start   time.Time
		days    int
		wantEnd time.Time
		wantRet time.Time
	}{
		{"single day", date(2024, time.March, 11), 1, date(2024, time.March, 11), date(2024, time.March, 12)},
		{"month rollover", date(2024, time.January, 30), 3, date(2024, time.February, 1), date(2024, time.February, 2)},
		{"leap year", date(2024, time.February, 28), 2, date(2024, time.February, 29), date(2024, time.March, 1)},
		{"non leap year", date(2023, time.February, 28), 2, date(2023, time.March, 1), date(2023, time.March, 2)},
		{"year rollover", date(2023, time.December, 30), 4, date(2024, time.January, 2), date(2024, time.January, 3)},
	}
	for _, c := range cases {
		end, ret, err := Calculate(c.start, c.days)
		if err != nil {
			t.Fatalf("%s: Calculate returned error: %v", c.name, err)
		}
		if !end.Equal(c.wantEnd) {
			t.Errorf("%s: end = %v, want %v", c.name, end, c.wantEnd)
		}
		if !ret.Equal(c.wantRet) {
			t.Errorf("%s: return = %v, want %v", c.name, ret, c.wantRet)
		}
	}
}

func TestCalculateInvalidDayCount(t *testing.T) {
	for _, days := range []int{0, -1, -30} {
		_, _, err := Calculate(date(2024, time.January, 1), days)
		if !errors.Is(err, ErrInvalidDayCount) {
			t.Errorf("Calculate(days=%d) error = %v, want ErrInvalidDayCount", days, err)
		}
	}
}

func TestCalculateNormalizesStart(t *testing.T) {
	start := time.Date(2024, time.May, 10, 23, 45, 0, 0, time.UTC)
	end, _, err := Calculate(start, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !end.Equal(date(2024, time.May, 10)) {
		t.Errorf("end = %v, want midnight of the same day", end)
	}
}
