package famdash

import (
	"fmt"
	"math/rand"
	"time"
)

// ScheduleEntry is one line of the daily schedule: a time label and an
// activity label. Slice order is chronological for the day.
type ScheduleEntry struct {
	Time     string
	Activity string
}

// Forecast carries the day's weather summary plus an hourly temperature
// curve for the graph. Values come from mock generators today; a real
// weather integration would populate the same struct.
type Forecast struct {
	Location    string
	Description string
	// Temp is the current temperature, High/Low the daily extremes.
	Temp, High, Low int
	// Humidity and PrecipChance are percentages, Wind is mph.
	Humidity     int
	Wind         int
	PrecipChance int
	Unit         string
	// HourlyTemps holds one temperature per Hours entry (24 points, 0–23).
	HourlyTemps []float64
	Hours       []int
}

// DashboardData is the flat aggregate consumed by the renderer. It is
// constructed fresh per render and discarded afterwards.
type DashboardData struct {
	Date        time.Time
	DateText    string
	IsSchoolDay bool
	Weather     Forecast
	Schedule    []ScheduleEntry
	// Lunch is the school lunch menu; empty on non-school days.
	Lunch         []string
	Announcements []string
	// GeneratedAt is rendered into the footer. Kept in the bundle (rather
	// than read from the clock at draw time) so renders are reproducible.
	GeneratedAt time.Time
}

// Provider aggregates the mock data generators into one bundle per date.
type Provider struct {
	location string
}

// ProviderOption mutates the provider during construction.
type ProviderOption func(*Provider)

// WithLocation sets the location name shown in the weather box.
func WithLocation(name string) ProviderOption {
	return func(p *Provider) {
		if name != "" {
			p.location = name
		}
	}
}

// NewProvider builds a data provider with mock generators.
func NewProvider(opts ...ProviderOption) *Provider {
	p := &Provider{location: "Home"}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// DashboardData assembles the full bundle for the given date. Mock
// generators cannot fail, so there is no error return. Weekdays are school
// days; weekends get a different schedule set and no lunch menu.
func (p *Provider) DashboardData(date time.Time) DashboardData {
	return DashboardData{
		Date:          date,
		DateText:      FormatDate(date),
		IsSchoolDay:   IsSchoolDay(date),
		Weather:       MockWeather(date, p.location),
		Schedule:      DailySchedule(date),
		Lunch:         LunchMenu(date),
		Announcements: Announcements(date),
		GeneratedAt:   date,
	}
}

// FormatDate returns the header date text, e.g. "Monday, March 2, 2026".
func FormatDate(date time.Time) string {
	return date.Format("Monday, January 2, 2006")
}

// IsSchoolDay reports whether date falls on a weekday.
func IsSchoolDay(date time.Time) bool {
	wd := date.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// hourlyShape is a normalized 24-hour temperature curve (overnight low,
// afternoon peak) used to spread the day's low/high across the hours.
var hourlyShape = [24]float64{
	0.21, 0.11, 0.05, 0.00, 0.00, 0.05, 0.16, 0.32,
	0.47, 0.63, 0.79, 0.89, 1.00, 1.00, 0.95, 0.89,
	0.79, 0.68, 0.58, 0.47, 0.37, 0.32, 0.26, 0.21,
}

var weatherConditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Clear"}

// MockWeather returns a plausible forecast derived from the date. The
// generator is seeded by the calendar day, so the same date always yields
// the same forecast. Replace with a real API provider later.
func MockWeather(date time.Time, location string) Forecast {
	y, m, d := date.Date()
	rng := rand.New(rand.NewSource(int64(y*10000 + int(m)*100 + d)))

	temp := 60 + rng.Intn(25)
	high := temp + 5 + rng.Intn(6)
	low := temp - 5 - rng.Intn(6)

	hours := make([]int, 24)
	hourly := make([]float64, 24)
	for h := 0; h < 24; h++ {
		hours[h] = h
		hourly[h] = float64(low) + hourlyShape[h]*float64(high-low)
	}

	return Forecast{
		Location:     location,
		Description:  weatherConditions[rng.Intn(len(weatherConditions))],
		Temp:         temp,
		High:         high,
		Low:          low,
		Humidity:     40 + rng.Intn(31),
		Wind:         5 + rng.Intn(11),
		PrecipChance: rng.Intn(61),
		Unit:         "°F",
		HourlyTemps:  hourly,
		Hours:        hours,
	}
}

// Lines renders the forecast as the weather box text block.
func (f Forecast) Lines() []string {
	return []string{
		fmt.Sprintf("Weather for %s", f.Location),
		fmt.Sprintf("%s, %d%s", f.Description, f.Temp, f.Unit),
		fmt.Sprintf("High %d%s / Low %d%s", f.High, f.Unit, f.Low, f.Unit),
		fmt.Sprintf("Rain %d%%  Wind %d mph  Humidity %d%%", f.PrecipChance, f.Wind, f.Humidity),
	}
}

var weekdaySchedules = map[time.Weekday][]ScheduleEntry{
	time.Monday: {
		{"7:00 AM", "Wake up / Breakfast"},
		{"8:00 AM", "School drop-off"},
		{"9:00 AM", "Work from home"},
		{"12:00 PM", "Lunch"},
		{"3:30 PM", "School pickup"},
		{"5:00 PM", "Soccer practice (Sam)"},
		{"6:30 PM", "Dinner"},
		{"8:00 PM", "Bedtime routine"},
	},
	time.Tuesday: {
		{"7:00 AM", "Wake up / Breakfast"},
		{"8:00 AM", "School drop-off"},
		{"9:00 AM", "Work from home"},
		{"12:00 PM", "Lunch"},
		{"3:30 PM", "School pickup"},
		{"4:00 PM", "Piano lessons (Emma)"},
		{"6:00 PM", "Dinner"},
		{"7:30 PM", "Family game night"},
		{"8:30 PM", "Bedtime routine"},
	},
	time.Wednesday: {
		{"7:00 AM", "Wake up / Breakfast"},
		{"8:00 AM", "School drop-off"},
		{"9:00 AM", "Office day"},
		{"12:30 PM", "Team lunch"},
		{"3:30 PM", "School pickup (Grandma)"},
		{"6:30 PM", "Dinner"},
		{"8:00 PM", "Bedtime routine"},
	},
	time.Thursday: {
		{"7:00 AM", "Wake up / Breakfast"},
		{"8:00 AM", "School drop-off"},
		{"9:00 AM", "Work from home"},
		{"11:00 AM", "Parent-teacher conference"},
		{"12:00 PM", "Lunch"},
		{"3:30 PM", "School pickup"},
		{"4:30 PM", "Library trip"},
		{"6:00 PM", "Dinner"},
		{"8:00 PM", "Bedtime routine"},
	},
	time.Friday: {
		{"7:00 AM", "Wake up / Breakfast"},
		{"8:00 AM", "School drop-off"},
		{"9:00 AM", "Work from home"},
		{"12:00 PM", "Lunch"},
		{"3:30 PM", "School pickup"},
		{"5:00 PM", "Movie night prep"},
		{"6:00 PM", "Pizza dinner"},
		{"7:00 PM", "Family movie night"},
		{"9:00 PM", "Bedtime routine"},
	},
	time.Saturday: {
		{"8:00 AM", "Weekend breakfast"},
		{"9:30 AM", "Soccer game (Sam)"},
		{"11:00 AM", "Farmers market"},
		{"12:30 PM", "Lunch"},
		{"2:00 PM", "Park / Playground"},
		{"4:00 PM", "Free time"},
		{"6:00 PM", "Dinner"},
		{"8:00 PM", "Bedtime routine"},
	},
	time.Sunday: {
		{"8:30 AM", "Weekend breakfast"},
		{"10:00 AM", "Family walk"},
		{"11:30 AM", "Meal prep"},
		{"12:30 PM", "Lunch"},
		{"2:00 PM", "Quiet time / Naps"},
		{"3:30 PM", "Board games"},
		{"5:00 PM", "Early dinner"},
		{"6:00 PM", "Bath time"},
		{"7:30 PM", "Story time"},
		{"8:00 PM", "Bedtime"},
	},
}

// DailySchedule returns the schedule set for the date's weekday. Every
// weekday has a distinct mock schedule; the result is never empty.
func DailySchedule(date time.Time) []ScheduleEntry {
	src := weekdaySchedules[date.Weekday()]
	out := make([]ScheduleEntry, len(src))
	copy(out, src)
	return out
}

var lunchMenus = map[time.Weekday][]string{
	time.Monday: {
		"Main: Chicken Nuggets",
		"Side: Tater Tots",
		"Vegetable: Carrots & Ranch",
		"Fruit: Apple Slices",
		"Drink: Milk or Juice",
	},
	time.Tuesday: {
		"Main: Cheese Pizza",
		"Side: Garden Salad",
		"Vegetable: Cucumber Slices",
		"Fruit: Orange Wedges",
		"Drink: Milk or Juice",
	},
	time.Wednesday: {
		"Main: Spaghetti & Meatballs",
		"Side: Garlic Bread",
		"Vegetable: Green Beans",
		"Fruit: Fruit Cup",
		"Drink: Milk or Juice",
	},
	time.Thursday: {
		"Main: Turkey & Cheese Sandwich",
		"Side: Pretzels",
		"Vegetable: Baby Carrots",
		"Fruit: Banana",
		"Drink: Milk or Juice",
	},
	time.Friday: {
		"Main: Fish Sticks",
		"Side: Mac & Cheese",
		"Vegetable: Corn",
		"Fruit: Strawberries",
		"Drink: Milk or Juice",
	},
}

// LunchMenu returns the school lunch menu for the date, or nil on weekends.
func LunchMenu(date time.Time) []string {
	if !IsSchoolDay(date) {
		return nil
	}
	src := lunchMenus[date.Weekday()]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

var (
	schoolAnnouncements = []string{
		"Library books due Friday",
		"Soccer practice 5pm Tuesday",
		"Piano recital next Saturday",
		"Check backpacks & water bottles",
	}
	weekendAnnouncements = []string{
		"Family movie night 7pm",
		"Park visit if weather permits",
		"Meal prep for the week",
		"Board game tournament!",
	}
)

// Announcements returns the reminder list for the date: a school-day set on
// weekdays, a weekend set otherwise.
func Announcements(date time.Time) []string {
	src := weekendAnnouncements
	if IsSchoolDay(date) {
		src = schoolAnnouncements
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
