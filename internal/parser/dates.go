package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sdokania30/SayDone/pkg/datemath"
)

// dateRule is one entry in the ordered temporal pattern table. Rules are
// evaluated top to bottom and the first regex hit wins, so earlier rules
// deliberately shadow later ones ("this weekend" never reaches the weekday
// rule). resolve may return nil for references that are recognized but
// cannot be pinned to a date.
type dateRule struct {
	name    string
	re      *regexp.Regexp
	resolve func(match []string, now time.Time) *time.Time
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

func datePtr(t time.Time) *time.Time { return &t }

func compileDateRules() []dateRule {
	return []dateRule{
		{
			name: "end of day",
			re:   regexp.MustCompile(`(?i)\b(?:by )?eod\b`),
			resolve: func(_ []string, now time.Time) *time.Time {
				return datePtr(datemath.StartOfDay(now))
			},
		},
		{
			name: "in next N days",
			re:   regexp.MustCompile(`(?i)\bin (?:the )?next (\d+) days?\b`),
			resolve: func(match []string, now time.Time) *time.Time {
				n, err := strconv.Atoi(match[1])
				if err != nil {
					return nil
				}
				return datePtr(datemath.StartOfDay(now.AddDate(0, 0, n)))
			},
		},
		{
			name: "weekend",
			re:   regexp.MustCompile(`(?i)\b(?:this |the |over the )?weekend\b`),
			resolve: func(_ []string, now time.Time) *time.Time {
				return datePtr(datemath.ComingSaturday(now))
			},
		},
		{
			name: "this month",
			re:   regexp.MustCompile(`(?i)\b(?:sometime )?this month\b`),
			resolve: func(_ []string, now time.Time) *time.Time {
				return datePtr(datemath.MidMonth(now))
			},
		},
		{
			name: "next week",
			re:   regexp.MustCompile(`(?i)\bnext week\b`),
			resolve: func(_ []string, now time.Time) *time.Time {
				return datePtr(datemath.StartOfDay(now.AddDate(0, 0, 7)))
			},
		},
		{
			name: "seasonal",
			re:   regexp.MustCompile(`(?i)\b(?:holidays?|vacation|travel)\b`),
			resolve: func(_ []string, _ time.Time) *time.Time {
				// Recognized but deliberately unresolved: a vacation has no
				// fixed calendar date. Surfaces to callers the same way as
				// "no pattern matched".
				return nil
			},
		},
		{
			name: "today or tonight",
			re:   regexp.MustCompile(`(?i)\b(?:today|tonight)\b`),
			resolve: func(_ []string, now time.Time) *time.Time {
				return datePtr(datemath.StartOfDay(now))
			},
		},
		{
			name: "tomorrow",
			re:   regexp.MustCompile(`(?i)\btomorrow\b`),
			resolve: func(_ []string, now time.Time) *time.Time {
				return datePtr(datemath.StartOfDay(now.AddDate(0, 0, 1)))
			},
		},
		{
			name: "weekday",
			re:   regexp.MustCompile(`(?i)\b(?:on |next |by )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`),
			resolve: func(match []string, now time.Time) *time.Time {
				wd, ok := weekdays[strings.ToLower(match[1])]
				if !ok {
					return nil
				}
				return datePtr(datemath.NextWeekday(now, wd))
			},
		},
		{
			name: "day then month",
			re:   regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`),
			resolve: func(match []string, now time.Time) *time.Time {
				return explicitDate(match[1], match[2], now)
			},
		},
		{
			name: "month then day",
			re:   regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+(\d{1,2})(?:st|nd|rd|th)?\b`),
			resolve: func(match []string, now time.Time) *time.Time {
				return explicitDate(match[2], match[1], now)
			},
		},
	}
}

// explicitDate builds a calendar date from a day number and a three-letter
// month abbreviation, assuming the current year. Dates already behind the
// reference instant roll forward one year.
func explicitDate(dayStr, monthStr string, now time.Time) *time.Time {
	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 || day > 31 {
		return nil
	}
	month, ok := months[strings.ToLower(monthStr)]
	if !ok {
		return nil
	}

	resolved := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if resolved.Before(datemath.StartOfDay(now)) {
		resolved = resolved.AddDate(1, 0, 0)
	}
	return datePtr(resolved)
}

// resolveDate runs the ordered rule table against the clause. On a hit the
// matched span is stripped and evaluation stops; with no hit the clause is
// returned untouched and the date stays unspecified.
func (e *Engine) resolveDate(clause string, now time.Time) (*time.Time, string) {
	for _, rule := range e.dateRules {
		match := rule.re.FindStringSubmatch(clause)
		if match == nil {
			continue
		}
		due := rule.resolve(match, now)
		return due, collapseWhitespace(stripFirst(rule.re, clause))
	}
	return nil, clause
}
