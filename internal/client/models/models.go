// Package models defines the domain types exchanged with the IqraNow API.
package models

import (
	"strings"
	"time"
)

// createdAtLayouts lists the timestamp formats the API is known to emit.
// The backend serializes naive UTC timestamps without a zone suffix.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// ParseCreatedAt parses an API timestamp string. The zero time is returned
// for values that match none of the known layouts.
func ParseCreatedAt(s string) time.Time {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// UserProfile is the authenticated user's profile as returned by /api/me.
// Opaque to this layer beyond display.
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FirstName returns the leading word of the profile name, or the empty
// string for a blank name.
func (u UserProfile) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Initials derives up to two uppercase initials from the profile name.
func (u UserProfile) Initials() string {
	fields := strings.Fields(u.Name)
	var b strings.Builder
	for i, f := range fields {
		if i == 2 {
			break
		}
		r := []rune(f)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// Goal is a user-set daily practice target. Either field may be absent.
// Goals are never mutated or deleted client-side; the newest one is the
// current goal.
type Goal struct {
	ID           int64  `json:"id"`
	DailyVerses  *int   `json:"dailyVerses"`
	DailyMinutes *int   `json:"dailyMinutes"`
	CreatedAt    string `json:"createdAt"`
}

// SessionRecord is a single recorded recitation attempt. Produced entirely
// server-side; read-only here. Score is nil when the attempt was not scored.
type SessionRecord struct {
	ID             int64    `json:"id"`
	CreatedAt      string   `json:"createdAt"`
	Score          *float64 `json:"score"`
	RecognizedText string   `json:"recognizedText"`
}

// DailyPoint is a per-day rollup of attempt count and average score within
// the trailing 30-day window. AvgScore is nil for days with no attempts.
type DailyPoint struct {
	Date     string   `json:"date"`
	Count    int      `json:"count"`
	AvgScore *float64 `json:"avgScore"`
}

// ProgressReport is the payload of GET /api/progress.
type ProgressReport struct {
	Daily          []DailyPoint    `json:"daily"`
	RecentSessions []SessionRecord `json:"recentSessions"`
}

// Diff is one aligned segment of the expected/recognized text comparison.
// Op is one of "equal", "replace", "delete", "insert".
type Diff struct {
	Op       string `json:"op"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	I1       int    `json:"i1"`
	I2       int    `json:"i2"`
	J1       int    `json:"j1"`
	J2       int    `json:"j2"`
}

// Feedback is the server's scoring verdict for a recitation attempt.
type Feedback struct {
	Score        *float64 `json:"score"`
	TajweedFlags []string `json:"tajweedFlags"`
	Diffs        []Diff   `json:"diffs"`
}

// RecitationResult is the payload of POST /api/recitation.
type RecitationResult struct {
	RecognizedText string         `json:"recognizedText"`
	Feedback       Feedback       `json:"feedback"`
	Session        *SessionRecord `json:"session"`
}
