package models

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for every date field.
const DateLayout = "2006-01-02"

// User captures the identity record created at registration.
type User struct {
	ID         string   `json:"id"`
	Role       UserRole `json:"role"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	JoinedDate string   `json:"joinedDate"`
}

// UnmarshalJSON also accepts the "joined" key used by older exports.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		Joined string `json:"joined"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.JoinedDate == "" {
		u.JoinedDate = aux.Joined
	}
	return nil
}

// IsEmployer reports whether the user posts jobs.
func (u User) IsEmployer() bool { return u.Role == RoleEmployer }

// IsWorker reports whether the user owns a worker profile.
func (u User) IsWorker() bool { return u.Role == RoleWorker }

// SameEmail compares addresses case-insensitively.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// FormatDate renders t in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
