package accounts

import "time"

// User es un usuario del back-office (admin de la tienda).
type User struct {
	ID           string
	Username     string
	PasswordHash string
}

// Session asocia un token opaco a un usuario hasta ExpiresAt.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
