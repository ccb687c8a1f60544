package auth

// Claims representa la identidad resuelta a partir del token de sesión.
type Claims struct {
	UserID   string
	Username string
}
