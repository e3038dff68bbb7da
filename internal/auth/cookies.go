package auth

import (
	"net/http"
	"time"
)

// SetTokenCookies writes the access and refresh token cookies. SameSite=None
// because the SPA is served from a different origin.
func SetTokenCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	setCookie(w, AccessTokenCookie, accessToken, AccessTokenTTL)
	setCookie(w, RefreshTokenCookie, refreshToken, RefreshTokenTTL)
}

func ClearTokenCookies(w http.ResponseWriter) {
	expire(w, AccessTokenCookie)
	expire(w, RefreshTokenCookie)
}

func setCookie(w http.ResponseWriter, name, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

func expire(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
