package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jn0w/Lindsey/pkg/auth"
	"github.com/jn0w/Lindsey/pkg/common"
)

// CookieName is the session cookie set on successful login.
const CookieName = "auth"

// AuthHandler handles login and logout
type AuthHandler struct {
	loginDay   string
	loginMonth string
	tokens     *auth.TokenIssuer
	logger     *zap.Logger
}

// NewAuthHandler creates a new auth handler for the configured
// anniversary constants
func NewAuthHandler(loginDay, loginMonth string, tokens *auth.TokenIssuer, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		loginDay:   loginDay,
		loginMonth: loginMonth,
		tokens:     tokens,
		logger:     logger,
	}
}

// loginRequest accepts day and month as either JSON numbers or strings,
// matching what the login form may submit.
type loginRequest struct {
	Day   interface{} `json:"day"`
	Month interface{} `json:"month"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	day := coerceString(req.Day)
	month := coerceString(req.Month)
	if day == "" || month == "" {
		common.RespondError(w, http.StatusBadRequest, "Enter our anniversary date my love 💖")
		return
	}

	if day != h.loginDay || month != h.loginMonth {
		h.logger.Info("Login rejected", zap.String("remoteAddr", r.RemoteAddr))
		common.RespondError(w, http.StatusUnauthorized, "Use our anniversary date my love")
		return
	}

	token, err := h.tokens.Issue(time.Now())
	if err != nil {
		h.logger.Error("Failed to issue session token", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	common.RespondMessage(w, http.StatusOK, "Login successful", nil)
}

// Logout handles GET /auth/logout. Clearing an absent cookie is fine;
// logout is idempotent.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	common.RespondMessage(w, http.StatusOK, "Logged out successfully", nil)
}

// coerceString renders a JSON value for the exact string comparison:
// strings as-is, numbers without a trailing ".0". A numeric 7 therefore
// does not match a configured "07".
func coerceString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}
