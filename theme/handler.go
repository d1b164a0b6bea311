package theme

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Service interface {
	State() State
	ToggleDarkMode()
	SetAccentColor(c Color) error
}

var _ Service = (*Store)(nil)

type stateResponse struct {
	State
	ColorScheme string            `json:"colorScheme"`
	Style       map[string]string `json:"style"`
	Palette     []Color           `json:"palette"`
}

type accentColorRequest struct {
	AccentColor string `json:"accentColor"`
}

var errBadRequest = errors.New("malformed request")

func GetThemeHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeJSON(w, http.StatusOK, newStateResponse(svc.State()))
	})
}

func ToggleDarkModeHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		svc.ToggleDarkMode()
		encodeJSON(w, http.StatusOK, newStateResponse(svc.State()))
	})
}

func SetAccentColorHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req accentColorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			encodeError(errBadRequest, w)
			return
		}

		c, err := ParseColor(req.AccentColor)
		if err == nil {
			err = svc.SetAccentColor(c)
		}
		if err != nil {
			encodeError(err, w)
			return
		}
		encodeJSON(w, http.StatusOK, newStateResponse(svc.State()))
	})
}

func newStateResponse(st State) stateResponse {
	return stateResponse{State: st, ColorScheme: st.ColorScheme(), Style: st.StyleAttributes(), Palette: Palette}
}

func encodeError(err error, w http.ResponseWriter) {
	code := http.StatusInternalServerError
	switch err {
	case errBadRequest:
		code = http.StatusBadRequest
	case ErrInvalidColor:
		code = http.StatusUnprocessableEntity
	}
	encodeJSON(w, code, map[string]interface{}{"error": err.Error()})
}

func encodeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
