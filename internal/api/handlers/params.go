package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

var (
	// ErrMissingParam параметр отсутствует
	ErrMissingParam = errors.New("missing parameter")
	// ErrInvalidParam параметр имеет некорректный формат
	ErrInvalidParam = errors.New("invalid parameter")
)

// PathParam возвращает непустой path-параметр маршрута
func PathParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(mux.Vars(r)[name])
	if value == "" {
		return "", ErrMissingParam
	}
	return value, nil
}

// QueryDate разбирает необязательный query-параметр даты YYYY-MM-DD
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, ErrInvalidParam
	}
	return &date, nil
}

// QueryString возвращает необязательный query-параметр
func QueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}

// QueryBool разбирает необязательный булев query-параметр, по умолчанию false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, ErrInvalidParam
	}
	return value, nil
}
