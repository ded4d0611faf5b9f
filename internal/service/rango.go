package service

import (
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"
)

const fechaLayout = "2006-01-02"

// timeNow is swapped out by tests that pin the clock.
var timeNow = time.Now

// ResolverRangoSimbolico maps a range keyword to a half-open window:
//
//	today — the current local day
//	week  — trailing 7 days including today
//	month — calendar month to date
//
// An unrecognized keyword is a validation error (HTTP 400).
func ResolverRangoSimbolico(keyword string, now time.Time) (repository.Rango, error) {
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	manana := hoy.AddDate(0, 0, 1)

	switch keyword {
	case "today":
		return repository.Rango{Desde: hoy, Hasta: manana}, nil
	case "week":
		return repository.Rango{Desde: hoy.AddDate(0, 0, -6), Hasta: manana}, nil
	case "month":
		primero := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return repository.Rango{Desde: primero, Hasta: manana}, nil
	default:
		return repository.Rango{}, apierror.Validation("Rango invalido: " + keyword)
	}
}

// ResolverRangoFechas builds a window from explicit YYYY-MM-DD dates, end
// date inclusive. Both dates absent defaults to today; a lone date bounds
// the window on that side only.
func ResolverRangoFechas(f dto.RangoFilter, now time.Time) (repository.Rango, error) {
	if f.StartDate == "" && f.EndDate == "" {
		rg, err := ResolverRangoSimbolico("today", now)
		rg.UserID = f.UserID
		return rg, err
	}

	rg := repository.Rango{UserID: f.UserID}

	if f.StartDate != "" {
		desde, err := time.ParseInLocation(fechaLayout, f.StartDate, now.Location())
		if err != nil {
			return repository.Rango{}, apierror.Validation("startDate invalida: " + f.StartDate)
		}
		rg.Desde = desde
	}

	if f.EndDate != "" {
		hasta, err := time.ParseInLocation(fechaLayout, f.EndDate, now.Location())
		if err != nil {
			return repository.Rango{}, apierror.Validation("endDate invalida: " + f.EndDate)
		}
		rg.Hasta = hasta.AddDate(0, 0, 1)
	} else {
		hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		rg.Hasta = hoy.AddDate(0, 0, 1)
	}

	if rg.Desde.IsZero() {
		rg.Desde = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}

	if !rg.Hasta.After(rg.Desde) {
		return repository.Rango{}, apierror.Validation("endDate anterior a startDate")
	}
	return rg, nil
}
