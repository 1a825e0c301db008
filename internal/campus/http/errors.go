package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// writeServiceError maps a service error onto an API error. Anything
// unrecognised is logged and reported as a 500 with the given description.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, desc string) {
	var (
		ve  *service.ValidationError
		mbe *http.MaxBytesError
	)
	switch {
	case errors.As(err, &mbe):
		campussdk.ErrPayloadTooLarge.WriteError(w)
	case errors.As(err, &ve):
		campussdk.NewAPIError(http.StatusBadRequest, campussdk.ErrorCodeValidation, ve.Message).WriteError(w)
	case errors.Is(err, service.ErrUserExists):
		campussdk.ErrUserExists.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		campussdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrAdminRequired):
		campussdk.ErrAccessDenied.WithDescription(upperFirst(service.ErrAdminRequired.Error())).WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		campussdk.ErrAccessDenied.WithDescription("You may only manage your own department").WriteError(w)
	case errors.Is(err, service.ErrEventNotFound):
		campussdk.ErrNotFound.WithDescription("Event not found").WriteError(w)
	case errors.Is(err, service.ErrAchievementNotFound):
		campussdk.ErrNotFound.WithDescription("Achievement not found").WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		campussdk.ErrNotFound.WithDescription("User not found").WriteError(w)
	case errors.Is(err, service.ErrSheetNotFound):
		campussdk.ErrNotFound.WithDescription(upperFirst(service.ErrSheetNotFound.Error())).WriteError(w)
	case errors.Is(err, service.ErrAnnualReportExists):
		campussdk.ErrConflict.WithDescription(upperFirst(service.ErrAnnualReportExists.Error())).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error(strings.ToLower(desc), "error", err)
		campussdk.ErrServerError.WithDescription(desc).WriteError(w)
	}
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	campussdk.ErrInvalidRequest.WithDescription(desc).WriteError(w)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeDecodeError reports a body that could not be decoded.
func writeDecodeError(w http.ResponseWriter, err error) {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		campussdk.ErrPayloadTooLarge.WriteError(w)
		return
	}
	writeBadRequest(w, upperFirst(err.Error()))
}
