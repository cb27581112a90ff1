package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/nubecart/storefront/internal/errors"
	"github.com/nubecart/storefront/internal/utils/response"
)

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) error {
	defer r.Body.Close()

	err := json.NewDecoder(r.Body).Decode(dest)

	if errors.Is(err, io.EOF) {
		slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
		response.Error(w, apperrors.BadRequestError("request body cannot be empty"))

		return err
	}

	if err != nil {
		slog.Warn("Failed to decode request body",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		response.Error(w, appErrBadBody(err))

		return err
	}

	return nil
}

func appErrBadBody(err error) error {
	return apperrors.BadRequestError("invalid request body").WithError(err)
}

func validateStruct(w http.ResponseWriter, validate *validator.Validate, data any) bool {
	if err := validate.Struct(data); err != nil {
		var validationErrs validator.ValidationErrors

		if errors.As(err, &validationErrs) {
			slog.Warn("Input validation failed", slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
		} else {
			slog.Error("Unexpected validation error", slog.String("error", err.Error()))
			response.Error(w, err)
		}

		return false
	}

	return true
}
