package handler

import (
	"errors"

	"able-match/internal/delivery/http/middleware"
	"able-match/internal/pkg/response"
	"able-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates the usecase sentinels every handler shares
// into HTTP errors. Handler-specific sentinels are mapped before calling
// this.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrMatchNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrNotJobSeeker):
		return middleware.NewAppError(fiber.StatusForbidden, "Only job seekers can do this", nil, err)
	case errors.Is(err, usecase.ErrInvalidAction):
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown action", nil, err)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusConflict, "Action not allowed in current status", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotPending):
		return middleware.NewAppError(fiber.StatusConflict, "Application is no longer pending", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
