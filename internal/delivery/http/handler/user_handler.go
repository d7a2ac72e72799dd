package handler

import (
	"able-match/internal/delivery/http/dto"
	"able-match/internal/delivery/http/middleware"
	"able-match/internal/pkg/response"
	"able-match/internal/repository"
	"able-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateProfileRequest struct {
	Skills             string `json:"skills"`
	ExperienceLevel    string `json:"experience_level"`
	PreferredLocation  string `json:"preferred_location"`
	SalaryExpectation  string `json:"salary_expectation"`
	DisabilityType     string `json:"disability_type"`
	AccessibilityNeeds string `json:"accessibility_needs"`
	WorkPreferences    string `json:"work_preferences"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	usr, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserProfileResponse(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, repository.ProfileUpdate{
		Skills:             req.Skills,
		ExperienceLevel:    req.ExperienceLevel,
		PreferredLocation:  req.PreferredLocation,
		SalaryExpectation:  req.SalaryExpectation,
		DisabilityType:     req.DisabilityType,
		AccessibilityNeeds: req.AccessibilityNeeds,
		WorkPreferences:    req.WorkPreferences,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated", dto.NewUserProfileResponse(usr))
}
