package handler

import (
	"able-match/internal/delivery/http/dto"
	"able-match/internal/delivery/http/middleware"
	"able-match/internal/domain/match"
	"able-match/internal/pkg/response"
	"able-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matching   usecase.MatchingUsecase
	generation usecase.MatchGenerationUsecase
	list       usecase.MatchListUsecase
	actions    usecase.MatchActionUsecase
}

type matchActionRequest struct {
	Action               string `json:"action"`
	AccommodationRequest string `json:"accommodation_request"`
}

func NewMatchHandler(
	matching usecase.MatchingUsecase,
	generation usecase.MatchGenerationUsecase,
	list usecase.MatchListUsecase,
	actions usecase.MatchActionUsecase,
) *MatchHandler {
	return &MatchHandler{matching: matching, generation: generation, list: list, actions: actions}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs/:job_id/match", h.ComputeMatch)
	r.Post("/matches/generate", h.Generate)
	r.Get("/matches", h.List)
	r.Post("/matches/:match_id/action", h.Action)
}

// ComputeMatch scores the caller against one job without persisting
// anything.
func (h *MatchHandler) ComputeMatch(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	res, err := h.matching.ComputeMatch(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchScoreResponse(res))
}

func (h *MatchHandler) Generate(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	created, err := h.generation.GenerateMatches(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Matches generated", dto.NewGenerateMatchesResponse(created))
}

func (h *MatchHandler) List(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.list.ListMatches(c.Context(), userID, c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(items))
}

func (h *MatchHandler) Action(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	matchID, err := uuid.Parse(c.Params("match_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid match id", nil, err)
	}

	var req matchActionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.actions.ApplyAction(c.Context(), userID, matchID, match.Action(req.Action), req.AccommodationRequest)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(m))
}
