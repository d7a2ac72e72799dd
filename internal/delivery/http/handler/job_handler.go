package handler

import (
	"strconv"

	"able-match/internal/delivery/http/dto"
	"able-match/internal/delivery/http/middleware"
	"able-match/internal/pkg/response"
	"able-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	jobs         usecase.JobUsecase
	applications usecase.ApplicationUsecase
}

type createJobRequest struct {
	Title                 string `json:"title"`
	Company               string `json:"company"`
	Description           string `json:"description"`
	Requirements          string `json:"requirements"`
	RequiredSkills        string `json:"required_skills"`
	ExperienceRequired    string `json:"experience_required"`
	Location              string `json:"location"`
	WorkType              string `json:"work_type"`
	AccessibilityFeatures string `json:"accessibility_features"`
	SalaryRange           string `json:"salary_range"`
}

type applyRequest struct {
	AccommodationRequest string `json:"accommodation_request"`
}

func NewJobHandler(jobs usecase.JobUsecase, applications usecase.ApplicationUsecase) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.List)
	r.Post("/jobs", h.Create)
	r.Get("/jobs/:job_id", h.Get)
	r.Post("/jobs/:job_id/apply", h.Apply)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid offset", nil, err)
	}

	jobs, err := h.jobs.ListJobs(c.Context(), limit, offset)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobListResponse(jobs, limit, offset))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	j, err := h.jobs.GetJob(c.Context(), jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	j, err := h.jobs.CreateJob(c.Context(), userID, usecase.CreateJobInput{
		Title:                 req.Title,
		Company:               req.Company,
		Description:           req.Description,
		Requirements:          req.Requirements,
		RequiredSkills:        req.RequiredSkills,
		ExperienceRequired:    req.ExperienceRequired,
		Location:              req.Location,
		WorkType:              req.WorkType,
		AccessibilityFeatures: req.AccessibilityFeatures,
		SalaryRange:           req.SalaryRange,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", dto.NewJobResponse(j))
}

func (h *JobHandler) Apply(c fiber.Ctx) error {
	userID, ok := middleware.UserIDFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	var req applyRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	app, err := h.applications.Apply(c.Context(), userID, jobID, req.AccommodationRequest)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Application submitted", dto.NewApplicationResponse(app))
}

func queryInt(c fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
