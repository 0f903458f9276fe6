package handler

import (
	"errors"
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

type createJobRequest struct {
	Title         string            `json:"title"`
	Company       string            `json:"company"`
	Location      string            `json:"location"`
	Type          string            `json:"type"`
	Salary        string            `json:"salary"`
	Description   string            `json:"description"`
	Requirements  []string          `json:"requirements"`
	Benefits      []string          `json:"benefits"`
	ContactPerson job.ContactPerson `json:"contactPerson"`
	StartDate     string            `json:"startDate"`
	Status        string            `json:"status"`
}

type updateJobRequest struct {
	Title         *string            `json:"title"`
	Company       *string            `json:"company"`
	Location      *string            `json:"location"`
	Type          *string            `json:"type"`
	Salary        *string            `json:"salary"`
	Description   *string            `json:"description"`
	Requirements  *[]string          `json:"requirements"`
	Benefits      *[]string          `json:"benefits"`
	ContactPerson *job.ContactPerson `json:"contactPerson"`
	StartDate     *string            `json:"startDate"`
	Status        *string            `json:"status"`
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListJobs)
	r.Get("/:id", h.GetJob)
}

func (h *JobHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.CreateJob)
	r.Put("/:id", h.UpdateJob)
	r.Delete("/:id", h.DeleteJob)
}

func (h *JobHandler) CreateJob(c fiber.Ctx) error {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.CreateJob(c.Context(), callerID, usecase.CreateJobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		EmploymentType: req.Type,
		Salary:         req.Salary,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Benefits:       req.Benefits,
		ContactPerson:  req.ContactPerson,
		StartDate:      req.StartDate,
		Status:         req.Status,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(created, time.Now()))
}

func (h *JobHandler) ListJobs(c fiber.Ctx) error {
	jobs, err := h.uc.ListJobs(c.Context())
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponses(jobs, time.Now()))
}

func (h *JobHandler) GetJob(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	j, err := h.uc.GetJob(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j, time.Now()))
}

func (h *JobHandler) UpdateJob(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	updated, err := h.uc.UpdateJob(c.Context(), callerID, id, usecase.UpdateJobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		EmploymentType: req.Type,
		Salary:         req.Salary,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Benefits:       req.Benefits,
		ContactPerson:  req.ContactPerson,
		StartDate:      req.StartDate,
		Status:         req.Status,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated, time.Now()))
}

func (h *JobHandler) DeleteJob(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	if err := h.uc.DeleteJob(c.Context(), callerID, id); err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job removed", nil)
}

func mapJobError(err error) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the posting user may modify this job", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job data", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
