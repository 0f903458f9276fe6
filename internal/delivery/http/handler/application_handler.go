package handler

import (
	"errors"
	"time"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	UserID string `json:"userId"`
}

type decideRequest struct {
	Action string `json:"action"`
}

type applyResponse struct {
	Job dto.JobResponse `json:"job"`
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/:jobId/apply", h.Apply)
	r.Get("/:jobId/applications", h.ListApplications)
}

func (h *ApplicationHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/:jobId/applications/:userId", h.Decide)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	}

	j, err := h.uc.Apply(c.Context(), jobID, userID)
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusOK, "Application submitted for review", applyResponse{
		Job: dto.NewJobResponse(j, time.Now()),
	})
}

func (h *ApplicationHandler) ListApplications(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	pending, accepted, err := h.uc.ListApplications(c.Context(), jobID)
	if err != nil {
		return mapApplicationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationsResponse(pending, accepted))
}

func (h *ApplicationHandler) Decide(c fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "User has not applied for this job", nil, err)
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req decideRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.Decide(c.Context(), callerID, jobID, userID, req.Action); err != nil {
		return mapApplicationError(err)
	}

	msg := "Application accepted"
	if req.Action == usecase.ActionReject {
		msg = "Application rejected"
	}
	return response.Success(c, fiber.StatusOK, msg, nil)
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, job.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "You have already applied for this job", nil, err)
	case errors.Is(err, job.ErrNotApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "User has not applied for this job", nil, err)
	case errors.Is(err, usecase.ErrInvalidAction):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid action", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Only the posting user may decide applications", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
