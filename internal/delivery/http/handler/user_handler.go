package handler

import (
	"errors"
	"strconv"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

type updateUserRequest struct {
	Name           *string           `json:"name"`
	Email          *string           `json:"email"`
	Password       *string           `json:"password"`
	Phone          *string           `json:"phone"`
	Address        *string           `json:"address"`
	JobTitle       *string           `json:"jobTitle"`
	Experience     *string           `json:"experience"`
	Skills         *[]string         `json:"skills"`
	Certifications *[]map[string]any `json:"certifications"`
	Documents      *[]map[string]any `json:"documents"`
	Settings       *user.Settings    `json:"settings"`
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterRoutes wires the public reads; RegisterProtectedRoutes wires
// the self-update, which needs the auth middleware on its group.
func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListUsers)
	r.Get("/:id", h.GetUser)
}

func (h *UserHandler) RegisterProtectedRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/:id", h.UpdateUser)
}

func (h *UserHandler) ListUsers(c fiber.Ctx) error {
	page := 1
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}

	users, err := h.uc.ListUsers(c.Context(), page)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Server error", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponses(users))
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	}

	usr, err := h.uc.GetUser(c.Context(), id)
	if err != nil {
		return mapUserError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	}

	callerID, ok := middleware.CallerID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	if callerID != id {
		return middleware.NewAppError(fiber.StatusForbidden, "Cannot update another user", nil, nil)
	}

	var req updateUserRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	usr, err := h.uc.UpdateUser(c.Context(), id, usecase.UpdateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Phone:          req.Phone,
		Address:        req.Address,
		JobTitle:       req.JobTitle,
		Experience:     req.Experience,
		Skills:         req.Skills,
		Certifications: req.Certifications,
		Documents:      req.Documents,
		Settings:       req.Settings,
	})
	if err != nil {
		return mapUserError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "User already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user data", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
