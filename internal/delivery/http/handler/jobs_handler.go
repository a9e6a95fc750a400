package handler

import (
	"errors"

	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// JobsHandler is the user-facing job surface: the overview listing and
// detail, bookmarking, and the view counter.
type JobsHandler struct {
	overview usecase.OverviewUsecase
	saved    usecase.SavedJobsUsecase
	admin    usecase.JobAdminUsecase
}

type saveJobRequest struct {
	UserID string `json:"user_id"`
}

func NewJobsHandler(overview usecase.OverviewUsecase, saved usecase.SavedJobsUsecase, admin usecase.JobAdminUsecase) *JobsHandler {
	return &JobsHandler{overview: overview, saved: saved, admin: admin}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs/overview", h.Overview)
	r.Get("/jobs/overview/:id", h.OverviewDetail)
	r.Post("/jobs/:id/save", h.Save)
	r.Post("/jobs/:id/unsave", h.Unsave)
	r.Post("/jobs/:id/view", h.IncrementViews)
	r.Get("/users/:user_id/saved-jobs", h.SavedJobs)
}

func (h *JobsHandler) Overview(c fiber.Ctx) error {
	jobs, err := h.overview.ListOverview(c.Context(), c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *JobsHandler) OverviewDetail(c fiber.Ctx) error {
	d, err := h.overview.GetOverviewDetail(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}

func (h *JobsHandler) Save(c fiber.Ctx) error {
	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.saved.Save(c.Context(), req.UserID, c.Params("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job saved successfully", nil)
}

func (h *JobsHandler) Unsave(c fiber.Ctx) error {
	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.saved.Unsave(c.Context(), req.UserID, c.Params("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job was not saved", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job unsaved successfully", nil)
}

func (h *JobsHandler) IncrementViews(c fiber.Ctx) error {
	if err := h.admin.IncrementViews(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobsHandler) SavedJobs(c fiber.Ctx) error {
	jobs, err := h.saved.ListSavedJobs(c.Context(), c.Params("user_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

// mapUsecaseError is the shared translation of usecase sentinels into HTTP
// errors for handlers without a more specific message.
func mapUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
