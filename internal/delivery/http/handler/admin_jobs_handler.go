package handler

import (
	"errors"

	"career-connect/internal/delivery/http/dto"
	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// AdminJobsHandler owns the management surface for job postings. Routes
// registered here expect the admin middleware chain in front of them.
type AdminJobsHandler struct {
	admin usecase.JobAdminUsecase
}

type createJobRequest struct {
	Title                   string `json:"title"`
	CompanyName             string `json:"company_name"`
	CompanyOverview         string `json:"company_overview"`
	RoleSummary             string `json:"role_summary"`
	KeyResponsibilities     string `json:"key_responsibilities"`
	Description             string `json:"description"`
	RequiredSkills          string `json:"required_skills"`
	EducationRequirements   string `json:"education_requirements"`
	ExperienceLevel         string `json:"experience_level"`
	SalaryRange             string `json:"salary_range"`
	Benefits                string `json:"benefits"`
	JobLocation             string `json:"job_location"`
	WorkType                string `json:"work_type"`
	WorkSchedule            string `json:"work_schedule"`
	Department              string `json:"department"`
	ApplicationInstructions string `json:"application_instructions"`
	ApplicationDeadline     string `json:"application_deadline"`
	ApplicationLink         string `json:"application_link"`
	NotificationPDF         string `json:"notification_pdf"`
	ContactEmail            string `json:"contact_email"`
	ContactPhone            string `json:"contact_phone"`
	EndDate                 string `json:"end_date"`
}

func NewAdminJobsHandler(admin usecase.JobAdminUsecase) *AdminJobsHandler {
	return &AdminJobsHandler{admin: admin}
}

func (h *AdminJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/jobs", h.Create)
	r.Get("/jobs", h.List)
	r.Get("/jobs/:id", h.Get)
	r.Put("/jobs/:id", h.Update)
	r.Delete("/jobs/:id", h.Delete)
	r.Post("/jobs/:id/toggle-pin", h.TogglePin)
}

func (h *AdminJobsHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.admin.CreateJob(c.Context(), usecase.CreateJobInput{
		Title:                   req.Title,
		CompanyName:             req.CompanyName,
		CompanyOverview:         req.CompanyOverview,
		RoleSummary:             req.RoleSummary,
		KeyResponsibilities:     req.KeyResponsibilities,
		Description:             req.Description,
		RequiredSkills:          req.RequiredSkills,
		EducationRequirements:   req.EducationRequirements,
		ExperienceLevel:         req.ExperienceLevel,
		SalaryRange:             req.SalaryRange,
		Benefits:                req.Benefits,
		JobLocation:             req.JobLocation,
		WorkType:                req.WorkType,
		WorkSchedule:            req.WorkSchedule,
		Department:              req.Department,
		ApplicationInstructions: req.ApplicationInstructions,
		ApplicationDeadline:     req.ApplicationDeadline,
		ApplicationLink:         req.ApplicationLink,
		NotificationPDF:         req.NotificationPDF,
		ContactEmail:            req.ContactEmail,
		ContactPhone:            req.ContactPhone,
		EndDate:                 req.EndDate,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Job title is required", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created successfully", created)
}

func (h *AdminJobsHandler) List(c fiber.Ctx) error {
	jobs, err := h.admin.ListJobs(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}

func (h *AdminJobsHandler) Get(c fiber.Ctx) error {
	j, err := h.admin.GetJob(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, j)
}

func (h *AdminJobsHandler) Update(c fiber.Ctx) error {
	var fields map[string]any
	if err := c.Bind().Body(&fields); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.admin.UpdateJob(c.Context(), c.Params("id"), fields)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "No updatable fields supplied", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job updated successfully", updated)
}

func (h *AdminJobsHandler) Delete(c fiber.Ctx) error {
	if err := h.admin.DeleteJob(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted successfully", nil)
}

func (h *AdminJobsHandler) TogglePin(c fiber.Ctx) error {
	pinned, err := h.admin.TogglePin(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}

	msg := "Job unpinned successfully"
	if pinned {
		msg = "Job pinned successfully"
	}
	return response.Success(c, fiber.StatusOK, msg, dto.PinToggleResponse{Pinned: pinned, Message: msg})
}
