package handler

import (
	"errors"

	"career-connect/internal/delivery/http/middleware"
	"career-connect/internal/domain/material"
	"career-connect/internal/pkg/response"
	"career-connect/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MaterialHandler struct {
	materials usecase.MaterialUsecase
}

type addMaterialRequest struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Text     string `json:"text"`
	YouTube  string `json:"youtube"`
	FileURL  string `json:"file_url"`
}

func NewMaterialHandler(materials usecase.MaterialUsecase) *MaterialHandler {
	return &MaterialHandler{materials: materials}
}

// RegisterRoutes mounts the read-only endpoints; admin CRUD goes through
// RegisterAdminRoutes behind the admin middleware.
func (h *MaterialHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/study-materials", h.List)
	r.Get("/study-materials/:id", h.Get)
}

func (h *MaterialHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/study-materials", h.Create)
	r.Get("/study-materials", h.List)
	r.Put("/study-materials/:id", h.Update)
	r.Delete("/study-materials/:id", h.Delete)
}

func (h *MaterialHandler) List(c fiber.Ctx) error {
	mats, err := h.materials.ListMaterials(c.Context(), c.Query("category"), c.Query("type"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, mats)
}

func (h *MaterialHandler) Get(c fiber.Ctx) error {
	mat, err := h.materials.GetMaterial(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, mat)
}

func (h *MaterialHandler) Create(c fiber.Ctx) error {
	var req addMaterialRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	mat, err := h.materials.AddMaterial(c.Context(), usecase.AddMaterialInput{
		Title:    req.Title,
		Type:     req.Type,
		Category: req.Category,
		Content: material.Content{
			Text:    req.Text,
			YouTube: req.YouTube,
			FileURL: req.FileURL,
		},
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Title and a valid type are required", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Study material created", mat)
}

func (h *MaterialHandler) Update(c fiber.Ctx) error {
	var fields map[string]any
	if err := c.Bind().Body(&fields); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	mat, err := h.materials.UpdateMaterial(c.Context(), c.Params("id"), fields)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Study material updated", mat)
}

func (h *MaterialHandler) Delete(c fiber.Ctx) error {
	if err := h.materials.DeleteMaterial(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Study material deleted", nil)
}
