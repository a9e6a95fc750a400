package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"career-connect/internal/domain/material"
)

type MaterialUsecase interface {
	AddMaterial(ctx context.Context, in AddMaterialInput) (material.Material, error)
	GetMaterial(ctx context.Context, id string) (material.Material, error)
	ListMaterials(ctx context.Context, category, typ string) ([]material.Material, error)
	UpdateMaterial(ctx context.Context, id string, fields map[string]any) (material.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
}

type AddMaterialInput struct {
	Title    string
	Type     string
	Category string
	Content  material.Content
}

type Materials struct {
	repo   material.Repository
	logger *log.Logger
}

func NewMaterialUsecase(repo material.Repository, logger *log.Logger) *Materials {
	return &Materials{repo: repo, logger: logger}
}

func (u *Materials) AddMaterial(ctx context.Context, in AddMaterialInput) (material.Material, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return material.Material{}, ErrInvalidInput
	}
	if in.Type != "" && !material.ValidType(in.Type) {
		return material.Material{}, ErrInvalidInput
	}

	m := material.Material{
		Title:    title,
		Type:     in.Type,
		Category: in.Category,
		Content:  in.Content,
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Materials] create failed: %v", err)
		}
		return material.Material{}, ErrInternal
	}
	return created, nil
}

func (u *Materials) GetMaterial(ctx context.Context, id string) (material.Material, error) {
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return material.Material{}, u.mapError(err, "get", id)
	}
	return m, nil
}

func (u *Materials) ListMaterials(ctx context.Context, category, typ string) ([]material.Material, error) {
	rows, err := u.repo.List(ctx, material.ListFilter{Category: category, Type: typ})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Materials] list failed: %v", err)
		}
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Materials) UpdateMaterial(ctx context.Context, id string, fields map[string]any) (material.Material, error) {
	delete(fields, "_id")
	delete(fields, "id")
	delete(fields, "created_at")
	if len(fields) == 0 {
		return material.Material{}, ErrInvalidInput
	}
	if t, ok := fields["type"].(string); ok && t != "" && !material.ValidType(t) {
		return material.Material{}, ErrInvalidInput
	}

	m, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return material.Material{}, u.mapError(err, "update", id)
	}
	return m, nil
}

func (u *Materials) DeleteMaterial(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return u.mapError(err, "delete", id)
	}
	return nil
}

func (u *Materials) mapError(err error, op, id string) error {
	switch {
	case errors.Is(err, material.ErrNotFound), errors.Is(err, material.ErrInvalidID):
		return ErrNotFound
	default:
		if u.logger != nil {
			u.logger.Printf("[Materials] %s failed id=%s: %v", op, id, err)
		}
		return ErrInternal
	}
}
