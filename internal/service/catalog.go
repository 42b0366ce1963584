package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geekysharma31/closet-api/internal/model"
	"github.com/geekysharma31/closet-api/internal/repository"
)

// ErrValidation marks client-fault input errors; handlers map it to 400.
var ErrValidation = errors.New("validation failed")

type CreateItemInput struct {
	Name             string
	Type             string
	Description      string
	CoverImage       string
	AdditionalImages []string
}

type CatalogService interface {
	Create(ctx context.Context, in CreateItemInput) (*model.Item, error)
	List(ctx context.Context) ([]model.Item, error)
}

type catalogService struct {
	repo repository.ItemRepository
}

func NewCatalogService(repo repository.ItemRepository) CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) Create(ctx context.Context, in CreateItemInput) (*model.Item, error) {
	name := strings.TrimSpace(in.Name)
	typ := strings.TrimSpace(in.Type)
	description := strings.TrimSpace(in.Description)
	coverImage := strings.TrimSpace(in.CoverImage)
	if name == "" || typ == "" || description == "" || coverImage == "" {
		return nil, fmt.Errorf("%w: name, type, description and coverImage are required", ErrValidation)
	}

	images := model.ImageList(in.AdditionalImages)
	if images == nil {
		images = model.ImageList{}
	}

	item := &model.Item{
		Name:             name,
		Type:             typ,
		Description:      description,
		CoverImage:       coverImage,
		AdditionalImages: images,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) List(ctx context.Context) ([]model.Item, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].AdditionalImages == nil {
			items[i].AdditionalImages = model.ImageList{}
		}
	}
	return items, nil
}
