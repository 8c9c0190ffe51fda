package services

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"eduportal/models/portal"
)

// MaterialService owns the material catalog: one create/update pair per
// variant (video, book, article) plus the course link edits.
type MaterialService struct {
	store Store
}

func NewMaterialService(store Store) *MaterialService {
	return &MaterialService{store: store}
}

func (s *MaterialService) GetAll(ctx context.Context) ([]portal.Material, error) {
	return s.store.MaterialsAll(ctx)
}

func (s *MaterialService) GetDetails(ctx context.Context, materialID uint) (portal.Material, error) {
	return s.store.MaterialWithLinks(ctx, materialID)
}

func (s *MaterialService) GetBookFormats(ctx context.Context) ([]portal.BookFormat, error) {
	return s.store.BookFormats(ctx)
}

func (s *MaterialService) CreateVideo(ctx context.Context, title, description string, durationSec, widthPx, heightPx int) (portal.Material, error) {
	material := portal.Material{
		Title:        title,
		Description:  description,
		MaterialType: portal.MaterialVideo,
		RecordStatus: portal.RecordActive,
		DurationSec:  durationSec,
		WidthPx:      widthPx,
		HeightPx:     heightPx,
	}
	err := s.store.Atomic(ctx, func(tx Store) error {
		return tx.CreateMaterial(ctx, &material)
	})
	return material, err
}

func (s *MaterialService) CreateBook(ctx context.Context, title, description, authors string, pages int, formatID uint, publicationYear int) (portal.Material, error) {
	material := portal.Material{
		Title:           title,
		Description:     description,
		MaterialType:    portal.MaterialBook,
		RecordStatus:    portal.RecordActive,
		Authors:         authors,
		Pages:           pages,
		FormatID:        &formatID,
		PublicationYear: publicationYear,
	}
	err := s.store.Atomic(ctx, func(tx Store) error {
		return tx.CreateMaterial(ctx, &material)
	})
	return material, err
}

func (s *MaterialService) CreateArticle(ctx context.Context, title, description string, publishedAt datatypes.Date, sourceURL string) (portal.Material, error) {
	material := portal.Material{
		Title:        title,
		Description:  description,
		MaterialType: portal.MaterialArticle,
		RecordStatus: portal.RecordActive,
		PublishedAt:  &publishedAt,
		SourceURL:    sourceURL,
	}
	err := s.store.Atomic(ctx, func(tx Store) error {
		return tx.CreateMaterial(ctx, &material)
	})
	return material, err
}

func (s *MaterialService) UpdateVideo(ctx context.Context, materialID uint, title, description string, durationSec, widthPx, heightPx int) (portal.Material, error) {
	material, err := s.requireType(ctx, materialID, portal.MaterialVideo)
	if err != nil {
		return portal.Material{}, err
	}

	material.Title = title
	material.Description = description
	material.DurationSec = durationSec
	material.WidthPx = widthPx
	material.HeightPx = heightPx

	err = s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveMaterial(ctx, &material)
	})
	return material, err
}

func (s *MaterialService) UpdateBook(ctx context.Context, materialID uint, title, description, authors string, pages int, formatID uint, publicationYear int) (portal.Material, error) {
	material, err := s.requireType(ctx, materialID, portal.MaterialBook)
	if err != nil {
		return portal.Material{}, err
	}

	material.Title = title
	material.Description = description
	material.Authors = authors
	material.Pages = pages
	material.FormatID = &formatID
	material.PublicationYear = publicationYear

	err = s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveMaterial(ctx, &material)
	})
	return material, err
}

func (s *MaterialService) UpdateArticle(ctx context.Context, materialID uint, title, description string, publishedAt datatypes.Date, sourceURL string) (portal.Material, error) {
	material, err := s.requireType(ctx, materialID, portal.MaterialArticle)
	if err != nil {
		return portal.Material{}, err
	}

	material.Title = title
	material.Description = description
	material.PublishedAt = &publishedAt
	material.SourceURL = sourceURL

	err = s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveMaterial(ctx, &material)
	})
	return material, err
}

// Delete retires a material. A material someone has already completed cannot
// be deleted.
func (s *MaterialService) Delete(ctx context.Context, materialID uint) error {
	material, err := s.store.MaterialByID(ctx, materialID)
	if err != nil {
		return err
	}

	inUse, err := s.store.AnyCompletionByMaterial(ctx, materialID)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: material %d has been completed by users", ErrInvalidOperation, materialID)
	}

	material.RecordStatus = portal.RecordRetired
	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveMaterial(ctx, &material)
	})
}

// GetAssignedCourseIDs lists the courses that actively include the material.
func (s *MaterialService) GetAssignedCourseIDs(ctx context.Context, materialID uint) ([]uint, error) {
	material, err := s.store.MaterialWithLinks(ctx, materialID)
	if err != nil {
		return nil, err
	}
	return material.ActiveCourseIDs(), nil
}

// UpdateMaterialCourses converges the material's course links to exactly the
// given course id set. Same reconciliation as the course side, keyed from
// the material.
func (s *MaterialService) UpdateMaterialCourses(ctx context.Context, materialID uint, courseIDs []uint) error {
	material, err := s.store.MaterialWithLinks(ctx, materialID)
	if err != nil {
		return err
	}

	for _, courseID := range courseIDs {
		if _, err := s.store.CourseByID(ctx, courseID); err != nil {
			return err
		}
	}

	links := ReconcileLinks(material.CourseMaterials, courseIDs, MaterialCourseLinkFuncs(materialID))

	return s.store.Atomic(ctx, func(tx Store) error {
		return tx.SaveCourseMaterialLinks(ctx, links)
	})
}

func (s *MaterialService) requireType(ctx context.Context, materialID uint, materialType string) (portal.Material, error) {
	material, err := s.store.MaterialByID(ctx, materialID)
	if err != nil {
		return portal.Material{}, err
	}
	if material.MaterialType != materialType {
		return portal.Material{}, fmt.Errorf("%w: material %d is not a %s", ErrInvalidOperation, materialID, materialType)
	}
	return material, nil
}
