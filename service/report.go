package service

import (
	"context"
	"errors"

	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// DefaultReportCategories are inserted by the seed command.
var DefaultReportCategories = []types.ReportCategoryRequest{
	{Title: "Plagiarism", Description: "The article copies someone else's work without credit."},
	{Title: "Abusive content", Description: "The article contains harassment, hate speech or threats."},
	{Title: "Spam content", Description: "The article is advertising or repeated unsolicited content."},
	{Title: "Copyright infringement", Description: "The article uses protected material without permission."},
	{Title: "Inappropriate content", Description: "The article contains sexual or graphic material."},
}

var _ IReportService = (*ReportService)(nil)

type IReportService interface {
	CreateCategory(ctx context.Context, req *types.ReportCategoryRequest) (*models.ReportCategory, error)
	Categories(ctx context.Context) ([]*models.ReportCategory, error)
	Report(ctx context.Context, userID uint64, slug string, req *types.ReportRequest) (*models.Report, error)
	Reports(ctx context.Context, p types.Pagination) ([]*models.Report, int64, error)
	Get(ctx context.Context, id uint64) (*models.Report, error)
	SeedCategories(ctx context.Context, items []types.ReportCategoryRequest) (int, error)
}

type ReportService struct {
	ArticleDAO  *dao.ArticleDAO
	CategoryDAO *dao.ReportCategoryDAO
	ReportDAO   *dao.ReportDAO
}

func (s *ReportService) CreateCategory(ctx context.Context, req *types.ReportCategoryRequest) (*models.ReportCategory, error) {
	exist, err := s.CategoryDAO.FindByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrCategoryExists
	}

	category := &models.ReportCategory{Title: req.Title, Description: req.Description}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

func (s *ReportService) Categories(ctx context.Context) ([]*models.ReportCategory, error) {
	return s.CategoryDAO.All(ctx)
}

func (s *ReportService) Report(ctx context.Context, userID uint64, slug string, req *types.ReportRequest) (*models.Report, error) {
	article, err := s.ArticleDAO.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrCategoryNotFound
	}

	report := &models.Report{
		ArticleID:  article.ID,
		UserID:     userID,
		CategoryID: req.CategoryID,
		Details:    req.Details,
	}
	if err := s.ReportDAO.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) Reports(ctx context.Context, p types.Pagination) ([]*models.Report, int64, error) {
	return s.ReportDAO.List(ctx, p)
}

func (s *ReportService) Get(ctx context.Context, id uint64) (*models.Report, error) {
	report, err := s.ReportDAO.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

// SeedCategories inserts the missing categories concurrently and returns how many were created.
func (s *ReportService) SeedCategories(ctx context.Context, items []types.ReportCategoryRequest) (int, error) {
	p := pool.NewWithResults[bool]().WithErrors().WithContext(ctx).WithMaxGoroutines(4)
	for _, item := range items {
		item := item
		p.Go(func(ctx context.Context) (bool, error) {
			_, err := s.CreateCategory(ctx, &item)
			if errors.Is(err, ErrCategoryExists) {
				log.L.Info("report category exists", zap.String("title", item.Title))
				return false, nil
			}
			return err == nil, err
		})
	}

	created, err := p.Wait()
	n := 0
	for _, ok := range created {
		if ok {
			n++
		}
	}
	return n, err
}
