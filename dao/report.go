package dao

import (
	"context"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/gorm"
)

type ReportCategoryDAO struct {
	Repo[models.ReportCategory]
}

func NewReportCategoryDAO(db *gorm.DB) *ReportCategoryDAO {
	return &ReportCategoryDAO{
		Repo: NewRepo[models.ReportCategory](db),
	}
}

func (d *ReportCategoryDAO) FindByTitle(ctx context.Context, title string) (*models.ReportCategory, error) {
	return d.FindByWhere(ctx, "title = ?", title)
}

func (d *ReportCategoryDAO) All(ctx context.Context) ([]*models.ReportCategory, error) {
	items := make([]*models.ReportCategory, 0)
	err := d.Model(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

type ReportDAO struct {
	Repo[models.Report]
}

func NewReportDAO(db *gorm.DB) *ReportDAO {
	return &ReportDAO{
		Repo: NewRepo[models.Report](db),
	}
}

func (d *ReportDAO) List(ctx context.Context, p types.Pagination) ([]*models.Report, int64, error) {
	var total int64
	if err := d.Model(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*models.Report, 0)
	if total == 0 {
		return items, 0, nil
	}
	err := d.Model(ctx).
		Order("created_at " + p.SafeOrder()).
		Order("id " + p.SafeOrder()).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}
