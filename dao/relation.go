package dao

import (
	"context"
	"fmt"

	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/types"

	"gorm.io/gorm"
)

type Table interface {
	TableName() string
}

// RelationDAO stores a join row holding exactly two foreign keys: the acting
// user and the target. The pair is covered by a unique index.
type RelationDAO[T Table] struct {
	Repo[T]
	ActorColumn  string
	TargetColumn string
	New          func(actorID, targetID uint64) *T
}

func NewRelationDAO[T Table](db *gorm.DB, actorColumn, targetColumn string, newFn func(actorID, targetID uint64) *T) RelationDAO[T] {
	return RelationDAO[T]{
		Repo:         NewRepo[T](db),
		ActorColumn:  actorColumn,
		TargetColumn: targetColumn,
		New:          newFn,
	}
}

func (d *RelationDAO[T]) pair() string {
	return fmt.Sprintf("%s = ? AND %s = ?", d.ActorColumn, d.TargetColumn)
}

func (d *RelationDAO[T]) Exists(ctx context.Context, actorID, targetID uint64) (bool, error) {
	return d.IsExist(ctx, d.pair(), actorID, targetID)
}

// Add inserts the pair. A concurrent duplicate surfaces as ErrDuplicate.
func (d *RelationDAO[T]) Add(ctx context.Context, actorID, targetID uint64) error {
	return d.Create(ctx, d.New(actorID, targetID))
}

// Remove deletes the pair and reports how many rows went away.
func (d *RelationDAO[T]) Remove(ctx context.Context, actorID, targetID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).Where(d.pair(), actorID, targetID).Delete(new(T))
	return res.RowsAffected, res.Error
}

func (d *RelationDAO[T]) CountActors(ctx context.Context, targetID uint64) (int64, error) {
	return d.FindCount(ctx, d.TargetColumn+" = ?", targetID)
}

func (d *RelationDAO[T]) CountTargets(ctx context.Context, actorID uint64) (int64, error) {
	return d.FindCount(ctx, d.ActorColumn+" = ?", actorID)
}

// ListActors pages through the users related to targetID, newest first by default.
func (d *RelationDAO[T]) ListActors(ctx context.Context, targetID uint64, p types.Pagination) ([]*models.ActorSummary, int64, error) {
	return d.listUsers(ctx, d.TargetColumn, targetID, d.ActorColumn, p)
}

// listUsers filters rows on filterColumn and joins users on userColumn.
func (d *RelationDAO[T]) listUsers(ctx context.Context, filterColumn string, id uint64, userColumn string, p types.Pagination) ([]*models.ActorSummary, int64, error) {
	var zero T
	table := zero.TableName() + " AS r"
	where := "r." + filterColumn + " = ?"

	var total int64
	if err := d.Db.WithContext(ctx).Table(table).Where(where, id).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*models.ActorSummary, 0)
	if total == 0 {
		return items, 0, nil
	}

	order := p.SafeOrder()
	err := d.Db.WithContext(ctx).
		Table(table).
		Select("u.username").
		Joins("JOIN users u ON u.id = r."+userColumn).
		Where(where, id).
		Order("r.created_at " + order).
		Order("r.id " + order).
		Limit(p.Limit).
		Offset(p.Offset()).
		Scan(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
