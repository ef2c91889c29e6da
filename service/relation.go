package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/valentineezeh/leader-are-readers/dao"
	"github.com/valentineezeh/leader-are-readers/models"
	"github.com/valentineezeh/leader-are-readers/pkg/log"
	"github.com/valentineezeh/leader-are-readers/types"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var relationMutations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "author_haven_relation_mutations_total",
		Help: "Relation rows added or removed",
	},
	[]string{"kind", "op"},
)

func init() {
	prometheus.MustRegister(relationMutations)
}

// RelationStore persists (actor, target) pairs of one relation kind.
type RelationStore interface {
	Exists(ctx context.Context, actorID, targetID uint64) (bool, error)
	Add(ctx context.Context, actorID, targetID uint64) error
	Remove(ctx context.Context, actorID, targetID uint64) (int64, error)
	ListActors(ctx context.Context, targetID uint64, p types.Pagination) ([]*models.ActorSummary, int64, error)
}

// Relation adds, removes and lists one kind of user to resource relation.
// K is how callers name the target (username, slug, id) and T the target record.
type Relation[K any, T any] struct {
	Kind  string
	Store RelationStore
	// Resolve returns nil, nil when no target matches key.
	Resolve  func(ctx context.Context, key K) (*T, error)
	TargetID func(target *T) uint64
	// NoSelf rejects an actor relating to itself.
	NoSelf bool
	// OnChange runs after every successful add or remove. Its error is only logged.
	OnChange func(ctx context.Context, actorID, targetID uint64) error
}

type RelationPage[T any] struct {
	Target *T
	Items  []*models.ActorSummary
	Total  int64
}

func (r *Relation[K, T]) resolve(ctx context.Context, key K) (*T, uint64, error) {
	target, err := r.Resolve(ctx, key)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve %s target: %w", r.Kind, err)
	}
	if target == nil {
		return nil, 0, ErrTargetNotFound
	}
	return target, r.TargetID(target), nil
}

// Add moves the pair from absent to present. Adding twice is an error.
func (r *Relation[K, T]) Add(ctx context.Context, actorID uint64, key K) (*T, error) {
	target, targetID, err := r.resolve(ctx, key)
	if err != nil {
		return nil, err
	}
	if r.NoSelf && actorID == targetID {
		return target, ErrSelfRelation
	}

	exists, err := r.Store.Exists(ctx, actorID, targetID)
	if err != nil {
		return target, err
	}
	if exists {
		return target, ErrRelationExists
	}

	if err := r.Store.Add(ctx, actorID, targetID); err != nil {
		if errors.Is(err, dao.ErrDuplicate) {
			return target, ErrRelationExists
		}
		return target, err
	}

	r.changed(ctx, "add", actorID, targetID)
	return target, nil
}

// Remove moves the pair from present to absent. Removing an absent pair is an error.
func (r *Relation[K, T]) Remove(ctx context.Context, actorID uint64, key K) (*T, error) {
	target, targetID, err := r.resolve(ctx, key)
	if err != nil {
		return nil, err
	}

	exists, err := r.Store.Exists(ctx, actorID, targetID)
	if err != nil {
		return target, err
	}
	if !exists {
		return target, ErrRelationMissing
	}

	n, err := r.Store.Remove(ctx, actorID, targetID)
	if err != nil {
		return target, err
	}
	if n == 0 {
		return target, ErrRelationMissing
	}

	r.changed(ctx, "remove", actorID, targetID)
	return target, nil
}

func (r *Relation[K, T]) List(ctx context.Context, key K, p types.Pagination) (*RelationPage[T], error) {
	target, targetID, err := r.resolve(ctx, key)
	if err != nil {
		return nil, err
	}

	items, total, err := r.Store.ListActors(ctx, targetID, p)
	if err != nil {
		return nil, err
	}
	return &RelationPage[T]{Target: target, Items: items, Total: total}, nil
}

func (r *Relation[K, T]) changed(ctx context.Context, op string, actorID, targetID uint64) {
	relationMutations.WithLabelValues(r.Kind, op).Inc()
	if r.OnChange == nil {
		return
	}
	if err := r.OnChange(ctx, actorID, targetID); err != nil {
		log.L.Warn("relation change hook failed",
			zap.String("kind", r.Kind),
			zap.Uint64("actor", actorID),
			zap.Uint64("target", targetID),
			zap.Error(err),
		)
	}
}
