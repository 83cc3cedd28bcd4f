package queries

import (
	"context"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/property"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/pkg/errs"
)

var ErrPropertyNotFound = errs.New("property not found")

type CatalogQueries interface {
	ListProperties(ctx context.Context, filter property.Filter) ([]*PropertyView, error)
	ListFeatured(ctx context.Context) ([]*PropertyView, error)
	GetProperty(ctx context.Context, id string) (*PropertyView, error)
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id string) (*property.Property, error)
	List(ctx context.Context, filter property.Filter) ([]*property.Property, error)
	ListFeatured(ctx context.Context) ([]*property.Property, error)
}

type catalogQueriesImpl struct {
	store PropertyReadStore
}

func NewCatalogQueries(store PropertyReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListProperties(ctx context.Context, filter property.Filter) ([]*PropertyView, error) {
	props, err := q.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toPropertyViews(props), nil
}

func (q *catalogQueriesImpl) ListFeatured(ctx context.Context) ([]*PropertyView, error) {
	props, err := q.store.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	return toPropertyViews(props), nil
}

func (q *catalogQueriesImpl) GetProperty(ctx context.Context, id string) (*PropertyView, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return NewPropertyView(p), nil
}

func toPropertyViews(props []*property.Property) []*PropertyView {
	views := make([]*PropertyView, 0, len(props))
	for _, p := range props {
		views = append(views, NewPropertyView(p))
	}
	return views
}
