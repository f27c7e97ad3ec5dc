package ports

import (
	"context"

	"github.com/tripnest/travel-client/internal/core/aggregate"
	"github.com/tripnest/travel-client/internal/core/domain"
)

// ViewsService loads the collections a page needs and derives its view.
type ViewsService interface {
	// Dashboard uses reference for the upcoming cut-off; a zero reference means today.
	Dashboard(ctx context.Context, actor domain.Identity, reference domain.Date) (*aggregate.Dashboard, error)
	History(ctx context.Context, actor domain.Identity) (*aggregate.History, error)
	Catalog(ctx context.Context, q aggregate.CatalogQuery) (*aggregate.CatalogPage, error)
	Package(ctx context.Context, id domain.ID) (*domain.Package, error)
}
