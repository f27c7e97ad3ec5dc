package gateway

import (
	"context"
	"net/http"

	"github.com/tripnest/travel-client/internal/core/domain"
)

const resourcePackages = "packages"

func (c *Client) ListPackages(ctx context.Context) ([]domain.Package, error) {
	var pkgs []domain.Package
	err := c.do(ctx, call{
		resource: resourcePackages,
		op:       "list packages",
		fallback: "Failed to fetch packages",
		method:   http.MethodGet,
		path:     "/packages",
	}, &pkgs)
	return pkgs, err
}

func (c *Client) GetPackage(ctx context.Context, id domain.ID) (*domain.Package, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	var p domain.Package
	err := c.do(ctx, call{
		resource: resourcePackages,
		op:       "get package",
		fallback: "Failed to fetch package",
		method:   http.MethodGet,
		path:     itemPath("packages", id),
	}, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreatePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error) {
	created := pkg
	err := c.do(ctx, call{
		resource: resourcePackages,
		op:       "create package",
		fallback: "Failed to add package",
		method:   http.MethodPost,
		path:     "/admin/packages",
		body:     pkg,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePackage(ctx context.Context, pkg domain.Package) (*domain.Package, error) {
	if err := requireID(pkg.ID); err != nil {
		return nil, err
	}
	updated := pkg
	err := c.do(ctx, call{
		resource: resourcePackages,
		op:       "update package",
		fallback: "Failed to update package",
		method:   http.MethodPut,
		path:     itemPath("admin/packages", pkg.ID),
		body:     pkg,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePackage(ctx context.Context, id domain.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.do(ctx, call{
		resource: resourcePackages,
		op:       "delete package",
		fallback: "Failed to delete package",
		method:   http.MethodDelete,
		path:     itemPath("admin/packages", id),
	}, nil)
}
