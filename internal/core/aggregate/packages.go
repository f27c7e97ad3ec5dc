package aggregate

import (
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/tripnest/travel-client/internal/core/domain"
)

const placeholderImageBase = "https://source.unsplash.com/random/300x200?travel,"

// PackageSummary is the lightweight package projection used by list views.
type PackageSummary struct {
	ID       domain.ID       `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl"`
}

// BuildPackageIndex projects packages into a lookup keyed by id. A later package
// with a duplicate id replaces the earlier one.
func BuildPackageIndex(pkgs []domain.Package) map[domain.ID]PackageSummary {
	index := make(map[domain.ID]PackageSummary, len(pkgs))
	for _, p := range pkgs {
		index[p.ID] = PackageSummary{
			ID:       p.ID,
			Title:    p.Title,
			Price:    p.Price,
			ImageURL: ImageURL(p),
		}
	}
	return index
}

// ImageURL returns the package image or a placeholder derived from its title.
func ImageURL(p domain.Package) string {
	if p.Image != "" {
		return p.Image
	}
	return placeholderImageBase + url.QueryEscape(p.Title)
}
