package aggregate

import (
	"slices"
	"strings"

	"github.com/tripnest/travel-client/internal/core/domain"
)

const (
	SortTitleAsc  = "title_asc"
	SortTitleDesc = "title_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"

	DefaultPerPage = 6
)

// CatalogQuery filters, orders and pages the package catalog. Page is 1-based.
type CatalogQuery struct {
	Search   string `json:"search" query:"search"`
	Category string `json:"category" query:"category"`
	Sort     string `json:"sort" query:"sort" validate:"omitempty,oneof=title_asc title_desc price_asc price_desc"`
	Page     int    `json:"page" query:"page" validate:"gte=0"`
	PerPage  int    `json:"perPage" query:"per_page" validate:"gte=0,lte=100"`
}

type CatalogPage struct {
	Items      []domain.Package `json:"items"`
	Categories []string         `json:"categories"`
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	TotalItems int              `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// Categories returns the distinct non-empty categories in first-seen order.
func Categories(pkgs []domain.Package) []string {
	seen := make(map[string]struct{}, len(pkgs))
	out := make([]string, 0)
	for _, p := range pkgs {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// QueryCatalog applies the search, category filter and sort to pkgs and returns
// the requested page. A page past the end is empty.
func QueryCatalog(pkgs []domain.Package, q CatalogQuery) CatalogPage {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	filtered := make([]domain.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}
		filtered = append(filtered, p)
	}

	slices.SortStableFunc(filtered, catalogOrder(q.Sort))

	total := len(filtered)
	start := total
	if page-1 <= total/perPage {
		start = min((page-1)*perPage, total)
	}
	end := start + min(perPage, total-start)

	pages := 0
	if total > 0 {
		pages = (total-1)/perPage + 1
	}

	return CatalogPage{
		Items:      filtered[start:end],
		Categories: Categories(pkgs),
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: pages,
	}
}

func catalogOrder(sort string) func(a, b domain.Package) int {
	switch sort {
	case SortTitleDesc:
		return func(a, b domain.Package) int { return strings.Compare(b.Title, a.Title) }
	case SortPriceAsc:
		return func(a, b domain.Package) int { return a.Price.Cmp(b.Price) }
	case SortPriceDesc:
		return func(a, b domain.Package) int { return b.Price.Cmp(a.Price) }
	default:
		return func(a, b domain.Package) int { return strings.Compare(a.Title, b.Title) }
	}
}
