package handlers

import (
	"log"
	"net/http"

	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/naiastudio/storefront/app/services"
	"github.com/naiastudio/storefront/app/utils/calc"
	"github.com/naiastudio/storefront/app/utils/format"
	"github.com/unrolled/render"
)

// fallbackCategoryName is shown when a product's category reference is
// missing or dangling.
const fallbackCategoryName = "Handmade"

type ShopHandler struct {
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
}

func NewShopHandler(productRepo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, rnd *render.Render) *ShopHandler {
	return &ShopHandler{productRepo: productRepo, categoryRepo: categoryRepo, render: rnd}
}

// ProductView is the shop-page view model: numeric price, formatted display
// price and the resolved category display name.
type ProductView struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Slug                 string   `json:"slug"`
	Price                float64  `json:"price"`
	OriginalPrice        *float64 `json:"originalPrice,omitempty"`
	DisplayPrice         string   `json:"displayPrice"`
	DisplayOriginalPrice string   `json:"displayOriginalPrice,omitempty"`
	SavingsPercent       int64    `json:"savingsPercent,omitempty"`
	Image                string   `json:"image"`
	Category             string   `json:"category"`
	IsNew                bool     `json:"isNew"`
	IsSoldOut            bool     `json:"isSoldOut"`
	MadeToOrder          bool     `json:"madeToOrder"`
}

type ShopPage struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
}

// List serves GET /api/shop: the shop page's product grid with the
// client-side contract applied server-side. Search matches product name or
// category display name; sort follows the catalog keys.
func (h *ShopHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	categorySlug := r.URL.Query().Get("category")
	sortKey := r.URL.Query().Get("sort")

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ShopHandler.List: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	var products []models.Product
	if categorySlug != "" {
		category, err := h.categoryRepo.GetBySlug(r.Context(), categorySlug)
		if err != nil {
			log.Printf("ShopHandler.List: %v", err)
			writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
		if category != nil {
			products, err = h.productRepo.GetByCategoryID(r.Context(), category.ID)
		} else {
			products, err = h.productRepo.GetAll(r.Context())
		}
		if err != nil {
			log.Printf("ShopHandler.List: %v", err)
			writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
	} else {
		products, err = h.productRepo.GetAll(r.Context())
		if err != nil {
			log.Printf("ShopHandler.List: %v", err)
			writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
			return
		}
	}

	products = services.SearchProducts(products, categoryNames, search)
	products = services.SortProducts(products, sortKey)

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p, categoryNames))
	}
	_ = h.render.JSON(w, http.StatusOK, ShopPage{Products: views, Total: len(views)})
}

func newProductView(p models.Product, categoryNames map[string]string) ProductView {
	view := ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Price:        p.Price.InexactFloat64(),
		DisplayPrice: format.USD(p.Price),
		Image:        p.Image,
		Category:     fallbackCategoryName,
		IsNew:        p.IsNew,
		IsSoldOut:    p.IsSoldOut,
		MadeToOrder:  p.MadeToOrder,
	}
	if p.CategoryID != nil {
		if name, ok := categoryNames[*p.CategoryID]; ok {
			view.Category = name
		}
	}
	if p.OriginalPrice != nil {
		original := p.OriginalPrice.InexactFloat64()
		view.OriginalPrice = &original
		view.DisplayOriginalPrice = format.USD(*p.OriginalPrice)
		view.SavingsPercent = calc.SavingsPercent(*p.OriginalPrice, p.Price)
	}
	return view
}
