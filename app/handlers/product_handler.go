package handlers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/naiastudio/storefront/app/helpers"
	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/naiastudio/storefront/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	repo         repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	render       *render.Render
	validator    *validator.Validate
}

func NewProductHandler(repo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, rnd *render.Render, v *validator.Validate) *ProductHandler {
	return &ProductHandler{repo: repo, categoryRepo: categoryRepo, render: rnd, validator: v}
}

type ProductInput struct {
	Name             string           `json:"name" validate:"required,max=255"`
	Slug             string           `json:"slug" validate:"omitempty,max=255"`
	Description      string           `json:"description"`
	Price            decimal.Decimal  `json:"price"`
	OriginalPrice    *decimal.Decimal `json:"originalPrice"`
	Image            string           `json:"image" validate:"required,max=255"`
	CategoryID       *string          `json:"categoryId"`
	IsNew            bool             `json:"isNew"`
	IsSoldOut        bool             `json:"isSoldOut"`
	MadeToOrder      bool             `json:"madeToOrder"`
	Materials        string           `json:"materials" validate:"omitempty,max=255"`
	CareInstructions string           `json:"careInstructions" validate:"omitempty,max=255"`
	Dimensions       string           `json:"dimensions" validate:"omitempty,max=255"`
}

type ProductUpdateInput struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Slug             *string          `json:"slug" validate:"omitempty,min=1,max=255"`
	Description      *string          `json:"description"`
	Price            *decimal.Decimal `json:"price"`
	OriginalPrice    *decimal.Decimal `json:"originalPrice"`
	Image            *string          `json:"image" validate:"omitempty,min=1,max=255"`
	CategoryID       *string          `json:"categoryId"`
	IsNew            *bool            `json:"isNew"`
	IsSoldOut        *bool            `json:"isSoldOut"`
	MadeToOrder      *bool            `json:"madeToOrder"`
	Materials        *string          `json:"materials" validate:"omitempty,max=255"`
	CareInstructions *string          `json:"careInstructions" validate:"omitempty,max=255"`
	Dimensions       *string          `json:"dimensions" validate:"omitempty,max=255"`
}

// List serves GET /api/products. A non-empty search wins over the category
// filter. An unknown category slug falls back to the full product list rather
// than a 404. The optional sort key applies the catalog order.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	categorySlug := r.URL.Query().Get("category")
	sortKey := r.URL.Query().Get("sort")

	var (
		products []models.Product
		err      error
	)

	switch {
	case search != "":
		products, err = h.repo.Search(r.Context(), search)
	case categorySlug != "":
		var category *models.Category
		category, err = h.categoryRepo.GetBySlug(r.Context(), categorySlug)
		if err == nil {
			if category != nil {
				products, err = h.repo.GetByCategoryID(r.Context(), category.ID)
			} else {
				products, err = h.repo.GetAll(r.Context())
			}
		}
	default:
		products, err = h.repo.GetAll(r.Context())
	}

	if err != nil {
		log.Printf("ProductHandler.List: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	if sortKey != "" {
		products = services.SortProducts(products, sortKey)
	}
	if products == nil {
		products = []models.Product{}
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("ProductHandler.Detail: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if product == nil {
		writeError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input ProductInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		writeValidationError(h.render, w, err)
		return
	}
	if input.Price.IsNegative() {
		writeError(h.render, w, http.StatusBadRequest, "price must not be negative")
		return
	}

	if input.Slug == "" {
		input.Slug = helpers.GenerateSlug(input.Name)
	}

	product := &models.Product{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Slug:             input.Slug,
		Description:      input.Description,
		Price:            input.Price,
		OriginalPrice:    input.OriginalPrice,
		Image:            input.Image,
		CategoryID:       input.CategoryID,
		IsNew:            input.IsNew,
		IsSoldOut:        input.IsSoldOut,
		MadeToOrder:      input.MadeToOrder,
		Materials:        input.Materials,
		CareInstructions: input.CareInstructions,
		Dimensions:       input.Dimensions,
	}
	if err := h.repo.Create(r.Context(), product); err != nil {
		log.Printf("ProductHandler.Create: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input ProductUpdateInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		writeValidationError(h.render, w, err)
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		writeError(h.render, w, http.StatusBadRequest, "price must not be negative")
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	if product == nil {
		writeError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.IsNew != nil {
		product.IsNew = *input.IsNew
	}
	if input.IsSoldOut != nil {
		product.IsSoldOut = *input.IsSoldOut
	}
	if input.MadeToOrder != nil {
		product.MadeToOrder = *input.MadeToOrder
	}
	if input.Materials != nil {
		product.Materials = *input.Materials
	}
	if input.CareInstructions != nil {
		product.CareInstructions = *input.CareInstructions
	}
	if input.Dimensions != nil {
		product.Dimensions = *input.Dimensions
	}

	if err := h.repo.Update(r.Context(), product); err != nil {
		log.Printf("ProductHandler.Update: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		log.Printf("ProductHandler.Delete: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	if product == nil {
		writeError(h.render, w, http.StatusNotFound, "Product not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}
