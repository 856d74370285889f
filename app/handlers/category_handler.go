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
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	repo      repositories.CategoryRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewCategoryHandler(repo repositories.CategoryRepositoryImpl, rnd *render.Render, v *validator.Validate) *CategoryHandler {
	return &CategoryHandler{repo: repo, render: rnd, validator: v}
}

type CategoryInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Slug  string `json:"slug" validate:"omitempty,max=100"`
	Image string `json:"image" validate:"omitempty,max=255"`
}

type CategoryUpdateInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug  *string `json:"slug" validate:"omitempty,min=1,max=100"`
	Image *string `json:"image" validate:"omitempty,max=255"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryHandler.List: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("CategoryHandler.Detail: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	if category == nil {
		writeError(h.render, w, http.StatusNotFound, "Category not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input CategoryInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if input.Slug == "" {
		input.Slug = helpers.GenerateSlug(input.Name)
	}

	category := &models.Category{
		ID:    uuid.New().String(),
		Name:  input.Name,
		Slug:  input.Slug,
		Image: input.Image,
	}
	if err := h.repo.Create(r.Context(), category); err != nil {
		log.Printf("CategoryHandler.Create: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input CategoryUpdateInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Update: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	if category == nil {
		writeError(h.render, w, http.StatusNotFound, "Category not found")
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Slug != nil {
		category.Slug = *input.Slug
	}
	if input.Image != nil {
		category.Image = *input.Image
	}

	if err := h.repo.Update(r.Context(), category); err != nil {
		log.Printf("CategoryHandler.Update: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		log.Printf("CategoryHandler.Delete: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if category == nil {
		writeError(h.render, w, http.StatusNotFound, "Category not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}
