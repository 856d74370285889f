package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/naiastudio/storefront/app/helpers"
	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/naiastudio/storefront/app/services"
	"github.com/unrolled/render"
)

type BlogHandler struct {
	repo      repositories.BlogRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewBlogHandler(repo repositories.BlogRepositoryImpl, rnd *render.Render, v *validator.Validate) *BlogHandler {
	return &BlogHandler{repo: repo, render: rnd, validator: v}
}

type BlogPostInput struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Slug        string     `json:"slug" validate:"omitempty,max=255"`
	Excerpt     string     `json:"excerpt" validate:"required"`
	Content     string     `json:"content"`
	Image       string     `json:"image" validate:"required,max=255"`
	Category    string     `json:"category" validate:"required,max=100"`
	Author      string     `json:"author" validate:"required,max=100"`
	ReadTime    string     `json:"readTime" validate:"required,max=50"`
	PublishedAt *time.Time `json:"publishedAt"`
}

type BlogPostUpdateInput struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Slug        *string    `json:"slug" validate:"omitempty,min=1,max=255"`
	Excerpt     *string    `json:"excerpt" validate:"omitempty,min=1"`
	Content     *string    `json:"content"`
	Image       *string    `json:"image" validate:"omitempty,min=1,max=255"`
	Category    *string    `json:"category" validate:"omitempty,min=1,max=100"`
	Author      *string    `json:"author" validate:"omitempty,min=1,max=100"`
	ReadTime    *string    `json:"readTime" validate:"omitempty,min=1,max=50"`
	PublishedAt *time.Time `json:"publishedAt"`
}

// FeaturedFeed is the blog listing shape when the featured slot is requested.
type FeaturedFeed struct {
	Featured *models.BlogPost  `json:"featured"`
	Posts    []models.BlogPost `json:"posts"`
}

// List serves GET /api/blog. The category filter matches the free-text
// category case-insensitively, with "all" as a bypass sentinel. With
// featured=1 the first post is promoted to the featured slot unless a filter
// or search is active.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")
	featured := r.URL.Query().Get("featured")

	categoryActive := category != "" && !strings.EqualFold(category, services.CategoryBypass)

	var (
		posts []models.BlogPost
		err   error
	)
	if categoryActive {
		posts, err = h.repo.GetByCategory(r.Context(), category)
	} else {
		posts, err = h.repo.GetAll(r.Context())
	}
	if err != nil {
		log.Printf("BlogHandler.List: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch blog posts")
		return
	}

	if search != "" {
		posts = services.SearchPosts(posts, search)
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}

	if featured != "" {
		slot, grid := services.SplitFeatured(posts, categoryActive, search != "")
		_ = h.render.JSON(w, http.StatusOK, FeaturedFeed{Featured: slot, Posts: grid})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("BlogHandler.Detail: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	if post == nil {
		writeError(h.render, w, http.StatusNotFound, "Blog post not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input BlogPostInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if input.Slug == "" {
		input.Slug = helpers.GenerateSlug(input.Title)
	}

	post := &models.BlogPost{
		ID:       uuid.New().String(),
		Title:    input.Title,
		Slug:     input.Slug,
		Excerpt:  input.Excerpt,
		Content:  input.Content,
		Image:    input.Image,
		Category: input.Category,
		Author:   input.Author,
		ReadTime: input.ReadTime,
	}
	if input.PublishedAt != nil {
		post.PublishedAt = *input.PublishedAt
	}

	if err := h.repo.Create(r.Context(), post); err != nil {
		log.Printf("BlogHandler.Create: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var input BlogPostUpdateInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	post, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("BlogHandler.Update: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update blog post")
		return
	}
	if post == nil {
		writeError(h.render, w, http.StatusNotFound, "Blog post not found")
		return
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Slug != nil {
		post.Slug = *input.Slug
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Author != nil {
		post.Author = *input.Author
	}
	if input.ReadTime != nil {
		post.ReadTime = *input.ReadTime
	}
	if input.PublishedAt != nil {
		post.PublishedAt = *input.PublishedAt
	}

	if err := h.repo.Update(r.Context(), post); err != nil {
		log.Printf("BlogHandler.Update: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update blog post")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, post)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		log.Printf("BlogHandler.Delete: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}
	if post == nil {
		writeError(h.render, w, http.StatusNotFound, "Blog post not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, post)
}
