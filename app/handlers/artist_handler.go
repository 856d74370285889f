package handlers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/unrolled/render"
)

type ArtistHandler struct {
	repo      repositories.ArtistRepositoryImpl
	render    *render.Render
	validator *validator.Validate
}

func NewArtistHandler(repo repositories.ArtistRepositoryImpl, rnd *render.Render, v *validator.Validate) *ArtistHandler {
	return &ArtistHandler{repo: repo, render: rnd, validator: v}
}

type ArtistInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	Bio          string `json:"bio" validate:"required"`
	Story        string `json:"story"`
	Image        string `json:"image" validate:"omitempty,max=255"`
	InstagramURL string `json:"instagramUrl" validate:"omitempty,url,max=255"`
	PinterestURL string `json:"pinterestUrl" validate:"omitempty,url,max=255"`
	EtsyURL      string `json:"etsyUrl" validate:"omitempty,url,max=255"`
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.repo.Get(r.Context())
	if err != nil {
		log.Printf("ArtistHandler.Get: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to fetch artist profile")
		return
	}
	if profile == nil {
		writeError(h.render, w, http.StatusNotFound, "Artist profile not found")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, profile)
}

// Upsert replaces the singleton profile, creating it when none exists yet.
func (h *ArtistHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var input ArtistInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if err := h.validator.Struct(&input); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	profile, err := h.repo.Get(r.Context())
	if err != nil {
		log.Printf("ArtistHandler.Upsert: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update artist profile")
		return
	}
	if profile == nil {
		profile = &models.ArtistProfile{ID: uuid.New().String()}
	}

	profile.Name = input.Name
	profile.Bio = input.Bio
	profile.Story = input.Story
	profile.Image = input.Image
	profile.InstagramURL = input.InstagramURL
	profile.PinterestURL = input.PinterestURL
	profile.EtsyURL = input.EtsyURL

	if err := h.repo.Upsert(r.Context(), profile); err != nil {
		log.Printf("ArtistHandler.Upsert: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update artist profile")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, profile)
}
