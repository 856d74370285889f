package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/services"
	"github.com/naiastudio/storefront/app/utils/format"
	"github.com/naiastudio/storefront/app/utils/sessions"
	"github.com/unrolled/render"
)

type CartHandler struct {
	cartSvc  *services.CartService
	sessions *sessions.Store
	render   *render.Render
}

func NewCartHandler(cartSvc *services.CartService, store *sessions.Store, rnd *render.Render) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, sessions: store, render: rnd}
}

type AddCartItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	Items           []models.CartItem `json:"items"`
	Count           int               `json:"count"`
	Subtotal        string            `json:"subtotal"`
	DisplaySubtotal string            `json:"displaySubtotal"`
}

func (h *CartHandler) respondCart(w http.ResponseWriter, items []models.CartItem) {
	if items == nil {
		items = []models.CartItem{}
	}
	subtotal := services.Subtotal(items)
	_ = h.render.JSON(w, http.StatusOK, CartResponse{
		Items:           items,
		Count:           services.ItemCount(items),
		Subtotal:        subtotal.StringFixed(2),
		DisplaySubtotal: format.USD(subtotal),
	})
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondCart(w, h.sessions.GetCartItems(r))
}

// AddItem merges a product into the session cart; adding the same product
// again increments its quantity.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input AddCartItemInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if input.ProductID == "" {
		writeError(h.render, w, http.StatusBadRequest, "productId is required")
		return
	}
	if input.Quantity < 0 {
		writeError(h.render, w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	items := h.sessions.GetCartItems(r)
	items, err := h.cartSvc.AddItem(r.Context(), items, input.ProductID, input.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			writeError(h.render, w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("CartHandler.AddItem: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}

	if err := h.sessions.SaveCartItems(w, r, items); err != nil {
		log.Printf("CartHandler.AddItem: save session: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to add to cart")
		return
	}
	h.respondCart(w, items)
}

// UpdateItem sets a line's quantity; zero removes the line entirely.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var input UpdateCartItemInput
	if !decodeBody(h.render, w, r, &input) {
		return
	}
	if input.Quantity < 0 {
		writeError(h.render, w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	items := h.sessions.GetCartItems(r)
	items, found := h.cartSvc.UpdateQuantity(items, productID, input.Quantity)
	if !found {
		writeError(h.render, w, http.StatusNotFound, "Cart item not found")
		return
	}

	if err := h.sessions.SaveCartItems(w, r, items); err != nil {
		log.Printf("CartHandler.UpdateItem: save session: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	h.respondCart(w, items)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	items := h.sessions.GetCartItems(r)
	items, found := h.cartSvc.RemoveItem(items, productID)
	if !found {
		writeError(h.render, w, http.StatusNotFound, "Cart item not found")
		return
	}

	if err := h.sessions.SaveCartItems(w, r, items); err != nil {
		log.Printf("CartHandler.RemoveItem: save session: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to update cart")
		return
	}
	h.respondCart(w, items)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SaveCartItems(w, r, nil); err != nil {
		log.Printf("CartHandler.Clear: save session: %v", err)
		writeError(h.render, w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	h.respondCart(w, nil)
}
