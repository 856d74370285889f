package services

import (
	"context"
	"errors"

	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound reports an add-to-cart for a product id that does not
// exist in the catalog.
var ErrProductNotFound = errors.New("product not found")

// CartService applies the session-cart rules: line items merge by product id,
// repeat adds increment quantity, and a quantity of zero removes the line.
type CartService struct {
	productRepo repositories.ProductRepositoryImpl
}

func NewCartService(productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{productRepo: productRepo}
}

// AddItem merges a product into the cart. Adding a product already in the
// cart increments its quantity instead of creating a second line.
func (s *CartService) AddItem(ctx context.Context, items []models.CartItem, productID string, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	for i, item := range items {
		if item.ProductID == productID {
			items[i].Quantity += quantity
			return items, nil
		}
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	items = append(items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Image:     product.Image,
	})
	return items, nil
}

// UpdateQuantity sets a line's quantity. Zero or less deletes the line
// entirely. The second return reports whether the line existed.
func (s *CartService) UpdateQuantity(items []models.CartItem, productID string, quantity int) ([]models.CartItem, bool) {
	for i, item := range items {
		if item.ProductID == productID {
			if quantity <= 0 {
				return append(items[:i], items[i+1:]...), true
			}
			items[i].Quantity = quantity
			return items, true
		}
	}
	return items, false
}

// RemoveItem deletes a line. The second return reports whether it existed.
func (s *CartService) RemoveItem(items []models.CartItem, productID string) ([]models.CartItem, bool) {
	for i, item := range items {
		if item.ProductID == productID {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// Subtotal sums price times quantity across all lines.
func Subtotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ItemCount sums line quantities.
func ItemCount(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
