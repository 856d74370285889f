package fakers

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/naiastudio/storefront/app/models"
	"github.com/shopspring/decimal"
)

// ProductFaker builds a demo product for dev seeding. Prices land between
// $10.00 and $159.99 with two decimal places.
func ProductFaker(category *models.Category) *models.Product {
	name := faker.Word() + " " + faker.Word()

	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name + "-" + uuid.NewString()[:6]),
		Description: faker.Paragraph(),
		Price:       fakePrice(),
		Image:       "/images/products/demo.jpg",
		IsNew:       rand.Intn(4) == 0,
		MadeToOrder: rand.Intn(3) == 0,
		Materials:   faker.Sentence(),
		Dimensions:  faker.Sentence(),
	}
	if category != nil {
		product.CategoryID = &category.ID
	}
	return product
}

func fakePrice() decimal.Decimal {
	cents := int64(1000 + rand.Intn(15000))
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}
