package seeders

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/naiastudio/storefront/app/models"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func price(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Fatalf("seeder: bad price %q: %v", s, err)
	}
	return d
}

func pricePtr(s string) *decimal.Decimal {
	d := price(s)
	return &d
}

// CatalogSeed builds the launch catalog: five categories, twelve products,
// five blog posts and the artist profile.
func CatalogSeed() ([]models.Category, []models.Product, []models.BlogPost, *models.ArtistProfile) {
	categories := []models.Category{
		{ID: uuid.New().String(), Name: "Amigurumi", Slug: "amigurumi", Image: "/images/categories/amigurumi.jpg", ProductCount: 12},
		{ID: uuid.New().String(), Name: "Blankets", Slug: "blankets", Image: "/images/categories/blankets.jpg", ProductCount: 8},
		{ID: uuid.New().String(), Name: "Accessories", Slug: "accessories", Image: "/images/categories/accessories.jpg", ProductCount: 15},
		{ID: uuid.New().String(), Name: "Home Decor", Slug: "home-decor", Image: "/images/categories/home-decor.jpg", ProductCount: 10},
		{ID: uuid.New().String(), Name: "Wearables", Slug: "wearables", Image: "/images/categories/wearables.jpg", ProductCount: 9},
	}

	bySlug := make(map[string]*string, len(categories))
	for i := range categories {
		bySlug[categories[i].Slug] = &categories[i].ID
	}

	products := []models.Product{
		{
			ID:               uuid.New().String(),
			Name:             "Cozy Bunny Amigurumi",
			Slug:             "cozy-bunny-amigurumi",
			Description:      "Adorable handcrafted bunny made with soft cotton yarn. Perfect as a gift or nursery decor. Each bunny is made to order with love and attention to detail.",
			Price:            price("45.00"),
			Image:            "/images/products/bunny-amigurumi.jpg",
			CategoryID:       bySlug["amigurumi"],
			IsNew:            true,
			MadeToOrder:      true,
			Materials:        "100% Cotton Yarn, Polyester Fiberfill",
			CareInstructions: "Spot clean only. Do not machine wash.",
			Dimensions:       "8 inches tall",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Rainbow Bear Friend",
			Slug:        "rainbow-bear-friend",
			Description: "Colorful teddy bear in rainbow pastels. Soft and cuddly, perfect for little ones.",
			Price:       price("38.00"),
			Image:       "/images/products/rainbow-bear.jpg",
			CategoryID:  bySlug["amigurumi"],
			MadeToOrder: true,
			Materials:   "Acrylic Yarn, Polyester Fiberfill, Safety Eyes",
			Dimensions:  "6 inches tall",
		},
		{
			ID:               uuid.New().String(),
			Name:             "Chunky Knit Throw Blanket",
			Slug:             "chunky-knit-throw-blanket",
			Description:      "Luxuriously soft chunky knit blanket in cream. Perfect for cozy evenings on the couch.",
			Price:            price("120.00"),
			OriginalPrice:    pricePtr("150.00"),
			Image:            "/images/products/chunky-blanket.jpg",
			CategoryID:       bySlug["blankets"],
			Materials:        "100% Merino Wool",
			CareInstructions: "Dry clean only",
			Dimensions:       "50x60 inches",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Baby Milestone Blanket",
			Slug:        "baby-milestone-blanket",
			Description: "Beautiful milestone blanket for capturing baby's first year. Features month markers and adorable designs.",
			Price:       price("85.00"),
			Image:       "/images/products/baby-blanket.jpg",
			CategoryID:  bySlug["blankets"],
			IsNew:       true,
			Materials:   "Soft Cotton Blend",
			Dimensions:  "40x40 inches",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Boho Market Tote Bag",
			Slug:        "boho-market-tote-bag",
			Description: "Sturdy and stylish market tote with bohemian flair. Perfect for farmers market trips or beach days.",
			Price:       price("55.00"),
			Image:       "/images/products/market-tote.jpg",
			CategoryID:  bySlug["accessories"],
			Materials:   "100% Cotton, Leather Handles",
			Dimensions:  "15x18 inches",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Cozy Infinity Scarf",
			Slug:        "cozy-infinity-scarf",
			Description: "Warm and fashionable infinity scarf in beautiful autumn colors. The perfect accessory for cooler days.",
			Price:       price("35.00"),
			Image:       "/images/products/infinity-scarf.jpg",
			CategoryID:  bySlug["accessories"],
			Materials:   "Wool Blend",
			Dimensions:  "60 inch circumference",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Macrame Plant Hanger",
			Slug:        "macrame-plant-hanger",
			Description: "Beautiful handcrafted macrame plant hanger. Adds a bohemian touch to any room.",
			Price:       price("32.00"),
			Image:       "/images/products/plant-hanger.jpg",
			CategoryID:  bySlug["home-decor"],
			IsNew:       true,
			Materials:   "100% Cotton Rope",
			Dimensions:  "40 inches long, fits 6 inch pots",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Decorative Pillow Cover",
			Slug:        "decorative-pillow-cover",
			Description: "Textured crochet pillow cover in neutral tones. Adds warmth and character to any sofa or bed.",
			Price:       price("42.00"),
			Image:       "/images/products/pillow-cover.jpg",
			CategoryID:  bySlug["home-decor"],
			Materials:   "Cotton-Linen Blend",
			Dimensions:  "18x18 inches",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Cozy Cable Knit Beanie",
			Slug:        "cozy-cable-knit-beanie",
			Description: "Classic cable knit beanie in soft wool blend. Available in multiple colors.",
			Price:       price("28.00"),
			Image:       "/images/products/cable-beanie.jpg",
			CategoryID:  bySlug["wearables"],
			Materials:   "Wool Blend",
			Dimensions:  "One Size Fits Most",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Fingerless Gloves Set",
			Slug:        "fingerless-gloves-set",
			Description: "Stylish fingerless gloves perfect for typing or crafting. Keeps hands warm while leaving fingers free.",
			Price:       price("24.00"),
			Image:       "/images/products/fingerless-gloves.jpg",
			CategoryID:  bySlug["wearables"],
			MadeToOrder: true,
			Materials:   "Merino Wool",
			Dimensions:  "7 inches long",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Sleepy Fox Amigurumi",
			Slug:        "sleepy-fox-amigurumi",
			Description: "Adorable sleeping fox with a cozy blanket. Perfect bedtime companion for children.",
			Price:       price("52.00"),
			Image:       "/images/products/sleepy-fox.jpg",
			CategoryID:  bySlug["amigurumi"],
			MadeToOrder: true,
			Materials:   "Cotton Yarn, Polyester Fiberfill",
			Dimensions:  "7 inches long",
		},
		{
			ID:          uuid.New().String(),
			Name:        "Rustic Wall Basket Set",
			Slug:        "rustic-wall-basket-set",
			Description: "Set of 3 handwoven wall baskets in natural tones. Perfect for creating a gallery wall.",
			Price:       price("68.00"),
			Image:       "/images/products/wall-baskets.jpg",
			CategoryID:  bySlug["home-decor"],
			Materials:   "Natural Jute and Cotton",
			Dimensions:  "Small: 8in, Medium: 10in, Large: 12in",
		},
	}

	posts := []models.BlogPost{
		{
			ID:       uuid.New().String(),
			Title:    "Getting Started with Amigurumi: A Beginner's Guide",
			Slug:     "getting-started-with-amigurumi",
			Excerpt:  "Learn the basics of creating adorable crocheted stuffed animals with this comprehensive beginner's guide to amigurumi.",
			Content:  "Amigurumi is the Japanese art of crocheting small stuffed animals and creatures. In this guide, we'll cover everything you need to know to get started...",
			Image:    "/images/blog/amigurumi-guide.jpg",
			Category: "Tutorials",
			Author:   "Geraldin",
			ReadTime: "8 min read",
		},
		{
			ID:       uuid.New().String(),
			Title:    "5 Must-Have Yarns for Your Next Project",
			Slug:     "must-have-yarns-next-project",
			Excerpt:  "Discover our top yarn recommendations for different types of crochet projects, from cozy blankets to delicate accessories.",
			Content:  "Choosing the right yarn can make or break your crochet project. Here are our top 5 recommendations for different project types...",
			Image:    "/images/blog/yarn-selection.jpg",
			Category: "Materials",
			Author:   "Geraldin",
			ReadTime: "5 min read",
		},
		{
			ID:       uuid.New().String(),
			Title:    "How to Care for Your Handmade Crochet Items",
			Slug:     "caring-for-handmade-crochet",
			Excerpt:  "Tips and tricks for keeping your handcrafted crochet pieces looking beautiful for years to come.",
			Content:  "Your handmade crochet items deserve special care to maintain their beauty and longevity. Here's how to properly care for them...",
			Image:    "/images/blog/crochet-care.jpg",
			Category: "Tips",
			Author:   "Geraldin",
			ReadTime: "4 min read",
		},
		{
			ID:       uuid.New().String(),
			Title:    "Creating a Cozy Home with Crochet Decor",
			Slug:     "cozy-home-crochet-decor",
			Excerpt:  "Transform your living space with handmade crochet pieces that add warmth and personality to any room.",
			Content:  "Adding handmade crochet elements to your home decor creates a warm, inviting atmosphere that can't be replicated with store-bought items...",
			Image:    "/images/blog/home-decor.jpg",
			Category: "Inspiration",
			Author:   "Geraldin",
			ReadTime: "6 min read",
		},
		{
			ID:       uuid.New().String(),
			Title:    "The Art of Color Combinations in Crochet",
			Slug:     "color-combinations-crochet",
			Excerpt:  "Master the art of choosing beautiful color palettes for your crochet projects with these expert tips.",
			Content:  "Color selection is one of the most exciting parts of starting a new crochet project. Learn how to create stunning color combinations...",
			Image:    "/images/blog/color-theory.jpg",
			Category: "Tutorials",
			Author:   "Geraldin",
			ReadTime: "7 min read",
		},
	}

	artist := &models.ArtistProfile{
		ID:           uuid.New().String(),
		Name:         "Geraldin",
		Bio:          "Hello! I'm Geraldin, the maker behind NAIA. I design and handcraft wearable pieces that blend color, texture, and confidence.",
		Story:        "My journey with textiles started early and has evolved into NAIA, a small studio focused on playful, wearable designs. I value slow craft and thoughtful materials.",
		Image:        "/images/artist/geraldin-profile.jpg",
		InstagramURL: "https://instagram.com/naia",
		PinterestURL: "https://pinterest.com/naia",
		EtsyURL:      "https://etsy.com/shop/naia",
	}

	return categories, products, posts, artist
}

// DBSeed loads the launch catalog into the relational store. It is a no-op
// when categories already exist.
func DBSeed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	categories, products, posts, artist := CatalogSeed()

	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}
	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			return err
		}
	}
	if err := db.Create(artist).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d categories, %d products, %d blog posts", len(categories), len(products), len(posts))
	return nil
}

// MemorySeed loads the launch catalog into an in-memory store.
func MemorySeed(store *repositories.MemoryStore) error {
	ctx := context.Background()
	categories, products, posts, artist := CatalogSeed()

	for i := range categories {
		if err := store.Categories().Create(ctx, &categories[i]); err != nil {
			return err
		}
	}
	for i := range products {
		if err := store.Products().Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	for i := range posts {
		if err := store.Blog().Create(ctx, &posts[i]); err != nil {
			return err
		}
	}
	return store.Artist().Upsert(ctx, artist)
}
