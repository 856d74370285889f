package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/naiastudio/storefront/app/handlers"
	"github.com/naiastudio/storefront/app/middlewares"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/naiastudio/storefront/app/services"
	"github.com/naiastudio/storefront/app/utils/renderer"
	"github.com/naiastudio/storefront/app/utils/sessions"
)

// Deps are the stores and session backend the router serves from. Tests wire
// the in-memory adapters here; main wires the gorm ones.
type Deps struct {
	CategoryRepo repositories.CategoryRepositoryImpl
	ProductRepo  repositories.ProductRepositoryImpl
	BlogRepo     repositories.BlogRepositoryImpl
	ArtistRepo   repositories.ArtistRepositoryImpl
	Sessions     *sessions.Store
}

func NewRouter(deps Deps) *mux.Router {
	rnd := renderer.New()
	validate := validator.New()
	cartSvc := services.NewCartService(deps.ProductRepo)

	categoryHandler := handlers.NewCategoryHandler(deps.CategoryRepo, rnd, validate)
	productHandler := handlers.NewProductHandler(deps.ProductRepo, deps.CategoryRepo, rnd, validate)
	blogHandler := handlers.NewBlogHandler(deps.BlogRepo, rnd, validate)
	artistHandler := handlers.NewArtistHandler(deps.ArtistRepo, rnd, validate)
	shopHandler := handlers.NewShopHandler(deps.ProductRepo, deps.CategoryRepo, rnd)
	cartHandler := handlers.NewCartHandler(cartSvc, deps.Sessions, rnd)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.RequestLogger)

	api.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	api.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	api.HandleFunc("/categories/{slug}", categoryHandler.Detail).Methods("GET")
	api.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")

	api.HandleFunc("/products", productHandler.List).Methods("GET")
	api.HandleFunc("/products", productHandler.Create).Methods("POST")
	api.HandleFunc("/products/{slug}", productHandler.Detail).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	api.HandleFunc("/blog", blogHandler.List).Methods("GET")
	api.HandleFunc("/blog", blogHandler.Create).Methods("POST")
	api.HandleFunc("/blog/{slug}", blogHandler.Detail).Methods("GET")
	api.HandleFunc("/blog/{id}", blogHandler.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/blog/{id}", blogHandler.Delete).Methods("DELETE")

	api.HandleFunc("/artist", artistHandler.Get).Methods("GET")
	api.HandleFunc("/artist", artistHandler.Upsert).Methods("PUT", "PATCH")

	api.HandleFunc("/shop", shopHandler.List).Methods("GET")

	api.HandleFunc("/cart", cartHandler.Get).Methods("GET")
	api.HandleFunc("/cart", cartHandler.Clear).Methods("DELETE")
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods("POST")
	api.HandleFunc("/cart/items/{productId}", cartHandler.UpdateItem).Methods("PUT", "PATCH")
	api.HandleFunc("/cart/items/{productId}", cartHandler.RemoveItem).Methods("DELETE")

	return router
}
