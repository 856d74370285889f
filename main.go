package main

import (
	"log"
	"net/http"
	"os"

	"github.com/naiastudio/storefront/app/cmd"
	"github.com/naiastudio/storefront/app/configs"
	"github.com/naiastudio/storefront/app/db/seeders"
	"github.com/naiastudio/storefront/app/repositories"
	"github.com/naiastudio/storefront/app/routes"
	"github.com/naiastudio/storefront/app/utils/sessions"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	deps := routes.Deps{
		Sessions: sessions.NewStore(env.SESSION_KEY),
	}

	if env.STORE == "memory" {
		// Demo mode: seeded in-memory catalog, nothing persisted.
		store := repositories.NewMemoryStore()
		if err := seeders.MemorySeed(store); err != nil {
			log.Fatal("In-memory seed failed:", err)
		}
		deps.CategoryRepo = store.Categories()
		deps.ProductRepo = store.Products()
		deps.BlogRepo = store.Blog()
		deps.ArtistRepo = store.Artist()
		log.Println("Using in-memory store")
	} else {
		db, err := configs.OpenConnection()
		if err != nil {
			log.Fatal("DB connection failed:", err)
		}
		log.Println("Database connected")

		deps.CategoryRepo = repositories.NewCategoryRepository(db)
		deps.ProductRepo = repositories.NewProductRepository(db)
		deps.BlogRepo = repositories.NewBlogRepository(db)
		deps.ArtistRepo = repositories.NewArtistRepository(db)
	}

	router := routes.NewRouter(deps)

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}
	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("Server stopped:", err)
	}

}
