package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"contact-map-service/internal/adapters/export"
	"contact-map-service/internal/adapters/geocode"
	"contact-map-service/internal/adapters/routing"
	"contact-map-service/internal/adapters/store"
	"contact-map-service/internal/api"
	"contact-map-service/internal/config"
	"contact-map-service/internal/platform/db"
	"contact-map-service/internal/ports"
	"contact-map-service/internal/repository"
	"contact-map-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Redis store, Nominatim, GraphHopper)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	nominatimURL := config.Get("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	graphhopperURL := config.Get("GRAPHHOPPER_BASE_URL", "https://graphhopper.com/api/1")

	// The routing credential is configuration, never a source literal.
	graphhopperKey := os.Getenv("GRAPHHOPPER_API_KEY")
	if strings.TrimSpace(graphhopperKey) == "" {
		log.Fatal("GRAPHHOPPER_API_KEY is required")
	}

	contactStore, cleanup, err := openStore()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	ctx := context.Background()

	repo, err := repository.NewContactRepository(ctx, contactStore)
	if err != nil {
		log.Fatal(err)
	}

	geocoder := geocode.NewNominatimGeocoder(nominatimURL)

	router, err := routing.NewGraphHopperClient(graphhopperKey, graphhopperURL)
	if err != nil {
		log.Fatal(err)
	}

	handler := api.NewRouter(
		repo,
		services.NewGeocodeService(repo, geocoder),
		services.NewRouteService(repo, router),
		export.NewXLSXExporter(),
	)

	// WriteTimeout leaves headroom for the external geocode/route calls a
	// single request may wait on.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStore builds the configured store backend.
// SQLite is the default; Redis keeps the contact blob in an external
// key-value store instead.
func openStore() (ports.ContactStore, func(), error) {
	switch backend := config.Get("STORE_BACKEND", "sqlite"); backend {
	case "sqlite":
		conn, err := db.Open(config.Get("DB_PATH", "data/contacts.db"))
		if err != nil {
			return nil, nil, err
		}
		if err := store.InitSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store.NewSQLiteStore(conn), func() { conn.Close() }, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.Get("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASS"),
		})
		return store.NewRedisStore(client), func() { client.Close() }, nil

	default:
		log.Fatalf("unknown STORE_BACKEND %q (want sqlite or redis)", backend)
		return nil, nil, nil
	}
}
