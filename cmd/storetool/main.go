// storetool initializes the SQLite contact store and optionally resets it to
// the seed list. Useful for local runs and demo data.
package main

import (
	"context"
	"flag"
	"log"

	"contact-map-service/internal/adapters/store"
	"contact-map-service/internal/config"
	"contact-map-service/internal/platform/db"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

func main() {
	reset := flag.Bool("reset", false, "overwrite the stored list with the seed contacts")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/contacts.db")

	conn, err := db.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing store schema...")
	if err := store.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	if !*reset {
		return
	}

	log.Println("Writing seed contacts...")
	s := store.NewSQLiteStore(conn)
	if err := s.Save(context.Background(), store.SeedContacts()); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
