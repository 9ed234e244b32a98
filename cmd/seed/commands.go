package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongodoc "github.com/sngm3741/unikz/api/internal/infrastructure/mongo"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Validate the catalog files and upsert them into MongoDB",
	RunE: func(cmd *cobra.Command, _ []string) error {
		loadEnvFile(cmd)
		data, err := readCatalog(cmd)
		if err != nil {
			return err
		}
		drop, _ := cmd.Flags().GetBool("drop")
		return runCatalog(cmd.Context(), data, drop)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog files against their schemas without writing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := readCatalog(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: universities=%d majors=%d\n", len(data.Universities), len(data.Majors))
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("drop", false, "drop the catalog collections before loading")
}

func loadEnvFile(cmd *cobra.Command) {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("WARN: could not read %s: %v", path, err)
	}
}

func readCatalog(cmd *cobra.Command) (*catalogData, error) {
	universityPath, _ := cmd.Flags().GetString("file")
	majorPath, _ := cmd.Flags().GetString("majors")

	universityRaw, err := readSource(universityPath, "data/universities.yaml")
	if err != nil {
		return nil, err
	}
	majorRaw, err := readSource(majorPath, "data/majors.yaml")
	if err != nil {
		return nil, err
	}
	return parseCatalog(universityRaw, majorRaw)
}

func runCatalog(ctx context.Context, data *catalogData, drop bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "unikz")
	collections := mongodoc.DefaultCollections()
	collections.Universities = envOrDefault("UNIVERSITY_COLLECTION", collections.Universities)
	collections.Majors = envOrDefault("MAJOR_COLLECTION", collections.Majors)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		return fmt.Errorf("connect MongoDB: %w", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("WARN: MongoDB disconnect: %v", err)
		}
	}()
	db := client.Database(dbName)

	if drop {
		for _, name := range []string{collections.Universities, collections.Majors} {
			if err := db.Collection(name).Drop(ctx); err != nil {
				// Drop fails on missing collections as well.
				log.Printf("WARN: drop %s: %v", name, err)
			}
		}
		log.Printf("dropped catalog collections")
	}

	if err := mongodoc.EnsureIndexes(ctx, db, collections); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	stats, err := loadCatalog(ctx, data,
		mongodoc.NewAdminUniversityRepository(db, collections.Universities),
		mongodoc.NewAdminMajorRepository(db, collections.Majors),
	)
	if err != nil {
		return err
	}

	log.Printf("seed done: universities inserted=%d updated=%d, majors inserted=%d updated=%d",
		stats.universitiesInserted, stats.universitiesUpdated, stats.majorsInserted, stats.majorsUpdated)
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
