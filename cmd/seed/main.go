package main

import (
	"context"
	"fmt"
	"os"
	"pathfinder/internal/catalog"
	"pathfinder/internal/config"
	"pathfinder/internal/logger"
	"pathfinder/internal/repository"
	"pathfinder/internal/service"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var name, uploadedBy string

	cmd := &cobra.Command{
		Use:   "seed <weights.csv>",
		Short: "Store a weights CSV as a custom catalog",
		Long: "Parses the CSV the same way an admin upload does and inserts it into MongoDB.\n" +
			"The printed id can be passed as catalogId when starting a session.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = args[0]
			}
			return seed(cmd.Context(), name, string(data), uploadedBy)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (defaults to the file path)")
	cmd.Flags().StringVar(&uploadedBy, "uploaded-by", "seed", "recorded uploader")
	return cmd
}

func seed(ctx context.Context, name, csv, uploadedBy string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logging.Mode, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer client.Disconnect(context.Background())

	repo := repository.NewCatalogRepo(client.Database(cfg.Mongo.Database))
	svc := service.NewCatalogService(repo, catalog.Default(), log)

	upload, stats, err := svc.Upload(ctx, name, csv, uploadedBy)
	if err != nil {
		return err
	}

	fmt.Printf("Created catalog %q (%s): %d programs, %d UG, %d PG, %d excluded\n",
		upload.Name, upload.ID, stats.Total, stats.Undergraduate, stats.Postgraduate, stats.Excluded)
	if len(stats.UnknownCodes) > 0 {
		fmt.Printf("Unknown degree codes (placed in UG): %v\n", stats.UnknownCodes)
	}
	return nil
}
