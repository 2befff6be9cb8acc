package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bucket-list-client/config"
	"bucket-list-client/di"
	services "bucket-list-client/service"
	"bucket-list-client/store"
	"bucket-list-client/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	venueQuery  string
	venueKind   string
	venueLimit  int
	skipRefresh bool
)

var rootCmd = &cobra.Command{
	Use:   "bucket-list-client",
	Short: "Restaurant bucket list client",
	Long:  `Discovers restaurants near the device location and keeps a per-user bucket list of places to visit.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the client state over HTTP",
	Long:  `Resolves the device location, loads the bucket list and serves the client API until interrupted.`,
	RunE:  runServe,
}

var nearbyCmd = &cobra.Command{
	Use:   "nearby",
	Short: "Print venues around the device location",
	RunE:  runNearby,
}

var bucketListCmd = &cobra.Command{
	Use:   "bucket-list",
	Short: "Print the stored bucket list",
	RunE:  runBucketList,
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the venue snapshots of every stored bucket list once",
	RunE:  runRefresh,
}

func init() {
	serveCmd.Flags().BoolVar(&skipRefresh, "no-refresh", false, "Do not start the periodic snapshot refresher")

	nearbyCmd.Flags().StringVarP(&venueKind, "kind", "k", string(store.KindNearby), "Venue list: nearby, recommended or search")
	nearbyCmd.Flags().StringVarP(&venueQuery, "query", "q", "", "Search query (search kind only)")
	nearbyCmd.Flags().IntVarP(&venueLimit, "limit", "l", 0, "Maximum number of venues")

	rootCmd.AddCommand(serveCmd, nearbyCmd, bucketListCmd, refreshCmd)
}

func newContainer(ctx context.Context) (*di.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return di.NewContainer(ctx, cfg)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container, err := newContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()
	logger := container.Logger

	if interval := container.Config.BucketListRefreshInterval; interval > 0 && !skipRefresh {
		logger.Info("starting periodic job", zap.Duration("interval", interval))
		container.SnapshotRefresher.StartPeriodicJob(ctx, interval)
	}

	if err := container.Coordinator.GetUserLocation().Wait(); err != nil {
		logger.Warn("initial location unavailable", zap.Error(err))
	}
	if err := container.Coordinator.FetchBucketList().Wait(); err != nil {
		logger.Warn("initial bucket list load failed", zap.Error(err))
	}

	return container.BucketListHttpServer.Start(ctx)
}

func runNearby(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	container, err := newContainer(ctx)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.Coordinator.GetUserLocation().Wait(); err != nil {
		return err
	}

	req := services.VenueRequest{Query: venueQuery, Limit: venueLimit}
	var task *services.Task
	kind := store.VenueKind(venueKind)
	switch kind {
	case store.KindNearby:
		task = container.Coordinator.FetchNearbyVenues(req)
	case store.KindRecommended:
		task = container.Coordinator.FetchRecommendedVenues(req)
	case store.KindSearch:
		task = container.Coordinator.SearchVenues(req)
	default:
		return fmt.Errorf("unknown venue kind %q", venueKind)
	}
	if err := task.Wait(); err != nil {
		return err
	}

	util.PrintVenuesPartially(container.Store.State().Venues.List(kind).Venues)
	return nil
}

func runBucketList(cmd *cobra.Command, args []string) error {
	container, err := newContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.Coordinator.FetchBucketList().Wait(); err != nil {
		return err
	}
	util.PrintBucketListPartially(container.Store.State().BucketList.Items)
	return nil
}

func runRefresh(cmd *cobra.Command, args []string) error {
	container, err := newContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer container.Close()

	return container.SnapshotRefresher.RefreshSnapshots(cmd.Context())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
