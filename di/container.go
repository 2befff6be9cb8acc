package di

import (
	"context"
	"fmt"

	"bucket-list-client/api"
	"bucket-list-client/api/places"
	"bucket-list-client/config"
	"bucket-list-client/dao/redis"
	"bucket-list-client/db"
	"bucket-list-client/geolocation"
	"bucket-list-client/logging"
	"bucket-list-client/models"
	"bucket-list-client/server"
	"bucket-list-client/server/handlers"
	services "bucket-list-client/service"
	"bucket-list-client/store"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Registry *prometheus.Registry

	RedisClient          db.RedisClient
	BucketListDao        *redis.RedisBucketListDAO
	PlacesAPI            places.PlacesAPI
	Store                *store.Store
	DevicePlatform       *geolocation.FixedPlatform
	GeoCoordinator       *geolocation.Coordinator
	TaskRunner           *services.TaskRunner
	VenueService         *services.VenueService
	LocationService      *services.LocationService
	BucketListService    *services.BucketListService
	AuthService          *services.AuthService
	Coordinator          *services.Coordinator
	SnapshotRefresher    *services.SnapshotRefresherService
	MuxRouter            *mux.Router
	Router               *server.Router
	BucketListHttpServer *server.BucketListHttpServer

	closers []func() error
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := logging.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("initializing container",
		zap.String("env", cfg.AppEnv),
		zap.String("storage", cfg.StorageBackend),
		zap.String("places_mode", cfg.PlacesMode),
		logging.Secret("places_api_key", cfg.PlacesAPIKey))

	c := &Container{Config: cfg, Logger: logger}

	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Initialize storage
	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}
	c.BucketListDao = redis.NewRedisBucketListDAO(c.RedisClient, logger)

	// Initialize places API
	if err := c.initPlacesAPI(); err != nil {
		c.Close()
		return nil, err
	}

	// Initialize state and device location
	c.Store = store.New(store.InitialState(cfg.UserID), logger)
	c.DevicePlatform = geolocation.NewFixedPlatform(
		models.Coordinates{Latitude: cfg.DeviceLat, Longitude: cfg.DeviceLng},
		cfg.DeviceLocationAllowed,
	)
	c.GeoCoordinator = geolocation.NewCoordinator(c.DevicePlatform, logger,
		geolocation.WithWatchCeiling(cfg.LocationWatchCeiling),
		geolocation.WithWatchOptions(geolocation.WatchOptions{Interval: cfg.LocationWatchInterval, DistanceInterval: 10}),
	)

	// Initialize service layer
	c.TaskRunner = services.NewTaskRunner(c.Store, logger)
	c.VenueService = services.NewVenueService(c.PlacesAPI, c.Store, logger)
	c.LocationService = services.NewLocationService(c.GeoCoordinator, c.Store, cfg.LocationWatch, logger)
	c.BucketListService = services.NewBucketListService(c.BucketListDao, c.PlacesAPI, c.Store, cfg.UserID, logger)
	c.AuthService = services.NewAuthService(cfg.UserID, cfg.IsDevelopment(), logger)
	c.Coordinator = services.NewCoordinator(c.TaskRunner, c.VenueService, c.LocationService, c.BucketListService, c.AuthService)

	c.SnapshotRefresher = services.NewSnapshotRefresherService(c.BucketListService, c.BucketListDao,
		func(userID string) {
			// reload the list in memory when the refreshed user is the one signed in
			if userID == store.SelectUserID(c.Store.State()) {
				c.Coordinator.FetchBucketList()
			}
		}, logger)

	// Initialize handlers, router and server
	c.MuxRouter = mux.NewRouter()
	c.Router = server.NewRouter(
		handlers.NewVenueHandler(c.Coordinator, c.Store, logger),
		handlers.NewBucketListHandler(c.Coordinator, c.Store, logger),
		handlers.NewLocationHandler(c.Coordinator, c.Store, logger),
		handlers.NewAuthHandler(c.Coordinator, c.Store, logger),
		handlers.NewDebugHandler(c.Store, logger),
		c.Registry,
		c.MuxRouter,
	)
	c.BucketListHttpServer = server.NewBucketListHttpServer(cfg.HTTPAddr, c.Router, c.MuxRouter, logger)

	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	if c.Config.StorageBackend == config.STORAGE_BACKEND_MEMORY {
		c.Logger.Info("using in-memory storage")
		c.RedisClient = db.NewMockRedisClient()
		return nil
	}

	redisInternalClient := goredis.NewClient(&goredis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPassword.Value(),
		DB:       c.Config.RedisDB,
	})
	redisClient, err := db.NewGoRedisClient(ctx, redisInternalClient, c.Logger)
	if err != nil {
		redisInternalClient.Close()
		return fmt.Errorf("connecting to redis at %s: %w", c.Config.RedisAddr, err)
	}
	c.RedisClient = redisClient
	c.closers = append(c.closers, redisClient.Close)
	return nil
}

func (c *Container) initPlacesAPI() error {
	if c.Config.PlacesMode == config.PLACES_MODE_FIXTURE {
		c.Logger.Info("using fixture places api")
		mock, err := places.NewFixturePlacesAPIClientMock(
			config.GetResourcePath(config.SEARCH_RESPONSE_RESOURCE),
			config.GetResourcePath(config.PLACE_DETAILS_RESOURCE),
		)
		if err != nil {
			return fmt.Errorf("loading places fixtures: %w", err)
		}
		c.PlacesAPI = mock
		return nil
	}

	httpClient := api.NewHTTPClient(c.Config.PlacesBaseURL,
		api.WithTimeout(c.Config.PlacesTimeout),
		api.WithRateLimit(c.Config.PlacesRateLimit, c.Config.PlacesRateBurst),
		api.WithMetrics(api.NewMetrics(c.Registry)),
		api.WithLogger(c.Logger),
	)
	client, err := places.NewPlacesAPIClient(httpClient, c.Config.PlacesAPIKey)
	if err != nil {
		return err
	}
	c.PlacesAPI = client
	return nil
}

// Close stops background work and releases connections.
func (c *Container) Close() {
	if c.Coordinator != nil {
		c.Coordinator.Shutdown()
	}
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.Logger.Warn("closing resource failed", zap.Error(err))
		}
	}
	_ = c.Logger.Sync()
}
