package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/config"
	"github.com/KirkDiggler/garden-api/internal/handlers/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/orchestrators/garden"
	"github.com/KirkDiggler/garden-api/internal/pkg/clock"
	"github.com/KirkDiggler/garden-api/internal/pkg/idgen"
	"github.com/KirkDiggler/garden-api/internal/redis"
	"github.com/KirkDiggler/garden-api/internal/repositories/ledger"
	"github.com/KirkDiggler/garden-api/internal/services/currency"
)

var (
	configPath    string
	grpcPort      int
	ledgerBackend string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the Garden API gRPC server with the configured ledger backend.`,
	RunE:  runServer,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file overlaid on the defaults")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides server.port)")
	serverCmd.Flags().StringVar(&ledgerBackend, "ledger", "", "ledger backend: redis, local or memory (overrides ledger.backend)")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if grpcPort != 0 {
		cfg.Server.Port = grpcPort
	}
	if ledgerBackend != "" {
		cfg.Ledger.Backend = ledgerBackend
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLedger(ctx context.Context, cfg config.LedgerConfig) (ledger.Repository, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redis.Ping(ctx, client, 5*time.Second); err != nil {
			return nil, fmt.Errorf("redis at %s is unreachable: %w", cfg.RedisAddr, err)
		}
		return ledger.NewRedisRepository(&ledger.RedisConfig{Client: client, KeyPrefix: cfg.KeyPrefix})
	case config.BackendLocal:
		manager, err := ledger.OpenLocalStore(cfg.AppName)
		if err != nil {
			return nil, err
		}
		return ledger.NewLocalRepository(&ledger.LocalConfig{Manager: manager})
	default:
		return ledger.NewInMemoryRepository(), nil
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ledgerRepo, err := newLedger(ctx, cfg.Ledger)
	if err != nil {
		return err
	}
	log.Printf("Currency ledger: %s", cfg.Ledger.Backend)

	currencyService, err := currency.NewService(&currency.Config{Repository: ledgerRepo})
	if err != nil {
		return fmt.Errorf("failed to create currency service: %w", err)
	}

	eventBus := events.NewBus()
	garden.LogEvents(eventBus, slog.Default())

	gardenService, err := garden.NewOrchestrator(&garden.Config{
		Clock:             clock.New(),
		IDGenerator:       idgen.NewUUID("session"),
		SpriteIDGenerator: idgen.NewUUID("sprite"),
		Currency:          currencyService,
		EventBus:          eventBus,
		Roller:            dice.DefaultRoller,
		GridWidth:         cfg.Grid.Width,
		GridHeight:        cfg.Grid.Height,
		Growth:            cfg.GrowthRules(),
		Sprites: garden.SpriteField{
			Width:             cfg.Sprites.Width,
			Height:            cfg.Sprites.Height,
			BoxSize:           cfg.Sprites.BoxSize,
			Stride:            cfg.Sprites.Stride,
			MinDisplacement:   cfg.Sprites.MinDisplacement,
			PlacementAttempts: cfg.Sprites.PlacementAttempts,
		},
		SpeedUpCostPerMinute: cfg.SpeedUp.CostPerMinute,
	})
	if err != nil {
		return fmt.Errorf("failed to create garden orchestrator: %w", err)
	}

	gardenHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GardenService: gardenService})
	if err != nil {
		return fmt.Errorf("failed to create garden handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	gardenv1alpha1.RegisterGardenServiceServer(srv, gardenHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(gardenv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	go runTicker(ctx, gardenService, cfg.Server.TickInterval)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d...", cfg.Server.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// runTicker drives tree growth until ctx is cancelled. Growth is timestamp
// based so a late tick only delays the ready event.
func runTicker(ctx context.Context, svc garden.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.Tick(ctx, &garden.TickInput{}); err != nil && ctx.Err() == nil {
				log.Printf("tick failed: %v", err)
			}
		}
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
