package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"teamdash/adapters/chart"
	"teamdash/adapters/excel"
	"teamdash/adapters/memory"
	"teamdash/domain/team"
	"teamdash/internal/config"
	"teamdash/internal/events"
	"teamdash/internal/logger"
	"teamdash/internal/testkit"
	"teamdash/models"
	"teamdash/ports"
	"teamdash/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(appConfig.Log.Mode, appConfig.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	gin.SetMode(appConfig.Server.GinMode)

	seed, err := loadSeed(appConfig, appLog)
	if err != nil {
		appLog.Fatal("failed to load roster", "error", err)
	}
	roster := memory.NewRoster(seed)

	summary := team.Aggregate(seed)
	appLog.Info("roster loaded",
		"headcount", summary.Headcount,
		"total_cost", summary.FormattedTotalCost(),
		"titles", len(summary.Histogram),
	)

	renderer, err := chart.NewRenderer(appConfig.Chart.Width, appConfig.Chart.Height, appLog)
	if err != nil {
		appLog.Fatal("failed to initialize chart renderer", "error", err)
	}

	hub := events.NewHub(16, appLog)

	server, err := ui.NewServer(ui.Deps{
		Persons:        roster,
		Chart:          renderer,
		Events:         hub,
		Log:            appLog,
		AllowedOrigins: appConfig.Server.AllowedOrigins,
	})
	if err != nil {
		appLog.Fatal("failed to initialize server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(ctx, ":"+appConfig.Server.Port, appConfig.Server.ShutdownTimeout)
	})

	appLog.Info("team dashboard starting", "port", appConfig.Server.Port, "gin_mode", appConfig.Server.GinMode)
	if err := g.Wait(); err != nil {
		appLog.Fatal("server stopped with error", "error", err)
	}
	appLog.Info("team dashboard stopped")
}

// loadSeed reads the configured roster file, or generates a synthetic roster
// when none is set.
func loadSeed(appConfig *config.Config, appLog *logger.Logger) ([]models.Person, error) {
	var source ports.RosterSource
	if appConfig.Data.RosterFile != "" {
		source = excel.NewRosterReader(appConfig.Data.RosterFile, appLog)
	} else {
		appLog.Info("no roster file configured, using synthetic members", "members", appConfig.Data.SyntheticMembers)
		source = testkit.NewRosterGenerator(testkit.RosterGeneratorConfig{
			MemberCount: appConfig.Data.SyntheticMembers,
			Seed:        appConfig.Data.SyntheticSeed,
			Now:         time.Now().UTC(),
		})
	}
	return source.Read()
}
