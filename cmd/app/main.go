package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/team-calendar/internal/backup"
	"github.com/bagdasarian/team-calendar/internal/config"
	"github.com/bagdasarian/team-calendar/internal/handler"
	"github.com/bagdasarian/team-calendar/internal/handler/server"
	"github.com/bagdasarian/team-calendar/internal/repository/state"
	"github.com/bagdasarian/team-calendar/internal/service"
	"github.com/bagdasarian/team-calendar/internal/storage"
	"github.com/bagdasarian/team-calendar/internal/storage/memory"
	"github.com/bagdasarian/team-calendar/internal/storage/postgres"
	"github.com/bagdasarian/team-calendar/internal/storage/sqlite"
)

func main() {
	cfg := config.Load()

	store := mustOpenStore(cfg)
	log.Printf("Using %s storage", cfg.Storage.Driver)

	ctx := context.Background()
	if cfg.SeedDemo {
		if err := state.EnsureSeed(ctx, store); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	teamRepo := state.NewTeamRepository(store)
	memberRepo := state.NewMemberRepository(store)
	workdayRepo := state.NewWorkdayRepository(store)
	eventRepo := state.NewEventRepository(store)
	notesRepo := state.NewNotesRepository(store)

	teamService := service.NewTeamService(teamRepo, memberRepo)
	memberService := service.NewMemberService(memberRepo, teamRepo, workdayRepo)
	statusService := service.NewStatusService(workdayRepo, memberRepo, eventRepo)
	eventService := service.NewEventService(eventRepo, teamRepo)
	notesService := service.NewNotesService(notesRepo)
	calendarService := service.NewCalendarService(memberRepo, workdayRepo, eventRepo)
	shareService := service.NewShareService(store, teamRepo, memberRepo, workdayRepo, eventRepo)
	backupService := backup.NewService(store)

	h := handler.NewHandler(
		teamService,
		memberService,
		statusService,
		eventService,
		notesService,
		calendarService,
		shareService,
		backupService,
	)
	srv := server.NewServer(h, cfg.HTTPAddr)

	var scheduler *backup.Scheduler
	if cfg.Backup.Enabled {
		if err := backupService.EnsureFresh(ctx); err != nil {
			log.Printf("Startup backup check failed: %v", err)
		}

		var err error
		scheduler, err = backup.NewScheduler(backupService)
		if err != nil {
			log.Fatalf("Failed to create backup scheduler: %v", err)
		}
		scheduler.Start()
	}

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if scheduler != nil {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}

func mustOpenStore(cfg *config.Config) storage.Store {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			log.Fatalf("Failed to open sqlite storage: %v", err)
		}
		return store
	case "memory":
		return memory.NewStore()
	default:
		db := postgres.MustOpen(cfg)
		log.Println("Successfully connected to database!")
		return postgres.NewStore(db)
	}
}
