package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DhavalSuthar-24/crease/config"
	_ "github.com/DhavalSuthar-24/crease/docs"
	"github.com/DhavalSuthar-24/crease/internal/auth"
	"github.com/DhavalSuthar-24/crease/internal/broadcast"
	"github.com/DhavalSuthar-24/crease/internal/match"
	"github.com/DhavalSuthar-24/crease/internal/middleware"
	"github.com/DhavalSuthar-24/crease/internal/user"
	"github.com/DhavalSuthar-24/crease/routes"
)

// @title Crease live scoring API
// @version 1.0
// @description Ball-by-ball cricket scoring with live viewer updates.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	models := []interface{}{&user.User{}}
	if cfg.Store.Driver != config.DriverMongo {
		models = append(models, &match.MatchRecord{})
	}
	if err := config.DB.AutoMigrate(models...); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	authRepo := auth.NewAuthRepository(config.DB)
	if err := auth.SeedAdmin(authRepo, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatalf("Admin seed failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var matchRepo match.MatchRepository
	var mongoRepo *match.MongoMatchRepository
	if cfg.Store.Driver == config.DriverMongo {
		connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
		repo, err := match.NewMongoMatchRepository(connectCtx, cfg.Store.MongoURI, cfg.Store.MongoDB)
		connectCancel()
		if err != nil {
			log.Fatalf("Mongo store failed: %v", err)
		}
		mongoRepo = repo
		matchRepo = repo
		log.Printf("Storing matches in mongo database %s", cfg.Store.MongoDB)
	} else {
		matchRepo = match.NewGormMatchRepository(config.DB)
	}

	hub := broadcast.NewHub()
	relays := broadcast.Multi{hub}
	var amqpRelay *broadcast.AMQPRelay
	if cfg.Broadcast.AMQPURL != "" {
		relay, err := broadcast.DialAMQP(cfg.Broadcast.AMQPURL, cfg.Broadcast.AMQPExchange)
		if err != nil {
			log.Printf("AMQP relay disabled: %v", err)
		} else {
			amqpRelay = relay
			relays = append(relays, relay)
		}
	}
	var mqttRelay *broadcast.MQTTRelay
	if cfg.Broadcast.MQTTBroker != "" {
		relay, err := broadcast.ConnectMQTT(cfg.Broadcast.MQTTBroker, cfg.Broadcast.MQTTClientID, cfg.Broadcast.MQTTTopicPrefix)
		if err != nil {
			log.Printf("MQTT relay disabled: %v", err)
		} else {
			mqttRelay = relay
			relays = append(relays, relay)
		}
	}

	r := routes.SetupRoutes(routes.Deps{
		Config:  cfg,
		Users:   authRepo,
		Matches: matchRepo,
		Scoring: match.NewScoringService(matchRepo, broadcast.Logged(relays)),
		Hub:     hub,
		Limiter: middleware.NewRateLimiter(float64(cfg.Scoring.RatePerSec), cfg.Scoring.Burst),
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	cancel()
	hub.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}

	if amqpRelay != nil {
		amqpRelay.Close()
	}
	if mqttRelay != nil {
		mqttRelay.Close()
	}
	if mongoRepo != nil {
		mongoRepo.Close(shutdownCtx)
	}
	log.Println("Shutdown complete")
}
