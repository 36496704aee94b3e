package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/doctor-booking-directory/internal/adapters/in/http"
	"github.com/suchimauz/doctor-booking-directory/internal/adapters/in/rabbitmq"
	"github.com/suchimauz/doctor-booking-directory/internal/adapters/out/cache"
	"github.com/suchimauz/doctor-booking-directory/internal/adapters/out/logger"
	rabbitmqPublisher "github.com/suchimauz/doctor-booking-directory/internal/adapters/out/rabbitmq"
	"github.com/suchimauz/doctor-booking-directory/internal/adapters/out/seed"
	"github.com/suchimauz/doctor-booking-directory/internal/config"
	"github.com/suchimauz/doctor-booking-directory/internal/core/ports/out"
	"github.com/suchimauz/doctor-booking-directory/internal/core/services/avatar_service"
	"github.com/suchimauz/doctor-booking-directory/internal/core/services/booking_store"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone, cfg.IsLocal())
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := mainLogger.WithModule("Main")

	logger.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMq.Enabled,
		"pageSize":        cfg.Store.PageSize,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация адаптеров
	var doctorSource out.DoctorSourcePort = seed.NewSeedAdapter(cfg.Location(), mainLogger)
	doctors, err := doctorSource.LoadDoctors(ctx)
	if err != nil {
		logger.Error("app.seed.load_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	cacheAdapter, err := cache.NewCacheAdapter(cfg, mainLogger)
	if err != nil {
		logger.Error("app.cache.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Инициализация сервисов
	store := booking_store.NewBookingStore(doctors, cfg.Store.LoadDelay, mainLogger)
	directory := booking_store.NewDirectory(store, cfg.Store.PageSize, cfg.Location(), mainLogger)
	defer directory.Close()

	avatarService := avatar_service.NewAvatarService(cfg.Avatar.BaseURL, cacheAdapter, mainLogger)

	// Публикация событий стора, только если RabbitMQ включен
	publisher, err := rabbitmqPublisher.NewEventPublisher(cfg, mainLogger.WithModule("RabbitMQPublisher"))
	if err != nil {
		logger.Error("app.rabbitmq.publisher_init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if publisher != nil {
		unsubscribe := store.Subscribe(publisher.Subscriber())
		defer unsubscribe()

		defer func() {
			if err := publisher.Stop(); err != nil {
				logger.Error("app.rabbitmq.publisher_stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	listener, err := rabbitmq.NewCommandListener(store, cfg, mainLogger.WithModule("RabbitMQListener"))
	if err != nil {
		logger.Error("app.rabbitmq.init_failed", out.LogFields{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	if listener != nil {
		if err := listener.Start(ctx); err != nil {
			logger.Error("app.rabbitmq.start_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}

		defer func() {
			if err := listener.Stop(); err != nil {
				logger.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	store.InitializeApp(ctx)

	// Настройка HTTP сервера
	router := gin.New()
	router.Use(gin.Recovery())
	controller := http.NewBookingController(
		store,
		directory,
		avatarService,
		cfg,
		mainLogger.WithModule("HttpController"),
	)
	controller.RegisterRoutes(router)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			logger.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	logger.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
