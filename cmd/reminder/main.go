package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/shift-reminder/internal/alert"
	"github.com/aliskhannn/shift-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/shift-reminder/internal/api/router"
	"github.com/aliskhannn/shift-reminder/internal/api/server"
	"github.com/aliskhannn/shift-reminder/internal/config"
	"github.com/aliskhannn/shift-reminder/internal/ledger"
	"github.com/aliskhannn/shift-reminder/internal/model"
	"github.com/aliskhannn/shift-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/shift-reminder/internal/repository/contact"
	"github.com/aliskhannn/shift-reminder/internal/repository/delivery"
	"github.com/aliskhannn/shift-reminder/internal/repository/shift"
	"github.com/aliskhannn/shift-reminder/internal/service/directory"
	remindersvc "github.com/aliskhannn/shift-reminder/internal/service/reminder"
	"github.com/aliskhannn/shift-reminder/internal/worker"
	"github.com/aliskhannn/shift-reminder/pkg/email"
	"github.com/aliskhannn/shift-reminder/pkg/telegram"
	"github.com/aliskhannn/shift-reminder/pkg/twilio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	loc, err := cfg.Reminders.Location()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load reminder timezone")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	var events interface {
		Publish(rec model.DeliveryRecord, strategy retry.Strategy) error
	}

	var closeBroker func()
	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}

		q, err := queue.NewDeliveryQueue(ch, cfg.RabbitMQ)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
		}
		events = q

		closeBroker = func() {
			if err := ch.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
			}
			if err := conn.Close(); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
			}
		}
	}

	deliveries := ledger.New(
		delivery.NewRepository(db, cfg.Retry),
		ledger.NewBuffer(cfg.Reminders.FailureBufferSize),
		events,
		cfg.Retry,
		cfg.Reminders.LedgerTimeout,
	)

	contacts := directory.NewService(contact.NewRepository(db), rdb, cfg.Retry, cfg.Redis.TTL)

	channel := twilio.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.From,
		twilio.WithBaseURL(cfg.Twilio.BaseURL),
		twilio.WithRate(cfg.Twilio.RatePerSecond),
	)

	service := remindersvc.NewService(
		shift.NewRepository(db),
		contacts,
		channel,
		deliveries,
		remindersvc.Options{
			Location:           loc,
			ChannelTimeout:     cfg.Reminders.ChannelTimeout,
			SuppressDuplicates: cfg.Reminders.SuppressDuplicates,
		},
	)

	notifiers := map[string]alert.Notifier{
		"telegram": telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.BaseURL),
	}
	if cfg.Email.SMTPHost != "" {
		smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
		}

		notifiers["email"] = email.NewClient(
			cfg.Email.SMTPHost,
			smtpPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)
	}
	alerts := alert.New(notifiers, cfg.Alerts.Recipients)

	scheduler, err := worker.NewScheduler(service, alerts, cfg.Reminders.Cron, loc, cfg.Reminders.PassTimeout)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create reminder scheduler")
	}

	schedulerDone := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(schedulerDone)
	}()

	r := router.New(reminder.NewHandler(scheduler, deliveries, val))
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	<-schedulerDone

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if closeBroker != nil {
		closeBroker()
	}
}
