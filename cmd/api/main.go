package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/prsportstore/order-notifier/internal/aws"
	"github.com/prsportstore/order-notifier/internal/config"
	"github.com/prsportstore/order-notifier/internal/handlers"
	"github.com/prsportstore/order-notifier/internal/telegram"
)

func setupRouter(cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	hcfg := handlers.HandlerConfig{
		Sender:       telegram.NewClient(cfg.TelegramBaseURL, cfg.TelegramTimeout, logger),
		Notification: config.NotificationFromEnv,
		Logger:       logger,
		Location:     cfg.Location,
	}

	if cfg.MetricsNamespace != "" {
		clients, err := aws.NewAWSClients(context.Background())
		if err != nil {
			logger.WithError(err).Fatal("failed to init aws clients")
		}
		hcfg.Metrics = aws.NewMetricsPublisher(clients.CloudWatch, cfg.MetricsNamespace)
		logger.WithField("namespace", cfg.MetricsNamespace).Info("Outcome metrics enabled")
	}

	return handlers.NewRouter(hcfg)
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	gin.SetMode(gin.ReleaseMode)
	r := setupRouter(cfg, logger)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if cfg.RunLocal {
		addr := ":" + cfg.Port
		logger.WithField("addr", addr).Info("running local server")
		if err := r.Run(addr); err != nil {
			logger.WithError(err).Fatal("failed to run local server")
		}
		return
	}

	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}
