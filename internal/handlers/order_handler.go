package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/prsportstore/order-notifier/internal/config"
	"github.com/prsportstore/order-notifier/internal/orders"
	"github.com/prsportstore/order-notifier/internal/telegram"
	"github.com/prsportstore/order-notifier/internal/validation"
)

// metricsTimeout bounds each outcome publish.
const metricsTimeout = 2 * time.Second

// Sender delivers a chat message through the bot API.
type Sender interface {
	SendMessage(ctx context.Context, token, chatID, text string) (*telegram.Response, error)
}

// OutcomeRecorder receives one outcome per handled order request.
type OutcomeRecorder interface {
	RecordOutcome(ctx context.Context, outcome string) error
}

// HandlerConfig groups dependencies for the order handler.
type HandlerConfig struct {
	Sender       Sender
	Notification config.NotificationProvider
	Metrics      OutcomeRecorder // optional
	Logger       *logrus.Logger
	Location     *time.Location
	Now          func() time.Time
}

type orderHandler struct {
	sender       Sender
	notification config.NotificationProvider
	metrics      OutcomeRecorder
	logger       *logrus.Logger
	location     *time.Location
	now          func() time.Time
	validate     *validatorv10.Validate
}

func newOrderHandler(cfg HandlerConfig) *orderHandler {
	h := &orderHandler{
		sender:       cfg.Sender,
		notification: cfg.Notification,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		location:     cfg.Location,
		now:          cfg.Now,
		validate:     validation.New(),
	}
	if h.notification == nil {
		h.notification = config.NotificationFromEnv
	}
	if h.logger == nil {
		h.logger = logrus.StandardLogger()
	}
	if h.location == nil {
		h.location = time.Local
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

// Handle gates on method and runs the order pipeline for POST.
func (h *orderHandler) Handle(c *gin.Context) {
	log := requestLogger(c, h.logger)

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: msgMethodNotAllowed})
		return
	}

	log.Info("Order request started")
	res := h.process(c, log)
	c.JSON(res.Status, res.Body())
	h.record(c.Request.Context(), log, res.Outcome)
}

func (h *orderHandler) process(c *gin.Context, log *logrus.Entry) Result {
	var sub orders.OrderSubmission
	if err := validation.BindAndValidate(c, &sub, h.validate); err != nil {
		switch {
		case errors.Is(err, validation.ErrInvalidJSON):
			log.WithError(err).Info("Order rejected")
			return failed(OutcomeInvalidInput, http.StatusBadRequest, msgInvalidJSON, "")
		case errors.Is(err, validation.ErrMissingFields):
			log.WithError(err).Info("Order rejected")
			return failed(OutcomeInvalidInput, http.StatusBadRequest, msgMissingFields, "")
		default:
			log.WithError(err).Error("Unexpected error reading order")
			return failed(OutcomeFailed, http.StatusInternalServerError, msgInternal, err.Error())
		}
	}
	log.WithFields(sub.LogFields()).Info("Order data parsed")

	creds := h.notification()
	log.WithFields(logrus.Fields{
		"bot_token_set": creds.BotToken != "",
		"chat_id_set":   creds.ChatID != "",
	}).Info("Telegram credentials checked")
	if !creds.Complete() {
		log.Error("Missing Telegram credentials")
		return failed(OutcomeMisconfigured, http.StatusInternalServerError, msgMissingConfig, "")
	}

	message := orders.FormatMessage(sub, h.now().In(h.location))

	log.Info("Sending order to Telegram")
	resp, err := h.sender.SendMessage(c.Request.Context(), creds.BotToken, creds.ChatID, message)
	if err != nil {
		var apiErr *telegram.APIError
		if errors.As(err, &apiErr) {
			log.WithFields(logrus.Fields{
				"status":      apiErr.StatusCode,
				"description": apiErr.Description,
			}).Error("Telegram rejected order")
			return failed(OutcomeRejected, http.StatusInternalServerError, msgSendFailed, apiErr.Details())
		}
		log.WithError(err).Error("Unexpected error sending order")
		return failed(OutcomeFailed, http.StatusInternalServerError, msgInternal, err.Error())
	}

	log.WithField("ok", resp != nil && resp.OK).Info("Telegram accepted order")
	return sent()
}

func (h *orderHandler) record(ctx context.Context, log *logrus.Entry, outcome Outcome) {
	if h.metrics == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, metricsTimeout)
	defer cancel()
	if err := h.metrics.RecordOutcome(ctx, string(outcome)); err != nil {
		log.WithError(err).Warn("failed to record outcome metric")
	}
}

// recoverInternal turns a panic anywhere downstream into the generic fault body.
func recoverInternal(h *orderHandler) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log := requestLogger(c, h.logger)
		log.WithField("panic", recovered).Error("Unexpected error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:   msgInternal,
			Details: fmt.Sprint(recovered),
		})
		h.record(c.Request.Context(), log, OutcomeFailed)
	})
}
