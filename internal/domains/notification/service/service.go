package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"hotelops/config"
	"hotelops/infras/kafka"
	"hotelops/infras/otel"
	"hotelops/infras/websocket"
	"hotelops/internal/domains/notification/model"
	"hotelops/internal/domains/notification/model/dto"
	"hotelops/internal/domains/notification/repository"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

type Notification interface {
	Dispatch(ctx context.Context, notifications []model.Notification)
	Relay(ctx context.Context)
	Stream(w http.ResponseWriter, r *http.Request, hotelID string, department model.Department) error
	GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetNotificationsRequest) (dto.GetNotificationsResponse, error)
	MarkRead(ctx context.Context, hotelID, id, actor string) error
}

type serviceImpl struct {
	repo  repository.Notification
	kafka kafka.Client
	hub   websocket.Hub
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Notification, kafka kafka.Client, hub websocket.Hub, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:  repo,
		kafka: kafka,
		hub:   hub,
		cfg:   cfg,
		otel:  otel,
	}
}

// Dispatch publishes notifications that were committed with their unit of work. With Kafka enabled
// every instance relays the topic to its own consoles; otherwise they go to this instance's hub.
func (s *serviceImpl) Dispatch(ctx context.Context, notifications []model.Notification) {
	if len(notifications) == 0 {
		return
	}

	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Dispatch")
	defer scope.End()

	events := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		events[i].FromModel(n)
	}

	if s.kafka.Enabled() {
		messages := make([]kafka.Message, len(events))
		for i, event := range events {
			messages[i] = kafka.Message{Key: event.HotelID, Value: event}
		}

		err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Notifications, messages...)
		if err == nil {
			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to publish notifications, broadcasting locally")
	}

	for _, event := range events {
		s.broadcast(event)
	}
}

func (s *serviceImpl) broadcast(event dto.NotificationResponse) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("notification_id", event.ID).Msg("failed to marshal notification")

		return
	}

	s.hub.Broadcast(event.HotelID, string(event.Department), payload)
}

// Relay feeds the notification topic into this instance's hub until ctx is done. Each instance
// consumes with its own group so every console sees every event.
func (s *serviceImpl) Relay(ctx context.Context) {
	if !s.kafka.Enabled() {
		return
	}

	group := fmt.Sprintf("%s-relay-%s", s.cfg.Kafka.ConsumerGroup, uuid.NewString())

	s.kafka.Consume(ctx, group, s.cfg.Kafka.Topics.Notifications, func(_ context.Context, msg kafkaGo.Message) {
		event, err := kafka.Decode[dto.NotificationResponse](msg)
		if err != nil {
			log.Error().Err(err).Msg("failed to decode relayed notification")

			return
		}

		s.broadcast(event)
	})
}

func (s *serviceImpl) Stream(w http.ResponseWriter, r *http.Request, hotelID string, department model.Department) error {
	if department != "" {
		if err := department.Validate(s.cfg); err != nil {
			return failure.BadRequest(err) //nolint:wrapcheck
		}
	}

	if err := s.hub.Serve(w, r, hotelID, string(department)); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to open notification stream")

		return fmt.Errorf("failed to open notification stream: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, params gDto.QueryParams, req dto.GetNotificationsRequest) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filters := []any{}

	if req.Department != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldDepartment,
			Value:    req.Department,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if req.Unread != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldIsRead,
			Value:    !*req.Unread,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	filter := shared.FilterByHotel(hotelID, model.TableName, filters...)

	params.SortBy = model.TableName + "." + model.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	notifications, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	res.FromModels(notifications, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, hotelID, id, actor string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByHotelAndID(hotelID, id, model.FieldID, model.TableName)

	notification, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if notification.IsRead {
		return nil
	}

	if err = s.repo.Update(ctx, shared.Touch(map[string]any{model.FieldIsRead: true}, actor), filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}
