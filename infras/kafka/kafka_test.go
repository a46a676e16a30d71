package kafka_test

import (
	"context"
	"hotelops/config"
	"hotelops/infras/kafka"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type event struct {
	HotelID string `json:"hotel_id"`
	Title   string `json:"title"`
}

func TestMessageRoundTrip(t *testing.T) {
	message := kafka.Message{Key: "hotel-1", Value: event{HotelID: "hotel-1", Title: "Room 101 Cleaned"}}

	msg, err := message.ToKafkaMessage()
	assert.NoError(t, err)
	assert.Equal(t, []byte("hotel-1"), msg.Key)

	decoded, err := kafka.Decode[event](msg)
	assert.NoError(t, err)
	assert.Equal(t, "Room 101 Cleaned", decoded.Title)

	_, err = kafka.Decode[event](kafkaGo.Message{Value: []byte("{")})
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	cfg := &config.Config{}
	client := kafka.New(cfg)

	assert.False(t, client.Enabled())
	assert.ErrorIs(t, client.SendMessages(context.Background(), "hotel.notifications", kafka.Message{Key: "k"}), kafka.ErrDisabled)
	assert.NoError(t, client.Close())
}
