package kafka_test

import (
	"encoding/json"
	"testing"

	"github.com/Astemirdum/bike-rental/pkg/kafka"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	a := kafka.NewEvent(kafka.EventReservationCreated)
	b := kafka.NewEvent(kafka.EventReservationCreated)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, kafka.EventReservationCreated, a.Type)
	require.False(t, a.Timestamp.IsZero())
}

func TestEventRental_OmitsEmpty(t *testing.T) {
	ev := kafka.NewEvent(kafka.EventReservationsReset)
	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, "RESERVATIONS_RESET", raw["type"])
	require.NotContains(t, raw, "bikeId")
	require.NotContains(t, raw, "totalCost")
}

func TestConfig_Enabled(t *testing.T) {
	require.False(t, kafka.Config{}.Enabled())
	require.True(t, kafka.Config{Addrs: []string{"localhost:9092"}}.Enabled())
}
