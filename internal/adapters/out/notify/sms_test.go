package notify_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"domicilios/internal/adapters/out/notify"
	"domicilios/internal/core/domain/model/kernel"
	"domicilios/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) *order.Order {
	t.Helper()

	loc, err := kernel.NewGeoPoint(6.2100, -75.5700)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Laura Gómez", "3001112233", "Cl 10 #43E-25", loc)
	require.NoError(t, err)

	bizLoc, err := kernel.NewGeoPoint(6.2088, -75.5704)
	require.NoError(t, err)
	businessRef, err := order.NewBusinessRef(1, "Arepas El Paisa", bizLoc)
	require.NoError(t, err)

	item, err := order.NewLineItem(3, "Bandeja paisa", 2, 5000, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		7, customer, businessRef, []order.LineItem{item},
		order.MethodCash, 1000, 0.14, 30, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestSMSNotifier_PostsToGateway(t *testing.T) {
	received := make(chan map[string]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := notify.NewSMSNotifier(server.URL, nil)
	notifier.NotifyNewOrder(newOrderFixture(t))

	select {
	case payload := <-received:
		assert.Equal(t, "3001112233", payload["phone"])
		assert.NotEmpty(t, payload["message_id"])
		assert.Contains(t, payload["text"], "#7")
		assert.Contains(t, payload["text"], "30 minutos")
	case <-time.After(2 * time.Second):
		t.Fatal("gateway never received the message")
	}
}

func TestSMSNotifier_GatewayFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := notify.NewSMSNotifier(server.URL, nil)

	// Must not panic or block the caller.
	notifier.NotifyPaymentConfirmed(newOrderFixture(t))
	time.Sleep(100 * time.Millisecond)
}
