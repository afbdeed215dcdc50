// Package notify delivers customer SMS notifications through an HTTP gateway.
// Delivery is fire-and-forget: a failed send is logged and dropped, the
// originating operation is never affected.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"domicilios/internal/core/domain/model/order"
)

const sendTimeout = 5 * time.Second

type smsPayload struct {
	MessageID string `json:"message_id"`
	Phone     string `json:"phone"`
	Text      string `json:"text"`
}

// SMSNotifier posts customer messages to an SMS gateway endpoint.
// An empty gateway URL disables sending; messages are logged only.
type SMSNotifier struct {
	gatewayURL string
	client     *http.Client
	logger     *slog.Logger
}

// NewSMSNotifier creates a notifier for the given gateway URL.
func NewSMSNotifier(gatewayURL string, logger *slog.Logger) *SMSNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMSNotifier{
		gatewayURL: gatewayURL,
		client:     &http.Client{Timeout: sendTimeout},
		logger:     logger,
	}
}

func (n *SMSNotifier) NotifyNewOrder(o *order.Order) {
	text := fmt.Sprintf(
		"Tu pedido #%d fue recibido. Tiempo estimado de entrega: %d minutos.",
		o.ID(), o.EstimatedTime(),
	)
	go n.send(o.Customer().Phone(), text)
}

func (n *SMSNotifier) NotifyPaymentConfirmed(o *order.Order) {
	text := fmt.Sprintf(
		"Pago confirmado para tu pedido #%d por $%.0f. ¡Gracias!",
		o.ID(), o.Total(),
	)
	go n.send(o.Customer().Phone(), text)
}

func (n *SMSNotifier) send(phone, text string) {
	msg := smsPayload{
		MessageID: uuid.NewString(),
		Phone:     phone,
		Text:      text,
	}

	if n.gatewayURL == "" {
		n.logger.Info("sms gateway disabled, message logged only",
			"message_id", msg.MessageID, "phone", phone, "text", text)
		return
	}

	body, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("marshal sms payload", "message_id", msg.MessageID, "error", err)
		return
	}

	resp, err := n.client.Post(n.gatewayURL, "application/json", bytes.NewReader(body))
	if err != nil {
		n.logger.Error("send sms", "message_id", msg.MessageID, "phone", phone, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		n.logger.Error("sms gateway rejected message",
			"message_id", msg.MessageID, "phone", phone, "status", resp.StatusCode)
		return
	}

	n.logger.Info("sms sent", "message_id", msg.MessageID, "phone", phone)
}
