package mailqueue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hirehub/internal/domain"
	"hirehub/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// QueueName is the single queue carrying {to, subject, html} messages.
	QueueName = "send-mail"
	// DeadLetterQueue holds messages that could not be published or
	// parsed, kept for operator inspection.
	DeadLetterQueue = "send-mail-dlq"

	publishTimeout  = 5 * time.Second
	publishAttempts = 3
)

// ErrMalformed marks a queue message whose body is not valid JSON. The
// consumer rejects such messages to the dead-letter queue and moves on.
var ErrMalformed = errors.New("mailqueue: malformed message body")

// Queue wraps an AMQP connection with the send-mail queue declared.
type Queue struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Connect dials the broker and declares the send-mail queue and its
// dead-letter companion. Both are durable.
func Connect(url string) (*Queue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := ch.QueueDeclare(DeadLetterQueue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}

	// Rejected deliveries are routed to the dead-letter queue via the
	// default exchange.
	args := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DeadLetterQueue,
	}
	if _, err := ch.QueueDeclare(QueueName, true, false, false, false, args); err != nil {
		conn.Close()
		return nil, err
	}

	return &Queue{conn: conn, channel: ch}, nil
}

// Backoff returns the delay before retry attempt n (0-based): 200ms,
// 400ms, 800ms, ...
func Backoff(attempt int) time.Duration {
	return 200 * time.Millisecond << attempt
}

// Publish enqueues a mail message. Transient broker errors are retried
// with exponential backoff; after the retry budget the payload is parked
// on the dead-letter queue and the error returned. Callers treat the
// returned error as advisory - the HTTP response never depends on it.
func (q *Queue) Publish(ctx context.Context, msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < publishAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(Backoff(attempt - 1)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		lastErr = q.channel.PublishWithContext(pubCtx, "", QueueName, false, false, amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
		cancel()

		if lastErr == nil {
			return nil
		}
		logger.Log.Warn("mail publish attempt failed", "attempt", attempt+1, "error", lastErr)
	}

	// Out of retries: park the payload for operator inspection.
	dlqCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if dlqErr := q.channel.PublishWithContext(dlqCtx, "", DeadLetterQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}); dlqErr != nil {
		logger.Log.Error("failed to dead-letter mail message", "error", dlqErr)
	}

	return lastErr
}

// Dispatch decodes one delivery body and hands it to send. A body that is
// not valid JSON yields ErrMalformed; anything else is the sender's error.
func Dispatch(body []byte, send func(domain.MailMessage) error) error {
	var msg domain.MailMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return ErrMalformed
	}
	return send(msg)
}

// Consume drains the send-mail queue sequentially until the channel is
// closed. Malformed messages are rejected to the dead-letter queue; send
// failures are logged and acknowledged (at-most-once delivery). Neither
// stops the loop.
func (q *Queue) Consume(sender domain.MailSender) error {
	deliveries, err := q.channel.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	logger.Log.Info("mail consumer started", "queue", QueueName)

	for d := range deliveries {
		err := Dispatch(d.Body, sender.Send)
		switch {
		case errors.Is(err, ErrMalformed):
			logger.Log.Error("rejecting malformed mail message", "body_len", len(d.Body))
			_ = d.Nack(false, false) // routed to the dead-letter queue
		case err != nil:
			logger.Log.Error("failed to send mail", "error", err)
			_ = d.Ack(false)
		default:
			_ = d.Ack(false)
		}
	}
	return nil
}

// Close shuts the channel and connection down.
func (q *Queue) Close() {
	if q.channel != nil {
		_ = q.channel.Close()
	}
	if q.conn != nil {
		_ = q.conn.Close()
	}
}
