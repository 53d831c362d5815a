package audit

import (
	"context"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/pkg/constvars"
	"fisiosalud-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQAuditPublisher struct {
	Connection *amqp091.Connection
	QueueName  string
}

func NewRabbitMQAuditPublisher(connection *amqp091.Connection, queueName string) contracts.AuditPublisher {
	return &rabbitMQAuditPublisher{
		Connection: connection,
		QueueName:  queueName,
	}
}

func (p *rabbitMQAuditPublisher) PublishRIPSGenerated(ctx context.Context, event contracts.RIPSAuditEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}

	channel, err := p.Connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}
	defer channel.Close()

	if _, err := channel.QueueDeclare(p.QueueName, true, false, false, false, nil); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}

	err = channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        payload,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.QueueName)
	}
	return nil
}
