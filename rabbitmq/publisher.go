// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"mccmnc-server/commons"

	amqp "github.com/rabbitmq/amqp091-go"
)

var ErrNotConfigured = errors.New("rabbitmq: RABBITMQ_AMQP_URL is not set")

func NewPublisher(c RabbitMQConfig) (*Publisher, error) {
	if c.amqpURL == "" {
		return nil, ErrNotConfigured
	}

	conn, err := amqp.Dial(c.amqpURL)
	if err != nil {
		commons.Logger.Error("Failed to connect to RabbitMQ: ", err)
		return nil, fmt.Errorf("connect: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("channel: %w", err)
	}

	if err := ch.ExchangeDeclare(c.exchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("exchange declare: %w", err)
	}

	commons.Logger.Debugf("RabbitMQ publisher initialized for exchange %s", c.exchange)
	return &Publisher{Exchange: c.exchange, AMQPConn: conn, AMQPChannel: ch}, nil
}

func (p *Publisher) PublishDatasetUpdated(ctx context.Context, event DatasetUpdatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         DatasetUpdatedType,
		MessageId:    event.RunID,
		Timestamp:    time.Now(),
		Body:         body,
	}
	if err := p.AMQPChannel.PublishWithContext(ctx, p.Exchange, "", false, false, msg); err != nil {
		commons.Logger.Errorf("Failed to publish dataset update for run %s: %v", event.RunID, err)
		return fmt.Errorf("publish: %w", err)
	}
	commons.Logger.Infof("Published dataset update for run %s to exchange %s", event.RunID, p.Exchange)
	return nil
}

func (p *Publisher) Close() {
	if p.AMQPChannel != nil {
		_ = p.AMQPChannel.Close()
	}
	if p.AMQPConn != nil {
		_ = p.AMQPConn.Close()
	}
}
