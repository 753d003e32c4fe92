// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"time"

	"mccmnc-server/commons"

	amqp "github.com/rabbitmq/amqp091-go"
)

const DatasetUpdatedType = "mccmnc.dataset.updated"

type RabbitMQConfig struct {
	amqpURL  string
	exchange string
}

const DefaultExchange = "mccmnc.dataset"

func NewConfig(amqpURL, exchange string) RabbitMQConfig {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return RabbitMQConfig{amqpURL: amqpURL, exchange: exchange}
}

// ConfigFromEnv reads RABBITMQ_AMQP_URL and RABBITMQ_EXCHANGE.
func ConfigFromEnv() RabbitMQConfig {
	return NewConfig(commons.GetEnv("RABBITMQ_AMQP_URL"), commons.GetEnv("RABBITMQ_EXCHANGE"))
}

type Publisher struct {
	Exchange    string
	AMQPConn    *amqp.Connection
	AMQPChannel *amqp.Channel
}

// DatasetUpdatedEvent is published after a run has written a new dataset.
type DatasetUpdatedEvent struct {
	RunID             string    `json:"run_id"`
	FinishedAt        time.Time `json:"finished_at"`
	Records           int       `json:"records"`
	StatusCodes       int       `json:"status_codes"`
	FailedDocuments   []string  `json:"failed_documents,omitempty"`
	RecordsDigest     string    `json:"records_digest"`
	StatusCodesDigest string    `json:"status_codes_digest"`
}
