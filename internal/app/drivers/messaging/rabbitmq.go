package messaging

import (
	"fmt"
	"log"

	"clinic-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

func RabbitMQURL(driverConfig *config.DriverConfig) string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
}

func NewRabbitMQ(driverConfig *config.DriverConfig) (*amqp091.Connection, error) {
	conn, err := amqp091.Dial(RabbitMQURL(driverConfig))
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq at %s:%s: %w", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port, err)
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn, nil
}
