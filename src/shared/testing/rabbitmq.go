package testing

import (
	"encoding/json"
	. "github.com/onsi/ginkgo/v2"
	"github.com/rabbitmq/amqp091-go"
	"github.com/veedubyou/song-catalog/src/shared/lib/rabbitmq"
	"os"
	"sync"
)

// RabbitMQ tests need a broker running on RabbitMQHost
const RabbitMQTestsEnv = "SONGS_RABBITMQ_TESTS"

func RequireRabbitMQ() {
	if os.Getenv(RabbitMQTestsEnv) == "" {
		Skip(RabbitMQTestsEnv + " is not set, skipping tests against rabbitMQ")
	}
}

func MakeRabbitMQConnection() *amqp091.Connection {
	return ExpectSuccess(amqp091.Dial(RabbitMQHost))
}

func ResetRabbitMQ(conn *amqp091.Connection) {
	channel := ExpectSuccess(conn.Channel())
	ExpectSuccess(channel.QueuePurge(RabbitMQQueueName, false))
}

func AfterSuiteRabbitMQ(conn *amqp091.Connection) {
	channel := ExpectSuccess(conn.Channel())
	ExpectSuccess(channel.QueueDelete(RabbitMQQueueName, false, false, false))
}

func MakeRabbitMQPublisher() *rabbitmq.QueuePublisher {
	return ExpectSuccess(rabbitmq.NewQueuePublisher(RabbitMQHost, RabbitMQQueueName))
}

type ReceivedMessage struct {
	Type    string
	Message map[string]interface{}
}

type RabbitMQConsumer struct {
	channel          *amqp091.Channel
	lock             sync.Mutex
	queueName        string
	receivedMessages []ReceivedMessage
	err              error
}

func NewRabbitMQConsumer(conn *amqp091.Connection) *RabbitMQConsumer {
	channel := ExpectSuccess(conn.Channel())

	return &RabbitMQConsumer{
		channel:   channel,
		queueName: RabbitMQQueueName,
	}
}

func (r *RabbitMQConsumer) AsyncStart() {
	r.lock.Lock()
	if r.channel == nil {
		r.lock.Unlock()
		return
	}

	messageStream, err := r.channel.Consume(
		r.queueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	r.lock.Unlock()

	if err != nil {
		r.setErr(err)
		return
	}

	for message := range messageStream {
		body := map[string]interface{}{}
		if err := json.Unmarshal(message.Body, &body); err != nil {
			r.setErr(err)
			continue
		}

		r.lock.Lock()
		r.receivedMessages = append(r.receivedMessages, ReceivedMessage{
			Type:    message.Type,
			Message: body,
		})
		r.lock.Unlock()
	}
}

func (r *RabbitMQConsumer) setErr(err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.err == nil {
		r.err = err
	}
}

func (r *RabbitMQConsumer) Stop() {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.channel != nil {
		_ = r.channel.Close()
	}
	r.channel = nil
}

func (r *RabbitMQConsumer) Unload() ([]ReceivedMessage, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.err != nil {
		return nil, r.err
	}

	receivedMessages := r.receivedMessages
	r.receivedMessages = nil
	return receivedMessages, nil
}
