package kafka

import (
	"encoding/json"
	"log"

	"github.com/IBM/sarama"
)

type OrderEvent struct {
	EventType string         `json:"event_type"`
	Data      OrderEventData `json:"data"`
}

type OrderEventData struct {
	OrderID string  `json:"order_id"`
	UserID  string  `json:"user_id"`
	Total   float64 `json:"total"`
	PaidAt  string  `json:"paid_at,omitempty"`
}

type Producer struct {
	producer sarama.SyncProducer
}

func NewProducer(broker string) *Producer {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer([]string{broker}, config)
	if err != nil {
		log.Fatalf("Failed to start Kafka producer: %v", err)
	}

	log.Println("Kafka producer initialized")
	return &Producer{producer: producer}
}

func (p *Producer) PublishOrderPaid(data OrderEventData) {
	p.publish("order.paid", OrderEvent{EventType: "order.paid", Data: data})
}

func (p *Producer) PublishOrderFailed(data OrderEventData) {
	p.publish("order.failed", OrderEvent{EventType: "order.failed", Data: data})
}

func (p *Producer) publish(topic string, event interface{}) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", topic, err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(data),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("Failed to send %s event: %v", topic, err)
		return
	}

	log.Printf("Published %s event: %s", topic, string(data))
}
