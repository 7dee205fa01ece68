package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"orehaul/internal/core/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var jsonMarshal = json.Marshal

// KafkaWriter abstracts the segmentio writer so tests can stand in for it.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes domain events to a Kafka topic from a background loop.
//
// Publishing never blocks the caller: events are queued on a buffered channel
// and dropped with a warning when the buffer is full. The domain flow must
// not fail because the broker is down.
type Producer struct {
	writer    KafkaWriter
	events    chan events.Event
	logger    *zap.Logger
	closeChan chan struct{}
	doneChan  chan struct{}
}

// NewProducer connects to the broker, ensures the topic exists and starts
// the background send loop.
func NewProducer(host, topic string, logger *zap.Logger) (*Producer, error) {
	conn, err := kafka.Dial("tcp", host)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     3,
			ReplicationFactor: 1,
		},
	}
	if err := conn.CreateTopics(topicConfigs...); err != nil {
		logger.Warn("failed to create topic (may already exist)", zap.Error(err))
	}

	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(host),
			Balancer: &kafka.LeastBytes{},
			Topic:    topic,
		},
		events:    make(chan events.Event, 1000),
		logger:    logger.Named("kafka_producer"),
		closeChan: make(chan struct{}),
		doneChan:  make(chan struct{}),
	}

	go p.eventLoop()
	return p, nil
}

// Publish queues an event for delivery. It never blocks; when the queue is
// full the event is dropped and a warning is logged.
func (p *Producer) Publish(event events.Event) {
	select {
	case p.events <- event:
	default:
		p.logger.Warn("kafka producer queue full, dropping event",
			zap.String("event_type", string(event.Type)),
			zap.Uint64("operation_id", event.OperationID),
		)
	}
}

func (p *Producer) eventLoop() {
	defer close(p.doneChan)
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		case <-p.closeChan:
			p.drain()
			return
		}
	}
}

// drain flushes events still buffered at shutdown.
func (p *Producer) drain() {
	for {
		select {
		case event := <-p.events:
			p.sendEvent(context.Background(), event)
		default:
			return
		}
	}
}

func (p *Producer) sendEvent(ctx context.Context, event events.Event) {
	value, err := jsonMarshal(event)
	if err != nil {
		p.logger.Error("failed to serialize event",
			zap.Error(err),
			zap.Uint64("operation_id", event.OperationID),
		)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(event.OperationID, 10)),
		Value: value,
	})
	if err != nil {
		p.logger.Error("failed to produce event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.Uint64("operation_id", event.OperationID),
		)
	}
}

// Close stops the send loop, flushes buffered events and closes the writer.
func (p *Producer) Close() {
	close(p.closeChan)
	<-p.doneChan
	if err := p.writer.Close(); err != nil {
		p.logger.Error("failed to close kafka writer", zap.Error(err))
	}
}
