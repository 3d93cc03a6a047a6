package audit

import (
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Broker names accepted by NewPubSub.
const (
	BrokerChannel = "channel"
	BrokerKafka   = "kafka"
)

// NewPubSub builds the publisher/subscriber pair for the audit pipeline.
// The default in-process channel broker keeps single-binary deployments
// dependency-free; Kafka is for setups that fan activity out to external
// consumers as well.
func NewPubSub(broker string, kafkaBrokers []string, logger *slog.Logger) (message.Publisher, message.Subscriber, error) {
	wmLogger := watermill.NewSlogLogger(logger)

	switch broker {
	case BrokerChannel, "":
		ch := gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 256,
		}, wmLogger)
		return ch, ch, nil

	case BrokerKafka:
		publisher, err := kafka.NewPublisher(kafka.PublisherConfig{
			Brokers:   kafkaBrokers,
			Marshaler: kafka.DefaultMarshaler{},
		}, wmLogger)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka publisher: %w", err)
		}
		subscriber, err := kafka.NewSubscriber(kafka.SubscriberConfig{
			Brokers:       kafkaBrokers,
			Unmarshaler:   kafka.DefaultMarshaler{},
			ConsumerGroup: "coven-activity-writer",
		}, wmLogger)
		if err != nil {
			return nil, nil, fmt.Errorf("kafka subscriber: %w", err)
		}
		return publisher, subscriber, nil

	default:
		return nil, nil, fmt.Errorf("unknown audit broker %q", broker)
	}
}
