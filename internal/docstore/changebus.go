package docstore

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ChangeBus fans mutation notifications out to live subscriptions. One topic
// per collection; payload is the collection name (subscriptions re-run their
// query, they never patch incrementally).
type ChangeBus struct {
	pubSub *gochannel.GoChannel
}

func NewChangeBus() *ChangeBus {
	return &ChangeBus{
		pubSub: gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NopLogger{},
		),
	}
}

func topicFor(collection string) string {
	return "docstore." + collection
}

func (b *ChangeBus) Publish(collection string) error {
	msg := message.NewMessage(watermill.NewUUID(), []byte(collection))
	return b.pubSub.Publish(topicFor(collection), msg)
}

func (b *ChangeBus) Subscribe(ctx context.Context, collection string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topicFor(collection))
}

func (b *ChangeBus) Close() error {
	return b.pubSub.Close()
}
