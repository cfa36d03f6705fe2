package docstore

import (
	"context"
	"sync"
)

// runSubscription drives a live query: one snapshot immediately, another after
// every change notification for the collection. The returned Unsubscribe
// guarantees no callback fires after it returns, even if a re-query was
// already in flight when the caller tore down.
func runSubscription(
	ctx context.Context,
	bus *ChangeBus,
	collection string,
	fetch func(ctx context.Context) ([]Document, error),
	onSnapshot func([]Document),
	onError func(error),
) Unsubscribe {
	subCtx, cancel := context.WithCancel(ctx)

	var mu sync.Mutex
	closed := false

	emit := func(docs []Document) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		onSnapshot(docs)
	}
	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		onError(err)
	}

	unsubscribe := func() {
		mu.Lock()
		closed = true
		mu.Unlock()
		cancel()
	}

	ch, err := bus.Subscribe(subCtx, collection)
	if err != nil {
		fail(err)
		return unsubscribe
	}

	go func() {
		push := func() {
			docs, err := fetch(subCtx)
			if err != nil {
				fail(err)
				return
			}
			emit(docs)
		}

		push()

		for msg := range ch {
			msg.Ack()
			select {
			case <-subCtx.Done():
				return
			default:
			}
			push()
		}
	}()

	return unsubscribe
}
