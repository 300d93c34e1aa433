package eventbus

import "context"

// Consumer handles events of one type. The bus starts GetWorkerCount workers
// for it, all reading from the same channel, so Consume must be safe for
// concurrent use when that count is above one.
type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}

// ConsumerFunc runs a plain function as a single-worker consumer.
type ConsumerFunc func(ctx context.Context, event Event) error

func (f ConsumerFunc) Consume(ctx context.Context, event Event) error {
	return f(ctx, event)
}

func (f ConsumerFunc) GetWorkerCount() int {
	return 1
}
