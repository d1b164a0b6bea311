package publisher

import (
	"encoding/json"

	"go.uber.org/zap"

	feed "github.com/jimiolaniyan/comicrealm"
)

const subjectPrefix = "feed."

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	Publish(subject string, data []byte) error
}

// EventPublisher forwards feed events to NATS on subject feed.<kind>,
// e.g. feed.post.liked.
type EventPublisher struct {
	conn   Conn
	logger *zap.Logger
}

func NewEventPublisher(conn Conn, logger *zap.Logger) *EventPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventPublisher{conn: conn, logger: logger}
}

// Attach subscribes the publisher to svc and returns the unsubscribe func.
func (p *EventPublisher) Attach(svc feed.Service) func() {
	return svc.Subscribe(p.Handle)
}

// Handle publishes e. Failures are logged and dropped so they never reach
// the store that emitted the event.
func (p *EventPublisher) Handle(e feed.Event) {
	data, err := json.Marshal(e)
	if err != nil {
		p.logger.Error("failed to encode event", zap.String("kind", string(e.Kind)), zap.Error(err))
		return
	}

	subject := Subject(e.Kind)
	if err := p.conn.Publish(subject, data); err != nil {
		p.logger.Warn("failed to publish event", zap.String("subject", subject), zap.Error(err))
		return
	}

	p.logger.Debug("published event", zap.String("subject", subject), zap.String("post_id", string(e.Post.ID)))
}

func Subject(kind feed.EventKind) string {
	return subjectPrefix + string(kind)
}
