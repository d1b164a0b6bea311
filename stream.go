package feed

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	streamBuffer = 16
	writeWait    = 10 * time.Second
)

// upgrader keeps gorilla's default origin check: browsers may only connect
// from the host serving the stream.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// StreamHandler upgrades to a websocket and writes every feed event to it as
// JSON. The subscription starts before the handshake completes, so a client
// sees every event that happens after Dial returns. A client more than
// streamBuffer events behind is disconnected.
func StreamHandler(svc Service, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		events := make(chan Event, streamBuffer)
		overflow := make(chan struct{})
		var once sync.Once
		unsubscribe := svc.Subscribe(func(e Event) {
			select {
			case events <- e:
			default:
				once.Do(func() { close(overflow) })
			}
		})
		defer unsubscribe()

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		// a write blocked on a full socket only returns once conn is closed
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-overflow:
				logger.Warn("stream client too slow, closing")
				conn.Close()
			case <-done:
			}
		}()

		for {
			select {
			case e := <-events:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(e); err != nil {
					logger.Debug("stream write failed", zap.Error(err))
					return
				}
			case <-overflow:
				return
			case <-closed:
				return
			}
		}
	})
}
