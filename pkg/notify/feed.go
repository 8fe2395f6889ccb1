package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/internal/metrics"
	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	apphttp "github.com/ShahiTechnovation/X4PN/pkg/app/http"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/node"
	nodeservice "github.com/ShahiTechnovation/X4PN/pkg/node/service"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Feed message types
const (
	MessageIdentified     = "identified"
	MessageSessionStarted = "session_started"
)

// FeedMessage is written to the node feed websocket.
type FeedMessage struct {
	Type    string                `json:"type"`
	NodeID  uuid.UUID             `json:"nodeId"`
	Session *session.Notification `json:"session,omitempty"`
}

// NodeLookup resolves the node a feed is opened for.
//
//go:generate mockery --name NodeLookup --output mocks --outpkg mocks --filename mock_node_lookup.go --with-expecter
type NodeLookup interface {
	GetNode(ctx context.Context, id uuid.UUID) (*node.Node, error)
}

// Subscriber opens a subscription on a node's session channel.
type Subscriber interface {
	Subscribe(ctx context.Context, nodeID uuid.UUID) (*redis.PubSub, error)
}

// Feed relays a node's session notifications to its operator over a websocket.
type Feed struct {
	nodes    NodeLookup
	bus      Subscriber
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// NewFeed creates the websocket feed handler.
func NewFeed(nodes NodeLookup, bus Subscriber, logger *zap.Logger) *Feed {
	return &Feed{
		nodes:  nodes,
		bus:    bus,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// daemons are not browsers; the bearer token is the access check
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterRoutes mounts the feed at GET /api/nodes/{id}/feed behind authMiddleware.
func RegisterRoutes(r chi.Router, feed *Feed, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Get("/api/nodes/{id}/feed", apphttp.HandleError(feed.serve))
}

func (f *Feed) serve(w http.ResponseWriter, r *http.Request) error {
	caller, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	id, err := nodeservice.ParseNodeID(r)
	if err != nil {
		return err
	}
	n, err := f.nodes.GetNode(r.Context(), id)
	if err != nil {
		return apperrors.ResourceNotFoundError(err, "Node not found")
	}
	if !auth.SameAddress(caller, n.OperatorAddress) {
		return apperrors.ForbiddenError(nil, "Only the node operator can open this feed")
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	sub, err := f.bus.Subscribe(ctx, id)
	if err != nil {
		return apperrors.DependencyError(err, "Notification channel unavailable")
	}
	defer sub.Close()

	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader already replied
		f.logger.Debug("websocket upgrade failed", zap.String("node_id", id.String()), zap.Error(err))
		return nil
	}
	defer conn.Close()

	metrics.FeedConnections.Inc()
	defer metrics.FeedConnections.Dec()
	f.logger.Info("node feed connected", zap.String("node_id", id.String()), zap.String("operator", caller))

	go readPump(conn, cancel)
	if err := f.writePump(ctx, conn, id, sub.Channel()); err != nil {
		f.logger.Debug("node feed closed", zap.String("node_id", id.String()), zap.Error(err))
	}
	return nil
}

// readPump discards client frames and keeps the read deadline moving on pongs.
// It cancels the feed when the connection goes away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *Feed) writePump(ctx context.Context, conn *websocket.Conn, nodeID uuid.UUID, messages <-chan *redis.Message) error {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	if err := writeJSON(conn, &FeedMessage{Type: MessageIdentified, NodeID: nodeID}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var n session.Notification
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				f.logger.Warn("dropping malformed notification",
					zap.String("channel", msg.Channel),
					zap.Error(err),
				)
				continue
			}
			if err := writeJSON(conn, &FeedMessage{Type: MessageSessionStarted, NodeID: nodeID, Session: &n}); err != nil {
				return err
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, msg *FeedMessage) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
