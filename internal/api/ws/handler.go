package ws

import (
	"net/http"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vaultview/backend/internal/domain/nav"
	"github.com/vaultview/backend/internal/domain/vfs"
	"github.com/vaultview/backend/internal/infrastructure/logging"
	"github.com/vaultview/backend/internal/infrastructure/monitoring"
	"github.com/vaultview/backend/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// ClientMessage is one inbound navigation or selection command.
type ClientMessage struct {
	Type      string `json:"type"`
	FolderID  string `json:"folder_id,omitempty"`
	ItemID    string `json:"item_id,omitempty"`
	FileID    string `json:"file_id,omitempty"`
	Index     int    `json:"index,omitempty"`
	SortKey   string `json:"sort_key,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

// Handler manages WebSocket sessions: each connection holds its own
// breadcrumb path and selection, receives store mutation events, and can ask
// for the projected view of its current folder.
type Handler struct {
	store   *vfs.Store
	hub     *Hub
	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// NewHandler creates a new WebSocket handler.
func NewHandler(store *vfs.Store, hub *Hub, logger *logging.Logger, metrics *monitoring.Metrics) *Handler {
	return &Handler{store: store, hub: hub, logger: logger, metrics: metrics}
}

// HandleConnection handles WebSocket upgrade and the message loop.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.WSConnected()
		defer h.metrics.WSDisconnected()
	}

	// The reader loop and the event forwarder both touch the session.
	var sessionMu sync.Mutex
	session := nav.New(h.store.RootID())
	sortKey := types.SortByName
	sortOrder := types.SortAsc

	outbound := make(chan Event, 64)
	events := h.hub.Subscribe()
	defer h.hub.Unsubscribe(events)

	// Single writer goroutine; the reader and the hub both feed outbound.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case event, ok := <-outbound:
				if !ok {
					return
				}
				h.send(conn, event)
			case event, ok := <-events:
				if !ok {
					return
				}
				if event.Type == EventDeleted {
					sessionMu.Lock()
					h.pruneSession(session, event)
					sessionMu.Unlock()
				}
				h.send(conn, event)
			}
		}
	}()
	defer close(outbound)

	outbound <- Event{Type: "system", Payload: gin.H{"root_id": h.store.RootID()}}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := sonic.Unmarshal(raw, &msg); err != nil {
			outbound <- Event{Type: "error", Payload: gin.H{"error": "malformed message"}}
			continue
		}
		if h.metrics != nil {
			h.metrics.RecordWSMessage(msg.Type, "in")
		}

		sessionMu.Lock()
		reply := h.handleMessage(session, &sortKey, &sortOrder, msg)
		sessionMu.Unlock()
		outbound <- reply
	}
}

// handleMessage applies one client command to the session and returns the
// reply frame. The caller holds the session lock.
func (h *Handler) handleMessage(session *nav.State, sortKey *types.SortKey, sortOrder *types.SortOrder, msg ClientMessage) Event {
	switch msg.Type {
	case "navigate":
		entry, ok := h.store.Get(msg.FolderID)
		if !ok || entry.Kind != types.KindFolder {
			return Event{Type: "error", Payload: gin.H{"error": "unknown folder"}}
		}
		session.Into(msg.FolderID)
	case "navigate_crumb":
		session.ToCrumb(msg.Index)
	case "navigate_back":
		session.Back()
	case "select":
		session.Select(msg.ItemID)
		return h.selectionEvent(session)
	case "open_file":
		session.MarkOpened(msg.FileID)
		return Event{Type: "file_opened", Payload: gin.H{"file_id": msg.FileID}}
	case "view":
		if key, ok := types.ParseSortKey(msg.SortKey); ok {
			*sortKey = key
		}
		if order, ok := types.ParseSortOrder(msg.SortOrder); ok {
			*sortOrder = order
		}
	default:
		return Event{Type: "error", Payload: gin.H{"error": "unknown message type"}}
	}

	// Every navigation or sort change answers with the current view.
	return h.viewEvent(session, *sortKey, *sortOrder)
}

// viewEvent projects the session's current folder.
func (h *Handler) viewEvent(session *nav.State, key types.SortKey, order types.SortOrder) Event {
	entries, err := h.store.ListChildren(session.Current(), key, order)
	if err != nil {
		return Event{Type: "error", Payload: gin.H{"error": err.Error()}}
	}
	return Event{Type: "view", Payload: gin.H{
		"folder_id":   session.Current(),
		"breadcrumbs": session.Breadcrumbs(),
		"at_root":     session.AtRoot(),
		"entries":     entries,
	}}
}

func (h *Handler) selectionEvent(session *nav.State) Event {
	selected, ok := session.Selected()
	if !ok {
		return Event{Type: "selection", Payload: gin.H{"selected": nil}}
	}
	return Event{Type: "selection", Payload: gin.H{"selected": selected}}
}

// pruneSession drops deleted items from a session and rewinds its path when
// a folder on the breadcrumb trail disappeared.
func (h *Handler) pruneSession(session *nav.State, event Event) {
	deleted, ok := event.Payload.(*types.Deleted)
	if !ok {
		return
	}
	for _, id := range deleted.FileIDs {
		session.Drop(id)
	}
	for _, id := range deleted.FolderIDs {
		session.Drop(id)
		for i, crumb := range session.Breadcrumbs() {
			if crumb == id && i > 0 {
				session.ToCrumb(i - 1)
				break
			}
		}
	}
}

// send marshals with sonic and writes one frame.
func (h *Handler) send(conn *websocket.Conn, event Event) {
	data, err := sonic.Marshal(event)
	if err != nil {
		h.logger.Warn("Failed to marshal event", zap.Error(err))
		return
	}
	if h.metrics != nil {
		h.metrics.RecordWSMessage(event.Type, "out")
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.Debug("WebSocket write failed", zap.Error(err))
	}
}
