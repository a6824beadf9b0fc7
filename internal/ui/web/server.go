package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"focusflow/internal/core/model"
	"focusflow/internal/core/timer"
)

//go:embed assets/index.html
var assetFS embed.FS

var pageTemplate = template.Must(template.ParseFS(assetFS, "assets/index.html"))

// SaveFunc persists settings. Failures are logged, never surfaced.
type SaveFunc func(model.Settings) error

// Server is the web front-end: one page, a JSON control API and a
// websocket push channel for the live countdown.
type Server struct {
	engine       *timer.Engine
	hub          *Hub
	saveSettings SaveFunc
	upgrader     websocket.Upgrader

	mu       sync.Mutex
	settings model.Settings
}

// stateFrame is the JSON payload pushed to the page on every tick.
// expired marks phase-change frames so the page can chime and notify.
type stateFrame struct {
	Phase     timer.Phase `json:"phase"`
	Running   bool        `json:"running"`
	Remaining int         `json:"remaining"`
	Expired   bool        `json:"expired"`
}

type settingsPayload struct {
	WorkMinutes  int    `json:"work_minutes"`
	BreakMinutes int    `json:"break_minutes"`
	Theme        string `json:"theme"`
}

// NewServer creates the web front-end around a timer engine.
func NewServer(engine *timer.Engine, settings model.Settings, saveSettings SaveFunc) *Server {
	return &Server{
		engine:       engine,
		hub:          NewHub(),
		saveSettings: saveSettings,
		settings:     settings,
	}
}

// Run starts forwarding engine events to websocket clients. It returns
// after wiring up; the pump goroutine lives until the engine stops.
func (server *Server) Run() {
	events := server.engine.Subscribe(16)
	go func() {
		for event := range events {
			server.hub.Broadcast(marshalFrame(stateFrame{
				Phase:     event.Phase,
				Running:   event.Running,
				Remaining: int(event.Remaining.Seconds()),
				Expired:   event.Type == timer.EventPhaseChange,
			}))
		}
		server.hub.Close()
	}()
}

// Handler returns the HTTP routes.
func (server *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", server.handleIndex)
	mux.HandleFunc("/ws", server.handleWebsocket)
	mux.HandleFunc("/api/state", server.handleState)
	mux.HandleFunc("/api/start", server.handleControl(server.engine.Start))
	mux.HandleFunc("/api/pause", server.handleControl(server.engine.Pause))
	mux.HandleFunc("/api/reset", server.handleControl(server.engine.Reset))
	mux.HandleFunc("/api/settings", server.handleSettings)
	return mux
}

func (server *Server) handleIndex(writer http.ResponseWriter, request *http.Request) {
	if request.URL.Path != "/" {
		http.NotFound(writer, request)
		return
	}

	server.mu.Lock()
	settings := server.settings
	server.mu.Unlock()

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(writer, settings); err != nil {
		log.Warn("render page", "err", err)
	}
}

func (server *Server) handleWebsocket(writer http.ResponseWriter, request *http.Request) {
	conn, err := server.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		log.Debug("websocket upgrade failed", "err", err)
		return
	}
	server.hub.Attach(conn)
}

func (server *Server) handleState(writer http.ResponseWriter, request *http.Request) {
	if request.Method != http.MethodGet {
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snapshot := server.engine.Snapshot()
	writeJSON(writer, stateFrame{
		Phase:     snapshot.Phase,
		Running:   snapshot.Running,
		Remaining: int(snapshot.Remaining.Seconds()),
	})
}

func (server *Server) handleControl(action func()) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if request.Method != http.MethodPost {
			http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		action()

		snapshot := server.engine.Snapshot()
		writeJSON(writer, stateFrame{
			Phase:     snapshot.Phase,
			Running:   snapshot.Running,
			Remaining: int(snapshot.Remaining.Seconds()),
		})
	}
}

func (server *Server) handleSettings(writer http.ResponseWriter, request *http.Request) {
	switch request.Method {
	case http.MethodGet:
		server.mu.Lock()
		settings := server.settings
		server.mu.Unlock()
		writeJSON(writer, payloadFromSettings(settings))
	case http.MethodPut, http.MethodPost:
		var payload settingsPayload
		if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
			http.Error(writer, "invalid settings payload", http.StatusBadRequest)
			return
		}

		settings, ok := settingsFromPayload(payload)
		if !ok {
			http.Error(writer, "settings out of range", http.StatusBadRequest)
			return
		}

		server.mu.Lock()
		server.settings = settings
		server.mu.Unlock()

		server.engine.UpdateConfig(settings.TimerConfig())
		if err := server.saveSettings(settings); err != nil {
			log.Warn("persist settings", "err", err)
		}

		writeJSON(writer, payloadFromSettings(settings))
	default:
		http.Error(writer, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func settingsFromPayload(payload settingsPayload) (model.Settings, bool) {
	theme := model.Theme(payload.Theme)
	if payload.WorkMinutes < 1 || payload.WorkMinutes > 180 {
		return model.Settings{}, false
	}
	if payload.BreakMinutes < 1 || payload.BreakMinutes > 60 {
		return model.Settings{}, false
	}
	if !theme.Valid() {
		return model.Settings{}, false
	}
	return model.Settings{
		WorkMinutes:  payload.WorkMinutes,
		BreakMinutes: payload.BreakMinutes,
		Theme:        theme,
	}, true
}

func payloadFromSettings(settings model.Settings) settingsPayload {
	return settingsPayload{
		WorkMinutes:  settings.WorkMinutes,
		BreakMinutes: settings.BreakMinutes,
		Theme:        string(settings.Theme),
	}
}

func writeJSON(writer http.ResponseWriter, value any) {
	writer.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(writer).Encode(value); err != nil {
		log.Debug("encode response", "err", err)
	}
}

func marshalFrame(frame stateFrame) []byte {
	serialized, err := json.Marshal(frame)
	if err != nil {
		return []byte("{}")
	}
	return serialized
}
