package netinfo

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stormforge/gametypes/internal/observability/log"
)

// Session lifecycle errors.
var (
	ErrSessionFull     = errors.New("session is full")
	ErrSessionEmpty    = errors.New("session has no players")
	ErrSessionNotFound = errors.New("session not found")
)

// SessionInfo describes one hosted game session.
type SessionInfo struct {
	SessionID       NetworkGUID       `json:"session_id" yaml:"session_id"`
	SessionName     string            `json:"session_name" yaml:"session_name"`
	GameMode        string            `json:"game_mode" yaml:"game_mode"`
	MapName         string            `json:"map_name" yaml:"map_name"`
	MaxPlayers      int               `json:"max_players" yaml:"max_players"`
	CurrentPlayers  int               `json:"current_players" yaml:"current_players"`
	IsPrivate       bool              `json:"is_private" yaml:"is_private"`
	AllowSpectators bool              `json:"allow_spectators" yaml:"allow_spectators"`
	Region          string            `json:"region" yaml:"region"`
	CreatedUnix     int64             `json:"created_unix" yaml:"created_unix"`
	Properties      map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// NewSessionInfo returns a fresh session descriptor with a generated
// identifier.
func NewSessionInfo(name, gameMode, mapName string, maxPlayers int) SessionInfo {
	return SessionInfo{
		SessionID:       NextNetworkGUID(),
		SessionName:     name,
		GameMode:        gameMode,
		MapName:         mapName,
		MaxPlayers:      maxPlayers,
		AllowSpectators: true,
		CreatedUnix:     time.Now().Unix(),
	}
}

// HasAvailableSlots reports whether another player fits.
func (s SessionInfo) HasAvailableSlots() bool {
	return s.CurrentPlayers < s.MaxPlayers
}

// IsFull reports whether the session is at capacity.
func (s SessionInfo) IsFull() bool {
	return s.CurrentPlayers >= s.MaxPlayers
}

// String renders the session for logs.
func (s SessionInfo) String() string {
	return fmt.Sprintf("Session(%q %d/%d on %s, mode %s)",
		s.SessionName, s.CurrentPlayers, s.MaxPlayers, s.MapName, s.GameMode)
}

// SessionTemplate is the YAML shape a deployment uses to predeclare
// sessions.
type SessionTemplate struct {
	SessionName     string            `yaml:"session_name"`
	GameMode        string            `yaml:"game_mode"`
	MapName         string            `yaml:"map_name"`
	MaxPlayers      int               `yaml:"max_players"`
	IsPrivate       bool              `yaml:"is_private,omitempty"`
	AllowSpectators bool              `yaml:"allow_spectators,omitempty"`
	Region          string            `yaml:"region,omitempty"`
	Properties      map[string]string `yaml:"properties,omitempty"`
}

// LoadSessionTemplates reads a YAML list of session templates.
func LoadSessionTemplates(r io.Reader) ([]SessionTemplate, error) {
	var templates []SessionTemplate
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&templates); err != nil {
		return nil, fmt.Errorf("decode session templates: %w", err)
	}
	return templates, nil
}

// SessionRegistry tracks the live sessions of one server process.
// Unlike the value types it guards its state: registries are shared
// by acceptors and matchmakers on different goroutines.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[NetworkGUID]SessionInfo
	logger   log.Log
}

// NewSessionRegistry returns an empty registry logging through
// logger; a nil logger discards.
func NewSessionRegistry(logger log.Log) *SessionRegistry {
	if logger == nil {
		logger = log.Nop()
	}
	return &SessionRegistry{
		sessions: make(map[NetworkGUID]SessionInfo),
		logger:   logger,
	}
}

// Create registers a new session built from the given parameters and
// returns its descriptor.
func (r *SessionRegistry) Create(name, gameMode, mapName string, maxPlayers int) SessionInfo {
	return r.insert(NewSessionInfo(name, gameMode, mapName, maxPlayers))
}

// CreateFromTemplate registers a session from a YAML template. The
// descriptor is fully built before it is inserted, so readers never
// observe a session without its template fields.
func (r *SessionRegistry) CreateFromTemplate(t SessionTemplate) SessionInfo {
	info := NewSessionInfo(t.SessionName, t.GameMode, t.MapName, t.MaxPlayers)
	info.IsPrivate = t.IsPrivate
	info.AllowSpectators = t.AllowSpectators
	info.Region = t.Region
	if len(t.Properties) > 0 {
		info.Properties = make(map[string]string, len(t.Properties))
		for k, v := range t.Properties {
			info.Properties[k] = v
		}
	}
	return r.insert(info)
}

func (r *SessionRegistry) insert(info SessionInfo) SessionInfo {
	r.mu.Lock()
	r.sessions[info.SessionID] = info
	r.mu.Unlock()
	r.logger.Info("session created",
		log.Uint32("session_id", info.SessionID.Value),
		log.String("name", info.SessionName),
		log.String("map", info.MapName),
		log.Int("max_players", info.MaxPlayers),
	)
	return info
}

// Get returns the session with the given identifier.
func (r *SessionRegistry) Get(id NetworkGUID) (SessionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.sessions[id]
	return info, ok
}

// Num returns the number of live sessions.
func (r *SessionRegistry) Num() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// AddPlayer claims a slot in the session.
func (r *SessionRegistry) AddPlayer(id NetworkGUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if info.IsFull() {
		return fmt.Errorf("%w: %s", ErrSessionFull, info.SessionName)
	}
	info.CurrentPlayers++
	r.sessions[id] = info
	r.logger.Debug("player joined",
		log.Uint32("session_id", id.Value),
		log.Int("players", info.CurrentPlayers),
	)
	return nil
}

// RemovePlayer releases a slot in the session.
func (r *SessionRegistry) RemovePlayer(id NetworkGUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if info.CurrentPlayers == 0 {
		return fmt.Errorf("%w: %s", ErrSessionEmpty, info.SessionName)
	}
	info.CurrentPlayers--
	r.sessions[id] = info
	return nil
}

// Close drops the session from the registry.
func (r *SessionRegistry) Close(id NetworkGUID) {
	r.mu.Lock()
	_, existed := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if existed {
		r.logger.Info("session closed", log.Uint32("session_id", id.Value))
	}
}

// List returns a snapshot of all live sessions.
func (r *SessionRegistry) List() []SessionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SessionInfo, 0, len(r.sessions))
	for _, info := range r.sessions {
		out = append(out, info)
	}
	return out
}
