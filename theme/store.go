package theme

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	darkModeKey    = "darkMode"
	accentColorKey = "accentColor"
)

// Store holds the appearance preferences and writes them through to a
// Storage on every change. Storage failures are logged and otherwise
// ignored: the in-memory state stays authoritative. Storage I/O happens
// outside mu, so State never waits on a slow backend.
type Store struct {
	mu      sync.Mutex
	state   State
	storage Storage
	logger  *zap.Logger

	// saveMu orders writes to storage
	saveMu sync.Mutex

	subMu       sync.Mutex
	subscribers map[int]func(State)
	nextSub     int
}

// NewStore loads the last saved state from storage. A missing or unreadable
// field falls back to its default.
func NewStore(storage Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{storage: storage, logger: logger, subscribers: map[int]func(State){}}
	s.state = s.load()
	return s
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) ToggleDarkMode() {
	s.update(func(st *State) { st.DarkMode = !st.DarkMode })
}

func (s *Store) SetAccentColor(c Color) error {
	if !c.Valid() {
		return ErrInvalidColor
	}
	s.update(func(st *State) { st.AccentColor = c })
	return nil
}

// Subscribe registers fn to receive the state after every change.
func (s *Store) Subscribe(fn func(State)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) update(change func(*State)) {
	s.mu.Lock()
	change(&s.state)
	st := s.state
	s.mu.Unlock()

	s.persist()

	s.subMu.Lock()
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// persist writes the state current at the time saveMu is acquired, so the
// last write always holds the newest state.
func (s *Store) persist() {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	s.save(s.State())
}

func (s *Store) save(st State) {
	if err := s.storage.Set(darkModeKey, strconv.FormatBool(st.DarkMode)); err != nil {
		s.logger.Warn("failed to persist dark mode", zap.Error(err))
	}
	if err := s.storage.Set(accentColorKey, string(st.AccentColor)); err != nil {
		s.logger.Warn("failed to persist accent color", zap.Error(err))
	}
}

func (s *Store) load() State {
	st := DefaultState()

	if v, ok, err := s.storage.Get(darkModeKey); err != nil {
		s.logger.Warn("failed to read dark mode", zap.Error(err))
	} else if ok {
		var dark bool
		if err := json.Unmarshal([]byte(v), &dark); err != nil {
			s.logger.Warn("ignoring stored dark mode", zap.String("value", v))
		} else {
			st.DarkMode = dark
		}
	}

	if v, ok, err := s.storage.Get(accentColorKey); err != nil {
		s.logger.Warn("failed to read accent color", zap.Error(err))
	} else if ok {
		c, err := ParseColor(strings.Trim(v, `"`))
		if err != nil {
			s.logger.Warn("ignoring stored accent color", zap.String("value", v))
		} else {
			st.AccentColor = c
		}
	}

	return st
}
