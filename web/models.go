/* models.go
 * Contains the structs used by the web server
 * Authors: Zachary Bower
 */

package web

import (
	"sync"

	"playoff-pool/api/api"

	"github.com/sirupsen/logrus"
)

// Config holds the configuration for the web server
type Config struct {
	Addr   string
	API    *api.API
	Logger *logrus.Logger
}

// Server is the HTTP server that handles webhook and summary requests
type Server struct {
	api    *api.API
	logger *logrus.Logger

	// tracks background rebuilds started by the refresh webhook
	rebuilds sync.WaitGroup

	// one lock per year so rebuilds of the same year run one at a time
	mu        sync.Mutex
	yearLocks map[int]*sync.Mutex
}

// RefreshEvent is the optional body of a refresh webhook. Year 0 means the current year
type RefreshEvent struct {
	Year int `json:"year"`
}

func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Server{api: cfg.API, logger: logger, yearLocks: make(map[int]*sync.Mutex)}
}

// yearLock returns the lock serializing rebuilds of year, creating it on first use
func (s *Server) yearLock(year int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.yearLocks == nil {
		s.yearLocks = make(map[int]*sync.Mutex)
	}
	lock, ok := s.yearLocks[year]
	if !ok {
		lock = &sync.Mutex{}
		s.yearLocks[year] = lock
	}
	return lock
}
