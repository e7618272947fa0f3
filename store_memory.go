package main

import (
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

// memoryStore keeps games in process. Games handed out are copies.
type memoryStore struct {
	mu     sync.Mutex
	nextID uint
	games  map[uuid.UUID]Game
}

func newMemoryStore() *memoryStore {
	return &memoryStore{games: map[uuid.UUID]Game{}}
}

func (game Game) clone() Game {
	game.Board = *game.Board.Clone()
	return game
}

func (s *memoryStore) create(game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	now := time.Now()
	game.ID = s.nextID
	game.CreatedAt = now
	game.UpdatedAt = now
	s.games[game.GameID] = game.clone()
	return nil
}

func (s *memoryStore) get(id uuid.UUID) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	game = game.clone()
	return &game, nil
}

func (s *memoryStore) find(match func(Game) bool) []Game {
	games := make([]Game, 0, len(s.games))
	for _, game := range s.games {
		if match(game) {
			games = append(games, game.clone())
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

func (s *memoryStore) list() ([]Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(func(Game) bool { return true }), nil
}

func (s *memoryStore) save(game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.GameID]; !ok {
		return gorm.ErrRecordNotFound
	}
	game.UpdatedAt = time.Now()
	s.games[game.GameID] = game.clone()
	return nil
}

func (s *memoryStore) stale(before time.Time) ([]Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(func(game Game) bool {
		return !game.End && game.ActiveAgentType == agentType && game.UpdatedAt.Before(before)
	}), nil
}

func (s *memoryStore) purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, game := range s.games {
		if game.End && game.WhiteType != userType && game.BlackType != userType {
			delete(s.games, id)
		}
	}
	return nil
}

func (s *memoryStore) close() error {
	return nil
}
