package main

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"

	"github.com/maplefeline/slowchess/chess"
)

const (
	userType  = "user"
	agentType = "agent"

	minDifficulty     = 1
	maxDifficulty     = 5
	defaultDifficulty = 3
)

// Game game.
type Game struct {
	gorm.Model

	ActiveAgentType   string `gorm:"index"`
	BlackType         string
	Board             chess.Board `gorm:"type:text;not null"`
	Difficulty        int
	End               bool
	GameID            uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	InactiveAgentType string
	LastMove          string
	MoveCount         int
	WhiteType         string
}

// gamesMu serialises every load-play-save sequence; a Board has one owner at
// a time.
var gamesMu sync.Mutex

func withGame(id uuid.UUID, fn func(game *Game) error) (*Game, error) {
	gamesMu.Lock()
	defer gamesMu.Unlock()
	game, err := store.get(id)
	if err != nil {
		return nil, err
	}
	if err := fn(game); err != nil {
		return nil, err
	}
	return game, nil
}

func validPlayer(kind string) bool {
	return kind == userType || kind == agentType
}

func makeGame(white, black string, difficulty int) (*Game, error) {
	if white == "" {
		white = userType
	}
	if black == "" {
		black = agentType
	}
	if difficulty == 0 {
		difficulty = defaultDifficulty
	}
	for _, kind := range []string{white, black} {
		if !validPlayer(kind) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown player type: %s", kind))
		}
	}
	if difficulty < minDifficulty || difficulty > maxDifficulty {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("difficulty must be between %d and %d", minDifficulty, maxDifficulty))
	}
	game := &Game{
		ActiveAgentType:   white,
		BlackType:         black,
		Board:             *chess.NewBoard(),
		Difficulty:        difficulty,
		GameID:            uuid.NewV4(),
		InactiveAgentType: black,
		WhiteType:         white,
	}
	gamesMu.Lock()
	defer gamesMu.Unlock()
	if err := store.create(game); err != nil {
		return nil, err
	}
	log.WithField("game", game.GameID).WithField("white", white).WithField("black", black).Info("game created")
	if err := game.pokeAgent(); err != nil {
		return nil, err
	}
	return game, nil
}

func getGame(id uuid.UUID) (*Game, error) {
	return store.get(id)
}

func getGames() ([]Game, error) {
	return store.list()
}

// play submits a user's move and lets the agent answer when it is next.
func (game *Game) play(move chess.Move) error {
	if game.End {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	if game.ActiveAgentType != userType {
		return echo.NewHTTPError(http.StatusNotAcceptable, "not your turn")
	}
	if err := game.apply(move); err != nil {
		return err
	}
	return game.pokeAgent()
}

func (game *Game) apply(move chess.Move) error {
	if !game.Board.Play(move) {
		return echo.NewHTTPError(http.StatusBadRequest, "illegal move")
	}
	game.InactiveAgentType, game.ActiveAgentType = game.ActiveAgentType, game.InactiveAgentType
	game.MoveCount = game.MoveCount + 1
	game.LastMove = move.String()
	game.End = game.Board.State().Terminal()
	history := game.Board.MoveHistory()
	log.WithField("game", game.GameID).
		WithField("move", move).
		WithField("notation", history[len(history)-1]).
		WithField("state", game.Board.State()).
		Debug("move played")
	if game.End {
		log.WithField("game", game.GameID).WithField("state", game.Board.State()).WithField("moves", game.MoveCount).Info("game over")
	}
	return store.save(game)
}

// pokeAgent plays one agent move if an agent is to move.
func (game *Game) pokeAgent() error {
	if game.End || game.ActiveAgentType != agentType {
		return nil
	}
	move, ok := opponent.decide(&game.Board, game.Difficulty)
	if !ok {
		return echo.NewHTTPError(http.StatusNotAcceptable, "no moves available")
	}
	return game.apply(move)
}

// legalMoves lists every move of the side to move, or only those from one
// square when from is set.
func (game *Game) legalMoves(from *chess.Position) []chess.Move {
	if from == nil {
		return game.Board.Moves()
	}
	destinations := game.Board.LegalMoves(*from)
	moves := make([]chess.Move, 0, len(destinations))
	for _, to := range destinations {
		moves = append(moves, chess.Move{From: *from, To: to})
	}
	return moves
}

func gameIdle() error {
	gamesMu.Lock()
	defer gamesMu.Unlock()
	return store.purge()
}
