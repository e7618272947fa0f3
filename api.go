package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"

	"github.com/maplefeline/slowchess/chess"
)

type gameRequest struct {
	White      string
	Black      string
	Difficulty int
}

type moveRequest struct {
	From string
	To   string
}

type indexResponse struct {
	Href  string
	Games string
}

type gameResponse struct {
	Href string
	Game Game
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type movesResponse struct {
	Href         string
	Moves        []chess.Move
	Destinations []chess.Position `json:",omitempty"`
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(id)
}

func requestPosition(s string) (chess.Position, error) {
	pos, err := chess.ParsePosition(s)
	if err != nil {
		return chess.Position{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pos, nil
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func responseGame(game *Game) gameResponse {
	return gameResponse{Game: *game, Href: gameHref(game)}
}

func responseGames(games []Game) gamesResponse {
	return gamesResponse{Games: games, Href: "/games"}
}

func responseMoves(game *Game, from *chess.Position) movesResponse {
	response := movesResponse{Moves: game.legalMoves(from), Href: path.Join(gameHref(game), "moves")}
	if from != nil {
		response.Destinations = make([]chess.Position, 0, len(response.Moves))
		for _, move := range response.Moves {
			response.Destinations = append(response.Destinations, move.To)
		}
	}
	return response
}

func apiHandler() *echo.Echo {
	e := echo.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, indexResponse{Href: "/", Games: "/games"})
	})
	e.GET("/games", func(c echo.Context) error {
		games, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(games))
	})
	e.POST("/games", func(c echo.Context) error {
		var request gameRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		game, err := makeGame(request.White, request.Black, request.Difficulty)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseGame(game))
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.GET("/games/:id/moves", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		var from *chess.Position
		if s := c.QueryParam("from"); s != "" {
			pos, err := requestPosition(s)
			if err != nil {
				return err
			}
			from = &pos
		}
		return c.JSON(http.StatusOK, responseMoves(game, from))
	})
	e.PUT("/games/:id/moves", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		var request moveRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		var move chess.Move
		if move.From, err = requestPosition(request.From); err != nil {
			return err
		}
		if move.To, err = requestPosition(request.To); err != nil {
			return err
		}
		game, err := withGame(id, func(game *Game) error {
			return game.play(move)
		})
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
