package main

import (
	"net/http"
	"time"

	"songvault/internal/app/playlists"
	"songvault/internal/app/songs"
	"songvault/internal/app/users"
	"songvault/internal/auth"
	"songvault/internal/httpapi"
	"songvault/internal/store"

	"github.com/rs/zerolog"
)

func newHTTPHandler(cfg Config, dataStore *store.Store, logger zerolog.Logger) http.Handler {
	userSvc := users.New(dataStore, logger)
	songSvc := songs.New(dataStore, logger)
	playlistSvc := playlists.New(dataStore, logger)

	tokens := auth.NewIssuer(cfg.JWTSecret, 24*time.Hour)

	server := httpapi.New(userSvc, songSvc, playlistSvc, tokens, logger)
	return httpapi.CORS(cfg.AllowedOrigin)(server.Routes())
}
