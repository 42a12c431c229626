package main

import "kinobot/internal/store"

// AppContext holds the application dependencies and state.
type AppContext struct {
	Config   *Config
	Store    *store.VideoStore
	Sessions *SessionStore
}

// Global app context used by the update handlers. Set once in main;
// tests swap it out and restore it with t.Cleanup.
var app *AppContext

// InitApp builds the application context from an already-loaded
// config and an open store.
func InitApp(cfg *Config, st *store.VideoStore) *AppContext {
	return &AppContext{
		Config:   cfg,
		Store:    st,
		Sessions: NewSessionStore(),
	}
}
