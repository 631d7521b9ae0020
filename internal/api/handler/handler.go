// Package handler is the HTTP boundary. It decodes requests into typed
// payloads, dispatches to the rules engines and renders the response
// envelope; all business decisions live in the service packages.
package handler

import (
	"wheely/backend/internal/account"
	"wheely/backend/internal/feed"
	"wheely/backend/internal/report"
	"wheely/backend/internal/storage"
)

type Handler struct {
	Accounts *account.Service
	Reports  *report.Service
	Hub      *feed.Hub
	Storage  storage.Storage

	jwtSecret []byte
}

func NewHandler(accounts *account.Service, reports *report.Service, hub *feed.Hub, s storage.Storage, jwtSecret string) *Handler {
	return &Handler{
		Accounts:  accounts,
		Reports:   reports,
		Hub:       hub,
		Storage:   s,
		jwtSecret: []byte(jwtSecret),
	}
}
