package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/events/{eventID}/leaderboard", handler.GetEventLeaderboard)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/leaderboard", handler.GetGlobalLeaderboard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/events/{eventID}/picks", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPick)))
	mux.Handle("GET /v1/leagues/{leagueID}/events/{eventID}/picks/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMyPick)))
	mux.Handle("DELETE /v1/leagues/{leagueID}/events/{eventID}/picks/me", RequireAuth(verifier, http.HandlerFunc(handler.DeleteMyPick)))
	mux.Handle("GET /v1/leagues/{leagueID}/picks/me", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPicks)))
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/results/{eventName}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestEventResults)))
	mux.Handle("POST /v1/internal/jobs/lock-sweep", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLockSweep)))
	mux.Handle("POST /v1/internal/picks/{pickID}/lock", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.LockPick)))
	mux.Handle("POST /v1/internal/events", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RegisterEvent)))
}
