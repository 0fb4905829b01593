package routing

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"contestboard/internal/config"
	"contestboard/pkg/admin"
	"contestboard/pkg/handlers"
	"contestboard/pkg/middleware"
	"contestboard/pkg/participant"
	"contestboard/pkg/session"
	"contestboard/pkg/spreadsheet"
	"contestboard/pkg/upload"
)

const (
	staticPath     = "./static"
	uploadCategory = "registered|round1|winners"
)

func InitRoutes(r *mux.Router, sessions session.Registry, store *upload.DiskStore, logger *slog.Logger) {

	adminService := admin.NewService(verifierFromEnv(), sessions)
	adminHandler := handlers.NewAdminHandler(adminService, logger)

	participantService := participant.NewService(store, spreadsheet.XLSXReader{}, logger)
	participantHandler := handlers.NewParticipantHandler(participantService, logger)

	uploadHandler := handlers.NewUploadHandler(store, participantService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	uploadRouter := r.PathPrefix("/upload").Subrouter()
	apiRouter := r.PathPrefix("/api").Subrouter()

	/* admin routers */
	r.HandleFunc("/admin/login", adminHandler.Login).Methods("POST").Name("login")
	r.HandleFunc("/admin/logout", adminHandler.Logout).Methods("POST").Name("logout")

	/* upload routers, gated by session */
	uploadRouter.Use(middleware.CheckSession(sessions))
	uploadRouter.HandleFunc("/{category:(?:"+uploadCategory+")}", uploadHandler.Upload).Methods("POST")

	/* read-only data routers */
	apiRouter.HandleFunc("/{category:(?:"+uploadCategory+")}", participantHandler.List).Methods("GET")
}

// verifierFromEnv picks the credential check: a bcrypt hash when one
// is configured, the plain shared secret otherwise.
func verifierFromEnv() admin.Verifier {
	if hash := config.AdminPasswordHash(); hash != "" {
		return admin.BcryptVerifier{Hash: hash}
	}
	return admin.StaticVerifier{Secret: config.AdminPassword()}
}

// ServePages maps the front-end page routes onto the static dir.
func ServePages(r *mux.Router) {
	pages := map[string]string{
		"/":                "index.html",
		"/registered":      "registered.html",
		"/rounds":          "rounds.html",
		"/admin":           "admin-login.html",
		"/admin/dashboard": "admin-dashboard.html",
	}
	for route, file := range pages {
		page := filepath.Join(staticPath, file)
		r.HandleFunc(route, func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, page)
		}).Methods("GET")
	}
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func StartServer(h http.Handler, addr string) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, h); err != nil {
		log.Fatal("Server failed:", err)
	}
}
