package main

import (
	"log"

	"contestboard/internal/config"
	"contestboard/internal/logger"
	"contestboard/internal/mysql"
	"contestboard/internal/routing"
	"contestboard/pkg/middleware"
	"contestboard/pkg/session"
	"contestboard/pkg/upload"

	"github.com/gorilla/mux"
)

func main() {
	config.Load() // load env var from .env

	logger := logger.Load(nil)

	var sessions session.Registry
	if dsn := config.SessionDSN(); dsn != "" {
		db := mysql.LoadDB(dsn)
		defer db.Close()
		sessions = session.NewMySQLRegistry(db)
	} else {
		sessions = session.NewMemoryRegistry()
	}

	store, err := upload.NewDiskStore(config.UploadsDir())
	if err != nil {
		log.Fatal(err)
	}

	r := mux.NewRouter()

	routing.InitRoutes(r, sessions, store, logger)
	routing.ServePages(r)
	routing.ServeStaticFiles(r)

	/*
		CORS wraps the router itself: mux only runs Router.Use
		middleware after a route matches, so a preflight OPTIONS
		against a POST-only route would otherwise get a bare 405
		without the CORS headers.
	*/
	routing.StartServer(middleware.CORS(middleware.Panic(r)), config.Addr()) // start server on localhost:3000
}
