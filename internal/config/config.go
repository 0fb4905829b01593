package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultAddr       = ":3000"
	defaultUploadsDir = "./uploads"
)

func Load() {
	/*
		START names the env file to load (.env-local against a real
		MySQL session store, .env.docker inside docker). Without START
		a plain .env is optional and ambient variables win.
	*/
	if file := os.Getenv("START"); file != "" {
		if err := godotenv.Load(file); err != nil {
			log.Fatalf("Env file not found")
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Cannot read .env: %v", err)
	}

	if os.Getenv("ADMIN_PASSWORD") == "" && os.Getenv("ADMIN_PASSWORD_HASH") == "" {
		log.Fatalf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is not set in environment")
	}
}

func Addr() string {
	if addr := os.Getenv("HTTP_ADDR"); addr != "" {
		return addr
	}
	return defaultAddr
}

func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return defaultUploadsDir
}

// SessionDSN selects the shared MySQL session registry when non-empty.
func SessionDSN() string {
	return os.Getenv("SESSION_DSN")
}

func AdminPassword() string {
	return os.Getenv("ADMIN_PASSWORD")
}

// AdminPasswordHash replaces the plain shared secret with a bcrypt
// hash check when set.
func AdminPasswordHash() string {
	return os.Getenv("ADMIN_PASSWORD_HASH")
}
