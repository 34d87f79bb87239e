// Package config carga la configuración del servicio desde variables de
// entorno, con un .env opcional para desarrollo local.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string

	// DatabaseURL vacío => el router usa el storage en memoria.
	DatabaseURL string
	DBMaxConns  int
}

// Load lee el entorno. El .env es opcional: si no existe se ignora el error,
// igual que en producción donde las vars vienen del orquestador.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:           envOr("PORT", "8080"),
		AllowedOrigins: splitCSV(envOr("ALLOWED_ORIGINS", "*")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBMaxConns:     envInt("DB_MAX_CONNS", 10),
	}

	// Alternativa por piezas (DB_HOST, DB_USER, ...) si no hay URL completa.
	if cfg.DatabaseURL == "" && os.Getenv("DB_HOST") != "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			envOr("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			envOr("DB_PORT", "5432"),
			envOr("DB_NAME", "pet_impacta"),
			envOr("DB_SSLMODE", "disable"),
		)
	}

	return cfg
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
