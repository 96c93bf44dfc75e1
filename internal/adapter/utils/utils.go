package utils

import (
	"strings"
	"sync"

	"github.com/akolanti/pdfreader/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var once sync.Once
var router *chi.Mux

// NewSessionID returns a short random identifier for one extraction session.
// Drawn from a fresh UUID, so uniqueness is probabilistic - with 8 hex chars
// a collision inside the retention window is negligible, not impossible.
func NewSessionID() string {
	compact := strings.ReplaceAll(uuid.New().String(), "-", "")
	return compact[:config.SessionIDLength]
}

type RouterClient struct {
	Router *chi.Mux
}

func GetRouter() RouterClient {
	once.Do(func() {
		router = chi.NewRouter()
		//register prometheus
		router.Handle("/metrics", promhttp.Handler())
	})

	return RouterClient{Router: router}
}
