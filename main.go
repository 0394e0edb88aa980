package main

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"cvdrisk-engine/internal/catalog"
	"cvdrisk-engine/internal/config"
	"cvdrisk-engine/internal/engine"
	"cvdrisk-engine/internal/handler"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg)

	cat := catalog.Default()
	if cfg.CatalogRegistryURL != "" {
		remote, err := catalog.LoadFromRegistry(cfg.CatalogRegistryURL)
		if err != nil {
			log.WithError(err).Warn("effect-table registry unavailable, using built-in tables")
		} else {
			cat = remote
			log.WithFields(logrus.Fields{
				"interventions": len(cat.Interventions),
				"therapies":     len(cat.Therapies),
			}).Info("loaded effect tables from registry")
		}
	}

	h := handler.New(engine.New(cat), log, cfg.RateLimitRPS)

	addr := ":" + strconv.Itoa(cfg.Port)
	log.WithField("addr", addr).Info("cvd risk engine starting")
	if err := fasthttp.ListenAndServe(addr, h.Handle); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
	return log
}
