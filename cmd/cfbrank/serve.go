package main

import (
	"log"

	"github.com/gridironlabs/cfbrank/internal/server"
)

type serveCmd struct {
	Config string `help:"Path to a YAML configuration file. If empty, CFBRANK_CONFIG is consulted."`
	Addr   string `help:"HTTP listen address, overriding the configured one."`
}

func (a *serveCmd) Run(g *globalCmd) error {
	cfg, err := server.LoadConfig(a.Config)
	if err != nil {
		return err
	}
	if a.Addr != "" {
		cfg.Addr = a.Addr
	}
	if cfg.APIKey == "" {
		cfg.APIKey = g.APIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = g.BaseURL
	}
	if g.DataDir != "" && g.DataDir != "data" {
		cfg.DataDir = g.DataDir
	}

	srv := server.NewServer(cfg)
	log.Printf("Serving rankings API on %s (data dir %s)", cfg.Addr, cfg.DataDir)
	return srv.ListenAndServe()
}
