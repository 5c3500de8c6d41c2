package main

import (
	"flag"
	"strings"

	"github.com/MarcelRaschke/ccxt/cmd/config"
	"github.com/MarcelRaschke/ccxt/common/rlog"
	"github.com/MarcelRaschke/ccxt/common/rootpath"
	"github.com/MarcelRaschke/ccxt/internal/test/base"
	"github.com/MarcelRaschke/ccxt/service/sandbox"
)

// Config is the toml setup of the command
type Config struct {
	SandboxBind string
	APIKey      string
	Secret      string
	Fixture     string
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path of the toml config file")
	flag.Parse()

	var cfg Config
	if len(configPath) > 0 {
		if err := config.LoadFile(configPath, &cfg); err != nil {
			rlog.Fatalln(err)
		}
	}

	if err := base.Run(); err != nil {
		rlog.Fatalln("base tests failed:", err)
	}
	rlog.Println("base tests passed:", strings.Join(base.Names(), ", "))

	if len(cfg.SandboxBind) == 0 {
		return
	}
	fixture := cfg.Fixture
	if len(fixture) == 0 {
		path, err := rootpath.Locate("service/sandbox/testdata/markets.yml")
		if err != nil {
			rlog.Fatalln(err)
		}
		fixture = path
	}
	sb, err := sandbox.New(sandbox.Config{
		APIKey: cfg.APIKey,
		Secret: cfg.Secret,
	}, fixture)
	if err != nil {
		rlog.Fatalln(err)
	}
	rlog.Println("sandbox exchange listening on", cfg.SandboxBind)
	if err := sb.Run(cfg.SandboxBind); err != nil {
		rlog.Fatalln(err)
	}
}
