//    CatalogTopicMiner
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"github.com/e-gun/CatalogTopicMiner/internal/lnch"
	"github.com/e-gun/CatalogTopicMiner/internal/pipe"
	"github.com/e-gun/CatalogTopicMiner/internal/rpt"
	"github.com/e-gun/CatalogTopicMiner/web"
	"github.com/pkg/profile"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var Msg = lnch.Msg

func main() {
	const (
		MSG1 = "[%s] %s"
		MSG2 = "report written to %s"
	)

	switch lnch.ConfigAtLaunch() {
	case lnch.LaunchHelp:
		h, err := lnch.HelpText(lnch.Config)
		Msg.EC(err)
		fmt.Println(h)
		os.Exit(0)
	case lnch.LaunchVersion:
		lnch.PrintVersion(*lnch.Config)
		os.Exit(0)
	case lnch.LaunchVersionVerbose:
		lnch.PrintVersion(*lnch.Config)
		lnch.PrintBuildInfo(*lnch.Config)
		os.Exit(0)
	default:
		// LaunchRun
	}

	cfg := *lnch.Config

	lnch.PrintVersion(cfg)
	lnch.PrintCopyright(cfg)

	// go tool pprof --pdf ./CatalogTopicMiner /var/folders/.../cpu.pprof > profile.pdf
	if cfg.ProfileCPU {
		defer profile.Start().Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	progress := func(stage string, msg string) {
		Msg.NOTE(fmt.Sprintf(MSG1, stage, msg))
	}

	r, err := pipe.Run(ctx, cfg, progress)
	if err != nil {
		Msg.Fatal(err)
	}

	fn, err := rpt.WriteReport(cfg.OutDir, r)
	if err != nil {
		Msg.Fatal(err)
	}
	Msg.MAND(fmt.Sprintf(MSG2, fn))
	Msg.Timer("M1", "run complete", start, start)

	if cfg.Serve {
		web.StartEchoServer(web.NewServer(cfg, r))
	}
}
