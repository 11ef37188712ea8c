package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.thinkinpower.net/cardcheck/bdata"
	"git.thinkinpower.net/cardcheck/config"
	"git.thinkinpower.net/cardcheck/data"
	"git.thinkinpower.net/cardcheck/file"
	"git.thinkinpower.net/cardcheck/middleware"
	"git.thinkinpower.net/cardcheck/prompt"
	"git.thinkinpower.net/cardcheck/route"
	"git.thinkinpower.net/cardcheck/selftest"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

func setMode(mode string) {
	switch mode {
	case data.RunModeDev:
		gin.SetMode(gin.DebugMode)
	case data.RunModeTest:
		gin.SetMode(gin.TestMode)
	case data.RunModeRelease:
		gin.SetMode(gin.ReleaseMode)
	}
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stdout)
	logger.SetLevel(logger.InfoLevel)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatalf("load config: %s", err)
	}
	logger.SetLevel(cfg.Level())

	switch cfg.Run {
	case data.RunSelfTest:
		os.Exit(runSelfTest())
	case data.RunPrompt:
		runPrompt()
	default:
		serve(cfg)
	}
}

func runSelfTest() int {
	cases, err := selftest.Fixtures()
	if err != nil {
		logger.Error(err)
		return 2
	}
	if report := selftest.Run(os.Stdout, cases); !report.OK() {
		return 1
	}
	return 0
}

func runPrompt() {
	cases, err := selftest.Fixtures()
	if err != nil {
		logger.Fatal(err)
	}
	// menu output goes to stdout, keep log lines out of it
	logger.SetOutput(os.Stderr)
	if err = prompt.Run(os.Stdin, os.Stdout, cases); err != nil {
		logger.Fatalf("read input: %s", err)
	}
}

func serve(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	names := bdata.NewMemoryStore()
	if cfg.DataDir != "" {
		if err := bdata.LoadDir(names, cfg.DataDir); err != nil {
			logger.Fatalf("load brand names: %s", err)
		}
		watcher, err := bdata.NewWatcher(names, cfg.DataDir)
		if err != nil {
			logger.Fatalf("watch brand names: %s", err)
		}
		watcher.AddFileListener(func(e file.FileEvent) {
			logger.Infof("brand names reloaded from %s, %d labels", e.Filepath, names.Len())
		})
		go watcher.Run(ctx)
	}

	//启动http服务
	logger.Info("starting http server...")
	setMode(cfg.Mode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Log())
	r.Use(middleware.Recovery())
	route.Register(r, names, cfg.DataDir)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go func() {
		logger.Infof("http server listening, port: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("listen: %s", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	<-ctx.Done()
	logger.Info("Shutting down Server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server Shutdown failure.", err)
	}
	logger.Info("Server exit.")
}
