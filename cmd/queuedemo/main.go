package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/daonham/go-queue/pkg/logger"
	"github.com/daonham/go-queue/pkg/metrics"
	"github.com/daonham/go-queue/pkg/queue"
	"github.com/daonham/go-queue/pkg/settings"
)

func main() {
	var (
		cfgPath   string
		producers int
		capacity  int
	)
	flag.StringVar(&cfgPath, "config", "", "path to config file")
	flag.IntVar(&producers, "producers", 0, "number of producer goroutines (overrides config)")
	flag.IntVar(&capacity, "capacity", 0, "queue capacity (overrides config)")
	flag.Parse()

	cfg := settings.Default()
	if cfgPath != "" {
		var err error
		cfg, err = settings.Load(cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
			os.Exit(1)
		}
	}
	if producers > 0 {
		cfg.Demo.Producers = producers
	}
	if capacity > 0 {
		cfg.Demo.QueueCapacity = capacity
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	q := queue.NewBounded[string](cfg.Demo.QueueCapacity)
	delay := time.Duration(cfg.Demo.ProduceDelay) * time.Microsecond

	log.Info("starting demo",
		zap.Int("producers", cfg.Demo.Producers),
		zap.Int("capacity", cfg.Demo.QueueCapacity),
		zap.String("metrics_bind", cfg.Metrics.Bind),
	)

	srv := &http.Server{
		Addr:    cfg.Metrics.Bind,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn("metrics server failed", zap.Error(err))
		}
	}()

	var seq atomic.Int64
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < cfg.Demo.Producers; i++ {
		id := strconv.Itoa(i)
		g.Go(func() error {
			log.Info("producer started", zap.String("producer", id))
			for ctx.Err() == nil {
				payload := fmt.Sprintf("seq=%d from producer %s", seq.Add(1), id)
				if q.TryPut(payload) {
					m.ProducedTotal.WithLabelValues(id).Inc()
				} else {
					m.RejectedTotal.WithLabelValues(id).Inc()
				}
				if delay > 0 {
					time.Sleep(delay)
				}
			}
			log.Info("producer stopped", zap.String("producer", id))
			return nil
		})
	}

	g.Go(func() error {
		log.Info("consumer started")
		for {
			data, err := q.GetContext(ctx)
			if err != nil {
				// Drain whatever the producers managed to queue before stop.
				for {
					if _, ok := q.TryGet(); !ok {
						break
					}
					m.ConsumedTotal.Inc()
				}
				log.Info("consumer stopped")
				return nil
			}
			m.ConsumedTotal.Inc()
			log.Debug("consumed", zap.String("data", data))
		}
	})

	// Depth sampler for the metrics endpoint.
	g.Go(func() error {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				m.QueueDepth.Set(float64(q.Len()))
				m.QueueCapacity.Set(float64(q.Cap()))
			}
		}
	})

	// Enter prints queue stats; EOF (^D) stops the demo, as do SIGINT/SIGTERM.
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		fmt.Println("Enter for info, ^D to exit")
		for scanner.Scan() {
			log.Info("queue status",
				zap.Int("len", q.Len()),
				zap.Int("cap", q.Cap()),
				zap.Int64("produced", seq.Load()),
			)
		}
		cancel()
	}()

	<-ctx.Done()
	log.Info("waiting for workers")
	if err := g.Wait(); err != nil {
		log.Error("worker failed", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics server shutdown failed", zap.Error(err))
	}
}
