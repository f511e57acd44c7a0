package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	exchange "sole-exchange/internal/exchangeService"
	"sole-exchange/internal/matching"
	model "sole-exchange/internal/models"
	"sole-exchange/internal/repository"
	"sole-exchange/internal/server"
	"sole-exchange/internal/settlement"
	"sole-exchange/internal/sweeper"
	"sole-exchange/utils"

	"golang.org/x/sync/errgroup"
)

const sweepInterval = 30 * time.Second

func main() {
	repo := repository.NewMemoryRepo()

	prepopulateCatalog(repo)

	recorder := settlement.NewRecorder(repo, settlement.DefaultMaxAttempts)
	engine := matching.NewEngine(repo, recorder)
	exchangeSvc := exchange.NewExchangeService(repo, engine)
	sweep := sweeper.New(repo, engine, sweepInterval)

	router := server.SetupRouter(exchangeSvc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    getPort(),
		Handler: router,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return sweep.Run(ctx)
	})

	g.Go(func() error {
		fmt.Printf("Starting exchange server on %s...\n", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
	utils.Info("server stopped", nil)
}

// prepopulateCatalog adds a small sneaker catalog to the in-memory repo
func prepopulateCatalog(repo *repository.MemoryRepo) {
	products := []model.Product{
		{ProductID: "aj1-chicago", Name: "Air Jordan 1 Retro High Chicago", Brand: "Jordan"},
		{ProductID: "yz-350-zebra", Name: "Yeezy Boost 350 V2 Zebra", Brand: "Adidas"},
		{ProductID: "nb-550-white", Name: "550 White Green", Brand: "New Balance"},
	}
	for _, p := range products {
		repo.AddProduct(p)
	}

	sizes := []string{"8", "9", "10", "11", "12"}
	for _, p := range products {
		for _, s := range sizes {
			repo.AddVariant(model.SizeVariant{
				SizeVariantID: fmt.Sprintf("%s-us-%s", p.ProductID, s),
				ProductID:     p.ProductID,
				Label:         "US " + s,
			})
		}
	}
}

// getPort returns the server port from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}
