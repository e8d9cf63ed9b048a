package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/digimarket/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			Digimarket API
//	@version		1.0
//	@description	Order settlement and seller payouts for the digital goods marketplace.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var marketplace app.ApplicationI = app.New()
	if err := marketplace.Start(ctx); err != nil {
		// zap may not be configured yet when start-up fails early.
		log.Error().Err(err).Msg("digimarket failed to start")
		zap.L().Fatal("digimarket failed to start", zap.Error(err))
	}

	if err := marketplace.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("digimarket stopped with errors", zap.Error(err))
	}

	zap.L().Info("digimarket stopped")
}
