package main

import (
	"log"
	"os"

	"github.com/safecity/safecity-api/pkg/di"

	"go.uber.org/zap"
)

// @title			SafeCity API
// @version		1.0
// @description	read only API over the precomputed city crime-risk prediction table.
// @host			localhost:8000
// @BasePath		/
func main() {
	server, cleanup, err := di.InitializeRiskService()
	if err != nil {
		log.Fatal(err)
	}

	err = server.Wait()
	if err != nil {
		server.Log.Error("API stopped", zap.Error(err))
	} else {
		server.Log.Info("API stopped")
	}
	cleanup()

	if err != nil {
		os.Exit(1)
	}
}
