// Command routingengine loads a GTFS feed into memory once at startup and
// serves mode-masked route queries over HTTP for the rest of the process
// lifetime.
//
// Grounded on health-route-server/main.go's startup and server-wiring
// sequence (godotenv, gin, gin-contrib/cors) and on
// original_source/RoutingEngine's src/main.cpp for the GTFS_PATH
// environment convention and the startup log line.
package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/gtfs"
	"github.com/AbanoubPhelopos/Wsnly-Graduation-Project-Backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}

	gtfsPath := os.Getenv("GTFS_PATH")
	if gtfsPath == "" {
		gtfsPath = "GTFS"
	}

	g, err := gtfs.Load(gtfsPath)
	if err != nil {
		log.Fatalf("Failed to load GTFS feed from %q: %v", gtfsPath, err)
	}
	log.Printf("Graph loaded with %d nodes.", len(g.Nodes))

	srv := &service.Server{Graph: g}

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	r.Use(cors.New(config))

	srv.NewRouter(r)

	addr := os.Getenv("PORT")
	if addr == "" {
		addr = ":8080"
	} else {
		addr = ":" + addr
	}

	log.Printf("Routing engine starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
