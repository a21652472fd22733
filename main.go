package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"
)

func main() {
	var printConn bool
	var ping bool

	// Command-line flags
	flag.BoolVar(&printConn, "print", false, "Print the connection string with the password masked")
	flag.BoolVar(&ping, "ping", false, "Connect to the configured database and ping it")
	flag.Parse()

	if !printConn && !ping {
		log.Fatalf("Error: one of -print or -ping is required..\n\tUsage: go run . -print | -ping")
		return
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Error initializing application: %v", err)
	}
	defer app.Close()

	if printConn {
		conn, err := app.ConnectionString()
		if err != nil {
			app.Logger.Fatal("Failed to build connection string", zap.Error(err))
		}
		fmt.Println(conn)
	}

	if ping {
		if err := app.Ping(context.Background()); err != nil {
			app.Logger.Fatal("Ping failed", zap.Error(err))
		}
		app.Logger.Info("Ping succeeded", zap.String("dialect", app.Client.Descriptor.Dialect()))
	}
}
