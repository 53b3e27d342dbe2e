// Command lvroute prints the shortest route between two stations of a
// transit dataset, or serves route queries over HTTP.
//
// Usage:
//
//	lvroute -data stations.json -from "Seoul Station" -to Gangnam
//	lvroute -data stations.json -listen :8080
//
// Stations may be given by record id or by name (case-insensitive).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/katalvlaran/lvroute/server"
	"github.com/katalvlaran/lvroute/transit"
)

func main() {
	dataPath := flag.String("data", "data.json", "path to the station dataset (JSON array)")
	from := flag.String("from", "", "origin station id or name")
	to := flag.String("to", "", "destination station id or name")
	listen := flag.String("listen", "", "serve HTTP on this address instead of printing one route")
	flag.Parse()

	logger := log.New(os.Stderr, "lvroute: ", log.LstdFlags)

	// 1) Load and assemble the network.
	records, err := transit.Load(*dataPath)
	if err != nil {
		logger.Fatal(err)
	}
	net, err := transit.NewNetwork(records)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Printf("loaded %d records: %d stops, %d edges, %d lines",
		len(records), net.Graph().Len(), net.Graph().EdgeCount(), len(net.Lines()))

	// 2) Server mode.
	if *listen != "" {
		srv := &http.Server{
			Addr:              *listen,
			Handler:           server.New(net, logger).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Printf("listening on %s", *listen)
		logger.Fatal(srv.ListenAndServe())
	}

	// 3) One-shot mode.
	if *from == "" || *to == "" {
		fmt.Fprintln(os.Stderr, "lvroute: -from and -to are required unless -listen is set")
		flag.Usage()
		os.Exit(2)
	}
	route, err := net.Route(*from, *to)
	switch {
	case errors.Is(err, transit.ErrNoRoute):
		fmt.Println(err)
		os.Exit(1)
	case err != nil:
		logger.Fatal(err)
	}
	fmt.Print(route)
}
