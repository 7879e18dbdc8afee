package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"

	"github.com/frequenz-floss/microgrid-client-go/config"
	"github.com/frequenz-floss/microgrid-client-go/discovery"
	microgrid_pb "github.com/frequenz-floss/microgrid-client-go/proto"
	"github.com/frequenz-floss/microgrid-client-go/simulator"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to YAML configuration file")
		// Direct flags for running without a config file
		name          = flag.String("name", "simulator", "Microgrid name registered in etcd")
		listenAddr    = flag.String("listen", ":57809", "gRPC listen address")
		advertiseAddr = flag.String("advertise", "", "Advertise address registered in etcd (defaults to the listen address)")
		metricsAddr   = flag.String("metrics", "", "HTTP address for Prometheus metrics (optional, e.g. ':9090')")
		etcdAddr      = flag.String("etcd", "", "Etcd address for endpoint registration (optional)")
		etcdPrefix    = flag.String("etcd-prefix", discovery.DefaultPrefix, "Etcd key prefix")
	)
	flag.Parse()

	servicer := simulator.NewServicer()

	simCfg := config.SimulatorConfig{
		Name:          *name,
		ListenAddr:    *listenAddr,
		AdvertiseAddr: *advertiseAddr,
		MetricsAddr:   *metricsAddr,
	}
	etcdEndpoints := []string{}
	if *etcdAddr != "" {
		etcdEndpoints = append(etcdEndpoints, *etcdAddr)
	}

	if *configFile != "" {
		cfg, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		simCfg = cfg.Simulator
		etcdEndpoints = cfg.Etcd.Endpoints
		if cfg.Etcd.Prefix != "" {
			*etcdPrefix = cfg.Etcd.Prefix
		}
		if err := servicer.LoadFixtures(&simCfg); err != nil {
			log.Fatalf("Failed to load fixtures: %v", err)
		}
		log.Printf("Starting simulator %s with configuration from %s", simCfg.Name, *configFile)
	} else {
		log.Printf("Starting simulator %s with direct configuration (listen: %s)", simCfg.Name, simCfg.ListenAddr)
	}
	if simCfg.AdvertiseAddr == "" {
		simCfg.AdvertiseAddr = simCfg.ListenAddr
	}

	lis, err := net.Listen("tcp", simCfg.ListenAddr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", simCfg.ListenAddr, err)
	}

	grpcServer := grpc.NewServer()
	microgrid_pb.RegisterMicrogridServer(grpcServer, servicer)

	// Serve Prometheus metrics if configured
	if simCfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer := &http.Server{Addr: simCfg.MetricsAddr, Handler: mux}
		go func() {
			log.Printf("Serving metrics on %s/metrics", simCfg.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("Metrics server error: %v", err)
			}
		}()
		defer metricsServer.Close()
	}

	// Register in etcd if configured
	if len(etcdEndpoints) > 0 {
		registry, err := discovery.NewRegistry(etcdEndpoints, *etcdPrefix)
		if err != nil {
			log.Fatalf("Failed to create endpoint registry: %v", err)
		}
		if err := registry.Connect(); err != nil {
			log.Fatalf("Failed to connect to etcd: %v", err)
		}
		if err := registry.Register(context.Background(), simCfg.Name, simCfg.AdvertiseAddr); err != nil {
			log.Fatalf("Failed to register endpoint: %v", err)
		}
		defer registry.Close()
	}

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Simulator listening on %s", lis.Addr())
		errChan <- grpcServer.Serve(lis)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
		grpcServer.GracefulStop()
	case err := <-errChan:
		if err != nil {
			log.Printf("Server error: %v", err)
		}
	}

	log.Println("Simulator stopped")
}
