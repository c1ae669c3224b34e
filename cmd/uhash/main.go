// uhash - reference CLI for the UniversalHash v4 memory-hard hash
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tos-network/uhash/internal/config"
	"github.com/tos-network/uhash/internal/profiling"
	"github.com/tos-network/uhash/internal/telemetry"
	"github.com/tos-network/uhash/internal/uhash"
	"github.com/tos-network/uhash/internal/util"
	"github.com/tos-network/uhash/internal/vectors"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	mode := flag.String("mode", "hash", "Run mode: hash, bench")
	input := flag.String("input", "", "Hex-encoded input (header || 8-byte nonce) for -mode=hash")
	iterations := flag.Int("iterations", 0, "Iteration count for -mode=bench (0 = config default)")
	vectorName := flag.String("vector", "", "If set, freeze/compare the digest against a named golden vector")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("uhash v%s (built %s)\n", version, buildTime)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := util.InitLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	util.Infof("uhash v%s starting in %s mode", version, *mode)

	var pprofServer *profiling.Server
	if cfg.Profiling.Enabled {
		pprofServer = profiling.NewServer(&cfg.Profiling)
		if err := pprofServer.Start(); err != nil {
			util.Errorf("failed to start pprof server: %v", err)
		}
	}

	var nrAgent *telemetry.Agent
	if cfg.NewRelic.Enabled {
		nrAgent = telemetry.NewAgent(&cfg.NewRelic)
		if err := nrAgent.Start(); err != nil {
			util.Errorf("failed to start New Relic agent: %v", err)
		}
	}

	var vecStore *vectors.Store
	if cfg.Vectors.Enabled {
		vecStore, err = vectors.NewStore(cfg.Vectors.URL, cfg.Vectors.Password, cfg.Vectors.DB)
		if err != nil {
			util.Errorf("failed to connect to vector store: %v", err)
		}
	}

	scheduleMode := uhash.ScheduleAuto
	switch cfg.Hasher.Mode {
	case "parallel":
		scheduleMode = uhash.ScheduleParallel
	case "sequential":
		scheduleMode = uhash.ScheduleSequential
	}

	hasher, err := uhash.NewHasher(uhash.WithScheduleMode(scheduleMode))
	if err != nil {
		util.Fatalf("failed to initialize hasher: %v", err)
	}
	defer hasher.Close()

	profile := hasher.PrimitiveProfile()
	util.Infof("hardware primitive profile: AES=%v SHA=%v", profile.AESCapable, profile.SHACapable)
	if nrAgent != nil {
		nrAgent.RecordPrimitiveProfile(profile.AESCapable, profile.SHACapable)
	}

	switch *mode {
	case "hash":
		runHash(hasher, *input, *vectorName, vecStore)
	case "bench":
		runBench(hasher, cfg, *iterations, nrAgent)
	default:
		util.Fatalf("invalid mode: %s", *mode)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	if pprofServer != nil || nrAgent != nil {
		util.Info("background services running. Press Ctrl+C to stop.")
		<-sigChan
	}

	if vecStore != nil {
		vecStore.Close()
	}
	if pprofServer != nil {
		pprofServer.Stop()
	}
	if nrAgent != nil {
		nrAgent.Stop()
	}
}

func runHash(h *uhash.Hasher, inputHex, vectorName string, vecStore *vectors.Store) {
	if inputHex == "" {
		util.Fatal("-input is required for -mode=hash")
	}

	trimmed := strings.TrimPrefix(inputHex, "0x")
	if len(trimmed) < 16 {
		util.Fatalf("-input too short: need at least an 8-byte trailing nonce")
	}
	nonceHex := trimmed[len(trimmed)-16:]
	if !util.ValidateNonce(nonceHex) {
		util.Fatalf("invalid trailing nonce %q in -input", nonceHex)
	}
	if nonceBytes, err := util.HexToBytes(nonceHex); err == nil {
		util.Debugf("nonce: %s", util.Uint64ToHex(binary.LittleEndian.Uint64(nonceBytes)))
	}

	in, err := util.HexToBytes(inputHex)
	if err != nil {
		util.Fatalf("invalid -input hex: %v", err)
	}

	digest, err := h.Hash(in)
	if err != nil {
		util.Fatalf("hash failed: %v", err)
	}

	digestHex := util.BytesToHex(digest[:])
	if !util.ValidateHash(digestHex) {
		util.Fatalf("internal error: produced digest %q fails hash format validation", digestHex)
	}
	fmt.Println(digestHex)

	if vectorName != "" && vecStore != nil {
		ok, err := vecStore.Check(vectorName, digest[:])
		if err != nil {
			util.Errorf("vector check failed: %v", err)
			return
		}
		if !ok {
			util.Fatalf("REGRESSION: digest for vector %q no longer matches the frozen reference", vectorName)
		}
		util.Infof("vector %q matches frozen reference", vectorName)
	}
}

func runBench(h *uhash.Hasher, cfg *config.Config, iterations int, nrAgent *telemetry.Agent) {
	if iterations <= 0 {
		iterations = cfg.Benchmark.DefaultIterations
	}
	if iterations <= 0 {
		iterations = 1000
	}

	elapsed := h.Benchmark(iterations)
	rate := uhash.HashesPerSecond(iterations, elapsed)

	fmt.Printf("%d hashes in %s (%.2f H/s)\n", iterations, elapsed, rate)

	if nrAgent != nil {
		nrAgent.RecordBenchmarkRun(iterations, elapsed, rate)
	}
}
