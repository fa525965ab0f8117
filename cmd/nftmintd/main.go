package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"github.com/akcpetia/NFT-collection-project/coordinator"
	"github.com/akcpetia/NFT-collection-project/mint"
	"github.com/akcpetia/NFT-collection-project/provenance"
	"github.com/akcpetia/NFT-collection-project/rpc"
	"github.com/akcpetia/NFT-collection-project/storage"
)

func main() {
	fs := flag.NewFlagSet("nftmintd", flag.ExitOnError)
	configPath := fs.String("config", "", "path to TOML config file")
	_ = fs.Parse(os.Args[1:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg.LogLevel)

	keyHash, err := cfg.keyHash()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var archive storage.CAS
	if cfg.ArchiveDir != "" {
		dir, err := storage.NewDir(cfg.ArchiveDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cfg.ArchiveDir).Msg("archive init failed")
		}
		archive = dir
	} else {
		archive = storage.NewMemory()
		logger.Warn().Msg("no archive_dir configured; finalized documents are held in memory only")
	}

	coord := coordinator.New()
	minter, err := mint.New(mint.Config{
		Registry:   mint.NewLedger(),
		Fees:       mint.FixedFeeSource(cfg.FeeBalance),
		Randomness: coord,
		Archive:    archive,
		KeyHash:    keyHash,
		RequestFee: cfg.RequestFee,
		Collection: cfg.Collection,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("minter init failed")
	}
	coord.Bind(minter.Fulfill)

	srv := &rpc.Server{Minter: minter, Logger: &logger}
	if cfg.AutoFulfill {
		srv.AutoFulfill = coord
	}
	root, err := cfg.rootSeed()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if root != nil {
		signer, err := provenance.NewSigner(root, cfg.PQReceipts)
		if err != nil {
			logger.Fatal().Err(err).Msg("receipt signer init failed")
		}
		keys, err := signer.Keys()
		if err != nil {
			logger.Fatal().Err(err).Msg("receipt signer init failed")
		}
		srv.Receipts = signer
		logger.Info().Strs("signer_keys", keys).Msg("receipt countersigning enabled")
	}

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal().Err(err).Str("listen", cfg.Listen).Msg("listen failed")
	}
	defer lis.Close()

	s := grpc.NewServer()
	rpc.RegisterMintServer(s, srv)

	logger.Info().
		Str("listen", lis.Addr().String()).
		Bool("auto_fulfill", cfg.AutoFulfill).
		Msg("nftmintd listening")
	if err := s.Serve(lis); err != nil {
		logger.Fatal().Err(err).Msg("serve failed")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).With().Timestamp().Str("app", "nftmintd").Logger().Level(lvl)
}
