// Command keygen generates leansig validator keypairs.
//
// Keys are derived deterministically from consecutive seeds so a devnet can
// be regenerated from its genesis configuration alone. Each keypair is
// written as a pair of flat files (validator_N.pk / validator_N.sk); the
// public keys can optionally be dumped as a GENESIS_VALIDATORS yaml block.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/geanlabs/leansig/log"
	"github.com/geanlabs/leansig/xmss"
)

func main() {
	count := flag.Int("validators", 5, "number of keypairs to generate")
	outDir := flag.String("keys-dir", "keys", "output directory for key files")
	seedBase := flag.Uint64("seed-base", 0, "seed for validator 0; validator i uses seed-base+i")
	activation := flag.Uint64("activation", 0, "first active epoch")
	epochs := flag.Uint64("epochs", 256, "number of active epochs per key")
	printYAML := flag.Bool("print-yaml", false, "print GENESIS_VALIDATORS yaml to stdout")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetDefault(log.New(slog.LevelDebug))
	}
	logger := log.Default().Module("keygen")

	if err := run(logger, *count, *outDir, *seedBase, *activation, *epochs, *printYAML); err != nil {
		logger.Error("keygen failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger, count int, outDir string, seedBase, activation, epochs uint64, printYAML bool) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	logger.Info("generating keys",
		"count", count, "dir", outDir, "activation", activation, "epochs", epochs)

	pubkeys := make([]string, 0, count)
	for i := 0; i < count; i++ {
		key, err := xmss.Generate(seedBase+uint64(i), activation, epochs)
		if err != nil {
			return fmt.Errorf("generate keypair %d: %w", i, err)
		}

		pkPath := filepath.Join(outDir, fmt.Sprintf("validator_%d.pk", i))
		skPath := filepath.Join(outDir, fmt.Sprintf("validator_%d.sk", i))
		if err := xmss.SaveKeyPair(key, pkPath, skPath); err != nil {
			return fmt.Errorf("save keypair %d: %w", i, err)
		}

		pkBytes, err := key.PublicKeyBytes()
		if err != nil {
			return fmt.Errorf("encode public key %d: %w", i, err)
		}
		pubkeys = append(pubkeys, hexutil.Encode(pkBytes))

		logger.Debug("generated keypair", "index", i, "pk", pkPath, "sk", skPath)
	}

	if printYAML {
		fmt.Println("GENESIS_VALIDATORS:")
		for _, pk := range pubkeys {
			fmt.Printf("  - %q\n", pk)
		}
	}

	logger.Info("done", "count", count)
	return nil
}
