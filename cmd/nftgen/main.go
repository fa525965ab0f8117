package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akcpetia/NFT-collection-project/curve"
	"github.com/akcpetia/NFT-collection-project/mint"
	"github.com/akcpetia/NFT-collection-project/provenance"
	"github.com/akcpetia/NFT-collection-project/tokenuri"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "render":
		return cmdRender(args[1:], out, errOut)
	case "receipt":
		return cmdReceipt(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: nftgen <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  render   generate artwork for a seed and palette")
	fmt.Fprintln(w, "  receipt  sign a provenance receipt for a finalized document")
}

func cmdRender(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("nftgen render", flag.ContinueOnError)
	fs.SetOutput(errOut)
	seedNum := fs.Uint64("seed", 0, "numeric seed (low-order bytes)")
	seedHex := fs.String("seed-hex", "", "full 64-hex-char seed; overrides -seed")
	paletteFlag := fs.String("palette", "#fff,#000,#abc,#123,#456", "five comma-separated colors")
	id := fs.Uint64("id", 0, "record identifier for the metadata")
	name := fs.String("name", "", `record name; default "Rose #<id>"`)
	desc := fs.String("desc", "A rose curve grown from a verifiably random seed.", "record description")
	format := fs.String("format", "uri", "output: uri, json, svg or cid")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var seed mint.Seed
	if *seedHex != "" {
		var err error
		seed, err = mint.SeedFromHex(*seedHex)
		if err != nil {
			fmt.Fprintf(errOut, "bad -seed-hex: %v\n", err)
			return 2
		}
	} else {
		seed = mint.SeedFromUint64(*seedNum)
	}
	if seed.IsZero() {
		fmt.Fprintln(errOut, "a non-zero seed is required")
		return 2
	}

	parts := strings.Split(*paletteFlag, ",")
	var pal curve.Palette
	if len(parts) != len(pal) {
		fmt.Fprintf(errOut, "palette must have exactly %d colors\n", len(pal))
		return 2
	}
	for i, p := range parts {
		pal[i] = strings.TrimSpace(p)
		if pal[i] == "" {
			fmt.Fprintln(errOut, "palette colors must be non-empty")
			return 2
		}
	}

	d, err := curve.Generate([32]byte(seed), pal, curve.DefaultParams())
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	if *name == "" {
		*name = fmt.Sprintf("Rose #%d", *id)
	}

	switch *format {
	case "svg":
		_, _ = out.Write(tokenuri.SVG(d))
		fmt.Fprintln(out)
	case "json":
		_, _ = out.Write(tokenuri.MetadataJSON(tokenuri.Metadata{
			Name:        *name,
			Description: *desc,
			TokenID:     *id,
			Image:       tokenuri.ImageDataURI(tokenuri.SVG(d)),
		}))
		fmt.Fprintln(out)
	case "uri":
		fmt.Fprintln(out, tokenuri.Encode(d, *name, *desc, *id))
	case "cid":
		fmt.Fprintln(out, tokenuri.DocumentCID(tokenuri.Encode(d, *name, *desc, *id)))
	default:
		fmt.Fprintf(errOut, "unknown format: %s\n", *format)
		return 2
	}
	return 0
}

func cmdReceipt(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("nftgen receipt", flag.ContinueOnError)
	fs.SetOutput(errOut)
	id := fs.Uint64("id", 0, "record identifier")
	cidStr := fs.String("cid", "", "content ID of the finalized document")
	rootHex := fs.String("root-seed", "", "operator root seed, 64 hex chars")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *cidStr == "" || *rootHex == "" {
		fmt.Fprintln(errOut, "-cid and -root-seed are required")
		return 2
	}

	root, err := hex.DecodeString(*rootHex)
	if err != nil || len(root) != ed25519.SeedSize {
		fmt.Fprintf(errOut, "-root-seed must be %d hex chars\n", 2*ed25519.SeedSize)
		return 2
	}
	signingSeed, err := provenance.DeriveSigningSeed(root, "receipts")
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	r, err := provenance.SignEd25519(*id, *cidStr, ed25519.NewKeyFromSeed(signingSeed))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}

	fmt.Fprintf(out, "Record: %d\n", r.RecordID)
	fmt.Fprintf(out, "CID: %s\n", r.CID)
	fmt.Fprintf(out, "Signer-Key: %s\n", r.SignerKey)
	fmt.Fprintf(out, "Hash-Alg: %s\n", r.HashAlg)
	fmt.Fprintf(out, "Signature: %s\n", r.Signature)
	return 0
}
