package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/ren-lang/renc"
)

func main() {
	log.SetFlags(0) // Disable log prefixes

	sourceFile := flag.String("file", "", "Path to the Ren source file to lex")
	outputType := flag.String("output", "json", "Token dump format: json or repr")
	flag.Parse()

	if *sourceFile == "" {
		log.Fatal("Error: -file flag is required")
	}
	if *outputType != "json" && *outputType != "repr" {
		log.Fatalf("Error: invalid -output type %q. Must be 'json' or 'repr'", *outputType)
	}

	src, err := os.ReadFile(*sourceFile)
	if err != nil {
		log.Fatalf("Error: reading %s: %v", *sourceFile, err)
	}

	tokens, err := renc.Lex(string(src))
	if err != nil {
		log.Fatalf("Error: lexing %s: %v", *sourceFile, err)
	}

	switch *outputType {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tokens); err != nil {
			log.Fatalf("Error: encoding tokens: %v", err)
		}
	case "repr":
		fmt.Println(repr.String(tokens))
	}
}
