// Command schema regenerates pkg/config/schema.json, the JSON schema embedded
// into the binary and used to verify loaded config files. Invoked through
// go:generate in pkg/config; an optional argument overrides the output path.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/techpulse/techpulse/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := generate(outputPath); err != nil {
		log.Fatalf("techpulse schema generation failed: %v", err)
	}
	fmt.Printf("techpulse config schema written to %s\n", outputPath)
}

// generate reflects the config structure into a JSON schema file
func generate(outputPath string) error {
	schema := jsonschema.Reflect(&config.Config{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	return nil
}
