// Command schema writes the JSON schema of the meteoscope configuration.
// The result is embedded by pkg/config and used to verify loaded configs.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/meteoscope/pkg/config"
)

func main() {
	outputPath := "pkg/config/schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		lgr.Fatalf("failed to generate schema: %v", err)
	}
	schema.Title = "meteoscope configuration"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		lgr.Fatalf("failed to marshal schema: %v", err)
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema is public
		lgr.Fatalf("failed to write schema file %s: %v", outputPath, err)
	}
	fmt.Printf("schema written to %s\n", outputPath)
}
