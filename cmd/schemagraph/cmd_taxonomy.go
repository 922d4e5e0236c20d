package main

import (
	"fmt"

	"github.com/agenthands/schemagraph/internal/core/schema"
	"github.com/agenthands/schemagraph/internal/docio"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var taxonomyFormat string

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print every schema with its node and connection vocabulary",
	Args:  cobra.NoArgs,
	RunE:  runTaxonomy,
}

func init() {
	taxonomyCmd.Flags().StringVarP(&taxonomyFormat, "format", "f", "json", "Output format: json, yaml or toml")
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	data, err := encodeTaxonomy(schema.Describe(), taxonomyFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func encodeTaxonomy(t schema.Taxonomy, format string) ([]byte, error) {
	switch format {
	case "json":
		return docio.EncodeJSON(t)
	case "yaml", "yml":
		return yaml.Marshal(t)
	case "toml":
		return toml.Marshal(t)
	default:
		return nil, fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
	}
}
