package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Al69m/top10-streaming-fr/internal/catalog"
)

// ManifestCmd prints the addon manifest.
type ManifestCmd struct{}

func (m *ManifestCmd) Run() error {
	data, err := json.MarshalIndent(catalog.NewManifest(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
