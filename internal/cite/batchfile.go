// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cite

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/github-datacite/pkg/types"
)

// BatchFile is the on-disk list of repositories a single CLI invocation
// generates documents for.
type BatchFile struct {
	Repositories []types.RepoIdentity `yaml:"repositories"`
}

// ReadBatchFile loads and validates a YAML batch file.
func ReadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	if len(bf.Repositories) == 0 {
		return nil, fmt.Errorf("batch file %s lists no repositories", path)
	}
	for i, id := range bf.Repositories {
		if id.Owner == "" || id.Name == "" {
			return nil, fmt.Errorf("batch file %s: entry %d needs both owner and name", path, i+1)
		}
	}
	return &bf, nil
}
