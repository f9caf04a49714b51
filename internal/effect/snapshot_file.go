package effect

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SnapshotFile is a character state saved to YAML for offline classification.
// Magnitudes may be engine-signed (damage negative) or positive; ranking uses
// their absolute value.
//
//	killer:
//	  keywords: [ActorTypeGhost]
//	effects:
//	  - form_id: 0x00012EB7
//	    magnitude: -30
type SnapshotFile struct {
	Killer  *KillerFile `yaml:"killer"`
	Effects Snapshot    `yaml:"effects"`
}

// KillerFile lists the killer's keyword editor IDs.
type KillerFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadSnapshotFile reads a SnapshotFile from path.
func LoadSnapshotFile(path string) (*SnapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var f SnapshotFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &f, nil
}

// KillerKeywords returns whether a killer is present and its keywords.
func (f *SnapshotFile) KillerKeywords() (bool, []string) {
	if f.Killer == nil {
		return false, nil
	}
	return true, f.Killer.Keywords
}
