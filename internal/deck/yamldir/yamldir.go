// Package yamldir loads raw card records from a directory tree of YAML
// files. It is the card-source collaborator of the deck package: all
// file walking and format concerns live here, the core only ever sees
// plain records.
package yamldir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mseguin/recallbox/internal/deck"
	"github.com/mseguin/recallbox/internal/domain"
)

// record mirrors one entry of a card file. A file is a YAML sequence of
// these. The answer is kept as a raw node because it may be a scalar or
// a list of accepted forms.
type record struct {
	Question string    `yaml:"question"`
	Answer   yaml.Node `yaml:"answer"`
	Context  string    `yaml:"context"`
	Meta     struct {
		Theme string `yaml:"theme"`
	} `yaml:"meta"`
	Hint1 string `yaml:"hint1"`
	Hint2 string `yaml:"hint2"`
	Link  string `yaml:"link"`
}

// Load walks dir recursively and parses every .yml/.yaml file into raw
// units. A record missing its question or answer is a hard error naming
// the offending file; the core downstream assumes well-formed records.
func Load(dir string) ([]deck.RawUnit, error) {
	var units []deck.RawUnit
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yml" && ext != ".yaml" {
			return nil
		}
		fileUnits, err := loadFile(path)
		if err != nil {
			return err
		}
		units = append(units, fileUnits...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return units, nil
}

func loadFile(path string) ([]deck.RawUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card file %s: %w", path, err)
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing card file %s: %w", path, err)
	}

	units := make([]deck.RawUnit, 0, len(records))
	for i, rec := range records {
		if rec.Question == "" {
			return nil, fmt.Errorf("card file %s: record %d has no question", path, i+1)
		}
		answer, err := decodeAnswer(&rec.Answer)
		if err != nil {
			return nil, fmt.Errorf("card file %s: record %d: %w", path, i+1, err)
		}
		units = append(units, deck.RawUnit{
			Question: rec.Question,
			Answer:   answer,
			Context:  rec.Context,
			Theme:    rec.Meta.Theme,
			Hint1:    rec.Hint1,
			Hint2:    rec.Hint2,
			Link:     rec.Link,
		})
	}
	return units, nil
}

// decodeAnswer resolves the scalar-or-list answer shape into the tagged
// variant used by grading.
func decodeAnswer(node *yaml.Node) (domain.Answer, error) {
	if node == nil || node.Kind == 0 {
		return domain.Answer{}, fmt.Errorf("record has no answer")
	}
	switch node.Kind {
	case yaml.SequenceNode:
		var forms []string
		if err := node.Decode(&forms); err != nil {
			return domain.Answer{}, fmt.Errorf("decoding answer list: %w", err)
		}
		if len(forms) == 0 {
			return domain.Answer{}, fmt.Errorf("answer list is empty")
		}
		return domain.NewAnswerSet(forms), nil
	case yaml.ScalarNode:
		var form string
		if err := node.Decode(&form); err != nil {
			return domain.Answer{}, fmt.Errorf("decoding answer: %w", err)
		}
		return domain.NewAnswer(form), nil
	default:
		return domain.Answer{}, fmt.Errorf("answer must be a string or a list of strings")
	}
}
