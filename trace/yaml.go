package trace

import (
	"fmt"

	"github.com/amirrezaask/stackviz/brackets"
	"gopkg.in/yaml.v3"
)

type yamlStep struct {
	Cursor int    `yaml:"cursor"`
	Stack  string `yaml:"stack"`
	Action string `yaml:"action"`
}

type yamlRun struct {
	Expression string     `yaml:"expression"`
	Balanced   bool       `yaml:"balanced"`
	Steps      []yamlStep `yaml:"steps"`
}

// YAML encodes a run as a document with the expression, the verdict and
// every step. Snapshots are written bottom first as strings.
func YAML(expression string, r brackets.Result) ([]byte, error) {
	doc := yamlRun{Expression: expression, Balanced: r.Balanced, Steps: make([]yamlStep, 0, len(r.Steps))}
	for _, s := range r.Steps {
		doc.Steps = append(doc.Steps, yamlStep{Cursor: s.Cursor, Stack: string(s.Snapshot), Action: s.Action})
	}
	bs, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode trace of %q: %w", expression, err)
	}
	return bs, nil
}
