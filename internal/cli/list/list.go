package list

import (
	"fmt"
	"io"
	"sumcheck/pkg/sumcheck/core"

	"gopkg.in/yaml.v3"
)

type ListCmd struct {
	Yaml bool `short:"y" help:"Output in YAML format"`
}

type listedTest struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name"`
}

func (cmd *ListCmd) Run(suite core.SuiteContext, out io.Writer) error {
	log := suite.Logger()
	log.Info("Listing registered tests")

	tests := suite.Registry().Tests()

	if cmd.Yaml {
		return outputTestsAsYaml(out, tests)
	}

	for _, test := range tests {
		if _, err := fmt.Fprintln(out, test.Name); err != nil {
			return err
		}
	}

	log.Infof("Listed %d tests", len(tests))
	return nil
}

func outputTestsAsYaml(out io.Writer, tests []core.RegisteredTest) error {
	listed := make([]listedTest, len(tests))
	for i, test := range tests {
		listed[i] = listedTest{Index: i, Name: test.Name}
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(listed); err != nil {
		return fmt.Errorf("failed to marshal tests to YAML: %w", err)
	}

	return enc.Close()
}
