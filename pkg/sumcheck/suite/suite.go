package suite

import (
	"fmt"
	"io"
	"os"
	"slices"
	"sumcheck/internal/cli"
	"sumcheck/internal/registry"
	"sumcheck/pkg/sumcheck/core"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type SumcheckSuite struct {
	name        string
	ctx         *kong.Context
	Log         *logrus.Logger
	registry    *registry.Registry
	registrants []core.TestRegistrant
	azureDevops bool
	out         io.Writer
}

// Creates a suite from the process command line. Report output goes to
// stdout, logs go to stderr.
func CreateSuite(name string) *SumcheckSuite {
	s, err := NewSuite(name, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatalf("Failed to create suite '%s'", name)
	}

	return s
}

// Creates a suite with explicit arguments and writers.
func NewSuite(name string, args []string, out, logOut io.Writer) (*SumcheckSuite, error) {
	name = fmt.Sprintf("sumcheck-%s", name)
	ctx, global, err := cli.ParseCommandLine(name, args, kong.Writers(out, logOut))
	if err != nil {
		return nil, err
	}

	if global.NoColor {
		color.NoColor = true
	}

	logger := logrus.New()
	logger.SetOutput(logOut)
	logger.SetLevel(global.Verbosity)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   !global.NoColor,
		DisableColors: global.NoColor,
	})

	logger.Infof("Creating suite '%s'", name)

	return &SumcheckSuite{
		name:        name,
		ctx:         ctx,
		Log:         logger,
		registry:    registry.New(),
		registrants: make([]core.TestRegistrant, 0),
		azureDevops: global.AzureDevops,
		out:         out,
	}, nil
}

// Adds the test cases of a registrant to the suite registry
func (s *SumcheckSuite) AddTests(registrant core.TestRegistrant) {
	if slices.ContainsFunc(s.registrants, func(r core.TestRegistrant) bool {
		return r.Name() == registrant.Name()
	}) {
		s.Log.Fatalf("Registrant '%s' already added", registrant.Name())
	}

	s.Log.Debugf("Registering tests of '%s'", registrant.Name())
	s.Log.Tracef("All tests before: %v", s.registry.Names())

	err := s.registry.Collect(registrant)
	if err != nil {
		s.Log.WithError(err).Fatalf("Failed to add tests of '%s'", registrant.Name())
	}

	s.Log.Debugf("All tests: %v", s.registry.Names())
	s.registrants = append(s.registrants, registrant)
}

// Run the suite and exit the process
func (s *SumcheckSuite) Run() {
	s.reportExitStatus(s.Execute())
}

// Execute runs the selected command without exiting the process.
func (s *SumcheckSuite) Execute() error {
	if s.ctx == nil {
		return fmt.Errorf("suite '%s' not initialized", s.name)
	}

	s.Log.Infof("Running suite '%s' - %d tests registered.", s.name, s.registry.Len())
	s.ctx.BindTo(s, (*core.SuiteContext)(nil))
	s.ctx.BindTo(s.out, (*io.Writer)(nil))
	return s.ctx.Run()
}

// Returns the name of the suite
func (s *SumcheckSuite) Name() string {
	return s.name
}

func (s *SumcheckSuite) Registry() core.TestRegistry {
	return s.registry
}

func (s *SumcheckSuite) AzureDevops() bool {
	return s.azureDevops
}

func (s *SumcheckSuite) Logger() *logrus.Logger {
	return s.Log
}
