package cli

import (
	"fmt"

	"sumcheck/internal/cli/list"
	"sumcheck/internal/cli/run"

	"github.com/alecthomas/kong"
	log "github.com/sirupsen/logrus"
)

type GlobalOpts struct {
	Verbosity   log.Level `short:"v" help:"Set log level" default:"info" env:"SUMCHECK_LOG_LEVEL"`
	AzureDevops bool      `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
	NoColor     bool      `help:"Disable colored output"`
}

type cli struct {
	Global GlobalOpts   `embed:""`
	Run    run.RunCmd   `cmd:"" default:"withargs" help:"Run all registered tests (default)"`
	List   list.ListCmd `cmd:"" help:"List registered tests"`
}

// ParseCommandLine parses args for the suite called name. Without arguments
// the run command is selected.
func ParseCommandLine(name string, args []string, options ...kong.Option) (*kong.Context, GlobalOpts, error) {
	cli := cli{}

	options = append([]kong.Option{
		kong.Name(name),
		kong.Description(fmt.Sprintf("Test suite '%s'.", name)),
	}, options...)

	parser, err := kong.New(&cli, options...)
	if err != nil {
		return nil, GlobalOpts{}, fmt.Errorf("failed to create command line parser: %w", err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return nil, GlobalOpts{}, err
	}

	return ctx, cli.Global, nil
}
