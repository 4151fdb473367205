package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/msto63/ippcode/foundation/core/config"
	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwlog "github.com/msto63/ippcode/foundation/core/log"
	"github.com/msto63/ippcode/foundation/ippcode/emit"
	"github.com/msto63/ippcode/foundation/ippcode/parser"
	mdwfilex "github.com/msto63/ippcode/foundation/utils/filex"
	mdwstringx "github.com/msto63/ippcode/foundation/utils/stringx"
	"github.com/msto63/ippcode/pkg/core/logging"
	"github.com/msto63/ippcode/pkg/core/report"
)

const programName = "ippparse"

// app holds the state of one invocation
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	sourceFile string
	outputFile string
	cfgFile    string
	format     string
	verbose    bool

	logger *mdwlog.Logger
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: mdwlog.NewNop(),
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   programName,
		Short: "IPPcode24 lexical and syntactic analyzer",
		Long: `ippparse reads IPPcode24 source text, checks the header, every opcode
and every operand, and writes the program tree.

Source is read from stdin unless --source is given; the tree is written
to stdout unless --output is given.

Exit status:
  0   success
  10  missing parameter or invalid combination of parameters
  11  source cannot be opened
  12  output cannot be opened or written
  21  missing or wrong header
  22  unknown opcode
  23  other lexical or syntactic error
  99  internal error`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyze(cmd)
		},
	}

	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return parameterError(err.Error())
	})

	flags := rootCmd.Flags()
	flags.StringVar(&a.sourceFile, "source", "", "Source file (default: stdin)")
	flags.StringVar(&a.outputFile, "output", "", "Output file (default: stdout)")
	flags.StringVar(&a.cfgFile, "config", "", "Config file (.toml, .yaml)")
	flags.StringVar(&a.format, "format", "", "Output format: "+strings.Join(emit.Formats(), ", "))
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose diagnostics")

	rootCmd.AddCommand(a.versionCmd())
	return rootCmd
}

// run executes the command line and returns the coded failure, if any
func (a *app) run(args []string) error {
	if err := checkHelp(args); err != nil {
		return err
	}

	// A nil slice would make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}

	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	// Errors raised by cobra itself are invocation problems
	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		return parameterError(err.Error())
	}
	return err
}

// analyze performs one complete analysis run
func (a *app) analyze(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		settings.Output.Format = strings.ToLower(a.format)
	}
	if a.verbose {
		settings.Log.Level = mdwlog.LevelDebug.String()
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	a.logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: programName,
		Level:       settings.Log.Level,
		Format:      settings.Log.Format,
		Output:      a.stderr,
	})

	emitter, err := emit.ForFormat(settings.Output.Format, emit.Options{Indent: settings.Output.Indent})
	if err != nil {
		return err
	}

	source, err := a.readSource()
	if err != nil {
		return err
	}

	prog, err := parser.New(parser.Options{Logger: a.logger}).Parse(source)
	if err != nil {
		return err
	}

	return a.writeOutput(func(w io.Writer) error {
		return emitter.Emit(w, prog)
	})
}

func (a *app) readSource() (string, error) {
	if mdwstringx.IsBlank(a.sourceFile) {
		return mdwfilex.ReadAllString(a.stdin, "stdin")
	}
	return mdwfilex.ReadString(a.sourceFile)
}

func (a *app) writeOutput(write func(io.Writer) error) error {
	if mdwstringx.IsBlank(a.outputFile) {
		return write(a.stdout)
	}
	return mdwfilex.WriteWith(a.outputFile, mdwfilex.DefaultFileMode, write)
}

// checkHelp rejects the help flag combined with any other argument
func checkHelp(args []string) error {
	if len(args) < 2 {
		return nil
	}
	for _, arg := range args {
		if arg == "-h" || arg == "--help" || strings.HasPrefix(arg, "--help=") {
			return parameterError("--help cannot be combined with other arguments")
		}
	}
	return nil
}

func parameterError(message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeParameter).
		WithOperation("cmd.Run")
}

// Run executes the command line with the given streams and returns the
// coded error of the first failure
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	return newApp(stdin, stdout, stderr).run(args)
}

// Execute runs the command line of the process and terminates with the
// exit status of the outcome
func Execute() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := a.run(os.Args[1:])

	atexit.Register(func() {
		a.logger.Debug("run finished", mdwlog.Fields{"success": err == nil})
	})

	report.New(report.Options{
		Output:  os.Stderr,
		Logger:  a.logger,
		Verbose: a.verbose,
	}).Exit(err)
}
