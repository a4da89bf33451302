// Package cli is the mnemo command-line front end. It resolves the
// configuration, wires the memory and knowledge components together and
// dispatches exactly one command per invocation.
//
// Example usage:
//
//	func main() {
//	    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	    defer stop()
//
//	    if err := cli.Execute(ctx, os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/entrhq/mnemo/pkg/config"
	"github.com/entrhq/mnemo/pkg/knowledge"
	"github.com/entrhq/mnemo/pkg/linking"
	"github.com/entrhq/mnemo/pkg/logging"
	"github.com/entrhq/mnemo/pkg/memory"
	"github.com/entrhq/mnemo/pkg/query"
	"github.com/entrhq/mnemo/pkg/snapshot"
	"github.com/entrhq/mnemo/pkg/tokenizer"
	"github.com/entrhq/mnemo/pkg/ui"
)

func init() {
	cobra.EnableCaseInsensitive = true
}

// Option configures an invocation.
type Option func(*app)

// WithWriter sets the output writer (default is os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(a *app) {
		a.out = w
	}
}

// WithErrWriter sets the writer for error messages (default is os.Stderr).
func WithErrWriter(w io.Writer) Option {
	return func(a *app) {
		a.errOut = w
	}
}

// WithLoadOptions adjusts how the configuration is resolved before flags
// are applied on top.
func WithLoadOptions(fn func(*config.LoadOptions)) Option {
	return func(a *app) {
		a.tweakLoad = fn
	}
}

// WithVersion sets the version reported by --version.
func WithVersion(v string) Option {
	return func(a *app) {
		a.version = v
	}
}

// WithClipboard replaces the system clipboard used by snapshot --copy.
func WithClipboard(fn func(string) error) Option {
	return func(a *app) {
		a.copy = fn
	}
}

// WithTokenCounter replaces the tiktoken counter used for snapshots.
func WithTokenCounter(c snapshot.TokenCounter) Option {
	return func(a *app) {
		a.counter = c
	}
}

type app struct {
	out     io.Writer
	errOut  io.Writer
	version string

	tweakLoad func(*config.LoadOptions)
	copy      func(string) error
	counter   snapshot.TokenCounter

	// flags
	configFile    string
	memoryPath    string
	knowledgePath string
	color         bool
	verbose       bool

	cfg    *config.Config
	logger *logging.Logger

	// process-wide logging state replaced by setup, restored by teardown
	prevSlog     *slog.Logger
	prevLogOut   io.Writer
	prevLogFlags int

	store    *memory.FileStore
	manager  *memory.Manager
	engine   *query.Engine
	resolver *knowledge.Resolver
	builder  *snapshot.Builder
	bridge   *linking.Bridge
}

// Execute runs one mnemo command. Errors are printed to the error writer
// and returned; usage mistakes are reported as messages and return nil.
func Execute(ctx context.Context, args []string, opts ...Option) error {
	a := &app{
		out:     os.Stdout,
		errOut:  os.Stderr,
		version: "dev",
		copy:    clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if err != nil && a.logger != nil {
		a.logger.Errorf("command failed: %v", err)
	}
	a.teardown()
	if err != nil {
		fmt.Fprintln(a.errOut, ui.Error(err.Error()))
		return err
	}
	return nil
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mnemo",
		Short: "Tiered markdown memory with wiki-link knowledge base tools",
		Long: "mnemo keeps short-term and long-term memories as markdown files and\n" +
			"searches and cross-references a knowledge base of [[wiki-linked]] notes.",
		Version:       a.version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			a.usageError(fmt.Sprintf("unknown command: %s", args[0]))
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "path to a YAML config file (default ~/.mnemo/config.yaml)")
	flags.StringVar(&a.memoryPath, "memory-path", "", "memory base directory (env MEMORY_PATH)")
	flags.StringVar(&a.knowledgePath, "knowledge-path", "", "knowledge base root (env KNOWLEDGE_PATH)")
	flags.BoolVar(&a.color, "color", false, "syntax-highlight JSON output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug-level session logging")

	root.AddCommand(
		a.recallCommand(),
		a.rememberCommand(),
		a.consolidateCommand(),
		a.forgetCommand(),
		a.snapshotCommand(),
		a.backlinkCommand(),
		a.linkCommand(),
		a.searchCommand(),
	)
	return root
}

// setup resolves the configuration, opens the session log and builds the
// components a command needs.
func (a *app) setup() error {
	opts := config.LoadOptions{
		ConfigFile:    a.configFile,
		MemoryPath:    a.memoryPath,
		KnowledgePath: a.knowledgePath,
		Verbose:       a.verbose,
	}
	if a.tweakLoad != nil {
		a.tweakLoad(&opts)
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// A logger is always returned; on error it writes to stderr.
	a.logger, _ = logging.NewLogger(cfg.Logging.Dir, "cli")
	a.prevSlog, a.prevLogOut, a.prevLogFlags = slog.Default(), log.Writer(), log.Flags()
	slog.SetDefault(a.logger.Slog(cfg.Logging.LogLevel()))
	a.logger.Infof("session %s: memory=%s knowledge=%s", a.logger.SessionID(), cfg.MemoryPath, cfg.KnowledgePath)

	patterns, err := cfg.PatternMatcher()
	if err != nil {
		return err
	}

	a.store, err = memory.NewFileStore(cfg.MemoryPath)
	if err != nil {
		return err
	}
	base, err := knowledge.NewBase(cfg.KnowledgePath, knowledge.WithPatternMatcher(patterns))
	if err != nil {
		return err
	}

	a.manager = memory.NewManager(a.store)
	a.engine = query.NewEngine(a.store, base)
	a.resolver = knowledge.NewResolver(base)
	a.bridge = linking.NewBridge(a.store)
	return nil
}

func (a *app) teardown() {
	if a.logger == nil {
		return
	}
	// SetDefault redirected the log package too; put both back before the
	// session file closes.
	slog.SetDefault(a.prevSlog)
	log.SetOutput(a.prevLogOut)
	log.SetFlags(a.prevLogFlags)
	_ = a.logger.Close()
}

// snapshotBuilder is created on first use so the tokenizer is only loaded
// when a snapshot is actually taken.
func (a *app) snapshotBuilder() *snapshot.Builder {
	if a.builder != nil {
		return a.builder
	}
	counter := a.counter
	if counter == nil {
		tok, err := tokenizer.New()
		if err != nil {
			a.logger.Debugf("tokenizer unavailable, approximating: %v", err)
			counter = tokenizer.Approximate{}
		} else {
			counter = tok
		}
	}
	a.builder = snapshot.NewBuilder(a.store, a.store, a.store.Base(), snapshot.WithTokenCounter(counter))
	return a.builder
}
