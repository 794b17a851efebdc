package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"todoview/internal/config"
	"todoview/internal/hooks"
	"todoview/internal/logging"
	"todoview/internal/source"
	"todoview/internal/tui"
	"todoview/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("todoview", flag.ContinueOnError)
	var (
		cfgPath     string
		endpoint    string
		pageSize    int
		windowSize  int
		debounceMS  int
		timeoutSec  int
		noSort      bool
		noPaginate  bool
		hooksDir    string
		schemaFile  string
		exportDir   string
		logFile     string
		logLevel    string
		logFormat   string
		debug       bool
		plain       bool
		showVersion bool
		writeConfig string
		po          plainOptions
	)
	fs.StringVar(&cfgPath, "config", config.DefaultPath(), "config file path (.json or .toml)")
	fs.StringVar(&endpoint, "endpoint", "", "todo source: http(s) URL, .json file or .db/.sqlite database")
	fs.IntVar(&pageSize, "page-size", 0, "rows per page")
	fs.IntVar(&windowSize, "window-size", 0, "page links shown around the current page")
	fs.IntVar(&debounceMS, "debounce-ms", 0, "search debounce in milliseconds")
	fs.IntVar(&timeoutSec, "timeout", 0, "fetch timeout in seconds (0 = none)")
	fs.BoolVar(&noSort, "no-sort", false, "disable sorting")
	fs.BoolVar(&noPaginate, "no-paginate", false, "show all rows on one page")
	fs.StringVar(&hooksDir, "hooks-dir", "", "directory containing JS hook files")
	fs.StringVar(&schemaFile, "schema", "", "JSON Schema file for the payload")
	fs.StringVar(&exportDir, "export-dir", "", "directory for TUI exports")
	fs.StringVar(&logFile, "log-file", "", "log file path")
	fs.StringVar(&logLevel, "log-level", "", "debug | info | warn | error")
	fs.StringVar(&logFormat, "log-format", "", "text | json | logfmt")
	fs.BoolVar(&debug, "debug", false, "debug logging")
	fs.BoolVar(&plain, "plain", false, "print a table instead of starting the TUI")
	fs.StringVar(&po.search, "search", "", "plain mode: title filter")
	fs.StringVar(&po.sortColumn, "sort", "", "plain mode: sort column (id | title | completed)")
	fs.BoolVar(&po.desc, "desc", false, "plain mode: sort descending")
	fs.IntVar(&po.page, "page", 1, "plain mode: page to print")
	fs.StringVar(&po.export, "export", "", "plain mode: also write the view as markdown to this path")
	fs.StringVar(&writeConfig, "write-config", "", "write the merged config to this path and exit")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if showVersion {
		fmt.Println(version.String())
		return 0
	}

	cfg := config.Default()
	if err := config.Load(cfgPath, &cfg); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["endpoint"] {
		cfg.Endpoint = endpoint
	}
	if set["page-size"] {
		cfg.PageSize = pageSize
	}
	if set["window-size"] {
		cfg.WindowSize = windowSize
	}
	if set["debounce-ms"] {
		cfg.SearchDebounceMS = debounceMS
	}
	if set["timeout"] {
		cfg.FetchTimeoutSec = timeoutSec
	}
	if noSort {
		cfg.Sorting = false
	}
	if noPaginate {
		cfg.Pagination = false
	}
	if set["hooks-dir"] {
		cfg.HooksDir = hooksDir
	}
	if set["schema"] {
		cfg.SchemaFile = schemaFile
	}
	if set["export-dir"] {
		cfg.ExportDir = exportDir
	}
	if set["log-file"] {
		cfg.LogFile = logFile
	}
	if set["log-level"] {
		cfg.LogLevel = logLevel
	}
	if set["log-format"] {
		cfg.LogFormat = logFormat
	}
	if debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	if writeConfig != "" {
		if err := config.Save(writeConfig, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "write config: %v\n", err)
			return 1
		}
		fmt.Printf("wrote %s\n", writeConfig)
		return 0
	}

	interactive := !plain && (term.IsTerminal(int(os.Stdin.Fd())) || term.IsTerminal(int(os.Stdout.Fd())))

	logOpts := logging.Options{Level: cfg.LogLevel, Formatter: cfg.LogFormat, Prefix: "todoview"}
	if interactive {
		logOpts.File = cfg.LogFile
	} else if !cfg.Debug && !set["log-level"] {
		logOpts.Level = "warn"
	}
	if err := logging.Init(logOpts); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer logging.Close()
	logging.Info("todoview started", "version", version.Version, "endpoint", cfg.Endpoint)

	env, err := hooks.LoadDir(cfg.HooksDir)
	if err != nil {
		logging.Warn("hooks disabled", "dir", cfg.HooksDir, "err", err)
	}

	src, err := source.Open(cfg.Endpoint, source.Options{
		Timeout:    cfg.FetchTimeout(),
		SchemaFile: cfg.SchemaFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "endpoint: %v\n", err)
		return 2
	}

	if !interactive {
		if err := runPlain(context.Background(), os.Stdout, cfg, src, env, po); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		return 0
	}

	p := tea.NewProgram(tui.New(tui.Options{Config: cfg, Load: src.Load, Hooks: env}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Error("tui error", "err", err)
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		return 1
	}
	return 0
}
