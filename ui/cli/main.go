// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command of Regform: persistent flags, config
// loading and the interactive form that runs without a subcommand.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/lipgloss"
	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/regform/buildvars"
	"github.com/toeirei/regform/internal/config"
	"github.com/toeirei/regform/internal/countries"
	"github.com/toeirei/regform/internal/i18n"
	"github.com/toeirei/regform/internal/logging"
	"github.com/toeirei/regform/internal/registration"
	"github.com/toeirei/regform/internal/theme"
	"github.com/toeirei/regform/internal/tui"
)

var version = buildvars.VersionOrDefault("dev") // set by the linker
var gitCommit = "dev"                           // set at build time with the short commit SHA
var buildDate = ""                              // set at build time (RFC3339)
var cfgFile string
var showVersionFlag bool

var appConfig config.Config

// ErrNoTerminal is returned when the interactive form is started without a
// terminal on stdin and stdout.
var ErrNoTerminal = errors.New("the interactive form needs a terminal; use 'regform prompt' or 'regform validate'")

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		log.Warnf("%v", err)
	}

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil && !config.IsNotFound(err) {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(appConfig.Language)
	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		return err
	}
	logging.Debugf("config loaded: language=%s countries=%s", appConfig.Language, appConfig.Countries.URL)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		if path == "" {
			return nil, nil
		}

		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// userConfigFile is the file the theme preference is written to.
func userConfigFile() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.GetConfigPath(false)
}

func themeStore() (theme.Store, error) {
	path, err := userConfigFile()
	if err != nil {
		return nil, err
	}
	return theme.FileStore{Path: path}, nil
}

func countryLoader() *countries.Loader {
	return countries.NewLoader(appConfig.Countries.URL, appConfig.Countries.FetchTimeout())
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regform",
		Short: "Regform is a terminal registration form.",
		Long: `Regform shows a registration form with inline validation, a progress
bar, a country list, an avatar preview and a dark/light theme.
Nothing is sent anywhere: a successful submit is logged and printed.

Running without a subcommand will launch the interactive form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: runForm,
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("lang", "ru", `Form language ("ru")`)
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-file", "", "Log file used while the form owns the terminal")
	cmd.PersistentFlags().String("countries-url", config.DefaultCountriesURL, "Country list endpoint")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}

	cmd.AddCommand(
		newPromptCmd(),
		newValidateCmd(),
		newCountriesCmd(),
		newThemeCmd(),
		versionCmd,
	)

	return cmd
}

// runForm starts the interactive form. Logging goes to a file while the form
// owns the terminal, and the submission is printed after it closes.
func runForm(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	logFile := appConfig.Log.File
	if logFile == "" {
		logFile = logging.DefaultFile()
	}
	closer, err := logging.ToFile(logFile)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	store, err := themeStore()
	if err != nil {
		return err
	}
	opts := tui.Options{
		Countries: countryLoader(),
		Store:     store,
		Theme:     resolveTheme(store),
	}
	if wd, err := os.Getwd(); err == nil {
		opts.StartDir = wd
	}

	m, err := tui.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	return printSubmission(cmd.OutOrStdout(), m.State().LastSubmission())
}

// resolveTheme prefers the theme key of the loaded config, then the stored
// preference, then the terminal background.
func resolveTheme(store theme.Store) theme.Theme {
	if appConfig.Theme != "" {
		if t, err := theme.Parse(appConfig.Theme); err == nil {
			return t
		}
		log.Warnf("ignoring theme %q from config", appConfig.Theme)
	}
	return theme.Resolve(store, lipgloss.HasDarkBackground)
}

func printSubmission(w io.Writer, sub *registration.Submission) error {
	if sub == nil {
		return nil
	}
	data, err := sub.JSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, data)
	return err
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if (resolvedVersion == "dev" || resolvedVersion == "(devel)") && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/regform" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit passed via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
