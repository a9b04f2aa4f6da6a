// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, the configuration and logging wiring
// shared by every subcommand, and the build version reporting.

package cli

import (
	"fmt"
	"os"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studygenie/studygenie/buildvars"
	"github.com/studygenie/studygenie/config"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/internal/logging"
	"github.com/studygenie/studygenie/ui/tui"
	"github.com/studygenie/studygenie/ui/tui/models/views/root"
)

var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool

var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// empty values in the file fall back to the defaults
	if appConfig.Language == "" {
		appConfig.Language = config.Defaults()["language"].(string)
	}
	if _, ok := i18n.GetAvailableLocales()[appConfig.Language]; !ok {
		logging.Warnf("no translation for language %q, using English", appConfig.Language)
		appConfig.Language = "en"
	}

	logging.SetDebug(verbose || appConfig.Log.Debug)
	i18n.Init(appConfig.Language)
	logging.Debugf("language %s, history %d, %ds per question",
		i18n.GetLang(), appConfig.Calculator.HistorySize, appConfig.Quiz.SecondsPerQuestion)

	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// only an explicitly set --config counts
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		if path == "" {
			return nil, nil
		}

		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// runTUI starts the interactive shell. The terminal belongs to the TUI, so
// logs go to the configured file or nowhere.
func runTUI(cmd *cobra.Command, args []string) error {
	if appConfig.Log.File != "" {
		closeLog, err := logging.ToFile(appConfig.Log.File)
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
	} else {
		logging.Discard()
		defer logging.SetOutput(os.Stderr)
	}

	v, _, _ := resolveBuildVersion(nil)
	return tui.Run(root.Options{
		Version:            v,
		HistorySize:        appConfig.Calculator.HistorySize,
		SecondsPerQuestion: appConfig.Quiz.SecondsPerQuestion,
		Markdown:           appConfig.Notes.Markdown,
	})
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studygenie",
		Short: "StudyGenie is a terminal study companion.",
		Long: `StudyGenie bundles the small tools of a study session in one
terminal window: a pocket calculator, notes with markdown preview, a timed
quiz and flashcards, next to a dashboard of your progress.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
		RunE:              runTUI,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", languageUsage())

	cmd.AddCommand(
		newCalcCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// languageUsage lists the embedded locales in the --language help.
func languageUsage() string {
	locales := i18n.GetAvailableLocales()
	tags := make([]string, 0, len(locales))
	for tag := range locales {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = fmt.Sprintf("%s (%s)", tag, locales[tag])
	}
	return "Interface language: " + strings.Join(parts, ", ")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion(v, c, d string) string {
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// some build paths only record our version as a dependency
		if resolvedVersion == "dev" && info.Deps != nil {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/studygenie/studygenie" && dep.Version != "" {
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

	// last resort for support requests
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
