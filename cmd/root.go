// Package cmd implements the purl-component command line interface.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ortelius/purl-component/component"
	"github.com/ortelius/purl-component/config"
	"github.com/ortelius/purl-component/model"
	"github.com/ortelius/purl-component/server"
	"github.com/ortelius/purl-component/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configFile string
	verbose    bool
	serverURL  string
	jsonOutput bool
}

// NewRootCmd builds the purl-component command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "purl-component",
		Short: "Derive component names from package URLs",
		Long: `A CLI tool for turning a package URL (PURL) into the component name
used to group packages: OCI images are prefixed with their repository
path, RPM module packages with their module, everything else is the
bare package name.`,
		Version:       util.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(newComponentCmd(opts), newServeCmd(opts))
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load reads the config and builds a logger honouring --verbose
func (o *options) load() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, util.InitLogger(cfg.LogLevel), nil
}

func newComponentCmd(opts *options) *cobra.Command {
	componentCmd := &cobra.Command{
		Use:   "component <purl>",
		Short: "Print the component name of a PURL",
		Long: `Resolves a single PURL to its component name. The PURL is resolved
locally unless --server (or PURLCOMP_SERVER) points at a purl-component API.`,
		Example: `  purl-component component 'pkg:oci/nginx@1.21.0?repository_url=docker.io/library'
  purl-component component --json 'pkg:rpm/redhat/nginx@1.21.0?rpmmod=nginx'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponent(cmd, opts, args[0])
		},
	}

	componentCmd.Flags().StringVar(&opts.serverURL, "server", "", "purl-component API server URL")
	componentCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the full result as JSON")
	return componentCmd
}

func runComponent(cmd *cobra.Command, opts *options, purl string) error {
	cfg, log, err := opts.load()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	serverURL := util.GetStringOrDefault(opts.serverURL, cfg.ServerURL)

	var result model.Component
	if serverURL != "" {
		log.Sugar().Debugf("Resolving %s via %s", purl, serverURL)
		result, err = resolveRemote(cmd.Context(), serverURL, purl, log)
	} else {
		log.Sugar().Debugf("Resolving %s locally", purl)
		result, err = component.Resolve(purl)
	}
	if err != nil {
		return err
	}

	return printComponent(cmd.OutOrStdout(), result, opts.jsonOutput)
}

func printComponent(w io.Writer, result model.Component, asJSON bool) error {
	if !asJSON {
		_, err := fmt.Fprintln(w, result.Component)
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the purl-component HTTP API",
		Long: `Starts the HTTP API serving POST /api/v1/component and
POST /api/v1/graphql on the configured port (MS_PORT, default 3000).`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := opts.load()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			if err := server.Run(cfg, log); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}
}
