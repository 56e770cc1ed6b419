package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	"github.com/swiftpen/objc2swift/pkg/codegen"
	"github.com/swiftpen/objc2swift/pkg/config"
	"github.com/swiftpen/objc2swift/pkg/parser"
	"github.com/swiftpen/objc2swift/pkg/types"
)

func newConvertCmd() *cobra.Command {
	var outputDir string
	var configPath string
	var verbosity int

	cmd := &cobra.Command{
		Use:   "convert [files...]",
		Short: "Convert .h/.m files to Swift",
		Long: `Convert Objective-C source files to Swift.

Each input file must have a .h or .m extension. Without -o the Swift
source goes to stdout; with -o each file is written to the output
directory with a .swift extension.

Options come from flags, the OBJC2SWIFT_* environment, or an
.objc2swift.yaml file in the working directory; --config points at an
explicit configuration file instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(verbosity, nil)

			cfg, err := loadConfig(configPath, cmd)
			if err != nil {
				return err
			}
			opts := codegen.Options{
				IndentWidth: cfg.IndentWidth,
				Types:       types.NewTable(cfg.TypeMap),
			}

			failed := 0
			for _, path := range args {
				if err := convertOne(path, outputDir, opts); err != nil {
					report(color.FgRed, "  ✗ %s: %v", path, err)
					log.Errorf("convert %s: %s", path, err.Error())
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d file(s) failed to convert", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory (default: stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a configuration file")
	cmd.Flags().IntVarP(&verbosity, "verbose", "v", 0, "log verbosity")
	cmd.Flags().Int("indent-width", 0, "spaces per indentation level (overrides config)")
	return cmd
}

// loadConfig merges the configuration sources: an explicit --config
// file wins, otherwise viper looks for .objc2swift.yaml and the
// OBJC2SWIFT_* environment, and the --indent-width flag overrides both.
func loadConfig(configPath string, cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		v := viper.New()
		v.SetConfigName(".objc2swift")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.SetEnvPrefix("OBJC2SWIFT")
		v.AutomaticEnv()
		v.SetDefault("indent_width", 4)

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}

		cfg = config.Default()
		cfg.IndentWidth = v.GetInt("indent_width")
		cfg.TypeMap = v.GetStringMapString("type_map")
	}

	if width, err := cmd.Flags().GetInt("indent-width"); err == nil && width > 0 {
		cfg.IndentWidth = width
	}
	return cfg, nil
}

func convertOne(path, outputDir string, opts codegen.Options) error {
	result, err := convertFile(path, opts)
	if err != nil {
		return err
	}

	report(color.FgGreen, "  ✓ %s", path)
	for _, w := range result.Warnings {
		report(color.FgYellow, "    ⚠ %s", w)
	}

	if outputDir == "" {
		fmt.Print(result.Code)
		return nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(outputDir, base+".swift")
	if err := os.WriteFile(out, []byte(result.Code), 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	log.Infof("wrote %s", out)
	return nil
}

// report prints a per-file status line. Status goes to stderr so that
// piping stdout captures only generated code.
func report(attr color.Attribute, format string, args ...interface{}) {
	color.New(attr).Fprintf(color.Error, format+"\n", args...)
}

// convertFile runs the whole pipeline for one source file.
func convertFile(path string, opts codegen.Options) (*codegen.Result, error) {
	ext := filepath.Ext(path)
	if ext != ".h" && ext != ".m" {
		return nil, fmt.Errorf("expected .h or .m file, got %s", ext)
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	unit, err := parser.ParseSource(string(source))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return codegen.Generate(unit, opts), nil
}
