// objc2swift - Objective-C to Swift source converter
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("objc2swift")

func main() {
	rootCmd := &cobra.Command{
		Use:   "objc2swift",
		Short: "Convert Objective-C source files to Swift",
	}

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newWatchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
