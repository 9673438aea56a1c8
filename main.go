package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	address    string
)

var rootCmd = &cobra.Command{
	Use:   "catalog_api",
	Short: "REST-like API over foods, companies and students",
	Long: `Serves CRUD routes over the foods, company and student tables through a
bounded connection pool, and proxies /say to the Keyword Echo Service.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Directory containing config.yaml")
	rootCmd.Flags().StringVar(&address, "address", "", "Address to listen on (overrides server.address)")
}

//	@title			REST-like API
//	@version		1.0.0
//	@description	CRUD API over foods, companies and students, plus a proxy to the Keyword Echo Service.
//	@BasePath		/
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
