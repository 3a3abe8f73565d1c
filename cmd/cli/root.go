package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"octosupply/pkg/client"
)

const (
	cfgKeyAPIURL = "api_url"
	cfgKeyOutput = "output"
	cfgKeyToken  = "token"

	defaultAPIURL = "http://localhost:3000"
)

// app carries the state shared by every subcommand.
type app struct {
	v *viper.Viper
}

func (a *app) client() *client.Client {
	c := client.New(a.v.GetString(cfgKeyAPIURL), nil)
	if token := a.v.GetString(cfgKeyToken); token != "" {
		c = c.WithToken(token)
	}
	return c
}

func (a *app) format() (string, error) {
	f := strings.ToLower(a.v.GetString(cfgKeyOutput))
	switch f {
	case formatTable, formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: table, json, yaml)", f)
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("OCTOSUPPLY")
	a.v.AutomaticEnv()
	a.v.SetDefault(cfgKeyAPIURL, defaultAPIURL)
	a.v.SetDefault(cfgKeyOutput, formatTable)

	root := &cobra.Command{
		Use:   "octosupply",
		Short: "octosupply is a client for the cat-tech supply API",
		Long: `octosupply reads and edits the suppliers, products, headquarters,
branches, orders, order details, deliveries and order detail deliveries
served by the octosupply API.

The server address comes from --api-url or OCTOSUPPLY_API_URL.`,
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.String("api-url", defaultAPIURL, "base URL of the API server")
	flags.StringP("output", "o", formatTable, "output format: table, json or yaml")
	flags.String("token", "", "session token for servers with auth enabled")
	a.v.BindPFlag(cfgKeyAPIURL, flags.Lookup("api-url"))
	a.v.BindPFlag(cfgKeyOutput, flags.Lookup("output"))
	a.v.BindPFlag(cfgKeyToken, flags.Lookup("token"))

	root.AddCommand(
		newListCmd(a),
		newGetCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newProductsCmd(a),
		newDeliveryStatusCmd(a),
		newLoginCmd(a),
	)
	return root
}
