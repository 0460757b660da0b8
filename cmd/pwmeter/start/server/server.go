package server

import (
	"fmt"
	"pwmeter/internal/cli"
	"pwmeter/internal/common"
	"pwmeter/internal/config"
	"pwmeter/internal/server"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetListenAddrFlags(8080).Append(config.GetServerAuthFlags())

var Command = cli.NewCommand(cli.CommandOpts{
	Name:    "server",
	Flags:   flags,
	Use:     "server",
	Aliases: []string{"s"},
	Short:   "Starts the pwmeter HTTP API",
	Long:    "Starts the pwmeter HTTP API which evaluates and validates passwords, the API documentation is served at /docs",
	Run: func(cmd *cobra.Command, opts *cli.Command, args []string) error {
		serviceLogs := opts.GetServiceLogs()

		serverOpts := server.StartHttpServerOpts{
			Addr:        viper.GetString("listen-addr"),
			Done:        make(chan common.Done),
			ServiceLogs: serviceLogs,
		}
		basicAuthUsername := viper.GetString("basic-auth-username")
		basicAuthPassword := viper.GetString("basic-auth-password")
		if basicAuthUsername != "" || basicAuthPassword != "" {
			serverOpts.BasicAuth = &common.NewHttpServerBasicAuthOpts{
				Username: basicAuthUsername,
				Password: basicAuthPassword,
			}
		}
		if bearerToken := viper.GetString("bearer-token"); bearerToken != "" {
			serverOpts.BearerAuth = &common.NewHttpServerBearerAuthOpts{
				Token: bearerToken,
			}
		}
		if allowedIps := viper.GetStringSlice("allowed-ips"); len(allowedIps) > 0 {
			serverOpts.IpAllowlist = &common.NewHttpServerIpAllowlistOpts{
				AllowedIps: allowedIps,
			}
		}

		httpServer, err := server.NewHttpServer(serverOpts)
		if err != nil {
			return fmt.Errorf("failed to initialise server: %w: %w", cli.ErrorInvalidInput, err)
		}

		var closeOnce sync.Once
		opts.AddShutdownProcess("http-server", func() error {
			closeOnce.Do(func() { close(serverOpts.Done) })
			return nil
		})
		opts.IsReady()

		if err := httpServer.Start(); err != nil {
			return err
		}
		return nil
	},
})
