package config

import (
	"fmt"
	"pwmeter/internal/cli"
)

func GetListenAddrFlags(port int) cli.Flags {
	return cli.Flags{
		{
			Name:         "listen-addr",
			DefaultValue: fmt.Sprintf("0.0.0.0:%v", port),
			Usage:        "specifies the listen address of the server",
			Type:         cli.FlagTypeString,
		},
	}
}

func GetServerAuthFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         "basic-auth-username",
			DefaultValue: "",
			Usage:        "when specified with --basic-auth-password, requires basic auth on all requests",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "basic-auth-password",
			DefaultValue: "",
			Usage:        "the password for basic auth",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "bearer-token",
			DefaultValue: "",
			Usage:        "when specified, requires this bearer token on all requests",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "allowed-ips",
			DefaultValue: []string{},
			Usage:        "when specified, only requests from these ips/cidrs are accepted",
			Type:         cli.FlagTypeStringSlice,
		},
	}
}
