package config

import (
	"fmt"
	"pwmeter/internal/cli"
	"pwmeter/internal/strength"
	"strings"
)

func GetServerUrlFlags() cli.Flags {
	return cli.Flags{
		{
			Name:         "server-url",
			Short:        'u',
			DefaultValue: "",
			Usage:        "when specified, passwords are evaluated by the pwmeter server at this url instead of locally",
			Type:         cli.FlagTypeString,
		},
		{
			Name:         "bearer-token",
			DefaultValue: "",
			Usage:        "the bearer token to use when connecting to the server",
			Type:         cli.FlagTypeString,
		},
	}
}

func GetPolicyFlags() cli.Flags {
	criteria := []string{}
	for _, criterion := range strength.Criteria {
		criteria = append(criteria, string(criterion))
	}
	return cli.Flags{
		{
			Name:         "min-score",
			DefaultValue: 0,
			Usage:        fmt.Sprintf("when specified, fails if the score is below this value (max %v)", strength.MaxScore),
			Type:         cli.FlagTypeInteger,
		},
		{
			Name:         "require",
			DefaultValue: []string{},
			Usage:        fmt.Sprintf("criteria that must be met (any of [%s])", strings.Join(criteria, ", ")),
			Type:         cli.FlagTypeStringSlice,
		},
	}
}
