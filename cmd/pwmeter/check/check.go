package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"pwmeter/internal/cli"
	"pwmeter/internal/common"
	"pwmeter/internal/config"
	"pwmeter/internal/strength"
	"pwmeter/internal/validate"
	"pwmeter/pkg/client"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var flags cli.Flags = cli.Flags{
	{
		Name:         "stdin",
		DefaultValue: false,
		Usage:        "when specified, reads the password from the first line of stdin",
		Type:         cli.FlagTypeBool,
	},
}.
	Append(config.GetServerUrlFlags()).
	Append(config.GetPolicyFlags())

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "check [password]",
	Aliases: []string{"c"},
	Short:   "Checks the strength of a password",
	Long: "Checks the strength of a password provided as an argument, via stdin or via a prompt " +
		"when neither is provided. Use --min-score and --require to enforce a policy, a password " +
		"that does not meet the policy exits with a non-zero exit code",
	Example: "  pwmeter check 'Passw0rd!'\n" +
		"  echo 'Passw0rd!' | pwmeter check --stdin -o json\n" +
		"  pwmeter check --min-score 9 --require special,no_common",
	Args: cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := getPolicy(viper.GetInt("min-score"), viper.GetStringSlice("require"))
		if err != nil {
			cli.PrintBoxedErrorMessage(err.Error())
			return err
		}

		password, err := getPassword(cmd, args, viper.GetBool("stdin"))
		if err != nil {
			return err
		}

		var output *checkOutput
		if serverUrl := viper.GetString("server-url"); serverUrl != "" {
			logrus.Debugf("evaluating password using server[%s]", serverUrl)
			output, err = checkRemotely(password, policy, checkRemotelyOpts{
				ServerUrl:   serverUrl,
				BearerToken: viper.GetString("bearer-token"),
			})
			if err != nil {
				cli.PrintBoxedErrorMessage(fmt.Sprintf("Failed to evaluate the password using the server at %s", serverUrl))
				return err
			}
		} else {
			output = checkLocally(password, policy)
		}
		logrus.Debugf("password received score[%v]", output.Result.Score)

		if err := printOutput(cmd.OutOrStdout(), viper.GetString("output"), output); err != nil {
			return err
		}
		if !output.Passed {
			return fmt.Errorf("password does not meet the policy [%s]: %w", strings.Join(output.Errors, ", "), cli.ErrorPolicyFailed)
		}
		return nil
	},
}

type policy struct {
	MinScore int
	Required []strength.Criterion
}

func (p policy) isSet() bool {
	return p.MinScore > 0 || len(p.Required) > 0
}

type checkOutput struct {
	Result strength.Result `json:"result" yaml:"result"`
	Passed bool            `json:"passed" yaml:"passed"`
	Errors []string        `json:"errors" yaml:"errors"`

	isPolicySet bool
}

func getPolicy(minScore int, required []string) (policy, error) {
	if minScore < 0 || minScore > strength.MaxScore {
		return policy{}, fmt.Errorf("min-score must be between 0 and %v: %w", strength.MaxScore, cli.ErrorInvalidInput)
	}
	criteria, err := validate.ParseCriteria(required)
	if err != nil {
		return policy{}, fmt.Errorf("%w: %w", cli.ErrorInvalidInput, err)
	}
	return policy{MinScore: minScore, Required: criteria}, nil
}

func getPassword(cmd *cobra.Command, args []string, isStdin bool) (string, error) {
	if len(args) > 0 {
		if isStdin {
			return "", fmt.Errorf("password cannot be both an argument and read from stdin: %w", cli.ErrorInvalidInput)
		}
		return args[0], nil
	}
	if isStdin {
		return cli.ReadFirstLine(cmd.InOrStdin())
	}
	password, err := cli.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", cli.ErrorInvalidInput, err)
	}
	return password, nil
}

func checkLocally(password string, p policy) *checkOutput {
	output := &checkOutput{
		Result:      strength.Evaluate(password),
		Passed:      true,
		Errors:      []string{},
		isPolicySet: p.isSet(),
	}
	if err := validate.Password(password, validate.PasswordOpts{
		MinScore: p.MinScore,
		Required: p.Required,
	}); err != nil {
		output.Passed = false
		output.Errors = validate.ErrorCodes(err)
	}
	return output
}

type checkRemotelyOpts struct {
	ServerUrl   string
	BearerToken string
}

func checkRemotely(password string, p policy, opts checkRemotelyOpts) (*checkOutput, error) {
	clientOpts := client.NewClientOpts{
		ServerUrl: opts.ServerUrl,
		Id:        "cli",
	}
	if opts.BearerToken != "" {
		clientOpts.BearerAuth = &client.NewClientBearerAuthOpts{Token: opts.BearerToken}
	}
	serverClient, err := client.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrorInvalidInput, err)
	}

	if !p.isSet() {
		evaluation, err := serverClient.EvaluateV1(password)
		if err != nil {
			return nil, mapClientError(err)
		}
		return &checkOutput{
			Result: evaluation.Data,
			Passed: true,
			Errors: []string{},
		}, nil
	}

	required := []string{}
	for _, criterion := range p.Required {
		required = append(required, string(criterion))
	}
	validation, err := serverClient.ValidateV1(client.ValidateV1Input{
		Password: password,
		MinScore: p.MinScore,
		Required: required,
	})
	if err != nil && !errors.Is(err, client.ErrorPolicyFailed) {
		return nil, mapClientError(err)
	}
	output := &checkOutput{
		Result:      validation.Data.Result,
		Passed:      validation.Data.Passed,
		Errors:      validation.Data.Errors,
		isPolicySet: true,
	}
	if output.Errors == nil {
		output.Errors = []string{}
	}
	return output, nil
}

func mapClientError(err error) error {
	if errors.Is(err, client.ErrorConnectionRefused) || errors.Is(err, client.ErrorRequestExecution) {
		return fmt.Errorf("%w: %w", cli.ErrorServiceUnavailable, err)
	}
	return err
}

func printOutput(w io.Writer, format string, output *checkOutput) error {
	switch format {
	case common.OutputJson:
		o, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Fprintln(w, string(o))
	case common.OutputYaml:
		o, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Fprint(w, string(o))
	default:
		rendered, err := cli.RenderResult(output.Result)
		if err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
		fmt.Fprintln(w, rendered)
		if !output.isPolicySet {
			return nil
		}
		if output.Passed {
			cli.PrintBoxedSuccessMessage("Password meets the policy")
			return nil
		}
		cli.PrintBoxedErrorMessage(fmt.Sprintf("Password does not meet the policy:\n\n- %s", strings.Join(output.Errors, "\n- ")))
	}
	return nil
}
