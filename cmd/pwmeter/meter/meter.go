package meter

import (
	"errors"
	"fmt"
	"pwmeter/internal/cli"
	"pwmeter/internal/config"
	"pwmeter/internal/strength"
	"pwmeter/internal/validate"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var flags cli.Flags = config.GetPolicyFlags()

func init() {
	flags.AddToCommand(Command)
}

var Command = &cobra.Command{
	Use:     "meter",
	Aliases: []string{"m"},
	Short:   "Starts the interactive password strength meter",
	Long: "Starts the interactive password strength meter which re-evaluates the password as " +
		"it is typed. Press enter to submit, when --min-score or --require are specified the " +
		"submitted password is checked against them",
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.BindViper(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		minScore := viper.GetInt("min-score")
		if minScore < 0 || minScore > strength.MaxScore {
			return fmt.Errorf("min-score must be between 0 and %v: %w", strength.MaxScore, cli.ErrorInvalidInput)
		}
		required, err := validate.ParseCriteria(viper.GetStringSlice("require"))
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrorInvalidInput, err)
		}

		model, err := cli.RunMeter(cli.MeterOpts{})
		if err != nil {
			if errors.Is(err, cli.ErrorUserCancelled) {
				logrus.Debugf("meter was closed without submitting")
				return nil
			}
			return err
		}
		if !model.IsSubmitted() {
			return nil
		}

		result := model.Result()
		logrus.Debugf("submitted password received score[%v]", result.Score)
		if minScore == 0 && len(required) == 0 {
			return nil
		}
		if err := validate.Password(model.GetValue(), validate.PasswordOpts{
			MinScore: minScore,
			Required: required,
		}); err != nil {
			codes := validate.ErrorCodes(err)
			cli.PrintBoxedErrorMessage(fmt.Sprintf("Password does not meet the policy:\n\n- %s", strings.Join(codes, "\n- ")))
			return fmt.Errorf("password does not meet the policy [%s]: %w", strings.Join(codes, ", "), cli.ErrorPolicyFailed)
		}
		cli.PrintBoxedSuccessMessage(fmt.Sprintf("Password meets the policy with a score of %v/%v", result.Score, result.MaxScore))
		return nil
	},
}
