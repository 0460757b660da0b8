package criteria

import (
	"encoding/json"
	"fmt"
	"pwmeter/internal/cli"
	"pwmeter/internal/common"
	"pwmeter/internal/strength"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var Command = &cobra.Command{
	Use:     "criteria",
	Aliases: []string{"criterion", "c"},
	Short:   "Lists the criteria passwords are scored against",
	Long:    fmt.Sprintf("Lists the criteria passwords are scored against in evaluation order, the weights of all criteria add up to %v", strength.MaxScore),
	RunE: func(cmd *cobra.Command, args []string) error {
		definitions := strength.Definitions()
		switch viper.GetString("output") {
		case common.OutputJson:
			o, _ := json.MarshalIndent(definitions, "", "  ")
			fmt.Println(string(o))
			return nil
		case common.OutputYaml:
			o, _ := yaml.Marshal(definitions)
			fmt.Print(string(o))
			return nil
		}
		table := cli.NewTable(cli.NewTableOpts{
			Headers: []string{"criterion", "label", "weight", "feedback"},
			Rows: func(t *cli.Table) error {
				for _, definition := range definitions {
					if err := t.NewRow(string(definition.Name), definition.Label, definition.Weight, definition.Feedback); err != nil {
						return err
					}
				}
				return nil
			},
		})
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Println(table.GetString())
		return nil
	},
}
