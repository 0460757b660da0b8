package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

type TableRowDataInsertor func(*Table) error

type NewTableOpts struct {
	Headers     []string
	Rows        TableRowDataInsertor
	IsFullWidth bool
}

func NewTable(opts NewTableOpts) *Table {
	table := &Table{
		Rows:        opts.Rows,
		isFullWidth: opts.IsFullWidth,
	}
	return table.Init(opts.Headers)
}

type Table struct {
	data  bytes.Buffer
	table *tablewriter.Table

	Rows TableRowDataInsertor

	isFullWidth bool
}

func (t *Table) Init(headers []string) *Table {
	t.table = tablewriter.NewWriter(&t.data)
	t.table.Options(tablewriter.WithHeaderAlignment(tw.AlignLeft))
	t.table.Configure(func(cfg *tablewriter.Config) {
		width, _, _ := term.GetSize(int(os.Stdout.Fd()))
		if width <= 0 {
			return
		}
		if t.isFullWidth {
			cfg.Widths.Global = width
		} else {
			cfg.MaxWidth = width
		}
	})
	if len(headers) > 0 {
		t.table.Header(headers)
	}
	return t
}

// Render inserts the rows returned by the .Rows property
func (t *Table) Render() error {
	if t.Rows == nil {
		return nil
	}
	return t.Rows(t)
}

func (t *Table) NewRow(values ...any) error {
	row := []string{}
	for _, value := range values {
		var valueAsString string
		switch v := value.(type) {
		case int, int8, int16, int32, int64, float32, float64:
			valueAsString = fmt.Sprintf("%v", v)
		case bool:
			valueAsString = "✅"
			if !v {
				valueAsString = "❌"
			}
		case string:
			valueAsString = v
		case []string:
			valueAsString = strings.Join(v, ", ")
		case []byte:
			valueAsString = string(v)
		case fmt.Stringer:
			valueAsString = v.String()
		}
		row = append(row, valueAsString)
	}
	return t.table.Append(row)
}

func (t *Table) GetString() string {
	t.table.Render()
	return t.data.String()
}
