package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/ejolly/demo-project/demo"
)

type greetingResult struct {
	Greeting string `json:"greeting"`
}

// WriteText writes the greeting line exactly as demo.HelloWorld would.
func (r greetingResult) WriteText(w io.Writer) error {
	return demo.Fprint(w)
}

func newHelloCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "hello",
		Short:   "Print the greeting",
		Args:    cobra.NoArgs,
		GroupID: "greeting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d.logger.Debug("emitting greeting", "format", string(d.format))
			return writeResult(cmd.OutOrStdout(), d, greetingResult{Greeting: demo.Greeting})
		},
	}
}
