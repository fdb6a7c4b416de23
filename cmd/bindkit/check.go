package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bindkit-dev/bindkit/internal/config"
	"github.com/bindkit-dev/bindkit/internal/errors"
	"github.com/bindkit-dev/bindkit/pkg/bind"
	"github.com/bindkit-dev/bindkit/pkg/dom"
)

func checkCmd() *cobra.Command {
	var (
		handlers  string
		eventsAt  string
		handlerAt string
		delimiter string
	)

	cmd := &cobra.Command{
		Use:   "check <document>",
		Short: "Validate a document's event declarations offline",
		Long: `Validate a document's event declarations without serving it.

Runs a dry binding pass: every element carrying the events attribute
is checked for a matching handlers attribute, equal list lengths, and
well-formed names. With --handlers, handler names are also validated
against the given list; without it, only the declaration structure is
checked.

Exit status is non-zero when any element fails.

Examples:
  bindkit check index.html
  bindkit check index.html --handlers=onSave,onCancel
  bindkit check index.html --events-attr=data-on --handlers-attr=data-do`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], handlers, eventsAt, handlerAt, delimiter)
		},
	}

	cmd.Flags().StringVar(&handlers, "handlers", "", "Comma-separated list of known handler names")
	cmd.Flags().StringVar(&eventsAt, "events-attr", config.DefaultEventsAttr, "Event-list attribute name")
	cmd.Flags().StringVar(&handlerAt, "handlers-attr", config.DefaultHandlersAttr, "Handler-list attribute name")
	cmd.Flags().StringVar(&delimiter, "delimiter", config.DefaultDelimiter, "List delimiter")

	return cmd
}

func runCheck(path, handlers, eventsAttr, handlersAttr, delimiter string) error {
	html, err := os.ReadFile(path)
	if err != nil {
		err = errors.New("B140").WithSubject(path).Wrap(err)
		errors.PrintError(err)
		return err
	}

	doc, err := dom.ParseString(string(html))
	if err != nil {
		err = errors.New("B141").WithSubject(path).Wrap(err)
		errors.PrintError(err)
		return err
	}

	reg := checkRegistry(doc, handlers, handlersAttr, delimiter)

	opts := []bind.Option{
		bind.WithAttributes(eventsAttr, handlersAttr),
		bind.WithDelimiter(delimiter),
		bind.WithLogger(discardLogger()),
	}

	report, bindErr := bind.BindDocument(doc, reg, opts...)

	info("%d element(s) scanned, %d bound, %d listener(s)",
		report.Elements, report.Bound, report.Listeners)

	if bindErr != nil {
		for _, elErr := range report.Errors {
			errors.PrintError(elErr)
		}
		return errors.New("B005").
			WithSubject(path).
			WithDetail(fmt.Sprintf("%d element(s) failed validation", len(report.Errors)))
	}

	success("all declarations valid")
	return nil
}

// checkRegistry builds the registry the dry pass validates against.
// With an explicit handler list only those names resolve; otherwise
// every declared name resolves, so only structure is checked.
func checkRegistry(doc *dom.Document, handlers, handlersAttr, delimiter string) bind.Registry {
	noop := func(*dom.Event) {}
	reg := bind.Registry{}

	if handlers != "" {
		for _, name := range strings.Split(handlers, ",") {
			if name = strings.TrimSpace(name); name != "" {
				reg[name] = noop
			}
		}
		return reg
	}

	for _, el := range doc.ElementsWithAttr(handlersAttr) {
		raw, _ := el.Attr(handlersAttr)
		for _, name := range bind.Tokens(raw, delimiter) {
			if name != "" {
				reg[name] = noop
			}
		}
	}
	return reg
}
