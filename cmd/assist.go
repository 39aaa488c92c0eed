package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/evrell/spare"
	"github.com/evrell/spare/advisor"
	"github.com/evrell/spare/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the savings coach.
type assistCmd struct {
	ledgerFile string
	rate       string
	profile    string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the savings coach" }
func (*assistCmd) Usage() string {
	return `scs assist [<question>]

  Starts an interactive session with the savings coach, seeded with the
  current growth and projection reports.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "f", defaultLedgerFile, "Contributions file (JSONL format)")
	f.StringVar(&c.rate, "rate", "", "Annual growth rate as a decimal, e.g. 0.05")
	f.StringVar(&c.profile, "profile", string(spare.Balanced), "Risk profile (conservative, balanced, aggressive)")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	briefing, err := c.briefing()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing reports: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	coach := advisor.New(os.Stdout, os.Stdin)
	if initialPrompt != "" {
		err = coach.Run(ctx, client, briefing, initialPrompt)
	} else {
		err = coach.Run(ctx, client, briefing)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach failed:", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// briefing renders the growth and projection reports the coach is seeded with.
func (c *assistCmd) briefing() (string, error) {
	rate, err := resolveRate(c.rate, c.profile)
	if err != nil {
		return "", err
	}
	ledger, err := DecodeLedgerFile(c.ledgerFile)
	if err != nil {
		return "", err
	}

	growth, err := spare.Valuate(ledger.Contributions(), rate, spare.Today())
	if err != nil {
		return "", err
	}
	projections, err := spare.Projections(growth.Value, spare.M(0, growth.Value.Currency()), rate)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(renderer.GrowthMarkdown(growth))
	b.WriteString("\n")
	b.WriteString(renderer.ProjectionsMarkdown(projections))
	return b.String(), nil
}
