package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/dividend-expander/src/eventmodels"
	"github.com/jiaming2012/dividend-expander/src/eventservices"
	"github.com/jiaming2012/dividend-expander/src/utils"
)

type RunArgs struct {
	Src           string
	PredictFuture bool
	Tail          int
}

type RunResults struct {
	DividendCount  int
	AvgDaysBetween float64
	Days           []*eventmodels.DailyDividend
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/preview_dividends/main.go --src dividends.csv",
	Short: "Expand a dividend history in memory and print a summary table, without writing anything.",
	Run: func(cmd *cobra.Command, args []string) {
		src, err := cmd.Flags().GetString("src")
		if err != nil {
			log.Fatalf("error getting src: %v", err)
		}

		predictFuture, err := cmd.Flags().GetBool("predict-future")
		if err != nil {
			log.Fatalf("error getting predict-future: %v", err)
		}

		tail, err := cmd.Flags().GetInt("tail")
		if err != nil {
			log.Fatalf("error getting tail: %v", err)
		}

		result, err := Run(RunArgs{
			Src:           src,
			PredictFuture: predictFuture,
			Tail:          tail,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("%d dividend payments, avg %.2f days between payments, %d daily records\n", result.DividendCount, result.AvgDaysBetween, len(result.Days))

		renderTable(result.Days, tail)
	},
}

func renderTable(days []*eventmodels.DailyDividend, tail int) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Dividend"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	appendRow := func(d *eventmodels.DailyDividend) {
		dto := d.ToDTO()
		table.Append([]string{dto.Date, dto.Dividend})
	}

	if len(days) <= 2*tail {
		for _, d := range days {
			appendRow(d)
		}
	} else {
		for _, d := range days[:tail] {
			appendRow(d)
		}

		table.Append([]string{"...", "..."})

		for _, d := range days[len(days)-tail:] {
			appendRow(d)
		}
	}

	table.Render()
}

func Run(args RunArgs) (RunResults, error) {
	dividends, err := utils.ImportDividends(args.Src)
	if err != nil {
		return RunResults{}, err
	}

	avg, err := eventservices.AvgDaysBetween(dividends)
	if err != nil {
		return RunResults{}, err
	}

	days, err := eventservices.DailyDividends(dividends, args.PredictFuture)
	if err != nil {
		return RunResults{}, err
	}

	return RunResults{
		DividendCount:  len(dividends),
		AvgDaysBetween: avg,
		Days:           days,
	}, nil
}

func main() {
	if err := utils.InitEnvironmentVariables(); err != nil {
		log.Fatalf("error initializing environment variables: %v", err)
	}

	runCmd.PersistentFlags().String("src", "", "CSV file from Yahoo containing the dividend payment dates.")
	runCmd.MarkPersistentFlagRequired("src")
	runCmd.PersistentFlags().Bool("predict-future", true, "Predict when the next dividend payment will occur and generate the daily dividends until that future date.")
	runCmd.PersistentFlags().Int("tail", 5, "Number of rows to show from the head and tail of the expanded series.")
	runCmd.Execute()
}
