package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"leadsprinter/internal/export"
)

// Run drives the interactive CLI: collect the search parameters, run the
// pipeline with a live progress line, preview the first results and
// export.
func Run() error {
	in := bufio.NewReader(os.Stdin)

	fmt.Println("==============================================")
	fmt.Println("  LeadSprinter - LinkedIn Lead Generation")
	fmt.Println("==============================================")

	jobTitles, err := readList(in, "\nEnter job titles (comma-separated, e.g. 'Marketing Manager, Sales Director'):")
	if err != nil {
		return err
	}
	locations, err := readList(in, "\nEnter locations (comma-separated, e.g. 'Dublin, Cork'):")
	if err != nil {
		return err
	}
	maxResults := readCount(in)
	industry := selectIndustry(in)

	fmt.Println("\nSearch parameters:")
	fmt.Println("Job titles :", strings.Join(jobTitles, ", "))
	fmt.Println("Locations  :", strings.Join(locations, ", "))
	fmt.Println("Max results:", maxResults)
	fmt.Println("Industry   :", industry)

	fmt.Print("\nStart scraping? (y/N): ")
	confirm, _ := in.ReadString('\n')
	if c := strings.ToLower(strings.TrimSpace(confirm)); c != "y" && c != "yes" {
		fmt.Println("Cancelled.")
		return nil
	}

	runner, err := NewRunner()
	if err != nil {
		return fmt.Errorf("starting run: %w", err)
	}
	defer runner.Close()

	// Ctrl-C requests a stop; collected profiles are kept.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Println("\nStop requested, finishing current step...")
		runner.Stop()
	}()

	req := SearchRequest{
		JobTitles:  jobTitles,
		Locations:  locations,
		MaxResults: maxResults,
		Industry:   industry,
	}

	fmt.Println("\nScraping started. Press Ctrl-C to stop and keep partial results.")
	start := time.Now()

	profiles, err := runner.Run(context.Background(), req, printProgress)
	fmt.Println()
	if err != nil {
		return err
	}
	fmt.Printf("Run took %s.\n", time.Since(start).Round(time.Second))

	if len(profiles) == 0 {
		fmt.Println("No profiles found. Try broader job titles or locations.")
		return nil
	}

	fmt.Printf("\nFound %d profiles. Preview:\n", len(profiles))
	for i := 0; i < len(profiles) && i < 5; i++ {
		p := profiles[i]
		fmt.Printf("%2d) %s - %s\n    %s | %s\n    %s\n",
			i+1, p.Name, p.Title, p.Company, p.Location, p.LinkedInURL)
		if p.Email != "" {
			fmt.Println("    Email:", p.Email)
		}
	}

	meta := export.Metadata{
		SearchDate: start,
		JobTitles:  jobTitles,
		Locations:  locations,
		Requested:  maxResults,
		Industry:   industry,
	}

	xlsxPath := export.ResultsFilename(jobTitles[0], "xlsx")
	if err := export.WriteExcel(xlsxPath, profiles, meta); err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}
	fmt.Println("\nSaved spreadsheet:", xlsxPath)

	csvPath := export.ResultsFilename(jobTitles[0], "csv")
	if err := export.WriteCSV(csvPath, profiles); err != nil {
		fmt.Println("CSV export failed:", err)
	} else {
		fmt.Println("Saved CSV       :", csvPath)
	}

	reportPath := export.ResultsFilename(jobTitles[0], "docx")
	if err := export.WriteReport(reportPath, profiles, meta); err != nil {
		fmt.Println("Report export failed:", err)
	} else {
		fmt.Println("Saved report    :", reportPath)
	}

	stats := export.Summarize(profiles)
	fmt.Printf("\n%d profiles, %d with email (%s), %d companies.\n",
		stats.TotalProfiles, stats.WithEmail, stats.EmailRate(), stats.UniqueCompanies)
	return nil
}

func printProgress(current, total int, status string) {
	pct := 0
	if total > 0 {
		pct = current * 100 / total
	}
	if len(status) > 60 {
		status = status[:57] + "..."
	}
	fmt.Printf("\r\033[KProgress: %d/%d (%d%%) - %s", current, total, pct, status)
}

func readList(r *bufio.Reader, prompt string) ([]string, error) {
	for {
		fmt.Println(prompt)
		fmt.Print("> ")
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}

		var out []string
		for _, part := range strings.Split(line, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out, nil
		}
		fmt.Println("At least one value is required. Please try again.")
	}
}

func readCount(r *bufio.Reader) int {
	for {
		fmt.Printf("\nHow many profiles? (1-%d, default %d): ", MaxResultsCap, DefaultMaxResults)
		line, _ := r.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return DefaultMaxResults
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > MaxResultsCap {
			fmt.Printf("Please enter a number between 1 and %d.\n", MaxResultsCap)
			continue
		}
		return n
	}
}

func selectIndustry(r *bufio.Reader) string {
	for {
		fmt.Println("\nIndustry filter (informational only):")
		for i, ind := range Industries {
			fmt.Printf("%d) %s\n", i+1, ind)
		}
		fmt.Print("> ")

		choice, _ := r.ReadString('\n')
		choice = strings.TrimSpace(choice)
		if choice == "" {
			return Industries[0]
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(Industries) {
			fmt.Printf("Invalid choice. Please select 1-%d.\n", len(Industries))
			continue
		}
		return Industries[n-1]
	}
}
