package cli

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/lexstat/zipfian/internal/logger"
	"github.com/lexstat/zipfian/internal/picker"
	"github.com/lexstat/zipfian/internal/present"
	"github.com/lexstat/zipfian/internal/textsource"
	"github.com/lexstat/zipfian/pkg/zipfian/compare"
	"github.com/lexstat/zipfian/pkg/zipfian/config"
	"github.com/lexstat/zipfian/pkg/zipfian/tokenize"
)

var (
	topFlag       int
	stopwordsFlag string
	dirFlag       string
	chartFlag     string
	noChartFlag   bool
	jsonFlag      bool
	keepGoingFlag bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Analyze documents and fit the Zipf constant",
	Long: `Analyzes the given text documents (or, with no arguments, lets you
pick from the configured directory), prints a per-document rank table,
a cross-document comparison, and renders a rank/frequency chart.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&topFlag, "top", "n", -1, "rank cutoff; 0 means no limit")
	analyzeCmd.Flags().StringVar(&stopwordsFlag, "stopwords", "", "YAML stopword list (default: built-in Russian set)")
	analyzeCmd.Flags().StringVar(&dirFlag, "dir", "", "directory scanned when no files are given")
	analyzeCmd.Flags().StringVar(&chartFlag, "chart", "", "chart output path (default: zipfian-<run-id>.png)")
	analyzeCmd.Flags().BoolVar(&noChartFlag, "no-chart", false, "skip chart rendering")
	analyzeCmd.Flags().BoolVar(&jsonFlag, "json", false, "output summaries as JSON")
	analyzeCmd.Flags().BoolVar(&keepGoingFlag, "keep-going", false, "continue past unreadable documents")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	runID := newRunID()
	logger.Info("analysis run %s", runID)

	files, err := resolveDocuments(cmd, cfg, args)
	if err != nil {
		if errors.Is(err, picker.ErrCancelled) {
			cmd.Println("No files selected.")
			return nil
		}
		return err
	}

	terms, err := loadStopwordTerms(cfg.StopwordsPath)
	if err != nil {
		return fmt.Errorf("load stopwords: %w", err)
	}

	policy := compare.FailFast
	if cfg.KeepGoing {
		policy = compare.SkipAndContinue
	}

	comparator, err := compare.New(tokenize.NewTokenizer(terms), cfg.TopN, policy)
	if err != nil {
		return err
	}

	summaries, err := comparator.Compare(textsource.New(), files)
	if err != nil {
		return err
	}

	if jsonFlag {
		return writeJSON(cmd.OutOrStdout(), summaries)
	}

	p := present.New(cmd.OutOrStdout())
	for _, s := range summaries {
		p.Document(s)
	}
	p.Comparison(summaries)

	if noChartFlag {
		return nil
	}
	path := chartFlag
	if path == "" {
		path = filepath.Join(cfg.ChartDir, fmt.Sprintf("zipfian-%s.png", runID))
	}
	if err := present.RenderChart(summaries, path); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	cmd.Printf("\nChart written to %s\n", path)
	return nil
}

// resolveConfig loads the file/env config and applies flag overrides.
// Flags win over the environment, which wins over the file.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("top") {
		cfg.TopN = topFlag
	}
	if stopwordsFlag != "" {
		cfg.StopwordsPath = stopwordsFlag
	}
	if dirFlag != "" {
		cfg.Dir = dirFlag
	}
	if keepGoingFlag {
		cfg.KeepGoing = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDocuments returns the files to analyze: the explicit
// arguments, or an interactive selection over the configured
// directory. With no arguments the rank cutoff is also prompted for
// unless --top was given.
func resolveDocuments(cmd *cobra.Command, cfg *config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	files := textsource.ListDocuments(cfg.Dir)
	if len(files) == 0 {
		return nil, fmt.Errorf("no documents found in %q; pass files explicitly or put .txt files there", cfg.Dir)
	}

	chosen, err := picker.ChooseDocuments(files)
	if err != nil {
		return nil, err
	}

	if !cmd.Flags().Changed("top") {
		topN, err := picker.PromptTopN(cfg.TopN)
		if err != nil {
			return nil, err
		}
		cfg.TopN = topN
	}
	return chosen, nil
}

// loadStopwordTerms returns the configured stopword list, falling back
// to the built-in Russian set.
func loadStopwordTerms(path string) ([]string, error) {
	if path == "" {
		return tokenize.DefaultRussianStopwords(), nil
	}
	sw, err := config.LoadStopwords(path)
	if err != nil {
		return nil, err
	}
	return sw.Terms, nil
}

func newRunID() string {
	return ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String()
}

// JSON shapes for --json output.
type summaryJSON struct {
	Name         string     `json:"name"`
	TotalTokens  int        `json:"total_tokens"`
	UniqueTokens int        `json:"unique_tokens"`
	TopN         int        `json:"top_n"`
	C            float64    `json:"c"`
	SSE          float64    `json:"sse"`
	Words        []wordJSON `json:"words"`
	Error        string     `json:"error,omitempty"`
}

type wordJSON struct {
	Rank        int     `json:"rank"`
	Word        string  `json:"word"`
	Count       int     `json:"count"`
	Theoretical float64 `json:"theoretical"`
}

func writeJSON(w io.Writer, summaries []compare.DocumentSummary) error {
	out := make([]summaryJSON, 0, len(summaries))
	for _, s := range summaries {
		sj := summaryJSON{
			Name:         s.Name,
			TotalTokens:  s.TotalTokens,
			UniqueTokens: s.UniqueTokens,
			TopN:         s.TopN,
			C:            s.Fit.C,
			SSE:          s.Fit.SSE,
			Words:        make([]wordJSON, 0, len(s.Items)),
		}
		if s.Err != nil {
			sj.Error = s.Err.Error()
		}
		for i, it := range s.Items {
			sj.Words = append(sj.Words, wordJSON{
				Rank:        it.Rank,
				Word:        it.Token,
				Count:       it.Count,
				Theoretical: s.Fit.Theoretical[i],
			})
		}
		out = append(out, sj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
