package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
	FormatCSV   OutputFormat = "csv"
	FormatYAML  OutputFormat = "yaml"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	case FormatCSV:
		return formatCSV(resp)
	case FormatYAML:
		return formatYAML(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

func formatYAML(resp interface{}) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *AnalyzeResponseCLI:
		return formatAnalyzeHuman(v), nil
	case *HistoryResponseCLI:
		return formatHistoryHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

func formatAnalyzeHuman(resp *AnalyzeResponseCLI) string {
	var b strings.Builder

	b.WriteString("Prover recommendation per source file\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	b.WriteString(fmt.Sprintf("Reports analyzed: %d\n", resp.ReportCount))
	b.WriteString(fmt.Sprintf("Files ranked: %d\n", resp.TotalFiles))
	if resp.RunID != "" {
		b.WriteString(fmt.Sprintf("Run: %s\n", resp.RunID))
	}
	b.WriteString("\n")

	for _, f := range resp.Files {
		b.WriteString(fmt.Sprintf("%s\n", f.Name))
		for i, p := range f.Provers {
			b.WriteString(fmt.Sprintf("  %d. %-16s success %8.2fs  failed %8.2fs  max %6.2fs  steps %d\n",
				i+1, p.Prover, p.Stats.Success, p.Stats.Failed, p.Stats.MaxSuccess, p.Stats.MaxSteps))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatHistoryHuman(resp *HistoryResponseCLI) string {
	var b strings.Builder

	b.WriteString("Recorded analyze runs\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if len(resp.Runs) == 0 {
		b.WriteString("No runs recorded yet.")
		return b.String()
	}

	for _, r := range resp.Runs {
		digest := r.Digest
		if len(digest) > 12 {
			digest = digest[:12]
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", r.StartedAt.Format("2006-01-02 15:04:05"), r.ID))
		b.WriteString(fmt.Sprintf("  reports %d, files %d, provers %d, %dms, digest %s\n",
			r.ReportCount, r.FileCount, r.ProverCount, r.DurationMs, digest))
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatCSV(resp interface{}) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	switch v := resp.(type) {
	case *AnalyzeResponseCLI:
		_ = w.Write([]string{"file", "rank", "prover", "success", "failed", "maxSuccess", "maxSteps"})
		for _, f := range v.Files {
			for i, p := range f.Provers {
				_ = w.Write([]string{
					f.Name,
					strconv.Itoa(i + 1),
					p.Prover,
					formatSeconds(p.Stats.Success),
					formatSeconds(p.Stats.Failed),
					formatSeconds(p.Stats.MaxSuccess),
					strconv.FormatInt(p.Stats.MaxSteps, 10),
				})
			}
		}
	case *HistoryResponseCLI:
		_ = w.Write([]string{"id", "startedAt", "durationMs", "reports", "files", "provers", "digest"})
		for _, r := range v.Runs {
			_ = w.Write([]string{
				r.ID,
				r.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
				strconv.FormatInt(r.DurationMs, 10),
				strconv.Itoa(r.ReportCount),
				strconv.Itoa(r.FileCount),
				strconv.Itoa(r.ProverCount),
				r.Digest,
			})
		}
	default:
		return "", fmt.Errorf("csv format not supported for %T", resp)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 2, 64)
}
