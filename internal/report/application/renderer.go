package application

import (
	"fmt"
	"strconv"
	"strings"

	analyticsdomain "aalsales/internal/analytics/domain"
	"aalsales/internal/report/domain"
)

// RenderMarkdown rend le rapport en markdown, dans la structure du rapport
// trimestriel AAL: résumé, vue d'ensemble, constats clés, recommandations,
// statistiques, visualisations.
func RenderMarkdown(report *domain.Report) []byte {
	var b strings.Builder
	b.Grow(4 * 1024)

	b.WriteString("# " + report.Title() + "\n\n")

	b.WriteString("## Executive Summary\n")
	b.WriteString("This report analyzes the sales data for AAL's ")
	b.WriteString(strings.ToLower(report.Period().Label()))
	b.WriteString(", providing insights into state-wise and group-wise performance.\n\n")

	b.WriteString("## Data Overview\n")
	b.WriteString("- Total Records: " + strconv.Itoa(report.RecordCount()) + "\n")
	b.WriteString("- Time Period: " + report.Period().Label() + "\n")
	b.WriteString("- States Analyzed: " + strconv.Itoa(report.StateCount()) + "\n")
	b.WriteString("- Customer Groups: " + strconv.Itoa(report.GroupCount()) + "\n\n")

	b.WriteString("## Key Findings\n\n")

	b.WriteString("### State Performance\n")
	b.WriteString("#### Top Performing States:\n")
	writeRankTable(&b, "State", "Sales", report.TopStates())

	b.WriteString("\n#### Lowest Performing States:\n")
	writeRankTable(&b, "State", "Sales", report.BottomStates())

	b.WriteString("\n### Customer Group Analysis\n")
	b.WriteString("Group-wise sales distribution:\n")
	writeRankTable(&b, "Group", "Sales", report.GroupRanking())

	if len(report.PeakTimes()) > 0 {
		b.WriteString("\n### Peak Sales Times\n")
		writeRankTable(&b, "Time", "Average Sales", report.PeakTimes())
	}

	b.WriteString("\n## Recommendations\n")
	b.WriteString("1. Focus Areas:\n")
	b.WriteString("   - Implement targeted marketing in low-performing states\n")
	b.WriteString("   - Develop special promotions for underperforming customer groups\n")
	b.WriteString("   - Optimize inventory based on state-wise demand\n\n")
	b.WriteString("2. Growth Strategies:\n")
	b.WriteString("   - Analyze and replicate successful practices from top-performing states\n")
	b.WriteString("   - Develop customer retention programs\n")
	b.WriteString("   - Enhance online sales channels\n\n")

	b.WriteString("## Statistical Analysis\n")
	b.WriteString("### Sales Statistics\n")
	writeSummaryTable(&b, report.SalesSummary())

	b.WriteString("\n## Visualizations\n")
	b.WriteString("The following visualizations have been generated and saved in the 'figures' folder:\n")
	for i, fig := range report.Figures() {
		b.WriteString(strconv.Itoa(i+1) + ". " + fig.Title + "\n")
	}

	return []byte(b.String())
}

// writeRankTable écrit un tableau markdown à deux colonnes (clé, valeur)
func writeRankTable(b *strings.Builder, keyHeader, valueHeader string, entries []analyticsdomain.RankEntry) {
	b.WriteString("| " + keyHeader + " | " + valueHeader + " |\n")
	b.WriteString("|-------|-------|\n")
	for _, e := range entries {
		fmt.Fprintf(b, "| %s | %.2f |\n", e.Key(), e.Value())
	}
}

// writeSummaryTable écrit les statistiques descriptives, dans l'ordre de
// présentation de pandas describe()
func writeSummaryTable(b *strings.Builder, s *analyticsdomain.StatisticsSummary) {
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(b, "| count | %.2f |\n", float64(s.Count()))
	fmt.Fprintf(b, "| mean | %.2f |\n", s.Mean())
	fmt.Fprintf(b, "| std | %.2f |\n", s.StdDev())
	fmt.Fprintf(b, "| min | %.2f |\n", s.Min())
	fmt.Fprintf(b, "| 25%% | %.2f |\n", s.Percentile25())
	fmt.Fprintf(b, "| 50%% | %.2f |\n", s.Median())
	fmt.Fprintf(b, "| 75%% | %.2f |\n", s.Percentile75())
	fmt.Fprintf(b, "| max | %.2f |\n", s.Max())
}
