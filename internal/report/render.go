// Package report renders read-only printable documents and summaries:
// the estimate proposal, punch-list sheets, and the financial overview.
// Output goes to stdout and is meant to be piped to a printer or file;
// no binary PDF is produced. All totals come from the pricing package
// so printed numbers always match the editor and the signing flow.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/pricing"
	"github.com/rzacher/sitebook/internal/punch"
)

// Currency formats a dollar amount with two decimals. Rounding happens
// here, at display time, never before totals are summed.
func Currency(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 2)
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}

func pct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

// EstimateDocument renders the printable estimate proposal.
func EstimateDocument(e models.Estimate, settings models.AppSettings) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(settings.CompanyName) + "\n")
	if settings.Address != "" {
		b.WriteString(faintStyle.Render(settings.Address) + "\n")
	}
	if settings.Phone != "" || settings.Email != "" {
		b.WriteString(faintStyle.Render(strings.TrimSpace(settings.Phone+"  "+settings.Email)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Estimate") + "\n")
	fmt.Fprintf(&b, "Prepared for: %s", e.ClientName)
	if e.ClientEmail != "" {
		fmt.Fprintf(&b, " <%s>", e.ClientEmail)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Project type: %s", e.ProjectType)
	if e.SqFootage > 0 {
		fmt.Fprintf(&b, "  (%s sq ft)", humanize.Commaf(e.SqFootage))
	}
	b.WriteString("\n")
	if len(e.ScopeItems) > 0 {
		fmt.Fprintf(&b, "Scope: %s\n", strings.Join(e.ScopeItems, ", "))
	}
	fmt.Fprintf(&b, "Status: %s\n\n", e.Status)

	if len(e.LineItems) == 0 {
		b.WriteString(faintStyle.Render("No line items.") + "\n")
	} else {
		fmt.Fprintf(&b, "%-34s %-12s %6s %8s %10s %4s %12s\n",
			"Description", "Trade", "Hours", "Rate", "Material", "Qty", "Total")
		b.WriteString(strings.Repeat("-", 90) + "\n")
		for _, li := range e.LineItems {
			fmt.Fprintf(&b, "%-34s %-12s %6.1f %8s %10s %4.0f %12s\n",
				truncate(li.Description, 34), li.Trade.Label(), li.ManHours,
				Currency(li.LaborRate), Currency(li.MaterialCost), li.Quantity,
				Currency(pricing.LineTotal(li)))
		}
		b.WriteString(strings.Repeat("-", 90) + "\n")
		fmt.Fprintf(&b, "%76s %12s\n", "Labor subtotal:", Currency(pricing.LaborSubtotal(e.LineItems)))
		fmt.Fprintf(&b, "%76s %12s\n", "Material subtotal:", Currency(pricing.MaterialSubtotal(e.LineItems)))
		b.WriteString(totalStyle.Render(fmt.Sprintf("%76s %12s", "Grand total:", Currency(pricing.GrandTotal(e.LineItems)))) + "\n")
	}

	if e.Notes != "" {
		b.WriteString("\n" + sectionStyle.Render("Notes") + "\n" + e.Notes + "\n")
	}

	if e.SignedAt != "" {
		b.WriteString("\n" + faintStyle.Render("Signed "+e.SignedAt) + "\n")
	} else {
		b.WriteString("\n\nSignature: ____________________________    Date: ______________\n")
	}

	return docStyle.Render(b.String())
}

// PunchListDocument renders a printable punch list in canonical order,
// grouped by project.
func PunchListDocument(items []models.PunchItem, projects []models.Project, subs []models.SubContractor) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Punch List") + "\n\n")

	if len(items) == 0 {
		b.WriteString(faintStyle.Render("No punch items.") + "\n")
		return b.String()
	}

	sorted := punch.Sort(items)

	// Group while keeping canonical order within each project.
	seen := make(map[string]bool)
	var order []string
	grouped := make(map[string][]models.PunchItem)
	for _, item := range sorted {
		if !seen[item.ProjectID] {
			seen[item.ProjectID] = true
			order = append(order, item.ProjectID)
		}
		grouped[item.ProjectID] = append(grouped[item.ProjectID], item)
	}

	for _, projectID := range order {
		b.WriteString(sectionStyle.Render(models.ProjectName(projectID, projects)) + "\n")
		for _, item := range grouped[projectID] {
			marker := "  "
			if punch.IsOverdue(item.DueDate, item.Status) {
				marker = warnStyle.Render("! ")
			}
			fmt.Fprintf(&b, "%s[%-11s] %-8s %-14s %s\n", marker,
				item.Status, item.Priority, item.Trade.Label(), item.Description)
			loc := strings.TrimSpace(item.Unit + " " + item.Area)
			detail := loc
			if item.DueDate != "" {
				detail = strings.TrimSpace(detail + "  due " + item.DueDate)
			}
			detail = strings.TrimSpace(detail + "  " + models.SubName(item.AssignedTo, subs))
			if detail != "" {
				b.WriteString(faintStyle.Render("              "+detail) + "\n")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FinancialSummary renders the all-project budget overview.
func FinancialSummary(projects []models.Project) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Financial Overview") + "\n\n")

	var totalBudget, totalSpent float64
	for _, p := range projects {
		totalBudget += p.Budget
		totalSpent += p.Spent
	}

	fmt.Fprintf(&b, "Total budget:    %s\n", Currency(totalBudget))
	fmt.Fprintf(&b, "Total spent:     %s\n", Currency(totalSpent))
	fmt.Fprintf(&b, "Total remaining: %s\n", Currency(totalBudget-totalSpent))
	fmt.Fprintf(&b, "Utilization:     %.0f%%\n\n", pct(totalSpent, totalBudget))

	if len(projects) == 0 {
		b.WriteString(faintStyle.Render("No projects.") + "\n")
		return b.String()
	}

	fmt.Fprintf(&b, "%-36s %-10s %14s %14s %6s\n", "Project", "Status", "Budget", "Spent", "Used")
	b.WriteString(strings.Repeat("-", 84) + "\n")
	for _, p := range projects {
		used := pct(p.Spent, p.Budget)
		line := fmt.Sprintf("%-36s %-10s %14s %14s %5.0f%%",
			truncate(p.Name, 36), p.Status, Currency(p.Budget), Currency(p.Spent), used)
		if p.Spent > p.Budget {
			line = warnStyle.Render(line + "  over budget")
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// PunchSummary renders punch-item counts by status and by trade.
func PunchSummary(items []models.PunchItem) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Punch List Summary") + "\n\n")

	byStatus := make(map[models.PunchStatus]int)
	overdue := 0
	for _, item := range items {
		byStatus[item.Status]++
		if punch.IsOverdue(item.DueDate, item.Status) {
			overdue++
		}
	}

	for _, s := range models.AllPunchStatuses {
		fmt.Fprintf(&b, "%-12s %4d\n", s.Label()+":", byStatus[s])
	}
	fmt.Fprintf(&b, "%-12s %4d\n\n", "Overdue:", overdue)

	b.WriteString(sectionStyle.Render("By trade") + "\n")
	for _, t := range models.AllTrades {
		var open, closed int
		for _, item := range items {
			if item.Trade != t {
				continue
			}
			if item.Status == models.PunchResolved || item.Status == models.PunchVerified {
				closed++
			} else {
				open++
			}
		}
		if open+closed == 0 {
			continue
		}
		fmt.Fprintf(&b, "%-14s %3d open  %3d closed\n", t.Label(), open, closed)
	}

	return b.String()
}

// EstimateConversion renders estimate counts and values by status.
func EstimateConversion(estimates []models.Estimate) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Estimate Conversion") + "\n\n")

	var totalValue, approvedValue float64
	counts := make(map[models.EstimateStatus]int)
	for _, e := range estimates {
		total := pricing.GrandTotal(e.LineItems)
		totalValue += total
		counts[e.Status]++
		if e.Status == models.EstimateApproved {
			approvedValue += total
		}
	}

	for _, s := range models.AllEstimateStatuses {
		fmt.Fprintf(&b, "%-10s %4d\n", string(s)+":", counts[s])
	}
	fmt.Fprintf(&b, "\nTotal value:    %s\n", Currency(totalValue))
	fmt.Fprintf(&b, "Approved value: %s\n", Currency(approvedValue))

	return b.String()
}

// ProjectStatusOverview renders project counts per status.
func ProjectStatusOverview(projects []models.Project) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Project Status") + "\n\n")

	for _, s := range models.AllProjectStatuses {
		count := 0
		for _, p := range projects {
			if p.Status == s {
				count++
			}
		}
		fmt.Fprintf(&b, "%-12s %4d\n", string(s)+":", count)
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
