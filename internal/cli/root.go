package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rzacher/sitebook/internal/inspect"
	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Inspector *inspect.Generator
}

func nowStamp() string {
	return time.Now().Format(time.RFC3339)
}

// confirm prompts for an explicit yes before destructive actions.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// shortID trims a UUID for list display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// matchID resolves a full ID or unique prefix against a set of IDs.
func matchID(arg string, ids []string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no record matches id %q", arg)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func parseTrade(s string) (models.Trade, error) {
	t, ok := models.ParseTrade(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return "", fmt.Errorf("invalid trade %q (one of: %s)", s, tradeNames())
	}
	return t, nil
}

func tradeNames() string {
	names := make([]string, len(models.AllTrades))
	for i, t := range models.AllTrades {
		names[i] = string(t)
	}
	return strings.Join(names, "|")
}

func parsePriority(s string) (models.Priority, error) {
	switch models.Priority(strings.ToLower(strings.TrimSpace(s))) {
	case models.PriorityLow:
		return models.PriorityLow, nil
	case models.PriorityMedium:
		return models.PriorityMedium, nil
	case models.PriorityHigh:
		return models.PriorityHigh, nil
	case models.PriorityUrgent:
		return models.PriorityUrgent, nil
	}
	return "", fmt.Errorf("invalid priority %q (low|medium|high|urgent)", s)
}

func parsePunchStatus(s string) (models.PunchStatus, error) {
	switch models.PunchStatus(strings.ToLower(strings.TrimSpace(s))) {
	case models.PunchOpen:
		return models.PunchOpen, nil
	case models.PunchInProgress:
		return models.PunchInProgress, nil
	case models.PunchResolved:
		return models.PunchResolved, nil
	case models.PunchVerified:
		return models.PunchVerified, nil
	}
	return "", fmt.Errorf("invalid status %q (open|in-progress|resolved|verified)", s)
}

func parseProjectStatus(s string) (models.ProjectStatus, error) {
	switch models.ProjectStatus(strings.ToLower(strings.TrimSpace(s))) {
	case models.ProjectPlanning:
		return models.ProjectPlanning, nil
	case models.ProjectActive:
		return models.ProjectActive, nil
	case models.ProjectOnHold:
		return models.ProjectOnHold, nil
	case models.ProjectCompleted:
		return models.ProjectCompleted, nil
	case models.ProjectArchived:
		return models.ProjectArchived, nil
	}
	return "", fmt.Errorf("invalid status %q (planning|active|on-hold|completed|archived)", s)
}

func parseEstimateStatus(s string) (models.EstimateStatus, error) {
	switch models.EstimateStatus(strings.ToLower(strings.TrimSpace(s))) {
	case models.EstimateDraft:
		return models.EstimateDraft, nil
	case models.EstimateSent:
		return models.EstimateSent, nil
	case models.EstimateApproved:
		return models.EstimateApproved, nil
	case models.EstimateRejected:
		return models.EstimateRejected, nil
	}
	return "", fmt.Errorf("invalid status %q (draft|sent|approved|rejected)", s)
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return nil
}
