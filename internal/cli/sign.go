package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/pricing"
	"github.com/rzacher/sitebook/internal/report"
)

type SignQueueCmd struct{}

func (c *SignQueueCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}
	projects, err := ctx.Store.GetProjects()
	if err != nil {
		return err
	}

	shown := 0
	for _, e := range estimates {
		if e.Status != models.EstimateSent || e.SignatureData != "" {
			continue
		}
		shown++
		project := ""
		if e.ProjectID != "" {
			project = models.ProjectName(e.ProjectID, projects)
		}
		fmt.Printf("%s  %-20s %12s  %s\n",
			shortID(e.ID), e.ClientName,
			report.Currency(pricing.GrandTotal(e.LineItems)), project)
	}
	if shown == 0 {
		fmt.Println("No estimates waiting for signature")
	}
	return nil
}

type SignCmd struct {
	ID     string `arg:"" help:"Estimate ID (or unique prefix)."`
	Signer string `short:"s" help:"Signer name (defaults to the client name)."`
	Email  string `short:"e" help:"Signer email (defaults to the client email)."`
	Data   string `short:"d" help:"Opaque signature payload." default:"signed-via-cli"`
}

func (c *SignCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}

	est, err := findEstimate(c.ID, estimates)
	if err != nil {
		return err
	}
	if est.SignatureData != "" {
		return fmt.Errorf("estimate for %s is already signed", est.ClientName)
	}

	signer := c.Signer
	if signer == "" {
		signer = est.ClientName
	}
	email := c.Email
	if email == "" {
		email = est.ClientEmail
	}

	now := nowStamp()
	sig := models.Signature{
		ID:            uuid.New().String(),
		EstimateID:    est.ID,
		SignerName:    signer,
		SignerEmail:   email,
		SignatureData: c.Data,
		SignedAt:      now,
		IPAddress:     "127.0.0.1",
	}

	signatures, err := ctx.Store.GetSignatures()
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveSignatures(append(signatures, sig)); err != nil {
		return err
	}

	est.Status = models.EstimateApproved
	est.SignatureData = c.Data
	est.SignedAt = now
	est.UpdatedAt = now
	if err := ctx.Store.SaveEstimates(estimates); err != nil {
		return err
	}

	fmt.Printf("✓ Estimate for %s signed by %s\n", est.ClientName, signer)
	fmt.Printf("Total: %s\n", report.Currency(pricing.GrandTotal(est.LineItems)))
	return nil
}

type SignListCmd struct{}

func (c *SignListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	signatures, err := ctx.Store.GetSignatures()
	if err != nil {
		return err
	}
	estimates, err := ctx.Store.GetEstimates()
	if err != nil {
		return err
	}

	if len(signatures) == 0 {
		fmt.Println("No signatures recorded")
		return nil
	}

	for _, s := range signatures {
		fmt.Printf("%s  %-20s %-24s %s\n",
			shortID(s.ID), s.SignerName,
			models.EstimateName(s.EstimateID, estimates), s.SignedAt)
	}
	return nil
}
