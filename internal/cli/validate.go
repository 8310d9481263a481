package cli

import "fmt"

type ValidateCmd struct{}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := checkValidation(ctx); err != nil {
		return err
	}

	fmt.Println("✓ No conflicts found")
	return nil
}
