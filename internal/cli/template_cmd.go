package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Inspect workout templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := app.Templates.List(context.Background())
			if err != nil {
				return err
			}
			if len(templates) == 0 {
				fmt.Println("No templates.")
				return nil
			}
			for _, t := range templates {
				fmt.Printf("%s  %s\n", t.ID, t.Name)
			}
			return nil
		},
	}

	return cmd
}

func newTemplateShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show a template's exercise list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := app.Templates.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Template %s: %s\n", tmpl.ID, tmpl.Name)
			for _, ex := range tmpl.Exercises {
				fmt.Printf("  %s  %s\n", ex.Name, ex.Prescription)
			}
			return nil
		},
	}

	return cmd
}
