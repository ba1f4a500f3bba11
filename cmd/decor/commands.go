package decor

import (
	"fmt"

	"github.com/arthur-debert/decor/pkg/core"
	"github.com/arthur-debert/decor/pkg/cycle"
	"github.com/arthur-debert/decor/pkg/errors"
	"github.com/arthur-debert/decor/pkg/logging"
	"github.com/arthur-debert/decor/pkg/recipe"
	"github.com/arthur-debert/decor/pkg/registry"
	"github.com/arthur-debert/decor/pkg/scaffold"
	"github.com/arthur-debert/decor/pkg/ui/display"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func completePolicies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	_ = core.Initialize()
	var names []string
	for _, p := range registry.Policies() {
		names = append(names, p.Name())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func newDescribeCmd(a *app) *cobra.Command {
	var (
		shape  string
		steps  []string
		policy string
	)

	cmd := &cobra.Command{
		Use:     "describe",
		Short:   MsgDescribeShort,
		Long:    MsgDescribeLong,
		Example: MsgDescribeExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shape == "" {
				return errors.New(errors.ErrInvalidInput, MsgErrNoShape)
			}
			base, err := recipe.ParseShape(shape)
			if err != nil {
				return err
			}
			decorations, err := recipe.ParseSteps(steps)
			if err != nil {
				return err
			}

			log.Info().
				Str("shape", shape).
				Strs("decorators", steps).
				Str("policy", policy).
				Msg("Describing shape")

			res, err := core.Compose(core.Request{
				Shape:  base,
				Steps:  decorations,
				Policy: policy,
				Config: a.cfg,
			})
			if err != nil {
				return err
			}
			return a.render(cmd, &display.Composition{Result: res})
		},
	}

	cmd.Flags().StringVarP(&shape, "shape", "s", "", MsgFlagShape)
	cmd.Flags().StringArrayVarP(&steps, "decorate", "d", nil, MsgFlagDecorate)
	cmd.Flags().StringVarP(&policy, "policy", "p", "", MsgFlagPolicy)
	_ = cmd.RegisterFlagCompletionFunc("policy", completePolicies)

	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var policy string

	cmd := &cobra.Command{
		Use:     "render <recipe>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			logger := logging.WithFields(map[string]interface{}{"recipe": path, "policy": policy})
			logger.Info().Msg("Rendering recipe")

			r, err := recipe.Load(path)
			if err != nil {
				return err
			}
			req, err := r.Request(policy, a.cfg)
			if err != nil {
				return err
			}
			res, err := core.Compose(req)
			if err != nil {
				return errors.Wrapf(err, errors.GetErrorCode(err), "recipe %s", path).
					WithDetail("path", path)
			}
			return a.render(cmd, &display.Composition{Source: path, Result: res})
		},
	}

	cmd.Flags().StringVarP(&policy, "policy", "p", "", MsgFlagPolicy)
	_ = cmd.RegisterFlagCompletionFunc("policy", completePolicies)

	return cmd
}

func newPoliciesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "policies",
		Short:   MsgPoliciesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaultName := cycle.Default.Name()
			if a.cfg != nil {
				p, err := cycle.Parse(a.cfg.Policy.Default)
				if err != nil {
					return err
				}
				defaultName = p.Name()
			}
			return a.render(cmd, display.NewPolicyTable(defaultName))
		},
	}
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "kinds",
		Short:   MsgKindsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd, display.NewCatalog())
		},
	}
}

func newInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			report, err := scaffold.Init(cmd.Context(), scaffold.Options{
				Dir:    dir,
				Force:  force,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			text := fmt.Sprintf(MsgInitCreated, report.Dir)
			if dryRun {
				text = fmt.Sprintf(MsgInitDryRun, report.Dir)
			}
			return a.render(cmd, &display.Message{Text: text, Paths: report.Files})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	return cmd
}
