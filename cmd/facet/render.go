package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facetkit/facet/internal/ui/elements"
)

type renderOptions struct {
	size  string
	tone  string
	class string
	glyph string
	attrs []string
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <element> [text...]",
		Short: "Render a single element to stdout",
		Long: `Render one element and print it. Elements: label, badge, chip, glyph,
delta, banner. A chip requires --tone; a delta takes its amount as text.
Exit code 2 signals a configuration error such as a value outside an axis
domain.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args[0], strings.Join(args[1:], " "))
		},
	}

	cmd.Flags().StringVar(&opts.size, "size", "", "Explicit size (sm, md, lg)")
	cmd.Flags().StringVar(&opts.tone, "tone", "", "Element tone")
	cmd.Flags().StringVar(&opts.class, "class", "", "Extra class tokens appended after the schema tokens")
	cmd.Flags().StringVar(&opts.glyph, "glyph", "", "Glyph name for a chip's leading mark")
	cmd.Flags().StringArrayVar(&opts.attrs, "attr", nil, "Forwarded attribute as key=value (repeatable)")

	return cmd
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, element, text string) error {
	log := flags.logger()

	manager, err := flags.manager(log)
	if err != nil {
		return fmt.Errorf("failed to locate themes: %w", err)
	}

	out := cmd.OutOrStdout()
	renderer, err := flags.renderer(manager, out)
	if err != nil {
		return err
	}

	el, err := buildElement(element, text, opts)
	if err != nil {
		return err
	}

	ctx := elements.Context{Renderer: renderer}
	view, err := el.Render(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, view)
	return nil
}

func buildElement(name, text string, opts *renderOptions) (elements.Element, error) {
	attrs, err := parseAttrs(opts.attrs)
	if err != nil {
		return nil, err
	}

	switch name {
	case "label":
		el := elements.NewLabel(text).WithSize(opts.size).WithTone(opts.tone).WithClass(opts.class)
		applyAttrs(attrs, el.WithAttr)
		return el, nil
	case "badge":
		el := elements.NewBadge(text).WithSize(opts.size).WithTone(opts.tone).WithClass(opts.class)
		applyAttrs(attrs, el.WithAttr)
		return el, nil
	case "chip":
		el := elements.NewChip(text).WithSize(opts.size).WithTone(opts.tone).WithClass(opts.class)
		if opts.glyph != "" {
			el = el.WithGlyph(opts.glyph)
		}
		applyAttrs(attrs, el.WithAttr)
		return el, nil
	case "glyph":
		el := elements.NewGlyph(text).WithSize(opts.size).WithTone(opts.tone).WithClass(opts.class)
		applyAttrs(attrs, el.WithAttr)
		return el, nil
	case "delta":
		amount, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("delta takes a numeric amount, got %q", text)
		}
		el := elements.NewDelta(amount).WithSize(opts.size).WithClass(opts.class)
		applyAttrs(attrs, el.WithAttr)
		return el, nil
	case "banner":
		el := elements.NewBanner(text).WithSize(opts.size).WithTone(opts.tone).WithClass(opts.class)
		applyAttrs(attrs, el.WithAttr)
		return el, nil
	default:
		return nil, fmt.Errorf("unknown element %q (label, badge, chip, glyph, delta, banner)", name)
	}
}

func parseAttrs(pairs []string) (map[string]string, error) {
	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("attribute %q is not key=value", pair)
		}
		attrs[key] = value
	}
	return attrs, nil
}

func applyAttrs[T any](attrs map[string]string, with func(key, value string) T) {
	for key, value := range attrs {
		with(key, value)
	}
}
