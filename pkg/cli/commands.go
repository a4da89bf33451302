package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/entrhq/mnemo/pkg/memory"
	"github.com/entrhq/mnemo/pkg/ui"
)

func (a *app) recallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recall [query]",
		Short: "Show memory tiers, optionally only those containing query",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.Join(args, " ")
			rec, err := a.engine.Recall(cmd.Context(), q)
			if err != nil {
				return err
			}
			a.logger.Debugf("recall %q matched %v", q, rec.Tiers())
			return a.printJSON(rec)
		},
	}
}

func (a *app) rememberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remember <content...>",
		Short: "Append an entry to short-term session memory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usageError("please provide the content to remember")
				return nil
			}
			msg, err := a.manager.Remember(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.success(msg)
			return nil
		},
	}
}

func (a *app) consolidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "consolidate <content> [category]",
		Short: "Append an entry to long-term memory (preferences, habits or workflows)",
		Long: "Append an entry to a long-term tier. With two or more arguments the last\n" +
			"one is the category when it names a long-term tier; otherwise all arguments\n" +
			"are content and the entry goes to preferences.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usageError("please provide the content to consolidate")
				return nil
			}
			content, category := splitCategory(args)
			msg, err := a.manager.Consolidate(cmd.Context(), content, category)
			if err != nil {
				return err
			}
			a.success(msg)
			return nil
		},
	}
}

// splitCategory treats the last of two or more arguments as the category
// when it names a long-term tier; otherwise every argument is content.
func splitCategory(args []string) (content, category string) {
	if n := len(args); n >= 2 && memory.IsCategory(args[n-1]) {
		return strings.Join(args[:n-1], " "), args[n-1]
	}
	return strings.Join(args, " "), ""
}

func (a *app) forgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <pattern...>",
		Short: "Delete short-term lines containing pattern",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usageError("please provide the pattern to forget")
				return nil
			}
			msg, err := a.manager.Forget(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.success(msg)
			return nil
		},
	}
}

func (a *app) snapshotCommand() *cobra.Command {
	var copyOut bool
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write a snapshot of long-term memory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.snapshotBuilder().Build(cmd.Context())
			if err != nil {
				return err
			}
			a.success(fmt.Sprintf("memory snapshot written: %s", res.Path))
			fmt.Fprintln(a.out, ui.Hint(fmt.Sprintf("~%d tokens", res.Tokens)))

			if copyOut {
				if err := a.copy(res.Content); err != nil {
					a.logger.Warnf("clipboard copy failed: %v", err)
					fmt.Fprintln(a.errOut, ui.Error(fmt.Sprintf("could not copy snapshot to clipboard: %v", err)))
					return nil
				}
				a.success("snapshot copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&copyOut, "copy", false, "also copy the snapshot to the clipboard")
	return cmd
}

func (a *app) backlinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "backlink <note...>",
		Aliases: []string{"backlinks"},
		Short:   "List knowledge-base notes that link to a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usageError("please provide a note name")
				return nil
			}
			links, err := a.resolver.FindBacklinks(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.printJSON(links)
		},
	}
}

func (a *app) linkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "link <content> <note...>",
		Short: "Remember content in the session tier with a link to a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				a.usageError("please provide the content and a note name")
				return nil
			}
			msg, err := a.bridge.Link(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			a.success(msg)
			return nil
		},
	}
}

func (a *app) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query...>",
		Short: "Find knowledge-base notes containing query",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usageError("please provide a search query")
				return nil
			}
			matches, err := a.engine.SearchNotes(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.printJSON(matches)
		},
	}
}
