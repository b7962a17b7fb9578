package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nextlevelbuilder/dayclaw/internal/store"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect the sender state store",
	}
	cmd.AddCommand(usersListCmd())
	cmd.AddCommand(usersShowCmd())
	return cmd
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known senders",
		Run: func(cmd *cobra.Command, args []string) {
			st := openStoreOrDie()
			doc := st.Snapshot()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SENDER\tNOTES\tTODOS\tPLAN DAYS\tMEMORY")
			for _, id := range st.SenderIDs() {
				rec := doc.Users[id]
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
					id, len(rec.Notes), len(rec.Todos), len(rec.Plans), len(rec.Memory))
			}
			w.Flush()
		},
	}
}

func usersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [senderId]",
		Short: "Print one sender's record as JSON",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			st := openStoreOrDie()
			rec, ok := st.Snapshot().Users[args[0]]
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown sender %s\n", args[0])
				os.Exit(1)
			}
			out, _ := json.MarshalIndent(rec, "", "  ")
			fmt.Println(string(out))
		},
	}
}

func openStoreOrDie() *store.Store {
	cfg := loadConfig()
	backend, err := buildBackend(cfg)
	if err == nil {
		var st *store.Store
		st, err = store.Open(context.Background(), backend)
		if err == nil {
			return st
		}
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
	return nil
}
