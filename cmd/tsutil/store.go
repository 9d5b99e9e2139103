package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func buildStoreCmd(a *app) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Manage series kept in the local database",
	}

	storeCmd.AddCommand(
		&cobra.Command{
			Use:   "put NAME FILE",
			Short: "Import a CSV file as a named series",
			Args:  cobra.ExactArgs(2),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.runStorePut(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "get NAME",
			Short: "Write a stored series as CSV",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				series, err := a.loadSeries(storeScheme + args[0])
				if err != nil {
					return err
				}
				return writeSeries(cmd.OutOrStdout(), "", series)
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List stored series",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.runStoreList(cmd)
			},
		},
		&cobra.Command{
			Use:   "rm NAME",
			Short: "Delete a stored series",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				store, err := a.openStore()
				if err != nil {
					return err
				}
				defer store.Close()

				return store.Delete(args[0])
			},
		},
	)

	return storeCmd
}

func (a *app) runStorePut(name, file string) error {
	series, err := a.loadSeries(file)
	if err != nil {
		return err
	}
	series.Name = name

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(series); err != nil {
		return err
	}

	a.log.WithField("series", name).Infof("stored %d points", series.Len())
	return nil
}

func (a *app) runStoreList(cmd *cobra.Command) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	names, err := store.Names()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Name", "Points", "Datetime"})

	for _, name := range names {
		series, err := store.Load(name)
		if err != nil {
			return err
		}
		table.Append([]string{name, strconv.Itoa(series.Len()), strconv.FormatBool(series.Datetime)})
	}

	table.Render()
	return nil
}
