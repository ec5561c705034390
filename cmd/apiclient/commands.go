package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"taskhub/pkg/apiclient"

	"github.com/spf13/cobra"
)

type clientFactory func() *apiclient.Client

func jsonIndent(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// printJSON writes v indented, one value per call.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := jsonIndent(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func newUsersCmd(newClient clientFactory) *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect users",
	}

	usersCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every user",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				users, err := newClient().ListUsers()
				if err != nil {
					return err
				}
				return printJSON(cmd, users)
			},
		},
		&cobra.Command{
			Use:   "get <email>",
			Short: "Show the user with the given email",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				user, err := newClient().GetUser(args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, user)
			},
		},
	)

	return usersCmd
}

func newTasksCmd(newClient clientFactory) *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect tasks",
	}

	tasksCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every task",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				tasks, err := newClient().ListTasks()
				if err != nil {
					return err
				}
				return printJSON(cmd, tasks)
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show the task with the given id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid task id %q", args[0])
				}
				task, err := newClient().GetTask(id)
				if err != nil {
					return err
				}
				return printJSON(cmd, task)
			},
		},
	)

	return tasksCmd
}

func newStatusCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := newClient().Status()
			if err != nil {
				return err
			}
			return printJSON(cmd, status)
		},
	}
}
