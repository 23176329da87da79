package main

import (
	"fmt"

	"github.com/example/task-manager/client"
	"github.com/spf13/cobra"
)

var (
	titleFlag       string
	descriptionFlag string
	dueFlag         string
	statusFlag      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tasks, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show one task",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a task",
	Args:  cobra.NoArgs,
	RunE:  runAdd,
}

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

var rmCmd = &cobra.Command{
	Use:   "rm <task-id>",
	Short: "Delete a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	for _, cmd := range []*cobra.Command{addCmd, editCmd} {
		cmd.Flags().StringVar(&titleFlag, "title", "", "task title")
		cmd.Flags().StringVar(&descriptionFlag, "description", "", "task description")
		cmd.Flags().StringVar(&dueFlag, "due", "", "due date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&statusFlag, "status", "", "task status (New, Inprogress, Pending, Completed)")
	}

	rootCmd.AddCommand(listCmd, showCmd, addCmd, editCmd, rmCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := apiClient(true)
	if err != nil {
		return err
	}

	list := client.NewTaskList(c)
	if err := list.Fetch(); err != nil {
		return err
	}

	fmt.Println(list.Render())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := apiClient(true)
	if err != nil {
		return err
	}

	t, err := c.GetTask(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("id:          %s\n", t.ID)
	fmt.Printf("title:       %s\n", t.Title)
	fmt.Printf("description: %s\n", t.Description)
	fmt.Printf("status:      %s\n", t.Status)
	if !t.DueDate.IsZero() {
		fmt.Printf("due:         %s\n", t.DueDate.Format(client.DueDateLayout))
	}
	fmt.Printf("created:     %s\n", t.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	c, err := apiClient(true)
	if err != nil {
		return err
	}

	form := client.NewTaskForm(c, func() {
		fmt.Println("Task created")
	})
	form.SetField("title", titleFlag)
	form.SetField("description", descriptionFlag)
	form.SetField("dueDate", dueFlag)
	if statusFlag == "" {
		statusFlag = "New"
	}
	form.SetField("status", statusFlag)

	return submitForm(form)
}

func runEdit(cmd *cobra.Command, args []string) error {
	c, err := apiClient(true)
	if err != nil {
		return err
	}

	existing, err := c.GetTask(args[0])
	if err != nil {
		return err
	}

	form := client.NewEditForm(c, existing, func() {
		fmt.Println("Task updated")
	})
	for flag, field := range map[string]string{
		"title":       "title",
		"description": "description",
		"due":         "dueDate",
		"status":      "status",
	} {
		if cmd.Flags().Changed(flag) {
			value, _ := cmd.Flags().GetString(flag)
			form.SetField(field, value)
		}
	}

	return submitForm(form)
}

func runRemove(cmd *cobra.Command, args []string) error {
	c, err := apiClient(true)
	if err != nil {
		return err
	}

	if err := c.DeleteTask(args[0]); err != nil {
		return err
	}

	fmt.Println("Task deleted")
	return nil
}

// submitForm submits the form and reports field errors on stderr through
// the returned error.
func submitForm(form *client.TaskForm) error {
	if err := form.Submit(); err != nil {
		return err
	}
	if errs := form.Errors(); len(errs) > 0 {
		for _, fieldErr := range errs {
			fmt.Printf("%s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("task not saved")
	}
	return nil
}
