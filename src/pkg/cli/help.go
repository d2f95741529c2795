package cli

import "fmt"

// CommandHelp represents the structure of help information for a specific command.
type CommandHelp struct {
	Scope     string
	Operation string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Arguments []string
	Options   []string
	Examples  []string
}

// printHelp prints the help message based on the provided arguments
func (c *CLI) printHelp(args []string) {
	switch len(args) {
	case 0:
		c.showGeneralHelp()
	case 1:
		c.showScopeHelp(args[0])
	case 2:
		c.showOperationHelp(args[0], args[1])
	default:
		fmt.Println("Invalid help command. Use 'help [scope] [operation]'")
	}
}

// showGeneralHelp displays an overview of all available commands grouped by scope
func (c *CLI) showGeneralHelp() {
	fmt.Println("Command syntax: <scope> <operation> [arguments] [label:value options]")
	fmt.Println("\nAvailable commands:")
	currentScope := ""
	for _, cmd := range commandHelps {
		if cmd.Scope != currentScope {
			fmt.Printf("\n%s:\n", cmd.Scope)
			currentScope = cmd.Scope
		}
		fmt.Printf("  %-15s %s\n", cmd.Operation, cmd.ShortDesc)
	}
}

// showScopeHelp displays help information for all commands within a specific scope
func (c *CLI) showScopeHelp(scope string) {
	fmt.Printf("Commands for %s:\n\n", scope)
	for _, cmd := range commandHelps {
		if cmd.Scope == scope {
			fmt.Printf("%-15s %s\n", cmd.Operation, cmd.ShortDesc)
		}
	}
}

// showOperationHelp displays detailed help information for a specific operation within a scope
func (c *CLI) showOperationHelp(scope, operation string) {
	for _, cmd := range commandHelps {
		if cmd.Scope == scope && cmd.Operation == operation {
			fmt.Printf("Command: %s %s\n", scope, operation)
			fmt.Printf("Description: %s\n", cmd.LongDesc)
			fmt.Printf("Syntax: %s\n", cmd.Syntax)
			if len(cmd.Arguments) > 0 {
				fmt.Println("Arguments:")
				for _, arg := range cmd.Arguments {
					fmt.Printf("  %s\n", arg)
				}
			}
			if len(cmd.Options) > 0 {
				fmt.Println("Options:")
				for _, opt := range cmd.Options {
					fmt.Printf("  %s\n", opt)
				}
			}
			if len(cmd.Examples) > 0 {
				fmt.Println("Examples:")
				for _, ex := range cmd.Examples {
					fmt.Printf("  %s\n", ex)
				}
			}
			return
		}
	}
	fmt.Printf("No help found for %s %s\n", scope, operation)
}

// commandHelps is a slice of CommandHelp structs containing help information for all commands.
var commandHelps = []CommandHelp{
	{
		Scope:     "auth",
		Operation: "register",
		ShortDesc: "Create an account and log in",
		LongDesc:  "Creates a new account with the given username, email and password, then logs in as that account.",
		Syntax:    "auth register <username> <email> <password>",
		Arguments: []string{"username: The name of the new account", "email: The email address of the new account", "password: The password (at least 6 characters)"},
		Examples:  []string{"auth register sam sam@example.com hunter42"},
	},
	{
		Scope:     "auth",
		Operation: "login",
		ShortDesc: "Log in to an account",
		LongDesc:  "Logs in with a username or email address and the matching password.",
		Syntax:    "auth login <username|email> <password>",
		Arguments: []string{"username|email: The account's username or email address", "password: The account's password"},
		Examples:  []string{"auth login sam hunter42", "auth login sam@example.com hunter42"},
	},
	{
		Scope:     "auth",
		Operation: "logout",
		ShortDesc: "Log out of the current session",
		LongDesc:  "Logs out of the current session. The account itself is untouched.",
		Syntax:    "auth logout",
		Examples:  []string{"auth logout"},
	},
	{
		Scope:     "auth",
		Operation: "profile",
		ShortDesc: "Update the account profile",
		LongDesc:  "Changes the username or email of the logged-in account.",
		Syntax:    "auth profile [username:<name>] [email:<address>]",
		Options:   []string{"username: The new username", "email: The new email address"},
		Examples:  []string{"auth profile username:sammy", "auth profile email:sam@newmail.com"},
	},
	{
		Scope:     "auth",
		Operation: "whoami",
		ShortDesc: "Show the logged-in account",
		LongDesc:  "Displays the username, email and registration date of the logged-in account.",
		Syntax:    "auth whoami",
		Examples:  []string{"auth whoami"},
	},
	{
		Scope:     "memory",
		Operation: "add",
		ShortDesc: "Record a new memory",
		LongDesc:  "Records a new memory entry dated today unless a date option is given.",
		Syntax:    "memory add <title> [content] [date:<yyyy-mm-dd>] [category:<main/sub>] [importance:<1-5>] [tags:<a,b>] [emotions:<a,b>]",
		Arguments: []string{"title: The title of the memory", "content: (Optional) The body of the memory"},
		Options: []string{"date: The calendar day of the memory, defaults to today", "category: Main and sub category separated by a slash",
			"importance: Importance from 1 to 5, defaults to 3", "tags: Comma-separated tags", "emotions: Comma-separated emotions"},
		Examples: []string{"memory add \"First day at the lake\" \"We arrived at noon.\" category:personal/Hobbies importance:4 tags:summer,lake"},
	},
	{
		Scope:     "memory",
		Operation: "edit",
		ShortDesc: "Edit a memory written today",
		LongDesc:  "Edits an existing memory. Memories can only be edited on the day they were written.",
		Syntax:    "memory edit <id> [title:<t>] [content:<c>] [category:<main/sub>] [importance:<1-5>] [tags:<a,b>] [emotions:<a,b>]",
		Arguments: []string{"id: The id of the memory to edit"},
		Examples:  []string{"memory edit 4f2c importance:5", "memory edit 4f2c title:\"Better title\""},
	},
	{
		Scope:     "memory",
		Operation: "list",
		ShortDesc: "List all memories",
		LongDesc:  "Lists all memories, newest first.",
		Syntax:    "memory list",
		Examples:  []string{"memory list"},
	},
	{
		Scope:     "memory",
		Operation: "search",
		ShortDesc: "Search memories",
		LongDesc:  "Searches memory titles, content and tags for a term, optionally within one main category.",
		Syntax:    "memory search <term> [category:<main>]",
		Arguments: []string{"term: The text to search for"},
		Options:   []string{"category: Restrict the search to one main category"},
		Examples:  []string{"memory search lake", "memory search lake category:personal"},
	},
	{
		Scope:     "plan",
		Operation: "add",
		ShortDesc: "Create a daily plan",
		LongDesc:  "Creates the plan for a calendar day (today by default). Only one plan per day is allowed.",
		Syntax:    "plan add [date:<yyyy-mm-dd>] [tasks:<a,b>] [reflections:<text>] [tomorrow:<text>] [reminders:<a,b>]",
		Options: []string{"date: The calendar day, defaults to today", "tasks: Comma-separated task titles", "reflections: Free-form reflections",
			"tomorrow: Comma-separated plans for tomorrow", "reminders: Comma-separated reminders for tomorrow"},
		Examples: []string{"plan add tasks:\"Write report,Call dentist\"", "plan add date:2026-08-29 tasks:Groceries"},
	},
	{
		Scope:     "plan",
		Operation: "update",
		ShortDesc: "Update a daily plan",
		LongDesc:  "Replaces the given fields of an existing plan. Supplying tasks replaces the whole task list.",
		Syntax:    "plan update <id> [tasks:<a,b>] [reflections:<text>] [tomorrow:<text>] [reminders:<a,b>]",
		Arguments: []string{"id: The id of the plan to update"},
		Examples:  []string{"plan update 7a1e reflections:\"Productive day.\""},
	},
	{
		Scope:     "plan",
		Operation: "check",
		ShortDesc: "Toggle a task's completion",
		LongDesc:  "Toggles the completion state of one task in a plan.",
		Syntax:    "plan check <plan-id> <task-id>",
		Arguments: []string{"plan-id: The id of the plan", "task-id: The id of the task to toggle"},
		Examples:  []string{"plan check 7a1e 9c3b"},
	},
	{
		Scope:     "plan",
		Operation: "list",
		ShortDesc: "List daily plans",
		LongDesc:  "Lists this account's daily plans with task completion counts, newest first.",
		Syntax:    "plan list",
		Examples:  []string{"plan list"},
	},
	{
		Scope:     "plan",
		Operation: "today",
		ShortDesc: "Show today's plan",
		LongDesc:  "Displays today's plan in full, including tasks, reflections and reminders.",
		Syntax:    "plan today",
		Examples:  []string{"plan today"},
	},
	{
		Scope:     "project",
		Operation: "add",
		ShortDesc: "Create a new project",
		LongDesc:  "Creates a new project. The start date defaults to today and the status to planning.",
		Syntax:    "project add <name> [purpose] [status:<planning|active|paused|completed|cancelled>] [start:<yyyy-mm-dd>] [folder:<folder-id>]",
		Arguments: []string{"name: The name of the project", "purpose: (Optional) What the project is for"},
		Examples:  []string{"project add \"Garden shed\" \"Build a shed before autumn\" status:active"},
	},
	{
		Scope:     "project",
		Operation: "update",
		ShortDesc: "Update a project",
		LongDesc:  "Changes project fields. Use folder:none to unfile the project.",
		Syntax:    "project update <id> [name:<n>] [purpose:<p>] [status:<s>] [start:<date>] [end:<date>] [folder:<folder-id|none>]",
		Arguments: []string{"id: The id of the project to update"},
		Examples:  []string{"project update 2b8d status:completed end:2026-08-28", "project update 2b8d folder:none"},
	},
	{
		Scope:     "project",
		Operation: "list",
		ShortDesc: "List projects",
		LongDesc:  "Lists all projects, newest first, optionally narrowed to one folder. folder:none lists unfiled projects.",
		Syntax:    "project list [folder:<folder-id|none>]",
		Examples:  []string{"project list", "project list folder:none"},
	},
	{
		Scope:     "project",
		Operation: "stage",
		ShortDesc: "Add a stage to a project",
		LongDesc:  "Appends a stage to a project. New stages start as pending.",
		Syntax:    "project stage <project-id> <title> [description] [status:<pending|active|completed>] [start:<yyyy-mm-dd>]",
		Arguments: []string{"project-id: The id of the project", "title: The stage title", "description: (Optional) What the stage covers"},
		Examples:  []string{"project stage 2b8d \"Foundation\" \"Level ground and pour the slab\""},
	},
	{
		Scope:     "project",
		Operation: "challenge",
		ShortDesc: "Record a challenge in a stage",
		LongDesc:  "Records a challenge encountered in a stage, unsolved unless stated otherwise.",
		Syntax:    "project challenge <project-id> <stage-id> <problem> [solution:<text>] [effect:<text>] [status:<unsolved|solved>]",
		Arguments: []string{"project-id: The id of the project", "stage-id: The id of the stage", "problem: What went wrong"},
		Examples:  []string{"project challenge 2b8d 5e0a \"Ground slopes more than expected\" solution:\"Built a retaining edge\" status:solved"},
	},
	{
		Scope:     "folder",
		Operation: "add",
		ShortDesc: "Create a project folder",
		LongDesc:  "Creates a folder for grouping projects.",
		Syntax:    "folder add <name>",
		Arguments: []string{"name: The name of the folder"},
		Examples:  []string{"folder add \"House projects\""},
	},
	{
		Scope:     "folder",
		Operation: "rename",
		ShortDesc: "Rename a folder",
		LongDesc:  "Changes a folder's name. Project membership is unaffected.",
		Syntax:    "folder rename <id> <name>",
		Arguments: []string{"id: The id of the folder", "name: The new name"},
		Examples:  []string{"folder rename 8d1f \"Home projects\""},
	},
	{
		Scope:     "folder",
		Operation: "delete",
		ShortDesc: "Delete a folder",
		LongDesc:  "Deletes a folder. Projects filed under it become unfiled; no project is ever deleted.",
		Syntax:    "folder delete <id>",
		Arguments: []string{"id: The id of the folder to delete"},
		Examples:  []string{"folder delete 8d1f"},
	},
	{
		Scope:     "folder",
		Operation: "list",
		ShortDesc: "List folders",
		LongDesc:  "Lists all project folders in creation order.",
		Syntax:    "folder list",
		Examples:  []string{"folder list"},
	},
	{
		Scope:     "category",
		Operation: "list",
		ShortDesc: "List category groups",
		LongDesc:  "Lists the category groups and their subcategories used to classify memories.",
		Syntax:    "category list",
		Examples:  []string{"category list"},
	},
	{
		Scope:     "category",
		Operation: "add",
		ShortDesc: "Add a category group",
		LongDesc:  "Adds a new, empty category group.",
		Syntax:    "category add <group-name>",
		Arguments: []string{"group-name: The name of the new group"},
		Examples:  []string{"category add \"Creative work\""},
	},
	{
		Scope:     "category",
		Operation: "addsub",
		ShortDesc: "Add a subcategory",
		LongDesc:  "Adds a subcategory to an existing group.",
		Syntax:    "category addsub <group-id> <subcategory>",
		Arguments: []string{"group-id: The id of the group", "subcategory: The subcategory to add"},
		Examples:  []string{"category addsub personal Cooking"},
	},
	{
		Scope:     "category",
		Operation: "rmsub",
		ShortDesc: "Remove a subcategory",
		LongDesc:  "Removes a subcategory from a group. Existing memories keep their classification.",
		Syntax:    "category rmsub <group-id> <subcategory>",
		Arguments: []string{"group-id: The id of the group", "subcategory: The subcategory to remove"},
		Examples:  []string{"category rmsub personal Cooking"},
	},
	{
		Scope:     "export",
		Operation: "run",
		ShortDesc: "Export all data to a text file",
		LongDesc:  "Writes all memories, daily plans and projects into a timestamped text report in the export directory.",
		Syntax:    "export run",
		Examples:  []string{"export run"},
	},
	{
		Scope:     "export",
		Operation: "path",
		ShortDesc: "Show or change the export directory",
		LongDesc:  "Shows the current export directory, or persists a new one for future exports.",
		Syntax:    "export path [directory]",
		Arguments: []string{"directory: (Optional) The new export directory"},
		Examples:  []string{"export path", "export path /home/sam/daybook-exports"},
	},
	{
		Scope:     "system",
		Operation: "exit",
		ShortDesc: "Exit the program",
		LongDesc:  "Exits Daybook. All changes are already persisted. 'exit' on its own works too.",
		Syntax:    "system exit",
		Examples:  []string{"system exit", "exit"},
	},
	{
		Scope:     "system",
		Operation: "quit",
		ShortDesc: "Quit the program",
		LongDesc:  "Quits Daybook. Equivalent to 'system exit'.",
		Syntax:    "system quit",
		Examples:  []string{"system quit", "quit"},
	},
}
