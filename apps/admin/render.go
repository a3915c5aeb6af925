package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/trezcool/tutorai/core/school"
)

// isTerminalFunc reports whether w is an interactive terminal. Tables are printed to
// terminals, JSON to everything else.
var isTerminalFunc = func(w io.Writer) bool { // mockable
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (cli *commandLine) renderJSON(v interface{}) error {
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (cli *commandLine) table(header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func (cli *commandLine) renderStudents() error {
	if !isTerminalFunc(cli.out) {
		return cli.renderJSON(cli.view.Students)
	}
	tw := cli.table("ID", "NAME", "EMAIL", "GRADE", "COURSES")
	for _, s := range cli.view.Students {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Email, s.Grade, cli.courseTitles(s.CourseIDs))
	}
	return tw.Flush()
}

func (cli *commandLine) renderCourses() error {
	if !isTerminalFunc(cli.out) {
		return cli.renderJSON(cli.view.Courses)
	}
	tw := cli.table("ID", "TITLE", "DESCRIPTION", "STUDENTS", "TASKS")
	for _, c := range cli.view.Courses {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", c.ID, c.Title, c.Description, len(c.StudentIDs), len(c.TaskIDs))
	}
	return tw.Flush()
}

func (cli *commandLine) renderTasks() error {
	if !isTerminalFunc(cli.out) {
		return cli.renderJSON(cli.view.Tasks)
	}
	tw := cli.table("ID", "TITLE", "COURSE", "DUE", "STATUS", "ASSIGNED TO")
	for _, t := range cli.view.Tasks {
		status := "Pending"
		if t.Completed {
			status = "Completed"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, cli.view.CourseTitle(t.CourseID), t.DueDate, status, cli.studentNames(t.StudentIDs))
	}
	return tw.Flush()
}

func (cli *commandLine) renderChat() error {
	if !isTerminalFunc(cli.out) {
		return cli.renderJSON(cli.view.Chat)
	}
	for _, m := range cli.view.Chat {
		fmt.Fprintln(cli.out, m)
	}
	return nil
}

func (cli *commandLine) courseTitles(ids school.IDs) string {
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		titles = append(titles, cli.view.CourseTitle(id))
	}
	return strings.Join(titles, ", ")
}

func (cli *commandLine) studentNames(ids school.IDs) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, cli.view.StudentName(id))
	}
	return strings.Join(names, ", ")
}
