package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/trezcool/tutorai/core/school"
)

var (
	errHelp   = errors.New("help provided")
	errFailed = errors.New("request failed") // already logged by the view
)

type commandLine struct {
	view   *View
	out    io.Writer
	in     io.Reader
	loaded bool
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  list students|courses|tasks|chat                 - show a collection")
	fmt.Fprintln(cli.out, "  add student -name NAME -email EMAIL [-grade G]   - create a student")
	fmt.Fprintln(cli.out, "  add course -title T -description D               - create a course")
	fmt.Fprintln(cli.out, "  add task -title T -description D -course ID -due YYYY-MM-DD [-students 1,2]")
	fmt.Fprintln(cli.out, "  edit student|course|task -id ID [fields...]      - update the given fields")
	fmt.Fprintln(cli.out, "  rm student|course|task -id ID                    - delete an entity")
	fmt.Fprintln(cli.out, "  enroll -course ID -student ID                    - enroll a student")
	fmt.Fprintln(cli.out, "  unenroll -course ID -student ID                  - unenroll a student")
	fmt.Fprintln(cli.out, "  chat MESSAGE                                     - ask the tutoring assistant")
	fmt.Fprintln(cli.out, "  shell                                            - interactive mode")
}

// load fetches the collections once; later changes are picked up by re-fetches.
func (cli *commandLine) load(ctx context.Context) {
	if !cli.loaded {
		cli.view.Load(ctx)
		cli.loaded = true
	}
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()
	cli.load(ctx)

	switch args[1] {
	case "list":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.list(args[2])
	case "add":
		return cli.save(ctx, args[2:], false)
	case "edit":
		return cli.save(ctx, args[2:], true)
	case "rm":
		return cli.remove(ctx, args[2:])
	case "enroll", "unenroll":
		return cli.enrollment(ctx, args[1], args[2:])
	case "chat":
		msg := strings.Join(args[2:], " ")
		if strings.TrimSpace(msg) == "" {
			cli.printUsage()
			return errHelp
		}
		reply, ok := cli.view.SendChat(ctx, msg)
		if !ok {
			return errFailed
		}
		fmt.Fprintln(cli.out, reply.Text)
		return nil
	case "shell":
		return cli.shell()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) parse(fs *flag.FlagSet, args []string) (map[string]bool, error) {
	if err := fs.Parse(args); err != nil {
		return nil, errHelp
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set, nil
}

func (cli *commandLine) list(kind string) error {
	switch kind {
	case "students":
		return cli.renderStudents()
	case "courses":
		return cli.renderCourses()
	case "tasks":
		return cli.renderTasks()
	case "chat":
		return cli.renderChat()
	default:
		cli.printUsage()
		return errHelp
	}
}

// save handles "add" and "edit". When editing, only the flags given override the
// current values.
func (cli *commandLine) save(ctx context.Context, args []string, editing bool) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	kind := args[0]
	fs := cli.newFlagSet(kind)
	id := fs.Int("id", 0, "The id of the entity to edit.")

	var ok bool
	switch kind {
	case "student":
		name := fs.String("name", "", "The student's full name.")
		email := fs.String("email", "", "The student's email address.")
		grade := fs.String("grade", "", "The student's grade.")
		set, err := cli.parse(fs, args[1:])
		if err != nil {
			return err
		}
		if editing {
			if err := cli.checkEditID(fs, *id, cli.view.EditStudent(*id), kind); err != nil {
				return err
			}
		} else {
			cli.view.CancelStudent()
		}
		f := &cli.view.StudentForm
		if set["name"] {
			f.Name = *name
		}
		if set["email"] {
			f.Email = *email
		}
		if set["grade"] {
			f.Grade = *grade
		}
		ok = cli.view.SubmitStudent(ctx)
	case "course":
		title := fs.String("title", "", "The course title.")
		description := fs.String("description", "", "The course description.")
		set, err := cli.parse(fs, args[1:])
		if err != nil {
			return err
		}
		if editing {
			if err := cli.checkEditID(fs, *id, cli.view.EditCourse(*id), kind); err != nil {
				return err
			}
		} else {
			cli.view.CancelCourse()
		}
		f := &cli.view.CourseForm
		if set["title"] {
			f.Title = *title
		}
		if set["description"] {
			f.Description = *description
		}
		ok = cli.view.SubmitCourse(ctx)
	case "task":
		title := fs.String("title", "", "The task title.")
		description := fs.String("description", "", "The task description.")
		courseID := fs.Int("course", 0, "The id of the course the task belongs to (add only).")
		students := fs.String("students", "", "Comma separated ids of the assigned students (add only).")
		due := fs.String("due", "", "The due date (YYYY-MM-DD).")
		completed := fs.Bool("completed", false, "Whether the task is done (edit only).")
		set, err := cli.parse(fs, args[1:])
		if err != nil {
			return err
		}
		studentIDs, err := parseIDs(*students)
		if err != nil {
			return err
		}
		if editing {
			if err := cli.checkEditID(fs, *id, cli.view.EditTask(*id), kind); err != nil {
				return err
			}
		} else {
			cli.view.CancelTask()
		}
		f := &cli.view.TaskForm
		if set["title"] {
			f.Title = *title
		}
		if set["description"] {
			f.Description = *description
		}
		if set["course"] {
			f.CourseID = *courseID
		}
		if set["students"] {
			f.StudentIDs = studentIDs
		}
		if set["due"] {
			f.DueDate = *due
		}
		if set["completed"] {
			f.Completed = completed
		}
		ok = cli.view.SubmitTask(ctx)
	default:
		cli.printUsage()
		return errHelp
	}

	if !ok {
		return errFailed
	}
	verb := "created"
	if editing {
		verb = "updated"
	}
	fmt.Fprintf(cli.out, "%s %s\n", strings.Title(kind), verb)
	return nil
}

func (cli *commandLine) checkEditID(fs *flag.FlagSet, id int, found bool, kind string) error {
	if id == 0 {
		fs.Usage()
		return errHelp
	}
	if !found {
		return fmt.Errorf("%s %d not found", kind, id)
	}
	return nil
}

func (cli *commandLine) remove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}
	kind := args[0]
	fs := cli.newFlagSet(kind)
	id := fs.Int("id", 0, "The id of the entity to delete.")
	if _, err := cli.parse(fs, args[1:]); err != nil {
		return err
	}
	if *id == 0 {
		fs.Usage()
		return errHelp
	}

	var ok bool
	switch kind {
	case "student":
		ok = cli.view.DeleteStudent(ctx, *id)
	case "course":
		ok = cli.view.DeleteCourse(ctx, *id)
	case "task":
		ok = cli.view.DeleteTask(ctx, *id)
	default:
		cli.printUsage()
		return errHelp
	}
	if !ok {
		return errFailed
	}
	fmt.Fprintf(cli.out, "%s deleted\n", strings.Title(kind))
	return nil
}

func (cli *commandLine) enrollment(ctx context.Context, cmd string, args []string) error {
	fs := cli.newFlagSet(cmd)
	courseID := fs.Int("course", 0, "The course id.")
	studentID := fs.Int("student", 0, "The student id.")
	if _, err := cli.parse(fs, args); err != nil {
		return err
	}
	if *courseID == 0 || *studentID == 0 {
		fs.Usage()
		return errHelp
	}

	var msg string
	var ok bool
	if cmd == "enroll" {
		msg, ok = cli.view.Enroll(ctx, *courseID, *studentID)
	} else {
		msg, ok = cli.view.Unenroll(ctx, *courseID, *studentID)
	}
	if !ok {
		return errFailed
	}
	fmt.Fprintln(cli.out, msg)
	return nil
}

// parseIDs reads a comma separated list of ids.
func parseIDs(s string) (school.IDs, error) {
	ids := school.IDs{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = ids.Add(id)
	}
	return ids, nil
}
