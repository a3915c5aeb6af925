package apiclient_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutorai/core/chat"
	"github.com/trezcool/tutorai/core/school"
	"github.com/trezcool/tutorai/services/apiclient"
	"github.com/trezcool/tutorai/tests"
)

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (*apiclient.Client, *school.Service) {
	baseURL, svc := testutil.StartAPI(t)
	return apiclient.New(baseURL+"/", 5*time.Second), svc
}

func TestClient_Students(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	students, err := client.Students(ctx)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "John Doe", students[0].Name)

	student, err := client.CreateStudent(ctx, school.NewStudent{Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 2, student.ID)
	assert.Equal(t, school.DefaultGrade, student.Grade)

	student, err = client.UpdateStudent(ctx, student.ID, school.UpdateStudent{Grade: strPtr("B")})
	require.NoError(t, err)
	assert.Equal(t, "Ann", student.Name)
	assert.Equal(t, "B", student.Grade)

	require.NoError(t, client.DeleteStudent(ctx, student.ID))
	_, err = client.Student(ctx, student.ID)
	assert.True(t, apiclient.IsNotFound(err))
}

func TestClient_Courses(t *testing.T) {
	client, svc := setup(t)
	ctx := context.Background()
	ann := testutil.CreateStudent(t, svc, "Ann", "a@x.com")

	course, err := client.CreateCourse(ctx, school.NewCourse{Title: "Physics", Description: "Forces"})
	require.NoError(t, err)

	msg, err := client.Enroll(ctx, course.ID, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Student enrolled successfully", msg)

	course, err = client.Course(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, school.IDs{ann.ID}, course.StudentIDs)

	msg, err = client.Unenroll(ctx, course.ID, ann.ID)
	require.NoError(t, err)
	assert.Equal(t, "Student unenrolled successfully", msg)

	_, err = client.Enroll(ctx, 99, ann.ID)
	assert.True(t, apiclient.IsNotFound(err))

	course, err = client.UpdateCourse(ctx, course.ID, school.UpdateCourse{Title: strPtr("Physics II")})
	require.NoError(t, err)
	assert.Equal(t, "Forces", course.Description)

	require.NoError(t, client.DeleteCourse(ctx, course.ID))
	courses, err := client.Courses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestClient_Tasks(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	task, err := client.CreateTask(ctx, school.NewTask{
		Title:       "Essay",
		Description: "500 words",
		CourseID:    1,
		StudentIDs:  school.IDs{1},
		DueDate:     "2024-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, task.ID)

	done := true
	task, err = client.UpdateTask(ctx, task.ID, school.UpdateTask{Completed: &done})
	require.NoError(t, err)
	assert.True(t, task.Completed)

	require.NoError(t, client.DeleteTask(ctx, task.ID))
	tasks, err := client.Tasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Algebra Homework", tasks[0].Title)
}

func TestClient_Errors(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	_, err := client.CreateStudent(ctx, school.NewStudent{Email: "bad"})
	require.Error(t, err)

	apiErr, ok := errors.Cause(err).(*apiclient.Error)
	require.True(t, ok, "unexpected error type %T", err)
	assert.Equal(t, http.StatusBadRequest, apiErr.Code)
	assert.Equal(t, map[string]string{
		"name":  "this field is required",
		"email": "email must be a valid email address",
	}, apiErr.Fields)
	assert.Equal(t, "email: email must be a valid email address; name: this field is required", apiErr.Message)

	_, err = client.Task(ctx, 42)
	require.Error(t, err)
	assert.Equal(t, "404 Not Found: task not found", err.Error())
}

func TestClient_Chat(t *testing.T) {
	client, _ := setup(t)

	reply, err := client.Chat(context.Background(), "How do I add a STUDENT?")
	require.NoError(t, err)
	assert.Equal(t, chat.Answer("student"), reply.Response)
	assert.NotEmpty(t, reply.Timestamp)
}

func TestClient_Unreachable(t *testing.T) {
	client := apiclient.New("http://127.0.0.1:1/api", time.Second)

	_, err := client.Students(context.Background())
	require.Error(t, err)
	assert.False(t, apiclient.IsNotFound(err))
}
