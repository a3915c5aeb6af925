// Package apiclient is a typed client for the TutorAI REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/tutorai/core"
	"github.com/trezcool/tutorai/core/chat"
	"github.com/trezcool/tutorai/core/school"
)

// Error is a non-2xx answer from the API.
type Error struct {
	Code    int
	Message string
	Fields  map[string]string // per-field validation messages, if any
}

func (err *Error) Error() string {
	return fmt.Sprintf("%d %s: %s", err.Code, http.StatusText(err.Code), err.Message)
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	apiErr, ok := errors.Cause(err).(*Error)
	return ok && apiErr.Code == http.StatusNotFound
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the API rooted at baseURL (e.g. http://localhost:3001/api).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func NewFromConfig(conf *core.Config) *Client {
	return New(conf.Client.BaseURL, conf.Client.Timeout)
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	return errors.Wrap(json.Unmarshal(data, out), "decoding response body")
}

// decodeError reads either {"error": "..."} or a map of field messages.
func decodeError(code int, data []byte) *Error {
	apiErr := &Error{Code: code, Message: http.StatusText(code)}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return apiErr
	}
	if msg, ok := fields["error"].(string); ok {
		apiErr.Message = msg
		return apiErr
	}

	apiErr.Fields = make(map[string]string, len(fields))
	msgs := make([]string, 0, len(fields))
	for name, v := range fields {
		msg := fmt.Sprint(v)
		apiErr.Fields[name] = msg
		msgs = append(msgs, name+": "+msg)
	}
	if len(msgs) > 0 {
		sort.Strings(msgs)
		apiErr.Message = strings.Join(msgs, "; ")
	}
	return apiErr
}

func idPath(resource string, id int) string {
	return fmt.Sprintf("/%s/%d", resource, id)
}

// Students

func (c *Client) Students(ctx context.Context) (students []school.Student, err error) {
	err = c.do(ctx, http.MethodGet, "/students", nil, &students)
	return students, err
}

func (c *Client) Student(ctx context.Context, id int) (student school.Student, err error) {
	err = c.do(ctx, http.MethodGet, idPath("students", id), nil, &student)
	return student, err
}

func (c *Client) CreateStudent(ctx context.Context, ns school.NewStudent) (student school.Student, err error) {
	err = c.do(ctx, http.MethodPost, "/students", ns, &student)
	return student, err
}

func (c *Client) UpdateStudent(ctx context.Context, id int, us school.UpdateStudent) (student school.Student, err error) {
	err = c.do(ctx, http.MethodPut, idPath("students", id), us, &student)
	return student, err
}

func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("students", id), nil, nil)
}

// Courses

func (c *Client) Courses(ctx context.Context) (courses []school.Course, err error) {
	err = c.do(ctx, http.MethodGet, "/courses", nil, &courses)
	return courses, err
}

func (c *Client) Course(ctx context.Context, id int) (course school.Course, err error) {
	err = c.do(ctx, http.MethodGet, idPath("courses", id), nil, &course)
	return course, err
}

func (c *Client) CreateCourse(ctx context.Context, nc school.NewCourse) (course school.Course, err error) {
	err = c.do(ctx, http.MethodPost, "/courses", nc, &course)
	return course, err
}

func (c *Client) UpdateCourse(ctx context.Context, id int, uc school.UpdateCourse) (course school.Course, err error) {
	err = c.do(ctx, http.MethodPut, idPath("courses", id), uc, &course)
	return course, err
}

func (c *Client) DeleteCourse(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("courses", id), nil, nil)
}

type messageResponse struct {
	Message string `json:"message"`
}

// Enroll returns the server's confirmation message.
func (c *Client) Enroll(ctx context.Context, courseID, studentID int) (string, error) {
	var resp messageResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/courses/%d/students/%d", courseID, studentID), nil, &resp)
	return resp.Message, err
}

func (c *Client) Unenroll(ctx context.Context, courseID, studentID int) (string, error) {
	var resp messageResponse
	err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/courses/%d/students/%d", courseID, studentID), nil, &resp)
	return resp.Message, err
}

// Tasks

func (c *Client) Tasks(ctx context.Context) (tasks []school.Task, err error) {
	err = c.do(ctx, http.MethodGet, "/tasks", nil, &tasks)
	return tasks, err
}

func (c *Client) Task(ctx context.Context, id int) (task school.Task, err error) {
	err = c.do(ctx, http.MethodGet, idPath("tasks", id), nil, &task)
	return task, err
}

func (c *Client) CreateTask(ctx context.Context, nt school.NewTask) (task school.Task, err error) {
	err = c.do(ctx, http.MethodPost, "/tasks", nt, &task)
	return task, err
}

func (c *Client) UpdateTask(ctx context.Context, id int, ut school.UpdateTask) (task school.Task, err error) {
	err = c.do(ctx, http.MethodPut, idPath("tasks", id), ut, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, idPath("tasks", id), nil, nil)
}

// Chat

func (c *Client) Chat(ctx context.Context, message string) (reply chat.Reply, err error) {
	err = c.do(ctx, http.MethodPost, "/chat", chat.Message{Message: message}, &reply)
	return reply, err
}
