package inmemdb

import "github.com/trezcool/tutorai/core/school"

func (t *tx) CreateTask(task school.Task) (school.Task, error) {
	if err := t.beforeWrite(tasksTable); err != nil {
		return school.Task{}, err
	}

	tbl := t.db.task
	tbl.pkCount++
	task.ID = tbl.pkCount
	task = task.Clone()
	tbl.table[task.ID] = task
	return task.Clone(), nil
}

func (t *tx) QueryAllTasks() ([]school.Task, error) {
	tbl := t.db.task
	ids := make([]int, 0, len(tbl.table))
	for id := range tbl.table {
		ids = append(ids, id)
	}
	tasks := make([]school.Task, 0, len(ids))
	for _, id := range sortedIDs(ids) {
		tasks = append(tasks, tbl.table[id].Clone())
	}
	return tasks, nil
}

func (t *tx) GetTaskByID(id int) (school.Task, error) {
	if task, ok := t.db.task.table[id]; ok {
		return task.Clone(), nil
	}
	return school.Task{}, school.ErrTaskNotFound
}

// UpdateTask saves title, description, due date and completion; course and assignees are kept.
func (t *tx) UpdateTask(task school.Task) (school.Task, error) {
	origTask, ok := t.db.task.table[task.ID]
	if !ok {
		return school.Task{}, school.ErrTaskNotFound
	}
	if err := t.beforeWrite(tasksTable); err != nil {
		return school.Task{}, err
	}

	origTask.Title = task.Title
	origTask.Description = task.Description
	origTask.DueDate = task.DueDate
	origTask.Completed = task.Completed

	t.db.task.table[task.ID] = origTask
	return origTask.Clone(), nil
}

func (t *tx) SetTaskStudents(id int, studentIDs school.IDs) error {
	task, ok := t.db.task.table[id]
	if !ok {
		return school.ErrTaskNotFound
	}
	if err := t.beforeWrite(tasksTable); err != nil {
		return err
	}

	task.StudentIDs = studentIDs.Clone()
	t.db.task.table[id] = task
	return nil
}

func (t *tx) DeleteTask(id int) error {
	if _, ok := t.db.task.table[id]; !ok {
		return school.ErrTaskNotFound
	}
	if err := t.beforeWrite(tasksTable); err != nil {
		return err
	}

	delete(t.db.task.table, id)
	return nil
}

func (t *tx) CountTasks() int {
	return len(t.db.task.table)
}
