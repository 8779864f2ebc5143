package db

import (
	"context"
	"database/sql"
	"time"

	"taskmanager/models"
)

// defines methods for task db operations
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Task, error)
}

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	query := `INSERT INTO tasks (id, title, description, status, priority, due_date, created_at)
	 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(
		ctx, query, task.ID, task.Title, task.Description, task.Status,
		nullPriority(task.Priority), nullDueDate(task.DueDate), task.CreatedAt)
	return err
}

// GetByID returns sql.ErrNoRows when no task with the given id exists.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT id, title, description, status, priority, due_date, created_at
	 FROM tasks WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanTask(row)
}

func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	// placeholders stay in appearance order, sqlite numbers $N by
	// first appearance rather than position
	query := `UPDATE tasks SET title = $1, description = $2, status = $3, priority = $4, due_date = $5
	 WHERE id = $6`

	res, err := r.db.ExecContext(
		ctx, query, task.Title, task.Description, task.Status,
		nullPriority(task.Priority), nullDueDate(task.DueDate), task.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns every task ordered by creation time, id as tiebreak,
// so callers always see a stable order.
func (r *TaskRepository) List(ctx context.Context) ([]*models.Task, error) {
	query := `SELECT id, title, description, status, priority, due_date, created_at
	 FROM tasks ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask maps one tasks row onto the model, NULL priority and
// due_date become the zero value and nil.
func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var desc, priority sql.NullString
	var dueDate sql.NullTime
	err := row.Scan(
		&task.ID, &task.Title, &desc, &task.Status, &priority, &dueDate, &task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Description = desc.String
	if priority.Valid {
		task.Priority = models.TaskPriority(priority.String)
	}
	if dueDate.Valid {
		d := dueDate.Time
		task.DueDate = &d
	}
	return task, nil
}

func nullPriority(p models.TaskPriority) sql.NullString {
	if p == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: string(p), Valid: true}
}

func nullDueDate(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
