package repository

import (
	"context"

	"todo_api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) List(ctx context.Context) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, content, creator FROM todos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodos(rows)
}

// ListByCreator returns the todos owned by the given account id, in
// store-defined order.
func (r *TodoRepository) ListByCreator(ctx context.Context, creator int32) ([]*domain.Todo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, content, creator FROM todos WHERE creator = $1`,
		creator,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTodos(rows)
}

func scanTodos(rows pgx.Rows) ([]*domain.Todo, error) {
	var res []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Content, &t.Creator); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

func (r *TodoRepository) GetByID(ctx context.Context, id int32) (*domain.Todo, error) {
	var t domain.Todo
	err := r.db.QueryRow(ctx,
		`SELECT id, title, content, creator FROM todos WHERE id = $1`,
		id,
	).Scan(&t.ID, &t.Title, &t.Content, &t.Creator)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a todo owned by creator and echoes back the persisted
// columns the caller is shown.
func (r *TodoRepository) Create(ctx context.Context, creator int32, in *domain.CreateUpdateTodo) (*domain.CreatedTodo, error) {
	var t domain.CreatedTodo
	err := r.db.QueryRow(ctx,
		`INSERT INTO todos (title, content, creator)
		 VALUES ($1, $2, $3)
		 RETURNING title, content, creator`,
		in.Title, in.Content, creator,
	).Scan(&t.Title, &t.Content, &t.Creator)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TodoRepository) Update(ctx context.Context, id int32, in *domain.CreateUpdateTodo) (*domain.UpdatedTodo, error) {
	var t domain.UpdatedTodo
	err := r.db.QueryRow(ctx,
		`UPDATE todos SET title = $1, content = $2 WHERE id = $3
		 RETURNING title, content`,
		in.Title, in.Content, id,
	).Scan(&t.Title, &t.Content)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the todo and returns the full deleted row.
func (r *TodoRepository) Delete(ctx context.Context, id int32) (*domain.Todo, error) {
	var t domain.Todo
	err := r.db.QueryRow(ctx,
		`DELETE FROM todos WHERE id = $1 RETURNING id, title, content, creator`,
		id,
	).Scan(&t.ID, &t.Title, &t.Content, &t.Creator)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
