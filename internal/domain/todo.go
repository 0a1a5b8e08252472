package domain

// Todo is a task record owned by an account through its creator field.
// The creator id is not checked against existing accounts.
type Todo struct {
	ID      int32  `db:"id" json:"id"`
	Title   string `db:"title" json:"title" validate:"min=1"`
	Content string `db:"content" json:"content"`
	Creator int32  `db:"creator" json:"creator"`
}

// CreateUpdateTodo shapes the request body for todo create and update. It
// carries no identity; the creator comes from the path on create.
type CreateUpdateTodo struct {
	Title   string `json:"title" validate:"min=1"`
	Content string `json:"content"`
}

// CreatedTodo is the subset of columns echoed back by a todo insert.
type CreatedTodo struct {
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
	Creator int32  `db:"creator" json:"creator"`
}

// UpdatedTodo is the subset of columns echoed back by a todo update.
type UpdatedTodo struct {
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
}
