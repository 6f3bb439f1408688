package stores

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	model "taskflow.app/taskflow/pkg/models"
)

// taskRow is the remote record shape. Tags are stored JSON-encoded so a
// partial column update stays a plain string write.
type taskRow struct {
	ID          string     `gorm:"primaryKey;size:36"`
	Title       string     `gorm:"not null"`
	Date        string     `gorm:"size:10;not null;index"`
	Completed   bool       `gorm:"not null"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false"`
	Notes       *string
	Priority    *string    `gorm:"type:varchar(10)"`
	Tags        string     `gorm:"type:text"`
	CompletedAt *time.Time
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	UserID      string     `gorm:"size:128;not null;index"`
}

func (taskRow) TableName() string {
	return "tasks"
}

// Remote is the cloud-backed store, scoped to one owning user. Every
// operation filters by that user's id; rows of other users are never
// visible or writable through it.
type Remote struct {
	db     *gorm.DB
	userID string
}

func NewRemote(db *gorm.DB, userID string) *Remote {
	return &Remote{db: db, userID: userID}
}

// Migrate creates the remote row schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&taskRow{})
}

func (r *Remote) Load(ctx context.Context) ([]model.Task, error) {
	var rows []taskRow
	err := r.db.WithContext(ctx).
		Where("user_id = ?", r.userID).
		Order("created_at desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, rowToTask(row))
	}
	return tasks, nil
}

func (r *Remote) Insert(ctx context.Context, task model.Task) error {
	row := r.taskToRow(task)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Remote) Update(ctx context.Context, task model.Task) error {
	res := r.db.WithContext(ctx).Model(&taskRow{}).
		Where("id = ? AND user_id = ?", task.ID, r.userID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"date":         task.Date,
			"completed":    task.Completed,
			"notes":        task.Notes,
			"priority":     priorityValue(task.Priority),
			"tags":         encodeTags(task.Tags),
			"completed_at": task.CompletedAt,
			"updated_at":   task.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Remote) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, r.userID).
		Delete(&taskRow{}).Error
}

func (r *Remote) taskToRow(task model.Task) taskRow {
	return taskRow{
		ID:          task.ID,
		Title:       task.Title,
		Date:        task.Date,
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
		Notes:       task.Notes,
		Priority:    priorityValue(task.Priority),
		Tags:        encodeTags(task.Tags),
		CompletedAt: task.CompletedAt,
		UpdatedAt:   task.UpdatedAt,
		UserID:      r.userID,
	}
}

func rowToTask(row taskRow) model.Task {
	var priority *model.Priority
	if row.Priority != nil {
		v := model.Priority(*row.Priority)
		priority = &v
	}

	return model.Task{
		ID:          row.ID,
		Title:       row.Title,
		Date:        row.Date,
		Completed:   row.Completed,
		CreatedAt:   row.CreatedAt,
		Notes:       row.Notes,
		Priority:    priority,
		Tags:        decodeTags(row.Tags),
		CompletedAt: row.CompletedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func priorityValue(p *model.Priority) *string {
	if p == nil {
		return nil
	}
	v := string(*p)
	return &v
}

func encodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return []string{}
	}
	return tags
}
