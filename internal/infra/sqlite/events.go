package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/choreboard/choreboard/internal/domain"
)

// ─── Task Completions ───────────────────────────────────────────────────────

// AddTaskCompletion appends one task-completion event.
func (d *DB) AddTaskCompletion(ctx context.Context, t domain.TaskCompletion) (domain.TaskCompletion, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO task_completions (id, child_id, status, completed_at, points)
		 VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.ChildID, string(t.Status), t.CompletedAt.Unix(), t.Points)
	if err != nil {
		return domain.TaskCompletion{}, fmt.Errorf("insert task completion: %w", err)
	}
	return t, nil
}

// TaskCompletions returns a child's task completions in chronological
// order (id breaks timestamp ties so reads are deterministic).
func (d *DB) TaskCompletions(ctx context.Context, childID string) ([]domain.TaskCompletion, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, child_id, status, completed_at, points
		 FROM task_completions WHERE child_id = ? ORDER BY completed_at, id`, childID)
	if err != nil {
		return nil, fmt.Errorf("select task completions: %w", err)
	}
	defer rows.Close()

	out := []domain.TaskCompletion{}
	for rows.Next() {
		var t domain.TaskCompletion
		var status string
		var completedAt int64
		if err := rows.Scan(&t.ID, &t.ChildID, &status, &completedAt, &t.Points); err != nil {
			return nil, fmt.Errorf("scan task completion: %w", err)
		}
		t.Status = domain.TaskStatus(status)
		t.CompletedAt = time.Unix(completedAt, 0)
		out = append(out, t)
	}
	return out, rows.Err()
}

// ─── Reading Sessions ───────────────────────────────────────────────────────

// AddReadingSession appends one reading-session event.
func (d *DB) AddReadingSession(ctx context.Context, s domain.ReadingSession) (domain.ReadingSession, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	var endTime interface{}
	if s.EndTime != nil {
		endTime = s.EndTime.Unix()
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO reading_sessions (id, child_id, start_time, end_time, words_read, speed_wpm)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.ChildID, s.StartTime.Unix(), endTime, s.WordsRead, s.SpeedWPM)
	if err != nil {
		return domain.ReadingSession{}, fmt.Errorf("insert reading session: %w", err)
	}
	return s, nil
}

// ReadingSessions returns a child's reading sessions in chronological order.
func (d *DB) ReadingSessions(ctx context.Context, childID string) ([]domain.ReadingSession, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, child_id, start_time, end_time, words_read, speed_wpm
		 FROM reading_sessions WHERE child_id = ? ORDER BY start_time, id`, childID)
	if err != nil {
		return nil, fmt.Errorf("select reading sessions: %w", err)
	}
	defer rows.Close()

	out := []domain.ReadingSession{}
	for rows.Next() {
		var s domain.ReadingSession
		var startTime int64
		var endTime *int64
		if err := rows.Scan(&s.ID, &s.ChildID, &startTime, &endTime, &s.WordsRead, &s.SpeedWPM); err != nil {
			return nil, fmt.Errorf("scan reading session: %w", err)
		}
		s.StartTime = time.Unix(startTime, 0)
		if endTime != nil {
			t := time.Unix(*endTime, 0)
			s.EndTime = &t
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ─── Story Chapters ─────────────────────────────────────────────────────────

// AddStoryChapter appends one story-chapter event.
func (d *DB) AddStoryChapter(ctx context.Context, c domain.StoryChapter) (domain.StoryChapter, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO story_chapters (id, child_id, is_read, world_theme, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.ChildID, c.IsRead, c.WorldTheme, c.CreatedAt.Unix())
	if err != nil {
		return domain.StoryChapter{}, fmt.Errorf("insert story chapter: %w", err)
	}
	return c, nil
}

// StoryChapters returns a child's chapters in creation order.
func (d *DB) StoryChapters(ctx context.Context, childID string) ([]domain.StoryChapter, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, child_id, is_read, world_theme, created_at
		 FROM story_chapters WHERE child_id = ? ORDER BY created_at, id`, childID)
	if err != nil {
		return nil, fmt.Errorf("select story chapters: %w", err)
	}
	defer rows.Close()

	out := []domain.StoryChapter{}
	for rows.Next() {
		var c domain.StoryChapter
		var createdAt int64
		if err := rows.Scan(&c.ID, &c.ChildID, &c.IsRead, &c.WorldTheme, &createdAt); err != nil {
			return nil, fmt.Errorf("scan story chapter: %w", err)
		}
		c.CreatedAt = time.Unix(createdAt, 0)
		out = append(out, c)
	}
	return out, rows.Err()
}

// ─── Household Collection Counts ────────────────────────────────────────────
// Counted directly against the household's collections rather than
// summed from per-child metrics.

// HouseholdTaskCount counts every task completion recorded for a
// household's children, regardless of status.
func (d *DB) HouseholdTaskCount(ctx context.Context, householdID string) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM task_completions t
		 JOIN children c ON c.id = t.child_id
		 WHERE c.household_id = ?`, householdID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count household tasks: %w", err)
	}
	return n, nil
}

// HouseholdChapterCount counts every story chapter generated for a
// household's children.
func (d *DB) HouseholdChapterCount(ctx context.Context, householdID string) (int, error) {
	var n int
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM story_chapters s
		 JOIN children c ON c.id = s.child_id
		 WHERE c.household_id = ?`, householdID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count household chapters: %w", err)
	}
	return n, nil
}
