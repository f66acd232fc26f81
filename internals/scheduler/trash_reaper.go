package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Target: satu tabel soft-delete beserta kolom deleted_at-nya.
type Target struct{ Table, Col string }

// Targets: semua tabel entity (kolom audit ber-prefix per tabel).
var Targets = []Target{
	{Table: "classrooms", Col: "classroom_deleted_at"},
	{Table: "fees", Col: "fee_deleted_at"},
	{Table: "calendar_entries", Col: "calendar_entry_deleted_at"},
	{Table: "teacher_attachments", Col: "teacher_attachment_deleted_at"},
	{Table: "users", Col: "user_deleted_at"},
}

type TrashReaperConfig struct {
	CronSchedule  string
	RetentionDays int
	DryRun        bool
}

type TrashReaper struct {
	DB      *gorm.DB
	Cfg     TrashReaperConfig
	Targets []Target
	now     func() time.Time
}

func NewTrashReaper(db *gorm.DB, cfg TrashReaperConfig) *TrashReaper {
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 30
	}
	if cfg.CronSchedule == "" {
		cfg.CronSchedule = "15 2 * * *"
	}
	return &TrashReaper{DB: db, Cfg: cfg, Targets: Targets, now: time.Now}
}

func (r *TrashReaper) Cutoff() time.Time {
	return r.now().Add(-time.Duration(r.Cfg.RetentionDays) * 24 * time.Hour)
}

// Start mendaftarkan job ke cron lalu menjalankannya. Caller wajib Stop() saat shutdown.
func (r *TrashReaper) Start() (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(r.Cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		if _, err := r.RunOnce(ctx); err != nil {
			log.Printf("[REAPER] error: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("add cron %q: %w", r.Cfg.CronSchedule, err)
	}
	log.Printf("[REAPER] started schedule=%q retention=%dd dryRun=%v",
		r.Cfg.CronSchedule, r.Cfg.RetentionDays, r.Cfg.DryRun)
	c.Start()
	return c, nil
}

// RunOnce: hard-delete semua row yang soft-deleted lebih tua dari cutoff.
// Dry-run hanya menghitung. Return jumlah per tabel.
func (r *TrashReaper) RunOnce(ctx context.Context) (map[string]int64, error) {
	out := make(map[string]int64, len(r.Targets))
	if r.DB == nil {
		return out, nil
	}
	cutoff := r.Cutoff()

	var firstErr error
	for _, t := range r.Targets {
		// nama tabel/kolom berasal dari daftar statis di atas
		where := t.Col + ` IS NOT NULL AND ` + t.Col + ` < ?`

		if r.Cfg.DryRun {
			var n int64
			if err := r.DB.WithContext(ctx).Table(t.Table).Where(where, cutoff).Count(&n).Error; err != nil {
				log.Printf("[REAPER] %s: count error: %v", t.Table, err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			out[t.Table] = n
			if n > 0 {
				log.Printf("[REAPER] DRY-RUN %s: would hard-delete %d rows older than %s", t.Table, n, cutoff.Format(time.RFC3339))
			}
			continue
		}

		res := r.DB.WithContext(ctx).Exec(`DELETE FROM `+t.Table+` WHERE `+where, cutoff)
		if err := res.Error; err != nil {
			log.Printf("[REAPER] %s: delete error: %v", t.Table, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out[t.Table] = res.RowsAffected
		if res.RowsAffected > 0 {
			log.Printf("[REAPER] %s: hard-deleted %d rows older than %s", t.Table, res.RowsAffected, cutoff.Format(time.RFC3339))
		}
	}
	return out, firstErr
}
